package result

// FormatResult is the canonical result for formatters (black, prettier,
// gofmt, cargo fmt). Check reports check-only mode: files were
// inspected, not rewritten.
type FormatResult struct {
	Header
	Tool           string   `json:"tool"`
	Check          bool     `json:"check,omitempty"`
	FilesChanged   int      `json:"filesChanged"`
	FilesUnchanged int      `json:"filesUnchanged,omitempty"`
	ChangedFiles   []string `json:"changedFiles,omitempty"`
}

func (r *FormatResult) Family() Family { return Format }

// Compact drops the changed-file names; the count survives.
func (r *FormatResult) Compact() Compact {
	return &FormatCompact{
		Header:         r.Header,
		Tool:           r.Tool,
		Check:          r.Check,
		FilesChanged:   r.FilesChanged,
		FilesUnchanged: r.FilesUnchanged,
	}
}

// FormatCompact is the compact projection of FormatResult.
type FormatCompact struct {
	Header
	Tool           string `json:"tool"`
	Check          bool   `json:"check,omitempty"`
	FilesChanged   int    `json:"filesChanged"`
	FilesUnchanged int    `json:"filesUnchanged,omitempty"`
}

func (c *FormatCompact) Family() Family { return Format }
