package result

// LintResult is the canonical result for linters (ruff, flake8, pylint,
// bandit, eslint, go vet, staticcheck, golangci-lint, cargo clippy).
type LintResult struct {
	Header
	Tool        string       `json:"tool"`
	Total       int          `json:"total"`
	Errors      int          `json:"errors"`
	Warnings    int          `json:"warnings"`
	Notes       int          `json:"notes,omitempty"`
	Fixable     int          `json:"fixable,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

func (r *LintResult) Family() Family { return Lint }

// Compact drops the diagnostics in favor of per-file counts.
func (r *LintResult) Compact() Compact {
	return &LintCompact{
		Header:     r.Header,
		Tool:       r.Tool,
		Total:      r.Total,
		Errors:     r.Errors,
		Warnings:   r.Warnings,
		Notes:      r.Notes,
		Fixable:    r.Fixable,
		FileCounts: fileCounts(r.Diagnostics),
	}
}

// LintCompact is the compact projection of LintResult.
type LintCompact struct {
	Header
	Tool       string      `json:"tool"`
	Total      int         `json:"total"`
	Errors     int         `json:"errors"`
	Warnings   int         `json:"warnings"`
	Notes      int         `json:"notes,omitempty"`
	Fixable    int         `json:"fixable,omitempty"`
	FileCounts []FileCount `json:"fileCounts,omitempty"`
}

func (c *LintCompact) Family() Family { return Lint }

// TypecheckResult is the canonical result for type checkers (mypy,
// pyright, tsc).
type TypecheckResult struct {
	Header
	Tool         string       `json:"tool"`
	Total        int          `json:"total"`
	Errors       int          `json:"errors"`
	Warnings     int          `json:"warnings"`
	Notes        int          `json:"notes,omitempty"`
	FilesChecked int          `json:"filesChecked,omitempty"`
	Duration     float64      `json:"duration,omitempty"`
	Diagnostics  []Diagnostic `json:"diagnostics,omitempty"`
}

func (r *TypecheckResult) Family() Family { return Typecheck }

// Compact drops the diagnostics in favor of per-file counts.
func (r *TypecheckResult) Compact() Compact {
	return &TypecheckCompact{
		Header:       r.Header,
		Tool:         r.Tool,
		Total:        r.Total,
		Errors:       r.Errors,
		Warnings:     r.Warnings,
		Notes:        r.Notes,
		FilesChecked: r.FilesChecked,
		Duration:     r.Duration,
		FileCounts:   fileCounts(r.Diagnostics),
	}
}

// TypecheckCompact is the compact projection of TypecheckResult.
type TypecheckCompact struct {
	Header
	Tool         string      `json:"tool"`
	Total        int         `json:"total"`
	Errors       int         `json:"errors"`
	Warnings     int         `json:"warnings"`
	Notes        int         `json:"notes,omitempty"`
	FilesChecked int         `json:"filesChecked,omitempty"`
	Duration     float64     `json:"duration,omitempty"`
	FileCounts   []FileCount `json:"fileCounts,omitempty"`
}

func (c *TypecheckCompact) Family() Family { return Typecheck }
