package result

// BuildRunResult is the canonical result for build drivers (make,
// go build). Errors holds compiler-style diagnostics extracted from
// the build output; ErrorType carries "nothingToDo" when the build had
// no work.
type BuildRunResult struct {
	Header
	Tool   string       `json:"tool"`
	Target string       `json:"target,omitempty"`
	Total  int          `json:"total"`
	Errors []Diagnostic `json:"errors,omitempty"`
}

func (r *BuildRunResult) Family() Family { return BuildRun }

// Compact drops the diagnostics in favor of per-file counts.
func (r *BuildRunResult) Compact() Compact {
	return &BuildRunCompact{
		Header:     r.Header,
		Tool:       r.Tool,
		Target:     r.Target,
		Total:      r.Total,
		FileCounts: fileCounts(r.Errors),
	}
}

// BuildRunCompact is the compact projection of BuildRunResult.
type BuildRunCompact struct {
	Header
	Tool       string      `json:"tool"`
	Target     string      `json:"target,omitempty"`
	Total      int         `json:"total"`
	FileCounts []FileCount `json:"fileCounts,omitempty"`
}

func (c *BuildRunCompact) Family() Family { return BuildRun }

// CoverageResult is the canonical result for coverage reports
// (coverage.py report). Percent is the TOTAL row's figure.
type CoverageResult struct {
	Header
	TotalFiles      int            `json:"totalFiles"`
	TotalStatements int            `json:"totalStatements"`
	TotalMissed     int            `json:"totalMissed"`
	Percent         float64        `json:"percent"`
	Files           []CoverageFile `json:"files,omitempty"`
}

func (r *CoverageResult) Family() Family { return Coverage }

// Compact drops the per-file rows; the totals survive.
func (r *CoverageResult) Compact() Compact {
	return &CoverageCompact{
		Header:          r.Header,
		TotalFiles:      r.TotalFiles,
		TotalStatements: r.TotalStatements,
		TotalMissed:     r.TotalMissed,
		Percent:         r.Percent,
	}
}

// CoverageCompact is the compact projection of CoverageResult.
type CoverageCompact struct {
	Header
	TotalFiles      int     `json:"totalFiles"`
	TotalStatements int     `json:"totalStatements"`
	TotalMissed     int     `json:"totalMissed"`
	Percent         float64 `json:"percent"`
}

func (c *CoverageCompact) Family() Family { return Coverage }
