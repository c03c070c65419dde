package result

// Severity tiers for diagnostics. Tiers are counted independently and
// never merged.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityNote    = "note"
)

// Diagnostic is one issue located in a source file.
type Diagnostic struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column,omitempty"`
	Code     string `json:"code,omitempty"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Fixable  bool   `json:"fixable,omitempty"`
}

// TestFailure is one failed test.
type TestFailure struct {
	Test    string `json:"test"`
	Message string `json:"message,omitempty"`
}

// Vulnerability is one security advisory against an installed package.
type Vulnerability struct {
	Package     string   `json:"package"`
	Version     string   `json:"version,omitempty"`
	ID          string   `json:"id"`
	Severity    string   `json:"severity,omitempty"`
	Description string   `json:"description,omitempty"`
	FixVersions []string `json:"fixVersions,omitempty"`
}

// Package is one installed package.
type Package struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Environment is one interpreter environment known to the manager.
type Environment struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Active bool   `json:"active,omitempty"`
}

// FileStatus is one working-tree entry from version control status.
// Staged and Unstaged hold the raw status letters; untracked files
// carry "?" in both. RenamedFrom is set on renames.
type FileStatus struct {
	Path        string `json:"path"`
	Staged      string `json:"staged,omitempty"`
	Unstaged    string `json:"unstaged,omitempty"`
	RenamedFrom string `json:"renamedFrom,omitempty"`
}

// DiffStat is one file's line counts from a diff.
type DiffStat struct {
	Path    string `json:"path"`
	Added   int    `json:"added"`
	Deleted int    `json:"deleted"`
	Binary  bool   `json:"binary,omitempty"`
}

// Commit is one version-control commit.
type Commit struct {
	Hash    string `json:"hash"`
	Author  string `json:"author"`
	Date    string `json:"date"`
	Subject string `json:"subject"`
}

// Image is one container image.
type Image struct {
	Repository string `json:"repository"`
	Tag        string `json:"tag"`
	ID         string `json:"id"`
	Size       string `json:"size,omitempty"`
	Created    string `json:"created,omitempty"`
}

// Container is one container instance.
type Container struct {
	ID     string `json:"id"`
	Image  string `json:"image"`
	Name   string `json:"name"`
	State  string `json:"state,omitempty"`
	Status string `json:"status,omitempty"`
	Ports  string `json:"ports,omitempty"`
}

// CoverageFile is one file's statement coverage.
type CoverageFile struct {
	File       string  `json:"file"`
	Statements int     `json:"statements"`
	Missed     int     `json:"missed"`
	Percent    float64 `json:"percent"`
}

// FileCount is a per-file tally, the compact surrogate for diagnostic
// lists, ordered by first appearance in the canonical entry list.
type FileCount struct {
	File  string `json:"file"`
	Count int    `json:"count"`
}

// fileCounts tallies diagnostics per file, preserving first-appearance
// order.
func fileCounts(ds []Diagnostic) []FileCount {
	if len(ds) == 0 {
		return nil
	}
	idx := make(map[string]int, len(ds))
	var out []FileCount
	for _, d := range ds {
		if i, ok := idx[d.File]; ok {
			out[i].Count++
			continue
		}
		idx[d.File] = len(out)
		out = append(out, FileCount{File: d.File, Count: 1})
	}
	return out
}
