package result

// VCSStatusResult is the canonical result for working-tree status
// (git status). Branch metadata comes from the status header when the
// porcelain branch line is present.
type VCSStatusResult struct {
	Header
	Branch    string       `json:"branch,omitempty"`
	Upstream  string       `json:"upstream,omitempty"`
	Ahead     int          `json:"ahead,omitempty"`
	Behind    int          `json:"behind,omitempty"`
	Total     int          `json:"total"`
	Staged    int          `json:"staged"`
	Unstaged  int          `json:"unstaged"`
	Untracked int          `json:"untracked"`
	Files     []FileStatus `json:"files,omitempty"`
}

func (r *VCSStatusResult) Family() Family { return VCSStatus }

// Compact drops the file entries; the per-state counts survive.
func (r *VCSStatusResult) Compact() Compact {
	return &VCSStatusCompact{
		Header:    r.Header,
		Branch:    r.Branch,
		Upstream:  r.Upstream,
		Ahead:     r.Ahead,
		Behind:    r.Behind,
		Total:     r.Total,
		Staged:    r.Staged,
		Unstaged:  r.Unstaged,
		Untracked: r.Untracked,
	}
}

// VCSStatusCompact is the compact projection of VCSStatusResult.
type VCSStatusCompact struct {
	Header
	Branch    string `json:"branch,omitempty"`
	Upstream  string `json:"upstream,omitempty"`
	Ahead     int    `json:"ahead,omitempty"`
	Behind    int    `json:"behind,omitempty"`
	Total     int    `json:"total"`
	Staged    int    `json:"staged"`
	Unstaged  int    `json:"unstaged"`
	Untracked int    `json:"untracked"`
}

func (c *VCSStatusCompact) Family() Family { return VCSStatus }

// VCSDiffResult is the canonical result for diffs (git diff --numstat).
// Added and Deleted are line totals across all files.
type VCSDiffResult struct {
	Header
	FilesChanged int        `json:"filesChanged"`
	Added        int        `json:"added"`
	Deleted      int        `json:"deleted"`
	Files        []DiffStat `json:"files,omitempty"`
}

func (r *VCSDiffResult) Family() Family { return VCSDiff }

// Compact drops the per-file stats; the totals survive.
func (r *VCSDiffResult) Compact() Compact {
	return &VCSDiffCompact{
		Header:       r.Header,
		FilesChanged: r.FilesChanged,
		Added:        r.Added,
		Deleted:      r.Deleted,
	}
}

// VCSDiffCompact is the compact projection of VCSDiffResult.
type VCSDiffCompact struct {
	Header
	FilesChanged int `json:"filesChanged"`
	Added        int `json:"added"`
	Deleted      int `json:"deleted"`
}

func (c *VCSDiffCompact) Family() Family { return VCSDiff }

// VCSLogResult is the canonical result for commit history (git log).
type VCSLogResult struct {
	Header
	Total   int      `json:"total"`
	Commits []Commit `json:"commits,omitempty"`
}

func (r *VCSLogResult) Family() Family { return VCSLog }

// Compact replaces the commit objects with their subjects, in log
// order.
func (r *VCSLogResult) Compact() Compact {
	c := &VCSLogCompact{Header: r.Header, Total: r.Total}
	for _, cm := range r.Commits {
		c.Subjects = append(c.Subjects, cm.Subject)
	}
	return c
}

// VCSLogCompact is the compact projection of VCSLogResult.
type VCSLogCompact struct {
	Header
	Total    int      `json:"total"`
	Subjects []string `json:"subjects,omitempty"`
}

func (c *VCSLogCompact) Family() Family { return VCSLog }
