package result

// PkgListResult is the canonical result for package listings (pip list,
// npm ls).
type PkgListResult struct {
	Header
	Tool     string    `json:"tool"`
	Total    int       `json:"total"`
	Packages []Package `json:"packages,omitempty"`
}

func (r *PkgListResult) Family() Family { return PkgList }

// Compact drops the package entries; the count survives.
func (r *PkgListResult) Compact() Compact {
	return &PkgListCompact{Header: r.Header, Tool: r.Tool, Total: r.Total}
}

// PkgListCompact is the compact projection of PkgListResult.
type PkgListCompact struct {
	Header
	Tool  string `json:"tool"`
	Total int    `json:"total"`
}

func (c *PkgListCompact) Family() Family { return PkgList }

// PkgInstallResult is the canonical result for package installation
// (pip install, uv pip install, npm install).
type PkgInstallResult struct {
	Header
	Tool             string    `json:"tool"`
	InstalledCount   int       `json:"installedCount"`
	AlreadySatisfied int       `json:"alreadySatisfied,omitempty"`
	Removed          int       `json:"removed,omitempty"`
	Audited          int       `json:"audited,omitempty"`
	VulnsFound       int       `json:"vulnsFound,omitempty"`
	DryRun           bool      `json:"dryRun,omitempty"`
	Duration         float64   `json:"duration,omitempty"`
	Installed        []Package `json:"installed,omitempty"`
}

func (r *PkgInstallResult) Family() Family { return PkgInstall }

// Compact replaces the installed entries with their names.
func (r *PkgInstallResult) Compact() Compact {
	c := &PkgInstallCompact{
		Header:           r.Header,
		Tool:             r.Tool,
		InstalledCount:   r.InstalledCount,
		AlreadySatisfied: r.AlreadySatisfied,
		Removed:          r.Removed,
		Audited:          r.Audited,
		VulnsFound:       r.VulnsFound,
		DryRun:           r.DryRun,
		Duration:         r.Duration,
	}
	for _, p := range r.Installed {
		c.InstalledNames = append(c.InstalledNames, p.Name)
	}
	return c
}

// PkgInstallCompact is the compact projection of PkgInstallResult.
type PkgInstallCompact struct {
	Header
	Tool             string   `json:"tool"`
	InstalledCount   int      `json:"installedCount"`
	AlreadySatisfied int      `json:"alreadySatisfied,omitempty"`
	Removed          int      `json:"removed,omitempty"`
	Audited          int      `json:"audited,omitempty"`
	VulnsFound       int      `json:"vulnsFound,omitempty"`
	DryRun           bool     `json:"dryRun,omitempty"`
	Duration         float64  `json:"duration,omitempty"`
	InstalledNames   []string `json:"installedNames,omitempty"`
}

func (c *PkgInstallCompact) Family() Family { return PkgInstall }

// PkgInfoResult is the canonical result for single-package metadata
// (pip show). Absent metadata keys are omitted.
type PkgInfoResult struct {
	Header
	Name       string   `json:"name,omitempty"`
	Version    string   `json:"version,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	Homepage   string   `json:"homepage,omitempty"`
	Author     string   `json:"author,omitempty"`
	License    string   `json:"license,omitempty"`
	Location   string   `json:"location,omitempty"`
	Requires   []string `json:"requires,omitempty"`
	RequiredBy []string `json:"requiredBy,omitempty"`
}

func (r *PkgInfoResult) Family() Family { return PkgInfo }

// Compact keeps name and version only.
func (r *PkgInfoResult) Compact() Compact {
	return &PkgInfoCompact{Header: r.Header, Name: r.Name, Version: r.Version}
}

// PkgInfoCompact is the compact projection of PkgInfoResult.
type PkgInfoCompact struct {
	Header
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
}

func (c *PkgInfoCompact) Family() Family { return PkgInfo }
