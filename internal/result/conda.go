package result

// Conda results form an action-discriminated union: one variant per
// action, tagged by the Action field, with variant field sets kept
// apart so a payload mixing two actions fails schema validation.

// Conda action discriminators.
const (
	CondaActionList    = "list"
	CondaActionInfo    = "info"
	CondaActionEnvList = "env-list"
	CondaActionInstall = "install"
	CondaActionVersion = "version"
)

// CondaListResult is the "list" variant: installed packages in the
// active environment.
type CondaListResult struct {
	Header
	Action   string    `json:"action"`
	Total    int       `json:"total"`
	Packages []Package `json:"packages,omitempty"`
}

func (r *CondaListResult) Family() Family { return Conda }

// Compact drops the package entries; the count survives.
func (r *CondaListResult) Compact() Compact {
	return &CondaListCompact{Header: r.Header, Action: r.Action, Total: r.Total}
}

// CondaListCompact is the compact projection of CondaListResult.
type CondaListCompact struct {
	Header
	Action string `json:"action"`
	Total  int    `json:"total"`
}

func (c *CondaListCompact) Family() Family { return Conda }

// CondaInfoResult is the "info" variant: installation metadata.
type CondaInfoResult struct {
	Header
	Action        string `json:"action"`
	CondaVersion  string `json:"condaVersion,omitempty"`
	PythonVersion string `json:"pythonVersion,omitempty"`
	ActiveEnv     string `json:"activeEnv,omitempty"`
	Platform      string `json:"platform,omitempty"`
	EnvCount      int    `json:"envCount"`
}

func (r *CondaInfoResult) Family() Family { return Conda }

// Compact is the identity projection: the variant is all scalars.
func (r *CondaInfoResult) Compact() Compact {
	c := CondaInfoCompact(*r)
	return &c
}

// CondaInfoCompact is the compact projection of CondaInfoResult.
type CondaInfoCompact CondaInfoResult

func (c *CondaInfoCompact) Family() Family { return Conda }

// CondaEnvListResult is the "env-list" variant: known environments.
type CondaEnvListResult struct {
	Header
	Action       string        `json:"action"`
	Total        int           `json:"total"`
	Environments []Environment `json:"environments,omitempty"`
}

func (r *CondaEnvListResult) Family() Family { return Conda }

// Compact drops the environment entries; the count survives.
func (r *CondaEnvListResult) Compact() Compact {
	return &CondaEnvListCompact{Header: r.Header, Action: r.Action, Total: r.Total}
}

// CondaEnvListCompact is the compact projection of CondaEnvListResult.
type CondaEnvListCompact struct {
	Header
	Action string `json:"action"`
	Total  int    `json:"total"`
}

func (c *CondaEnvListCompact) Family() Family { return Conda }

// CondaInstallResult is the "install" variant.
type CondaInstallResult struct {
	Header
	Action         string    `json:"action"`
	DryRun         bool      `json:"dryRun,omitempty"`
	InstalledCount int       `json:"installedCount"`
	Installed      []Package `json:"installed,omitempty"`
}

func (r *CondaInstallResult) Family() Family { return Conda }

// Compact drops the installed entries; the count survives.
func (r *CondaInstallResult) Compact() Compact {
	return &CondaInstallCompact{
		Header:         r.Header,
		Action:         r.Action,
		DryRun:         r.DryRun,
		InstalledCount: r.InstalledCount,
	}
}

// CondaInstallCompact is the compact projection of CondaInstallResult.
type CondaInstallCompact struct {
	Header
	Action         string `json:"action"`
	DryRun         bool   `json:"dryRun,omitempty"`
	InstalledCount int    `json:"installedCount"`
}

func (c *CondaInstallCompact) Family() Family { return Conda }

// CondaVersionResult is the "version" variant.
type CondaVersionResult struct {
	Header
	Action  string `json:"action"`
	Version string `json:"version"`
}

func (r *CondaVersionResult) Family() Family { return Conda }

// Compact is the identity projection.
func (r *CondaVersionResult) Compact() Compact {
	c := CondaVersionCompact(*r)
	return &c
}

// CondaVersionCompact is the compact projection of CondaVersionResult.
type CondaVersionCompact CondaVersionResult

func (c *CondaVersionCompact) Family() Family { return Conda }
