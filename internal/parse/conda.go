package parse

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/deixis/foreman/internal/capture"
	"github.com/deixis/foreman/internal/result"
)

// conda emits a JSON error object ({"error", "exception_name",
// "message"}) on stdout when a command fails. That is the tool
// reporting a problem, not a broken contract.

type condaErrorObject struct {
	Error         string `json:"error"`
	ExceptionName string `json:"exception_name"`
	Message       string `json:"message"`
}

// condaToolError fills the header from conda's JSON error object and
// reports whether the output was one.
func condaToolError(c capture.Capture, h *result.Header) bool {
	out := strings.TrimSpace(scrubANSI(c.Stdout))
	if out == "" {
		out = strings.TrimSpace(scrubANSI(c.Stderr))
	}
	var ce condaErrorObject
	if err := json.Unmarshal([]byte(out), &ce); err != nil {
		return false
	}
	if ce.Error == "" && ce.Message == "" {
		return false
	}
	h.Success = false
	msg := ce.Message
	if msg == "" {
		msg = ce.Error
	}
	h.Error = firstMeaningful(strings.Split(msg, "\n"))
	switch ce.ExceptionName {
	case "PackagesNotFoundError", "ResolvePackageNotFound",
		"UnsatisfiableError", "LibMambaUnsatisfiableError":
		h.ErrorType = result.ErrResolution
	case "EnvironmentLocationNotFound", "EnvironmentNameNotFound":
		h.ErrorType = result.ErrNotFound
	}
	return true
}

// condaFailure handles a non-zero exit: the JSON error object when
// conda produced one, a degraded result otherwise.
func condaFailure(c capture.Capture, h *result.Header, m exitMeaning) {
	if condaToolError(c, h) {
		return
	}
	h.ErrorType = errorType(m)
	degrade(h, c, firstLine(c.Stderr))
}

// conda list --json: always a JSON array.

type condaListItem struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func parseCondaList(c capture.Capture) (result.Result, error) {
	k := Key{"conda", "list"}
	m := meaning(k, c.ExitCode)
	r := &result.CondaListResult{Header: header(c, false), Action: result.CondaActionList}

	if m != exitClean {
		condaFailure(c, &r.Header, m)
		return r, nil
	}

	var items []condaListItem
	if err := json.Unmarshal([]byte(scrubANSI(c.Stdout)), &items); err != nil {
		return nil, contractErr("conda list", "JSON output mode did not produce an array")
	}
	for _, it := range items {
		r.Packages = append(r.Packages, result.Package{Name: it.Name, Version: it.Version})
	}
	r.Total = len(r.Packages)
	r.Success = true
	return r, nil
}

// conda info --json.

type condaInfoOutput struct {
	CondaVersion     string   `json:"conda_version"`
	PythonVersion    string   `json:"python_version"`
	ActivePrefixName string   `json:"active_prefix_name"`
	Platform         string   `json:"platform"`
	Envs             []string `json:"envs"`
}

func parseCondaInfo(c capture.Capture) (result.Result, error) {
	k := Key{"conda", "info"}
	m := meaning(k, c.ExitCode)
	r := &result.CondaInfoResult{Header: header(c, false), Action: result.CondaActionInfo}

	if m != exitClean {
		condaFailure(c, &r.Header, m)
		return r, nil
	}

	var out condaInfoOutput
	if err := json.Unmarshal([]byte(scrubANSI(c.Stdout)), &out); err != nil {
		degrade(&r.Header, c, "unrecognized conda info JSON output")
		return r, nil
	}
	r.CondaVersion = out.CondaVersion
	r.PythonVersion = out.PythonVersion
	r.ActiveEnv = out.ActivePrefixName
	r.Platform = out.Platform
	r.EnvCount = len(out.Envs)
	r.Success = true
	return r, nil
}

// conda env list --json: {"envs": ["/root", "/root/envs/dev", ...]}.
// The root prefix is named "base", every other env by its directory
// name. JSON mode carries no active marker.

type condaEnvsOutput struct {
	Envs []string `json:"envs"`
}

func parseCondaEnvList(c capture.Capture) (result.Result, error) {
	k := Key{"conda", "env-list"}
	m := meaning(k, c.ExitCode)
	r := &result.CondaEnvListResult{Header: header(c, false), Action: result.CondaActionEnvList}

	if m != exitClean {
		condaFailure(c, &r.Header, m)
		return r, nil
	}

	var out condaEnvsOutput
	if err := json.Unmarshal([]byte(scrubANSI(c.Stdout)), &out); err != nil {
		degrade(&r.Header, c, "unrecognized conda env list JSON output")
		return r, nil
	}
	for _, path := range out.Envs {
		name := path[strings.LastIndex(path, "/")+1:]
		for _, other := range out.Envs {
			if other != path && strings.HasPrefix(other, path+"/envs/") {
				name = "base"
				break
			}
		}
		r.Environments = append(r.Environments, result.Environment{Name: name, Path: path})
	}
	r.Total = len(r.Environments)
	r.Success = true
	return r, nil
}

// conda install --json [--dry-run]: {"actions": {"LINK": [{name,
// version}]}, "dry_run"?, "success"}. "All requested packages already
// installed." arrives as a message with no actions.

type condaInstallOutput struct {
	Actions condaInstallActions `json:"actions"`
	DryRun  bool                `json:"dry_run"`
	Success bool                `json:"success"`
}

type condaInstallActions struct {
	Link []condaListItem `json:"LINK"`
}

func parseCondaInstall(c capture.Capture) (result.Result, error) {
	k := Key{"conda", "install"}
	m := meaning(k, c.ExitCode)
	r := &result.CondaInstallResult{Header: header(c, false), Action: result.CondaActionInstall}

	if m != exitClean {
		condaFailure(c, &r.Header, m)
		return r, nil
	}

	var out condaInstallOutput
	if err := json.Unmarshal([]byte(scrubANSI(c.Stdout)), &out); err != nil {
		degrade(&r.Header, c, "unrecognized conda install JSON output")
		return r, nil
	}
	r.DryRun = out.DryRun
	for _, it := range out.Actions.Link {
		r.Installed = append(r.Installed, result.Package{Name: it.Name, Version: it.Version})
	}
	r.InstalledCount = len(r.Installed)
	r.Success = true
	return r, nil
}

// conda --version: a single "conda 24.1.2" line.

var condaVersionRE = regexp.MustCompile(`^conda (\S+)$`)

func parseCondaVersion(c capture.Capture) (result.Result, error) {
	k := Key{"conda", "version"}
	m := meaning(k, c.ExitCode)
	r := &result.CondaVersionResult{Header: header(c, false), Action: result.CondaActionVersion}

	if m != exitClean {
		condaFailure(c, &r.Header, m)
		return r, nil
	}

	line := firstLine(c.Stdout)
	if line == "" {
		line = firstLine(c.Stderr)
	}
	mm := condaVersionRE.FindStringSubmatch(line)
	if mm == nil {
		degrade(&r.Header, c, "unrecognized conda version output")
		return r, nil
	}
	r.Version = mm[1]
	r.Success = true
	return r, nil
}
