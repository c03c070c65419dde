package parse

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"

	"github.com/deixis/foreman/internal/capture"
	"github.com/deixis/foreman/internal/result"
)

// pip list --format json: always a JSON array of {name, version}.

type pipListItem struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func parsePipList(c capture.Capture) (result.Result, error) {
	k := Key{"pip", "list"}
	m := meaning(k, c.ExitCode)
	r := &result.PkgListResult{Header: header(c, false), Tool: "pip list"}

	if m != exitClean {
		r.ErrorType = errorType(m)
		degrade(&r.Header, c, firstLine(c.Stderr))
		return r, nil
	}

	var items []pipListItem
	if err := json.Unmarshal([]byte(scrubANSI(c.Stdout)), &items); err != nil {
		return nil, contractErr("pip list", "JSON output mode did not produce an array")
	}

	for _, it := range items {
		r.Packages = append(r.Packages, result.Package{Name: it.Name, Version: it.Version})
	}
	r.Total = len(r.Packages)
	r.Success = true
	return r, nil
}

// npm ls --json: {name, version, dependencies: {<name>: {version}}},
// one level deep. Exit 1 with a parseable tree means unmet peers or
// similar; the listing itself is still data.

type npmLsOutput struct {
	Dependencies map[string]npmLsDependency `json:"dependencies"`
}

type npmLsDependency struct {
	Version string `json:"version"`
}

func parseNpmLs(c capture.Capture) (result.Result, error) {
	k := Key{"npm", "ls"}
	m := meaning(k, c.ExitCode)
	r := &result.PkgListResult{Header: header(c, false), Tool: "npm ls"}

	if m != exitClean && m != exitFindings {
		r.ErrorType = errorType(m)
		degrade(&r.Header, c, firstLine(c.Stderr))
		return r, nil
	}

	var out npmLsOutput
	if err := json.Unmarshal([]byte(scrubANSI(c.Stdout)), &out); err != nil {
		return nil, contractErr("npm ls", "JSON output mode did not produce an object")
	}

	names := make([]string, 0, len(out.Dependencies))
	for name := range out.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		r.Packages = append(r.Packages, result.Package{
			Name:    name,
			Version: out.Dependencies[name].Version,
		})
	}
	r.Total = len(r.Packages)
	r.Success = true
	return r, nil
}

// pip install: installed packages from "Successfully installed pkg-1.0
// pkg2-2.0" (name-version split on the last dash), satisfied
// requirements counted, "Would install" under --dry-run. Resolution
// and environment failures are classified off stderr.

var (
	pipInstalledRE = regexp.MustCompile(`^Successfully installed (.+)$`)
	pipSatisfiedRE = regexp.MustCompile(`^Requirement already satisfied: (\S+)`)
	pipWouldRE     = regexp.MustCompile(`^Would install (.+)$`)
)

// splitNameVersion splits "pkg-1.0" on the last dash. Names may carry
// dashes themselves; versions never do.
func splitNameVersion(s string) result.Package {
	if i := strings.LastIndex(s, "-"); i > 0 {
		return result.Package{Name: s[:i], Version: s[i+1:]}
	}
	return result.Package{Name: s}
}

func parsePipInstall(c capture.Capture) (result.Result, error) {
	k := Key{"pip", "install"}
	m := meaning(k, c.ExitCode)
	r := &result.PkgInstallResult{Header: header(c, false), Tool: "pip install"}

	if m != exitClean {
		r.Success = false
		r.ErrorType = errorType(m)
		stderr := scrubANSI(c.Stderr)
		switch {
		case strings.Contains(stderr, "Could not find a version"),
			strings.Contains(stderr, "No matching distribution"),
			strings.Contains(stderr, "ResolutionImpossible"):
			r.ErrorType = result.ErrResolution
		case strings.Contains(stderr, "externally-managed-environment"):
			r.ErrorType = result.ErrEnvironment
		}
		r.Error = firstLine(c.Stderr)
		r.RawOutput = clipRaw(c)
		return r, nil
	}

	for _, line := range strings.Split(scrubANSI(c.Stdout), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if mm := pipInstalledRE.FindStringSubmatch(line); mm != nil {
			for _, f := range strings.Fields(mm[1]) {
				r.Installed = append(r.Installed, splitNameVersion(f))
			}
			continue
		}
		if mm := pipWouldRE.FindStringSubmatch(line); mm != nil {
			r.DryRun = true
			for _, f := range strings.Fields(mm[1]) {
				r.Installed = append(r.Installed, splitNameVersion(f))
			}
			continue
		}
		if pipSatisfiedRE.MatchString(line) {
			r.AlreadySatisfied++
		}
	}
	r.InstalledCount = len(r.Installed)
	r.Success = true
	return r, nil
}

// uv pip install: stderr carries " + pkg==1.0" installed and
// " - pkg==1.0" removed lines under an "Installed N packages in T"
// summary.

var uvSummaryRE = regexp.MustCompile(`Installed (\d+) packages? in ([0-9.]+)(ms|s)`)

func parseUvInstall(c capture.Capture) (result.Result, error) {
	k := Key{"uv", "install"}
	m := meaning(k, c.ExitCode)
	r := &result.PkgInstallResult{Header: header(c, false), Tool: "uv pip install"}

	if m != exitClean {
		r.Success = false
		r.ErrorType = errorType(m)
		stderr := scrubANSI(c.Stderr)
		if strings.Contains(stderr, "No solution found") {
			r.ErrorType = result.ErrResolution
		}
		r.Error = firstLine(c.Stderr)
		r.RawOutput = clipRaw(c)
		return r, nil
	}

	out := scrubANSI(c.Stderr)
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "+ "):
			name, version, _ := strings.Cut(line[2:], "==")
			r.Installed = append(r.Installed, result.Package{Name: name, Version: version})
		case strings.HasPrefix(line, "- "):
			r.Removed++
		}
	}
	if mm := uvSummaryRE.FindStringSubmatch(out); mm != nil {
		r.Duration = num(mm[2])
		if mm[3] == "ms" {
			r.Duration /= 1000
		}
	}
	r.InstalledCount = len(r.Installed)
	r.Success = true
	return r, nil
}

// npm install: "added N packages, and audited M packages in Ts" plus
// "found 0 vulnerabilities" or "K vulnerabilities (...)". npm does not
// name what it installed.

var (
	npmAddedRE   = regexp.MustCompile(`added (\d+) packages?`)
	npmRemovedRE = regexp.MustCompile(`removed (\d+) packages?`)
	npmAuditedRE = regexp.MustCompile(`audited (\d+) packages?`)
	npmSecondsRE = regexp.MustCompile(`in ([0-9.]+)(ms|s)`)
	npmVulnsRE   = regexp.MustCompile(`(\d+) vulnerabilit(?:y|ies)`)
	npmNoVulnsRE = regexp.MustCompile(`found 0 vulnerabilities`)
)

func parseNpmInstall(c capture.Capture) (result.Result, error) {
	k := Key{"npm", "install"}
	m := meaning(k, c.ExitCode)
	r := &result.PkgInstallResult{Header: header(c, false), Tool: "npm install"}

	if m != exitClean {
		r.Success = false
		r.ErrorType = errorType(m)
		stderr := scrubANSI(c.Stderr)
		switch {
		case strings.Contains(stderr, "ERESOLVE"), strings.Contains(stderr, "ETARGET"):
			r.ErrorType = result.ErrResolution
		case strings.Contains(stderr, "EACCES"), strings.Contains(stderr, "EPERM"):
			r.ErrorType = result.ErrEnvironment
		}
		r.Error = firstLine(c.Stderr)
		r.RawOutput = clipRaw(c)
		return r, nil
	}

	out := scrubANSI(c.Stdout)
	if mm := npmAddedRE.FindStringSubmatch(out); mm != nil {
		r.InstalledCount = count(mm[1])
	}
	if mm := npmRemovedRE.FindStringSubmatch(out); mm != nil {
		r.Removed = count(mm[1])
	}
	if mm := npmAuditedRE.FindStringSubmatch(out); mm != nil {
		r.Audited = count(mm[1])
	}
	if mm := npmSecondsRE.FindStringSubmatch(out); mm != nil {
		r.Duration = num(mm[1])
		if mm[2] == "ms" {
			r.Duration /= 1000
		}
	}
	if !npmNoVulnsRE.MatchString(out) {
		if mm := npmVulnsRE.FindStringSubmatch(out); mm != nil {
			r.VulnsFound = count(mm[1])
		}
	}
	r.Success = true
	return r, nil
}

// pip show: RFC-822-ish "Key: value" lines; absent metadata stays
// absent in the result.
func parsePipShow(c capture.Capture) (result.Result, error) {
	k := Key{"pip", "show"}
	m := meaning(k, c.ExitCode)
	r := &result.PkgInfoResult{Header: header(c, false)}

	if m != exitClean {
		r.Success = false
		r.ErrorType = errorType(m)
		if strings.Contains(scrubANSI(c.Stderr), "not found:") {
			r.ErrorType = result.ErrNotFound
		}
		r.Error = firstLine(c.Stderr)
		r.RawOutput = clipRaw(c)
		return r, nil
	}

	for _, line := range strings.Split(scrubANSI(c.Stdout), "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		switch key {
		case "Name":
			r.Name = value
		case "Version":
			r.Version = value
		case "Summary":
			r.Summary = value
		case "Home-page":
			r.Homepage = value
		case "Author":
			r.Author = value
		case "License":
			r.License = value
		case "Location":
			r.Location = value
		case "Requires":
			r.Requires = splitCommaList(value)
		case "Required-by":
			r.RequiredBy = splitCommaList(value)
		}
	}
	r.Success = true
	return r, nil
}

func splitCommaList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
