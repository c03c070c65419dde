package parse

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/deixis/foreman/internal/capture"
	"github.com/deixis/foreman/internal/result"
)

// auditFailure fills an audit result for a tool-level failure exit.
func auditFailure(r *result.AuditResult, c capture.Capture, m exitMeaning) {
	r.Success = false
	r.ErrorType = errorType(m)
	r.Error = firstLine(c.Stderr)
	if r.Error == "" {
		r.Error = firstLine(c.Stdout)
	}
	r.RawOutput = clipRaw(c)
}

func finishAudit(r *result.AuditResult, c capture.Capture, m exitMeaning) {
	r.Total = len(r.Vulnerabilities)
	switch {
	case r.Total > 0:
		r.Success = false
	case m == exitClean:
		r.Success = true
	default:
		degrade(&r.Header, c, "exit code reported vulnerabilities but none were parsed")
	}
}

// pip-audit -f json: {"dependencies": [{name, version, vulns: [...]}]};
// a dependency with no vulns contributes no entries.

type pipAuditOutput struct {
	Dependencies []pipAuditDependency `json:"dependencies"`
}

type pipAuditDependency struct {
	Name    string         `json:"name"`
	Version string         `json:"version"`
	Vulns   []pipAuditVuln `json:"vulns"`
}

type pipAuditVuln struct {
	ID          string   `json:"id"`
	FixVersions []string `json:"fix_versions"`
	Description string   `json:"description"`
}

func parsePipAudit(c capture.Capture) (result.Result, error) {
	k := Key{"pip-audit", ""}
	m := meaning(k, c.ExitCode)
	r := &result.AuditResult{Header: header(c, false), Tool: "pip-audit"}

	if m != exitClean && m != exitFindings {
		auditFailure(r, c, m)
		return r, nil
	}

	var out pipAuditOutput
	if err := json.Unmarshal([]byte(scrubANSI(c.Stdout)), &out); err != nil {
		return nil, contractErr("pip-audit", "JSON output mode did not produce an object")
	}

	for _, dep := range out.Dependencies {
		for _, v := range dep.Vulns {
			r.Vulnerabilities = append(r.Vulnerabilities, result.Vulnerability{
				Package:     dep.Name,
				Version:     dep.Version,
				ID:          v.ID,
				Description: firstMeaningful(strings.Split(v.Description, "\n")),
				FixVersions: v.FixVersions,
			})
		}
	}
	finishAudit(r, c, m)
	return r, nil
}

// npm audit --json: {"vulnerabilities": {<name>: {severity, via: [...]}}}
// where via mixes advisory objects and plain dependency-name strings.
// One entry per advisory object, packages in name order.

type npmAuditOutput struct {
	Vulnerabilities map[string]npmAuditPackage `json:"vulnerabilities"`
}

type npmAuditPackage struct {
	Name     string            `json:"name"`
	Severity string            `json:"severity"`
	Via      []json.RawMessage `json:"via"`
}

type npmAuditAdvisory struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Severity string `json:"severity"`
}

func parseNpmAudit(c capture.Capture) (result.Result, error) {
	k := Key{"npm", "audit"}
	m := meaning(k, c.ExitCode)
	r := &result.AuditResult{Header: header(c, false), Tool: "npm audit"}

	if m != exitClean && m != exitFindings {
		auditFailure(r, c, m)
		return r, nil
	}

	var out npmAuditOutput
	if err := json.Unmarshal([]byte(scrubANSI(c.Stdout)), &out); err != nil {
		return nil, contractErr("npm audit", "JSON output mode did not produce an object")
	}

	names := make([]string, 0, len(out.Vulnerabilities))
	for name := range out.Vulnerabilities {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		pkg := out.Vulnerabilities[name]
		for _, raw := range pkg.Via {
			var adv npmAuditAdvisory
			if err := json.Unmarshal(raw, &adv); err != nil {
				continue
			}
			if adv.Title == "" && adv.URL == "" {
				continue
			}
			id := adv.URL
			if i := strings.LastIndex(id, "/"); i >= 0 {
				id = id[i+1:]
			}
			if id == "" {
				id = adv.Title
			}
			sev := adv.Severity
			if sev == "" {
				sev = pkg.Severity
			}
			r.Vulnerabilities = append(r.Vulnerabilities, result.Vulnerability{
				Package:     name,
				ID:          id,
				Severity:    sev,
				Description: adv.Title,
			})
		}
	}
	finishAudit(r, c, m)
	return r, nil
}

// govulncheck -json: a stream of JSON messages; "osv" messages define
// advisories, "finding" messages reference them by id. Findings are
// deduplicated by OSV id, first trace entry wins.

type govulncheckMessage struct {
	OSV     *govulncheckOSV     `json:"osv"`
	Finding *govulncheckFinding `json:"finding"`
}

type govulncheckOSV struct {
	ID      string `json:"id"`
	Summary string `json:"summary"`
}

type govulncheckFinding struct {
	OSV          string                    `json:"osv"`
	FixedVersion string                    `json:"fixed_version"`
	Trace        []govulncheckTraceElement `json:"trace"`
}

type govulncheckTraceElement struct {
	Module  string `json:"module"`
	Version string `json:"version"`
}

func parseGovulncheck(c capture.Capture) (result.Result, error) {
	k := Key{"govulncheck", ""}
	m := meaning(k, c.ExitCode)
	r := &result.AuditResult{Header: header(c, false), Tool: "govulncheck"}

	if m != exitClean && m != exitFindings {
		auditFailure(r, c, m)
		return r, nil
	}

	lines := strings.Split(c.Stdout, "\n")
	summaries := make(map[string]string)
	for _, line := range lines {
		var msg govulncheckMessage
		if err := json.Unmarshal([]byte(line), &msg); err != nil || msg.OSV == nil {
			continue
		}
		summaries[msg.OSV.ID] = msg.OSV.Summary
	}

	seen := make(map[string]bool)
	for _, line := range lines {
		var msg govulncheckMessage
		if err := json.Unmarshal([]byte(line), &msg); err != nil || msg.Finding == nil {
			continue
		}
		f := msg.Finding
		if f.OSV == "" || seen[f.OSV] {
			continue
		}
		seen[f.OSV] = true
		v := result.Vulnerability{ID: f.OSV, Description: summaries[f.OSV]}
		if len(f.Trace) > 0 {
			v.Package = f.Trace[0].Module
			v.Version = strings.TrimPrefix(f.Trace[0].Version, "v")
		}
		if f.FixedVersion != "" {
			v.FixVersions = []string{strings.TrimPrefix(f.FixedVersion, "v")}
		}
		r.Vulnerabilities = append(r.Vulnerabilities, v)
	}
	finishAudit(r, c, m)
	return r, nil
}

// cargo audit --json: {"vulnerabilities": {found, count, list: [...]}}.

type cargoAuditOutput struct {
	Vulnerabilities cargoAuditVulnerabilities `json:"vulnerabilities"`
}

type cargoAuditVulnerabilities struct {
	List []cargoAuditEntry `json:"list"`
}

type cargoAuditEntry struct {
	Advisory cargoAuditAdvisory `json:"advisory"`
	Versions cargoAuditVersions `json:"versions"`
	Package  cargoAuditPackage  `json:"package"`
}

type cargoAuditAdvisory struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type cargoAuditVersions struct {
	Patched []string `json:"patched"`
}

type cargoAuditPackage struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func parseCargoAudit(c capture.Capture) (result.Result, error) {
	k := Key{"cargo", "audit"}
	m := meaning(k, c.ExitCode)
	r := &result.AuditResult{Header: header(c, false), Tool: "cargo audit"}

	if m != exitClean && m != exitFindings {
		auditFailure(r, c, m)
		return r, nil
	}

	var out cargoAuditOutput
	if err := json.Unmarshal([]byte(scrubANSI(c.Stdout)), &out); err != nil {
		return nil, contractErr("cargo audit", "JSON output mode did not produce an object")
	}

	for _, e := range out.Vulnerabilities.List {
		r.Vulnerabilities = append(r.Vulnerabilities, result.Vulnerability{
			Package:     e.Package.Name,
			Version:     e.Package.Version,
			ID:          e.Advisory.ID,
			Description: e.Advisory.Title,
			FixVersions: e.Versions.Patched,
		})
	}
	finishAudit(r, c, m)
	return r, nil
}
