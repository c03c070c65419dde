package render

import (
	"fmt"
	"strings"

	"github.com/deixis/foreman/internal/result"
)

func vulnLine(v result.Vulnerability) string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(v.Package)
	if v.Version != "" {
		b.WriteByte(' ')
		b.WriteString(v.Version)
	}
	if v.ID != "" {
		b.WriteByte(' ')
		b.WriteString(v.ID)
	}
	if v.Severity != "" {
		fmt.Fprintf(&b, " (%s)", v.Severity)
	}
	if v.Description != "" {
		b.WriteString(": ")
		b.WriteString(v.Description)
	}
	if len(v.FixVersions) > 0 {
		fmt.Fprintf(&b, " [fix: %s]", strings.Join(v.FixVersions, ", "))
	}
	return b.String()
}

func auditText(r *result.AuditResult) string {
	if r.Total == 0 {
		if r.Success {
			return "No vulnerabilities found."
		}
		return failLine(r.Header)
	}
	lines := []string{plural(r.Total, "vulnerability") + " found."}
	for _, v := range r.Vulnerabilities {
		lines = append(lines, vulnLine(v))
	}
	return strings.Join(lines, "\n")
}

func auditCompactText(c *result.AuditCompact) string {
	if c.Total == 0 {
		if c.Success {
			return "No vulnerabilities found."
		}
		return failLine(c.Header)
	}
	lines := []string{plural(c.Total, "vulnerability") + " found."}
	for _, id := range c.VulnerabilityIDs {
		lines = append(lines, "  "+id)
	}
	return strings.Join(lines, "\n")
}
