package render

import (
	"fmt"
	"strings"

	"github.com/deixis/foreman/internal/result"
)

func pkgLine(p result.Package) string {
	if p.Version == "" {
		return "  " + p.Name
	}
	return fmt.Sprintf("  %s %s", p.Name, p.Version)
}

func pkgListText(r *result.PkgListResult) string {
	if !r.Success {
		return failLine(r.Header)
	}
	if r.Total == 0 {
		return "No packages installed."
	}
	lines := []string{plural(r.Total, "package") + " installed."}
	for _, p := range r.Packages {
		lines = append(lines, pkgLine(p))
	}
	return strings.Join(lines, "\n")
}

func pkgListCompactText(c *result.PkgListCompact) string {
	if !c.Success {
		return failLine(c.Header)
	}
	if c.Total == 0 {
		return "No packages installed."
	}
	return plural(c.Total, "package") + " installed."
}

func pkgInstallHead(c *result.PkgInstallCompact) string {
	var b strings.Builder
	if c.DryRun {
		b.WriteString("Would install ")
	} else {
		b.WriteString("Installed ")
	}
	b.WriteString(plural(c.InstalledCount, "package"))
	if c.AlreadySatisfied > 0 {
		fmt.Fprintf(&b, ", %d already satisfied", c.AlreadySatisfied)
	}
	if c.Removed > 0 {
		fmt.Fprintf(&b, ", %d removed", c.Removed)
	}
	if c.Audited > 0 {
		fmt.Fprintf(&b, ", %d audited", c.Audited)
	}
	if c.Duration > 0 {
		b.WriteString(" in " + seconds(c.Duration))
	}
	b.WriteByte('.')
	if c.VulnsFound > 0 {
		b.WriteString(" Found " + plural(c.VulnsFound, "vulnerability") + ".")
	}
	return b.String()
}

func pkgInstallText(r *result.PkgInstallResult) string {
	if !r.Success {
		return failLine(r.Header)
	}
	c := r.Compact().(*result.PkgInstallCompact)
	lines := []string{pkgInstallHead(c)}
	for _, p := range r.Installed {
		lines = append(lines, pkgLine(p))
	}
	return strings.Join(lines, "\n")
}

func pkgInstallCompactText(c *result.PkgInstallCompact) string {
	if !c.Success {
		return failLine(c.Header)
	}
	return pkgInstallHead(c)
}

func pkgInfoText(r *result.PkgInfoResult) string {
	if !r.Success {
		return failLine(r.Header)
	}
	lines := []string{strings.TrimSpace(r.Name + " " + r.Version)}
	if r.Summary != "" {
		lines = append(lines, "  "+r.Summary)
	}
	if r.Homepage != "" {
		lines = append(lines, "  homepage: "+r.Homepage)
	}
	if r.Author != "" {
		lines = append(lines, "  author: "+r.Author)
	}
	if r.License != "" {
		lines = append(lines, "  license: "+r.License)
	}
	if r.Location != "" {
		lines = append(lines, "  location: "+r.Location)
	}
	if len(r.Requires) > 0 {
		lines = append(lines, "  requires: "+strings.Join(r.Requires, ", "))
	}
	if len(r.RequiredBy) > 0 {
		lines = append(lines, "  required by: "+strings.Join(r.RequiredBy, ", "))
	}
	return strings.Join(lines, "\n")
}

func pkgInfoCompactText(c *result.PkgInfoCompact) string {
	if !c.Success {
		return failLine(c.Header)
	}
	return strings.TrimSpace(c.Name + " " + c.Version)
}
