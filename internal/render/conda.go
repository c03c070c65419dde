package render

import (
	"fmt"
	"strings"

	"github.com/deixis/foreman/internal/result"
)

func condaListText(r *result.CondaListResult) string {
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

func condaListCompactText(c *result.CondaListCompact) string {
	if !c.Success {
		return failLine(c.Header)
	}
	if c.Total == 0 {
		return "No packages installed."
	}
	return plural(c.Total, "package") + " installed."
}

func condaInfoText(r *result.CondaInfoResult) string {
	if !r.Success {
		return failLine(r.Header)
	}
	lines := []string{fmt.Sprintf("conda %s (%s).", r.CondaVersion, plural(r.EnvCount, "environment"))}
	if r.PythonVersion != "" {
		lines = append(lines, "  python: "+r.PythonVersion)
	}
	if r.ActiveEnv != "" {
		lines = append(lines, "  active env: "+r.ActiveEnv)
	}
	if r.Platform != "" {
		lines = append(lines, "  platform: "+r.Platform)
	}
	return strings.Join(lines, "\n")
}

func condaInfoCompactText(c *result.CondaInfoCompact) string {
	r := result.CondaInfoResult(*c)
	return condaInfoText(&r)
}

func condaEnvListText(r *result.CondaEnvListResult) string {
	if !r.Success {
		return failLine(r.Header)
	}
	if r.Total == 0 {
		return "No environments found."
	}
	lines := []string{plural(r.Total, "environment") + " found."}
	for _, e := range r.Environments {
		line := fmt.Sprintf("  %s (%s)", e.Name, e.Path)
		if e.Active {
			line += " *"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func condaEnvListCompactText(c *result.CondaEnvListCompact) string {
	if !c.Success {
		return failLine(c.Header)
	}
	if c.Total == 0 {
		return "No environments found."
	}
	return plural(c.Total, "environment") + " found."
}

func condaInstallText(r *result.CondaInstallResult) string {
	if !r.Success {
		return failLine(r.Header)
	}
	head := "Installed "
	if r.DryRun {
		head = "Would install "
	}
	lines := []string{head + plural(r.InstalledCount, "package") + "."}
	for _, p := range r.Installed {
		lines = append(lines, pkgLine(p))
	}
	return strings.Join(lines, "\n")
}

func condaInstallCompactText(c *result.CondaInstallCompact) string {
	if !c.Success {
		return failLine(c.Header)
	}
	head := "Installed "
	if c.DryRun {
		head = "Would install "
	}
	return head + plural(c.InstalledCount, "package") + "."
}

func condaVersionText(h result.Header, version string) string {
	if !h.Success {
		return failLine(h)
	}
	return "conda " + version + "."
}
