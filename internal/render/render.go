// Package render turns canonical and compact results into one
// human-readable text block, the display/log fallback beside the
// structured payload. Rendering is pure: two values identical in every
// field the renderer reads produce byte-identical text. Zero-finding
// results collapse to a fixed sentence with no detail lines; otherwise
// one summary line is followed by detail lines in the result's entry
// order.
package render

import (
	"fmt"
	"strings"

	"github.com/deixis/foreman/internal/result"
)

// Text renders a canonical or compact result. Types outside the result
// model render empty.
func Text(v any) string {
	var s string
	switch r := v.(type) {
	case *result.LintResult:
		s = lintText(r)
	case *result.LintCompact:
		s = lintCompactText(r)
	case *result.TypecheckResult:
		s = typecheckText(r)
	case *result.TypecheckCompact:
		s = typecheckCompactText(r)
	case *result.FormatResult:
		s = formatText(r)
	case *result.FormatCompact:
		s = formatCompactText(r)
	case *result.TestRunResult:
		s = testRunText(r)
	case *result.TestRunCompact:
		s = testRunCompactText(r)
	case *result.AuditResult:
		s = auditText(r)
	case *result.AuditCompact:
		s = auditCompactText(r)
	case *result.PkgListResult:
		s = pkgListText(r)
	case *result.PkgListCompact:
		s = pkgListCompactText(r)
	case *result.PkgInstallResult:
		s = pkgInstallText(r)
	case *result.PkgInstallCompact:
		s = pkgInstallCompactText(r)
	case *result.PkgInfoResult:
		s = pkgInfoText(r)
	case *result.PkgInfoCompact:
		s = pkgInfoCompactText(r)
	case *result.CondaListResult:
		s = condaListText(r)
	case *result.CondaListCompact:
		s = condaListCompactText(r)
	case *result.CondaInfoResult:
		s = condaInfoText(r)
	case *result.CondaInfoCompact:
		s = condaInfoCompactText(r)
	case *result.CondaEnvListResult:
		s = condaEnvListText(r)
	case *result.CondaEnvListCompact:
		s = condaEnvListCompactText(r)
	case *result.CondaInstallResult:
		s = condaInstallText(r)
	case *result.CondaInstallCompact:
		s = condaInstallCompactText(r)
	case *result.CondaVersionResult:
		s = condaVersionText(r.Header, r.Version)
	case *result.CondaVersionCompact:
		s = condaVersionText(r.Header, r.Version)
	case *result.VCSStatusResult:
		s = vcsStatusText(r)
	case *result.VCSStatusCompact:
		s = vcsStatusCompactText(r)
	case *result.VCSDiffResult:
		s = vcsDiffText(r)
	case *result.VCSDiffCompact:
		s = vcsDiffCompactText(r)
	case *result.VCSLogResult:
		s = vcsLogText(r)
	case *result.VCSLogCompact:
		s = vcsLogCompactText(r)
	case *result.ContainerBuildResult:
		s = containerBuildText(r)
	case *result.ContainerBuildCompact:
		s = containerBuildCompactText(r)
	case *result.ImageListResult:
		s = imageListText(r)
	case *result.ImageListCompact:
		s = imageListCompactText(r)
	case *result.ContainerListResult:
		s = containerListText(r)
	case *result.ContainerListCompact:
		s = containerListCompactText(r)
	case *result.BuildRunResult:
		s = buildRunText(r)
	case *result.BuildRunCompact:
		s = buildRunCompactText(r)
	case *result.CoverageResult:
		s = coverageText(r)
	case *result.CoverageCompact:
		s = coverageCompactText(r)
	}
	if h, ok := v.(interface{ Head() result.Header }); ok && h.Head().Truncated {
		if s != "" {
			s += "\n"
		}
		s += "(output truncated)"
	}
	return s
}

// plural renders a count with its noun, singular at exactly 1.
func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	if strings.HasSuffix(noun, "y") {
		noun = noun[:len(noun)-1] + "ie"
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// failLine renders an invocation-level failure from the shared header.
func failLine(h result.Header) string {
	msg := h.Error
	if msg == "" {
		msg = "invocation failed"
	}
	if h.ErrorType != "" {
		return fmt.Sprintf("Error (%s): %s", h.ErrorType, msg)
	}
	return "Error: " + msg
}

// diagLine renders one diagnostic. Position, code, and the fixable tag
// appear only when present; absence leaves no dangling separator.
func diagLine(d result.Diagnostic) string {
	var b strings.Builder
	b.WriteString("  ")
	if d.File != "" {
		fmt.Fprintf(&b, "%s:%d", d.File, d.Line)
		if d.Column > 0 {
			fmt.Fprintf(&b, ":%d", d.Column)
		}
		b.WriteByte(' ')
	}
	if d.Code != "" {
		b.WriteString(d.Code)
		b.WriteString(": ")
	}
	b.WriteString(d.Message)
	if d.Fixable {
		b.WriteString(" [fixable]")
	}
	return b.String()
}

// fileCountLines renders the compact per-file surrogate list.
func fileCountLines(lines []string, fcs []result.FileCount) []string {
	for _, fc := range fcs {
		lines = append(lines, fmt.Sprintf("  %s: %d", fc.File, fc.Count))
	}
	return lines
}

// seconds formats a duration captured in seconds.
func seconds(d float64) string {
	return fmt.Sprintf("%.2fs", d)
}
