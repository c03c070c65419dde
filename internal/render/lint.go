package render

import (
	"fmt"
	"strings"

	"github.com/deixis/foreman/internal/result"
)

func issueHead(total, errs, warns, notes, fixable int) string {
	parts := []string{plural(errs, "error"), plural(warns, "warning")}
	if notes > 0 {
		parts = append(parts, plural(notes, "note"))
	}
	if fixable > 0 {
		parts = append(parts, fmt.Sprintf("%d fixable", fixable))
	}
	return fmt.Sprintf("%s found (%s).", plural(total, "issue"), strings.Join(parts, ", "))
}

func lintText(r *result.LintResult) string {
	if r.Total == 0 {
		if r.Success {
			return "No issues found."
		}
		return failLine(r.Header)
	}
	lines := []string{issueHead(r.Total, r.Errors, r.Warnings, r.Notes, r.Fixable)}
	for _, d := range r.Diagnostics {
		lines = append(lines, diagLine(d))
	}
	return strings.Join(lines, "\n")
}

func lintCompactText(c *result.LintCompact) string {
	if c.Total == 0 {
		if c.Success {
			return "No issues found."
		}
		return failLine(c.Header)
	}
	lines := []string{issueHead(c.Total, c.Errors, c.Warnings, c.Notes, c.Fixable)}
	return strings.Join(fileCountLines(lines, c.FileCounts), "\n")
}

func typecheckHead(total, errs, warns, notes, checked int, dur float64) string {
	head := issueHead(total, errs, warns, notes, 0)
	if checked > 0 {
		if dur > 0 {
			head += fmt.Sprintf(" Checked %s in %s.", plural(checked, "file"), seconds(dur))
		} else {
			head += fmt.Sprintf(" Checked %s.", plural(checked, "file"))
		}
	}
	return head
}

func typecheckText(r *result.TypecheckResult) string {
	if r.Total == 0 {
		if r.Success {
			return "No issues found."
		}
		return failLine(r.Header)
	}
	lines := []string{typecheckHead(r.Total, r.Errors, r.Warnings, r.Notes, r.FilesChecked, r.Duration)}
	for _, d := range r.Diagnostics {
		lines = append(lines, diagLine(d))
	}
	return strings.Join(lines, "\n")
}

func typecheckCompactText(c *result.TypecheckCompact) string {
	if c.Total == 0 {
		if c.Success {
			return "No issues found."
		}
		return failLine(c.Header)
	}
	lines := []string{typecheckHead(c.Total, c.Errors, c.Warnings, c.Notes, c.FilesChecked, c.Duration)}
	return strings.Join(fileCountLines(lines, c.FileCounts), "\n")
}
