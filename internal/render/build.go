package render

import (
	"fmt"
	"strings"

	"github.com/deixis/foreman/internal/result"
)

func buildRunHead(target string, total int) string {
	head := "Build failed"
	if target != "" {
		head += " in " + target
	}
	return fmt.Sprintf("%s: %s.", head, plural(total, "error"))
}

func buildRunText(r *result.BuildRunResult) string {
	if r.Success {
		if r.ErrorType == result.ErrNothingToDo {
			return "Nothing to be done."
		}
		return "Build succeeded."
	}
	if r.Total == 0 {
		return failLine(r.Header)
	}
	lines := []string{buildRunHead(r.Target, r.Total)}
	for _, d := range r.Errors {
		lines = append(lines, diagLine(d))
	}
	return strings.Join(lines, "\n")
}

func buildRunCompactText(c *result.BuildRunCompact) string {
	if c.Success {
		if c.ErrorType == result.ErrNothingToDo {
			return "Nothing to be done."
		}
		return "Build succeeded."
	}
	if c.Total == 0 {
		return failLine(c.Header)
	}
	lines := []string{buildRunHead(c.Target, c.Total)}
	return strings.Join(fileCountLines(lines, c.FileCounts), "\n")
}

func coverageHead(c *result.CoverageCompact) string {
	return fmt.Sprintf("Coverage %.1f%% (%d of %d statements missed, %s).",
		c.Percent, c.TotalMissed, c.TotalStatements, plural(c.TotalFiles, "file"))
}

func coverageText(r *result.CoverageResult) string {
	if r.TotalStatements == 0 && r.TotalFiles == 0 {
		if r.Success {
			return "No coverage data."
		}
		return failLine(r.Header)
	}
	lines := []string{coverageHead(r.Compact().(*result.CoverageCompact))}
	for _, f := range r.Files {
		lines = append(lines, fmt.Sprintf("  %s %.1f%% (%d of %d missed)", f.File, f.Percent, f.Missed, f.Statements))
	}
	return strings.Join(lines, "\n")
}

func coverageCompactText(c *result.CoverageCompact) string {
	if c.TotalStatements == 0 && c.TotalFiles == 0 {
		if c.Success {
			return "No coverage data."
		}
		return failLine(c.Header)
	}
	return coverageHead(c)
}
