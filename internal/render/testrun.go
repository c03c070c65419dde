package render

import (
	"fmt"
	"strings"

	"github.com/deixis/foreman/internal/result"
)

func testRunHead(r *result.TestRunCompact) string {
	parts := []string{fmt.Sprintf("%d passed", r.Passed), fmt.Sprintf("%d failed", r.Failed)}
	if r.Skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", r.Skipped))
	}
	if r.Errored > 0 {
		parts = append(parts, fmt.Sprintf("%d errored", r.Errored))
	}
	head := strings.Join(parts, ", ")
	if r.Duration > 0 {
		head += " in " + seconds(r.Duration)
	}
	return head + "."
}

func testRunText(r *result.TestRunResult) string {
	if r.Total == 0 {
		if r.Success {
			return "No tests collected."
		}
		return failLine(r.Header)
	}
	c := r.Compact().(*result.TestRunCompact)
	lines := []string{testRunHead(c)}
	if len(r.Failures) > 0 {
		lines = append(lines, "", "Failures:")
		for _, f := range r.Failures {
			if f.Message != "" {
				lines = append(lines, fmt.Sprintf("  %s: %s", f.Test, f.Message))
			} else {
				lines = append(lines, "  "+f.Test)
			}
		}
	}
	return strings.Join(lines, "\n")
}

func testRunCompactText(c *result.TestRunCompact) string {
	if c.Total == 0 {
		if c.Success {
			return "No tests collected."
		}
		return failLine(c.Header)
	}
	lines := []string{testRunHead(c)}
	if len(c.FailureNames) > 0 {
		lines = append(lines, "", "Failures:")
		for _, name := range c.FailureNames {
			lines = append(lines, "  "+name)
		}
	}
	return strings.Join(lines, "\n")
}
