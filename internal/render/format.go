package render

import (
	"fmt"
	"strings"

	"github.com/deixis/foreman/internal/result"
)

func formatHead(check bool, changed, unchanged int) string {
	verb := "reformatted"
	if check {
		verb = "would be reformatted"
	}
	head := fmt.Sprintf("%s %s", plural(changed, "file"), verb)
	if unchanged > 0 {
		head += fmt.Sprintf(", %d unchanged", unchanged)
	}
	return head + "."
}

func formatText(r *result.FormatResult) string {
	if r.FilesChanged == 0 {
		if !r.Success {
			return failLine(r.Header)
		}
		if r.Check {
			return "All files already formatted."
		}
		return "No files changed."
	}
	lines := []string{formatHead(r.Check, r.FilesChanged, r.FilesUnchanged)}
	for _, f := range r.ChangedFiles {
		lines = append(lines, "  "+f)
	}
	return strings.Join(lines, "\n")
}

func formatCompactText(c *result.FormatCompact) string {
	if c.FilesChanged == 0 {
		if !c.Success {
			return failLine(c.Header)
		}
		if c.Check {
			return "All files already formatted."
		}
		return "No files changed."
	}
	return formatHead(c.Check, c.FilesChanged, c.FilesUnchanged)
}
