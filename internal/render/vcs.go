package render

import (
	"fmt"
	"strings"

	"github.com/deixis/foreman/internal/result"
)

func branchLine(branch, upstream string, ahead, behind int) string {
	var b strings.Builder
	b.WriteString("On branch " + branch)
	if upstream != "" {
		b.WriteString(", tracking " + upstream)
	}
	if ahead > 0 || behind > 0 {
		var parts []string
		if ahead > 0 {
			parts = append(parts, fmt.Sprintf("ahead %d", ahead))
		}
		if behind > 0 {
			parts = append(parts, fmt.Sprintf("behind %d", behind))
		}
		fmt.Fprintf(&b, " (%s)", strings.Join(parts, ", "))
	}
	b.WriteByte('.')
	return b.String()
}

func statusCode(fs result.FileStatus) string {
	x, y := fs.Staged, fs.Unstaged
	if x == "" {
		x = "."
	}
	if y == "" {
		y = "."
	}
	return x + y
}

func vcsStatusText(r *result.VCSStatusResult) string {
	if !r.Success {
		return failLine(r.Header)
	}
	var lines []string
	if r.Branch != "" {
		lines = append(lines, branchLine(r.Branch, r.Upstream, r.Ahead, r.Behind))
	}
	if r.Total == 0 {
		lines = append(lines, "Working tree clean.")
		return strings.Join(lines, "\n")
	}
	lines = append(lines, fmt.Sprintf("%s (%d staged, %d unstaged, %d untracked).",
		plural(r.Total, "changed file"), r.Staged, r.Unstaged, r.Untracked))
	for _, fs := range r.Files {
		line := fmt.Sprintf("  %s %s", statusCode(fs), fs.Path)
		if fs.RenamedFrom != "" {
			line += " (from " + fs.RenamedFrom + ")"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func vcsStatusCompactText(c *result.VCSStatusCompact) string {
	if !c.Success {
		return failLine(c.Header)
	}
	var lines []string
	if c.Branch != "" {
		lines = append(lines, branchLine(c.Branch, c.Upstream, c.Ahead, c.Behind))
	}
	if c.Total == 0 {
		lines = append(lines, "Working tree clean.")
	} else {
		lines = append(lines, fmt.Sprintf("%s (%d staged, %d unstaged, %d untracked).",
			plural(c.Total, "changed file"), c.Staged, c.Unstaged, c.Untracked))
	}
	return strings.Join(lines, "\n")
}

func vcsDiffHead(files, added, deleted int) string {
	return fmt.Sprintf("%s changed, %s(+), %s(-).",
		plural(files, "file"), plural(added, "insertion"), plural(deleted, "deletion"))
}

func vcsDiffText(r *result.VCSDiffResult) string {
	if !r.Success {
		return failLine(r.Header)
	}
	if r.FilesChanged == 0 {
		return "No changes."
	}
	lines := []string{vcsDiffHead(r.FilesChanged, r.Added, r.Deleted)}
	for _, ds := range r.Files {
		if ds.Binary {
			lines = append(lines, fmt.Sprintf("  %s (binary)", ds.Path))
		} else {
			lines = append(lines, fmt.Sprintf("  %s +%d -%d", ds.Path, ds.Added, ds.Deleted))
		}
	}
	return strings.Join(lines, "\n")
}

func vcsDiffCompactText(c *result.VCSDiffCompact) string {
	if !c.Success {
		return failLine(c.Header)
	}
	if c.FilesChanged == 0 {
		return "No changes."
	}
	return vcsDiffHead(c.FilesChanged, c.Added, c.Deleted)
}

func vcsLogText(r *result.VCSLogResult) string {
	if !r.Success {
		return failLine(r.Header)
	}
	if r.Total == 0 {
		return "No commits."
	}
	lines := []string{plural(r.Total, "commit") + "."}
	for _, cm := range r.Commits {
		lines = append(lines, fmt.Sprintf("  %s %s (%s, %s)", cm.Hash, cm.Subject, cm.Author, cm.Date))
	}
	return strings.Join(lines, "\n")
}

func vcsLogCompactText(c *result.VCSLogCompact) string {
	if !c.Success {
		return failLine(c.Header)
	}
	if c.Total == 0 {
		return "No commits."
	}
	lines := []string{plural(c.Total, "commit") + "."}
	for _, s := range c.Subjects {
		lines = append(lines, "  "+s)
	}
	return strings.Join(lines, "\n")
}
