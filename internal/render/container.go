package render

import (
	"fmt"
	"strings"

	"github.com/deixis/foreman/internal/result"
)

func containerBuildLines(c *result.ContainerBuildCompact) []string {
	if !c.Success {
		lines := []string{failLine(c.Header)}
		if c.StepsTotal > 0 {
			lines = append(lines, fmt.Sprintf("Completed %d of %d steps.", c.StepsCompleted, c.StepsTotal))
		} else if c.StepsCompleted > 0 {
			lines = append(lines, fmt.Sprintf("Completed %s.", plural(c.StepsCompleted, "step")))
		}
		return lines
	}
	lines := []string{fmt.Sprintf("Build succeeded (%s).", plural(c.StepsCompleted, "step"))}
	if c.ImageID != "" {
		lines = append(lines, "  image: "+c.ImageID)
	}
	if len(c.Tags) > 0 {
		lines = append(lines, "  tagged: "+strings.Join(c.Tags, ", "))
	}
	return lines
}

func containerBuildText(r *result.ContainerBuildResult) string {
	lines := containerBuildLines(r.Compact().(*result.ContainerBuildCompact))
	for _, step := range r.Steps {
		lines = append(lines, "  "+step)
	}
	return strings.Join(lines, "\n")
}

func containerBuildCompactText(c *result.ContainerBuildCompact) string {
	return strings.Join(containerBuildLines(c), "\n")
}

func imageListText(r *result.ImageListResult) string {
	if !r.Success {
		return failLine(r.Header)
	}
	if r.Total == 0 {
		return "No images found."
	}
	lines := []string{plural(r.Total, "image") + "."}
	for _, img := range r.Images {
		name := img.Repository
		if img.Tag != "" {
			name += ":" + img.Tag
		}
		line := "  " + name
		if img.ID != "" {
			line += " " + img.ID
		}
		if img.Size != "" {
			line += " " + img.Size
		}
		if img.Created != "" {
			line += " (" + img.Created + ")"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func imageListCompactText(c *result.ImageListCompact) string {
	if !c.Success {
		return failLine(c.Header)
	}
	if c.Total == 0 {
		return "No images found."
	}
	return plural(c.Total, "image") + "."
}

func containerListText(r *result.ContainerListResult) string {
	if !r.Success {
		return failLine(r.Header)
	}
	if r.Total == 0 {
		return "No containers running."
	}
	lines := []string{plural(r.Total, "container") + " running."}
	for _, ct := range r.Containers {
		status := ct.Status
		if status == "" {
			status = ct.State
		}
		line := fmt.Sprintf("  %s (%s) %s", ct.Name, ct.Image, status)
		if ct.Ports != "" {
			line += " [" + ct.Ports + "]"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func containerListCompactText(c *result.ContainerListCompact) string {
	if !c.Success {
		return failLine(c.Header)
	}
	if c.Total == 0 {
		return "No containers running."
	}
	lines := []string{plural(c.Total, "container") + " running."}
	for _, name := range c.Names {
		lines = append(lines, "  "+name)
	}
	return strings.Join(lines, "\n")
}
