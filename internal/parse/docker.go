package parse

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/deixis/foreman/internal/capture"
	"github.com/deixis/foreman/internal/result"
)

// docker build is parsed in both engine dialects. Classic output puts
// "Step i/N : INSTRUCTION" lines on stdout and ends with "Successfully
// built ID" / "Successfully tagged TAG". BuildKit streams "#k [i/N]
// INSTRUCTION" lines on stderr, reports "writing image sha256:..." on
// success and "ERROR: failed to solve: msg" on failure.

var (
	classicStepRE   = regexp.MustCompile(`^Step (\d+)/(\d+) : (.+)$`)
	classicBuiltRE  = regexp.MustCompile(`^Successfully built (\S+)$`)
	classicTaggedRE = regexp.MustCompile(`^Successfully tagged (\S+)$`)
	buildkitStepRE  = regexp.MustCompile(`^#\d+ \[(?:[\w-]+ )?(\d+)/(\d+)\] (.+)$`)
	buildkitImageRE = regexp.MustCompile(`writing image (sha256:\S+)`)
	buildkitTagRE   = regexp.MustCompile(`^#\d+ naming to (\S+)`)
	buildkitErrRE   = regexp.MustCompile(`^ERROR: (.+)$`)
)

func parseDockerBuild(c capture.Capture) (result.Result, error) {
	k := Key{"docker", "build"}
	m := meaning(k, c.ExitCode)
	r := &result.ContainerBuildResult{Header: header(c, false)}

	if m != exitClean && m != exitFindings {
		r.ErrorType = errorType(m)
		degrade(&r.Header, c, firstLine(c.Stderr))
		return r, nil
	}

	steps := make(map[string]bool)
	buildErr := ""
	for _, line := range strings.Split(scrubANSI(c.Combined()), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if mm := classicStepRE.FindStringSubmatch(line); mm != nil {
			r.StepsTotal = count(mm[2])
			if !steps[mm[1]] {
				steps[mm[1]] = true
				r.Steps = append(r.Steps, mm[3])
			}
			continue
		}
		if mm := buildkitStepRE.FindStringSubmatch(line); mm != nil {
			r.StepsTotal = count(mm[2])
			if !steps[mm[1]] {
				steps[mm[1]] = true
				r.Steps = append(r.Steps, mm[3])
			}
			continue
		}
		if mm := classicBuiltRE.FindStringSubmatch(line); mm != nil {
			r.ImageID = mm[1]
			continue
		}
		if mm := classicTaggedRE.FindStringSubmatch(line); mm != nil {
			r.Tags = append(r.Tags, mm[1])
			continue
		}
		if mm := buildkitImageRE.FindStringSubmatch(line); mm != nil {
			r.ImageID = mm[1]
			continue
		}
		if mm := buildkitTagRE.FindStringSubmatch(line); mm != nil {
			r.Tags = append(r.Tags, mm[1])
			continue
		}
		if mm := buildkitErrRE.FindStringSubmatch(line); mm != nil {
			buildErr = mm[1]
		}
	}
	r.StepsCompleted = len(r.Steps)

	switch {
	case m == exitClean:
		r.Success = true
	case buildErr != "":
		r.Success = false
		r.Error = buildErr
		r.RawOutput = clipRaw(c)
	default:
		degrade(&r.Header, c, "build failed")
	}
	return r, nil
}

// docker images --format {{json .}}: one JSON object per line.

type dockerImageLine struct {
	Repository   string `json:"Repository"`
	Tag          string `json:"Tag"`
	ID           string `json:"ID"`
	Size         string `json:"Size"`
	CreatedSince string `json:"CreatedSince"`
}

func parseDockerImages(c capture.Capture) (result.Result, error) {
	k := Key{"docker", "images"}
	m := meaning(k, c.ExitCode)
	r := &result.ImageListResult{Header: header(c, false)}

	if m != exitClean {
		r.ErrorType = errorType(m)
		degrade(&r.Header, c, firstLine(c.Stderr))
		return r, nil
	}

	for _, line := range strings.Split(scrubANSI(c.Stdout), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var img dockerImageLine
		if err := json.Unmarshal([]byte(line), &img); err != nil {
			continue
		}
		if img.ID == "" {
			continue
		}
		r.Images = append(r.Images, result.Image{
			Repository: img.Repository,
			Tag:        img.Tag,
			ID:         img.ID,
			Size:       img.Size,
			Created:    img.CreatedSince,
		})
	}
	r.Total = len(r.Images)
	r.Success = true
	return r, nil
}

// docker ps --format {{json .}}: one JSON object per line.

type dockerPsLine struct {
	ID     string `json:"ID"`
	Image  string `json:"Image"`
	Names  string `json:"Names"`
	State  string `json:"State"`
	Status string `json:"Status"`
	Ports  string `json:"Ports"`
}

func parseDockerPs(c capture.Capture) (result.Result, error) {
	k := Key{"docker", "ps"}
	m := meaning(k, c.ExitCode)
	r := &result.ContainerListResult{Header: header(c, false)}

	if m != exitClean {
		r.ErrorType = errorType(m)
		degrade(&r.Header, c, firstLine(c.Stderr))
		return r, nil
	}

	for _, line := range strings.Split(scrubANSI(c.Stdout), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var ct dockerPsLine
		if err := json.Unmarshal([]byte(line), &ct); err != nil {
			continue
		}
		if ct.ID == "" {
			continue
		}
		r.Containers = append(r.Containers, result.Container{
			ID:     ct.ID,
			Image:  ct.Image,
			Name:   ct.Names,
			State:  ct.State,
			Status: ct.Status,
			Ports:  ct.Ports,
		})
	}
	r.Total = len(r.Containers)
	r.Success = true
	return r, nil
}
