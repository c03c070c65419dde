package result

// ContainerBuildResult is the canonical result for image builds
// (docker build; classic and BuildKit output). Steps holds the step
// labels in execution order; StepsTotal is the declared step count
// when the output carried one.
type ContainerBuildResult struct {
	Header
	StepsCompleted int      `json:"stepsCompleted"`
	StepsTotal     int      `json:"stepsTotal,omitempty"`
	ImageID        string   `json:"imageId,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	Steps          []string `json:"steps,omitempty"`
}

func (r *ContainerBuildResult) Family() Family { return ContainerBuild }

// Compact drops the step log; counts, image ID, and tags survive.
func (r *ContainerBuildResult) Compact() Compact {
	return &ContainerBuildCompact{
		Header:         r.Header,
		StepsCompleted: r.StepsCompleted,
		StepsTotal:     r.StepsTotal,
		ImageID:        r.ImageID,
		Tags:           r.Tags,
	}
}

// ContainerBuildCompact is the compact projection of
// ContainerBuildResult.
type ContainerBuildCompact struct {
	Header
	StepsCompleted int      `json:"stepsCompleted"`
	StepsTotal     int      `json:"stepsTotal,omitempty"`
	ImageID        string   `json:"imageId,omitempty"`
	Tags           []string `json:"tags,omitempty"`
}

func (c *ContainerBuildCompact) Family() Family { return ContainerBuild }

// ImageListResult is the canonical result for image listings
// (docker images).
type ImageListResult struct {
	Header
	Total  int     `json:"total"`
	Images []Image `json:"images,omitempty"`
}

func (r *ImageListResult) Family() Family { return ImageList }

// Compact drops the image entries; the count survives.
func (r *ImageListResult) Compact() Compact {
	return &ImageListCompact{Header: r.Header, Total: r.Total}
}

// ImageListCompact is the compact projection of ImageListResult.
type ImageListCompact struct {
	Header
	Total int `json:"total"`
}

func (c *ImageListCompact) Family() Family { return ImageList }

// ContainerListResult is the canonical result for container listings
// (docker ps).
type ContainerListResult struct {
	Header
	Total      int         `json:"total"`
	Containers []Container `json:"containers,omitempty"`
}

func (r *ContainerListResult) Family() Family { return ContainerList }

// Compact replaces the container objects with their names.
func (r *ContainerListResult) Compact() Compact {
	c := &ContainerListCompact{Header: r.Header, Total: r.Total}
	for _, ct := range r.Containers {
		c.Names = append(c.Names, ct.Name)
	}
	return c
}

// ContainerListCompact is the compact projection of
// ContainerListResult.
type ContainerListCompact struct {
	Header
	Total int      `json:"total"`
	Names []string `json:"names,omitempty"`
}

func (c *ContainerListCompact) Family() Family { return ContainerList }
