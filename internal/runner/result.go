package runner

import "github.com/deixis/foreman/internal/capture"

// Result holds the output of a command execution.
type Result struct {
	RunID string // unique identifier for this run
	capture.Capture
}
