// Package runner provides safe command execution with workspace bounds,
// timeouts that kill the whole process group, and output size limits.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/deixis/foreman/internal/capture"
)

// Runner executes commands safely within a workspace boundary.
type Runner struct {
	Workspace string
	Timeout   time.Duration
	MaxOutput int // bytes per stream
}

// Run executes a command with the given argv. The first element is the
// binary name (resolved via PATH), and the rest are arguments.
// cwd is resolved relative to the workspace root and must remain within it.
// On timeout the entire process group is killed, not just the child.
func (r *Runner) Run(ctx context.Context, argv []string, cwd string) (*Result, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("empty argv")
	}

	dir, err := r.resolveDir(cwd)
	if err != nil {
		return nil, err
	}

	timeout := r.Timeout
	maxOutput := r.MaxOutput

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	runID := uuid.New().String()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	setProcGroup(cmd)
	cmd.Cancel = func() error { return killProcGroup(cmd) }
	cmd.WaitDelay = 5 * time.Second

	outW := &limitWriter{buf: &bytes.Buffer{}, limit: maxOutput}
	errW := &limitWriter{buf: &bytes.Buffer{}, limit: maxOutput}
	cmd.Stdout = outW
	cmd.Stderr = errW

	runErr := cmd.Run()

	exitCode := 0
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			// Binary not found or other exec error.
			return nil, fmt.Errorf("executing %s: %w", argv[0], runErr)
		}
	}

	stdout := outW.buf.String()
	stderr := errW.buf.String()
	if outW.truncated {
		stdout = markCut(stdout, maxOutput)
	}
	if errW.truncated {
		stderr = markCut(stderr, maxOutput)
	}

	return &Result{
		RunID: runID,
		Capture: capture.Capture{
			ExitCode:  exitCode,
			Stdout:    stdout,
			Stderr:    stderr,
			Truncated: outW.truncated || errW.truncated,
		},
	}, nil
}

// resolveDir resolves cwd relative to the workspace and validates it
// is within the workspace boundary.
func (r *Runner) resolveDir(cwd string) (string, error) {
	if cwd == "" {
		return r.Workspace, nil
	}

	var dir string
	if filepath.IsAbs(cwd) {
		dir = filepath.Clean(cwd)
	} else {
		dir = filepath.Clean(filepath.Join(r.Workspace, cwd))
	}

	rel, err := filepath.Rel(r.Workspace, dir)
	if err != nil {
		return "", fmt.Errorf("resolving cwd: %w", err)
	}
	if strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("cwd %q is outside workspace %q", cwd, r.Workspace)
	}
	return dir, nil
}

// limitWriter writes up to limit bytes to buf, then silently discards the
// rest, recording that the stream was cut.
type limitWriter struct {
	buf       *bytes.Buffer
	limit     int
	truncated bool
}

func (w *limitWriter) Write(p []byte) (int, error) {
	remaining := w.limit - w.buf.Len()
	if remaining <= 0 {
		w.truncated = true
		return len(p), nil // discard
	}
	if len(p) > remaining {
		// Write only what fits, but report all bytes as consumed
		// to avoid short write errors from io.Copy.
		w.buf.Write(p[:remaining])
		w.truncated = true
		return len(p), nil
	}
	return w.buf.Write(p)
}

// markCut rewrites the tail of a capped stream so it ends in exactly one
// truncation marker and never exceeds the limit.
func markCut(s string, limit int) string {
	if limit <= len(capture.Marker) {
		return capture.Marker[:limit]
	}
	if len(s) > limit-len(capture.Marker) {
		s = s[:limit-len(capture.Marker)]
	}
	return s + capture.Marker
}
