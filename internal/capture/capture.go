// Package capture holds the raw output of one external tool invocation.
// A Capture is produced once by the runner and consumed once by a parser;
// nothing in this package performs I/O.
package capture

import "strings"

// Marker is appended to a stream that was cut at its character budget.
const Marker = "... [truncated]"

// Capture is the (stdout, stderr, exit code) triple from one invocation.
type Capture struct {
	Stdout    string
	Stderr    string
	ExitCode  int
	Truncated bool // set when either stream was cut at its budget
}

// Truncate cuts s to at most budget characters. When s exceeds the budget
// the returned string ends in exactly one Marker and never exceeds budget.
// The second return reports whether anything was cut.
func Truncate(s string, budget int) (string, bool) {
	if budget <= 0 || len(s) <= budget {
		return s, false
	}
	if budget <= len(Marker) {
		return Marker[:budget], true
	}
	return s[:budget-len(Marker)] + Marker, true
}

// Clip returns a copy of c with both streams held to budget characters
// each. Truncated is set if either stream was cut, and is preserved if
// the capture was already marked truncated upstream.
func (c Capture) Clip(budget int) Capture {
	out := c
	var cutOut, cutErr bool
	out.Stdout, cutOut = Truncate(c.Stdout, budget)
	out.Stderr, cutErr = Truncate(c.Stderr, budget)
	out.Truncated = c.Truncated || cutOut || cutErr
	return out
}

// Combined returns stdout followed by stderr, separated by a newline when
// both are non-empty. Parsers that scan both streams use this.
func (c Capture) Combined() string {
	if c.Stdout == "" {
		return c.Stderr
	}
	if c.Stderr == "" {
		return c.Stdout
	}
	return strings.TrimRight(c.Stdout, "\n") + "\n" + c.Stderr
}
