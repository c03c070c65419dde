package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/deixis/foreman/internal/capture"
	"github.com/deixis/foreman/internal/result"
)

// ansiRE matches CSI and OSC terminal control sequences. Tools run
// without a TTY usually suppress color, but some emit it regardless.
var ansiRE = regexp.MustCompile("\x1b\\[[0-9;?]*[ -/]*[@-~]|\x1b\\][^\x07\x1b]*(?:\x07|\x1b\\\\)")

// scrubANSI strips terminal control sequences so line grammars match
// on plain text. Partial trailing sequences are left in place; they
// fail to match and the line is skipped.
func scrubANSI(s string) string {
	if !strings.Contains(s, "\x1b") {
		return s
	}
	return ansiRE.ReplaceAllString(s, "")
}

// rawTailLen caps the rawOutput carried by a degraded result.
const rawTailLen = 2000

// clipRaw returns the head of the combined output for degrade
// reporting.
func clipRaw(c capture.Capture) string {
	s := strings.TrimSpace(scrubANSI(c.Combined()))
	if len(s) > rawTailLen {
		s = s[:rawTailLen]
	}
	return s
}

// header builds the shared result header from a capture. Truncated
// propagates from the capture, never recomputed.
func header(c capture.Capture, success bool) result.Header {
	return result.Header{Success: success, Truncated: c.Truncated}
}

// degrade marks a result whose output carried no recognizable data.
func degrade(h *result.Header, c capture.Capture, msg string) {
	if msg == "" {
		msg = "unrecognized tool output"
	}
	h.Success = false
	h.Error = msg
	h.RawOutput = clipRaw(c)
}

// num parses a numeric capture as float, 0 on failure.
func num(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// count parses a numeric capture as int, 0 on failure.
func count(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
