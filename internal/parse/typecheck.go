package parse

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/deixis/foreman/internal/capture"
	"github.com/deixis/foreman/internal/result"
)

// typecheckFailure fills a typecheck result for a tool-level failure exit.
func typecheckFailure(r *result.TypecheckResult, c capture.Capture, m exitMeaning) {
	r.Success = false
	r.ErrorType = errorType(m)
	r.Error = firstLine(c.Stderr)
	if r.Error == "" {
		r.Error = firstLine(c.Stdout)
	}
	r.RawOutput = clipRaw(c)
}

func finishTypecheck(r *result.TypecheckResult, c capture.Capture, m exitMeaning) {
	r.Total = len(r.Diagnostics)
	r.Errors, r.Warnings, r.Notes = tally(r.Diagnostics)
	switch {
	case r.Total > 0:
		r.Success = false
	case m == exitClean:
		r.Success = true
	default:
		degrade(&r.Header, c, "exit code reported findings but none were parsed")
	}
}

// mypy: "file:line[:col]: error|warning|note: message  [code]" plus a
// trailing "Found N errors in M files (checked K source files)" or
// "Success: no issues found in K source files" summary.

var (
	mypyLineRE    = regexp.MustCompile(`^(.+?):(\d+)(?::(\d+))?: (error|warning|note): (.+?)(?:\s+\[([\w-]+)\])?$`)
	mypyCheckedRE = regexp.MustCompile(`checked (\d+) source files?`)
	mypyFoundRE   = regexp.MustCompile(`no issues found in (\d+) source files?`)
)

func parseMypy(c capture.Capture) (result.Result, error) {
	k := Key{"mypy", ""}
	m := meaning(k, c.ExitCode)
	r := &result.TypecheckResult{Header: header(c, false), Tool: "mypy"}

	if m != exitClean && m != exitFindings {
		typecheckFailure(r, c, m)
		return r, nil
	}

	for _, line := range strings.Split(scrubANSI(c.Stdout), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if mm := mypyCheckedRE.FindStringSubmatch(line); mm != nil {
			r.FilesChecked = count(mm[1])
			continue
		}
		if mm := mypyFoundRE.FindStringSubmatch(line); mm != nil {
			r.FilesChecked = count(mm[1])
			continue
		}
		mm := mypyLineRE.FindStringSubmatch(line)
		if mm == nil {
			continue
		}
		sev := result.SeverityNote
		switch mm[4] {
		case "error":
			sev = result.SeverityError
		case "warning":
			sev = result.SeverityWarning
		}
		r.Diagnostics = append(r.Diagnostics, result.Diagnostic{
			File:     mm[1],
			Line:     count(mm[2]),
			Column:   count(mm[3]),
			Code:     mm[6],
			Message:  mm[5],
			Severity: sev,
		})
	}
	finishTypecheck(r, c, m)
	return r, nil
}

// pyright --outputjson: a single JSON object with zero-based positions.

type pyrightOutput struct {
	GeneralDiagnostics []pyrightDiagnostic `json:"generalDiagnostics"`
	Summary            pyrightSummary      `json:"summary"`
}

type pyrightDiagnostic struct {
	File     string       `json:"file"`
	Severity string       `json:"severity"`
	Message  string       `json:"message"`
	Rule     string       `json:"rule"`
	Range    pyrightRange `json:"range"`
}

type pyrightRange struct {
	Start pyrightPosition `json:"start"`
}

type pyrightPosition struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

type pyrightSummary struct {
	FilesAnalyzed int     `json:"filesAnalyzed"`
	TimeInSec     float64 `json:"timeInSec"`
}

func parsePyright(c capture.Capture) (result.Result, error) {
	k := Key{"pyright", ""}
	m := meaning(k, c.ExitCode)
	r := &result.TypecheckResult{Header: header(c, false), Tool: "pyright"}

	if m != exitClean && m != exitFindings {
		typecheckFailure(r, c, m)
		return r, nil
	}

	var out pyrightOutput
	if err := json.Unmarshal([]byte(scrubANSI(c.Stdout)), &out); err != nil {
		return nil, contractErr("pyright", "JSON output mode did not produce an object")
	}

	for _, d := range out.GeneralDiagnostics {
		sev := result.SeverityNote
		switch d.Severity {
		case "error":
			sev = result.SeverityError
		case "warning":
			sev = result.SeverityWarning
		}
		r.Diagnostics = append(r.Diagnostics, result.Diagnostic{
			File:     d.File,
			Line:     d.Range.Start.Line + 1,
			Column:   d.Range.Start.Character + 1,
			Code:     d.Rule,
			Message:  d.Message,
			Severity: sev,
		})
	}
	r.FilesChecked = out.Summary.FilesAnalyzed
	r.Duration = out.Summary.TimeInSec
	finishTypecheck(r, c, m)
	return r, nil
}

// tsc: "file(line,col): error TS1234: message" with occasional global
// "error TS1234: message" lines carrying no position.

var (
	tscLineRE   = regexp.MustCompile(`^(.+?)\((\d+),(\d+)\): (error|warning) (TS\d+): (.+)$`)
	tscGlobalRE = regexp.MustCompile(`^(error|warning) (TS\d+): (.+)$`)
)

func parseTsc(c capture.Capture) (result.Result, error) {
	k := Key{"tsc", ""}
	m := meaning(k, c.ExitCode)
	r := &result.TypecheckResult{Header: header(c, false), Tool: "tsc"}

	if m != exitClean && m != exitFindings {
		typecheckFailure(r, c, m)
		return r, nil
	}

	for _, line := range strings.Split(scrubANSI(c.Stdout), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if mm := tscLineRE.FindStringSubmatch(line); mm != nil {
			sev := result.SeverityError
			if mm[4] == "warning" {
				sev = result.SeverityWarning
			}
			r.Diagnostics = append(r.Diagnostics, result.Diagnostic{
				File:     mm[1],
				Line:     count(mm[2]),
				Column:   count(mm[3]),
				Code:     mm[5],
				Message:  mm[6],
				Severity: sev,
			})
			continue
		}
		if mm := tscGlobalRE.FindStringSubmatch(line); mm != nil {
			sev := result.SeverityError
			if mm[1] == "warning" {
				sev = result.SeverityWarning
			}
			r.Diagnostics = append(r.Diagnostics, result.Diagnostic{
				Code:     mm[2],
				Message:  mm[3],
				Severity: sev,
			})
		}
	}
	finishTypecheck(r, c, m)
	return r, nil
}
