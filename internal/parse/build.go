package parse

import (
	"regexp"
	"strings"

	"github.com/deixis/foreman/internal/capture"
	"github.com/deixis/foreman/internal/result"
)

// make: exit 0 is clean (or "Nothing to be done"), exit 2 a failed
// recipe. Compiler-style diagnostics and make's own "*** [target]
// Error N" lines become error entries.

var (
	makeNothingRE  = regexp.MustCompile(`make(?:\[\d+\])?: Nothing to be done for .+\.`)
	makeErrorRE    = regexp.MustCompile(`^make(?:\[\d+\])?: \*\*\* \[(?:(.+?):(\d+): )?(.+?)\] (Error \d+|.+)$`)
	makeNoRuleRE   = regexp.MustCompile(`^make(?:\[\d+\])?: \*\*\* (No rule to make target .+)$`)
	compilerDiagRE = regexp.MustCompile(`^(.+?):(\d+):(?:(\d+):)? (?:fatal )?(error|warning|note): (.+)$`)
)

func parseMake(c capture.Capture) (result.Result, error) {
	k := Key{"make", ""}
	m := meaning(k, c.ExitCode)
	r := &result.BuildRunResult{Header: header(c, false), Tool: "make"}

	if m == exitClean {
		r.Success = true
		if makeNothingRE.MatchString(scrubANSI(c.Stdout)) {
			r.ErrorType = result.ErrNothingToDo
		}
		return r, nil
	}
	if m != exitFindings {
		r.Success = false
		r.ErrorType = errorType(m)
		r.Error = firstLine(c.Stderr)
		r.RawOutput = clipRaw(c)
		return r, nil
	}

	for _, line := range strings.Split(scrubANSI(c.Combined()), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if mm := compilerDiagRE.FindStringSubmatch(line); mm != nil {
			sev := result.SeverityError
			switch mm[4] {
			case "warning":
				sev = result.SeverityWarning
			case "note":
				sev = result.SeverityNote
			}
			r.Errors = append(r.Errors, result.Diagnostic{
				File:     mm[1],
				Line:     count(mm[2]),
				Column:   count(mm[3]),
				Message:  mm[5],
				Severity: sev,
			})
			continue
		}
		if mm := makeErrorRE.FindStringSubmatch(line); mm != nil {
			r.Target = mm[3]
			r.Errors = append(r.Errors, result.Diagnostic{
				File:     mm[1],
				Line:     count(mm[2]),
				Message:  "target " + mm[3] + ": " + mm[4],
				Severity: result.SeverityError,
			})
			continue
		}
		if mm := makeNoRuleRE.FindStringSubmatch(line); mm != nil {
			r.Errors = append(r.Errors, result.Diagnostic{
				Message:  mm[1],
				Severity: result.SeverityError,
			})
		}
	}
	r.Total = len(r.Errors)
	r.Success = false
	if r.Total == 0 {
		degrade(&r.Header, c, "build failed")
	}
	return r, nil
}

// go build: "# pkg" section headers on stderr followed by
// "file:line:col: message" diagnostics.

var goBuildDiagRE = regexp.MustCompile(`^(.+?\.go):(\d+):(?:(\d+):)? ?(.+)$`)

func parseGoBuild(c capture.Capture) (result.Result, error) {
	k := Key{"go", "build"}
	m := meaning(k, c.ExitCode)
	r := &result.BuildRunResult{Header: header(c, false), Tool: "go build"}

	if m == exitClean {
		r.Success = true
		return r, nil
	}
	if m != exitFindings {
		r.Success = false
		r.ErrorType = errorType(m)
		r.Error = firstLine(c.Stderr)
		r.RawOutput = clipRaw(c)
		return r, nil
	}

	for _, line := range strings.Split(scrubANSI(c.Stderr), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "# ") {
			r.Target = strings.TrimPrefix(line, "# ")
			continue
		}
		mm := goBuildDiagRE.FindStringSubmatch(line)
		if mm == nil {
			continue
		}
		r.Errors = append(r.Errors, result.Diagnostic{
			File:     mm[1],
			Line:     count(mm[2]),
			Column:   count(mm[3]),
			Message:  mm[4],
			Severity: result.SeverityError,
		})
	}
	r.Total = len(r.Errors)
	r.Success = false
	if r.Total == 0 {
		degrade(&r.Header, c, "build failed")
	}
	return r, nil
}

// coverage report: a fixed-width table "Name Stmts Miss Cover" with a
// TOTAL row; "No data to report." means no coverage was collected.

var coverageRowRE = regexp.MustCompile(`^(\S+)\s+(\d+)\s+(\d+)\s+(\d+(?:\.\d+)?)%(?:\s+\S.*)?$`)

func parseCoverageReport(c capture.Capture) (result.Result, error) {
	k := Key{"coverage", "report"}
	m := meaning(k, c.ExitCode)
	r := &result.CoverageResult{Header: header(c, false)}

	out := scrubANSI(c.Stdout)
	if m == exitNothingToDo || strings.Contains(out, "No data to report.") {
		r.Success = true
		r.ErrorType = result.ErrNothingToDo
		return r, nil
	}
	if m != exitClean && m != exitFindings {
		r.Success = false
		r.ErrorType = errorType(m)
		r.Error = firstLine(c.Stderr)
		r.RawOutput = clipRaw(c)
		return r, nil
	}

	for _, line := range strings.Split(out, "\n") {
		mm := coverageRowRE.FindStringSubmatch(strings.TrimSpace(line))
		if mm == nil {
			continue
		}
		if mm[1] == "TOTAL" {
			r.TotalStatements = count(mm[2])
			r.TotalMissed = count(mm[3])
			r.Percent = num(mm[4])
			continue
		}
		r.Files = append(r.Files, result.CoverageFile{
			File:       mm[1],
			Statements: count(mm[2]),
			Missed:     count(mm[3]),
			Percent:    num(mm[4]),
		})
	}
	r.TotalFiles = len(r.Files)
	if r.TotalStatements == 0 && len(r.Files) > 0 {
		for _, f := range r.Files {
			r.TotalStatements += f.Statements
			r.TotalMissed += f.Missed
		}
		if r.TotalStatements > 0 {
			r.Percent = float64(r.TotalStatements-r.TotalMissed) / float64(r.TotalStatements) * 100
		}
	}
	r.Success = m == exitClean
	return r, nil
}
