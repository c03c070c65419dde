package parse

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/deixis/foreman/internal/capture"
	"github.com/deixis/foreman/internal/result"
)

// tally recounts the severity tiers of a diagnostic list. Tiers stay
// separate; warnings and notes are never merged.
func tally(ds []result.Diagnostic) (errs, warns, notes int) {
	for _, d := range ds {
		switch d.Severity {
		case result.SeverityWarning:
			warns++
		case result.SeverityNote:
			notes++
		default:
			errs++
		}
	}
	return
}

// severityForCode maps pycodestyle-convention code prefixes to tiers:
// W and C classes are warnings, everything else is an error.
func severityForCode(code string) string {
	if code == "" {
		return result.SeverityError
	}
	switch code[0] {
	case 'W', 'C':
		return result.SeverityWarning
	default:
		return result.SeverityError
	}
}

// firstLine returns the first non-empty line of s, scrubbed.
func firstLine(s string) string {
	for _, line := range strings.Split(scrubANSI(s), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}

// lintFailure fills a lint result for a tool-level failure exit.
func lintFailure(r *result.LintResult, c capture.Capture, m exitMeaning) {
	r.Success = false
	r.ErrorType = errorType(m)
	r.Error = firstLine(c.Stderr)
	if r.Error == "" {
		r.Error = firstLine(c.Stdout)
	}
	r.RawOutput = clipRaw(c)
}

// finishLint derives the aggregates and success flag after the
// diagnostics are collected.
func finishLint(r *result.LintResult, c capture.Capture, m exitMeaning) {
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

// ruff check --output-format json: always a JSON array.

type ruffItem struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Filename string       `json:"filename"`
	Location ruffLocation `json:"location"`
	Fix      *ruffFix     `json:"fix"`
}

type ruffLocation struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

type ruffFix struct {
	Applicability string `json:"applicability"`
}

func parseRuff(c capture.Capture) (result.Result, error) {
	k := Key{"ruff", "check"}
	m := meaning(k, c.ExitCode)
	r := &result.LintResult{Header: header(c, false), Tool: "ruff"}

	if m != exitClean && m != exitFindings {
		lintFailure(r, c, m)
		return r, nil
	}

	var items []ruffItem
	if err := json.Unmarshal([]byte(scrubANSI(c.Stdout)), &items); err != nil {
		return nil, contractErr("ruff", "JSON output mode did not produce an array")
	}

	for _, it := range items {
		d := result.Diagnostic{
			File:     it.Filename,
			Line:     it.Location.Row,
			Column:   it.Location.Column,
			Code:     it.Code,
			Message:  it.Message,
			Severity: severityForCode(it.Code),
			Fixable:  it.Fix != nil,
		}
		if d.Fixable {
			r.Fixable++
		}
		r.Diagnostics = append(r.Diagnostics, d)
	}
	finishLint(r, c, m)
	return r, nil
}

// flake8: one finding per line, "file:line:col: CODE message".

var flake8RE = regexp.MustCompile(`^(.+?):(\d+):(\d+): ([A-Z]+\d+) (.+)$`)

func parseFlake8(c capture.Capture) (result.Result, error) {
	k := Key{"flake8", ""}
	m := meaning(k, c.ExitCode)
	r := &result.LintResult{Header: header(c, false), Tool: "flake8"}

	if m != exitClean && m != exitFindings {
		lintFailure(r, c, m)
		return r, nil
	}

	for _, line := range strings.Split(scrubANSI(c.Stdout), "\n") {
		mm := flake8RE.FindStringSubmatch(strings.TrimSpace(line))
		if mm == nil {
			continue
		}
		r.Diagnostics = append(r.Diagnostics, result.Diagnostic{
			File:     mm[1],
			Line:     count(mm[2]),
			Column:   count(mm[3]),
			Code:     mm[4],
			Message:  mm[5],
			Severity: severityForCode(mm[4]),
		})
	}
	finishLint(r, c, m)
	return r, nil
}

// pylint --output-format=json: a JSON array; the exit code is a
// bitmask (1 fatal, 2 error, 4 warning, 8 refactor, 16 convention,
// 32 usage).

type pylintItem struct {
	Type      string `json:"type"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	Path      string `json:"path"`
	Message   string `json:"message"`
	MessageID string `json:"message-id"`
}

func parsePylint(c capture.Capture) (result.Result, error) {
	k := Key{"pylint", ""}
	m := meaning(k, c.ExitCode)
	if m == exitFatal {
		switch {
		case c.ExitCode&32 != 0:
			m = exitUsage
		case c.ExitCode&1 != 0:
			m = exitInternal
		case c.ExitCode&30 != 0:
			m = exitFindings
		}
	}
	r := &result.LintResult{Header: header(c, false), Tool: "pylint"}

	if m != exitClean && m != exitFindings {
		lintFailure(r, c, m)
		return r, nil
	}

	var items []pylintItem
	if err := json.Unmarshal([]byte(scrubANSI(c.Stdout)), &items); err != nil {
		degrade(&r.Header, c, "unrecognized pylint JSON output")
		return r, nil
	}

	for _, it := range items {
		sev := result.SeverityError
		switch it.Type {
		case "warning":
			sev = result.SeverityWarning
		case "convention", "refactor", "info":
			sev = result.SeverityNote
		}
		r.Diagnostics = append(r.Diagnostics, result.Diagnostic{
			File:     it.Path,
			Line:     it.Line,
			Column:   it.Column,
			Code:     it.MessageID,
			Message:  it.Message,
			Severity: sev,
		})
	}
	finishLint(r, c, m)
	return r, nil
}

// bandit -f json: {"results": [...], "errors": [...]}.

type banditOutput struct {
	Results []banditResult `json:"results"`
}

type banditResult struct {
	Filename      string `json:"filename"`
	LineNumber    int    `json:"line_number"`
	IssueSeverity string `json:"issue_severity"`
	IssueText     string `json:"issue_text"`
	TestID        string `json:"test_id"`
}

func parseBandit(c capture.Capture) (result.Result, error) {
	k := Key{"bandit", ""}
	m := meaning(k, c.ExitCode)
	r := &result.LintResult{Header: header(c, false), Tool: "bandit"}

	if m != exitClean && m != exitFindings {
		lintFailure(r, c, m)
		return r, nil
	}

	var out banditOutput
	if err := json.Unmarshal([]byte(scrubANSI(c.Stdout)), &out); err != nil {
		degrade(&r.Header, c, "unrecognized bandit JSON output")
		return r, nil
	}

	for _, res := range out.Results {
		sev := result.SeverityNote
		switch res.IssueSeverity {
		case "HIGH":
			sev = result.SeverityError
		case "MEDIUM":
			sev = result.SeverityWarning
		}
		r.Diagnostics = append(r.Diagnostics, result.Diagnostic{
			File:     res.Filename,
			Line:     res.LineNumber,
			Code:     res.TestID,
			Message:  res.IssueText,
			Severity: sev,
		})
	}
	finishLint(r, c, m)
	return r, nil
}

// eslint -f json: an array of per-file reports.

type eslintFile struct {
	FilePath string          `json:"filePath"`
	Messages []eslintMessage `json:"messages"`
}

type eslintMessage struct {
	RuleID   string          `json:"ruleId"`
	Severity int             `json:"severity"`
	Message  string          `json:"message"`
	Line     int             `json:"line"`
	Column   int             `json:"column"`
	Fix      json.RawMessage `json:"fix"`
}

func parseESLint(c capture.Capture) (result.Result, error) {
	k := Key{"eslint", ""}
	m := meaning(k, c.ExitCode)
	r := &result.LintResult{Header: header(c, false), Tool: "eslint"}

	if m != exitClean && m != exitFindings {
		lintFailure(r, c, m)
		return r, nil
	}

	var files []eslintFile
	if err := json.Unmarshal([]byte(scrubANSI(c.Stdout)), &files); err != nil {
		degrade(&r.Header, c, "unrecognized eslint JSON output")
		return r, nil
	}

	for _, f := range files {
		for _, msg := range f.Messages {
			sev := result.SeverityWarning
			if msg.Severity == 2 {
				sev = result.SeverityError
			}
			d := result.Diagnostic{
				File:     f.FilePath,
				Line:     msg.Line,
				Column:   msg.Column,
				Code:     msg.RuleID,
				Message:  msg.Message,
				Severity: sev,
				Fixable:  len(msg.Fix) > 0,
			}
			if d.Fixable {
				r.Fixable++
			}
			r.Diagnostics = append(r.Diagnostics, d)
		}
	}
	finishLint(r, c, m)
	return r, nil
}

// go vet: diagnostics on stderr, "file:line:col: message" with "# pkg"
// package headers in between.

var govetRE = regexp.MustCompile(`^(?:vet: )?(.+?\.go):(\d+):(?:(\d+):)? ?(.+)$`)

func parseGoVet(c capture.Capture) (result.Result, error) {
	k := Key{"go", "vet"}
	m := meaning(k, c.ExitCode)
	r := &result.LintResult{Header: header(c, false), Tool: "go vet"}

	if m != exitClean && m != exitFindings {
		lintFailure(r, c, m)
		return r, nil
	}

	for _, line := range strings.Split(scrubANSI(c.Stderr), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		mm := govetRE.FindStringSubmatch(line)
		if mm == nil {
			continue
		}
		r.Diagnostics = append(r.Diagnostics, result.Diagnostic{
			File:     mm[1],
			Line:     count(mm[2]),
			Column:   count(mm[3]),
			Message:  mm[4],
			Severity: result.SeverityError,
		})
	}
	finishLint(r, c, m)
	return r, nil
}

// staticcheck -f json: one JSON object per line.

type staticcheckEvent struct {
	Code     string              `json:"code"`
	Severity string              `json:"severity"`
	Message  string              `json:"message"`
	Location staticcheckLocation `json:"location"`
}

type staticcheckLocation struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func parseStaticcheck(c capture.Capture) (result.Result, error) {
	k := Key{"staticcheck", ""}
	m := meaning(k, c.ExitCode)
	r := &result.LintResult{Header: header(c, false), Tool: "staticcheck"}

	if m != exitClean && m != exitFindings {
		lintFailure(r, c, m)
		return r, nil
	}

	for _, line := range strings.Split(scrubANSI(c.Stdout), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var ev staticcheckEvent
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			continue
		}
		if ev.Code == "" {
			continue
		}
		sev := result.SeverityError
		switch ev.Severity {
		case "warning":
			sev = result.SeverityWarning
		case "ignored", "hint":
			sev = result.SeverityNote
		}
		r.Diagnostics = append(r.Diagnostics, result.Diagnostic{
			File:     ev.Location.File,
			Line:     ev.Location.Line,
			Column:   ev.Location.Column,
			Code:     ev.Code,
			Message:  ev.Message,
			Severity: sev,
		})
	}
	finishLint(r, c, m)
	return r, nil
}

// golangci-lint run --out-format json: {"Issues": [...]}.

type golangciOutput struct {
	Issues []golangciIssue `json:"Issues"`
}

type golangciIssue struct {
	FromLinter string      `json:"FromLinter"`
	Text       string      `json:"Text"`
	Severity   string      `json:"Severity"`
	Pos        golangciPos `json:"Pos"`
}

type golangciPos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"`
}

func parseGolangciLint(c capture.Capture) (result.Result, error) {
	k := Key{"golangci-lint", "run"}
	m := meaning(k, c.ExitCode)
	r := &result.LintResult{Header: header(c, false), Tool: "golangci-lint"}

	if m != exitClean && m != exitFindings {
		lintFailure(r, c, m)
		return r, nil
	}

	var out golangciOutput
	if err := json.Unmarshal([]byte(scrubANSI(c.Stdout)), &out); err != nil {
		degrade(&r.Header, c, "unrecognized golangci-lint JSON output")
		return r, nil
	}

	for _, is := range out.Issues {
		sev := result.SeverityError
		if is.Severity == "warning" {
			sev = result.SeverityWarning
		}
		r.Diagnostics = append(r.Diagnostics, result.Diagnostic{
			File:     is.Pos.Filename,
			Line:     is.Pos.Line,
			Column:   is.Pos.Column,
			Code:     is.FromLinter,
			Message:  is.Text,
			Severity: sev,
		})
	}
	finishLint(r, c, m)
	return r, nil
}

// cargo clippy --message-format json: JSON lines; findings ride on
// "compiler-message" records.

type cargoMessageLine struct {
	Reason  string        `json:"reason"`
	Message *clippyRustcMsg `json:"message"`
}

type clippyRustcMsg struct {
	Level   string       `json:"level"`
	Message string       `json:"message"`
	Code    *clippyCode  `json:"code"`
	Spans   []clippySpan `json:"spans"`
}

type clippyCode struct {
	Code string `json:"code"`
}

type clippySpan struct {
	FileName    string `json:"file_name"`
	LineStart   int    `json:"line_start"`
	ColumnStart int    `json:"column_start"`
	IsPrimary   bool   `json:"is_primary"`
}

func parseCargoClippy(c capture.Capture) (result.Result, error) {
	k := Key{"cargo", "clippy"}
	m := meaning(k, c.ExitCode)
	r := &result.LintResult{Header: header(c, false), Tool: "cargo clippy"}

	if m != exitClean && m != exitFindings {
		lintFailure(r, c, m)
		return r, nil
	}

	for _, line := range strings.Split(scrubANSI(c.Stdout), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var ml cargoMessageLine
		if err := json.Unmarshal([]byte(line), &ml); err != nil {
			continue
		}
		if ml.Reason != "compiler-message" || ml.Message == nil || len(ml.Message.Spans) == 0 {
			continue
		}
		span := ml.Message.Spans[0]
		for _, s := range ml.Message.Spans {
			if s.IsPrimary {
				span = s
				break
			}
		}
		sev := result.SeverityNote
		switch ml.Message.Level {
		case "error":
			sev = result.SeverityError
		case "warning":
			sev = result.SeverityWarning
		}
		code := ""
		if ml.Message.Code != nil {
			code = ml.Message.Code.Code
		}
		r.Diagnostics = append(r.Diagnostics, result.Diagnostic{
			File:     span.FileName,
			Line:     span.LineStart,
			Column:   span.ColumnStart,
			Code:     code,
			Message:  ml.Message.Message,
			Severity: sev,
		})
	}
	finishLint(r, c, m)
	return r, nil
}
