package parse

import (
	"regexp"
	"strings"

	"github.com/deixis/foreman/internal/capture"
	"github.com/deixis/foreman/internal/result"
)

// formatFailure fills a format result for a tool-level failure exit.
func formatFailure(r *result.FormatResult, c capture.Capture, m exitMeaning) {
	r.Success = false
	r.ErrorType = errorType(m)
	r.Error = firstLine(c.Stderr)
	if r.Error == "" {
		r.Error = firstLine(c.Stdout)
	}
	r.RawOutput = clipRaw(c)
}

// black: per-file lines and the summary ride on stderr. Check mode says
// "would reformat path" and "N files would be left unchanged."; write
// mode says "reformatted path" and "N files left unchanged.".

var (
	blackWouldRE     = regexp.MustCompile(`^would reformat (.+)$`)
	blackDidRE       = regexp.MustCompile(`^reformatted (.+)$`)
	blackReformatRE  = regexp.MustCompile(`(\d+) files? (?:would be )?reformatted`)
	blackUnchangedRE = regexp.MustCompile(`(\d+) files? (?:would be )?left unchanged`)
	blackCheckTextRE = regexp.MustCompile(`would (?:be )?(?:reformatted|left unchanged|fail)|would reformat`)
)

func parseBlack(c capture.Capture) (result.Result, error) {
	k := Key{"black", ""}
	m := meaning(k, c.ExitCode)
	r := &result.FormatResult{Header: header(c, false), Tool: "black"}

	if m != exitClean && m != exitFindings {
		formatFailure(r, c, m)
		return r, nil
	}

	out := scrubANSI(c.Stderr)
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if mm := blackWouldRE.FindStringSubmatch(line); mm != nil {
			r.ChangedFiles = append(r.ChangedFiles, mm[1])
			continue
		}
		if mm := blackDidRE.FindStringSubmatch(line); mm != nil {
			r.ChangedFiles = append(r.ChangedFiles, mm[1])
			continue
		}
		if mm := blackUnchangedRE.FindStringSubmatch(line); mm != nil {
			r.FilesUnchanged = count(mm[1])
		}
	}
	r.Check = blackCheckTextRE.MatchString(out) || m == exitFindings
	r.FilesChanged = len(r.ChangedFiles)
	if r.FilesChanged == 0 {
		if mm := blackReformatRE.FindStringSubmatch(out); mm != nil {
			r.FilesChanged = count(mm[1])
		}
	}
	if r.Check {
		r.Success = r.FilesChanged == 0 && m == exitClean
	} else {
		r.Success = true
	}
	return r, nil
}

// prettier --check: one "[warn] path" stderr line per unformatted file.

var prettierWarnRE = regexp.MustCompile(`^\[warn\] (.+)$`)

func parsePrettier(c capture.Capture) (result.Result, error) {
	k := Key{"prettier", ""}
	m := meaning(k, c.ExitCode)
	r := &result.FormatResult{Header: header(c, false), Tool: "prettier", Check: true}

	if m != exitClean && m != exitFindings {
		formatFailure(r, c, m)
		return r, nil
	}

	for _, line := range strings.Split(scrubANSI(c.Stderr), "\n") {
		mm := prettierWarnRE.FindStringSubmatch(strings.TrimSpace(line))
		if mm == nil {
			continue
		}
		switch mm[1] {
		case "Code style issues found in the above file. Run Prettier with --write to fix.",
			"Code style issues found in the above files. Run Prettier with --write to fix.":
			continue
		}
		r.ChangedFiles = append(r.ChangedFiles, mm[1])
	}
	r.FilesChanged = len(r.ChangedFiles)
	r.Success = r.FilesChanged == 0 && m == exitClean
	return r, nil
}

// gofmt -l: stdout is a bare list of files needing formatting.
func parseGofmt(c capture.Capture) (result.Result, error) {
	k := Key{"gofmt", ""}
	m := meaning(k, c.ExitCode)
	r := &result.FormatResult{Header: header(c, false), Tool: "gofmt", Check: true}

	if m != exitClean {
		formatFailure(r, c, m)
		return r, nil
	}

	for _, line := range strings.Split(scrubANSI(c.Stdout), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r.ChangedFiles = append(r.ChangedFiles, line)
	}
	r.FilesChanged = len(r.ChangedFiles)
	r.Success = r.FilesChanged == 0
	return r, nil
}

// cargo fmt --check: "Diff in <path>:NN:" markers, one or more per file.

var cargoFmtDiffRE = regexp.MustCompile(`^Diff in (.+?)(?: at line \d+)?:?$`)

func parseCargoFmt(c capture.Capture) (result.Result, error) {
	k := Key{"cargo", "fmt"}
	m := meaning(k, c.ExitCode)
	r := &result.FormatResult{Header: header(c, false), Tool: "cargo fmt", Check: true}

	if m != exitClean && m != exitFindings {
		formatFailure(r, c, m)
		return r, nil
	}

	seen := make(map[string]bool)
	for _, line := range strings.Split(scrubANSI(c.Stdout), "\n") {
		mm := cargoFmtDiffRE.FindStringSubmatch(strings.TrimSpace(line))
		if mm == nil || seen[mm[1]] {
			continue
		}
		seen[mm[1]] = true
		r.ChangedFiles = append(r.ChangedFiles, mm[1])
	}
	r.FilesChanged = len(r.ChangedFiles)
	r.Success = r.FilesChanged == 0 && m == exitClean
	return r, nil
}
