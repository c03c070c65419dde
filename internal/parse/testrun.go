package parse

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/deixis/foreman/internal/capture"
	"github.com/deixis/foreman/internal/result"
)

// testrunFailure fills a testrun result for a tool-level failure exit.
func testrunFailure(r *result.TestRunResult, c capture.Capture, m exitMeaning) {
	r.Success = false
	r.ErrorType = errorType(m)
	r.Error = firstLine(c.Stderr)
	if r.Error == "" {
		r.Error = firstLine(c.Stdout)
	}
	r.RawOutput = clipRaw(c)
}

// finishTestRun settles total and success once counts and failures are in.
func finishTestRun(r *result.TestRunResult, c capture.Capture, m exitMeaning) {
	if r.Total == 0 {
		r.Total = r.Passed + r.Failed + r.Skipped + r.Errored
	}
	switch {
	case r.Failed > 0 || r.Errored > 0:
		r.Success = false
	case m == exitClean:
		r.Success = true
	default:
		degrade(&r.Header, c, "exit code reported test failures but none were parsed")
	}
}

// firstMeaningful returns the first line of s that carries content,
// trimmed and scrubbed.
func firstMeaningful(lines []string) string {
	for _, line := range lines {
		line = strings.TrimSpace(scrubANSI(line))
		if line == "" {
			continue
		}
		return line
	}
	return ""
}

// pytest: counts come from the final summary line, e.g.
// "3 passed, 1 failed, 2 skipped in 2.50s" in any subset and order;
// failing test names from "FAILED path::name - message" short-summary
// lines or "___ name ___" section headers.

var (
	pytestFailedRE  = regexp.MustCompile(`^FAILED (.+?)(?: - (.+))?$`)
	pytestHeaderRE  = regexp.MustCompile(`^_{3,} (.+?) _{3,}$`)
	pytestSegmentRE = regexp.MustCompile(`(\d+) (passed|failed|skipped|errors?|xfailed|xpassed)`)
	pytestTimeRE    = regexp.MustCompile(`in ([0-9.]+)s`)
	pytestNoTestsRE = regexp.MustCompile(`no tests ran in ([0-9.]+)s`)
)

func parsePytest(c capture.Capture) (result.Result, error) {
	k := Key{"pytest", ""}
	m := meaning(k, c.ExitCode)
	r := &result.TestRunResult{Header: header(c, false), Tool: "pytest"}

	out := scrubANSI(c.Stdout)

	if m == exitNothingToDo {
		r.Success = true
		if mm := pytestNoTestsRE.FindStringSubmatch(out); mm != nil {
			r.Duration = num(mm[1])
		}
		return r, nil
	}
	if m != exitClean && m != exitFindings {
		testrunFailure(r, c, m)
		return r, nil
	}

	var headerNames []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.Trim(strings.TrimSpace(line), "=")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if mm := pytestFailedRE.FindStringSubmatch(line); mm != nil {
			r.Failures = append(r.Failures, result.TestFailure{Test: mm[1], Message: mm[2]})
			continue
		}
		if mm := pytestHeaderRE.FindStringSubmatch(line); mm != nil {
			headerNames = append(headerNames, mm[1])
			continue
		}
		segs := pytestSegmentRE.FindAllStringSubmatch(line, -1)
		if segs == nil || !pytestTimeRE.MatchString(line) {
			continue
		}
		r.Passed, r.Failed, r.Skipped, r.Errored = 0, 0, 0, 0
		for _, seg := range segs {
			n := count(seg[1])
			switch seg[2] {
			case "passed":
				r.Passed = n
			case "failed":
				r.Failed = n
			case "skipped":
				r.Skipped = n
			case "error", "errors":
				r.Errored = n
			}
		}
		if mm := pytestTimeRE.FindStringSubmatch(line); mm != nil {
			r.Duration = num(mm[1])
		}
	}
	if len(r.Failures) == 0 {
		for _, name := range headerNames {
			r.Failures = append(r.Failures, result.TestFailure{Test: name})
		}
	}
	finishTestRun(r, c, m)
	return r, nil
}

// jest --json: a single JSON object.

type jestOutput struct {
	NumTotalTests            int               `json:"numTotalTests"`
	NumPassedTests           int               `json:"numPassedTests"`
	NumFailedTests           int               `json:"numFailedTests"`
	NumPendingTests          int               `json:"numPendingTests"`
	NumRuntimeErrorTestSuite int               `json:"numRuntimeErrorTestSuites"`
	StartTime                int64             `json:"startTime"`
	TestResults              []jestSuiteResult `json:"testResults"`
}

type jestSuiteResult struct {
	EndTime          int64                 `json:"endTime"`
	AssertionResults []jestAssertionResult `json:"assertionResults"`
}

type jestAssertionResult struct {
	Status          string   `json:"status"`
	Title           string   `json:"title"`
	FullName        string   `json:"fullName"`
	FailureMessages []string `json:"failureMessages"`
}

func parseJest(c capture.Capture) (result.Result, error) {
	k := Key{"jest", ""}
	m := meaning(k, c.ExitCode)
	r := &result.TestRunResult{Header: header(c, false), Tool: "jest"}

	if m != exitClean && m != exitFindings {
		testrunFailure(r, c, m)
		return r, nil
	}

	out := strings.TrimSpace(scrubANSI(c.Stdout))
	if out == "" {
		out = strings.TrimSpace(scrubANSI(c.Stderr))
	}
	var jo jestOutput
	if err := json.Unmarshal([]byte(out), &jo); err != nil {
		return nil, contractErr("jest", "JSON output mode did not produce an object")
	}

	r.Passed = jo.NumPassedTests
	r.Failed = jo.NumFailedTests
	r.Skipped = jo.NumPendingTests
	r.Errored = jo.NumRuntimeErrorTestSuite
	r.Total = jo.NumTotalTests

	var endTime int64
	for _, suite := range jo.TestResults {
		if suite.EndTime > endTime {
			endTime = suite.EndTime
		}
		for _, ar := range suite.AssertionResults {
			if ar.Status != "failed" {
				continue
			}
			name := ar.FullName
			if name == "" {
				name = ar.Title
			}
			msg := ""
			if len(ar.FailureMessages) > 0 {
				msg = firstMeaningful(strings.Split(ar.FailureMessages[0], "\n"))
			}
			r.Failures = append(r.Failures, result.TestFailure{Test: name, Message: msg})
		}
	}
	if jo.StartTime > 0 && endTime > jo.StartTime {
		r.Duration = float64(endTime-jo.StartTime) / 1000
	}
	finishTestRun(r, c, m)
	return r, nil
}

// go test -json: one event per line. Per-test pass/fail/skip events
// carry counts; a test's failure message is the first meaningful output
// line attributed to it. Package-level events carry elapsed seconds,
// and a failing package with no failing tests counts as errored.

type goTestEvent struct {
	Action  string  `json:"Action"`
	Package string  `json:"Package"`
	Test    string  `json:"Test"`
	Elapsed float64 `json:"Elapsed"`
	Output  string  `json:"Output"`
}

func parseGoTest(c capture.Capture) (result.Result, error) {
	k := Key{"go", "test"}
	m := meaning(k, c.ExitCode)
	r := &result.TestRunResult{Header: header(c, false), Tool: "go test"}

	if m != exitClean && m != exitFindings {
		testrunFailure(r, c, m)
		return r, nil
	}

	output := make(map[string][]string)
	failedTests := make(map[string]bool)
	for _, line := range strings.Split(c.Stdout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var ev goTestEvent
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			continue
		}
		key := ev.Package + "/" + ev.Test
		switch ev.Action {
		case "output":
			if ev.Test == "" {
				continue
			}
			text := strings.TrimSpace(scrubANSI(ev.Output))
			if text == "" || strings.HasPrefix(text, "=== ") || strings.HasPrefix(text, "--- ") {
				continue
			}
			output[key] = append(output[key], text)
		case "pass":
			if ev.Test == "" {
				r.Duration += ev.Elapsed
				continue
			}
			r.Passed++
		case "skip":
			if ev.Test != "" {
				r.Skipped++
			}
		case "fail":
			if ev.Test == "" {
				r.Duration += ev.Elapsed
				if !failedTests[ev.Package] {
					r.Errored++
				}
				continue
			}
			failedTests[ev.Package] = true
			r.Failed++
			r.Failures = append(r.Failures, result.TestFailure{
				Test:    ev.Test,
				Message: firstMeaningful(output[key]),
			})
		}
	}
	finishTestRun(r, c, m)
	return r, nil
}

// cargo test: one "test result:" summary per target, summed; failing
// test names from "test name ... FAILED" lines with panic messages out
// of the "---- name stdout ----" blocks.

var (
	cargoTestResultRE = regexp.MustCompile(`^test result: (?:ok|FAILED)\. (\d+) passed; (\d+) failed; (\d+) ignored;.*?(?:finished in ([0-9.]+)s)?$`)
	cargoTestFailRE   = regexp.MustCompile(`^test (\S+) \.\.\. FAILED$`)
	cargoTestBlockRE  = regexp.MustCompile(`^---- (\S+) stdout ----$`)
)

func parseCargoTest(c capture.Capture) (result.Result, error) {
	k := Key{"cargo", "test"}
	m := meaning(k, c.ExitCode)
	r := &result.TestRunResult{Header: header(c, false), Tool: "cargo test"}

	if m != exitClean && m != exitFindings {
		testrunFailure(r, c, m)
		return r, nil
	}

	lines := strings.Split(scrubANSI(c.Stdout), "\n")
	messages := make(map[string]string)
	for i, line := range lines {
		mm := cargoTestBlockRE.FindStringSubmatch(strings.TrimSpace(line))
		if mm == nil {
			continue
		}
		messages[mm[1]] = firstMeaningful(lines[i+1:])
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if mm := cargoTestFailRE.FindStringSubmatch(line); mm != nil {
			r.Failures = append(r.Failures, result.TestFailure{
				Test:    mm[1],
				Message: messages[mm[1]],
			})
			continue
		}
		if mm := cargoTestResultRE.FindStringSubmatch(line); mm != nil {
			r.Passed += count(mm[1])
			r.Failed += count(mm[2])
			r.Skipped += count(mm[3])
			r.Duration += num(mm[4])
		}
	}
	finishTestRun(r, c, m)
	return r, nil
}
