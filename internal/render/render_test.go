package render

import (
	"strings"
	"testing"

	"github.com/deixis/foreman/internal/result"
)

func lines(ss ...string) string {
	return strings.Join(ss, "\n")
}

func ok() result.Header {
	return result.Header{Success: true}
}

// --- Text dispatch ---

func TestText_UnknownTypeRendersEmpty(t *testing.T) {
	if got := Text(struct{}{}); got != "" {
		t.Errorf("Text(unknown) = %q, want empty", got)
	}
}

func TestText_TruncatedAppendsMarker(t *testing.T) {
	r := &result.LintResult{Header: result.Header{Success: true, Truncated: true}, Tool: "ruff"}
	want := lines("No issues found.", "(output truncated)")
	if got := Text(r); got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

// --- lint ---

func TestText_LintFindings(t *testing.T) {
	r := &result.LintResult{
		Header:   result.Header{Success: false},
		Tool:     "ruff",
		Total:    3,
		Errors:   2,
		Warnings: 1,
		Fixable:  1,
		Diagnostics: []result.Diagnostic{
			{File: "app.py", Line: 3, Column: 1, Code: "F401", Message: "`os` imported but unused", Severity: "error", Fixable: true},
			{File: "app.py", Line: 9, Code: "E501", Message: "line too long", Severity: "error"},
			{File: "lib.py", Line: 2, Column: 5, Message: "unused variable", Severity: "warning"},
		},
	}
	want := lines(
		"3 issues found (2 errors, 1 warning, 1 fixable).",
		"  app.py:3:1 F401: `os` imported but unused [fixable]",
		"  app.py:9 E501: line too long",
		"  lib.py:2:5 unused variable",
	)
	if got := Text(r); got != want {
		t.Errorf("Text =\n%q\nwant\n%q", got, want)
	}
}

func TestText_LintClean(t *testing.T) {
	r := &result.LintResult{Header: ok(), Tool: "flake8"}
	if got := Text(r); got != "No issues found." {
		t.Errorf("Text = %q", got)
	}
}

func TestText_LintFailure(t *testing.T) {
	r := &result.LintResult{
		Header: result.Header{Success: false, Error: "ruff crashed", ErrorType: result.ErrInternal},
		Tool:   "ruff",
	}
	if got := Text(r); got != "Error (internal): ruff crashed" {
		t.Errorf("Text = %q", got)
	}
}

func TestText_LintFailureWithoutMessage(t *testing.T) {
	r := &result.LintCompact{Header: result.Header{Success: false}, Tool: "eslint"}
	if got := Text(r); got != "Error: invocation failed" {
		t.Errorf("Text = %q", got)
	}
}

func TestText_LintCompactFileCounts(t *testing.T) {
	c := &result.LintCompact{
		Header:     result.Header{Success: false},
		Tool:       "eslint",
		Total:      3,
		Errors:     3,
		FileCounts: []result.FileCount{{File: "src/a.ts", Count: 2}, {File: "src/b.ts", Count: 1}},
	}
	want := lines(
		"3 issues found (3 errors, 0 warnings).",
		"  src/a.ts: 2",
		"  src/b.ts: 1",
	)
	if got := Text(c); got != want {
		t.Errorf("Text =\n%q\nwant\n%q", got, want)
	}
}

// --- typecheck ---

func TestText_TypecheckCheckedSuffix(t *testing.T) {
	r := &result.TypecheckResult{
		Header:       result.Header{Success: false},
		Tool:         "mypy",
		Total:        2,
		Errors:       2,
		FilesChecked: 12,
		Duration:     1.24,
		Diagnostics: []result.Diagnostic{
			{File: "app.py", Line: 4, Code: "arg-type", Message: "incompatible type", Severity: "error"},
			{File: "app.py", Line: 8, Message: "name not defined", Severity: "error"},
		},
	}
	want := lines(
		"2 issues found (2 errors, 0 warnings). Checked 12 files in 1.24s.",
		"  app.py:4 arg-type: incompatible type",
		"  app.py:8 name not defined",
	)
	if got := Text(r); got != want {
		t.Errorf("Text =\n%q\nwant\n%q", got, want)
	}
}

func TestText_TypecheckClean(t *testing.T) {
	r := &result.TypecheckCompact{Header: ok(), Tool: "tsc", FilesChecked: 30}
	if got := Text(r); got != "No issues found." {
		t.Errorf("Text = %q", got)
	}
}

// --- format ---

func TestText_FormatWriteChanged(t *testing.T) {
	r := &result.FormatResult{
		Header:         ok(),
		Tool:           "black",
		FilesChanged:   2,
		FilesUnchanged: 3,
		ChangedFiles:   []string{"a.py", "b.py"},
	}
	want := lines(
		"2 files reformatted, 3 unchanged.",
		"  a.py",
		"  b.py",
	)
	if got := Text(r); got != want {
		t.Errorf("Text =\n%q\nwant\n%q", got, want)
	}
}

func TestText_FormatCheckWouldReformat(t *testing.T) {
	c := &result.FormatCompact{Header: result.Header{Success: false}, Tool: "black", Check: true, FilesChanged: 1}
	if got := Text(c); got != "1 file would be reformatted." {
		t.Errorf("Text = %q", got)
	}
}

func TestText_FormatCheckClean(t *testing.T) {
	c := &result.FormatCompact{Header: ok(), Tool: "prettier", Check: true, FilesUnchanged: 8}
	if got := Text(c); got != "All files already formatted." {
		t.Errorf("Text = %q", got)
	}
}

func TestText_FormatWriteClean(t *testing.T) {
	r := &result.FormatResult{Header: ok(), Tool: "gofmt"}
	if got := Text(r); got != "No files changed." {
		t.Errorf("Text = %q", got)
	}
}

// --- testrun ---

func TestText_TestRunFailures(t *testing.T) {
	r := &result.TestRunResult{
		Header:   result.Header{Success: false},
		Tool:     "pytest",
		Passed:   12,
		Failed:   2,
		Skipped:  1,
		Total:    15,
		Duration: 3.42,
		Failures: []result.TestFailure{
			{Test: "tests/test_api.py::test_login", Message: "AssertionError: assert 401 == 200"},
			{Test: "tests/test_api.py::test_logout"},
		},
	}
	want := lines(
		"12 passed, 2 failed, 1 skipped in 3.42s.",
		"",
		"Failures:",
		"  tests/test_api.py::test_login: AssertionError: assert 401 == 200",
		"  tests/test_api.py::test_logout",
	)
	if got := Text(r); got != want {
		t.Errorf("Text =\n%q\nwant\n%q", got, want)
	}
}

func TestText_TestRunCompactNames(t *testing.T) {
	c := &result.TestRunCompact{
		Header:       result.Header{Success: false},
		Tool:         "jest",
		Passed:       4,
		Failed:       1,
		Total:        5,
		FailureNames: []string{"renders login form"},
	}
	want := lines(
		"4 passed, 1 failed.",
		"",
		"Failures:",
		"  renders login form",
	)
	if got := Text(c); got != want {
		t.Errorf("Text =\n%q\nwant\n%q", got, want)
	}
}

func TestText_TestRunNoTests(t *testing.T) {
	r := &result.TestRunResult{Header: ok(), Tool: "pytest"}
	if got := Text(r); got != "No tests collected." {
		t.Errorf("Text = %q", got)
	}
}

// --- audit ---

func TestText_AuditSingleVulnerability(t *testing.T) {
	r := &result.AuditResult{
		Header: result.Header{Success: false},
		Tool:   "pip-audit",
		Total:  1,
		Vulnerabilities: []result.Vulnerability{{
			Package:     "django",
			Version:     "3.2.0",
			ID:          "PYSEC-2021-98",
			Severity:    "high",
			Description: "SQL injection",
			FixVersions: []string{"3.2.4", "4.0.1"},
		}},
	}
	want := lines(
		"1 vulnerability found.",
		"  django 3.2.0 PYSEC-2021-98 (high): SQL injection [fix: 3.2.4, 4.0.1]",
	)
	if got := Text(r); got != want {
		t.Errorf("Text =\n%q\nwant\n%q", got, want)
	}
}

func TestText_AuditCompactIDs(t *testing.T) {
	c := &result.AuditCompact{
		Header:           result.Header{Success: false},
		Tool:             "npm",
		Total:            2,
		VulnerabilityIDs: []string{"GHSA-aaaa", "GHSA-bbbb"},
	}
	want := lines(
		"2 vulnerabilities found.",
		"  GHSA-aaaa",
		"  GHSA-bbbb",
	)
	if got := Text(c); got != want {
		t.Errorf("Text =\n%q\nwant\n%q", got, want)
	}
}

func TestText_AuditClean(t *testing.T) {
	r := &result.AuditResult{Header: ok(), Tool: "cargo-audit"}
	if got := Text(r); got != "No vulnerabilities found." {
		t.Errorf("Text = %q", got)
	}
}

// --- packages ---

func TestText_PkgListPackages(t *testing.T) {
	r := &result.PkgListResult{
		Header:   ok(),
		Tool:     "pip",
		Total:    2,
		Packages: []result.Package{{Name: "requests", Version: "2.31.0"}, {Name: "urllib3", Version: "2.0.4"}},
	}
	want := lines(
		"2 packages installed.",
		"  requests 2.31.0",
		"  urllib3 2.0.4",
	)
	if got := Text(r); got != want {
		t.Errorf("Text =\n%q\nwant\n%q", got, want)
	}
}

func TestText_PkgListEmpty(t *testing.T) {
	c := &result.PkgListCompact{Header: ok(), Tool: "npm"}
	if got := Text(c); got != "No packages installed." {
		t.Errorf("Text = %q", got)
	}
}

func TestText_PkgInstallDryRun(t *testing.T) {
	c := &result.PkgInstallCompact{
		Header:           ok(),
		Tool:             "pip",
		InstalledCount:   2,
		AlreadySatisfied: 1,
		DryRun:           true,
	}
	if got := Text(c); got != "Would install 2 packages, 1 already satisfied." {
		t.Errorf("Text = %q", got)
	}
}

func TestText_PkgInstallNpmCounts(t *testing.T) {
	c := &result.PkgInstallCompact{
		Header:         ok(),
		Tool:           "npm",
		InstalledCount: 12,
		Removed:        2,
		Audited:        214,
		VulnsFound:     3,
		Duration:       3.1,
	}
	want := "Installed 12 packages, 2 removed, 214 audited in 3.10s. Found 3 vulnerabilities."
	if got := Text(c); got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestText_PkgInstallResolutionFailure(t *testing.T) {
	r := &result.PkgInstallResult{
		Header: result.Header{
			Success:   false,
			Error:     "ERROR: ResolutionImpossible: for help visit ...",
			ErrorType: result.ErrResolution,
		},
		Tool: "pip",
	}
	if got := Text(r); got != "Error (resolution): ERROR: ResolutionImpossible: for help visit ..." {
		t.Errorf("Text = %q", got)
	}
}

func TestText_PkgInfoFields(t *testing.T) {
	r := &result.PkgInfoResult{
		Header:     ok(),
		Name:       "requests",
		Version:    "2.31.0",
		Summary:    "Python HTTP for Humans.",
		Homepage:   "https://requests.readthedocs.io",
		License:    "Apache 2.0",
		Requires:   []string{"certifi", "urllib3"},
		RequiredBy: []string{"pip-audit"},
	}
	want := lines(
		"requests 2.31.0",
		"  Python HTTP for Humans.",
		"  homepage: https://requests.readthedocs.io",
		"  license: Apache 2.0",
		"  requires: certifi, urllib3",
		"  required by: pip-audit",
	)
	if got := Text(r); got != want {
		t.Errorf("Text =\n%q\nwant\n%q", got, want)
	}
}

func TestText_PkgInfoCompact(t *testing.T) {
	c := &result.PkgInfoCompact{Header: ok(), Name: "requests", Version: "2.31.0"}
	if got := Text(c); got != "requests 2.31.0" {
		t.Errorf("Text = %q", got)
	}
}

// --- conda ---

func TestText_CondaInfo(t *testing.T) {
	r := &result.CondaInfoResult{
		Header:        ok(),
		Action:        result.CondaActionInfo,
		CondaVersion:  "23.7.4",
		PythonVersion: "3.11.5",
		ActiveEnv:     "base",
		Platform:      "linux-64",
		EnvCount:      3,
	}
	want := lines(
		"conda 23.7.4 (3 environments).",
		"  python: 3.11.5",
		"  active env: base",
		"  platform: linux-64",
	)
	if got := Text(r); got != want {
		t.Errorf("Text =\n%q\nwant\n%q", got, want)
	}
}

func TestText_CondaEnvListActiveMarker(t *testing.T) {
	r := &result.CondaEnvListResult{
		Header: ok(),
		Action: result.CondaActionEnvList,
		Total:  2,
		Environments: []result.Environment{
			{Name: "base", Path: "/opt/conda", Active: true},
			{Name: "ml", Path: "/opt/conda/envs/ml"},
		},
	}
	want := lines(
		"2 environments found.",
		"  base (/opt/conda) *",
		"  ml (/opt/conda/envs/ml)",
	)
	if got := Text(r); got != want {
		t.Errorf("Text =\n%q\nwant\n%q", got, want)
	}
}

func TestText_CondaVersion(t *testing.T) {
	r := &result.CondaVersionResult{Header: ok(), Action: result.CondaActionVersion, Version: "23.7.4"}
	if got := Text(r); got != "conda 23.7.4." {
		t.Errorf("Text = %q", got)
	}
}

func TestText_CondaEnvNotFound(t *testing.T) {
	c := &result.CondaListCompact{
		Header: result.Header{
			Success:   false,
			Error:     "Not a conda environment: /opt/conda/envs/nope",
			ErrorType: result.ErrNotFound,
		},
		Action: result.CondaActionList,
	}
	if got := Text(c); got != "Error (notFound): Not a conda environment: /opt/conda/envs/nope" {
		t.Errorf("Text = %q", got)
	}
}

// --- vcs ---

func TestText_VCSStatusBranchAndFiles(t *testing.T) {
	r := &result.VCSStatusResult{
		Header:    ok(),
		Branch:    "main",
		Upstream:  "origin/main",
		Ahead:     2,
		Behind:    1,
		Total:     3,
		Staged:    1,
		Unstaged:  1,
		Untracked: 1,
		Files: []result.FileStatus{
			{Path: "cmd/app.go", Staged: "M"},
			{Path: "README.md", Unstaged: "M"},
			{Path: "notes.txt", Staged: "?", Unstaged: "?"},
		},
	}
	want := lines(
		"On branch main, tracking origin/main (ahead 2, behind 1).",
		"3 changed files (1 staged, 1 unstaged, 1 untracked).",
		"  M. cmd/app.go",
		"  .M README.md",
		"  ?? notes.txt",
	)
	if got := Text(r); got != want {
		t.Errorf("Text =\n%q\nwant\n%q", got, want)
	}
}

func TestText_VCSStatusRename(t *testing.T) {
	r := &result.VCSStatusResult{
		Header: ok(),
		Branch: "main",
		Total:  1,
		Staged: 1,
		Files:  []result.FileStatus{{Path: "b.go", Staged: "R", RenamedFrom: "a.go"}},
	}
	want := lines(
		"On branch main.",
		"1 changed file (1 staged, 0 unstaged, 0 untracked).",
		"  R. b.go (from a.go)",
	)
	if got := Text(r); got != want {
		t.Errorf("Text =\n%q\nwant\n%q", got, want)
	}
}

func TestText_VCSStatusClean(t *testing.T) {
	c := &result.VCSStatusCompact{Header: ok(), Branch: "main"}
	want := lines("On branch main.", "Working tree clean.")
	if got := Text(c); got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestText_VCSDiffStats(t *testing.T) {
	r := &result.VCSDiffResult{
		Header:       ok(),
		FilesChanged: 2,
		Added:        10,
		Deleted:      7,
		Files: []result.DiffStat{
			{Path: "main.go", Added: 10, Deleted: 7},
			{Path: "logo.png", Binary: true},
		},
	}
	want := lines(
		"2 files changed, 10 insertions(+), 7 deletions(-).",
		"  main.go +10 -7",
		"  logo.png (binary)",
	)
	if got := Text(r); got != want {
		t.Errorf("Text =\n%q\nwant\n%q", got, want)
	}
}

func TestText_VCSDiffSingular(t *testing.T) {
	c := &result.VCSDiffCompact{Header: ok(), FilesChanged: 1, Added: 1}
	if got := Text(c); got != "1 file changed, 1 insertion(+), 0 deletions(-)." {
		t.Errorf("Text = %q", got)
	}
}

func TestText_VCSDiffNoChanges(t *testing.T) {
	r := &result.VCSDiffResult{Header: ok()}
	if got := Text(r); got != "No changes." {
		t.Errorf("Text = %q", got)
	}
}

func TestText_VCSLogCommits(t *testing.T) {
	r := &result.VCSLogResult{
		Header: ok(),
		Total:  2,
		Commits: []result.Commit{
			{Hash: "a1b2c3d", Author: "Ada", Date: "2026-08-10", Subject: "fix parser"},
			{Hash: "e4f5a6b", Author: "Lin", Date: "2026-08-09", Subject: "add renderer"},
		},
	}
	want := lines(
		"2 commits.",
		"  a1b2c3d fix parser (Ada, 2026-08-10)",
		"  e4f5a6b add renderer (Lin, 2026-08-09)",
	)
	if got := Text(r); got != want {
		t.Errorf("Text =\n%q\nwant\n%q", got, want)
	}
}

func TestText_VCSLogEmpty(t *testing.T) {
	c := &result.VCSLogCompact{Header: ok()}
	if got := Text(c); got != "No commits." {
		t.Errorf("Text = %q", got)
	}
}

// --- containers ---

func TestText_ContainerBuildSuccess(t *testing.T) {
	r := &result.ContainerBuildResult{
		Header:         ok(),
		StepsCompleted: 3,
		ImageID:        "sha256:9a8b",
		Tags:           []string{"app:latest"},
		Steps:          []string{"FROM python:3.11-slim", "COPY . .", "RUN pip install -r requirements.txt"},
	}
	want := lines(
		"Build succeeded (3 steps).",
		"  image: sha256:9a8b",
		"  tagged: app:latest",
		"  FROM python:3.11-slim",
		"  COPY . .",
		"  RUN pip install -r requirements.txt",
	)
	if got := Text(r); got != want {
		t.Errorf("Text =\n%q\nwant\n%q", got, want)
	}
}

func TestText_ContainerBuildFailureProgress(t *testing.T) {
	c := &result.ContainerBuildCompact{
		Header:         result.Header{Success: false, Error: "failed to solve: executor failed"},
		StepsCompleted: 2,
		StepsTotal:     4,
	}
	want := lines(
		"Error: failed to solve: executor failed",
		"Completed 2 of 4 steps.",
	)
	if got := Text(c); got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestText_ImageListEmpty(t *testing.T) {
	r := &result.ImageListResult{Header: ok()}
	if got := Text(r); got != "No images found." {
		t.Errorf("Text = %q", got)
	}
}

func TestText_ImageListEntries(t *testing.T) {
	r := &result.ImageListResult{
		Header: ok(),
		Total:  1,
		Images: []result.Image{{
			Repository: "python",
			Tag:        "3.11-slim",
			ID:         "fa3d2c4e1b0a",
			Size:       "130MB",
			Created:    "2 weeks ago",
		}},
	}
	want := lines(
		"1 image.",
		"  python:3.11-slim fa3d2c4e1b0a 130MB (2 weeks ago)",
	)
	if got := Text(r); got != want {
		t.Errorf("Text =\n%q\nwant\n%q", got, want)
	}
}

func TestText_ContainerListRunning(t *testing.T) {
	r := &result.ContainerListResult{
		Header: ok(),
		Total:  1,
		Containers: []result.Container{{
			ID:     "0a1b2c3d4e5f",
			Image:  "postgres:15",
			Name:   "db",
			State:  "running",
			Status: "Up 3 hours",
			Ports:  "0.0.0.0:5432->5432/tcp",
		}},
	}
	want := lines(
		"1 container running.",
		"  db (postgres:15) Up 3 hours [0.0.0.0:5432->5432/tcp]",
	)
	if got := Text(r); got != want {
		t.Errorf("Text =\n%q\nwant\n%q", got, want)
	}
}

func TestText_ContainerListEmpty(t *testing.T) {
	c := &result.ContainerListCompact{Header: ok()}
	if got := Text(c); got != "No containers running." {
		t.Errorf("Text = %q", got)
	}
}

// --- build ---

func TestText_BuildRunSucceeded(t *testing.T) {
	r := &result.BuildRunResult{Header: ok(), Tool: "make"}
	if got := Text(r); got != "Build succeeded." {
		t.Errorf("Text = %q", got)
	}
}

func TestText_BuildRunNothingToDo(t *testing.T) {
	r := &result.BuildRunResult{
		Header: result.Header{Success: true, ErrorType: result.ErrNothingToDo},
		Tool:   "make",
	}
	if got := Text(r); got != "Nothing to be done." {
		t.Errorf("Text = %q", got)
	}
}

func TestText_BuildRunDiagnostics(t *testing.T) {
	r := &result.BuildRunResult{
		Header: result.Header{Success: false},
		Tool:   "make",
		Target: "main.o",
		Total:  2,
		Errors: []result.Diagnostic{
			{File: "main.c", Line: 10, Column: 5, Message: "expected ';'", Severity: "error"},
			{File: "Makefile", Line: 8, Message: "target failed", Severity: "error"},
		},
	}
	want := lines(
		"Build failed in main.o: 2 errors.",
		"  main.c:10:5 expected ';'",
		"  Makefile:8 target failed",
	)
	if got := Text(r); got != want {
		t.Errorf("Text =\n%q\nwant\n%q", got, want)
	}
}

func TestText_BuildRunUnparsedFailure(t *testing.T) {
	c := &result.BuildRunCompact{
		Header: result.Header{Success: false, Error: "build failed", ErrorType: result.ErrInternal},
		Tool:   "make",
	}
	if got := Text(c); got != "Error (internal): build failed" {
		t.Errorf("Text = %q", got)
	}
}

// --- coverage ---

func TestText_CoverageTotals(t *testing.T) {
	r := &result.CoverageResult{
		Header:          ok(),
		TotalFiles:      3,
		TotalStatements: 64,
		TotalMissed:     12,
		Percent:         81.0,
		Files:           []result.CoverageFile{{File: "app/models.py", Statements: 40, Missed: 8, Percent: 80.0}},
	}
	want := lines(
		"Coverage 81.0% (12 of 64 statements missed, 3 files).",
		"  app/models.py 80.0% (8 of 40 missed)",
	)
	if got := Text(r); got != want {
		t.Errorf("Text =\n%q\nwant\n%q", got, want)
	}
}

func TestText_CoverageFailUnderKeepsTotals(t *testing.T) {
	c := &result.CoverageCompact{
		Header:          result.Header{Success: false},
		TotalFiles:      1,
		TotalStatements: 10,
		TotalMissed:     5,
		Percent:         50.0,
	}
	if got := Text(c); got != "Coverage 50.0% (5 of 10 statements missed, 1 file)." {
		t.Errorf("Text = %q", got)
	}
}

func TestText_CoverageNoData(t *testing.T) {
	r := &result.CoverageResult{Header: result.Header{Success: true, ErrorType: result.ErrNothingToDo}}
	if got := Text(r); got != "No coverage data." {
		t.Errorf("Text = %q", got)
	}
}

// --- helpers ---

func TestPlural(t *testing.T) {
	cases := []struct {
		n    int
		noun string
		want string
	}{
		{0, "issue", "0 issues"},
		{1, "issue", "1 issue"},
		{2, "issue", "2 issues"},
		{1, "vulnerability", "1 vulnerability"},
		{2, "vulnerability", "2 vulnerabilities"},
	}
	for _, c := range cases {
		if got := plural(c.n, c.noun); got != c.want {
			t.Errorf("plural(%d, %q) = %q, want %q", c.n, c.noun, got, c.want)
		}
	}
}

func TestDiagLine_NoPosition(t *testing.T) {
	d := result.Diagnostic{Message: "package-level failure", Severity: "error"}
	if got := diagLine(d); got != "  package-level failure" {
		t.Errorf("diagLine = %q", got)
	}
}
