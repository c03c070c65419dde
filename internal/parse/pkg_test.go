package parse

import (
	"errors"
	"testing"

	"github.com/deixis/foreman/internal/capture"
	"github.com/deixis/foreman/internal/result"
)

func installResult(t *testing.T, r result.Result, err error) *result.PkgInstallResult {
	t.Helper()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	ir, ok := r.(*result.PkgInstallResult)
	if !ok {
		t.Fatalf("result type = %T, want *result.PkgInstallResult", r)
	}
	return ir
}

// --- parsePipList ---

func TestParsePipList_Packages(t *testing.T) {
	r, err := parsePipList(out(`[{"name":"flask","version":"2.0.1"},{"name":"requests","version":"2.31.0"}]`, 0))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	lr := r.(*result.PkgListResult)
	if lr.Total != 2 || len(lr.Packages) != 2 {
		t.Fatalf("Total = %d, Packages = %d, want 2/2", lr.Total, len(lr.Packages))
	}
	if lr.Packages[0].Name != "flask" || lr.Packages[0].Version != "2.0.1" {
		t.Errorf("Packages[0] = %+v", lr.Packages[0])
	}
	if !lr.Success {
		t.Error("Success = false, want true")
	}
}

func TestParsePipList_NotAnArray(t *testing.T) {
	_, err := parsePipList(out(`Package    Version`, 0))
	if !errors.Is(err, ErrContract) {
		t.Fatalf("err = %v, want ErrContract", err)
	}
}

// --- parseNpmLs ---

func TestParseNpmLs_SortsDependencies(t *testing.T) {
	input := `{"name":"app","version":"1.0.0","dependencies":{` +
		`"zod":{"version":"3.22.4"},` +
		`"axios":{"version":"1.6.0"},` +
		`"lodash":{"version":"4.17.21"}}}`
	r, err := parseNpmLs(out(input, 0))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	lr := r.(*result.PkgListResult)
	if lr.Total != 3 {
		t.Fatalf("Total = %d, want 3", lr.Total)
	}
	want := []string{"axios", "lodash", "zod"}
	for i, name := range want {
		if lr.Packages[i].Name != name {
			t.Errorf("Packages[%d].Name = %q, want %q", i, lr.Packages[i].Name, name)
		}
	}
}

func TestParseNpmLs_UnmetPeersStillParse(t *testing.T) {
	r, err := parseNpmLs(out(`{"dependencies":{"react":{"version":"18.2.0"}}}`, 1))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	lr := r.(*result.PkgListResult)
	if lr.Total != 1 {
		t.Errorf("Total = %d, want 1", lr.Total)
	}
	if !lr.Success {
		t.Error("Success = false, want true")
	}
}

// --- parsePipInstall ---

func TestParsePipInstall_InstalledAndSatisfied(t *testing.T) {
	input := lines(
		"Requirement already satisfied: pip in /usr/lib/python3/dist-packages (23.0)",
		"Collecting flask",
		"Successfully installed flask-2.0.1 werkzeug-2.0.3 scikit-learn-1.3.0",
	)
	r := installResult(t, parsePipInstall(out(input, 0)))
	if r.InstalledCount != 3 {
		t.Fatalf("InstalledCount = %d, want 3", r.InstalledCount)
	}
	if r.Installed[0].Name != "flask" || r.Installed[0].Version != "2.0.1" {
		t.Errorf("Installed[0] = %+v", r.Installed[0])
	}
	if r.Installed[2].Name != "scikit-learn" || r.Installed[2].Version != "1.3.0" {
		t.Errorf("Installed[2] = %+v (name keeps its own dashes)", r.Installed[2])
	}
	if r.AlreadySatisfied != 1 {
		t.Errorf("AlreadySatisfied = %d, want 1", r.AlreadySatisfied)
	}
	if r.DryRun {
		t.Error("DryRun = true, want false")
	}
	if !r.Success {
		t.Error("Success = false, want true")
	}
}

func TestParsePipInstall_DryRun(t *testing.T) {
	r := installResult(t, parsePipInstall(out("Would install flask-2.0.1 werkzeug-2.0.3", 0)))
	if !r.DryRun {
		t.Error("DryRun = false, want true")
	}
	if r.InstalledCount != 2 {
		t.Errorf("InstalledCount = %d, want 2", r.InstalledCount)
	}
}

func TestParsePipInstall_ResolutionFailure(t *testing.T) {
	stderr := lines(
		"ERROR: Could not find a version that satisfies the requirement nosuchpkg",
		"ERROR: No matching distribution found for nosuchpkg",
	)
	r := installResult(t, parsePipInstall(errOut(stderr, 1)))
	if r.Success {
		t.Error("Success = true, want false")
	}
	if r.ErrorType != result.ErrResolution {
		t.Errorf("ErrorType = %q, want %q", r.ErrorType, result.ErrResolution)
	}
	if r.Error != "ERROR: Could not find a version that satisfies the requirement nosuchpkg" {
		t.Errorf("Error = %q", r.Error)
	}
}

func TestParsePipInstall_ExternallyManaged(t *testing.T) {
	r := installResult(t, parsePipInstall(errOut("error: externally-managed-environment", 1)))
	if r.ErrorType != result.ErrEnvironment {
		t.Errorf("ErrorType = %q, want %q", r.ErrorType, result.ErrEnvironment)
	}
}

// --- parseUvInstall ---

func TestParseUvInstall_StderrSummary(t *testing.T) {
	stderr := lines(
		"Resolved 2 packages in 120ms",
		"Installed 2 packages in 45ms",
		" + flask==2.0.1",
		" + werkzeug==2.0.3",
		" - itsdangerous==2.1.2",
	)
	r := installResult(t, parseUvInstall(errOut(stderr, 0)))
	if r.InstalledCount != 2 {
		t.Fatalf("InstalledCount = %d, want 2", r.InstalledCount)
	}
	if r.Installed[0].Name != "flask" || r.Installed[0].Version != "2.0.1" {
		t.Errorf("Installed[0] = %+v", r.Installed[0])
	}
	if r.Removed != 1 {
		t.Errorf("Removed = %d, want 1", r.Removed)
	}
	if r.Duration != 0.045 {
		t.Errorf("Duration = %v, want 0.045", r.Duration)
	}
	if !r.Success {
		t.Error("Success = false, want true")
	}
}

func TestParseUvInstall_NoSolution(t *testing.T) {
	stderr := "  x No solution found when resolving dependencies:"
	r := installResult(t, parseUvInstall(errOut(stderr, 1)))
	if r.ErrorType != result.ErrResolution {
		t.Errorf("ErrorType = %q, want %q", r.ErrorType, result.ErrResolution)
	}
	if r.Success {
		t.Error("Success = true, want false")
	}
}

// --- parseNpmInstall ---

func TestParseNpmInstall_Counts(t *testing.T) {
	input := lines(
		"added 12 packages, removed 2 packages, and audited 214 packages in 3.1s",
		"",
		"3 vulnerabilities (1 moderate, 2 high)",
	)
	r := installResult(t, parseNpmInstall(out(input, 0)))
	if r.InstalledCount != 12 || r.Removed != 2 || r.Audited != 214 {
		t.Errorf("counts = %d/%d/%d, want 12/2/214", r.InstalledCount, r.Removed, r.Audited)
	}
	if r.Duration != 3.1 {
		t.Errorf("Duration = %v, want 3.1", r.Duration)
	}
	if r.VulnsFound != 3 {
		t.Errorf("VulnsFound = %d, want 3", r.VulnsFound)
	}
}

func TestParseNpmInstall_FoundZeroVulnerabilities(t *testing.T) {
	input := lines(
		"added 3 packages, and audited 40 packages in 800ms",
		"",
		"found 0 vulnerabilities",
	)
	r := installResult(t, parseNpmInstall(out(input, 0)))
	if r.VulnsFound != 0 {
		t.Errorf("VulnsFound = %d, want 0", r.VulnsFound)
	}
	if r.Duration != 0.8 {
		t.Errorf("Duration = %v, want 0.8", r.Duration)
	}
}

func TestParseNpmInstall_Eresolve(t *testing.T) {
	stderr := lines(
		"npm error code ERESOLVE",
		"npm error ERESOLVE unable to resolve dependency tree",
	)
	r := installResult(t, parseNpmInstall(errOut(stderr, 1)))
	if r.ErrorType != result.ErrResolution {
		t.Errorf("ErrorType = %q, want %q", r.ErrorType, result.ErrResolution)
	}
}

// --- parsePipShow ---

func TestParsePipShow_Fields(t *testing.T) {
	input := lines(
		"Name: flask",
		"Version: 2.0.1",
		"Summary: A simple framework for building complex web applications.",
		"Home-page: https://palletsprojects.com/p/flask",
		"Author: Armin Ronacher",
		"Author-email: armin.ronacher@active-4.com",
		"License: BSD-3-Clause",
		"Location: /usr/lib/python3.9/site-packages",
		"Requires: click, itsdangerous, jinja2, werkzeug",
		"Required-by: ",
	)
	r, err := parsePipShow(out(input, 0))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	ir := r.(*result.PkgInfoResult)
	if ir.Name != "flask" || ir.Version != "2.0.1" {
		t.Errorf("Name/Version = %q/%q", ir.Name, ir.Version)
	}
	if ir.Homepage != "https://palletsprojects.com/p/flask" {
		t.Errorf("Homepage = %q", ir.Homepage)
	}
	if ir.License != "BSD-3-Clause" {
		t.Errorf("License = %q", ir.License)
	}
	if len(ir.Requires) != 4 || ir.Requires[0] != "click" || ir.Requires[3] != "werkzeug" {
		t.Errorf("Requires = %v", ir.Requires)
	}
	if ir.RequiredBy != nil {
		t.Errorf("RequiredBy = %v, want nil for empty value", ir.RequiredBy)
	}
	if !ir.Success {
		t.Error("Success = false, want true")
	}
}

func TestParsePipShow_NotFound(t *testing.T) {
	c := capture.Capture{Stderr: "WARNING: Package(s) not found: nosuchpkg", ExitCode: 1}
	r, err := parsePipShow(c)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	ir := r.(*result.PkgInfoResult)
	if ir.ErrorType != result.ErrNotFound {
		t.Errorf("ErrorType = %q, want %q", ir.ErrorType, result.ErrNotFound)
	}
	if ir.Success {
		t.Error("Success = true, want false")
	}
}

// --- splitNameVersion ---

func TestSplitNameVersion(t *testing.T) {
	cases := []struct {
		in, name, version string
	}{
		{"flask-2.0.1", "flask", "2.0.1"},
		{"scikit-learn-1.3.0", "scikit-learn", "1.3.0"},
		{"noversion", "noversion", ""},
	}
	for _, tc := range cases {
		p := splitNameVersion(tc.in)
		if p.Name != tc.name || p.Version != tc.version {
			t.Errorf("splitNameVersion(%q) = %q/%q, want %q/%q", tc.in, p.Name, p.Version, tc.name, tc.version)
		}
	}
}
