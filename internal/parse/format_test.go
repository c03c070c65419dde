package parse

import (
	"testing"

	"github.com/deixis/foreman/internal/result"
)

func formatResult(t *testing.T, r result.Result, err error) *result.FormatResult {
	t.Helper()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	fr, ok := r.(*result.FormatResult)
	if !ok {
		t.Fatalf("result type = %T, want *result.FormatResult", r)
	}
	return fr
}

// --- parseBlack ---

func TestParseBlack_CheckModeWouldReformat(t *testing.T) {
	input := lines(
		"would reformat /src/a.py",
		"would reformat /src/b.py",
		"Oh no! \U0001f4a5 \U0001f494 \U0001f4a5",
		"2 files would be reformatted, 3 files would be left unchanged.",
	)
	r := formatResult(t, parseBlack(errOut(input, 1)))
	if r.Success {
		t.Error("Success = true, want false")
	}
	if !r.Check {
		t.Error("Check = false, want true")
	}
	if r.FilesChanged != 2 {
		t.Errorf("FilesChanged = %d, want 2", r.FilesChanged)
	}
	if r.FilesUnchanged != 3 {
		t.Errorf("FilesUnchanged = %d, want 3", r.FilesUnchanged)
	}
	if len(r.ChangedFiles) != 2 || r.ChangedFiles[0] != "/src/a.py" {
		t.Errorf("ChangedFiles = %v", r.ChangedFiles)
	}
}

func TestParseBlack_CheckModeAllClean(t *testing.T) {
	input := lines(
		"All done! ✨ \U0001f370 ✨",
		"10 files would be left unchanged.",
	)
	r := formatResult(t, parseBlack(errOut(input, 0)))
	if !r.Success {
		t.Error("Success = false, want true")
	}
	if !r.Check {
		t.Error("Check = false, want true")
	}
	if r.FilesChanged != 0 {
		t.Errorf("FilesChanged = %d, want 0", r.FilesChanged)
	}
	if r.FilesUnchanged != 10 {
		t.Errorf("FilesUnchanged = %d, want 10", r.FilesUnchanged)
	}
}

func TestParseBlack_WriteMode(t *testing.T) {
	input := lines(
		"reformatted /src/a.py",
		"All done! ✨ \U0001f370 ✨",
		"1 file reformatted, 2 files left unchanged.",
	)
	r := formatResult(t, parseBlack(errOut(input, 0)))
	if !r.Success {
		t.Error("Success = false, want true in write mode")
	}
	if r.Check {
		t.Error("Check = true, want false")
	}
	if r.FilesChanged != 1 {
		t.Errorf("FilesChanged = %d, want 1", r.FilesChanged)
	}
	if r.FilesUnchanged != 2 {
		t.Errorf("FilesUnchanged = %d, want 2", r.FilesUnchanged)
	}
}

func TestParseBlack_InternalError(t *testing.T) {
	r := formatResult(t, parseBlack(errOut("error: cannot format a.py: INTERNAL ERROR", 123)))
	if r.Success {
		t.Error("Success = true, want false")
	}
	if r.ErrorType != result.ErrInternal {
		t.Errorf("ErrorType = %q, want %q", r.ErrorType, result.ErrInternal)
	}
}

// --- parsePrettier ---

func TestParsePrettier_UnformattedFiles(t *testing.T) {
	input := lines(
		"Checking formatting...",
		"[warn] src/a.js",
		"[warn] src/b.ts",
		"[warn] Code style issues found in the above files. Run Prettier with --write to fix.",
	)
	r := formatResult(t, parsePrettier(errOut(input, 1)))
	if r.Success {
		t.Error("Success = true, want false")
	}
	if r.FilesChanged != 2 {
		t.Errorf("FilesChanged = %d, want 2", r.FilesChanged)
	}
	if r.ChangedFiles[1] != "src/b.ts" {
		t.Errorf("ChangedFiles[1] = %q, want src/b.ts", r.ChangedFiles[1])
	}
}

func TestParsePrettier_Clean(t *testing.T) {
	c := out("All matched files use Prettier code style!", 0)
	r := formatResult(t, parsePrettier(c))
	if !r.Success {
		t.Error("Success = false, want true")
	}
	if r.FilesChanged != 0 {
		t.Errorf("FilesChanged = %d, want 0", r.FilesChanged)
	}
}

// --- parseGofmt ---

func TestParseGofmt_ListsFiles(t *testing.T) {
	r := formatResult(t, parseGofmt(out(lines("main.go", "internal/util.go"), 0)))
	if r.Success {
		t.Error("Success = true, want false when files need formatting")
	}
	if r.FilesChanged != 2 {
		t.Errorf("FilesChanged = %d, want 2", r.FilesChanged)
	}
	if !r.Check {
		t.Error("Check = false, want true")
	}
}

func TestParseGofmt_Clean(t *testing.T) {
	r := formatResult(t, parseGofmt(out("", 0)))
	if !r.Success {
		t.Error("Success = false, want true")
	}
}

// --- parseCargoFmt ---

func TestParseCargoFmt_DiffMarkers(t *testing.T) {
	input := lines(
		"Diff in /src/main.rs at line 4:",
		" fn main() {",
		"-    println!(\"hi\")  ;",
		"+    println!(\"hi\");",
		"Diff in /src/main.rs at line 9:",
		"Diff in /src/lib.rs at line 1:",
	)
	r := formatResult(t, parseCargoFmt(out(input, 1)))
	if r.Success {
		t.Error("Success = true, want false")
	}
	if r.FilesChanged != 2 {
		t.Errorf("FilesChanged = %d, want 2 (same file counted once)", r.FilesChanged)
	}
	if r.ChangedFiles[0] != "/src/main.rs" || r.ChangedFiles[1] != "/src/lib.rs" {
		t.Errorf("ChangedFiles = %v", r.ChangedFiles)
	}
}

func TestParseCargoFmt_Clean(t *testing.T) {
	r := formatResult(t, parseCargoFmt(out("", 0)))
	if !r.Success {
		t.Error("Success = false, want true")
	}
}
