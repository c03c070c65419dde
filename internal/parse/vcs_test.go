package parse

import (
	"testing"

	"github.com/deixis/foreman/internal/result"
)

// --- parseGitStatus ---

func TestParseGitStatus_BranchHeaderAndEntries(t *testing.T) {
	input := lines(
		"## main...origin/main [ahead 2, behind 1]",
		"M  internal/server.go",
		" M README.md",
		"MM internal/config.go",
		"R  old_name.go -> new_name.go",
		"?? scratch.txt",
	)
	r, err := parseGitStatus(out(input, 0))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	sr := r.(*result.VCSStatusResult)
	if sr.Branch != "main" || sr.Upstream != "origin/main" {
		t.Errorf("Branch/Upstream = %q/%q", sr.Branch, sr.Upstream)
	}
	if sr.Ahead != 2 || sr.Behind != 1 {
		t.Errorf("Ahead/Behind = %d/%d, want 2/1", sr.Ahead, sr.Behind)
	}
	if sr.Total != 5 {
		t.Fatalf("Total = %d, want 5", sr.Total)
	}
	if sr.Staged != 3 || sr.Unstaged != 2 || sr.Untracked != 1 {
		t.Errorf("Staged/Unstaged/Untracked = %d/%d/%d, want 3/2/1", sr.Staged, sr.Unstaged, sr.Untracked)
	}
	f := sr.Files[0]
	if f.Staged != "M" || f.Unstaged != "" || f.Path != "internal/server.go" {
		t.Errorf("Files[0] = %+v", f)
	}
	f = sr.Files[3]
	if f.RenamedFrom != "old_name.go" || f.Path != "new_name.go" {
		t.Errorf("Files[3] = %+v", f)
	}
	f = sr.Files[4]
	if f.Staged != "?" || f.Unstaged != "?" || f.Path != "scratch.txt" {
		t.Errorf("Files[4] = %+v", f)
	}
	if !sr.Success {
		t.Error("Success = false, want true")
	}
}

func TestParseGitStatus_CleanTree(t *testing.T) {
	r, err := parseGitStatus(out("## main...origin/main\n", 0))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	sr := r.(*result.VCSStatusResult)
	if sr.Total != 0 {
		t.Errorf("Total = %d, want 0", sr.Total)
	}
	if sr.Branch != "main" || sr.Upstream != "origin/main" {
		t.Errorf("Branch/Upstream = %q/%q", sr.Branch, sr.Upstream)
	}
	if sr.Ahead != 0 || sr.Behind != 0 {
		t.Errorf("Ahead/Behind = %d/%d, want 0/0", sr.Ahead, sr.Behind)
	}
	if !sr.Success {
		t.Error("Success = false, want true")
	}
}

func TestParseGitStatus_NoCommitsYet(t *testing.T) {
	input := lines(
		"## No commits yet on main",
		"?? new.go",
	)
	r, err := parseGitStatus(out(input, 0))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	sr := r.(*result.VCSStatusResult)
	if sr.Branch != "main" {
		t.Errorf("Branch = %q, want main", sr.Branch)
	}
	if sr.Untracked != 1 {
		t.Errorf("Untracked = %d, want 1", sr.Untracked)
	}
}

func TestParseGitStatus_QuotedPath(t *testing.T) {
	r, err := parseGitStatus(out("## main\n?? \"with space.txt\"\n", 0))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	sr := r.(*result.VCSStatusResult)
	if sr.Total != 1 {
		t.Fatalf("Total = %d, want 1", sr.Total)
	}
	if sr.Files[0].Path != "with space.txt" {
		t.Errorf("Path = %q, want unquoted", sr.Files[0].Path)
	}
}

func TestParseGitStatus_NotARepo(t *testing.T) {
	r, err := parseGitStatus(errOut("fatal: not a git repository (or any of the parent directories): .git", 128))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	sr := r.(*result.VCSStatusResult)
	if sr.Success {
		t.Error("Success = true, want false")
	}
	if sr.ErrorType != result.ErrInternal {
		t.Errorf("ErrorType = %q, want %q", sr.ErrorType, result.ErrInternal)
	}
	if sr.Error != "fatal: not a git repository (or any of the parent directories): .git" {
		t.Errorf("Error = %q", sr.Error)
	}
}

// --- parseGitDiff ---

func TestParseGitDiff_NumstatTotals(t *testing.T) {
	input := lines(
		"10\t2\tinternal/server.go",
		"0\t5\tREADME.md",
		"-\t-\tassets/logo.png",
	)
	r, err := parseGitDiff(out(input, 1))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	dr := r.(*result.VCSDiffResult)
	if dr.FilesChanged != 3 {
		t.Fatalf("FilesChanged = %d, want 3", dr.FilesChanged)
	}
	if dr.Added != 10 || dr.Deleted != 7 {
		t.Errorf("Added/Deleted = %d/%d, want 10/7", dr.Added, dr.Deleted)
	}
	bin := dr.Files[2]
	if !bin.Binary || bin.Added != 0 || bin.Deleted != 0 {
		t.Errorf("Files[2] = %+v, want binary with zero counts", bin)
	}
	if !dr.Success {
		t.Error("Success = false, want true (changes are data)")
	}
}

func TestParseGitDiff_NoChanges(t *testing.T) {
	r, err := parseGitDiff(out("", 0))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	dr := r.(*result.VCSDiffResult)
	if dr.FilesChanged != 0 || dr.Added != 0 || dr.Deleted != 0 {
		t.Errorf("FilesChanged/Added/Deleted = %d/%d/%d, want zeros", dr.FilesChanged, dr.Added, dr.Deleted)
	}
	if !dr.Success {
		t.Error("Success = false, want true")
	}
}

// --- parseGitLog ---

func TestParseGitLog_TabSeparatedColumns(t *testing.T) {
	input := lines(
		"a1b2c3d\tAlice\t2024-03-01T10:00:00+00:00\tfix: handle empty input",
		"e4f5a6b\tBob\t2024-02-28T09:30:00+00:00\tfeat: add config reload\twith a tab in the subject",
	)
	r, err := parseGitLog(out(input, 0))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	lr := r.(*result.VCSLogResult)
	if lr.Total != 2 {
		t.Fatalf("Total = %d, want 2", lr.Total)
	}
	c := lr.Commits[0]
	if c.Hash != "a1b2c3d" || c.Author != "Alice" || c.Subject != "fix: handle empty input" {
		t.Errorf("Commits[0] = %+v", c)
	}
	if c.Date != "2024-03-01T10:00:00+00:00" {
		t.Errorf("Date = %q", c.Date)
	}
	if lr.Commits[1].Subject != "feat: add config reload\twith a tab in the subject" {
		t.Errorf("Commits[1].Subject = %q, want trailing tabs kept", lr.Commits[1].Subject)
	}
}

func TestParseGitLog_Empty(t *testing.T) {
	r, err := parseGitLog(out("", 0))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	lr := r.(*result.VCSLogResult)
	if lr.Total != 0 {
		t.Errorf("Total = %d, want 0", lr.Total)
	}
	if !lr.Success {
		t.Error("Success = false, want true")
	}
}
