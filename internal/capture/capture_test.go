package capture

import (
	"strings"
	"testing"
)

func TestTruncate_UnderBudget(t *testing.T) {
	s, cut := Truncate("short", 100)
	if cut {
		t.Error("cut = true, want false")
	}
	if s != "short" {
		t.Errorf("s = %q, want %q", s, "short")
	}
}

func TestTruncate_OverBudget(t *testing.T) {
	in := strings.Repeat("x", 100)
	s, cut := Truncate(in, 20)
	if !cut {
		t.Error("cut = false, want true")
	}
	if len(s) > 20 {
		t.Errorf("len(s) = %d, want <= 20", len(s))
	}
	if !strings.HasSuffix(s, Marker) {
		t.Errorf("s = %q, want suffix %q", s, Marker)
	}
	if strings.Count(s, Marker) != 1 {
		t.Errorf("marker count = %d, want 1", strings.Count(s, Marker))
	}
}

func TestTruncate_ExactBudget(t *testing.T) {
	in := strings.Repeat("x", 20)
	s, cut := Truncate(in, 20)
	if cut {
		t.Error("cut = true, want false")
	}
	if s != in {
		t.Errorf("s = %q, want input unchanged", s)
	}
}

func TestTruncate_BudgetSmallerThanMarker(t *testing.T) {
	s, cut := Truncate(strings.Repeat("x", 50), 5)
	if !cut {
		t.Error("cut = false, want true")
	}
	if len(s) != 5 {
		t.Errorf("len(s) = %d, want 5", len(s))
	}
}

func TestTruncate_ZeroBudget(t *testing.T) {
	s, cut := Truncate("anything", 0)
	if cut {
		t.Error("cut = true, want false")
	}
	if s != "anything" {
		t.Errorf("s = %q, want passthrough", s)
	}
}

func TestClip_BothStreams(t *testing.T) {
	c := Capture{
		Stdout:   strings.Repeat("a", 100),
		Stderr:   strings.Repeat("b", 100),
		ExitCode: 1,
	}
	out := c.Clip(20)
	if !out.Truncated {
		t.Error("Truncated = false, want true")
	}
	if len(out.Stdout) > 20 || len(out.Stderr) > 20 {
		t.Errorf("lens = %d/%d, want <= 20 each", len(out.Stdout), len(out.Stderr))
	}
	if !strings.HasSuffix(out.Stdout, Marker) {
		t.Errorf("Stdout = %q, want marker suffix", out.Stdout)
	}
	if !strings.HasSuffix(out.Stderr, Marker) {
		t.Errorf("Stderr = %q, want marker suffix", out.Stderr)
	}
	if out.ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", out.ExitCode)
	}
}

func TestClip_PreservesUpstreamFlag(t *testing.T) {
	c := Capture{Stdout: "ok", Truncated: true}
	out := c.Clip(100)
	if !out.Truncated {
		t.Error("Truncated = false, want true (upstream flag preserved)")
	}
}

func TestCombined(t *testing.T) {
	c := Capture{Stdout: "out\n", Stderr: "err\n"}
	got := c.Combined()
	if got != "out\nerr\n" {
		t.Errorf("Combined = %q, want %q", got, "out\nerr\n")
	}

	if got := (Capture{Stdout: "only"}).Combined(); got != "only" {
		t.Errorf("Combined = %q, want %q", got, "only")
	}
	if got := (Capture{Stderr: "only"}).Combined(); got != "only" {
		t.Errorf("Combined = %q, want %q", got, "only")
	}
}
