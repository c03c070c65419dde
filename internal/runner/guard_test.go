package runner

import (
	"errors"
	"strings"
	"testing"
)

func TestGuard_CleanArgs(t *testing.T) {
	if err := Guard([]string{"src/app.py", "tests", "a b c"}); err != nil {
		t.Errorf("Guard = %v, want nil", err)
	}
}

func TestGuard_Empty(t *testing.T) {
	if err := Guard(nil); err != nil {
		t.Errorf("Guard(nil) = %v, want nil", err)
	}
}

func TestGuard_ShortFlag(t *testing.T) {
	err := Guard([]string{"-rf"})
	if err == nil {
		t.Fatal("expected error for flag-like argument")
	}
	var ge *GuardError
	if !errors.As(err, &ge) {
		t.Fatalf("error type = %T, want *GuardError", err)
	}
	if ge.Arg != "-rf" {
		t.Errorf("Arg = %q, want %q", ge.Arg, "-rf")
	}
}

func TestGuard_LongFlag(t *testing.T) {
	if err := Guard([]string{"file.py", "--exec=rm"}); err == nil {
		t.Fatal("expected error for --flag argument")
	}
}

func TestGuard_ArgTooLong(t *testing.T) {
	err := Guard([]string{strings.Repeat("a", MaxArgLen+1)})
	if err == nil {
		t.Fatal("expected error for oversized argument")
	}
	if !strings.Contains(err.Error(), "too long") {
		t.Errorf("error = %q, want 'too long'", err)
	}
}

func TestGuard_ArgAtLimit(t *testing.T) {
	if err := Guard([]string{strings.Repeat("a", MaxArgLen)}); err != nil {
		t.Errorf("Guard = %v, want nil at exact limit", err)
	}
}

func TestGuard_TooManyArgs(t *testing.T) {
	args := make([]string, MaxArgs+1)
	for i := range args {
		args[i] = "x"
	}
	err := Guard(args)
	if err == nil {
		t.Fatal("expected error for oversized argument list")
	}
	if !strings.Contains(err.Error(), "too many") {
		t.Errorf("error = %q, want 'too many'", err)
	}
}

func TestGuardError_TruncatesLongArg(t *testing.T) {
	e := &GuardError{Arg: strings.Repeat("z", 200), Reason: "x"}
	if len(e.Error()) > 120 {
		t.Errorf("len(Error()) = %d, want a short message", len(e.Error()))
	}
}
