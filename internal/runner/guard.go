package runner

import (
	"fmt"
	"strings"
)

// Limits on user-supplied arguments, enforced before a process is spawned.
const (
	MaxArgLen = 4096 // characters per argument
	MaxArgs   = 256  // arguments per call
)

// GuardError reports a user-supplied argument rejected before spawning.
type GuardError struct {
	Arg    string
	Reason string
}

func (e *GuardError) Error() string {
	arg := e.Arg
	if len(arg) > 64 {
		arg = arg[:64] + "..."
	}
	return fmt.Sprintf("rejected argument %q: %s", arg, e.Reason)
}

// Guard validates user-supplied positional arguments. Arguments beginning
// with "-" are rejected so they cannot be reinterpreted as tool flags;
// oversized arguments and oversized argument lists are rejected outright.
// Downstream parsing never re-validates.
func Guard(args []string) error {
	if len(args) > MaxArgs {
		return &GuardError{
			Arg:    fmt.Sprintf("(%d arguments)", len(args)),
			Reason: fmt.Sprintf("too many arguments (max %d)", MaxArgs),
		}
	}
	for _, a := range args {
		if strings.HasPrefix(a, "-") {
			return &GuardError{Arg: a, Reason: "positional arguments must not begin with '-'"}
		}
		if len(a) > MaxArgLen {
			return &GuardError{Arg: a, Reason: fmt.Sprintf("argument too long (max %d characters)", MaxArgLen)}
		}
	}
	return nil
}
