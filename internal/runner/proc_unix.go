//go:build unix

package runner

import (
	"os/exec"
	"syscall"
)

// setProcGroup places the command in its own process group so a timeout
// kill reaches grandchildren, not just the immediate child.
func setProcGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// killProcGroup kills the whole process group of a started command.
func killProcGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
}
