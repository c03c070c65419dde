//go:build !unix

package runner

import "os/exec"

func setProcGroup(cmd *exec.Cmd) {}

// killProcGroup falls back to killing the immediate child on platforms
// without POSIX process groups.
func killProcGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
