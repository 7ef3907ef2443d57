//go:build unix

package tlmgr

import (
	"os/exec"
	"syscall"
)

// setProcGroup starts the command in its own process group so that
// helpers spawned by tlmgr are killed with it.
func setProcGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// killProcGroup kills the entire process group of the command.
func killProcGroup(cmd *exec.Cmd) error {
	if cmd.Process != nil {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
	return nil
}
