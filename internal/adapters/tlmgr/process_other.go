//go:build !unix

package tlmgr

import "os/exec"

func setProcGroup(_ *exec.Cmd) {}

func killProcGroup(cmd *exec.Cmd) error {
	if cmd.Process != nil {
		return cmd.Process.Kill()
	}
	return nil
}
