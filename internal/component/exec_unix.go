//go:build linux || darwin || freebsd

package component

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// killGroup starts cmd as a process group leader and makes cancellation
// signal the whole group, so children of a shell die with it.
func killGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		if err := unix.Kill(-cmd.Process.Pid, unix.SIGKILL); err != nil {
			return cmd.Process.Kill()
		}
		return nil
	}
}
