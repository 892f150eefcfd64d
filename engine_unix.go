//go:build unix

package xlwrite

import (
	"os/exec"
	"syscall"
)

// configureProcess starts the shell in its own process group so that
// cancellation reaches every process it spawned.
func configureProcess(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
