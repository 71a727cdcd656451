//go:build windows

package command

import "os/exec"

// configureProcessGroup is a no-op on Windows; console process groups are
// not controllable through SysProcAttr the way unix process groups are.
func configureProcessGroup(_ *exec.Cmd) {}

// interruptProcess kills the child. Windows has no SIGINT delivery for
// arbitrary processes, so a hard stop is the only portable option.
func interruptProcess(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
