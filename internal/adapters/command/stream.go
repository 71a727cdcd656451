package command

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	"github.com/maxkapur/topgrade/internal/ports"
)

// StreamRunner spawns interactive child processes with stdio connected to
// the terminal. Upgrade tools prompt, draw progress bars and page output, so
// their streams are passed through unmodified.
type StreamRunner struct {
	// GracePeriod is how long a child may keep running after cancellation
	// before it is killed.
	GracePeriod time.Duration
}

// NewStreamRunner creates a StreamRunner with a default grace period.
func NewStreamRunner() *StreamRunner {
	return &StreamRunner{GracePeriod: 5 * time.Second}
}

// Start spawns the process described by spec, waits for it, and returns the
// exit code. On unix the child runs in its own process group and the group
// is interrupted when ctx is cancelled.
func (r *StreamRunner) Start(ctx context.Context, spec ports.ProcessSpec) (int, error) {
	cmd := exec.CommandContext(ctx, spec.Command, spec.Args...)
	cmd.Dir = spec.Dir

	if len(spec.Env) > 0 {
		cmd.Env = os.Environ()
		for k, v := range spec.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	cmd.Stdin = spec.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = spec.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = spec.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	configureProcessGroup(cmd)
	cmd.Cancel = func() error {
		return interruptProcess(cmd)
	}
	cmd.WaitDelay = r.GracePeriod

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if ctx.Err() != nil {
				return exitErr.ExitCode(), ctx.Err()
			}
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}

	return 0, nil
}

// Ensure StreamRunner implements ports.StreamRunner.
var _ ports.StreamRunner = (*StreamRunner)(nil)
