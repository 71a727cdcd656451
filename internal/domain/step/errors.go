package step

import (
	"errors"
	"fmt"
)

// ErrNotApplicable marks a step that cannot run on this host: the tool is
// absent or has nothing to work on. The runner records it as Skipped, never
// as a failure.
var ErrNotApplicable = errors.New("step not applicable")

// ErrInterrupted marks an execution aborted by cancellation. It propagates
// out of the runner and terminates the remaining loop.
var ErrInterrupted = errors.New("interrupted")

// Skip returns an ErrNotApplicable with a reason.
func Skip(reason string) error {
	return fmt.Errorf("%w: %s", ErrNotApplicable, reason)
}

// Skipf returns an ErrNotApplicable with a formatted reason.
func Skipf(format string, args ...interface{}) error {
	return Skip(fmt.Sprintf(format, args...))
}

// ExitError reports a child process that ran and exited non-zero.
type ExitError struct {
	Cmd  string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s failed with exit code %d", e.Cmd, e.Code)
}
