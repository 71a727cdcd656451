package remote

import (
	"fmt"

	"github.com/maxkapur/topgrade/internal/domain/platform"
	"github.com/maxkapur/topgrade/internal/domain/step"
	"github.com/maxkapur/topgrade/internal/ports"
)

// NewStep wraps one remote target as a single local step. A connect or
// remote-exit failure is a step failure for this target only; other targets
// and the local run are unaffected.
func NewStep(target Target, client *Client) step.Func {
	label := fmt.Sprintf("Remote (%s)", target.Name)
	return step.New(step.Remotes, label, platform.GroupRemote, func(ctx *step.Context) error {
		return dispatch(ctx, target, client)
	})
}

// remoteCommand is the non-interactive upgrade invocation run on the target.
var remoteCommand = []string{"env", "TOPGRADE_RUNNING_REMOTELY=1", "topgrade", "--yes", "--skip-notify"}

func dispatch(ctx *step.Context, target Target, client *Client) error {
	command := quoteCommand(remoteCommand)

	if ctx.Mode().Dry() {
		fmt.Fprintf(ctx.Out(), "Dry running: ssh %s %s\n", target.Name, command)
		return nil
	}

	logger := ctx.Logger().With(ports.F("target", target.Name))
	logger.Info(ctx.Context(), "dispatching upgrade to remote host")

	conn, err := client.Connect(ctx.Context(), target)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	code, err := conn.Run(ctx.Context(), command, ctx.Out(), ctx.Out())
	if err != nil {
		if ctx.Context().Err() != nil {
			return step.ErrInterrupted
		}
		return err
	}
	if code != 0 {
		return &step.ExitError{Cmd: "topgrade on " + target.Name, Code: code}
	}
	return nil
}
