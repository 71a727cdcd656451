package step

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/maxkapur/topgrade/internal/ports"
)

// Command builds and runs one external process on behalf of a step. In
// simulate mode Run prints the command line and returns without spawning;
// in execute mode it streams the child's output to the terminal and maps
// the exit status into the step error taxonomy.
type Command struct {
	rc       *Context
	name     string
	args     []string
	dir      string
	env      map[string]string
	elevated bool
}

// Command starts building a process invocation.
func (c *Context) Command(name string, args ...string) *Command {
	return &Command{rc: c, name: name, args: args}
}

// InDir sets the working directory.
func (cmd *Command) InDir(dir string) *Command {
	cmd.dir = dir
	return cmd
}

// WithEnv adds an environment variable overlay entry.
func (cmd *Command) WithEnv(key, value string) *Command {
	if cmd.env == nil {
		cmd.env = make(map[string]string)
	}
	cmd.env[key] = value
	return cmd
}

// Elevated wraps the invocation with the host's elevation helper. The
// helper's credentials are validated lazily on first use.
func (cmd *Command) Elevated() *Command {
	cmd.elevated = true
	return cmd
}

// String returns the command line for display.
func (cmd *Command) String() string {
	line := cmd.name
	if cmd.elevated && cmd.rc.sudo != nil {
		line = string(cmd.rc.sudo.Kind()) + " " + line
	}
	if len(cmd.args) > 0 {
		line += " " + strings.Join(cmd.args, " ")
	}
	return line
}

// Run executes the command. Returns nil on success, ErrNotApplicable when
// the binary is absent, *ExitError on a non-zero exit, sudo.ErrDenied when
// elevation fails, and ErrInterrupted when cancellation aborts the child.
func (cmd *Command) Run() error {
	if cmd.rc.mode.Dry() {
		fmt.Fprintf(cmd.rc.out, "Dry running: %s\n", cmd.String())
		return nil
	}

	if _, err := cmd.rc.lookup(cmd.name); err != nil {
		return Skipf("%s is not installed", cmd.name)
	}

	spec := ports.ProcessSpec{
		Command: cmd.name,
		Args:    cmd.args,
		Dir:     cmd.dir,
		Env:     cmd.env,
	}

	if cmd.elevated {
		s := cmd.rc.sudo
		if s == nil {
			return Skipf("%s requires privilege elevation and no helper was found", cmd.name)
		}
		if err := s.Elevate(cmd.rc.ctx); err != nil {
			return err
		}
		spec = s.Wrap(spec)
	}

	code, err := cmd.rc.stream.Start(cmd.rc.ctx, spec)
	if err != nil {
		if errors.Is(err, context.Canceled) || cmd.rc.ctx.Err() != nil {
			return ErrInterrupted
		}
		return fmt.Errorf("running %s: %w", cmd.name, err)
	}
	if code != 0 {
		return &ExitError{Cmd: cmd.name, Code: code}
	}
	return nil
}
