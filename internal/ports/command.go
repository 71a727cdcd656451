// Package ports defines interfaces for external dependencies.
package ports

import (
	"context"
	"io"
)

// CommandResult represents the result of executing a probe command.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success returns true if the command exited with code 0.
func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}

// CommandRunner executes short-lived probe commands with captured output.
// Step bodies use it for cheap checks (version probes, credential checks);
// interactive upgrade processes go through StreamRunner instead.
type CommandRunner interface {
	Run(ctx context.Context, command string, args ...string) (CommandResult, error)
}

// ProcessSpec describes an interactive child process to spawn.
type ProcessSpec struct {
	// Command is the resolved path or name of the binary.
	Command string
	// Args are the command arguments, not including the command itself.
	Args []string
	// Dir is the working directory; empty means inherit.
	Dir string
	// Env is an overlay applied on top of the inherited environment.
	Env map[string]string
	// Stdin, Stdout and Stderr default to the process's own streams when nil.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// CommandLine returns the command and arguments as a single slice.
func (s ProcessSpec) CommandLine() []string {
	line := make([]string, 0, len(s.Args)+1)
	line = append(line, s.Command)
	line = append(line, s.Args...)
	return line
}

// StreamRunner spawns a child process with its output streamed to the
// terminal unmodified, waits for completion, and returns the exit code.
// A non-zero exit is reported through the exit code, not the error.
type StreamRunner interface {
	Start(ctx context.Context, spec ProcessSpec) (int, error)
}
