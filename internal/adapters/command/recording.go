package command

import (
	"context"
	"sync"

	"github.com/maxkapur/topgrade/internal/ports"
)

// RecordedCall is one invocation observed by a RecordingRunner.
type RecordedCall struct {
	Command string
	Args    []string
}

// RecordingRunner implements both ports.CommandRunner and ports.StreamRunner
// without spawning anything. Tests use it to assert which commands a step
// would run, and in particular that simulate mode spawns nothing at all.
type RecordingRunner struct {
	mu    sync.Mutex
	calls []RecordedCall

	// Results maps a command name to the probe result to return.
	Results map[string]ports.CommandResult
	// ExitCodes maps a command name to the exit code Start reports.
	ExitCodes map[string]int
	// Err, when set, is returned from every invocation.
	Err error
}

// NewRecordingRunner creates an empty RecordingRunner.
func NewRecordingRunner() *RecordingRunner {
	return &RecordingRunner{
		Results:   make(map[string]ports.CommandResult),
		ExitCodes: make(map[string]int),
	}
}

// Run records the call and returns the configured probe result.
func (r *RecordingRunner) Run(_ context.Context, command string, args ...string) (ports.CommandResult, error) {
	r.record(command, args)
	if r.Err != nil {
		return ports.CommandResult{}, r.Err
	}
	if result, ok := r.Results[command]; ok {
		return result, nil
	}
	return ports.CommandResult{}, nil
}

// Start records the call and returns the configured exit code.
func (r *RecordingRunner) Start(_ context.Context, spec ports.ProcessSpec) (int, error) {
	r.record(spec.Command, spec.Args)
	if r.Err != nil {
		return -1, r.Err
	}
	return r.ExitCodes[spec.Command], nil
}

// Calls returns a copy of all recorded invocations.
func (r *RecordingRunner) Calls() []RecordedCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	calls := make([]RecordedCall, len(r.calls))
	copy(calls, r.calls)
	return calls
}

// CallCount returns the number of recorded invocations.
func (r *RecordingRunner) CallCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func (r *RecordingRunner) record(command string, args []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, RecordedCall{Command: command, Args: args})
}

// Ensure RecordingRunner implements both runner ports.
var (
	_ ports.CommandRunner = (*RecordingRunner)(nil)
	_ ports.StreamRunner  = (*RecordingRunner)(nil)
)
