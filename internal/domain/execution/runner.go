package execution

import (
	"errors"
	"fmt"
	"strings"

	"github.com/maxkapur/topgrade/internal/domain/step"
	"github.com/maxkapur/topgrade/internal/domain/sudo"
	"github.com/maxkapur/topgrade/internal/ports"
)

// Runner drives steps strictly sequentially, isolating per-step failures
// and recording outcomes into a Report. Steps never run concurrently: they
// share the terminal and may prompt for input.
type Runner struct {
	ctx    *step.Context
	report *Report
}

// NewRunner creates a Runner bound to an execution context.
func NewRunner(ctx *step.Context) *Runner {
	return &Runner{ctx: ctx, report: NewReport()}
}

// Report returns the report being built. It is exclusively owned by the
// runner until the run completes.
func (r *Runner) Report() *Report {
	return r.report
}

// Execute runs one step. Disabled or platform-inapplicable steps return
// immediately without touching the report. Any error from the step body is
// converted into an outcome here and never propagated, with one exception:
// cancellation, which aborts the remaining loop.
func (r *Runner) Execute(s step.Step) error {
	logger := r.ctx.Logger().With(ports.F("step", s.ID().String()))

	if !r.ctx.Capabilities().Supports(s.Group()) {
		return nil
	}
	if !r.ctx.Config().ShouldRun(s.ID().String()) {
		logger.Debug(r.ctx.Context(), "step disabled by configuration")
		return nil
	}

	// Cancellation is checked at the step boundary; a signal delivered
	// mid-step is handled by the command executor.
	if r.ctx.Context().Err() != nil {
		return step.ErrInterrupted
	}

	printSeparator(r.ctx, s.Label())
	logger.Debug(r.ctx.Context(), "running step")

	err := s.Run(r.ctx)
	switch {
	case err == nil:
		r.report.Record(s.ID(), s.Label(), Success())
	case errors.Is(err, step.ErrInterrupted):
		r.report.Record(s.ID(), s.Label(), Failure("interrupted"))
		return step.ErrInterrupted
	case errors.Is(err, step.ErrNotApplicable):
		logger.Debug(r.ctx.Context(), "step skipped", ports.F("reason", skipReason(err)))
		r.report.Record(s.ID(), s.Label(), Skipped(skipReason(err)))
	case errors.Is(err, sudo.ErrDenied):
		r.report.Record(s.ID(), s.Label(), Failure("privilege elevation denied"))
	default:
		logger.Error(r.ctx.Context(), "step failed", ports.F("error", err))
		r.report.Record(s.ID(), s.Label(), Failure(err.Error()))
	}

	return nil
}

// ExecuteAll runs steps in order, stopping early only on cancellation. The
// report stays valid (partial) when ExecuteAll returns an error.
func (r *Runner) ExecuteAll(steps []step.Step) error {
	for _, s := range steps {
		if err := r.Execute(s); err != nil {
			return err
		}
	}
	return nil
}

// skipReason strips the ErrNotApplicable prefix for display.
func skipReason(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx >= 0 {
		return msg[idx+2:]
	}
	return msg
}

func printSeparator(ctx *step.Context, label string) {
	fmt.Fprintf(ctx.Out(), "\n── %s %s\n", label, strings.Repeat("─", separatorPad(label)))
}

func separatorPad(label string) int {
	const width = 60
	if n := width - len(label) - 4; n > 0 {
		return n
	}
	return 3
}
