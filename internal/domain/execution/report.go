// Package execution drives steps to completion and records their outcomes.
package execution

import "github.com/maxkapur/topgrade/internal/domain/step"

type outcomeKind int

const (
	kindSuccess outcomeKind = iota
	kindFailure
	kindSkipped
)

// Outcome is the terminal result of one step invocation.
type Outcome struct {
	kind   outcomeKind
	reason string
}

// Success is a successful outcome.
func Success() Outcome {
	return Outcome{kind: kindSuccess}
}

// Failure is a failed outcome with a description.
func Failure(reason string) Outcome {
	return Outcome{kind: kindFailure, reason: reason}
}

// Skipped is a not-applicable outcome with a reason. Skips never count as
// failures.
func Skipped(reason string) Outcome {
	return Outcome{kind: kindSkipped, reason: reason}
}

// Succeeded reports a successful outcome.
func (o Outcome) Succeeded() bool {
	return o.kind == kindSuccess
}

// Failed reports a failed outcome.
func (o Outcome) Failed() bool {
	return o.kind == kindFailure
}

// WasSkipped reports a skipped outcome.
func (o Outcome) WasSkipped() bool {
	return o.kind == kindSkipped
}

// Reason returns the failure or skip description.
func (o Outcome) Reason() string {
	return o.reason
}

// String returns a short indicator for the outcome.
func (o Outcome) String() string {
	switch o.kind {
	case kindFailure:
		return "failed"
	case kindSkipped:
		return "skipped"
	default:
		return "ok"
	}
}

// Entry is one recorded (step, outcome) pair.
type Entry struct {
	ID      step.ID
	Label   string
	Outcome Outcome
}

// Report is the ordered record of step outcomes for one run. Entries are
// appended by the runner in invocation order and only read afterwards. A
// step appears here iff its body was actually invoked.
type Report struct {
	entries []Entry
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{}
}

// Record appends an outcome. Called exclusively by the runner.
func (r *Report) Record(id step.ID, label string, outcome Outcome) {
	r.entries = append(r.entries, Entry{ID: id, Label: label, Outcome: outcome})
}

// Entries returns the recorded entries in insertion order.
func (r *Report) Entries() []Entry {
	return r.entries
}

// Empty reports whether nothing was recorded.
func (r *Report) Empty() bool {
	return len(r.entries) == 0
}

// HasFailures reports whether any entry failed. An all-skipped report is
// not a failure.
func (r *Report) HasFailures() bool {
	for _, e := range r.entries {
		if e.Outcome.Failed() {
			return true
		}
	}
	return false
}
