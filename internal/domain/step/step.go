package step

import "github.com/maxkapur/topgrade/internal/domain/platform"

// Step is one named unit of upgrade work. Implementations are thin glue
// around one external tool; all failure semantics live in the runner.
type Step interface {
	// ID returns the stable identity used for configuration lookups.
	ID() ID

	// Label returns the human-readable name shown in the report.
	Label() string

	// Group returns the platform group this step belongs to.
	Group() platform.Group

	// Run performs the upgrade. It must convert underlying execution
	// errors into the step error taxonomy before returning.
	Run(ctx *Context) error
}

// Func is a Step backed by a function.
type Func struct {
	id    ID
	label string
	group platform.Group
	run   func(*Context) error
}

// New creates a function-backed step.
func New(id ID, label string, group platform.Group, run func(*Context) error) Func {
	return Func{id: id, label: label, group: group, run: run}
}

// ID returns the step identity.
func (f Func) ID() ID {
	return f.id
}

// Label returns the display name.
func (f Func) Label() string {
	return f.label
}

// Group returns the platform group.
func (f Func) Group() platform.Group {
	return f.group
}

// Run invokes the step body.
func (f Func) Run(ctx *Context) error {
	return f.run(ctx)
}

// Ensure Func implements Step.
var _ Step = Func{}
