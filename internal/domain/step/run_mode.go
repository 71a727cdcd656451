package step

// RunMode distinguishes simulating commands from executing them. It is set
// once at startup and never mutated.
type RunMode int

const (
	// Execute actually invokes subprocesses.
	Execute RunMode = iota
	// Simulate prints what would run without spawning anything.
	Simulate
)

// Dry reports whether this is a simulation.
func (m RunMode) Dry() bool {
	return m == Simulate
}

// String returns the mode name.
func (m RunMode) String() string {
	if m == Simulate {
		return "simulate"
	}
	return "execute"
}
