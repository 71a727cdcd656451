// Package sudo detects and drives the host's privilege elevation helper.
package sudo

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sync"

	"github.com/maxkapur/topgrade/internal/ports"
)

// ErrDenied indicates the user declined elevation or the helper refused it.
// Steps surface it as an ordinary step failure, never a fatal error.
var ErrDenied = errors.New("privilege elevation denied")

// Kind identifies a known elevation helper.
type Kind string

const (
	// KindSudo is the classic sudo.
	KindSudo Kind = "sudo"
	// KindDoas is OpenBSD-style doas.
	KindDoas Kind = "doas"
	// KindRun0 is systemd's run0.
	KindRun0 Kind = "run0"
	// KindPkexec is polkit's pkexec.
	KindPkexec Kind = "pkexec"
	// KindGsudo is gsudo on Windows.
	KindGsudo Kind = "gsudo"
)

// detectionOrder is the fixed preference order when probing the host.
var detectionOrder = []Kind{KindSudo, KindDoas, KindRun0, KindPkexec, KindGsudo}

// Sudo wraps commands with an elevation helper. The credential check runs
// lazily, at most once per process; later calls observe the cached result.
type Sudo struct {
	kind   Kind
	path   string
	stream ports.StreamRunner

	once       sync.Once
	elevateErr error
}

// LookupFunc resolves a binary name to a path, exec.LookPath in production.
type LookupFunc func(string) (string, error)

// Detect probes the host for a known helper. Returns nil when none is
// available; callers treat nil as "elevation unavailable".
func Detect(lookup LookupFunc, stream ports.StreamRunner) *Sudo {
	if lookup == nil {
		lookup = exec.LookPath
	}
	for _, kind := range detectionOrder {
		if path, err := lookup(string(kind)); err == nil {
			return &Sudo{kind: kind, path: path, stream: stream}
		}
	}
	return nil
}

// New builds a Sudo from a configured helper command, bypassing detection.
func New(command string, lookup LookupFunc, stream ports.StreamRunner) (*Sudo, error) {
	if lookup == nil {
		lookup = exec.LookPath
	}
	path, err := lookup(command)
	if err != nil {
		return nil, fmt.Errorf("configured sudo command %q not found: %w", command, err)
	}
	return &Sudo{kind: Kind(command), path: path, stream: stream}, nil
}

// Kind returns the helper kind.
func (s *Sudo) Kind() Kind {
	return s.kind
}

// Elevate validates credentials with the helper, prompting the user if the
// helper needs it. The first call resolves; subsequent calls are no-ops
// returning the cached result.
func (s *Sudo) Elevate(ctx context.Context) error {
	s.once.Do(func() {
		code, err := s.stream.Start(ctx, s.validationSpec())
		switch {
		case err != nil:
			s.elevateErr = fmt.Errorf("%w: %v", ErrDenied, err)
		case code != 0:
			s.elevateErr = ErrDenied
		}
	})
	return s.elevateErr
}

// validationSpec is a cheap side-effect-free credential check per helper.
func (s *Sudo) validationSpec() ports.ProcessSpec {
	switch s.kind {
	case KindSudo:
		return ports.ProcessSpec{Command: s.path, Args: []string{"-v"}}
	case KindGsudo:
		return ports.ProcessSpec{Command: s.path, Args: []string{"cache", "on"}}
	default:
		// doas, run0 and pkexec have no validate flag; run a no-op.
		return ports.ProcessSpec{Command: s.path, Args: []string{"true"}}
	}
}

// Wrap prefixes the process spec with the elevation helper.
func (s *Sudo) Wrap(spec ports.ProcessSpec) ports.ProcessSpec {
	args := make([]string, 0, len(spec.Args)+1)
	args = append(args, spec.Command)
	args = append(args, spec.Args...)
	spec.Command = s.path
	spec.Args = args
	return spec
}
