package sudo

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/maxkapur/topgrade/internal/adapters/command"
	"github.com/maxkapur/topgrade/internal/ports"
)

func lookupFor(available ...string) LookupFunc {
	set := make(map[string]bool, len(available))
	for _, name := range available {
		set[name] = true
	}
	return func(name string) (string, error) {
		if set[name] {
			return "/usr/bin/" + name, nil
		}
		return "", fmt.Errorf("%s: executable file not found in $PATH", name)
	}
}

func TestDetect_PreferenceOrder(t *testing.T) {
	tests := []struct {
		name      string
		available []string
		want      Kind
	}{
		{"sudo wins over doas", []string{"doas", "sudo"}, KindSudo},
		{"doas when no sudo", []string{"doas", "pkexec"}, KindDoas},
		{"run0 before pkexec", []string{"pkexec", "run0"}, KindRun0},
		{"gsudo last", []string{"gsudo"}, KindGsudo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Detect(lookupFor(tt.available...), command.NewRecordingRunner())
			if s == nil {
				t.Fatal("Detect() = nil")
			}
			if s.Kind() != tt.want {
				t.Errorf("Kind() = %q, want %q", s.Kind(), tt.want)
			}
		})
	}
}

func TestDetect_NoneAvailable(t *testing.T) {
	if s := Detect(lookupFor(), command.NewRecordingRunner()); s != nil {
		t.Errorf("Detect() = %v, want nil", s)
	}
}

func TestNew_ConfiguredHelper(t *testing.T) {
	s, err := New("doas", lookupFor("doas"), command.NewRecordingRunner())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if s.Kind() != KindDoas {
		t.Errorf("Kind() = %q, want doas", s.Kind())
	}

	if _, err := New("doas", lookupFor(), command.NewRecordingRunner()); err == nil {
		t.Error("New() with missing helper did not error")
	}
}

func TestElevate_ValidatesAtMostOnce(t *testing.T) {
	rec := command.NewRecordingRunner()
	s := Detect(lookupFor("sudo"), rec)

	for i := 0; i < 3; i++ {
		if err := s.Elevate(context.Background()); err != nil {
			t.Fatalf("Elevate() call %d error = %v", i, err)
		}
	}
	if rec.CallCount() != 1 {
		t.Errorf("CallCount() = %d, want 1 validation regardless of callers", rec.CallCount())
	}
}

func TestElevate_DeniedIsCached(t *testing.T) {
	rec := command.NewRecordingRunner()
	rec.ExitCodes["/usr/bin/sudo"] = 1
	s := Detect(lookupFor("sudo"), rec)

	err := s.Elevate(context.Background())
	if !errors.Is(err, ErrDenied) {
		t.Fatalf("Elevate() error = %v, want ErrDenied", err)
	}

	// The denial is cached; no second prompt.
	err = s.Elevate(context.Background())
	if !errors.Is(err, ErrDenied) {
		t.Fatalf("second Elevate() error = %v, want ErrDenied", err)
	}
	if rec.CallCount() != 1 {
		t.Errorf("CallCount() = %d, want 1", rec.CallCount())
	}
}

func TestValidationSpec_PerHelper(t *testing.T) {
	rec := command.NewRecordingRunner()

	s := Detect(lookupFor("sudo"), rec)
	if err := s.Elevate(context.Background()); err != nil {
		t.Fatalf("Elevate() error = %v", err)
	}
	calls := rec.Calls()
	if len(calls) != 1 || calls[0].Args[0] != "-v" {
		t.Errorf("sudo validation call = %+v, want -v", calls)
	}

	rec = command.NewRecordingRunner()
	s = Detect(lookupFor("doas"), rec)
	if err := s.Elevate(context.Background()); err != nil {
		t.Fatalf("Elevate() error = %v", err)
	}
	calls = rec.Calls()
	if len(calls) != 1 || calls[0].Args[0] != "true" {
		t.Errorf("doas validation call = %+v, want true", calls)
	}
}

func TestWrap_PrefixesHelper(t *testing.T) {
	s := Detect(lookupFor("sudo"), command.NewRecordingRunner())

	spec := s.Wrap(ports.ProcessSpec{Command: "apt-get", Args: []string{"update"}})
	if spec.Command != "/usr/bin/sudo" {
		t.Errorf("Command = %q, want /usr/bin/sudo", spec.Command)
	}
	want := []string{"apt-get", "update"}
	if len(spec.Args) != 2 || spec.Args[0] != want[0] || spec.Args[1] != want[1] {
		t.Errorf("Args = %v, want %v", spec.Args, want)
	}
}
