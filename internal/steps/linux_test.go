package steps

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/maxkapur/topgrade/internal/adapters/command"
	"github.com/maxkapur/topgrade/internal/domain/config"
	"github.com/maxkapur/topgrade/internal/domain/platform"
	"github.com/maxkapur/topgrade/internal/domain/step"
	"github.com/maxkapur/topgrade/internal/domain/sudo"
)

func lookupFor(available ...string) func(string) (string, error) {
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

func linuxContext(distro string, rec *command.RecordingRunner, cfg *config.Config, lookup func(string) (string, error)) *step.Context {
	plat := platform.NewLinux(distro)
	return step.NewContext(step.Params{
		Config:       cfg,
		Platform:     plat,
		Capabilities: platform.CapabilitiesFor(plat),
		Sudo:         sudo.Detect(lookup, rec),
		Stream:       rec,
		Out:          &bytes.Buffer{},
		Lookup:       lookup,
	})
}

func TestSystemUpgrade_Debian(t *testing.T) {
	rec := command.NewRecordingRunner()
	cfg := config.New()
	cfg.Misc.AssumeYes = true
	rc := linuxContext("debian", rec, cfg, lookupFor("sudo", "apt-get"))

	if err := LinuxSteps()[0].Run(rc); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	calls := rec.Calls()
	if len(calls) != 3 {
		t.Fatalf("Calls() = %+v, want validation + update + dist-upgrade", calls)
	}
	if calls[0].Args[0] != "-v" {
		t.Errorf("calls[0] = %+v, want sudo validation", calls[0])
	}
	if calls[1].Command != "/usr/bin/sudo" || calls[1].Args[0] != "apt-get" || calls[1].Args[1] != "update" {
		t.Errorf("calls[1] = %+v", calls[1])
	}
	want := []string{"apt-get", "dist-upgrade", "-y"}
	if len(calls[2].Args) != 3 || calls[2].Args[0] != want[0] || calls[2].Args[1] != want[1] || calls[2].Args[2] != want[2] {
		t.Errorf("calls[2].Args = %v, want %v", calls[2].Args, want)
	}
}

func TestSystemUpgrade_ArchPrefersAURHelper(t *testing.T) {
	rec := command.NewRecordingRunner()
	rc := linuxContext("arch", rec, config.New(), lookupFor("sudo", "paru", "pacman"))

	if err := LinuxSteps()[0].Run(rc); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	calls := rec.Calls()
	if len(calls) != 1 {
		t.Fatalf("Calls() = %+v, want a single AUR helper call", calls)
	}
	// The AUR helper handles its own elevation; no sudo prefix.
	if calls[0].Command != "paru" || calls[0].Args[0] != "-Syu" {
		t.Errorf("calls[0] = %+v, want paru -Syu", calls[0])
	}
}

func TestSystemUpgrade_ArchFallsBackToPacman(t *testing.T) {
	rec := command.NewRecordingRunner()
	rc := linuxContext("arch", rec, config.New(), lookupFor("sudo", "pacman"))

	if err := LinuxSteps()[0].Run(rc); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	calls := rec.Calls()
	if len(calls) != 2 {
		t.Fatalf("Calls() = %+v, want validation + pacman", calls)
	}
	if calls[1].Command != "/usr/bin/sudo" || calls[1].Args[0] != "pacman" || calls[1].Args[1] != "-Syu" {
		t.Errorf("calls[1] = %+v", calls[1])
	}
}

func TestSystemUpgrade_UnknownDistroSkips(t *testing.T) {
	rec := command.NewRecordingRunner()
	rc := linuxContext("", rec, config.New(), lookupFor("sudo"))

	err := LinuxSteps()[0].Run(rc)
	if !errors.Is(err, step.ErrNotApplicable) {
		t.Fatalf("Run() error = %v, want ErrNotApplicable", err)
	}
	if rec.CallCount() != 0 {
		t.Errorf("CallCount() = %d, want 0", rec.CallCount())
	}
}

func TestSystemUpgrade_NixOSSkips(t *testing.T) {
	rec := command.NewRecordingRunner()
	rc := linuxContext("nixos", rec, config.New(), lookupFor("sudo"))

	err := LinuxSteps()[0].Run(rc)
	if !errors.Is(err, step.ErrNotApplicable) {
		t.Fatalf("Run() error = %v, want ErrNotApplicable", err)
	}
}

func TestSnap_MissingBinarySkips(t *testing.T) {
	rec := command.NewRecordingRunner()
	rc := linuxContext("debian", rec, config.New(), lookupFor("sudo"))

	err := LinuxSteps()[1].Run(rc)
	if !errors.Is(err, step.ErrNotApplicable) {
		t.Fatalf("Run() error = %v, want ErrNotApplicable", err)
	}
}
