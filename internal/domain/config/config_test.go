package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestShouldRun_DefaultEnabled(t *testing.T) {
	cfg := New()
	if !cfg.ShouldRun("cargo") {
		t.Error("ShouldRun() = false with empty config")
	}
}

func TestShouldRun_Disable(t *testing.T) {
	cfg := New()
	cfg.AddDisabled([]string{"cargo", "System"})

	if cfg.ShouldRun("cargo") {
		t.Error("disabled step still enabled")
	}
	if cfg.ShouldRun("system") {
		t.Error("disable matching is not case-insensitive")
	}
	if !cfg.ShouldRun("rustup") {
		t.Error("unlisted step disabled")
	}
}

func TestShouldRun_OnlyWinsOverDisable(t *testing.T) {
	cfg := New()
	cfg.AddOnly([]string{"cargo"})
	cfg.AddDisabled([]string{"cargo"})

	if !cfg.ShouldRun("cargo") {
		t.Error("only-listed step disabled by disable list")
	}
	if cfg.ShouldRun("rustup") {
		t.Error("step outside the only list still enabled")
	}
}

func TestShouldRunCustom(t *testing.T) {
	cfg := New()
	if !cfg.ShouldRunCustom("cleanup") {
		t.Error("custom command disabled by default")
	}

	cfg.AddDisabled([]string{"cleanup"})
	if cfg.ShouldRunCustom("cleanup") {
		t.Error("individually disabled custom command still enabled")
	}
	if !cfg.ShouldRunCustom("other") {
		t.Error("unrelated custom command disabled")
	}

	cfg = New()
	cfg.AddDisabled([]string{"custom_commands"})
	if cfg.ShouldRunCustom("cleanup") {
		t.Error("custom command enabled despite custom_commands being disabled")
	}
}

func TestSortedCommands_StableOrder(t *testing.T) {
	cfg := New()
	cfg.Commands = map[string]string{"zz": "true", "aa": "true", "mm": "true"}

	got := cfg.SortedCommands()
	want := []string{"aa", "mm", "zz"}
	if len(got) != len(want) {
		t.Fatalf("SortedCommands() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SortedCommands()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParse_FullConfig(t *testing.T) {
	data := []byte(`
[misc]
pre_sudo = true
sudo_command = "doas"
assume_yes = true

[steps]
only = ["cargo"]
disable = ["system"]

[remote]
hosts = ["alice@server1", "server2"]
inventory = "~/.config/topgrade-hosts.yaml"

[commands]
"Update dotfiles" = "git -C ~/dotfiles pull"

[pre_commands]
"Backup" = "restic backup ~"
`)

	cfg, err := Parse(data, "test.toml")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !cfg.Misc.PreSudo || cfg.Misc.SudoCommand != "doas" || !cfg.Misc.AssumeYes {
		t.Errorf("Misc = %+v", cfg.Misc)
	}
	if len(cfg.Steps.Only) != 1 || cfg.Steps.Only[0] != "cargo" {
		t.Errorf("Steps.Only = %v", cfg.Steps.Only)
	}
	if len(cfg.Remote.Hosts) != 2 || cfg.Remote.Inventory == "" {
		t.Errorf("Remote = %+v", cfg.Remote)
	}
	if cfg.Commands["Update dotfiles"] != "git -C ~/dotfiles pull" {
		t.Errorf("Commands = %v", cfg.Commands)
	}
	if cfg.PreCommands["Backup"] != "restic backup ~" {
		t.Errorf("PreCommands = %v", cfg.PreCommands)
	}
}

func TestParse_InvalidTOML(t *testing.T) {
	_, err := Parse([]byte("[misc\npre_sudo = "), "broken.toml")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Parse() error = %v, want *ParseError", err)
	}
	if parseErr.Path != "broken.toml" {
		t.Errorf("ParseError.Path = %q", parseErr.Path)
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "topgrade.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.ShouldRun("cargo") {
		t.Error("default config disables steps")
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topgrade.toml")
	if err := os.WriteFile(path, []byte("[steps]\ndisable = [\"snap\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ShouldRun("snap") {
		t.Error("disable list from file not applied")
	}
}

func TestDefaultPath_EnvOverride(t *testing.T) {
	t.Setenv(EnvConfigPath, "/tmp/custom.toml")
	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error = %v", err)
	}
	if path != "/tmp/custom.toml" {
		t.Errorf("DefaultPath() = %q, want env override", path)
	}
}

func TestExample_Parses(t *testing.T) {
	if _, err := Parse([]byte(Example), "example.toml"); err != nil {
		t.Fatalf("reference config does not parse: %v", err)
	}
}
