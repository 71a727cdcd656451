// Package config loads and queries the topgrade configuration file.
package config

import (
	"sort"
	"strings"
)

// Misc holds miscellaneous toggles.
type Misc struct {
	// PreSudo elevates privileges once before the first step runs.
	PreSudo bool `toml:"pre_sudo"`
	// SudoCommand overrides elevation helper detection (e.g. "doas").
	SudoCommand string `toml:"sudo_command"`
	// SkipNotify disables the end-of-run notification.
	SkipNotify bool `toml:"skip_notify"`
	// AssumeYes answers yes to confirmation prompts.
	AssumeYes bool `toml:"assume_yes"`
}

// Steps holds step selection lists. Only wins over Disable: when Only is
// non-empty, everything not listed is skipped.
type Steps struct {
	Only    []string `toml:"only"`
	Disable []string `toml:"disable"`
}

// Remote holds remote dispatch settings.
type Remote struct {
	// Hosts are remote targets, "host" or "user@host".
	Hosts []string `toml:"hosts"`
	// Inventory is an optional YAML file with per-host SSH settings.
	Inventory string `toml:"inventory"`
}

// Config is the resolved topgrade configuration. It is read-only after Load.
type Config struct {
	Misc   Misc   `toml:"misc"`
	Steps  Steps  `toml:"steps"`
	Remote Remote `toml:"remote"`

	// Commands are named custom commands run as ordinary steps.
	Commands map[string]string `toml:"commands"`
	// PreCommands run before any step; a failure aborts the run.
	PreCommands map[string]string `toml:"pre_commands"`
	// PostCommands run after the summary; a failure flips the exit code.
	PostCommands map[string]string `toml:"post_commands"`
}

// New returns an empty configuration with defaults.
func New() *Config {
	return &Config{}
}

// ShouldRun reports whether the step with the given ID is enabled.
func (c *Config) ShouldRun(id string) bool {
	if len(c.Steps.Only) > 0 {
		return containsFold(c.Steps.Only, id)
	}
	return !containsFold(c.Steps.Disable, id)
}

// ShouldRunCustom reports whether the named custom command is enabled.
// Custom commands share the "custom_commands" step toggle and can also be
// disabled individually by name.
func (c *Config) ShouldRunCustom(name string) bool {
	if !c.ShouldRun("custom_commands") {
		return false
	}
	return !containsFold(c.Steps.Disable, name)
}

// AddOnly appends step IDs to the only-list (CLI flag merge).
func (c *Config) AddOnly(ids []string) {
	c.Steps.Only = append(c.Steps.Only, ids...)
}

// AddDisabled appends step IDs to the disable-list (CLI flag merge).
func (c *Config) AddDisabled(ids []string) {
	c.Steps.Disable = append(c.Steps.Disable, ids...)
}

// SortedCommands returns custom command names in stable order. TOML maps
// have no order, and the report contract requires a deterministic one.
func (c *Config) SortedCommands() []string {
	return sortedKeys(c.Commands)
}

// SortedPreCommands returns pre-command names in stable order.
func (c *Config) SortedPreCommands() []string {
	return sortedKeys(c.PreCommands)
}

// SortedPostCommands returns post-command names in stable order.
func (c *Config) SortedPostCommands() []string {
	return sortedKeys(c.PostCommands)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}
