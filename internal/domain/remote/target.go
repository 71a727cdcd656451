// Package remote re-runs the upgrade pass on other hosts over SSH, each
// target appearing as a single step to the local runner.
package remote

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/maxkapur/topgrade/internal/domain/config"
)

// Target is one remote host plus connection parameters. Targets are built
// from configuration at startup and consumed once per run.
type Target struct {
	// Name is the configured identifier, shown in the report.
	Name string
	// Hostname is the address to connect to.
	Hostname string
	// User is the SSH user; empty means the local user.
	User string
	// Port is the SSH port; 0 means 22.
	Port int
	// IdentityFile is an explicit private key path.
	IdentityFile string
	// ConnectTimeout bounds connection establishment.
	ConnectTimeout time.Duration
}

// Addr returns the dial address.
func (t Target) Addr() string {
	port := t.Port
	if port == 0 {
		port = 22
	}
	return fmt.Sprintf("%s:%d", t.Hostname, port)
}

// ParseTarget parses "host" or "user@host" into a Target.
func ParseTarget(s string) Target {
	t := Target{Name: s, Hostname: s}
	if at := strings.Index(s, "@"); at >= 0 {
		t.User = s[:at]
		t.Hostname = s[at+1:]
		t.Name = t.Hostname
	}
	return t
}

// inventoryEntry is the YAML schema for per-host SSH settings.
type inventoryEntry struct {
	Hostname     string `yaml:"hostname"`
	User         string `yaml:"user"`
	Port         int    `yaml:"port"`
	IdentityFile string `yaml:"ssh_key"`
	// ConnectTimeout is a Go duration string, e.g. "10s".
	ConnectTimeout string `yaml:"connect_timeout"`
}

// LoadInventory reads a YAML inventory mapping host names to SSH settings.
func LoadInventory(path string) (map[string]Target, error) {
	data, err := os.ReadFile(expandHome(path))
	if err != nil {
		return nil, fmt.Errorf("read inventory %s: %w", path, err)
	}

	entries := make(map[string]inventoryEntry)
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("invalid inventory %s: %w", path, err)
	}

	targets := make(map[string]Target, len(entries))
	for name, e := range entries {
		hostname := e.Hostname
		if hostname == "" {
			hostname = name
		}
		var timeout time.Duration
		if e.ConnectTimeout != "" {
			timeout, err = time.ParseDuration(e.ConnectTimeout)
			if err != nil {
				return nil, fmt.Errorf("invalid connect_timeout for %s: %w", name, err)
			}
		}
		targets[name] = Target{
			Name:           name,
			Hostname:       hostname,
			User:           e.User,
			Port:           e.Port,
			IdentityFile:   e.IdentityFile,
			ConnectTimeout: timeout,
		}
	}
	return targets, nil
}

// ResolveTargets builds the run's target list from configuration: the hosts
// list, enriched by inventory entries when present.
func ResolveTargets(cfg *config.Config) ([]Target, error) {
	// With no hosts there is nothing to resolve; a remotely-invoked run
	// clears the host list and must not trip over an unreadable inventory.
	if len(cfg.Remote.Hosts) == 0 {
		return nil, nil
	}

	var inventory map[string]Target
	if cfg.Remote.Inventory != "" {
		var err error
		inventory, err = LoadInventory(cfg.Remote.Inventory)
		if err != nil {
			return nil, err
		}
	}

	targets := make([]Target, 0, len(cfg.Remote.Hosts))
	for _, host := range cfg.Remote.Hosts {
		t := ParseTarget(host)
		if inv, ok := inventory[t.Name]; ok {
			if t.User != "" {
				inv.User = t.User
			}
			targets = append(targets, inv)
			continue
		}
		targets = append(targets, t)
	}
	return targets, nil
}

// IsSelf reports whether the target is the invoking host itself. Targets
// matching the local hostname are excluded to prevent infinite recursion.
func IsSelf(localHost string, t Target) bool {
	if localHost == "" {
		return false
	}
	return strings.EqualFold(localHost, t.Name) || strings.EqualFold(localHost, t.Hostname)
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
