package remote

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/maxkapur/topgrade/internal/domain/config"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in       string
		name     string
		hostname string
		user     string
	}{
		{"server1", "server1", "server1", ""},
		{"alice@build-box", "build-box", "build-box", "alice"},
	}

	for _, tt := range tests {
		got := ParseTarget(tt.in)
		if got.Name != tt.name || got.Hostname != tt.hostname || got.User != tt.user {
			t.Errorf("ParseTarget(%q) = %+v", tt.in, got)
		}
	}
}

func TestTarget_Addr(t *testing.T) {
	if got := (Target{Hostname: "server1"}).Addr(); got != "server1:22" {
		t.Errorf("Addr() = %q, want server1:22", got)
	}
	if got := (Target{Hostname: "server1", Port: 2222}).Addr(); got != "server1:2222" {
		t.Errorf("Addr() = %q, want server1:2222", got)
	}
}

func TestIsSelf(t *testing.T) {
	if !IsSelf("myhost", Target{Name: "myhost", Hostname: "myhost"}) {
		t.Error("IsSelf() = false for matching name")
	}
	if !IsSelf("MyHost", Target{Name: "laptop", Hostname: "myhost"}) {
		t.Error("IsSelf() not case-insensitive on hostname")
	}
	if IsSelf("myhost", Target{Name: "other", Hostname: "other"}) {
		t.Error("IsSelf() = true for different host")
	}
	if IsSelf("", Target{Name: "other", Hostname: "other"}) {
		t.Error("IsSelf() = true with empty local hostname")
	}
}

func TestLoadInventory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hosts.yaml")
	data := []byte(`
server1:
  hostname: 10.0.0.5
  user: admin
  port: 2222
  ssh_key: ~/.ssh/id_server1
  connect_timeout: 10s
build-box: {}
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	targets, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory() error = %v", err)
	}
	if len(targets) != 2 {
		t.Fatalf("len(targets) = %d, want 2", len(targets))
	}

	s1 := targets["server1"]
	if s1.Hostname != "10.0.0.5" || s1.User != "admin" || s1.Port != 2222 {
		t.Errorf("server1 = %+v", s1)
	}
	if s1.ConnectTimeout != 10*time.Second {
		t.Errorf("server1.ConnectTimeout = %v, want 10s", s1.ConnectTimeout)
	}

	// Hostname defaults to the entry name.
	if bb := targets["build-box"]; bb.Hostname != "build-box" {
		t.Errorf("build-box.Hostname = %q", bb.Hostname)
	}
}

func TestLoadInventory_Missing(t *testing.T) {
	if _, err := LoadInventory(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadInventory() on a missing file did not error")
	}
}

func TestResolveTargets_MergesInventory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hosts.yaml")
	data := []byte("server1:\n  hostname: 10.0.0.5\n  port: 2222\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := config.New()
	cfg.Remote.Hosts = []string{"alice@server1", "server2"}
	cfg.Remote.Inventory = path

	targets, err := ResolveTargets(cfg)
	if err != nil {
		t.Fatalf("ResolveTargets() error = %v", err)
	}
	if len(targets) != 2 {
		t.Fatalf("len(targets) = %d, want 2", len(targets))
	}

	// Inventory settings apply; the host-list user overrides.
	if targets[0].Hostname != "10.0.0.5" || targets[0].Port != 2222 || targets[0].User != "alice" {
		t.Errorf("targets[0] = %+v", targets[0])
	}
	if targets[1].Name != "server2" || targets[1].Hostname != "server2" {
		t.Errorf("targets[1] = %+v", targets[1])
	}
}

func TestResolveTargets_NoHosts(t *testing.T) {
	targets, err := ResolveTargets(config.New())
	if err != nil {
		t.Fatalf("ResolveTargets() error = %v", err)
	}
	if len(targets) != 0 {
		t.Errorf("len(targets) = %d, want 0", len(targets))
	}
}

func TestResolveTargets_SkipsInventoryWithoutHosts(t *testing.T) {
	// A remotely-invoked run clears the host list but keeps the rest of the
	// config; a broken inventory path must not fail it.
	cfg := config.New()
	cfg.Remote.Inventory = filepath.Join(t.TempDir(), "absent.yaml")

	targets, err := ResolveTargets(cfg)
	if err != nil {
		t.Fatalf("ResolveTargets() error = %v", err)
	}
	if len(targets) != 0 {
		t.Errorf("len(targets) = %d, want 0", len(targets))
	}
}
