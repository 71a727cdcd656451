package platform

import "testing"

func TestPlatform_Predicates(t *testing.T) {
	linux := NewLinux("ubuntu")
	if !linux.IsLinux() || !linux.IsUnix() || linux.IsMacOS() || linux.IsWindows() {
		t.Errorf("linux predicates wrong: %v", linux)
	}
	if linux.DistroID() != "ubuntu" {
		t.Errorf("DistroID() = %q, want ubuntu", linux.DistroID())
	}

	mac := New(OSDarwin, "arm64", EnvNative)
	if !mac.IsMacOS() || !mac.IsUnix() || mac.IsLinux() {
		t.Errorf("macos predicates wrong: %v", mac)
	}

	win := New(OSWindows, "amd64", EnvNative)
	if !win.IsWindows() || win.IsUnix() {
		t.Errorf("windows predicates wrong: %v", win)
	}

	wsl := New(OSLinux, "amd64", EnvWSL)
	if !wsl.IsWSL() || !wsl.IsLinux() {
		t.Errorf("wsl predicates wrong: %v", wsl)
	}
}

func TestPlatform_String(t *testing.T) {
	if got := New(OSDarwin, "arm64", EnvNative).String(); got != "darwin/arm64" {
		t.Errorf("String() = %q", got)
	}
	if got := New(OSLinux, "amd64", EnvWSL).String(); got != "linux/amd64/wsl" {
		t.Errorf("String() = %q", got)
	}
	if got := NewLinux("arch").String(); got != "linux/amd64/arch" {
		t.Errorf("String() = %q", got)
	}
}

func TestDetect_Cached(t *testing.T) {
	if Detect() != Detect() {
		t.Error("Detect() not cached")
	}
	if Detect().OS() == "" {
		t.Error("Detect() returned empty OS")
	}
}
