// Package platform provides runtime platform detection for cross-platform
// step gating.
package platform

import (
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"
)

// OS represents the operating system type.
type OS string

const (
	// OSDarwin is macOS.
	OSDarwin OS = "darwin"
	// OSLinux is Linux (native or WSL).
	OSLinux OS = "linux"
	// OSWindows is Windows.
	OSWindows OS = "windows"
	// OSFreeBSD is FreeBSD.
	OSFreeBSD OS = "freebsd"
	// OSUnknown is an unsupported OS.
	OSUnknown OS = "unknown"
)

// Environment represents the execution environment.
type Environment string

const (
	// EnvNative is a native OS environment.
	EnvNative Environment = "native"
	// EnvWSL is Windows Subsystem for Linux.
	EnvWSL Environment = "wsl"
	// EnvDocker is a Docker container.
	EnvDocker Environment = "docker"
)

// Platform contains detected platform information.
type Platform struct {
	os          OS
	arch        string
	environment Environment
	distroID    string
}

var (
	detected   *Platform
	detectOnce sync.Once
)

// Detect returns the current platform information, cached after the first
// call.
func Detect() *Platform {
	detectOnce.Do(func() {
		detected = detect()
	})
	return detected
}

func detect() *Platform {
	p := &Platform{
		arch:        runtime.GOARCH,
		environment: EnvNative,
	}

	switch runtime.GOOS {
	case "darwin":
		p.os = OSDarwin
	case "linux":
		p.os = OSLinux
		p.detectLinuxEnvironment()
		p.distroID = readOSReleaseID()
	case "windows":
		p.os = OSWindows
	case "freebsd":
		p.os = OSFreeBSD
	default:
		p.os = OSUnknown
	}

	return p
}

func (p *Platform) detectLinuxEnvironment() {
	if isWSL() {
		p.environment = EnvWSL
		return
	}
	if isDocker() {
		p.environment = EnvDocker
	}
}

func isWSL() bool {
	data, err := os.ReadFile("/proc/version")
	if err != nil {
		return false
	}
	version := strings.ToLower(string(data))
	return strings.Contains(version, "microsoft") || strings.Contains(version, "wsl")
}

func isDocker() bool {
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}
	data, err := os.ReadFile("/proc/1/cgroup")
	if err != nil {
		return false
	}
	return strings.Contains(string(data), "docker") ||
		strings.Contains(string(data), "containerd")
}

func readOSReleaseID() string {
	data, err := os.ReadFile("/etc/os-release")
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "ID=") {
			return strings.Trim(strings.TrimPrefix(line, "ID="), "\"")
		}
	}
	return ""
}

// OS returns the operating system.
func (p *Platform) OS() OS {
	return p.os
}

// Arch returns the architecture.
func (p *Platform) Arch() string {
	return p.arch
}

// Environment returns the execution environment.
func (p *Platform) Environment() Environment {
	return p.environment
}

// DistroID returns the /etc/os-release ID on Linux (e.g. "arch", "ubuntu").
func (p *Platform) DistroID() string {
	return p.distroID
}

// IsWindows returns true on native Windows.
func (p *Platform) IsWindows() bool {
	return p.os == OSWindows
}

// IsMacOS returns true on macOS.
func (p *Platform) IsMacOS() bool {
	return p.os == OSDarwin
}

// IsLinux returns true on Linux (native or WSL).
func (p *Platform) IsLinux() bool {
	return p.os == OSLinux
}

// IsUnix returns true on any unix-like OS.
func (p *Platform) IsUnix() bool {
	switch p.os {
	case OSDarwin, OSLinux, OSFreeBSD:
		return true
	default:
		return false
	}
}

// IsWSL returns true inside Windows Subsystem for Linux.
func (p *Platform) IsWSL() bool {
	return p.environment == EnvWSL
}

// HasCommand checks if a command is available in PATH.
func (p *Platform) HasCommand(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// String returns a human-readable description.
func (p *Platform) String() string {
	parts := []string{string(p.os), p.arch}
	if p.environment != EnvNative {
		parts = append(parts, string(p.environment))
	}
	if p.distroID != "" {
		parts = append(parts, p.distroID)
	}
	return strings.Join(parts, "/")
}

// New creates a Platform with specified values (for testing).
func New(os OS, arch string, env Environment) *Platform {
	return &Platform{os: os, arch: arch, environment: env}
}

// NewLinux creates a Linux Platform with a distro ID (for testing).
func NewLinux(distroID string) *Platform {
	return &Platform{os: OSLinux, arch: "amd64", environment: EnvNative, distroID: distroID}
}
