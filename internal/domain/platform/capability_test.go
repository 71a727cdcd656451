package platform

import "testing"

func TestCapabilitiesFor(t *testing.T) {
	tests := []struct {
		name       string
		plat       *Platform
		supported  []Group
		rejected   []Group
	}{
		{
			name:      "linux",
			plat:      New(OSLinux, "amd64", EnvNative),
			supported: []Group{GroupGeneric, GroupRemote, GroupUnix, GroupLinux},
			rejected:  []Group{GroupMacOS, GroupWindows},
		},
		{
			name:      "macos",
			plat:      New(OSDarwin, "arm64", EnvNative),
			supported: []Group{GroupGeneric, GroupRemote, GroupUnix, GroupMacOS},
			rejected:  []Group{GroupLinux, GroupWindows},
		},
		{
			name:      "windows",
			plat:      New(OSWindows, "amd64", EnvNative),
			supported: []Group{GroupGeneric, GroupRemote, GroupWindows},
			rejected:  []Group{GroupUnix, GroupLinux, GroupMacOS},
		},
		{
			name:      "freebsd",
			plat:      New(OSFreeBSD, "amd64", EnvNative),
			supported: []Group{GroupGeneric, GroupRemote, GroupUnix},
			rejected:  []Group{GroupLinux, GroupMacOS, GroupWindows},
		},
		{
			name:      "wsl is linux",
			plat:      New(OSLinux, "amd64", EnvWSL),
			supported: []Group{GroupGeneric, GroupRemote, GroupUnix, GroupLinux},
			rejected:  []Group{GroupWindows},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps := CapabilitiesFor(tt.plat)
			for _, g := range tt.supported {
				if !caps.Supports(g) {
					t.Errorf("Supports(%q) = false, want true", g)
				}
			}
			for _, g := range tt.rejected {
				if caps.Supports(g) {
					t.Errorf("Supports(%q) = true, want false", g)
				}
			}
		})
	}
}

func TestNewCapabilities(t *testing.T) {
	caps := NewCapabilities(GroupGeneric, GroupLinux)
	if !caps.Supports(GroupGeneric) || !caps.Supports(GroupLinux) {
		t.Error("explicit groups not supported")
	}
	if caps.Supports(GroupWindows) {
		t.Error("unlisted group supported")
	}

	groups := caps.Groups()
	if len(groups) != 2 || groups[0] != GroupGeneric || groups[1] != GroupLinux {
		t.Errorf("Groups() = %v, want [generic linux]", groups)
	}
}
