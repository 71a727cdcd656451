package platform

import "sort"

// Group names a set of steps that applies to a class of platforms.
type Group string

const (
	// GroupLinux is Linux-only steps.
	GroupLinux Group = "linux"
	// GroupMacOS is macOS-only steps.
	GroupMacOS Group = "macos"
	// GroupWindows is Windows-only steps.
	GroupWindows Group = "windows"
	// GroupUnix is steps for any unix-like OS.
	GroupUnix Group = "unix"
	// GroupGeneric is cross-platform steps.
	GroupGeneric Group = "generic"
	// GroupRemote is remote dispatch steps.
	GroupRemote Group = "remote"
)

// Capabilities is the set of step groups applicable to one host. It is
// built once at startup from the detected platform, and tests construct
// synthetic sets to exercise the runner on any host.
type Capabilities struct {
	groups map[Group]bool
}

// NewCapabilities builds a set from explicit groups.
func NewCapabilities(groups ...Group) *Capabilities {
	c := &Capabilities{groups: make(map[Group]bool, len(groups))}
	for _, g := range groups {
		c.groups[g] = true
	}
	return c
}

// CapabilitiesFor derives the applicable step groups from a detected
// platform. Remote and generic apply everywhere.
func CapabilitiesFor(p *Platform) *Capabilities {
	groups := []Group{GroupGeneric, GroupRemote}
	if p.IsUnix() {
		groups = append(groups, GroupUnix)
	}
	switch {
	case p.IsLinux():
		groups = append(groups, GroupLinux)
	case p.IsMacOS():
		groups = append(groups, GroupMacOS)
	case p.IsWindows():
		groups = append(groups, GroupWindows)
	}
	return NewCapabilities(groups...)
}

// Supports reports whether the group applies to this host.
func (c *Capabilities) Supports(g Group) bool {
	return c.groups[g]
}

// Groups returns the supported groups in stable order.
func (c *Capabilities) Groups() []Group {
	out := make([]Group, 0, len(c.groups))
	for g := range c.groups {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
