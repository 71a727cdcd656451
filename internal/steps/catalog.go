package steps

import (
	"github.com/maxkapur/topgrade/internal/domain/platform"
	"github.com/maxkapur/topgrade/internal/domain/step"
)

// Catalog returns every local step in the fixed execution order: the
// platform-specific group first, then the unix group, then the generic
// group. The runner filters by capability set and configuration; the order
// here is part of the observable contract, reflected in the report.
func Catalog(caps *platform.Capabilities) []step.Step {
	var out []step.Step

	if caps.Supports(platform.GroupLinux) {
		out = append(out, LinuxSteps()...)
		out = append(out, LinuxbrewStep())
	}
	if caps.Supports(platform.GroupMacOS) {
		out = append(out, MacOSSteps()...)
	}
	if caps.Supports(platform.GroupWindows) {
		out = append(out, WindowsSteps()...)
	}
	out = append(out, UnixSteps()...)
	out = append(out, GenericSteps()...)

	return out
}
