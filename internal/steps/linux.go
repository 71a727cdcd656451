// Package steps contains the step bodies: thin glue mapping each known
// external tool to an upgrade invocation, plus the ordered catalog.
package steps

import (
	"github.com/maxkapur/topgrade/internal/domain/platform"
	"github.com/maxkapur/topgrade/internal/domain/step"
)

// LinuxSteps is the Linux-only step group in execution order.
func LinuxSteps() []step.Step {
	return []step.Step{
		step.New(step.System, "System update", platform.GroupLinux, runSystemUpgrade),
		step.New(step.Snap, "snap", platform.GroupLinux, runSnap),
		step.New(step.Flatpak, "Flatpak", platform.GroupLinux, runFlatpak),
		step.New(step.Firmware, "Firmware upgrades", platform.GroupLinux, runFwupdmgr),
		step.New(step.Restarts, "Restarts", platform.GroupLinux, runNeedrestart),
	}
}

// runSystemUpgrade drives the distribution's package manager. An unknown
// distribution is a skip, not a failure.
func runSystemUpgrade(ctx *step.Context) error {
	yes := ctx.Config().Misc.AssumeYes

	switch ctx.Platform().DistroID() {
	case "arch", "archarm", "artix", "endeavouros", "manjaro", "garuda", "cachyos":
		return runArchUpgrade(ctx)
	case "debian", "ubuntu", "pop", "linuxmint", "raspbian", "kali", "elementary":
		if _, err := ctx.RequireTool("apt-get"); err != nil {
			return err
		}
		if err := ctx.Command("apt-get", "update").Elevated().Run(); err != nil {
			return err
		}
		args := []string{"dist-upgrade"}
		if yes {
			args = append(args, "-y")
		}
		return ctx.Command("apt-get", args...).Elevated().Run()
	case "fedora", "rhel", "centos", "rocky", "almalinux", "nobara":
		if _, err := ctx.RequireTool("dnf"); err != nil {
			return err
		}
		args := []string{"upgrade"}
		if yes {
			args = append(args, "-y")
		}
		return ctx.Command("dnf", args...).Elevated().Run()
	case "opensuse", "opensuse-leap", "opensuse-tumbleweed", "sles":
		if _, err := ctx.RequireTool("zypper"); err != nil {
			return err
		}
		args := []string{"update"}
		if yes {
			args = append(args, "-y")
		}
		return ctx.Command("zypper", args...).Elevated().Run()
	case "alpine":
		if _, err := ctx.RequireTool("apk"); err != nil {
			return err
		}
		if err := ctx.Command("apk", "update").Elevated().Run(); err != nil {
			return err
		}
		return ctx.Command("apk", "upgrade").Elevated().Run()
	case "void":
		if _, err := ctx.RequireTool("xbps-install"); err != nil {
			return err
		}
		return ctx.Command("xbps-install", "-Su").Elevated().Run()
	case "nixos":
		// NixOS system state is managed by nix; handled by the nix step.
		return step.Skip("NixOS is upgraded through the nix step")
	default:
		return step.Skipf("unknown distribution %q", ctx.Platform().DistroID())
	}
}

// runArchUpgrade prefers an AUR helper when one is installed; the helper
// handles its own elevation.
func runArchUpgrade(ctx *step.Context) error {
	for _, helper := range []string{"paru", "yay", "pikaur"} {
		if ctx.HasTool(helper) {
			return ctx.Command(helper, "-Syu").Run()
		}
	}
	if _, err := ctx.RequireTool("pacman"); err != nil {
		return err
	}
	args := []string{"-Syu"}
	if ctx.Config().Misc.AssumeYes {
		args = append(args, "--noconfirm")
	}
	return ctx.Command("pacman", args...).Elevated().Run()
}

func runSnap(ctx *step.Context) error {
	if _, err := ctx.RequireTool("snap"); err != nil {
		return err
	}
	return ctx.Command("snap", "refresh").Elevated().Run()
}

func runFlatpak(ctx *step.Context) error {
	if _, err := ctx.RequireTool("flatpak"); err != nil {
		return err
	}
	args := []string{"update"}
	if ctx.Config().Misc.AssumeYes {
		args = append(args, "-y")
	}
	return ctx.Command("flatpak", args...).Run()
}

func runFwupdmgr(ctx *step.Context) error {
	if _, err := ctx.RequireTool("fwupdmgr"); err != nil {
		return err
	}
	// refresh exits 2 when metadata is already current; tolerate it.
	if err := ctx.Command("fwupdmgr", "refresh").Run(); err != nil {
		var exitErr *step.ExitError
		if !asExitCode(err, &exitErr, 2) {
			return err
		}
	}
	return ctx.Command("fwupdmgr", "get-updates").Run()
}

func runNeedrestart(ctx *step.Context) error {
	if _, err := ctx.RequireTool("needrestart"); err != nil {
		return err
	}
	return ctx.Command("needrestart").Elevated().Run()
}
