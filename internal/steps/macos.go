package steps

import (
	"github.com/maxkapur/topgrade/internal/domain/platform"
	"github.com/maxkapur/topgrade/internal/domain/step"
)

// MacOSSteps is the macOS-only step group in execution order.
func MacOSSteps() []step.Step {
	return []step.Step{
		step.New(step.BrewFormula, "Brew", platform.GroupMacOS, runBrewFormula),
		step.New(step.BrewCask, "Brew Cask", platform.GroupMacOS, runBrewCask),
		step.New(step.Macports, "MacPorts", platform.GroupMacOS, runMacports),
		step.New(step.Mas, "App Store", platform.GroupMacOS, runMas),
		step.New(step.MacSystem, "System upgrade", platform.GroupMacOS, runMacSystemUpgrade),
	}
}

// LinuxbrewStep is brew on Linux; ordered into the Linux group by the
// catalog so the report groups it with the host's other package managers.
func LinuxbrewStep() step.Step {
	return step.New(step.BrewFormula, "Brew", platform.GroupLinux, runBrewFormula)
}

func runBrewFormula(ctx *step.Context) error {
	if _, err := ctx.RequireTool("brew"); err != nil {
		return err
	}
	if err := ctx.Command("brew", "update").Run(); err != nil {
		return err
	}
	return ctx.Command("brew", "upgrade", "--formula").Run()
}

func runBrewCask(ctx *step.Context) error {
	if _, err := ctx.RequireTool("brew"); err != nil {
		return err
	}
	return ctx.Command("brew", "upgrade", "--cask").Run()
}

func runMacports(ctx *step.Context) error {
	if _, err := ctx.RequireTool("port"); err != nil {
		return err
	}
	if err := ctx.Command("port", "selfupdate").Elevated().Run(); err != nil {
		return err
	}
	return ctx.Command("port", "-u", "upgrade", "outdated").Elevated().Run()
}

func runMas(ctx *step.Context) error {
	if _, err := ctx.RequireTool("mas"); err != nil {
		return err
	}
	return ctx.Command("mas", "upgrade").Run()
}

func runMacSystemUpgrade(ctx *step.Context) error {
	if _, err := ctx.RequireTool("softwareupdate"); err != nil {
		return err
	}
	return ctx.Command("softwareupdate", "--install", "--all").Run()
}
