package steps

import (
	"github.com/maxkapur/topgrade/internal/domain/platform"
	"github.com/maxkapur/topgrade/internal/domain/step"
)

// WindowsSteps is the Windows-only step group in execution order.
func WindowsSteps() []step.Step {
	return []step.Step{
		step.New(step.Wsl, "WSL", platform.GroupWindows, runWslUpdate),
		step.New(step.Chocolatey, "Chocolatey", platform.GroupWindows, runChocolatey),
		step.New(step.Scoop, "Scoop", platform.GroupWindows, runScoop),
		step.New(step.Winget, "Winget", platform.GroupWindows, runWinget),
	}
}

func runWslUpdate(ctx *step.Context) error {
	if _, err := ctx.RequireTool("wsl"); err != nil {
		return err
	}
	return ctx.Command("wsl", "--update").Elevated().Run()
}

func runChocolatey(ctx *step.Context) error {
	if _, err := ctx.RequireTool("choco"); err != nil {
		return err
	}
	args := []string{"upgrade", "all"}
	if ctx.Config().Misc.AssumeYes {
		args = append(args, "--yes")
	}
	return ctx.Command("choco", args...).Elevated().Run()
}

func runScoop(ctx *step.Context) error {
	if _, err := ctx.RequireTool("scoop"); err != nil {
		return err
	}
	if err := ctx.Command("scoop", "update").Run(); err != nil {
		return err
	}
	return ctx.Command("scoop", "update", "*").Run()
}

func runWinget(ctx *step.Context) error {
	if _, err := ctx.RequireTool("winget"); err != nil {
		return err
	}
	return ctx.Command("winget", "upgrade", "--all").Run()
}
