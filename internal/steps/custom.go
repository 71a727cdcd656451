package steps

import (
	"github.com/maxkapur/topgrade/internal/domain/platform"
	"github.com/maxkapur/topgrade/internal/domain/step"
)

// NewCustomCommand wraps a configured shell command as a step. All custom
// commands share the custom_commands step identity; individual commands are
// filtered by name at catalog build time.
func NewCustomCommand(name, commandLine string) step.Step {
	return step.New(step.CustomCommands, name, platform.GroupGeneric, func(ctx *step.Context) error {
		return RunShell(ctx, commandLine)
	})
}

// RunShell executes a configured command line through the platform shell.
// Pre- and post-commands use it directly, outside the runner.
func RunShell(ctx *step.Context, commandLine string) error {
	if ctx.Platform().IsWindows() {
		return ctx.Command("cmd", "/C", commandLine).Run()
	}
	return ctx.Command("sh", "-c", commandLine).Run()
}

// CustomCommandSteps builds the enabled custom command steps in the stable
// config order.
func CustomCommandSteps(ctx *step.Context) []step.Step {
	cfg := ctx.Config()
	var out []step.Step
	for _, name := range cfg.SortedCommands() {
		if !cfg.ShouldRunCustom(name) {
			continue
		}
		out = append(out, NewCustomCommand(name, cfg.Commands[name]))
	}
	return out
}
