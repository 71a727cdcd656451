package steps

import (
	"github.com/maxkapur/topgrade/internal/domain/platform"
	"github.com/maxkapur/topgrade/internal/domain/step"
)

// UnixSteps is the step group shared by all unix-like hosts, in execution
// order.
func UnixSteps() []step.Step {
	return []step.Step{
		step.New(step.Yadm, "yadm", platform.GroupUnix, runYadm),
		step.New(step.Nix, "nix", platform.GroupUnix, runNix),
		step.New(step.HomeManager, "home-manager", platform.GroupUnix, runHomeManager),
		step.New(step.Asdf, "asdf", platform.GroupUnix, runAsdf),
		step.New(step.Mise, "mise", platform.GroupUnix, runMise),
		step.New(step.Sdkman, "SDKMAN!", platform.GroupUnix, runSdkman),
		step.New(step.Pyenv, "pyenv", platform.GroupUnix, runPyenv),
		step.New(step.OhMyZsh, "oh-my-zsh", platform.GroupUnix, runOhMyZsh),
		step.New(step.Tmux, "tmux", platform.GroupUnix, runTpm),
		step.New(step.Tldr, "TLDR", platform.GroupUnix, runTldr),
	}
}

func runYadm(ctx *step.Context) error {
	if _, err := ctx.RequireTool("yadm"); err != nil {
		return err
	}
	return ctx.Command("yadm", "pull").Run()
}

func runNix(ctx *step.Context) error {
	if _, err := ctx.RequireTool("nix-channel"); err != nil {
		return err
	}
	if err := ctx.Command("nix-channel", "--update").Run(); err != nil {
		return err
	}
	return ctx.Command("nix-env", "--upgrade").Run()
}

func runHomeManager(ctx *step.Context) error {
	if _, err := ctx.RequireTool("home-manager"); err != nil {
		return err
	}
	return ctx.Command("home-manager", "switch").Run()
}

func runAsdf(ctx *step.Context) error {
	if _, err := ctx.RequireTool("asdf"); err != nil {
		return err
	}
	return ctx.Command("asdf", "plugin", "update", "--all").Run()
}

func runMise(ctx *step.Context) error {
	if _, err := ctx.RequireTool("mise"); err != nil {
		return err
	}
	return ctx.Command("mise", "upgrade").Run()
}

// runSdkman sources the init script in an interactive bash; sdk is a shell
// function, not a binary.
func runSdkman(ctx *step.Context) error {
	initScript, ok := homePath(".sdkman", "bin", "sdkman-init.sh")
	if !ok {
		return step.Skip("SDKMAN! is not installed")
	}
	script := "source " + initScript + " && sdk selfupdate && sdk update"
	return ctx.Command("bash", "-c", script).Run()
}

func runPyenv(ctx *step.Context) error {
	if _, err := ctx.RequireTool("pyenv"); err != nil {
		return err
	}
	if _, ok := homePath(".pyenv", "plugins", "pyenv-update"); !ok {
		return step.Skip("pyenv-update plugin is not installed")
	}
	return ctx.Command("pyenv", "update").Run()
}

func runOhMyZsh(ctx *step.Context) error {
	upgradeScript, ok := homePath(".oh-my-zsh", "tools", "upgrade.sh")
	if !ok {
		return step.Skip("oh-my-zsh is not installed")
	}
	if _, err := ctx.RequireTool("zsh"); err != nil {
		return err
	}
	return ctx.Command("zsh", upgradeScript).WithEnv("DISABLE_UPDATE_PROMPT", "true").Run()
}

func runTpm(ctx *step.Context) error {
	updater, ok := homePath(".tmux", "plugins", "tpm", "bin", "update_plugins")
	if !ok {
		return step.Skip("tmux plugin manager is not installed")
	}
	return ctx.Command(updater, "all").Run()
}

func runTldr(ctx *step.Context) error {
	if _, err := ctx.RequireTool("tldr"); err != nil {
		return err
	}
	return ctx.Command("tldr", "--update").Run()
}
