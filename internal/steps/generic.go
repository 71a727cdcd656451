package steps

import (
	"github.com/maxkapur/topgrade/internal/domain/platform"
	"github.com/maxkapur/topgrade/internal/domain/step"
)

// GenericSteps is the cross-platform step group in execution order.
func GenericSteps() []step.Step {
	return []step.Step{
		step.New(step.Rustup, "rustup", platform.GroupGeneric, runRustup),
		step.New(step.Cargo, "cargo", platform.GroupGeneric, runCargo),
		step.New(step.Uv, "uv", platform.GroupGeneric, runUv),
		step.New(step.Pipx, "pipx", platform.GroupGeneric, runPipx),
		step.New(step.Pip3, "pip3", platform.GroupGeneric, runPip3),
		step.New(step.Conda, "conda", platform.GroupGeneric, runConda),
		step.New(step.Node, "npm", platform.GroupGeneric, runNpm),
		step.New(step.Yarn, "yarn", platform.GroupGeneric, runYarn),
		step.New(step.Pnpm, "pnpm", platform.GroupGeneric, runPnpm),
		step.New(step.Deno, "deno", platform.GroupGeneric, runDeno),
		step.New(step.Bun, "bun", platform.GroupGeneric, runBun),
		step.New(step.Gem, "gem", platform.GroupGeneric, runGem),
		step.New(step.Composer, "composer", platform.GroupGeneric, runComposer),
		step.New(step.Gcloud, "gcloud", platform.GroupGeneric, runGcloud),
		step.New(step.Krew, "krew", platform.GroupGeneric, runKrew),
		step.New(step.Helm, "helm", platform.GroupGeneric, runHelm),
		step.New(step.Tlmgr, "tlmgr", platform.GroupGeneric, runTlmgr),
		step.New(step.Vim, "vim", platform.GroupGeneric, runVim),
		step.New(step.Neovim, "Neovim", platform.GroupGeneric, runNeovim),
		step.New(step.Emacs, "Emacs", platform.GroupGeneric, runEmacs),
		step.New(step.Vscode, "Visual Studio Code extensions", platform.GroupGeneric, runVscode),
		step.New(step.GhExtensions, "GitHub CLI Extensions", platform.GroupGeneric, runGhExtensions),
		step.New(step.Chezmoi, "chezmoi", platform.GroupGeneric, runChezmoi),
	}
}

func runRustup(ctx *step.Context) error {
	if _, err := ctx.RequireTool("rustup"); err != nil {
		return err
	}
	return ctx.Command("rustup", "update").Run()
}

// runCargo needs cargo-install-update from the cargo-update crate; plain
// cargo has no way to upgrade installed binaries.
func runCargo(ctx *step.Context) error {
	if _, err := ctx.RequireTool("cargo"); err != nil {
		return err
	}
	if !ctx.HasTool("cargo-install-update") {
		return step.Skip("cargo-update is not installed")
	}
	return ctx.Command("cargo", "install-update", "--all").Run()
}

func runUv(ctx *step.Context) error {
	if _, err := ctx.RequireTool("uv"); err != nil {
		return err
	}
	// self update is absent on package-manager installs; tolerate failure.
	if err := ctx.Command("uv", "self", "update").Run(); err != nil {
		var exitErr *step.ExitError
		if !asExitCode(err, &exitErr, 2) {
			ctx.Logger().Debug(ctx.Context(), "uv self update unavailable")
		}
	}
	return ctx.Command("uv", "tool", "upgrade", "--all").Run()
}

func runPipx(ctx *step.Context) error {
	if _, err := ctx.RequireTool("pipx"); err != nil {
		return err
	}
	return ctx.Command("pipx", "upgrade-all").Run()
}

func runPip3(ctx *step.Context) error {
	python := "python3"
	if !ctx.HasTool(python) {
		python = "python"
	}
	if _, err := ctx.RequireTool(python); err != nil {
		return err
	}
	return ctx.Command(python, "-m", "pip", "install", "--upgrade", "--user", "pip").Run()
}

func runConda(ctx *step.Context) error {
	if _, err := ctx.RequireTool("conda"); err != nil {
		return err
	}
	args := []string{"update", "--all"}
	if ctx.Config().Misc.AssumeYes {
		args = append(args, "--yes")
	}
	return ctx.Command("conda", args...).Run()
}

func runNpm(ctx *step.Context) error {
	if _, err := ctx.RequireTool("npm"); err != nil {
		return err
	}
	return ctx.Command("npm", "update", "--global").Run()
}

func runYarn(ctx *step.Context) error {
	if _, err := ctx.RequireTool("yarn"); err != nil {
		return err
	}
	return ctx.Command("yarn", "global", "upgrade").Run()
}

func runPnpm(ctx *step.Context) error {
	if _, err := ctx.RequireTool("pnpm"); err != nil {
		return err
	}
	return ctx.Command("pnpm", "update", "--global").Run()
}

func runDeno(ctx *step.Context) error {
	if _, err := ctx.RequireTool("deno"); err != nil {
		return err
	}
	return ctx.Command("deno", "upgrade").Run()
}

func runBun(ctx *step.Context) error {
	if _, err := ctx.RequireTool("bun"); err != nil {
		return err
	}
	return ctx.Command("bun", "upgrade").Run()
}

func runGem(ctx *step.Context) error {
	if _, err := ctx.RequireTool("gem"); err != nil {
		return err
	}
	return ctx.Command("gem", "update", "--user-install").Run()
}

func runComposer(ctx *step.Context) error {
	if _, err := ctx.RequireTool("composer"); err != nil {
		return err
	}
	return ctx.Command("composer", "global", "update").Run()
}

func runGcloud(ctx *step.Context) error {
	if _, err := ctx.RequireTool("gcloud"); err != nil {
		return err
	}
	args := []string{"components", "update"}
	if ctx.Config().Misc.AssumeYes {
		args = append(args, "--quiet")
	}
	return ctx.Command("gcloud", args...).Run()
}

func runKrew(ctx *step.Context) error {
	if _, err := ctx.RequireTool("kubectl-krew"); err != nil {
		return err
	}
	return ctx.Command("kubectl-krew", "upgrade").Run()
}

func runHelm(ctx *step.Context) error {
	if _, err := ctx.RequireTool("helm"); err != nil {
		return err
	}
	err := ctx.Command("helm", "repo", "update").Run()
	// helm exits 1 when no repositories are configured.
	var exitErr *step.ExitError
	if asExitCode(err, &exitErr, 1) {
		return step.Skip("no helm repositories configured")
	}
	return err
}

func runTlmgr(ctx *step.Context) error {
	if _, err := ctx.RequireTool("tlmgr"); err != nil {
		return err
	}
	return ctx.Command("tlmgr", "update", "--self", "--all").Run()
}

func runVim(ctx *step.Context) error {
	if _, err := ctx.RequireTool("vim"); err != nil {
		return err
	}
	if _, ok := homePath(".vim", "autoload", "plug.vim"); !ok {
		return step.Skip("vim-plug is not installed")
	}
	return ctx.Command("vim", "+PlugUpgrade", "+PlugUpdate", "+qall").Run()
}

func runNeovim(ctx *step.Context) error {
	if _, err := ctx.RequireTool("nvim"); err != nil {
		return err
	}
	if _, ok := homePath(".local", "share", "nvim", "site", "autoload", "plug.vim"); !ok {
		return step.Skip("vim-plug is not installed for Neovim")
	}
	return ctx.Command("nvim", "--headless", "+PlugUpgrade", "+PlugUpdate", "+qall").Run()
}

// runEmacs upgrades a Doom Emacs install; other Emacs distributions manage
// packages from inside the editor.
func runEmacs(ctx *step.Context) error {
	if _, err := ctx.RequireTool("doom"); err != nil {
		return err
	}
	args := []string{"upgrade"}
	if ctx.Config().Misc.AssumeYes {
		args = append(args, "--force")
	}
	return ctx.Command("doom", args...).Run()
}

func runVscode(ctx *step.Context) error {
	if _, err := ctx.RequireTool("code"); err != nil {
		return err
	}
	return ctx.Command("code", "--update-extensions").Run()
}

func runGhExtensions(ctx *step.Context) error {
	if _, err := ctx.RequireTool("gh"); err != nil {
		return err
	}
	if !ctx.Mode().Dry() {
		result, err := ctx.Probe().Run(ctx.Context(), "gh", "extension", "list")
		if err != nil || !result.Success() || result.Stdout == "" {
			return step.Skip("no GitHub CLI extensions installed")
		}
	}
	return ctx.Command("gh", "extension", "upgrade", "--all").Run()
}

func runChezmoi(ctx *step.Context) error {
	if _, err := ctx.RequireTool("chezmoi"); err != nil {
		return err
	}
	return ctx.Command("chezmoi", "update").Run()
}
