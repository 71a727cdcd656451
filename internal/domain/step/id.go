// Package step defines the unit of upgrade work and the context it runs in.
package step

import "sort"

// ID identifies a step. The set of IDs is closed and stable across runs;
// the string value doubles as the configuration key for enabling and
// disabling the step.
type ID string

// Known step IDs.
const (
	// Platform groups.
	System      ID = "system"
	Flatpak     ID = "flatpak"
	Snap        ID = "snap"
	Firmware    ID = "firmware"
	Restarts    ID = "restarts"
	BrewFormula ID = "brew_formula"
	BrewCask    ID = "brew_cask"
	Macports    ID = "macports"
	Mas         ID = "mas"
	MacSystem   ID = "mac_system"
	Chocolatey  ID = "chocolatey"
	Scoop       ID = "scoop"
	Winget      ID = "winget"
	Wsl         ID = "wsl"

	// Unix group.
	Nix         ID = "nix"
	HomeManager ID = "home_manager"
	Yadm        ID = "yadm"
	Asdf        ID = "asdf"
	Mise        ID = "mise"
	Sdkman      ID = "sdkman"
	Pyenv       ID = "pyenv"
	OhMyZsh     ID = "oh_my_zsh"
	Tmux        ID = "tmux"
	Tldr        ID = "tldr"

	// Generic group.
	Rustup       ID = "rustup"
	Cargo        ID = "cargo"
	Uv           ID = "uv"
	Pipx         ID = "pipx"
	Pip3         ID = "pip3"
	Conda        ID = "conda"
	Node         ID = "node"
	Yarn         ID = "yarn"
	Pnpm         ID = "pnpm"
	Deno         ID = "deno"
	Bun          ID = "bun"
	Gem          ID = "gem"
	Composer     ID = "composer"
	Gcloud       ID = "gcloud"
	Krew         ID = "krew"
	Helm         ID = "helm"
	Tlmgr        ID = "tlmgr"
	Vim          ID = "vim"
	Neovim       ID = "neovim"
	Emacs        ID = "emacs"
	Vscode       ID = "vscode"
	GhExtensions ID = "gh_extensions"
	Chezmoi      ID = "chezmoi"

	// Synthetic entries.
	CustomCommands ID = "custom_commands"
	Remotes        ID = "remotes"
)

var known = map[ID]bool{
	System: true, Flatpak: true, Snap: true, Firmware: true, Restarts: true,
	BrewFormula: true, BrewCask: true, Macports: true, Mas: true, MacSystem: true,
	Chocolatey: true, Scoop: true, Winget: true, Wsl: true,
	Nix: true, HomeManager: true, Yadm: true, Asdf: true, Mise: true,
	Sdkman: true, Pyenv: true, OhMyZsh: true, Tmux: true, Tldr: true,
	Rustup: true, Cargo: true, Uv: true, Pipx: true, Pip3: true, Conda: true,
	Node: true, Yarn: true, Pnpm: true, Deno: true, Bun: true, Gem: true,
	Composer: true, Gcloud: true, Krew: true, Helm: true, Tlmgr: true,
	Vim: true, Neovim: true, Emacs: true, Vscode: true, GhExtensions: true,
	Chezmoi: true, CustomCommands: true, Remotes: true,
}

// Valid reports whether the ID is one of the known steps.
func (id ID) Valid() bool {
	return known[id]
}

// String returns the configuration key for this step.
func (id ID) String() string {
	return string(id)
}

// KnownIDs returns every known step ID in sorted order.
func KnownIDs() []ID {
	ids := make([]ID, 0, len(known))
	for id := range known {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
