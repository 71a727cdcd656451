package config

// Example is the annotated reference configuration printed by
// `topgrade config reference`.
const Example = `# topgrade configuration
# Location: $XDG_CONFIG_HOME/topgrade.toml (override with $TOPGRADE_CONFIG)

[misc]
# Run the elevation helper once before the first step.
# pre_sudo = false

# Override elevation helper detection ("sudo", "doas", "run0", "pkexec").
# sudo_command = "sudo"

# Skip the end-of-run notification.
# skip_notify = false

# Answer yes to confirmation prompts.
# assume_yes = false

[steps]
# Run only these steps. When set, everything else is skipped.
# only = ["system", "cargo"]

# Never run these steps.
# disable = ["node", "emacs"]

[remote]
# Remote hosts to upgrade over SSH, each one reported as a single step.
# hosts = ["homeserver", "admin@build-box"]

# Optional YAML inventory with per-host SSH settings.
# inventory = "~/.config/topgrade/hosts.yaml"

# Custom commands run as ordinary steps in the cross-platform group.
[commands]
# "Update dotfiles" = "rcup -v"

# Commands run before any step; a failure aborts the run.
[pre_commands]
# "Mirror ranking" = "sudo rate-mirrors --save /etc/pacman.d/mirrorlist arch"

# Commands run after the summary; a failure sets exit code 1.
[post_commands]
# "Clean caches" = "cargo cache -a"
`
