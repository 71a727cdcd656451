package main

import (
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for topgrade.

To load completions:

Bash:
  $ source <(topgrade completion bash)
  # To load completions for each session, add to ~/.bashrc:
  # source <(topgrade completion bash)

Zsh:
  $ source <(topgrade completion zsh)
  # To load completions for each session, add to ~/.zshrc:
  # source <(topgrade completion zsh)

Fish:
  $ topgrade completion fish | source
  # To load completions for each session, run:
  $ topgrade completion fish > ~/.config/fish/completions/topgrade.fish

PowerShell:
  PS> topgrade completion powershell | Out-String | Invoke-Expression
  # To load completions for each session, add the output to your profile.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(_ *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
