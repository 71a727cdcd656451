package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/maxkapur/topgrade/internal/adapters/logging"
	"github.com/maxkapur/topgrade/internal/app"
	"github.com/maxkapur/topgrade/internal/domain/config"
	"github.com/maxkapur/topgrade/internal/domain/step"
	"github.com/maxkapur/topgrade/internal/ports"
)

// envRunningRemotely is set by the remote dispatch adapter; it prevents a
// remotely-invoked pass from dispatching to its own remote targets.
const envRunningRemotely = "TOPGRADE_RUNNING_REMOTELY"

var (
	// Global flags
	cfgFile      string
	dryRun       bool
	verbose      bool
	yesFlag      bool
	skipNotify   bool
	logFormat    string
	onlySteps    []string
	disableSteps []string
)

var rootCmd = &cobra.Command{
	Use:   "topgrade",
	Short: "Upgrade everything on this machine in one pass",
	Long: `Topgrade detects which package managers and tool updaters are present
on this host and invokes each one's upgrade operation in a fixed,
platform-aware order. Individual step failures never abort the run; a
single summary and exit code report the overall outcome.`,
	SilenceErrors: true, // Errors are formatted by Execute
	SilenceUsage:  true, // Don't show usage on step failures
	RunE:          runUpgrade,
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: topgrade.toml in the user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")

	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "print what would be run without executing anything")
	rootCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "answer yes to confirmation prompts")
	rootCmd.Flags().BoolVar(&skipNotify, "skip-notify", false, "skip the end-of-run notification")
	rootCmd.Flags().StringSliceVar(&onlySteps, "only", nil, "run only these steps")
	rootCmd.Flags().StringSliceVar(&disableSteps, "disable", nil, "do not run these steps")

	registerFlagCompletions()

	rootCmd.AddCommand(versionCmd)
}

func runUpgrade(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cfg.AddOnly(onlySteps)
	cfg.AddDisabled(disableSteps)
	if yesFlag {
		cfg.Misc.AssumeYes = true
	}
	if skipNotify {
		cfg.Misc.SkipNotify = true
	}
	if os.Getenv(envRunningRemotely) != "" {
		cfg.Remote.Hosts = nil
	}

	mode := step.Execute
	if dryRun {
		mode = step.Simulate
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	topgrade := app.New(os.Stdout,
		app.WithConfig(cfg),
		app.WithMode(mode),
		app.WithLogger(newLogger()),
	)

	return topgrade.Run(ctx)
}

func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return config.Load(path)
}

func newLogger() ports.Logger {
	opts := []logging.ConsoleLoggerOption{}
	if verbose {
		opts = append(opts, logging.WithLevel(ports.LevelDebug))
	}
	if logFormat == "json" {
		opts = append(opts, logging.WithJSONFormat(true), logging.WithTimestamp(true))
	}
	return logging.NewConsoleLogger(opts...)
}

// printError writes the failure to stderr. The step-failed sentinel and
// interrupts stay silent: their detail was already printed in the summary.
func printError(err error) {
	if errors.Is(err, app.ErrStepFailed) {
		return
	}
	if errors.Is(err, step.ErrInterrupted) {
		fmt.Fprintln(os.Stderr, "Interrupted.")
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
}

// registerFlagCompletions sets up custom completions for flags.
func registerFlagCompletions() {
	stepCompletion := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		ids := step.KnownIDs()
		out := make([]string, len(ids))
		for i, id := range ids {
			out[i] = id.String()
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}

	_ = rootCmd.RegisterFlagCompletionFunc("only", stepCompletion)
	_ = rootCmd.RegisterFlagCompletionFunc("disable", stepCompletion)

	_ = rootCmd.RegisterFlagCompletionFunc("config", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"toml"}, cobra.ShellCompDirectiveFilterFileExt
	})

	_ = rootCmd.RegisterFlagCompletionFunc("log-format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
}
