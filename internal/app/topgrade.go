// Package app wires the execution engine together and drives one upgrade
// pass end to end.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/maxkapur/topgrade/internal/adapters/command"
	"github.com/maxkapur/topgrade/internal/domain/config"
	"github.com/maxkapur/topgrade/internal/domain/execution"
	"github.com/maxkapur/topgrade/internal/domain/platform"
	"github.com/maxkapur/topgrade/internal/domain/remote"
	"github.com/maxkapur/topgrade/internal/domain/step"
	"github.com/maxkapur/topgrade/internal/domain/sudo"
	"github.com/maxkapur/topgrade/internal/ports"
	"github.com/maxkapur/topgrade/internal/steps"
)

// ErrStepFailed signals that at least one step failed. Per-step detail was
// already printed in the summary; this sentinel only produces exit code 1.
var ErrStepFailed = errors.New("at least one step failed")

// App is the composition root for one upgrade pass.
type App struct {
	out      io.Writer
	logger   ports.Logger
	cfg      *config.Config
	mode     step.RunMode
	probe    ports.CommandRunner
	stream   ports.StreamRunner
	caps     *platform.Capabilities
	plat     *platform.Platform
	hostname string
	notifier Notifier
	styles   Styles
	lookup   sudo.LookupFunc
}

// Option configures the App.
type Option func(*App)

// WithConfig sets the resolved configuration.
func WithConfig(cfg *config.Config) Option {
	return func(a *App) { a.cfg = cfg }
}

// WithMode sets the run mode.
func WithMode(mode step.RunMode) Option {
	return func(a *App) { a.mode = mode }
}

// WithLogger sets the run logger.
func WithLogger(logger ports.Logger) Option {
	return func(a *App) { a.logger = logger }
}

// WithRunners injects the probe and stream runners (tests).
func WithRunners(probe ports.CommandRunner, stream ports.StreamRunner) Option {
	return func(a *App) {
		a.probe = probe
		a.stream = stream
	}
}

// WithPlatform injects a platform and capability set (tests).
func WithPlatform(plat *platform.Platform, caps *platform.Capabilities) Option {
	return func(a *App) {
		a.plat = plat
		a.caps = caps
	}
}

// WithHostname overrides local hostname resolution (tests).
func WithHostname(hostname string) Option {
	return func(a *App) { a.hostname = hostname }
}

// WithNotifier sets the notification sink.
func WithNotifier(n Notifier) Option {
	return func(a *App) { a.notifier = n }
}

// WithLookup injects PATH resolution (tests).
func WithLookup(lookup sudo.LookupFunc) Option {
	return func(a *App) { a.lookup = lookup }
}

// New creates an App writing user-facing output to out.
func New(out io.Writer, opts ...Option) *App {
	a := &App{
		out:    out,
		cfg:    config.New(),
		styles: DefaultStyles(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = ports.NewNopLogger()
	}
	if a.probe == nil {
		a.probe = command.NewRealRunner()
	}
	if a.stream == nil {
		a.stream = command.NewStreamRunner()
	}
	if a.plat == nil {
		a.plat = platform.Detect()
	}
	if a.caps == nil {
		a.caps = platform.CapabilitiesFor(a.plat)
	}
	if a.hostname == "" {
		a.hostname, _ = os.Hostname()
	}
	if a.notifier == nil {
		a.notifier = NewDesktopNotifier(a.plat, a.probe, NewLogNotifier(a.logger))
	}
	return a
}

// Run performs one upgrade pass: pre-commands, remote dispatch, the local
// catalog, custom commands, summary, post-commands, notification. Returns
// nil, ErrStepFailed, step.ErrInterrupted, or a fatal setup error.
func (a *App) Run(goctx context.Context) error {
	logger := a.logger.With(ports.F("run_id", uuid.NewString()))
	logger.Debug(goctx, "starting run",
		ports.F("mode", a.mode.String()),
		ports.F("platform", a.plat.String()))

	elevator, err := a.detectSudo()
	if err != nil {
		return err
	}

	runCtx := step.NewContext(step.Params{
		Ctx:          goctx,
		Mode:         a.mode,
		Sudo:         elevator,
		Config:       a.cfg,
		Platform:     a.plat,
		Capabilities: a.caps,
		Hostname:     a.hostname,
		Probe:        a.probe,
		Stream:       a.stream,
		Logger:       logger,
		Out:          a.out,
		Lookup:       a.lookup,
	})
	runner := execution.NewRunner(runCtx)

	// Pre-commands run before any step; a failure here is fatal.
	for _, name := range a.cfg.SortedPreCommands() {
		fmt.Fprintf(a.out, "\nRunning pre-command %s\n", name)
		if err := steps.RunShell(runCtx, a.cfg.PreCommands[name]); err != nil {
			return fmt.Errorf("pre-command %q: %w", name, err)
		}
	}

	if a.cfg.Misc.PreSudo && elevator != nil && !a.mode.Dry() {
		if err := elevator.Elevate(goctx); err != nil {
			logger.Warn(goctx, "pre-run elevation failed", ports.F("error", err))
		}
	}

	runErr := a.dispatchRemotes(runCtx, runner)
	if runErr == nil {
		runErr = runner.ExecuteAll(steps.Catalog(a.caps))
	}
	if runErr == nil {
		runErr = runner.ExecuteAll(steps.CustomCommandSteps(runCtx))
	}
	interrupted := errors.Is(runErr, step.ErrInterrupted)
	if runErr != nil && !interrupted {
		return runErr
	}

	report := runner.Report()
	RenderSummary(a.out, report, a.styles)

	postFailed := false
	if !interrupted {
		for _, name := range a.cfg.SortedPostCommands() {
			fmt.Fprintf(a.out, "\nRunning post-command %s\n", name)
			if err := steps.RunShell(runCtx, a.cfg.PostCommands[name]); err != nil {
				logger.Error(goctx, "post-command failed",
					ports.F("name", name), ports.F("error", err))
				postFailed = true
			}
		}
	}

	failed := postFailed || report.HasFailures()
	if !interrupted && !a.cfg.Misc.SkipNotify && !a.mode.Dry() {
		if failed {
			a.notifier.Notify(goctx, "Topgrade finished with errors", "")
		} else {
			a.notifier.Notify(goctx, "Topgrade finished successfully", "")
		}
	}

	switch {
	case interrupted:
		return step.ErrInterrupted
	case failed:
		return ErrStepFailed
	default:
		return nil
	}
}

// detectSudo resolves the elevation helper: the configured command when
// set, detection otherwise. Detection failure just means no elevation.
func (a *App) detectSudo() (*sudo.Sudo, error) {
	if cmd := a.cfg.Misc.SudoCommand; cmd != "" {
		s, err := sudo.New(cmd, a.lookup, a.stream)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return sudo.Detect(a.lookup, a.stream), nil
}

// dispatchRemotes runs one step per configured remote target, excluding
// the invoking host itself.
func (a *App) dispatchRemotes(runCtx *step.Context, runner *execution.Runner) error {
	targets, err := remote.ResolveTargets(a.cfg)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return nil
	}

	client := remote.NewClient()
	for _, target := range targets {
		if remote.IsSelf(a.hostname, target) {
			runCtx.Logger().Debug(runCtx.Context(), "skipping remote target matching local host",
				ports.F("target", target.Name))
			continue
		}
		if err := runner.Execute(remote.NewStep(target, client)); err != nil {
			return err
		}
	}
	return nil
}
