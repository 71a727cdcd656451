package app

import (
	"context"

	"github.com/maxkapur/topgrade/internal/domain/platform"
	"github.com/maxkapur/topgrade/internal/ports"
)

// Notifier is the one-way sink that receives the end-of-run summary line.
type Notifier interface {
	Notify(ctx context.Context, title, body string)
}

// LogNotifier reports through the run logger.
type LogNotifier struct {
	logger ports.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(logger ports.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the summary line.
func (n *LogNotifier) Notify(ctx context.Context, title, body string) {
	n.logger.Info(ctx, title, ports.F("detail", body))
}

// DesktopNotifier sends a best-effort desktop notification through
// notify-send, falling back to a logger when the helper is absent or
// fails. Notification failures never affect the run outcome.
type DesktopNotifier struct {
	plat     *platform.Platform
	runner   ports.CommandRunner
	fallback Notifier
}

// NewDesktopNotifier creates a DesktopNotifier.
func NewDesktopNotifier(plat *platform.Platform, runner ports.CommandRunner, fallback Notifier) *DesktopNotifier {
	return &DesktopNotifier{plat: plat, runner: runner, fallback: fallback}
}

// Notify delivers the notification.
func (n *DesktopNotifier) Notify(ctx context.Context, title, body string) {
	if n.plat.IsLinux() && n.plat.HasCommand("notify-send") {
		result, err := n.runner.Run(ctx, "notify-send", "--app-name", "topgrade", title, body)
		if err == nil && result.Success() {
			return
		}
	}
	n.fallback.Notify(ctx, title, body)
}
