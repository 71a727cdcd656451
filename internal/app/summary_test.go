package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/maxkapur/topgrade/internal/domain/execution"
	"github.com/maxkapur/topgrade/internal/domain/step"
)

func TestRenderSummary(t *testing.T) {
	report := execution.NewReport()
	report.Record(step.System, "System update", execution.Success())
	report.Record(step.Cargo, "cargo", execution.Failure("cargo failed with exit code 101"))
	report.Record(step.Flatpak, "Flatpak", execution.Skipped("flatpak is not installed"))

	buf := &bytes.Buffer{}
	RenderSummary(buf, report, DefaultStyles())

	got := buf.String()
	if !strings.Contains(got, "Summary") {
		t.Errorf("missing title: %q", got)
	}
	for _, want := range []string{
		"System update",
		"cargo:",
		"cargo failed with exit code 101",
		"Flatpak:",
		"flatpak is not installed",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}

	// One line per entry, in execution order.
	sys := strings.Index(got, "System update")
	cargo := strings.Index(got, "cargo:")
	flatpak := strings.Index(got, "Flatpak:")
	if !(sys < cargo && cargo < flatpak) {
		t.Errorf("order wrong: %d %d %d", sys, cargo, flatpak)
	}
}

func TestRenderSummary_EmptyReport(t *testing.T) {
	buf := &bytes.Buffer{}
	RenderSummary(buf, execution.NewReport(), DefaultStyles())
	if buf.Len() != 0 {
		t.Errorf("empty report rendered output: %q", buf.String())
	}
}
