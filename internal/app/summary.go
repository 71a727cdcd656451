package app

import (
	"fmt"
	"io"

	"github.com/maxkapur/topgrade/internal/domain/execution"
)

// RenderSummary prints one line per recorded step in execution order. It
// only reads the report; nothing is re-invoked.
func RenderSummary(w io.Writer, report *execution.Report, styles Styles) {
	if report.Empty() {
		return
	}

	fmt.Fprintf(w, "\n%s\n", styles.Title.Render("Summary"))

	for _, entry := range report.Entries() {
		switch {
		case entry.Outcome.Succeeded():
			fmt.Fprintf(w, "  %s %s\n", styles.Success.Render("✓"), entry.Label)
		case entry.Outcome.Failed():
			fmt.Fprintf(w, "  %s %s: %s\n",
				styles.Failure.Render("✗"), entry.Label,
				styles.Reason.Render(entry.Outcome.Reason()))
		case entry.Outcome.WasSkipped():
			fmt.Fprintf(w, "  %s %s: %s\n",
				styles.Skipped.Render("-"), entry.Label,
				styles.Reason.Render(entry.Outcome.Reason()))
		}
	}
}
