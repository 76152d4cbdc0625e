package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/wonny/gridiron/internal/contracts"
)

// ═══════════════════════════════════════════════════════════
// Common Formatting Utilities
// 모든 커맨드가 동일한 출력 포맷을 사용하도록 통일
// ═══════════════════════════════════════════════════════════

const (
	singleLine = "───────────────────────────────────────────────────────────"
	doubleLine = "═══════════════════════════════════════════════════════════"
)

// RunMetadata holds run header fields
type RunMetadata struct {
	RunID     string
	Command   string
	Key       contracts.ArtifactKey
	Timestamp time.Time
}

// PrintRunHeader prints a formatted run header
func PrintRunHeader(w io.Writer, meta RunMetadata) {
	fmt.Fprintln(w, doubleLine)
	fmt.Fprintf(w, "  %s\n", meta.Command)
	fmt.Fprintln(w, singleLine)
	fmt.Fprintf(w, "  Run ID    : %s\n", meta.RunID)
	fmt.Fprintf(w, "  League    : %s\n", meta.Key.League)
	fmt.Fprintf(w, "  Season    : %d\n", meta.Key.Season)
	fmt.Fprintf(w, "  Week      : %d\n", meta.Key.Week)
	fmt.Fprintf(w, "  Started   : %s\n", meta.Timestamp.UTC().Format(time.RFC3339))
	fmt.Fprintln(w, singleLine)
}

// PrintWrote prints the artifact summary line
func PrintWrote(w io.Writer, records int, path string) {
	fmt.Fprintf(w, "Wrote %d records to %s\n", records, path)
}

// PrintRunCompletion prints run completion message
func PrintRunCompletion(w io.Writer, runID string, duration time.Duration) {
	fmt.Fprintf(w, "✅ Run %s completed in %.2fs\n", runID, duration.Seconds())
}

// PrintWarning prints a warning message
func PrintWarning(w io.Writer, message string) {
	fmt.Fprintf(w, "⚠️  %s\n", message)
}
