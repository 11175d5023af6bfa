// Package debug provides env-gated diagnostic logging, adapted from the
// teacher's internal/debug package. Dropped entirely: the teacher's
// .beads/events.log file logging, quiet-mode output gating, and
// project-root discovery, which exist to support a persistent issue
// database this program has no equivalent of. Kept: the enabled/verbose
// gate and a stderr-only Logf, because a command-driven reader of stdin
// must never let diagnostics leak onto stdout, where the report wire
// format lives.
package debug

import (
	"fmt"
	"os"

	"github.com/google/uuid"
)

var (
	enabled     = os.Getenv("RELTRACK_DEBUG") != ""
	verboseMode = false

	// runID tags every debug line from this process so output from
	// multiple runs interleaved on a shared stderr (e.g. under a test
	// harness) can be told apart.
	runID = uuid.New().String()[:8]
)

// Enabled reports whether debug logging is currently active, either via
// the RELTRACK_DEBUG environment variable or an explicit SetVerbose(true).
func Enabled() bool {
	return enabled || verboseMode
}

// SetVerbose turns verbose mode on or off, for the --debug CLI flag.
// Turning it off does not override RELTRACK_DEBUG: Enabled() still
// reports true while that variable is set.
func SetVerbose(verbose bool) {
	verboseMode = verbose
}

// Logf writes a formatted diagnostic line to stderr if debug logging is
// enabled, tagged with this process's run ID. A no-op otherwise. Never
// writes to stdout: that stream is reserved for report output.
func Logf(format string, args ...interface{}) {
	if !Enabled() {
		return
	}
	fmt.Fprintf(os.Stderr, "[%s] "+format, append([]interface{}{runID}, args...)...)
}
