// Package emitter renders graph.Fragment sequences into the report wire
// format. It is an external collaborator by design: the core
// (internal/graph) never writes bytes, it only produces report fragments
// for this package to serialize.
package emitter

import (
	"bufio"
	"fmt"

	"github.com/reltrack/reltrack/internal/graph"
)

// Write serializes fragments to w in report wire format:
//
//	none\n
//
// if fragments is empty, otherwise one line of the form
//
//	"type1" "dest1" "dest2" N1; "type2" "dest1" N2; \n
//
// with types and, within each type, destinations in ascending order (the
// order graph.Report already returns them in), terminated by a single
// trailing newline. Write flushes w before returning.
func Write(w *bufio.Writer, fragments []graph.Fragment) error {
	if len(fragments) == 0 {
		if _, err := w.WriteString("none\n"); err != nil {
			return err
		}
		return w.Flush()
	}

	for _, f := range fragments {
		// Quoting here is literal double-quote wrapping, not Go's %q
		// escaping: identifiers never contain '"', space, or newline,
		// so no escaping is needed or wanted — %q would alter bytes
		// (e.g. backslashes) the wire format is supposed to pass
		// through untouched.
		if _, err := fmt.Fprintf(w, "\"%s\" ", f.Type); err != nil {
			return err
		}
		for _, d := range f.Destinations {
			if _, err := fmt.Fprintf(w, "\"%s\" ", d); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%d; ", f.Maximum); err != nil {
			return err
		}
	}
	if _, err := w.WriteString("\n"); err != nil {
		return err
	}
	return w.Flush()
}
