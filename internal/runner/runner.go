// Package runner is the command-loop driver cmd/reltrack wires stdin and
// stdout into. It is split out from main so tests can drive a full
// addent/addrel/report/end session directly, without exec'ing the built
// binary the way the teacher's dropped rsc.io/script dependency would
// have (see DESIGN.md).
package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/reltrack/reltrack/internal/command"
	"github.com/reltrack/reltrack/internal/debug"
	"github.com/reltrack/reltrack/internal/emitter"
	"github.com/reltrack/reltrack/internal/graph"
	"github.com/reltrack/reltrack/internal/metrics"
)

// Options configures a single Run invocation.
type Options struct {
	Graph    *graph.Graph
	Recorder *metrics.Recorder // may be nil
}

// Run reads one command per line from in until end of input or an end
// command, writing report output to out. It returns once the session is
// over; it never calls os.Exit or touches global state.
func Run(ctx context.Context, in io.Reader, out io.Writer, opts Options) error {
	g := opts.Graph
	r := opts.Recorder

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	w := bufio.NewWriter(out)
	defer w.Flush()

	for scanner.Scan() {
		line := scanner.Text()
		parsed, ok := command.Parse(line)
		if !ok {
			debug.Logf("dropping malformed line: %q\n", line)
			continue
		}

		noopsBefore, recomputesBefore := g.Stats.Noops, g.Stats.Recomputes
		switch parsed.Kind {
		case command.AddEnt:
			g.AddEntity(parsed.Arg1)
			r.RecordCommand(ctx, "addent")
		case command.DelEnt:
			g.DelEntity(parsed.Arg1)
			r.RecordCommand(ctx, "delent")
		case command.AddRel:
			g.AddRel(parsed.Arg1, parsed.Arg2, parsed.Arg3)
			r.RecordCommand(ctx, "addrel")
		case command.DelRel:
			g.DelRel(parsed.Arg1, parsed.Arg2, parsed.Arg3)
			r.RecordCommand(ctx, "delrel")
		case command.Report:
			r.RecordCommand(ctx, "report")
			if err := emitter.Write(w, g.Report()); err != nil {
				return fmt.Errorf("runner: writing report: %w", err)
			}
		case command.End:
			r.RecordCommand(ctx, "end")
			return nil
		}

		if g.Stats.Noops > noopsBefore {
			r.RecordNoop(ctx)
		}
		// One increment per recompute(type) call; delent names no type, so
		// its recomputes are tagged with an empty type.
		for i := recomputesBefore; i < g.Stats.Recomputes; i++ {
			r.RecordRecompute(ctx, parsed.Arg3)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("runner: reading input: %w", err)
	}
	return nil
}
