// Package metrics is the optional instrumentation path: five OpenTelemetry
// instruments (three counters, two gauges) reporting dispatcher activity,
// exported to stderr as JSON by a periodic reader at its default interval
// and once more on shutdown. It never touches stdout, which is reserved for
// report output.
//
// The teacher's own OpenTelemetry usage (internal/hooks/hooks_otel.go) is
// tracing, not metrics, and attaches attributes to spans around hook
// execution; this package borrows its attribute.String/attribute.Int
// style for labeling counter increments but builds the metrics pipeline
// itself, since nothing in the retrieved pack wires a stdout metrics
// exporter.
package metrics

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/reltrack/reltrack/internal/graph"
)

// Recorder owns a meter provider and the five instruments SPEC_FULL's
// observability section names. A nil *Recorder is valid and every method
// on it is a no-op, so callers don't need to branch on whether metrics
// were requested.
type Recorder struct {
	provider   *sdkmetric.MeterProvider
	commands   metric.Int64Counter
	noops      metric.Int64Counter
	recomputes metric.Int64Counter
}

// New builds a Recorder that exports to stderr. g is captured by the two
// liveness gauges (entities/types), whose callbacks read it each time the
// reader collects (at each periodic export and at Shutdown), not on every
// command.
func New(g *graph.Graph) (*Recorder, error) {
	exporter, err := stdoutmetric.New(stdoutmetric.WithWriter(os.Stderr))
	if err != nil {
		return nil, fmt.Errorf("metrics: build exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
	)
	meter := provider.Meter("reltrack")

	commands, err := meter.Int64Counter("reltrack.commands.total",
		metric.WithDescription("commands dispatched, by command name"))
	if err != nil {
		return nil, fmt.Errorf("metrics: commands counter: %w", err)
	}
	noops, err := meter.Int64Counter("reltrack.noop.total",
		metric.WithDescription("commands that were silent no-ops"))
	if err != nil {
		return nil, fmt.Errorf("metrics: noop counter: %w", err)
	}
	recomputes, err := meter.Int64Counter("reltrack.recompute.total",
		metric.WithDescription("full top-set recomputations performed"))
	if err != nil {
		return nil, fmt.Errorf("metrics: recompute counter: %w", err)
	}

	if _, err := meter.Int64ObservableGauge("reltrack.entities.live",
		metric.WithDescription("live entity count"),
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			o.Observe(int64(g.EntityCount()))
			return nil
		}),
	); err != nil {
		return nil, fmt.Errorf("metrics: entities gauge: %w", err)
	}
	if _, err := meter.Int64ObservableGauge("reltrack.types.live",
		metric.WithDescription("live type count"),
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			o.Observe(int64(g.TypeCount()))
			return nil
		}),
	); err != nil {
		return nil, fmt.Errorf("metrics: types gauge: %w", err)
	}

	return &Recorder{
		provider:   provider,
		commands:   commands,
		noops:      noops,
		recomputes: recomputes,
	}, nil
}

// RecordCommand increments the per-command-name counter. It is safe to
// call with a nil receiver.
func (r *Recorder) RecordCommand(ctx context.Context, name string) {
	if r == nil {
		return
	}
	r.commands.Add(ctx, 1, metric.WithAttributes(attribute.String("command", name)))
}

// RecordNoop increments the no-op counter.
func (r *Recorder) RecordNoop(ctx context.Context) {
	if r == nil {
		return
	}
	r.noops.Add(ctx, 1)
}

// RecordRecompute increments the recompute counter, tagged with the type
// name that triggered the fallback.
func (r *Recorder) RecordRecompute(ctx context.Context, typ string) {
	if r == nil {
		return
	}
	r.recomputes.Add(ctx, 1, metric.WithAttributes(attribute.String("type", typ)))
}

// Shutdown flushes pending metrics and tears down the provider. A no-op on
// a nil receiver.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}
	return r.provider.Shutdown(ctx)
}
