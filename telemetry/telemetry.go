// Package telemetry provides timing collection for ledger operations.
//
// Collectors travel through context so instrumentation stays non-intrusive:
// code calls telemetry.FromContext(ctx).Start(name) and gets a no-op timer
// unless a collector was installed with WithCollector. The CLI installs a
// collector when --telemetry is set and reports it on exit.
package telemetry

import (
	"context"
	"io"
)

// contextKey is a private type for context keys to avoid collisions.
type contextKey struct{}

var collectorKey = contextKey{}

// Collector records operation timings.
type Collector interface {
	// Start begins timing an operation. End the returned timer when the
	// operation completes.
	Start(name string) Timer

	// Report writes the collected timings to a writer.
	Report(w io.Writer)
}

// Timer tracks a single operation's duration.
type Timer interface {
	End()
}

// WithCollector adds a collector to a context.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, collectorKey, collector)
}

// FromContext extracts the collector from context, or a no-op collector
// when none is present.
func FromContext(ctx context.Context) Collector {
	if collector, ok := ctx.Value(collectorKey).(Collector); ok {
		return collector
	}
	return noOpCollector{}
}

type noOpCollector struct{}

func (noOpCollector) Start(string) Timer { return noOpTimer{} }
func (noOpCollector) Report(io.Writer)   {}

type noOpTimer struct{}

func (noOpTimer) End() {}
