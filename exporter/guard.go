package exporter

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Guard wraps a span exporter so that every operation runs with a usable
// context. The batch span processor can invoke the exporter with a context
// that is nil or already terminated (its own shutdown context, for
// example); without the guard that turns into an immediate dispatch
// failure rather than a recoverable export error.
//
// When the incoming context is unusable, Guard establishes a private
// background-derived context scoped to the single call and cancels it on
// return, so no context leaks beyond the operation. Guard holds no state
// and is safe for concurrent use; each invocation decides independently.
type Guard struct {
	exporter sdktrace.SpanExporter
}

// NewGuard wraps an exporter. Wrap the exporter once, before handing it to
// the span processor.
func NewGuard(exporter sdktrace.SpanExporter) *Guard {
	return &Guard{exporter: exporter}
}

// ExportSpans runs the wrapped exporter's ExportSpans under a guaranteed
// valid context. It implements sdktrace.SpanExporter.
func (g *Guard) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	return Run(ctx, func(ctx context.Context) error {
		return g.exporter.ExportSpans(ctx, spans)
	})
}

// Shutdown runs the wrapped exporter's Shutdown under a guaranteed valid
// context. It implements sdktrace.SpanExporter.
func (g *Guard) Shutdown(ctx context.Context) error {
	return Run(ctx, func(ctx context.Context) error {
		return g.exporter.Shutdown(ctx)
	})
}

// Run invokes op with the given context if it is usable, or with a private
// context scoped to this single call otherwise. A context is unusable when
// it is nil or already done. The private context is torn down before Run
// returns.
func Run(ctx context.Context, op func(context.Context) error) error {
	if ctx == nil || ctx.Err() != nil {
		scoped, cancel := context.WithCancel(context.Background())
		defer cancel()
		return op(scoped)
	}
	return op(ctx)
}
