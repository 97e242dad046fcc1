package exporter

import (
	"context"

	"go.uber.org/fx"
)

// FXModule integrates the exporter into an fx application. It provides the
// NewClient factory and registers a shutdown hook that flushes pending
// spans.
//
// Dependencies required by this module:
//   - an exporter.Config instance
//   - an exporter.Logger implementation
var FXModule = fx.Module("langfuse-exporter",
	fx.Provide(
		NewClient,
	),
	fx.Invoke(RegisterExporterLifecycle),
)

// RegisterExporterLifecycle shuts the exporter down when the application
// stops, flushing anything still buffered in the transport.
func RegisterExporterLifecycle(lc fx.Lifecycle, exporter *Exporter) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return exporter.Shutdown(ctx)
		},
	})
}
