package logger

import (
	"context"

	"go.uber.org/fx"
)

// FXModule integrates the logger into an fx application. It provides the
// NewLoggerClient factory and registers a shutdown hook that flushes any
// buffered log entries.
//
// A logger.Config instance must be available in the dependency injection
// container.
var FXModule = fx.Module("logger",
	fx.Provide(
		NewLoggerClient,
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle registers the sync-on-stop hook for the Zap
// logger so no buffered entries are lost on shutdown.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Zap.Sync() // flushes any buffered logs
		},
	})
}
