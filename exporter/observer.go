package exporter

import (
	"time"

	"github.com/Aleph-Alpha/langfuse-otel/observability"
)

// observeOperation notifies the observer about an operation if one is
// configured. This is used internally to track export and shutdown
// operations for metrics.
func (e *Exporter) observeOperation(operation string, duration time.Duration, err error, size int64) {
	if e == nil || e.observer == nil {
		return
	}

	e.observer.ObserveOperation(observability.OperationContext{
		Component: "langfuse-exporter",
		Operation: operation,
		Resource:  e.cfg.Endpoint,
		Duration:  duration,
		Error:     err,
		Size:      size,
		Metadata:  nil,
	})
}
