package observability

import "time"

// OperationContext describes one completed operation as reported to an
// Observer.
type OperationContext struct {
	// Component is the reporting package, e.g. "langfuse-exporter".
	Component string

	// Operation is the action performed, e.g. "export" or "shutdown".
	Operation string

	// Resource is the primary target of the operation. For exports this
	// is the endpoint URL.
	Resource string

	// SubResource carries additional context, if any.
	SubResource string

	// Duration is how long the operation took.
	Duration time.Duration

	// Error is the operation outcome, nil on success.
	Error error

	// Size is a payload measure; for exports, the number of spans in
	// the batch.
	Size int64

	// Metadata carries optional extra key/value context.
	Metadata map[string]interface{}
}

// Observer receives operation reports. Implementations must be safe for
// concurrent use; reports may arrive from multiple in-flight exports.
type Observer interface {
	ObserveOperation(op OperationContext)
}
