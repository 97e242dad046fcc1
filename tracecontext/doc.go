// Package tracecontext provides a per-call holder for Langfuse trace
// attributes: session id, user id, tags and metadata.
//
// A Context is created for one logical trace or request, filled through
// fluent setters, and read through Emit, which produces a deterministic
// ordered attribute list ready to attach to a span or a tracer provider
// resource. Contexts are never shared between concurrent callers; each
// caller owns its instance exclusively, so no locking is involved.
//
// Basic Usage:
//
//	tc := tracecontext.New().
//		WithSessionID("session-123").
//		WithUserID("user-456").
//		AddTags("checkout", "beta").
//		WithMetadata("tenant", "acme")
//
//	span.SetAttributes(tc.Emit()...)
package tracecontext
