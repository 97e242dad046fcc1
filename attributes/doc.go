// Package attributes defines the span attribute names understood by the
// Langfuse ingestion pipeline, alongside the OpenTelemetry GenAI semantic
// convention names they map to. Langfuse-prefixed attributes always take
// precedence over the generic conventions on the backend side.
package attributes
