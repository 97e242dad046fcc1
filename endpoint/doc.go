// Package endpoint composes the final OTLP trace-ingestion URL for Langfuse.
//
// Langfuse exposes its OTLP receiver under a vendor-specific root path, so
// the full traces endpoint depends on where the base URL came from: a bare
// host needs the complete vendor path appended, while a generic
// OTEL_EXPORTER_OTLP_ENDPOINT value only needs the standard "/v1/traces"
// signal path. The Compose function applies exactly one suffix rule per
// source, trimming trailing separators so the result never contains double
// slashes or a duplicated suffix.
//
// Basic Usage:
//
//	url, err := endpoint.Compose("https://cloud.langfuse.com", endpoint.SourceBackendHost)
//	// url == "https://cloud.langfuse.com/api/public/otel/v1/traces"
package endpoint
