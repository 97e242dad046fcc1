package tracer

import "github.com/Aleph-Alpha/langfuse-otel/exporter"

// Config contains all configuration options for the tracer.
type Config struct {
	// ServiceName identifies this service in traces
	ServiceName string

	// ServiceVersion is the deployed version of the service (optional)
	ServiceVersion string

	// AppEnv is the deployment environment, e.g. "production"
	AppEnv string

	// EnableExport toggles span export to Langfuse. When false the
	// provider still creates and records spans but nothing leaves the
	// process, which is the right mode for tests and local development.
	EnableExport bool

	// Exporter configures the Langfuse exporter. Zero-value fields are
	// resolved from the LANGFUSE_* and OTEL_EXPORTER_OTLP_* environment
	// variables at construction time.
	Exporter exporter.Config
}
