package exporter

import (
	"net/http"
	"time"

	"github.com/Aleph-Alpha/langfuse-otel/observability"
)

// Environment variables consumed during configuration resolution. Values
// are trimmed of surrounding whitespace before use; empty values count as
// unset.
const (
	// Backend-specific variables.
	EnvPublicKey = "LANGFUSE_PUBLIC_KEY"
	EnvSecretKey = "LANGFUSE_SECRET_KEY"
	EnvHost      = "LANGFUSE_HOST"

	// Generic OTLP protocol variables.
	EnvOTLPEndpoint       = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvOTLPTracesEndpoint = "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"
	EnvOTLPHeaders        = "OTEL_EXPORTER_OTLP_HEADERS"
	EnvOTLPTracesHeaders  = "OTEL_EXPORTER_OTLP_TRACES_HEADERS"
	EnvOTLPTimeout        = "OTEL_EXPORTER_OTLP_TIMEOUT"
	EnvOTLPCompression    = "OTEL_EXPORTER_OTLP_COMPRESSION"
)

// DefaultTimeout is the export timeout used when neither the builder nor
// the environment configures one.
const DefaultTimeout = 10 * time.Second

// Compression names a payload compression kind. The zero value means
// "not configured" and resolves through the environment or to
// CompressionNone.
type Compression string

const (
	// CompressionNone disables payload compression. This is the default.
	CompressionNone Compression = "none"

	// CompressionGzip enables gzip payload compression, the only kind
	// the OTLP/HTTP transport supports. Any other requested kind is a
	// resolution error, never a silent no-op.
	CompressionGzip Compression = "gzip"
)

// Config is the raw, possibly incomplete configuration accumulated by the
// Builder. Fields left at their zero value are resolved from the
// environment or defaulted; see the package documentation for precedence.
type Config struct {
	// Host is the base Langfuse URL, e.g. "https://cloud.langfuse.com".
	// The trace-ingestion path is appended during resolution.
	Host string

	// PublicKey and SecretKey form the Langfuse API key pair. When both
	// are set they take precedence over every other credential source.
	PublicKey string
	SecretKey string

	// Headers are additional HTTP headers sent with every export
	// request. An Authorization entry here participates in credential
	// precedence (below an explicit key pair).
	Headers map[string]string

	// Timeout is the per-export HTTP timeout.
	// Default: 10 seconds (or OTEL_EXPORTER_OTLP_TIMEOUT, milliseconds)
	Timeout time.Duration

	// Compression selects payload compression.
	// Default: none
	Compression Compression

	// HTTPClient is an optional custom HTTP client for the transport.
	// When nil, a default client is provisioned at Build time.
	HTTPClient *http.Client

	// Logger is an optional logger; export failures are logged through
	// it. Nil disables logging.
	Logger Logger

	// Observer provides optional observability hooks for tracking
	// export operations.
	Observer observability.Observer
}
