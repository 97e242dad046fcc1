package endpoint

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	// DefaultHost is the public Langfuse cloud instance, used when no
	// endpoint configuration is present at all.
	DefaultHost = "https://cloud.langfuse.com"

	// APIRoot is the vendor root under which Langfuse serves its OTLP
	// receiver. Older releases documented this value alone as the
	// endpoint; it is still accepted as a base and completed with
	// TracesPath.
	APIRoot = "/api/public/otel"

	// TracesPath is the standard OTLP/HTTP signal path for traces.
	TracesPath = "/v1/traces"

	// FullTracesPath is the canonical Langfuse trace-ingestion path,
	// appended to bare hosts.
	FullTracesPath = APIRoot + TracesPath
)

// ErrInvalidEndpoint is returned when a composed endpoint cannot be parsed
// as an absolute http(s) URL.
var ErrInvalidEndpoint = errors.New("endpoint: invalid URL")

// Source identifies which configuration input supplied the base URL.
// The resolver picks the highest-precedence source that has data and calls
// Compose with it; the source decides which suffix rule applies.
type Source int

const (
	// SourceExplicitHost is a host set programmatically on the builder.
	SourceExplicitHost Source = iota

	// SourceBackendHost is the LANGFUSE_HOST environment variable.
	SourceBackendHost

	// SourceGenericTraces is OTEL_EXPORTER_OTLP_TRACES_ENDPOINT, which by
	// convention already names the full traces URL.
	SourceGenericTraces

	// SourceGenericBase is OTEL_EXPORTER_OTLP_ENDPOINT, a base URL that
	// gets the per-signal path appended.
	SourceGenericBase

	// SourceDefault means nothing was configured; the Langfuse cloud
	// host is used.
	SourceDefault
)

// String returns a short name for the source, used in error messages.
func (s Source) String() string {
	switch s {
	case SourceExplicitHost:
		return "explicit host"
	case SourceBackendHost:
		return "LANGFUSE_HOST"
	case SourceGenericTraces:
		return "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"
	case SourceGenericBase:
		return "OTEL_EXPORTER_OTLP_ENDPOINT"
	case SourceDefault:
		return "default"
	default:
		return "unknown"
	}
}

// Compose turns a base URL string plus its source into the final absolute
// trace-ingestion URL.
//
// Rules per source:
//   - SourceExplicitHost, SourceBackendHost: the canonical Langfuse path
//     "/api/public/otel/v1/traces" is appended unless already present. A
//     base that already ends in "/api/public/otel" (the historical
//     endpoint spelling) is completed with "/v1/traces" only.
//   - SourceGenericTraces: used verbatim.
//   - SourceGenericBase: "/v1/traces" is appended unless already present.
//   - SourceDefault: DefaultHost with the canonical path.
//
// Exactly one trailing slash is trimmed from the base and exactly one
// suffix is appended, so composition is idempotent and never produces
// double separators. Both the base and the composed result must parse as
// absolute http(s) URLs; failures return an error wrapping
// ErrInvalidEndpoint.
func Compose(base string, source Source) (string, error) {
	base = strings.TrimSpace(base)

	if source != SourceDefault {
		if err := validate(base, source); err != nil {
			return "", err
		}
	}

	var composed string
	switch source {
	case SourceExplicitHost, SourceBackendHost:
		composed = appendLangfusePath(base)
	case SourceGenericTraces:
		composed = base
	case SourceGenericBase:
		composed = appendTracesPath(base)
	case SourceDefault:
		composed = DefaultHost + FullTracesPath
	default:
		return "", fmt.Errorf("%w: unknown source %d", ErrInvalidEndpoint, source)
	}

	if err := validate(composed, source); err != nil {
		return "", err
	}
	return composed, nil
}

// appendLangfusePath completes a bare host with the canonical Langfuse
// trace path, tolerating bases that already carry part or all of it.
func appendLangfusePath(base string) string {
	base = strings.TrimSuffix(base, "/")
	switch {
	case strings.HasSuffix(base, FullTracesPath):
		return base
	case strings.HasSuffix(base, APIRoot):
		return base + TracesPath
	default:
		return base + FullTracesPath
	}
}

// appendTracesPath completes a generic OTLP base endpoint with the traces
// signal path.
func appendTracesPath(base string) string {
	base = strings.TrimSuffix(base, "/")
	if strings.HasSuffix(base, TracesPath) {
		return base
	}
	return base + TracesPath
}

func validate(composed string, source Source) error {
	u, err := url.Parse(composed)
	if err != nil {
		return fmt.Errorf("%w: %q from %s: %v", ErrInvalidEndpoint, composed, source, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: %q from %s: scheme must be http or https", ErrInvalidEndpoint, composed, source)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: %q from %s: missing host", ErrInvalidEndpoint, composed, source)
	}
	return nil
}
