package exporter

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Aleph-Alpha/langfuse-otel/auth"
	"github.com/Aleph-Alpha/langfuse-otel/endpoint"
)

// ResolvedConfig is the fully-populated exporter configuration produced by
// resolution. It is never mutated after being returned; the Exporter owns
// it exclusively and hands out copies.
type ResolvedConfig struct {
	// Endpoint is the absolute trace-ingestion URL.
	Endpoint string

	// Authorization is the effective Authorization header value.
	Authorization string

	// Headers are the additional request headers, Authorization
	// excluded.
	Headers map[string]string

	// Timeout is the per-export HTTP timeout.
	Timeout time.Duration

	// Compression is the resolved compression kind, CompressionNone or
	// CompressionGzip.
	Compression Compression

	// Client is the HTTP client for the transport. May still be nil
	// after resolution; Build provisions the default.
	Client *http.Client
}

// environment is a one-shot snapshot of every variable the resolver
// consumes. Each variable is read exactly once per resolution and trimmed
// of surrounding whitespace; untrimmed values have caused real defects and
// are never used raw.
type environment struct {
	publicKey          string
	secretKey          string
	host               string
	otlpEndpoint       string
	otlpTracesEndpoint string
	otlpHeaders        string
	otlpTracesHeaders  string
	otlpTimeout        string
	otlpCompression    string
}

func readEnvironment() environment {
	getenv := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	return environment{
		publicKey:          getenv(EnvPublicKey),
		secretKey:          getenv(EnvSecretKey),
		host:               getenv(EnvHost),
		otlpEndpoint:       getenv(EnvOTLPEndpoint),
		otlpTracesEndpoint: getenv(EnvOTLPTracesEndpoint),
		otlpHeaders:        getenv(EnvOTLPHeaders),
		otlpTracesHeaders:  getenv(EnvOTLPTracesHeaders),
		otlpTimeout:        getenv(EnvOTLPTimeout),
		otlpCompression:    getenv(EnvOTLPCompression),
	}
}

// resolve merges the raw config with the process environment into a
// ResolvedConfig. Precedence per concern: explicit builder values, then
// backend-specific variables, then generic OTLP variables, then defaults.
func resolve(cfg Config) (*ResolvedConfig, error) {
	env := readEnvironment()

	ep, err := resolveEndpoint(cfg, env)
	if err != nil {
		return nil, err
	}

	genericHeaders := parseHeaderList(env.otlpHeaders)
	tracesHeaders := parseHeaderList(env.otlpTracesHeaders)

	authorization, err := resolveAuthorization(cfg, env, tracesHeaders, genericHeaders)
	if err != nil {
		return nil, err
	}

	timeout, err := resolveTimeout(cfg.Timeout, env.otlpTimeout)
	if err != nil {
		return nil, err
	}

	compression, err := resolveCompression(cfg.Compression, env.otlpCompression)
	if err != nil {
		return nil, err
	}

	return &ResolvedConfig{
		Endpoint:      ep,
		Authorization: authorization,
		Headers:       mergeHeaders(genericHeaders, tracesHeaders, cfg.Headers),
		Timeout:       timeout,
		Compression:   compression,
		Client:        cfg.HTTPClient,
	}, nil
}

func resolveEndpoint(cfg Config, env environment) (string, error) {
	switch {
	case strings.TrimSpace(cfg.Host) != "":
		return endpoint.Compose(cfg.Host, endpoint.SourceExplicitHost)
	case env.host != "":
		return endpoint.Compose(env.host, endpoint.SourceBackendHost)
	case env.otlpTracesEndpoint != "":
		return endpoint.Compose(env.otlpTracesEndpoint, endpoint.SourceGenericTraces)
	case env.otlpEndpoint != "":
		return endpoint.Compose(env.otlpEndpoint, endpoint.SourceGenericBase)
	default:
		return endpoint.Compose("", endpoint.SourceDefault)
	}
}

func resolveAuthorization(cfg Config, env environment, tracesHeaders, genericHeaders map[string]string) (string, error) {
	return auth.Compose([]auth.Credentials{
		{
			PublicKey: strings.TrimSpace(cfg.PublicKey),
			SecretKey: strings.TrimSpace(cfg.SecretKey),
			Source:    auth.SourceExplicitKeyPair,
		},
		{
			Header: authorizationHeader(cfg.Headers),
			Source: auth.SourceExplicitHeader,
		},
		{
			PublicKey: env.publicKey,
			SecretKey: env.secretKey,
			Source:    auth.SourceBackendKeyPair,
		},
		{
			Header: authorizationHeader(tracesHeaders),
			Source: auth.SourceGenericTracesHeader,
		},
		{
			Header: authorizationHeader(genericHeaders),
			Source: auth.SourceGenericHeader,
		},
	})
}

func resolveTimeout(explicit time.Duration, fromEnv string) (time.Duration, error) {
	if explicit < 0 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidTimeout, explicit)
	}
	if explicit > 0 {
		return explicit, nil
	}
	if fromEnv == "" {
		return DefaultTimeout, nil
	}
	// OTEL_EXPORTER_OTLP_TIMEOUT is milliseconds per the OTLP spec.
	millis, err := strconv.Atoi(fromEnv)
	if err != nil || millis <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidTimeout, EnvOTLPTimeout, fromEnv)
	}
	return time.Duration(millis) * time.Millisecond, nil
}

func resolveCompression(explicit Compression, fromEnv string) (Compression, error) {
	requested := string(explicit)
	origin := "builder"
	if requested == "" {
		requested = fromEnv
		origin = EnvOTLPCompression
	}

	switch Compression(requested) {
	case "", CompressionNone:
		return CompressionNone, nil
	case CompressionGzip:
		return CompressionGzip, nil
	default:
		return "", fmt.Errorf("%w: %s=%q (supported: none, gzip)", ErrUnsupportedCompression, origin, requested)
	}
}

// parseHeaderList parses the OTLP headers list format: comma-separated
// key=value pairs with URL-encoded values, e.g.
// "Authorization=Basic%20abc,X-Tenant=acme". Malformed entries are
// skipped; keys and values are trimmed.
func parseHeaderList(list string) map[string]string {
	if list == "" {
		return nil
	}
	headers := make(map[string]string)
	for _, entry := range strings.Split(list, ",") {
		key, value, ok := strings.Cut(entry, "=")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if !ok || key == "" {
			continue
		}
		if decoded, err := url.QueryUnescape(value); err == nil {
			value = decoded
		}
		headers[http.CanonicalHeaderKey(key)] = value
	}
	return headers
}

// authorizationHeader extracts the Authorization entry from a header map,
// matching the key case-insensitively.
func authorizationHeader(headers map[string]string) string {
	for k, v := range headers {
		if strings.EqualFold(k, "Authorization") {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// mergeHeaders builds the extra-header set for the transport: generic env
// headers, overridden by traces-scoped env headers, overridden by explicit
// headers. Authorization never travels here; it is resolved separately and
// always set from the credential precedence chain.
func mergeHeaders(generic, traces, explicit map[string]string) map[string]string {
	merged := make(map[string]string)
	for _, m := range []map[string]string{generic, traces, explicit} {
		for k, v := range m {
			merged[http.CanonicalHeaderKey(strings.TrimSpace(k))] = strings.TrimSpace(v)
		}
	}
	delete(merged, "Authorization")
	return merged
}
