package exporter

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Aleph-Alpha/langfuse-otel/auth"
	"github.com/Aleph-Alpha/langfuse-otel/endpoint"
	"github.com/Aleph-Alpha/langfuse-otel/observability"
)

// Builder accumulates explicit configuration for an Exporter. Setters only
// record values and never validate (fail-late policy); all validation
// happens in Build, so configuration errors surface in exactly one place.
type Builder struct {
	cfg Config

	// seed is the environment-only resolution captured by
	// FromEnvironment, nil otherwise. Explicit setters override it
	// field by field at Build time.
	seed *ResolvedConfig
}

// New creates an empty Builder. Anything not set explicitly is resolved
// from the environment or defaulted at Build time.
func New() *Builder {
	return &Builder{}
}

// FromEnvironment creates a Builder pre-seeded from the environment-only
// resolution path. Subsequent explicit setters override the seeded values.
// If the environment is incomplete, the failure is deferred: Build
// re-resolves with whatever the setters supplied and reports the error
// then, if it still holds.
func FromEnvironment() *Builder {
	b := New()
	if seed, err := resolve(Config{}); err == nil {
		b.seed = seed
	}
	return b
}

// WithHost sets the base Langfuse URL. The trace-ingestion path is
// appended during resolution.
func (b *Builder) WithHost(host string) *Builder {
	b.cfg.Host = host
	return b
}

// WithCredentials sets the Langfuse API key pair. An explicit key pair
// outranks every other credential source, including explicit headers.
func (b *Builder) WithCredentials(publicKey, secretKey string) *Builder {
	b.cfg.PublicKey = publicKey
	b.cfg.SecretKey = secretKey
	return b
}

// WithHeader adds one HTTP header to send with every export request.
func (b *Builder) WithHeader(name, value string) *Builder {
	if b.cfg.Headers == nil {
		b.cfg.Headers = make(map[string]string)
	}
	b.cfg.Headers[name] = value
	return b
}

// WithHeaders adds multiple HTTP headers.
func (b *Builder) WithHeaders(headers map[string]string) *Builder {
	for k, v := range headers {
		b.WithHeader(k, v)
	}
	return b
}

// WithTimeout sets the per-export HTTP timeout.
func (b *Builder) WithTimeout(timeout time.Duration) *Builder {
	b.cfg.Timeout = timeout
	return b
}

// WithCompression selects payload compression.
func (b *Builder) WithCompression(c Compression) *Builder {
	b.cfg.Compression = c
	return b
}

// WithHTTPClient sets a custom HTTP client for the transport.
func (b *Builder) WithHTTPClient(client *http.Client) *Builder {
	b.cfg.HTTPClient = client
	return b
}

// WithLogger sets the logger used for export failures and construction
// diagnostics.
func (b *Builder) WithLogger(logger Logger) *Builder {
	b.cfg.Logger = logger
	return b
}

// WithObserver sets the observability hook for export operations.
func (b *Builder) WithObserver(observer observability.Observer) *Builder {
	b.cfg.Observer = observer
	return b
}

// Build validates and resolves the accumulated configuration and
// constructs the exporter. A default HTTP client is provisioned when none
// was set. All resolution errors are returned here, never later during
// export.
func (b *Builder) Build(ctx context.Context) (*Exporter, error) {
	return build(ctx, b.cfg, b.seed)
}

// resolveOverSeed merges explicit config over an environment seed without
// touching the environment again: the seed already is the environment-only
// resolution, so each field falls back to it instead of a fresh read.
func resolveOverSeed(cfg Config, seed *ResolvedConfig) (*ResolvedConfig, error) {
	ep := seed.Endpoint
	if strings.TrimSpace(cfg.Host) != "" {
		composed, err := endpoint.Compose(cfg.Host, endpoint.SourceExplicitHost)
		if err != nil {
			return nil, err
		}
		ep = composed
	}

	authorization, err := auth.Compose([]auth.Credentials{
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
			Header: seed.Authorization,
			Source: auth.SourceGenericHeader,
		},
	})
	if err != nil {
		return nil, err
	}

	timeout := seed.Timeout
	if cfg.Timeout < 0 {
		return nil, ErrInvalidTimeout
	}
	if cfg.Timeout > 0 {
		timeout = cfg.Timeout
	}

	compression := seed.Compression
	if cfg.Compression != "" {
		compression, err = resolveCompression(cfg.Compression, "")
		if err != nil {
			return nil, err
		}
	}

	client := seed.Client
	if cfg.HTTPClient != nil {
		client = cfg.HTTPClient
	}

	return &ResolvedConfig{
		Endpoint:      ep,
		Authorization: authorization,
		Headers:       mergeHeaders(seed.Headers, nil, cfg.Headers),
		Timeout:       timeout,
		Compression:   compression,
		Client:        client,
	}, nil
}
