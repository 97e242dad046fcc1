package exporter

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/Aleph-Alpha/langfuse-otel/observability"
)

// Logger defines the interface for logging operations in the exporter
// package. This interface allows the package to use any logging
// implementation that conforms to these methods.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=exporter
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Exporter is a span exporter configured for Langfuse. It delegates wire
// encoding and transmission to the upstream OTLP/HTTP exporter and adds
// logging and operation observability around it.
//
// Exporter implements the OpenTelemetry SDK's SpanExporter and is handed
// to a tracer provider's batch span processor. It holds no mutable state
// after construction and is safe to share across concurrent exports.
type Exporter struct {
	// delegate is the underlying OTLP exporter owning the transport.
	delegate *otlptrace.Exporter

	// cfg is the resolved configuration this exporter was built from.
	cfg *ResolvedConfig

	// logger is used for structured logging; nil disables logging.
	logger Logger

	// observer provides optional observability hooks for tracking
	// export operations.
	observer observability.Observer
}

// NewClient creates an Exporter from a Config, resolving anything unset
// from the environment. This is the constructor wired into the fx module;
// the Builder offers the same functionality with a fluent surface.
func NewClient(cfg Config, logger Logger) (*Exporter, error) {
	if cfg.Logger == nil {
		cfg.Logger = logger
	}
	return build(context.Background(), cfg, nil)
}

// build resolves the config (over an optional pre-resolved seed),
// provisions the default HTTP client when none was supplied, and
// constructs the underlying OTLP exporter.
func build(ctx context.Context, cfg Config, seed *ResolvedConfig) (*Exporter, error) {
	var resolved *ResolvedConfig
	var err error
	if seed != nil {
		resolved, err = resolveOverSeed(cfg, seed)
	} else {
		resolved, err = resolve(cfg)
	}
	if err != nil {
		return nil, err
	}

	if resolved.Client == nil {
		// Construction never fails purely for lack of a transport.
		resolved.Client = &http.Client{Timeout: resolved.Timeout}
	}

	delegate, err := newDelegate(ctx, resolved)
	if err != nil {
		return nil, err
	}

	e := &Exporter{
		delegate: delegate,
		cfg:      resolved,
		logger:   cfg.Logger,
		observer: cfg.Observer,
	}

	if e.logger != nil {
		e.logger.Info("langfuse exporter configured", nil, map[string]interface{}{
			"endpoint":    resolved.Endpoint,
			"timeout":     resolved.Timeout.String(),
			"compression": string(resolved.Compression),
		})
	}
	return e, nil
}

// newDelegate constructs the upstream OTLP/HTTP exporter from a resolved
// configuration.
func newDelegate(ctx context.Context, resolved *ResolvedConfig) (*otlptrace.Exporter, error) {
	if resolved.Client == nil {
		return nil, ErrNoHTTPClient
	}

	headers := make(map[string]string, len(resolved.Headers)+1)
	for k, v := range resolved.Headers {
		headers[k] = v
	}
	headers["Authorization"] = resolved.Authorization

	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpointURL(resolved.Endpoint),
		otlptracehttp.WithHeaders(headers),
		otlptracehttp.WithTimeout(resolved.Timeout),
		otlptracehttp.WithHTTPClient(resolved.Client),
	}
	if resolved.Compression == CompressionGzip {
		opts = append(opts, otlptracehttp.WithCompression(otlptracehttp.GzipCompression))
	}

	return otlptrace.New(ctx, otlptracehttp.NewClient(opts...))
}

// ExportSpans exports a batch of spans to Langfuse. It implements
// sdktrace.SpanExporter.
func (e *Exporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	start := time.Now()
	err := e.delegate.ExportSpans(ctx, spans)
	e.observeOperation("export", time.Since(start), err, int64(len(spans)))

	if err != nil && e.logger != nil {
		e.logger.Error("failed to export span batch", err, map[string]interface{}{
			"spans":    len(spans),
			"endpoint": e.cfg.Endpoint,
		})
	}
	return err
}

// Shutdown flushes and stops the underlying exporter. It implements
// sdktrace.SpanExporter.
func (e *Exporter) Shutdown(ctx context.Context) error {
	start := time.Now()
	err := e.delegate.Shutdown(ctx)
	e.observeOperation("shutdown", time.Since(start), err, 0)
	return err
}

// Config returns a copy of the resolved configuration the exporter was
// built from. The exporter's own copy is never exposed for mutation.
func (e *Exporter) Config() ResolvedConfig {
	out := *e.cfg
	out.Headers = make(map[string]string, len(e.cfg.Headers))
	for k, v := range e.cfg.Headers {
		out.Headers[k] = v
	}
	return out
}
