// Package exporter builds a configured OTLP/HTTP span exporter for
// Langfuse.
//
// The hard part of talking to Langfuse is not transport, which is owned by
// the upstream otlptracehttp exporter, but configuration: endpoint and
// credentials can arrive programmatically, through the Langfuse environment
// variables (LANGFUSE_HOST, LANGFUSE_PUBLIC_KEY, LANGFUSE_SECRET_KEY), or
// through the generic OTLP variables (OTEL_EXPORTER_OTLP_ENDPOINT and
// friends). This package merges the three sources with a documented
// precedence (explicit > backend-specific > generic), composes the final
// trace-ingestion URL, derives the Basic-auth Authorization header, and
// applies safe defaults for the timeout, compression and HTTP client.
//
// All configuration errors are reported at Build time; nothing fails later
// during export because of configuration. The produced Exporter implements
// the OpenTelemetry SDK's SpanExporter and is safe to share across
// concurrent export operations.
//
// Basic Usage:
//
//	exp, err := exporter.New().
//		WithHost("https://cloud.langfuse.com").
//		WithCredentials("pk-lf-...", "sk-lf-...").
//		Build(ctx)
//	if err != nil {
//		return err
//	}
//
//	provider := trace.NewTracerProvider(
//		trace.WithBatcher(exporter.NewGuard(exp)),
//	)
//
// Environment-only configuration:
//
//	exp, err := exporter.FromEnvironment().Build(ctx)
//
// FX Module Integration:
//
//	app := fx.New(
//		logger.FXModule,
//		exporter.FXModule,
//		// ... other modules
//	)
//
// Thread Safety:
//
// Builders are not safe for concurrent use; configure them from a single
// goroutine. The built Exporter and the Guard wrapper are safe for
// concurrent use by multiple goroutines.
package exporter
