// Package tracer provides distributed tracing functionality using
// OpenTelemetry, with spans delivered to Langfuse.
//
// The tracer package offers a simplified interface for implementing
// distributed tracing in Go applications. It abstracts away the complexity
// of OpenTelemetry to provide a clean, easy-to-use API for creating and
// managing trace spans, and it wires the Langfuse exporter into the tracer
// provider so spans show up as Langfuse traces and observations.
//
// Core Features:
//   - Simple span creation and management
//   - Error recording and status tracking
//   - Customizable span attributes
//   - Langfuse trace and observation attribute helpers
//   - Cross-service trace context propagation
//
// Basic Usage:
//
//	import (
//		"context"
//		"github.com/Aleph-Alpha/langfuse-otel/logger"
//		"github.com/Aleph-Alpha/langfuse-otel/tracer"
//	)
//
//	// Create a logger
//	log, _ := logger.NewLoggerClient(logger.Config{Level: "info"})
//
//	// Create a tracer; exporter settings not given here are resolved
//	// from LANGFUSE_* and OTEL_EXPORTER_OTLP_* environment variables.
//	tracerClient := tracer.NewClient(tracer.Config{
//		ServiceName:  "my-service",
//		AppEnv:       "development",
//		EnableExport: true,
//	}, log)
//
//	// Create a span
//	ctx, span := tracerClient.StartSpan(ctx, "process-request")
//	defer span.End()
//
//	// Attach Langfuse trace identity
//	tc := tracecontext.New().
//		WithSessionID("session-123").
//		WithUserID("user-456")
//	tracerClient.ApplyTraceContext(span, tc)
//
//	// Record errors
//	if err != nil {
//		tracerClient.RecordErrorOnSpan(span, err)
//		return nil, err
//	}
//
// FX Module Integration:
//
// This package provides an fx module for easy integration:
//
//	app := fx.New(
//		logger.FXModule,
//		tracer.FXModule,
//		// ... other modules
//	)
//	app.Run()
//
// Thread Safety:
//
// All methods on the Tracer type are safe for concurrent use by multiple
// goroutines.
package tracer
