package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	traceSpan "go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/langfuse-otel/attributes"
	"github.com/Aleph-Alpha/langfuse-otel/tracecontext"
)

// RecordErrorOnSpan records an error on a span and sets its status to error.
// This method is used to indicate that a span represents a failed operation,
// which helps with error tracing and monitoring in observability systems.
//
// Parameters:
//   - span: The span on which to record the error
//   - err: The error to record on the span
//
// Example:
//
//	ctx, span := tracer.StartSpan(ctx, "fetch-user-data")
//	defer span.End()
//
//	data, err := fetchUserData(ctx, userID)
//	if err != nil {
//	    tracer.RecordErrorOnSpan(span, err)
//	    return nil, err
//	}
//
//	return data, nil
func (t *Tracer) RecordErrorOnSpan(span traceSpan.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// StartSpan creates a new span with the given name and returns an updated
// context containing the span, along with the span itself. This is the
// primary method for creating spans to trace operations in your application.
//
// The created span becomes a child of any span that exists in the provided
// context. If no span exists in the context, a new root span is created.
//
// Parameters:
//   - ctx: The parent context, which may contain a parent span
//   - name: A descriptive name for the operation being traced
//
// Returns:
//   - context.Context: A new context containing the created span
//   - traceSpan.Span: The created span, which must be ended when the operation completes
//
// Example:
//
//	func processRequest(ctx context.Context, req Request) (Response, error) {
//	    ctx, span := tracer.StartSpan(ctx, "process-request")
//	    defer span.End()
//
//	    result, err := performWork(ctx, req)
//	    if err != nil {
//	        tracer.RecordErrorOnSpan(span, err)
//	        return Response{}, err
//	    }
//
//	    return result, nil
//	}
func (t *Tracer) StartSpan(ctx context.Context, name string) (context.Context, traceSpan.Span) {
	tracer := t.tracer.Tracer("")
	ctx, span := tracer.Start(ctx, name)
	return ctx, span
}

// SetAttributes adds one or more attributes to a span with support for
// different data types. Attributes provide additional context and metadata
// for spans, making traces more informative for debugging and analysis.
//
// Parameters:
//   - span: The span to add attributes to
//   - attrs: A map of attribute keys to values. Values can be strings, ints,
//     int64s, float64s, or booleans. Other types are converted to strings.
//
// Example:
//
//	ctx, span := tracer.StartSpan(ctx, "process-payment")
//	defer span.End()
//
//	tracer.SetAttributes(span, map[string]interface{}{
//	    "user.id": userID,
//	    "payment.amount": amount,
//	    "payment.currency": "USD",
//	})
func (t *Tracer) SetAttributes(span traceSpan.Span, attrs map[string]interface{}) {
	if len(attrs) == 0 {
		return
	}

	attributes := make([]attribute.KeyValue, 0, len(attrs))

	for k, v := range attrs {
		switch val := v.(type) {
		case string:
			attributes = append(attributes, attribute.String(k, val))
		case int:
			attributes = append(attributes, attribute.Int(k, val))
		case int64:
			attributes = append(attributes, attribute.Int64(k, val))
		case float64:
			attributes = append(attributes, attribute.Float64(k, val))
		case bool:
			attributes = append(attributes, attribute.Bool(k, val))
		default:
			// For unsupported types, convert to string
			attributes = append(attributes, attribute.String(k, fmt.Sprint(val)))
		}
	}

	span.SetAttributes(attributes...)
}

// ApplyTraceContext stamps the accumulated Langfuse trace identity (session,
// user, tags, metadata) onto a span. Apply it to the root span of a request;
// Langfuse reads these attributes at the trace level.
func (t *Tracer) ApplyTraceContext(span traceSpan.Span, tc *tracecontext.Context) {
	if tc == nil {
		return
	}
	span.SetAttributes(tc.Emit()...)
}

// SetTraceName overrides the display name Langfuse shows for the trace.
func (t *Tracer) SetTraceName(span traceSpan.Span, name string) {
	span.SetAttributes(attribute.String(attributes.TraceName, name))
}

// SetObservationType marks the span as a Langfuse generation, span or event.
func (t *Tracer) SetObservationType(span traceSpan.Span, observationType string) {
	span.SetAttributes(attribute.String(attributes.ObservationType, observationType))
}

// SetModel records the generative model behind a span, on both the Langfuse
// observation attribute and the GenAI semantic convention key.
func (t *Tracer) SetModel(span traceSpan.Span, model string) {
	span.SetAttributes(
		attribute.String(attributes.ObservationModel, model),
		attribute.String(attributes.GenAIRequestModel, model),
	)
}

// SetUsage records token usage for a generation span. Pass zero for counts
// that are unknown; zeroes are still reported.
func (t *Tracer) SetUsage(span traceSpan.Span, input, output, total int) {
	span.SetAttributes(
		attribute.Int(attributes.ObservationUsageInput, input),
		attribute.Int(attributes.ObservationUsageOutput, output),
		attribute.Int(attributes.ObservationUsageTotal, total),
	)
}

// SetObservationIO records the input and output payloads of an observation.
// Empty strings are skipped so partial recording stays cheap.
func (t *Tracer) SetObservationIO(span traceSpan.Span, input, output string) {
	if input != "" {
		span.SetAttributes(attribute.String(attributes.ObservationInput, input))
	}
	if output != "" {
		span.SetAttributes(attribute.String(attributes.ObservationOutput, output))
	}
}

// GetCarrier extracts the current trace context from a context object and
// returns it as a map that can be transmitted across service boundaries.
// This is essential for distributed tracing to maintain trace continuity
// across different services.
//
// The returned map contains W3C Trace Context headers:
//   - "traceparent": Contains trace ID, span ID, and trace flags
//   - "tracestate": Contains vendor-specific trace information (if present)
//
// Example:
//
//	// Extract trace context for an outgoing HTTP request
//	traceHeaders := tracer.GetCarrier(ctx)
//	for key, value := range traceHeaders {
//	    req.Header.Set(key, value)
//	}
func (t *Tracer) GetCarrier(ctx context.Context) map[string]string {
	propagator := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
	carrier := propagation.MapCarrier{}
	propagator.Inject(ctx, carrier)
	return carrier
}

// SetCarrierOnContext extracts trace information from a carrier map and
// injects it into a context. This is the complement to GetCarrier and is
// typically used when receiving requests or messages from other services
// that include trace headers.
//
// Parameters:
//   - ctx: The base context to inject trace information into
//   - carrier: A map containing trace headers (like those from HTTP requests or message headers)
//
// Returns:
//   - context.Context: A new context with the trace information from the carrier injected into it
func (t *Tracer) SetCarrierOnContext(ctx context.Context, carrier map[string]string) context.Context {
	propagator := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
	return propagator.Extract(ctx, propagation.MapCarrier(carrier))
}
