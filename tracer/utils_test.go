package tracer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	traceSpan "go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/Aleph-Alpha/langfuse-otel/tracecontext"
)

// recordedSpan runs fn against a span backed by an in-memory recorder and
// returns the finished span for attribute inspection.
func recordedSpan(t *testing.T, fn func(span traceSpan.Span)) sdktrace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer provider.Shutdown(context.Background())

	_, span := provider.Tracer("test").Start(context.Background(), "op")
	fn(span)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	return ended[0]
}

func attrValue(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func testTracer(t *testing.T) *Tracer {
	t.Helper()
	ctrl := gomock.NewController(t)
	tr := NewClient(Config{ServiceName: "test-service"}, NewMockLogger(ctrl))
	t.Cleanup(func() { tr.Shutdown(context.Background()) })
	return tr
}

func TestRecordErrorOnSpan(t *testing.T) {
	tr := testTracer(t)
	boom := errors.New("boom")

	span := recordedSpan(t, func(span traceSpan.Span) {
		tr.RecordErrorOnSpan(span, boom)
	})

	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "boom", span.Status().Description)
	require.Len(t, span.Events(), 1)
	assert.Equal(t, "exception", span.Events()[0].Name)
}

func TestSetAttributes_TypeDispatch(t *testing.T) {
	tr := testTracer(t)

	span := recordedSpan(t, func(span traceSpan.Span) {
		tr.SetAttributes(span, map[string]interface{}{
			"str":   "value",
			"int":   7,
			"int64": int64(8),
			"float": 1.5,
			"bool":  true,
			"other": []int{1, 2},
		})
	})

	attrs := span.Attributes()

	v, ok := attrValue(attrs, "str")
	require.True(t, ok)
	assert.Equal(t, "value", v.AsString())

	v, ok = attrValue(attrs, "int")
	require.True(t, ok)
	assert.Equal(t, int64(7), v.AsInt64())

	v, ok = attrValue(attrs, "float")
	require.True(t, ok)
	assert.Equal(t, 1.5, v.AsFloat64())

	v, ok = attrValue(attrs, "bool")
	require.True(t, ok)
	assert.True(t, v.AsBool())

	v, ok = attrValue(attrs, "other")
	require.True(t, ok)
	assert.Equal(t, "[1 2]", v.AsString())
}

func TestApplyTraceContext(t *testing.T) {
	tr := testTracer(t)

	tc := tracecontext.New().
		WithSessionID("session-1").
		WithUserID("user-1").
		AddTags("alpha", "beta").
		WithMetadata("stage", "test")

	span := recordedSpan(t, func(span traceSpan.Span) {
		tr.ApplyTraceContext(span, tc)
	})

	attrs := span.Attributes()

	v, ok := attrValue(attrs, "session.id")
	require.True(t, ok)
	assert.Equal(t, "session-1", v.AsString())

	v, ok = attrValue(attrs, "user.id")
	require.True(t, ok)
	assert.Equal(t, "user-1", v.AsString())

	v, ok = attrValue(attrs, "langfuse.trace.tags")
	require.True(t, ok)
	assert.Equal(t, []string{"alpha", "beta"}, v.AsStringSlice())

	v, ok = attrValue(attrs, "langfuse.trace.metadata.stage")
	require.True(t, ok)
	assert.Equal(t, "test", v.AsString())
}

func TestApplyTraceContext_NilIsNoop(t *testing.T) {
	tr := testTracer(t)

	span := recordedSpan(t, func(span traceSpan.Span) {
		tr.ApplyTraceContext(span, nil)
	})

	assert.Empty(t, span.Attributes())
}

func TestLangfuseSpanHelpers(t *testing.T) {
	tr := testTracer(t)

	span := recordedSpan(t, func(span traceSpan.Span) {
		tr.SetTraceName(span, "checkout")
		tr.SetObservationType(span, "generation")
		tr.SetModel(span, "luminous-base")
		tr.SetUsage(span, 12, 34, 46)
		tr.SetObservationIO(span, "prompt", "completion")
	})

	attrs := span.Attributes()

	v, ok := attrValue(attrs, "langfuse.trace.name")
	require.True(t, ok)
	assert.Equal(t, "checkout", v.AsString())

	v, ok = attrValue(attrs, "langfuse.observation.type")
	require.True(t, ok)
	assert.Equal(t, "generation", v.AsString())

	v, ok = attrValue(attrs, "langfuse.observation.model.name")
	require.True(t, ok)
	assert.Equal(t, "luminous-base", v.AsString())

	v, ok = attrValue(attrs, "gen_ai.request.model")
	require.True(t, ok)
	assert.Equal(t, "luminous-base", v.AsString())

	v, ok = attrValue(attrs, "langfuse.observation.usage.total")
	require.True(t, ok)
	assert.Equal(t, int64(46), v.AsInt64())

	v, ok = attrValue(attrs, "langfuse.observation.input")
	require.True(t, ok)
	assert.Equal(t, "prompt", v.AsString())

	v, ok = attrValue(attrs, "langfuse.observation.output")
	require.True(t, ok)
	assert.Equal(t, "completion", v.AsString())
}

func TestSetObservationIO_SkipsEmpty(t *testing.T) {
	tr := testTracer(t)

	span := recordedSpan(t, func(span traceSpan.Span) {
		tr.SetObservationIO(span, "", "only-output")
	})

	attrs := span.Attributes()
	_, ok := attrValue(attrs, "langfuse.observation.input")
	assert.False(t, ok)
	v, ok := attrValue(attrs, "langfuse.observation.output")
	require.True(t, ok)
	assert.Equal(t, "only-output", v.AsString())
}
