package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusObserver_CountsByStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs := NewPrometheusObserver(reg)

	obs.ObserveOperation(OperationContext{
		Component: "langfuse-exporter",
		Operation: "export",
		Duration:  25 * time.Millisecond,
		Size:      10,
	})
	obs.ObserveOperation(OperationContext{
		Component: "langfuse-exporter",
		Operation: "export",
		Duration:  5 * time.Millisecond,
		Error:     errors.New("connection refused"),
		Size:      3,
	})

	success := testutil.ToFloat64(obs.operationsTotal.WithLabelValues("langfuse-exporter", "export", "success"))
	failure := testutil.ToFloat64(obs.operationsTotal.WithLabelValues("langfuse-exporter", "export", "error"))
	assert.Equal(t, 1.0, success)
	assert.Equal(t, 1.0, failure)

	spans := testutil.ToFloat64(obs.payloadSizeTotal.WithLabelValues("langfuse-exporter", "export"))
	assert.Equal(t, 13.0, spans)
}

func TestPrometheusObserver_ZeroSizeNotCounted(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs := NewPrometheusObserver(reg)

	obs.ObserveOperation(OperationContext{
		Component: "langfuse-exporter",
		Operation: "shutdown",
		Duration:  time.Millisecond,
	})

	spans := testutil.ToFloat64(obs.payloadSizeTotal.WithLabelValues("langfuse-exporter", "shutdown"))
	assert.Equal(t, 0.0, spans)
}
