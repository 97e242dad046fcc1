package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusObserver implements Observer by recording operations into
// Prometheus metrics. All metrics carry the component and operation as
// labels so one observer can serve several components.
type PrometheusObserver struct {
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	payloadSizeTotal  *prometheus.CounterVec
}

// NewPrometheusObserver creates an observer and registers its collectors
// on the given registerer. Registration failures panic, matching the
// MustRegister convention; pass an isolated registry per service to avoid
// collisions.
func NewPrometheusObserver(reg prometheus.Registerer) *PrometheusObserver {
	o := &PrometheusObserver{
		operationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "observed_operations_total",
				Help: "Total number of observed operations by component, operation and status",
			},
			[]string{"component", "operation", "status"},
		),
		operationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "observed_operation_duration_seconds",
				Help:    "Duration of observed operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"component", "operation"},
		),
		payloadSizeTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "observed_payload_items_total",
				Help: "Total payload items processed, e.g. spans exported",
			},
			[]string{"component", "operation"},
		),
	}

	reg.MustRegister(o.operationsTotal, o.operationDuration, o.payloadSizeTotal)
	return o
}

// ObserveOperation records one operation report.
func (o *PrometheusObserver) ObserveOperation(op OperationContext) {
	status := "success"
	if op.Error != nil {
		status = "error"
	}

	o.operationsTotal.WithLabelValues(op.Component, op.Operation, status).Inc()
	o.operationDuration.WithLabelValues(op.Component, op.Operation).Observe(op.Duration.Seconds())
	if op.Size > 0 {
		o.payloadSizeTotal.WithLabelValues(op.Component, op.Operation).Add(float64(op.Size))
	}
}
