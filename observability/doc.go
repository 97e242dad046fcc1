// Package observability defines the operation-observer hook used across
// this library and a Prometheus-backed implementation of it.
//
// Components that perform observable work (the exporter, primarily) accept
// an optional Observer and report every operation with its duration,
// outcome and payload size. A nil observer is always valid and costs
// nothing. The PrometheusObserver translates those reports into counters
// and histograms on a caller-supplied registry.
package observability
