// Package middleware provides cross-cutting observability concerns for the
// result-aggregation pipeline.
package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/qubolab/qaoa-result/internal/ports"
)

// Compile-time verification that PrometheusMetrics implements MetricsCollector.
var _ ports.MetricsCollector = (*PrometheusMetrics)(nil)

// PrometheusMetrics implements the MetricsCollector interface using
// Prometheus. It provides real-time monitoring of objective evaluations
// and result builds.
type PrometheusMetrics struct {
	operationLatency *prometheus.HistogramVec
	operationCounter *prometheus.CounterVec
	energyHistogram  *prometheus.HistogramVec
	systemGauges     *prometheus.GaugeVec
}

// NewPrometheusMetrics creates a new PrometheusMetrics instance registered
// with the given registerer. Passing nil registers the metrics in the
// default Prometheus registry.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		operationLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "qaoa_operation_duration_seconds",
				Help:    "Execution time of scoring and aggregation operations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "evaluator"},
		),
		operationCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "qaoa_operations_total",
				Help: "Total number of scoring and aggregation operations.",
			},
			[]string{"operation", "status", "evaluator"},
		),
		energyHistogram: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "qaoa_evaluation_energy",
				Help:    "Distribution of objective values over evaluated candidates.",
				// Energies are signed; QUBO minima are frequently negative.
				Buckets: prometheus.LinearBuckets(-100, 20, 11),
			},
			[]string{"evaluator"},
		),
		systemGauges: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "qaoa_aggregation_state",
				Help: "Current aggregation state values, such as table size and shot totals.",
			},
			[]string{"metric", "evaluator"},
		),
	}
}

// RecordLatency implements the MetricsCollector interface by recording
// execution latency in a Prometheus histogram.
func (pm *PrometheusMetrics) RecordLatency(
	operation string,
	duration time.Duration,
	labels map[string]string,
) {
	pm.operationLatency.WithLabelValues(operation, evaluatorLabel(labels)).Observe(duration.Seconds())
}

// RecordCounter implements the MetricsCollector interface by incrementing
// Prometheus counters.
func (pm *PrometheusMetrics) RecordCounter(
	metric string, value float64, labels map[string]string,
) {
	status := "success"
	if metric == "evaluations_failed_total" {
		status = "error"
	}
	pm.operationCounter.WithLabelValues(metric, status, evaluatorLabel(labels)).Add(value)
}

// RecordGauge implements the MetricsCollector interface by setting
// Prometheus gauge values.
func (pm *PrometheusMetrics) RecordGauge(
	metric string, value float64, labels map[string]string,
) {
	pm.systemGauges.WithLabelValues(metric, evaluatorLabel(labels)).Set(value)
}

// RecordHistogram implements the MetricsCollector interface by recording
// values in a Prometheus histogram. Energy observations land in the
// dedicated energy histogram; everything else is treated as a latency-like
// observation.
func (pm *PrometheusMetrics) RecordHistogram(
	metric string, value float64, labels map[string]string,
) {
	if metric == "evaluation_energy" {
		pm.energyHistogram.WithLabelValues(evaluatorLabel(labels)).Observe(value)
		return
	}
	pm.operationLatency.WithLabelValues(metric, evaluatorLabel(labels)).Observe(value)
}

func evaluatorLabel(labels map[string]string) string {
	if evaluator, ok := labels["evaluator"]; ok {
		return evaluator
	}
	return "unknown"
}
