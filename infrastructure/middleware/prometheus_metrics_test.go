package middleware

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qubolab/qaoa-result/internal/ports"
)

func newTestMetrics(t *testing.T) (*PrometheusMetrics, *prometheus.Registry) {
	t.Helper()
	// A fresh registry per test avoids duplicate-registration panics.
	registry := prometheus.NewRegistry()
	return NewPrometheusMetrics(registry), registry
}

func TestPrometheusMetrics_ImplementsMetricsCollector(t *testing.T) {
	metrics, _ := newTestMetrics(t)
	var _ ports.MetricsCollector = metrics
}

func TestPrometheusMetrics_RecordLatency(t *testing.T) {
	metrics, registry := newTestMetrics(t)

	metrics.RecordLatency("evaluate", 25*time.Millisecond, map[string]string{"evaluator": "qubo"})
	metrics.RecordLatency("build", time.Second, nil)

	families, err := registry.Gather()
	require.NoError(t, err)

	var found bool
	for _, family := range families {
		if family.GetName() == "qaoa_operation_duration_seconds" {
			found = true
			assert.Len(t, family.GetMetric(), 2)
		}
	}
	assert.True(t, found, "latency histogram must be registered")
}

func TestPrometheusMetrics_RecordCounter(t *testing.T) {
	metrics, _ := newTestMetrics(t)
	labels := map[string]string{"evaluator": "qubo"}

	metrics.RecordCounter("evaluations_total", 1, labels)
	metrics.RecordCounter("evaluations_total", 1, labels)
	metrics.RecordCounter("evaluations_failed_total", 1, labels)

	success := testutil.ToFloat64(metrics.operationCounter.WithLabelValues(
		"evaluations_total", "success", "qubo"))
	assert.Equal(t, 2.0, success)

	failed := testutil.ToFloat64(metrics.operationCounter.WithLabelValues(
		"evaluations_failed_total", "error", "qubo"))
	assert.Equal(t, 1.0, failed)
}

func TestPrometheusMetrics_RecordGauge(t *testing.T) {
	metrics, _ := newTestMetrics(t)

	metrics.RecordGauge("table_size", 16, map[string]string{"evaluator": "qubo"})
	metrics.RecordGauge("table_size", 4, map[string]string{"evaluator": "qubo"})

	value := testutil.ToFloat64(metrics.systemGauges.WithLabelValues("table_size", "qubo"))
	assert.Equal(t, 4.0, value)
}

func TestPrometheusMetrics_RecordHistogram(t *testing.T) {
	metrics, registry := newTestMetrics(t)

	metrics.RecordHistogram("evaluation_energy", -12.5, map[string]string{"evaluator": "qubo"})
	metrics.RecordHistogram("evaluation_energy", 3.0, map[string]string{"evaluator": "qubo"})

	families, err := registry.Gather()
	require.NoError(t, err)

	var sampleCount uint64
	for _, family := range families {
		if family.GetName() == "qaoa_evaluation_energy" {
			sampleCount = family.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	assert.Equal(t, uint64(2), sampleCount)
}

func TestPrometheusMetrics_MissingEvaluatorLabel(t *testing.T) {
	metrics, _ := newTestMetrics(t)

	metrics.RecordCounter("evaluations_total", 1, nil)

	value := testutil.ToFloat64(metrics.operationCounter.WithLabelValues(
		"evaluations_total", "success", "unknown"))
	assert.Equal(t, 1.0, value)
}
