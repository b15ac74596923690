package scoring

import (
	"context"
	"time"

	"github.com/qubolab/qaoa-result/internal/domain"
	"github.com/qubolab/qaoa-result/internal/ports"
)

// metricsEvaluator records operational metrics for every evaluation.
// This enables monitoring of evaluation latency, throughput, and the
// distribution of sampled energies.
type metricsEvaluator struct {
	next      ports.Evaluator
	collector ports.MetricsCollector
	evaluator string
}

// MetricsMiddleware creates middleware that records evaluation metrics
// through the given collector. The evaluator label distinguishes multiple
// evaluators reporting into the same collector.
func MetricsMiddleware(collector ports.MetricsCollector, evaluator string) Middleware {
	return func(next ports.Evaluator) ports.Evaluator {
		return &metricsEvaluator{
			next:      next,
			collector: collector,
			evaluator: evaluator,
		}
	}
}

// Evaluate forwards the evaluation and records latency, outcome, and the
// resulting energy.
func (m *metricsEvaluator) Evaluate(ctx context.Context, bv domain.BitVector) (float64, error) {
	start := time.Now()
	energy, err := m.next.Evaluate(ctx, bv)
	elapsed := time.Since(start)

	labels := map[string]string{"evaluator": m.evaluator}
	m.collector.RecordLatency("evaluate", elapsed, labels)
	if err != nil {
		m.collector.RecordCounter("evaluations_failed_total", 1, labels)
		return energy, err
	}
	m.collector.RecordCounter("evaluations_total", 1, labels)
	m.collector.RecordHistogram("evaluation_energy", energy, labels)
	return energy, nil
}
