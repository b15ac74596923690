package scoring

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/qubolab/qaoa-result/internal/domain"
	"github.com/qubolab/qaoa-result/internal/ports"
)

// recordingCollector is a MetricsCollector test double.
type recordingCollector struct {
	mu         sync.Mutex
	latencies  []string
	counters   map[string]float64
	histograms map[string][]float64
}

func newRecordingCollector() *recordingCollector {
	return &recordingCollector{
		counters:   make(map[string]float64),
		histograms: make(map[string][]float64),
	}
}

func (c *recordingCollector) RecordLatency(operation string, _ time.Duration, _ map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.latencies = append(c.latencies, operation)
}

func (c *recordingCollector) RecordCounter(metric string, value float64, _ map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counters[metric] += value
}

func (c *recordingCollector) RecordGauge(string, float64, map[string]string) {}

func (c *recordingCollector) RecordHistogram(metric string, value float64, _ map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.histograms[metric] = append(c.histograms[metric], value)
}

func constEvaluator(energy float64) ports.Evaluator {
	return ports.EvaluatorFunc(func(context.Context, domain.BitVector) (float64, error) {
		return energy, nil
	})
}

func TestChain_Order(t *testing.T) {
	var order []string
	tag := func(name string) Middleware {
		return func(next ports.Evaluator) ports.Evaluator {
			return ports.EvaluatorFunc(func(ctx context.Context, bv domain.BitVector) (float64, error) {
				order = append(order, name)
				return next.Evaluate(ctx, bv)
			})
		}
	}

	eval := Chain(constEvaluator(1.0), tag("outer"), tag("inner"))
	_, err := eval.Evaluate(context.Background(), domain.MustBitVector("0"))
	require.NoError(t, err)

	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestMetricsMiddleware(t *testing.T) {
	collector := newRecordingCollector()

	eval := Chain(constEvaluator(-2.5), MetricsMiddleware(collector, "qubo"))
	_, err := eval.Evaluate(context.Background(), domain.MustBitVector("01"))
	require.NoError(t, err)

	assert.Equal(t, []string{"evaluate"}, collector.latencies)
	assert.Equal(t, 1.0, collector.counters["evaluations_total"])
	assert.Equal(t, []float64{-2.5}, collector.histograms["evaluation_energy"])
}

func TestMetricsMiddleware_Failure(t *testing.T) {
	collector := newRecordingCollector()
	failing := ports.EvaluatorFunc(func(context.Context, domain.BitVector) (float64, error) {
		return 0, errors.New("backend unavailable")
	})

	eval := Chain(failing, MetricsMiddleware(collector, "qubo"))
	_, err := eval.Evaluate(context.Background(), domain.MustBitVector("01"))
	require.Error(t, err)

	assert.Equal(t, 1.0, collector.counters["evaluations_failed_total"])
	assert.Empty(t, collector.histograms["evaluation_energy"])
}

func TestTimeoutMiddleware(t *testing.T) {
	slow := ports.EvaluatorFunc(func(ctx context.Context, _ domain.BitVector) (float64, error) {
		select {
		case <-time.After(time.Second):
			return 1.0, nil
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	})

	eval := Chain(slow, TimeoutMiddleware(10*time.Millisecond))
	_, err := eval.Evaluate(context.Background(), domain.MustBitVector("0"))

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRateLimitMiddleware(t *testing.T) {
	eval := Chain(constEvaluator(1.0), RateLimitMiddleware(rate.Inf, 1))
	energy, err := eval.Evaluate(context.Background(), domain.MustBitVector("0"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, energy)
}

func TestRateLimitMiddleware_RespectsCancellation(t *testing.T) {
	// One token per hour with the bucket drained: the second call has to
	// wait and should surface the context cancellation.
	eval := Chain(constEvaluator(1.0), RateLimitMiddleware(rate.Every(time.Hour), 1))

	_, err := eval.Evaluate(context.Background(), domain.MustBitVector("0"))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = eval.Evaluate(ctx, domain.MustBitVector("0"))
	assert.Error(t, err)
}

func TestTracingMiddleware_PassesThrough(t *testing.T) {
	// Without a configured tracer provider the middleware must still
	// forward evaluations unchanged.
	eval := Chain(constEvaluator(3.5), TracingMiddleware("test"))
	energy, err := eval.Evaluate(context.Background(), domain.MustBitVector("0"))
	require.NoError(t, err)
	assert.Equal(t, 3.5, energy)
}
