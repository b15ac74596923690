package scoring

import (
	"context"
	"time"

	"github.com/qubolab/qaoa-result/internal/domain"
	"github.com/qubolab/qaoa-result/internal/ports"
)

// timeoutEvaluator implements evaluation timeouts.
// This ensures evaluations against slow scoring backends don't hang
// indefinitely and provides predictable build times.
type timeoutEvaluator struct {
	next    ports.Evaluator
	timeout time.Duration
}

// TimeoutMiddleware creates middleware that enforces a per-evaluation
// timeout. If an evaluation doesn't complete within the timeout duration,
// it returns a context deadline exceeded error.
func TimeoutMiddleware(timeout time.Duration) Middleware {
	return func(next ports.Evaluator) ports.Evaluator {
		return &timeoutEvaluator{
			next:    next,
			timeout: timeout,
		}
	}
}

// Evaluate executes the evaluation with a timeout context.
func (t *timeoutEvaluator) Evaluate(ctx context.Context, bv domain.BitVector) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.next.Evaluate(ctx, bv)
}
