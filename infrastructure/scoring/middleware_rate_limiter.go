package scoring

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/qubolab/qaoa-result/internal/domain"
	"github.com/qubolab/qaoa-result/internal/ports"
)

// rateLimitedEvaluator implements rate limiting using a token bucket
// algorithm. This prevents overwhelming a remote scoring backend and
// ensures consistent evaluation pacing across the application.
type rateLimitedEvaluator struct {
	next    ports.Evaluator
	limiter *rate.Limiter
}

// RateLimitMiddleware creates middleware that enforces rate limiting using
// a token bucket algorithm. The limit parameter sets evaluations per
// second, while burst allows temporary spikes above the sustained rate.
func RateLimitMiddleware(limit rate.Limit, burst int) Middleware {
	limiter := rate.NewLimiter(limit, burst)

	return func(next ports.Evaluator) ports.Evaluator {
		return &rateLimitedEvaluator{
			next:    next,
			limiter: limiter,
		}
	}
}

// Evaluate waits for rate limit permission before forwarding the
// evaluation. This blocks the calling goroutine until a token is
// available, ensuring compliance with configured rate limits.
func (r *rateLimitedEvaluator) Evaluate(ctx context.Context, bv domain.BitVector) (float64, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("rate limit: %w", err)
	}
	return r.next.Evaluate(ctx, bv)
}
