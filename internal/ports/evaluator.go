// Package ports defines the interfaces between the result-aggregation core
// and its external collaborators: objective evaluation, drawing surfaces,
// and observability.
package ports

import (
	"context"

	"github.com/qubolab/qaoa-result/internal/domain"
)

// Evaluator computes the objective value of a candidate. Lower is better.
//
// Implementations must be pure with respect to the candidate: evaluating
// the same bit vector twice yields the same energy, with no side effects
// beyond the evaluation itself. This makes it safe for callers to evaluate
// candidates concurrently.
type Evaluator interface {
	// Evaluate returns the energy of the given candidate.
	// The context carries cancellation and deadline for implementations
	// that reach out to a remote scoring backend.
	Evaluate(ctx context.Context, bv domain.BitVector) (float64, error)
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(ctx context.Context, bv domain.BitVector) (float64, error)

// Evaluate implements the Evaluator interface.
func (f EvaluatorFunc) Evaluate(ctx context.Context, bv domain.BitVector) (float64, error) {
	return f(ctx, bv)
}
