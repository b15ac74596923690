// Package scoring provides objective evaluation for QAOA candidates with
// built-in support for rate limiting, timeouts, metrics, and tracing.
//
// The package supplies a local QUBO matrix evaluator and wraps any
// ports.Evaluator — local or backed by a remote scoring service — with
// cross-cutting concerns through a middleware pattern. This allows callers
// to swap evaluators or add operational features without changing the
// aggregation code.
//
// Basic usage:
//
//	qubo, err := scoring.NewQUBO([][]float64{{1, -2}, {0, 1}}, 0)
//	eval := scoring.Chain(qubo,
//	    scoring.RateLimitMiddleware(100, 200),
//	    scoring.MetricsMiddleware(collector),
//	)
//	energy, err := eval.Evaluate(ctx, bv)
package scoring

import (
	"github.com/qubolab/qaoa-result/internal/ports"
)

// Middleware wraps an Evaluator with additional behavior such as rate
// limiting, timeouts, metrics collection, or tracing.
type Middleware func(ports.Evaluator) ports.Evaluator

// Chain composes middleware around a base evaluator. The first middleware
// in the list becomes the outermost wrapper.
func Chain(base ports.Evaluator, middleware ...Middleware) ports.Evaluator {
	eval := base
	for i := len(middleware) - 1; i >= 0; i-- {
		eval = middleware[i](eval)
	}
	return eval
}
