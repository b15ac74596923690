package scoring

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/qubolab/qaoa-result/internal/domain"
	"github.com/qubolab/qaoa-result/internal/ports"
)

// tracedEvaluator implements distributed tracing for evaluation
// observability. Each evaluation becomes a span with the candidate width
// and resulting energy as attributes.
type tracedEvaluator struct {
	next   ports.Evaluator
	tracer trace.Tracer
}

// TracingMiddleware creates middleware that adds OpenTelemetry tracing to
// evaluations. The serviceName identifies the tracer.
func TracingMiddleware(serviceName string) Middleware {
	tracer := otel.Tracer(serviceName)

	return func(next ports.Evaluator) ports.Evaluator {
		return &tracedEvaluator{
			next:   next,
			tracer: tracer,
		}
	}
}

// Evaluate executes the evaluation within a trace span.
func (t *tracedEvaluator) Evaluate(ctx context.Context, bv domain.BitVector) (float64, error) {
	ctx, span := t.tracer.Start(ctx, "scoring.Evaluate",
		trace.WithAttributes(
			attribute.Int("qubo.bits", bv.Len()),
		),
	)
	defer span.End()

	energy, err := t.next.Evaluate(ctx, bv)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return energy, err
	}

	span.SetAttributes(attribute.Float64("qubo.energy", energy))
	return energy, nil
}
