// Package aggregate turns raw QAOA sampling output into a validated,
// immutable result: the best candidate under a deterministic tie-break
// rule, the full frequency distribution, and the optimizer trace.
package aggregate

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/qubolab/qaoa-result/internal/domain"
	"github.com/qubolab/qaoa-result/internal/ports"
)

// Common errors returned by ResultBuilder.
var (
	// ErrEmptyBuilderName is returned when the builder name is empty.
	ErrEmptyBuilderName = errors.New("builder name cannot be empty")

	// ErrNilEvaluator is returned when no evaluator is supplied.
	ErrNilEvaluator = errors.New("evaluator cannot be nil")
)

// Package-level validator instance for configuration validation.
var validate = validator.New()

// RawSamples maps distinct bitstring keys to positive occurrence counts,
// as produced by sampling the final QAOA circuit.
type RawSamples map[string]int

// Duration is a time.Duration that unmarshals from YAML strings like "5s"
// as well as integer nanosecond counts.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var n int64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("invalid duration: %s", value.Value)
	}
	*d = Duration(n)
	return nil
}

// BuilderConfig defines the configuration parameters for the ResultBuilder.
// All fields are validated during builder creation and parameter
// unmarshaling.
type BuilderConfig struct {
	// Parallelism bounds the number of concurrent objective evaluations.
	// Candidate scoring is independent per candidate, so evaluations run
	// concurrently up to this limit; table order is unaffected.
	Parallelism int `yaml:"parallelism" json:"parallelism" validate:"min=1"`

	// EvalTimeout bounds the whole scoring phase of one build.
	// Zero disables the timeout.
	EvalTimeout Duration `yaml:"eval_timeout" json:"eval_timeout" validate:"min=0"`
}

// ResultBuilder consumes a raw sampling map and an objective evaluator and
// produces a domain.Result. The builder is stateless and safe for
// concurrent use; each Build call scores every distinct candidate exactly
// once.
type ResultBuilder struct {
	// name is the unique identifier for this builder instance.
	name string
	// config contains the validated configuration parameters.
	config BuilderConfig
}

// NewResultBuilder creates a ResultBuilder with the specified
// configuration. Returns an error if configuration validation fails.
func NewResultBuilder(name string, config BuilderConfig) (*ResultBuilder, error) {
	if name == "" {
		return nil, ErrEmptyBuilderName
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &ResultBuilder{
		name:   name,
		config: config,
	}, nil
}

// Name returns the unique identifier for this builder instance.
func (rb *ResultBuilder) Name() string { return rb.name }

// Build constructs a Result from raw samples, an objective evaluator, and
// the optimizer trace.
//
// Candidates are processed in sorted key order, which for fixed-length
// bitstrings equals binary-counting order and makes builds deterministic.
// The winning entry is found in a single left-to-right scan: an entry
// replaces the running best when its energy is strictly lower, or when the
// energies are exactly equal and its occurrence count is strictly greater.
// Entries tied on both keys keep the first-encountered one.
//
// Build fails with domain.ErrEmptyResult when samples is empty, with a
// domain.ShapeError when the bitstring keys do not share one fixed length,
// and with the evaluator's error when any evaluation fails. No partially
// constructed Result is ever returned.
func (rb *ResultBuilder) Build(
	ctx context.Context,
	samples RawSamples,
	eval ports.Evaluator,
	trace domain.TraceData,
) (*domain.Result, error) {
	if eval == nil {
		return nil, ErrNilEvaluator
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: no candidates to select from", domain.ErrEmptyResult)
	}

	keys := slices.Sorted(maps.Keys(samples))

	bitvectors := make([]domain.BitVector, len(keys))
	occurrences := make([]int, len(keys))
	for i, key := range keys {
		bv, err := domain.NewBitVector(key)
		if err != nil {
			return nil, fmt.Errorf("sample key %q: %w", key, err)
		}
		if i > 0 && bv.Len() != bitvectors[0].Len() {
			return nil, domain.NewShapeError(
				fmt.Sprintf("sample key %q", key), bitvectors[0].Len(), bv.Len())
		}
		if samples[key] <= 0 {
			return nil, fmt.Errorf("%w: sample key %q has count %d",
				domain.ErrInvalidOccurrences, key, samples[key])
		}
		bitvectors[i] = bv
		occurrences[i] = samples[key]
	}

	energies, err := rb.scoreAll(ctx, bitvectors, eval)
	if err != nil {
		return nil, err
	}

	freq, err := domain.NewFreq(bitvectors, energies, occurrences)
	if err != nil {
		return nil, err
	}

	best := freq.At(0)
	for entry := range freq.All() {
		if entry.Energy < best.Energy ||
			(entry.Energy == best.Energy && entry.Occurrences > best.Occurrences) {
			best = entry
		}
	}

	return domain.NewResult(best.BitVector, best.Energy, freq, trace)
}

// scoreAll evaluates every candidate exactly once, concurrently up to the
// configured parallelism. Results land at their candidate's index, so the
// output order matches the input order regardless of evaluation order.
func (rb *ResultBuilder) scoreAll(
	ctx context.Context,
	bitvectors []domain.BitVector,
	eval ports.Evaluator,
) ([]float64, error) {
	if rb.config.EvalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(rb.config.EvalTimeout))
		defer cancel()
	}

	energies := make([]float64, len(bitvectors))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(rb.config.Parallelism)
	for i, bv := range bitvectors {
		g.Go(func() error {
			energy, err := eval.Evaluate(ctx, bv)
			if err != nil {
				return fmt.Errorf("evaluating %s: %w", bv, err)
			}
			if math.IsNaN(energy) || math.IsInf(energy, 0) {
				return fmt.Errorf("%w: candidate %s scored %f",
					domain.ErrNonFiniteValue, bv, energy)
			}
			energies[i] = energy
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return energies, nil
}

// Validate checks if the builder is properly configured and ready for use.
// Returns nil if validation passes, or an error describing what is invalid.
func (rb *ResultBuilder) Validate() error {
	if err := validate.Struct(rb.config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	return nil
}

// UnmarshalParameters deserializes YAML configuration parameters into the
// builder's configuration struct with strict validation.
// Returns an error if YAML parsing fails or validation rejects the result.
func (rb *ResultBuilder) UnmarshalParameters(params yaml.Node) error {
	var config BuilderConfig

	if err := params.Decode(&config); err != nil {
		return fmt.Errorf("failed to decode parameters: %w", err)
	}

	if err := validate.Struct(config); err != nil {
		return fmt.Errorf("parameter validation failed: %w", err)
	}

	rb.config = config
	return nil
}

// DefaultBuilderConfig returns a BuilderConfig with sensible defaults.
func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{
		Parallelism: 4,
		EvalTimeout: 0,
	}
}

// CreateResultBuilder is a factory function that creates a ResultBuilder
// from a configuration map. This function is used for dynamic creation
// from loosely typed configuration sources.
func CreateResultBuilder(id string, config map[string]any) (*ResultBuilder, error) {
	// Start with default configuration.
	builderConfig := DefaultBuilderConfig()

	// Override with provided values.
	if parallelism, ok := config["parallelism"].(int); ok {
		builderConfig.Parallelism = parallelism
	}

	if timeout, ok := config["eval_timeout"]; ok {
		switch val := timeout.(type) {
		case time.Duration:
			builderConfig.EvalTimeout = Duration(val)
		case string:
			parsed, err := time.ParseDuration(val)
			if err != nil {
				return nil, fmt.Errorf("invalid eval_timeout: %w", err)
			}
			builderConfig.EvalTimeout = Duration(parsed)
		}
	}

	return NewResultBuilder(id, builderConfig)
}
