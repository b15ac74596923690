// Package application wires configuration, scoring, and aggregation into a
// runnable pipeline. It owns the YAML boundary: run configurations are
// decoded strictly, validated eagerly, and only then handed to the
// infrastructure layer.
package application

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/qubolab/qaoa-result/infrastructure/aggregate"
	"github.com/qubolab/qaoa-result/infrastructure/scoring"
	"github.com/qubolab/qaoa-result/internal/domain"
)

// Package-level validator instance for configuration validation.
var validate = validator.New()

// QUBOConfig describes the objective matrix of a run.
type QUBOConfig struct {
	// Matrix is the square QUBO coefficient matrix.
	Matrix [][]float64 `yaml:"matrix" validate:"required,min=1"`

	// Offset is the constant term of the objective.
	Offset float64 `yaml:"offset"`
}

// RunConfig is the complete description of one finished QAOA run: the raw
// samples, the objective, the optimizer trace, and aggregation settings.
type RunConfig struct {
	// Samples maps sampled bitstrings to their occurrence counts.
	Samples map[string]int `yaml:"samples" validate:"required,min=1"`

	// QUBO is the objective the candidates are scored against.
	QUBO QUBOConfig `yaml:"qubo"`

	// Trace carries the optimizer-run metadata for the result.
	Trace domain.TraceData `yaml:"trace"`

	// Builder configures the aggregation step. When omitted, defaults
	// are applied at build time.
	Builder *aggregate.BuilderConfig `yaml:"builder"`
}

// LoadRunConfig reads and parses a run configuration from a YAML file.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read run config %s: %w", path, err)
	}
	config, err := ParseRunConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid run config %s: %w", path, err)
	}
	return config, nil
}

// ParseRunConfig parses a run configuration from YAML data. Decoding is
// strict: unknown fields are rejected rather than silently ignored, and
// the decoded configuration is validated before being returned.
func ParseRunConfig(data []byte) (*RunConfig, error) {
	var config RunConfig

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Strict mode - fail on unknown fields.

	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validate.Struct(&config); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &config, nil
}

// BuildResult runs the full aggregation pipeline for a parsed
// configuration: it constructs the QUBO evaluator, wraps it in the given
// middleware, and builds the result from the configured samples and trace.
func BuildResult(
	ctx context.Context,
	config *RunConfig,
	middleware ...scoring.Middleware,
) (*domain.Result, error) {
	qubo, err := scoring.NewQUBO(config.QUBO.Matrix, config.QUBO.Offset)
	if err != nil {
		return nil, fmt.Errorf("invalid qubo: %w", err)
	}

	builderConfig := aggregate.DefaultBuilderConfig()
	if config.Builder != nil {
		builderConfig = *config.Builder
	}
	builder, err := aggregate.NewResultBuilder("run", builderConfig)
	if err != nil {
		return nil, err
	}

	eval := scoring.Chain(qubo, middleware...)
	return builder.Build(ctx, config.Samples, eval, config.Trace)
}
