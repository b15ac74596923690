package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qubolab/qaoa-result/internal/domain"
)

func TestLoadRunConfig(t *testing.T) {
	config, err := LoadRunConfig("testdata/run.yaml")
	require.NoError(t, err)

	assert.Len(t, config.Samples, 4)
	assert.Equal(t, 610, config.Samples["01"])
	assert.Equal(t, [][]float64{{1, 2}, {0, -3}}, config.QUBO.Matrix)
	assert.Equal(t, "adagrad", config.Trace.Optimizer.Name)
	require.NotNil(t, config.Builder)
	assert.Equal(t, 2, config.Builder.Parallelism)
}

func TestLoadRunConfig_MissingFile(t *testing.T) {
	_, err := LoadRunConfig("testdata/does_not_exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read run config")
}

func TestParseRunConfig(t *testing.T) {
	tests := []struct {
		name          string
		yamlData      string
		expectedError string
	}{
		{
			name: "accepts minimal config",
			yamlData: `
samples: {"0": 3, "1": 7}
qubo:
  matrix: [[-1]]
trace:
  init_beta: [0.1]
  init_gamma: [0.1]
  final_beta: [0.5]
  final_gamma: [0.6]
  expval_history: [1.0, 0.2]
  training_backend: {name: default.qubit}
  evaluation_backend: {name: default.qubit}
  optimizer: {name: adagrad}
`,
		},
		{
			name: "rejects unknown field",
			yamlData: `
samples: {"0": 3}
qubo:
  matrix: [[-1]]
  rows: 1
`,
			expectedError: "failed to parse YAML",
		},
		{
			name:          "rejects missing samples",
			yamlData:      "qubo:\n  matrix: [[-1]]",
			expectedError: "validation failed",
		},
		{
			name: "rejects missing backend name",
			yamlData: `
samples: {"0": 3}
qubo:
  matrix: [[-1]]
trace:
  init_beta: [0.1]
  init_gamma: [0.1]
  final_beta: [0.5]
  final_gamma: [0.6]
  expval_history: [1.0]
  training_backend: {shots: 10}
  evaluation_backend: {name: default.qubit}
  optimizer: {name: adagrad}
`,
			expectedError: "validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := ParseRunConfig([]byte(tt.yamlData))

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, config)
		})
	}
}

func TestBuildResult(t *testing.T) {
	config, err := LoadRunConfig("testdata/run.yaml")
	require.NoError(t, err)

	result, err := BuildResult(context.Background(), config)
	require.NoError(t, err)

	// Q = [[1, 2], [0, -3]]: E(00)=0, E(01)=-3, E(10)=1, E(11)=0.
	assert.Equal(t, "01", result.BestBitVector().String())
	assert.Equal(t, -3.0, result.BestEnergy())
	assert.Equal(t, 4, result.Freq().Len())
	assert.Equal(t, 1024, result.Freq().TotalShots())
	assert.Equal(t, "default.qubit", result.EvaluationBackend().Name)
}

func TestBuildResult_InvalidQUBO(t *testing.T) {
	config := &RunConfig{
		Samples: map[string]int{"00": 1},
		QUBO:    QUBOConfig{Matrix: [][]float64{{1, 2}}},
	}

	_, err := BuildResult(context.Background(), config)
	require.Error(t, err)

	var shapeErr *domain.ShapeError
	assert.ErrorAs(t, err, &shapeErr)
}
