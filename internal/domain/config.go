package domain

// BackendConfig identifies the quantum backend used for a run. It is an
// immutable value struct with enumerated fields rather than an open-ended
// record; unrecognized settings are rejected at the configuration boundary.
type BackendConfig struct {
	// Name is the backend identifier, e.g. "default.qubit".
	Name string `yaml:"name" json:"name" validate:"required"`

	// Version is the backend version, if the provider reports one.
	Version string `yaml:"version" json:"version,omitempty"`

	// Shots is the number of circuit samples taken per evaluation.
	// Zero means the backend default.
	Shots int `yaml:"shots" json:"shots,omitempty" validate:"min=0"`
}

// OptimizerConfig identifies the classical optimizer used to train the
// circuit parameters.
type OptimizerConfig struct {
	// Name is the optimizer identifier, e.g. "adagrad".
	Name string `yaml:"name" json:"name" validate:"required"`

	// MaxIterations bounds the optimization loop. Zero means the
	// optimizer default.
	MaxIterations int `yaml:"max_iterations" json:"max_iterations,omitempty" validate:"min=0"`

	// Tolerance is the convergence tolerance. Zero means the optimizer
	// default.
	Tolerance float64 `yaml:"tolerance" json:"tolerance,omitempty" validate:"min=0"`
}

// TraceData carries auxiliary optimizer-run metadata alongside a Result.
// It is opaque to candidate selection: nothing in it influences which
// candidate wins.
type TraceData struct {
	// InitBeta holds the initial mixer-layer parameters, one per layer.
	InitBeta []float64 `yaml:"init_beta" json:"init_beta"`

	// InitGamma holds the initial cost-layer parameters, one per layer.
	InitGamma []float64 `yaml:"init_gamma" json:"init_gamma"`

	// FinalBeta holds the trained mixer-layer parameters, one per layer.
	FinalBeta []float64 `yaml:"final_beta" json:"final_beta"`

	// FinalGamma holds the trained cost-layer parameters, one per layer.
	FinalGamma []float64 `yaml:"final_gamma" json:"final_gamma"`

	// ExpvalHistory holds the expectation value of the cost function at
	// each optimization iteration, starting at iteration 0.
	ExpvalHistory []float64 `yaml:"expval_history" json:"expval_history"`

	// TrainingBackend is the backend the parameters were trained on.
	TrainingBackend BackendConfig `yaml:"training_backend" json:"training_backend"`

	// EvaluationBackend is the backend the final circuit was sampled on.
	EvaluationBackend BackendConfig `yaml:"evaluation_backend" json:"evaluation_backend"`

	// Optimizer is the classical optimizer used for training.
	Optimizer OptimizerConfig `yaml:"optimizer" json:"optimizer"`
}
