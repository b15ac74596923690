package domain

import (
	"fmt"
	"math"
)

// MaxHistogramBits bounds the candidate width for which a full-domain shot
// histogram can be materialized. The histogram allocates 2^n buckets.
const MaxHistogramBits = 20

// Result is the immutable outcome of one QAOA run: the best sampled
// candidate, its energy, the full frequency distribution, and the
// optimizer trace. A Result is created exactly once per run and never
// mutated afterward; all array-like inputs are copied at construction so
// later mutation of caller-owned buffers cannot reach it.
type Result struct {
	best   BitVector
	energy float64
	freq   *Freq
	trace  TraceData
}

// NewResult validates and packages a completed run.
//
// Validation is eager: a nil or empty frequency table is rejected, every
// table entry must have the same bit width as the best candidate, all trace
// vectors must be present and finite, and the final beta and gamma vectors
// must have equal length (one value per circuit layer). Failures surface as
// ShapeError or a wrapped sentinel; no partially constructed Result is ever
// returned.
func NewResult(best BitVector, energy float64, freq *Freq, trace TraceData) (*Result, error) {
	if freq == nil || freq.Len() == 0 {
		return nil, fmt.Errorf("%w: frequency table has no entries", ErrEmptyResult)
	}
	if math.IsNaN(energy) || math.IsInf(energy, 0) {
		return nil, fmt.Errorf("%w: best energy = %f", ErrNonFiniteValue, energy)
	}
	for i := 0; i < freq.Len(); i++ {
		if got := freq.At(i).BitVector.Len(); got != best.Len() {
			return nil, NewShapeError(fmt.Sprintf("freq[%d]", i), best.Len(), got)
		}
	}

	copied := TraceData{
		TrainingBackend:   trace.TrainingBackend,
		EvaluationBackend: trace.EvaluationBackend,
		Optimizer:         trace.Optimizer,
	}
	var err error
	if copied.InitBeta, err = CheckVector("init_beta", trace.InitBeta); err != nil {
		return nil, err
	}
	if copied.InitGamma, err = CheckVector("init_gamma", trace.InitGamma); err != nil {
		return nil, err
	}
	if copied.FinalBeta, err = CheckVector("final_beta", trace.FinalBeta); err != nil {
		return nil, err
	}
	if copied.FinalGamma, err = CheckVector("final_gamma", trace.FinalGamma); err != nil {
		return nil, err
	}
	if copied.ExpvalHistory, err = CheckVector("expval_history", trace.ExpvalHistory); err != nil {
		return nil, err
	}
	if err = CheckSameLen("final_beta", copied.FinalBeta, "final_gamma", copied.FinalGamma); err != nil {
		return nil, err
	}

	return &Result{best: best, energy: energy, freq: freq, trace: copied}, nil
}

// BestBitVector returns the winning candidate.
func (r *Result) BestBitVector() BitVector { return r.best }

// BestEnergy returns the objective value of the winning candidate.
func (r *Result) BestEnergy() float64 { return r.energy }

// Freq returns the full frequency distribution.
// The table is immutable, so the returned pointer can be shared safely.
func (r *Result) Freq() *Freq { return r.freq }

// TrainingBackend returns the backend the parameters were trained on.
func (r *Result) TrainingBackend() BackendConfig { return r.trace.TrainingBackend }

// EvaluationBackend returns the backend the final circuit was sampled on.
func (r *Result) EvaluationBackend() BackendConfig { return r.trace.EvaluationBackend }

// Optimizer returns the classical optimizer used for training.
func (r *Result) Optimizer() OptimizerConfig { return r.trace.Optimizer }

// InitBeta returns a copy of the initial mixer-layer parameters.
func (r *Result) InitBeta() []float64 { return copyFloats(r.trace.InitBeta) }

// InitGamma returns a copy of the initial cost-layer parameters.
func (r *Result) InitGamma() []float64 { return copyFloats(r.trace.InitGamma) }

// Depth returns the circuit layer count, inferred from the trained
// parameter vectors.
func (r *Result) Depth() int { return len(r.trace.FinalBeta) }

// ExpvalHistory returns a copy of the cost expectation value per
// optimization iteration, ordered from iteration 0.
func (r *Result) ExpvalHistory() []float64 { return copyFloats(r.trace.ExpvalHistory) }

// Parameters returns copies of the trained mixer (beta) and cost (gamma)
// parameter vectors, indexed by layer depth. Both have length Depth().
func (r *Result) Parameters() (beta, gamma []float64) {
	return copyFloats(r.trace.FinalBeta), copyFloats(r.trace.FinalGamma)
}

// Histogram is a full-domain shot histogram: one bucket per possible
// bitstring of the candidate width, in binary-counting order.
type Histogram struct {
	// Labels holds every possible bitstring from 000...0 to 111...1.
	Labels []string

	// Heights holds the summed occurrence counts per bucket. Buckets for
	// unobserved candidates are zero.
	Heights []int
}

// ShotsHistogram materializes the full-domain histogram of the final
// circuit output. For an n-bit candidate space it allocates 2^n buckets,
// so n is capped at MaxHistogramBits. Each entry contributes its
// occurrence count to the bucket of its unsigned-integer decoding
// (most significant bit first); the sum of all heights equals the total
// shot count of the table.
func (r *Result) ShotsHistogram() (*Histogram, error) {
	n := r.best.Len()
	if n > MaxHistogramBits {
		return nil, fmt.Errorf("%w: %d bits exceeds histogram limit of %d",
			ErrBitVectorTooLong, n, MaxHistogramBits)
	}

	size := 1 << n
	h := &Histogram{
		Labels:  make([]string, size),
		Heights: make([]int, size),
	}
	for i := 0; i < size; i++ {
		h.Labels[i] = fmt.Sprintf("%0*b", n, i)
	}
	for e := range r.freq.All() {
		// Entry width equals the best candidate's width, checked at
		// construction, so decoding cannot fail here.
		idx, err := e.BitVector.Uint()
		if err != nil {
			return nil, err
		}
		h.Heights[idx] += e.Occurrences
	}
	return h, nil
}

func copyFloats(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
