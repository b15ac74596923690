package scoring

import (
	"context"

	"github.com/qubolab/qaoa-result/internal/domain"
	"github.com/qubolab/qaoa-result/internal/ports"
)

// Compile-time verification that QUBO implements the Evaluator interface.
var _ ports.Evaluator = (*QUBO)(nil)

// QUBO evaluates candidates against a quadratic unconstrained binary
// optimization objective: x^T Q x + offset. It is immutable after
// construction and safe for concurrent use.
type QUBO struct {
	matrix [][]float64
	offset float64
}

// NewQUBO creates a QUBO evaluator from a square coefficient matrix and a
// constant offset. The matrix is copied, so the caller keeps ownership of
// its buffer. Returns a ShapeError if the matrix is empty or not square.
func NewQUBO(matrix [][]float64, offset float64) (*QUBO, error) {
	n := len(matrix)
	if n == 0 {
		return nil, &domain.ShapeError{Name: "matrix", Want: -1, Got: -1}
	}
	copied := make([][]float64, n)
	for i, row := range matrix {
		if len(row) != n {
			return nil, domain.NewShapeError("matrix row", n, len(row))
		}
		copied[i] = make([]float64, n)
		copy(copied[i], row)
	}
	return &QUBO{matrix: copied, offset: offset}, nil
}

// Size returns the number of binary variables.
func (q *QUBO) Size() int { return len(q.matrix) }

// Offset returns the constant term of the objective.
func (q *QUBO) Offset() float64 { return q.offset }

// Evaluate implements the Evaluator interface. It returns a ShapeError if
// the candidate width does not match the matrix size.
func (q *QUBO) Evaluate(_ context.Context, bv domain.BitVector) (float64, error) {
	n := len(q.matrix)
	if bv.Len() != n {
		return 0, domain.NewShapeError("bitvector", n, bv.Len())
	}

	energy := q.offset
	for i := 0; i < n; i++ {
		if bv.Bit(i) == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			if bv.Bit(j) == 1 {
				energy += q.matrix[i][j]
			}
		}
	}
	return energy, nil
}
