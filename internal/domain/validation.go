package domain

import (
	"fmt"
	"math"
)

// CheckVector validates that v is a usable one-dimensional numeric vector:
// non-nil and containing only finite values. It returns a defensive copy so
// later mutation of the caller-owned buffer cannot reach the owner of the
// returned slice. An empty, non-nil vector is valid.
func CheckVector(name string, v []float64) ([]float64, error) {
	if v == nil {
		return nil, &ShapeError{Name: name, Want: -1, Got: -1}
	}
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: %s[%d] = %f", ErrNonFiniteValue, name, i, x)
		}
	}
	out := make([]float64, len(v))
	copy(out, v)
	return out, nil
}

// CheckSameLen validates that two vectors already accepted by CheckVector
// have equal length, returning a ShapeError naming the second vector
// otherwise.
func CheckSameLen(nameA string, a []float64, nameB string, b []float64) error {
	if len(a) != len(b) {
		return &ShapeError{Name: nameA + "/" + nameB, Want: len(a), Got: len(b)}
	}
	return nil
}
