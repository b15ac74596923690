package domain

import (
	"errors"
	"fmt"
)

// Common domain errors that can occur while aggregating sampling results.
var (
	// ErrEmptyResult indicates that the raw sample map was empty, so no
	// best candidate can be determined.
	ErrEmptyResult = errors.New("raw samples are empty")

	// ErrInvalidBitstring indicates that a bitstring contains characters
	// other than '0' and '1', or is empty.
	ErrInvalidBitstring = errors.New("invalid bitstring")

	// ErrBitVectorTooLong indicates that a bit vector exceeds the width
	// that can be decoded into an unsigned integer.
	ErrBitVectorTooLong = errors.New("bit vector too long")

	// ErrInvalidOccurrences indicates a non-positive occurrence count.
	ErrInvalidOccurrences = errors.New("occurrence count must be positive")

	// ErrNonFiniteValue indicates a NaN or infinite value in a numeric
	// vector, such as an energy or parameter entry.
	ErrNonFiniteValue = errors.New("value must be finite")
)

// ShapeError reports an array-like input that violates its required
// dimensionality or length-equality constraint. It is raised eagerly at
// construction time, never deferred to view time.
type ShapeError struct {
	// Name identifies the offending argument.
	Name string

	// Want is the required length, or -1 when only presence is required.
	Want int

	// Got is the observed length, or -1 when the input was absent.
	Got int
}

// Error implements the error interface for ShapeError.
func (e *ShapeError) Error() string {
	if e.Got < 0 {
		return fmt.Sprintf("shape error: %s must be a one-dimensional vector", e.Name)
	}
	return fmt.Sprintf("shape error: %s has length %d, want %d", e.Name, e.Got, e.Want)
}

// NewShapeError creates a ShapeError for a length mismatch.
func NewShapeError(name string, want, got int) *ShapeError {
	return &ShapeError{Name: name, Want: want, Got: got}
}
