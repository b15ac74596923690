// Package domain contains pure, dependency-free domain models and types
// for QAOA result aggregation.
package domain

import (
	"fmt"
	"strings"
)

// BitVector represents a fixed-length binary assignment, one feasible
// solution of a QUBO problem. A BitVector is immutable once constructed;
// equality and ordering are value-based.
type BitVector struct {
	// bits holds the validated binary string, most significant bit first.
	// It is unexported to maintain immutability guarantees.
	bits string
}

// NewBitVector parses a bitstring into a BitVector.
// Every character must be '0' or '1' and the string must be non-empty.
func NewBitVector(s string) (BitVector, error) {
	if s == "" {
		return BitVector{}, fmt.Errorf("%w: empty bitstring", ErrInvalidBitstring)
	}
	for i, c := range s {
		if c != '0' && c != '1' {
			return BitVector{}, fmt.Errorf("%w: character %q at index %d", ErrInvalidBitstring, c, i)
		}
	}
	return BitVector{bits: s}, nil
}

// MustBitVector is like NewBitVector but panics on invalid input.
// It is intended for tests and static literals.
func MustBitVector(s string) BitVector {
	bv, err := NewBitVector(s)
	if err != nil {
		panic(err)
	}
	return bv
}

// Len returns the number of bits.
func (bv BitVector) Len() int { return len(bv.bits) }

// Bit returns the bit at position i, counted from the most significant bit.
func (bv BitVector) Bit(i int) uint8 {
	if bv.bits[i] == '1' {
		return 1
	}
	return 0
}

// String returns the binary string representation, most significant bit first.
func (bv BitVector) String() string { return bv.bits }

// Uint decodes the bit vector as an unsigned integer, most significant
// bit first. Vectors longer than 64 bits cannot be decoded.
func (bv BitVector) Uint() (uint64, error) {
	if len(bv.bits) > 64 {
		return 0, fmt.Errorf("%w: %d bits", ErrBitVectorTooLong, len(bv.bits))
	}
	var v uint64
	for i := 0; i < len(bv.bits); i++ {
		v <<= 1
		if bv.bits[i] == '1' {
			v |= 1
		}
	}
	return v, nil
}

// Equal reports whether two bit vectors have identical length and bits.
func (bv BitVector) Equal(other BitVector) bool { return bv.bits == other.bits }

// Compare orders bit vectors first by length and then lexicographically,
// which for equal-length vectors coincides with binary-counting order.
// It returns -1, 0 or +1.
func (bv BitVector) Compare(other BitVector) int {
	if d := len(bv.bits) - len(other.bits); d != 0 {
		if d < 0 {
			return -1
		}
		return 1
	}
	return strings.Compare(bv.bits, other.bits)
}
