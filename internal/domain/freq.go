package domain

import (
	"fmt"
	"iter"
)

// FreqEntry is one row of a frequency distribution: a sampled candidate,
// its objective value, and how often it was observed.
type FreqEntry struct {
	// BitVector is the sampled candidate.
	BitVector BitVector

	// Energy is the objective value of the candidate. Lower is better.
	Energy float64

	// Occurrences is the number of times the candidate was observed.
	// It is always positive for a stored entry.
	Occurrences int
}

// Freq is an insertion-ordered frequency distribution over distinct sampled
// candidates. It is built once at construction time and immutable afterward.
// Freq does not deduplicate: entries are stored exactly as given, and the
// caller is responsible for supplying distinct candidates.
//
// An empty Freq is a valid terminal state signaling "no samples"; consumers
// that select a best entry require a non-empty table.
type Freq struct {
	entries []FreqEntry
}

// NewFreq builds a frequency distribution from three equal-length slices,
// one entry per index. It returns a ShapeError if the slices have unequal
// length and an error if any occurrence count is non-positive.
func NewFreq(bitvectors []BitVector, energies []float64, occurrences []int) (*Freq, error) {
	if len(energies) != len(bitvectors) {
		return nil, NewShapeError("energies", len(bitvectors), len(energies))
	}
	if len(occurrences) != len(bitvectors) {
		return nil, NewShapeError("occurrences", len(bitvectors), len(occurrences))
	}

	entries := make([]FreqEntry, len(bitvectors))
	for i, bv := range bitvectors {
		if occurrences[i] <= 0 {
			return nil, fmt.Errorf("%w: occurrences[%d] = %d", ErrInvalidOccurrences, i, occurrences[i])
		}
		entries[i] = FreqEntry{
			BitVector:   bv,
			Energy:      energies[i],
			Occurrences: occurrences[i],
		}
	}
	return &Freq{entries: entries}, nil
}

// Len returns the number of stored entries.
func (f *Freq) Len() int { return len(f.entries) }

// At returns the entry at index i in insertion order.
// It panics if i is out of range, matching slice semantics.
func (f *Freq) At(i int) FreqEntry { return f.entries[i] }

// All returns an iterator over the entries in insertion order.
// The sequence is finite and restartable: repeated iteration yields the
// same ordering every time.
func (f *Freq) All() iter.Seq[FreqEntry] {
	return func(yield func(FreqEntry) bool) {
		for _, e := range f.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// TotalShots returns the sum of all occurrence counts.
func (f *Freq) TotalShots() int {
	var total int
	for _, e := range f.entries {
		total += e.Occurrences
	}
	return total
}
