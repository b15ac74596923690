// Package testutils provides deterministic data generators for tests and
// benchmarks.
package testutils

import (
	"fmt"
	"math/rand"
)

// GenerateRawSamples produces a reproducible raw sample map over numBits
// candidates: distinct bitstring keys with positive occurrence counts.
// The same seed always yields the same map. It panics if distinct exceeds
// the candidate space, which indicates a broken test setup.
func GenerateRawSamples(numBits, distinct int, seed int64) map[string]int {
	space := 1 << numBits
	if distinct > space {
		panic(fmt.Sprintf("cannot draw %d distinct candidates from a %d-bit space", distinct, numBits))
	}

	rng := rand.New(rand.NewSource(seed))
	samples := make(map[string]int, distinct)
	for len(samples) < distinct {
		key := fmt.Sprintf("%0*b", numBits, rng.Intn(space))
		if _, ok := samples[key]; ok {
			continue
		}
		samples[key] = 1 + rng.Intn(100)
	}
	return samples
}

// TotalShots sums the occurrence counts of a raw sample map.
func TotalShots(samples map[string]int) int {
	var total int
	for _, n := range samples {
		total += n
	}
	return total
}
