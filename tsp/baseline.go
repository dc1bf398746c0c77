// SPDX-License-Identifier: MIT

package tsp

import (
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/csatsp/matrix"
)

// RandomBaseline samples `samples` uniformly random permutations with rng and
// reports the best one together with the distribution of lengths.
// Any tour produced by a heuristic should be compared against this baseline.
//
// Errors: ErrNoSamples when samples ≤ 0; distance validation errors.
//
// Determinism: identical (dist, samples, rng state) ⇒ identical Baseline.
//
// Complexity: O(samples·n) after an O(n²) validation.
func RandomBaseline(dist matrix.Matrix, samples int, rng *rand.Rand) (Baseline, error) {
	if samples <= 0 {
		return Baseline{}, ErrNoSamples
	}
	n, err := ValidateDistances(dist)
	if err != nil {
		return Baseline{}, err
	}

	var (
		b    = Baseline{Lengths: make([]float64, samples)}
		perm []int
		l    float64
	)
	for s := 0; s < samples; s++ {
		if perm, err = Perm(n, rng); err != nil {
			return Baseline{}, err
		}
		if l, err = TourLength(dist, perm); err != nil {
			return Baseline{}, err
		}
		b.Lengths[s] = l
		if b.Best == nil || l < b.BestLength { // first minimum in sampling order wins
			b.Best, b.BestLength = perm, l
		}
	}

	b.Mean = stat.Mean(b.Lengths, nil)
	if samples > 1 {
		b.StdDev = stat.StdDev(b.Lengths, nil)
	}
	return b, nil
}
