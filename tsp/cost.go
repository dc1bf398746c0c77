// SPDX-License-Identifier: MIT

// Package tsp - cost utilities.
//
// Design:
//   - Fast path for *matrix.Dense (flat slice) and generic path for any matrix.Matrix.
//   - Strict sentinels from types.go on any invalid input.
//   - Stable summation: rounded to 1e-9 to avoid cross-platform FP noise.
package tsp

import (
	"math"

	"github.com/katalvlaran/csatsp/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourLength returns the length of the closed cycle visiting perm in order:
//
//	Σ_k dist[perm[k]][perm[(k+1) mod n]]
//
// Contract:
//   - dist is a valid distance matrix (see ValidateDistances) of order n.
//   - perm is a permutation of 0..n-1 (open form, no repeated start).
//
// Errors: those of ValidateDistances, ErrTourNotPermutation, ErrDimensionMismatch.
//
// Complexity: O(n²) validation + O(n) summation.
func TourLength(dist matrix.Matrix, perm []int) (float64, error) {
	n, err := ValidateDistances(dist)
	if err != nil {
		return 0, err
	}
	if err = ValidatePermutation(perm, n); err != nil {
		return 0, err
	}

	var (
		sum  float64
		k    int
		u, v int
		w    float64
	)
	if d, ok := dist.(*matrix.Dense); ok {
		data := d.RawData()
		for k = 0; k < n; k++ {
			u, v = perm[k], perm[(k+1)%n]
			sum += data[u*n+v]
		}

		return round1e9(sum), nil
	}

	for k = 0; k < n; k++ {
		u, v = perm[k], perm[(k+1)%n]
		if w, err = dist.At(u, v); err != nil {
			return 0, ErrDimensionMismatch
		}
		sum += w
	}

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
