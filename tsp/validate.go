// SPDX-License-Identifier: MIT

// Package tsp - validation of distance matrices.
//
// Design principles:
//   - Deterministic, side-effect free.
//   - Returns sentinels from types.go; matrix-level sentinels are wrapped so that
//     errors.Is matches both (e.g. ErrNonSquare and matrix.ErrNonSquare).
//   - Symmetry is NOT required: the dynamics only assume it.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/csatsp/matrix"
)

// ValidateDistances verifies that dist can serve as a TSP distance matrix and
// returns its order n.
//
// Contract:
//   - dist non-nil and square with n ≥ 1,
//   - every entry finite and ≥ 0 (the diagonal is not required to be zero).
//
// Errors: ErrDimensionMismatch, ErrNonSquare, ErrNonFiniteDistance, ErrNegativeDistance.
//
// Complexity: O(n²).
func ValidateDistances(dist matrix.Matrix) (int, error) {
	if err := matrix.ValidateNotNil(dist); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
	}
	if err := matrix.ValidateSquare(dist); err != nil {
		return 0, fmt.Errorf("%w: %d×%d: %w", ErrNonSquare, dist.Rows(), dist.Cols(), err)
	}
	n := dist.Rows()
	if n <= 0 {
		return 0, ErrDimensionMismatch
	}

	var (
		i, j int
		w    float64
		err  error
	)
	for i = 0; i < n; i++ { // rows
		for j = 0; j < n; j++ { // cols
			if w, err = dist.At(i, j); err != nil {
				return 0, fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
			}
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return 0, fmt.Errorf("d[%d][%d]: %w", i, j, ErrNonFiniteDistance)
			}
			if w < 0 {
				return 0, fmt.Errorf("d[%d][%d]=%g: %w", i, j, w, ErrNegativeDistance)
			}
		}
	}

	return n, nil
}
