// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"testing"

	"github.com/katalvlaran/csatsp/matrix"
	"github.com/stretchr/testify/require"
)

const (
	// seedDet is a deterministic seed for RNG-based helpers.
	seedDet = int64(42)

	// epsTiny is the absolute tolerance for floating-point length comparisons.
	epsTiny = 1e-9
)

// line4 is the 4-city instance on a line used across the packages' tests:
// cities at 0,1,2,3; identity tour length 1+1+1+3 = 6.
var line4 = [][]float64{
	{0, 1, 2, 3},
	{1, 0, 1, 2},
	{2, 1, 0, 1},
	{3, 2, 1, 0},
}

// mustDense builds a *matrix.Dense or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return d
}

// cycleLength recomputes a closed-tour length straight from [][]float64,
// independently of tsp.TourLength.
func cycleLength(rows [][]float64, perm []int) float64 {
	var sum float64
	for k := range perm {
		sum += rows[perm[k]][perm[(k+1)%len(perm)]]
	}

	return sum
}
