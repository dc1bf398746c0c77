// Package tcnn_test holds shared fixtures for the network tests.
package tcnn_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csatsp/matrix"
	"github.com/katalvlaran/csatsp/tcnn"
	"github.com/katalvlaran/csatsp/tsp"
)

const (
	seedDet = int64(42)
	epsTiny = 1e-12
)

// line4 places four cities at 0,1,2,3 on a line; the identity tour has length 6.
var line4 = [][]float64{
	{0, 1, 2, 3},
	{1, 0, 1, 2},
	{2, 1, 0, 1},
	{3, 2, 1, 0},
}

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return d
}

// circle returns the Euclidean distances of n points on a circle of radius 10.
func circle(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	d, err := tsp.Euclidean(tsp.CirclePoints(n, 10))
	require.NoError(t, err)

	return d
}

// fill returns an n×n matrix with on at (perm[k], k) and off elsewhere.
func fill(t *testing.T, n int, perm []int, on, off float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			require.NoError(t, m.Set(i, k, off))
		}
	}
	for k, city := range perm {
		require.NoError(t, m.Set(city, k, on))
	}

	return m
}

func newNet(t *testing.T, dist matrix.Matrix, opts ...tcnn.Option) *tcnn.Network {
	t.Helper()
	nw, err := tcnn.New(dist, tcnn.DefaultConstants(), opts...)
	require.NoError(t, err)

	return nw
}
