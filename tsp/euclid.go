// SPDX-License-Identifier: MIT

package tsp

import (
	"math"

	"github.com/katalvlaran/csatsp/matrix"
)

// Euclidean builds the symmetric n×n matrix of planar distances between points.
// The diagonal is exactly zero.
//
// Errors: ErrDimensionMismatch for an empty point set; ErrNonFiniteDistance when a
// coordinate is NaN/±Inf.
//
// Complexity: O(n²).
func Euclidean(points [][2]float64) (*matrix.Dense, error) {
	n := len(points)
	if n == 0 {
		return nil, ErrDimensionMismatch
	}
	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = math.Hypot(points[i][0]-points[j][0], points[i][1]-points[j][1])
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, ErrNonFiniteDistance
			}
			// Set cannot fail: indices are in range and w is finite.
			_ = d.Set(i, j, w)
			_ = d.Set(j, i, w)
		}
	}

	return d, nil
}

// CirclePoints places n points evenly on a circle of the given radius, starting at
// angle 0 and going counter-clockwise. The optimal tour is the identity order.
func CirclePoints(n int, radius float64) [][2]float64 {
	pts := make([][2]float64, n)
	var th float64
	for i := 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{radius * math.Cos(th), radius * math.Sin(th)}
	}

	return pts
}
