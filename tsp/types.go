// SPDX-License-Identifier: MIT

package tsp

import "errors"

var (
	// ErrDimensionMismatch is returned on shape violations: nil or empty inputs,
	// tours of the wrong length, indices outside [0..n-1].
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNonSquare is returned when a distance matrix is not n×n.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrNegativeDistance is returned when a distance entry is < 0.
	ErrNegativeDistance = errors.New("tsp: negative distance")

	// ErrNonFiniteDistance is returned when a distance entry is NaN or ±Inf.
	ErrNonFiniteDistance = errors.New("tsp: non-finite distance")

	// ErrTourNotPermutation is returned when a tour repeats or omits a city.
	ErrTourNotPermutation = errors.New("tsp: tour is not a permutation")

	// ErrStartOutOfRange is returned when a start vertex is outside [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrNoSamples is returned when RandomBaseline is asked for zero samples.
	ErrNoSamples = errors.New("tsp: sample count must be positive")
)

// Baseline summarizes a batch of uniformly random tours on one instance.
type Baseline struct {
	// Best is the shortest sampled tour (open permutation).
	Best []int

	// BestLength is the closed-cycle length of Best.
	BestLength float64

	// Lengths holds every sampled length in sampling order.
	Lengths []float64

	// Mean and StdDev describe Lengths (sample standard deviation; 0 for one sample).
	Mean   float64
	StdDev float64
}
