// SPDX-License-Identifier: MIT

// Package tsp is the distance-provider side of csatsp.
//
// It holds everything about a Travelling Salesman instance that does not depend on
// how a tour is searched for:
//
//   - ValidateDistances: square, finite, non-negative distance matrices.
//   - Euclidean: build a symmetric instance from planar points.
//   - ValidatePermutation / MakeTourFromPermutation: tour structure.
//   - TourLength: closed-cycle length of a permutation on raw distances.
//   - NewRNG / DeriveRNG / Shuffle / Perm: deterministic randomness.
//   - RandomBaseline: best-of-k random permutations, the reference any
//     heuristic should beat.
//
// A tour here is an *open* permutation of 0..n-1: position k holds the city
// visited k-th, and the edge perm[n-1]→perm[0] closes the cycle implicitly.
// MakeTourFromPermutation converts it to the closed form [s, …, s].
//
// No logging and no panics on user input; failures are sentinel errors from types.go.
package tsp
