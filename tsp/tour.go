// SPDX-License-Identifier: MIT

// Package tsp - tour structure helpers (no distances involved).
package tsp

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
// A single O(n) boolean marker slice is allocated.
//
// Errors:
//   - ErrDimensionMismatch when n ≤ 0 or len(perm) != n.
//   - ErrTourNotPermutation when an element is out of range or repeated.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n || seen[v] {
			return ErrTourNotPermutation
		}
		seen[v] = true
	}

	return nil
}

// MakeTourFromPermutation builds a closed tour from a vertex permutation.
// Steps:
//  1. Validate that perm is a permutation of {0..n-1}.
//  2. Rotate so that start becomes position 0.
//  3. Return a new slice of length n+1 with the closing start at position n.
//
// Complexity: O(n) time, O(n) space.
func MakeTourFromPermutation(perm []int, n int, start int) ([]int, error) {
	if err := ValidatePermutation(perm, n); err != nil {
		return nil, err
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	var (
		i     int
		pivot int
	)
	for i = 0; i < n; i++ {
		if perm[i] == start {
			pivot = i
			break
		}
	}

	tour := make([]int, n+1)
	for i = 0; i < n; i++ {
		tour[i] = perm[(pivot+i)%n]
	}
	tour[n] = start

	return tour, nil
}
