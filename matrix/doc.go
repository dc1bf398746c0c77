// SPDX-License-Identifier: MIT

// Package matrix provides the dense float64 storage used by csatsp.
//
// What & Why:
//
//	Distance matrices, neuron activations and neuron outputs are all n×n grids of
//	float64. The Matrix interface gives a bounds-checked, error-returning surface for
//	callers; *Dense is the concrete row-major implementation whose flat backing slice
//	is exposed (RawData) to hot kernels that must not pay a bounds check per read.
//
// Contents:
//   - Matrix interface and *Dense (NewDense, NewDenseFromRows, At/Set/Clone/Apply).
//   - Sentinel errors (errors.go) matched with errors.Is.
//   - Central validators (ValidateNotNil, ValidateSquare, ValidateFinite, ...).
//   - Kernels: Scale, Transpose, MatVec, RowSums, ColSums, Max.
//
// Complexity:
//
//	Rows/Cols/At/Set are O(1); Clone and every kernel are O(r*c).
package matrix
