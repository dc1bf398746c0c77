// SPDX-License-Identifier: MIT

package tcnn

import (
	"fmt"

	"github.com/katalvlaran/csatsp/tsp"
)

// Tour decodes the outputs into an open tour: position k holds the unique city
// whose neuron is active in column k.
//
// Errors: ErrInvalidTour when ValidTour is false; no partial tour is returned.
//
// Complexity: O(n²).
func (nw *Network) Tour() ([]int, error) {
	if !nw.ValidTour() {
		return nil, fmt.Errorf("tcnn.Tour: %.3f valid: %w", nw.PercentValid(), ErrInvalidTour)
	}

	n, y := nw.n, nw.out.RawData()
	tour := make([]int, n)
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if nw.active(y[i*n+k]) {
				tour[k] = i
				break
			}
		}
	}

	return tour, nil
}

// TourLength returns the closed-cycle length of Tour in raw distance units,
// rounded to 1e-9 like every tsp.TourLength result.
//
// Errors: ErrInvalidTour when ValidTour is false.
func (nw *Network) TourLength() (float64, error) {
	tour, err := nw.Tour()
	if err != nil {
		return 0, err
	}

	return tsp.TourLength(nw.raw, tour)
}
