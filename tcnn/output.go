// SPDX-License-Identifier: MIT

package tcnn

import "math"

// Output is the neuron transfer function ½(1 + tanh(x/eps)).
//
// Properties: strictly increasing in x, Output(0, eps) = 0.5, values in (0,1)
// (float64 rounds to exactly 0 or 1 once |x/eps| exceeds ~19). As eps → 0 it
// approaches a unit step at 0.
func Output(x, eps float64) float64 {
	return 0.5 * (1 + math.Tanh(x/eps))
}
