// SPDX-License-Identifier: MIT

package tcnn

import (
	"fmt"
	"math"
)

// Default constants, taken from the reference parameterization of the model.
const (
	DefaultK       = 0.9   // damping of the nerve membrane
	DefaultAlpha   = 0.015 // input scaling
	DefaultBeta    = 0.01  // self-feedback decay per sweep
	DefaultZ0      = 0.1   // initial self-feedback
	DefaultI0      = 0.5   // input bias
	DefaultEpsilon = 0.004 // output steepness
	DefaultW1      = 1.0   // row/column validity weight
	DefaultW2      = 1.0   // tour optimality (adjacency) weight
)

// Constants are the fixed parameters of a Network.
type Constants struct {
	// K damps the retained activation, in (0,1).
	K float64
	// Alpha scales the neuron inputs, > 0.
	Alpha float64
	// Beta is the self-feedback decay factor, in (0,1): z ← z·(1−Beta) per sweep.
	Beta float64
	// Z0 is the initial self-feedback ("temperature"), > 0.
	Z0 float64
	// I0 is the input bias, any finite real.
	I0 float64
	// Epsilon is the output-function steepness, > 0. Smaller ⇒ closer to a step.
	Epsilon float64
	// W1 weights the one-city-per-position constraint, ≥ 0.
	W1 float64
	// W2 weights the tour-length term, ≥ 0.
	W2 float64
}

// DefaultConstants returns the reference parameterization.
func DefaultConstants() Constants {
	return Constants{
		K:       DefaultK,
		Alpha:   DefaultAlpha,
		Beta:    DefaultBeta,
		Z0:      DefaultZ0,
		I0:      DefaultI0,
		Epsilon: DefaultEpsilon,
		W1:      DefaultW1,
		W2:      DefaultW2,
	}
}

// Validate checks every field against its documented range.
// The first violation is returned as ErrInvalidConstants wrapped with the field.
func (c Constants) Validate() error {
	checks := []struct {
		name string
		v    float64
		ok   bool
	}{
		{"K", c.K, c.K > 0 && c.K < 1},
		{"Alpha", c.Alpha, c.Alpha > 0},
		{"Beta", c.Beta, c.Beta > 0 && c.Beta < 1},
		{"Z0", c.Z0, c.Z0 > 0},
		{"I0", c.I0, true},
		{"Epsilon", c.Epsilon, c.Epsilon > 0},
		{"W1", c.W1, c.W1 >= 0},
		{"W2", c.W2, c.W2 >= 0},
	}
	for _, ch := range checks {
		if math.IsNaN(ch.v) || math.IsInf(ch.v, 0) || !ch.ok {
			return fmt.Errorf("%s=%g: %w", ch.name, ch.v, ErrInvalidConstants)
		}
	}

	return nil
}
