package tcnn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csatsp/tcnn"
)

func TestOutput_Midpoint(t *testing.T) {
	for _, eps := range []float64{0.004, 0.1, 1, 10} {
		require.Equal(t, 0.5, tcnn.Output(0, eps))
	}
}

func TestOutput_BoundedAndMonotone(t *testing.T) {
	const eps = 0.05
	prev := -1.0
	for x := -1.0; x <= 1.0; x += 0.01 {
		y := tcnn.Output(x, eps)
		require.GreaterOrEqual(t, y, 0.0)
		require.LessOrEqual(t, y, 1.0)
		require.GreaterOrEqual(t, y, prev, "x=%g", x)
		prev = y
	}
	// Strict growth where tanh is not saturated.
	require.Less(t, tcnn.Output(-0.01, eps), tcnn.Output(0.01, eps))
}

func TestOutput_SaturatesAtDefaultEpsilon(t *testing.T) {
	require.Equal(t, 1.0, tcnn.Output(1, tcnn.DefaultEpsilon))
	require.Equal(t, 0.0, tcnn.Output(-1, tcnn.DefaultEpsilon))
	require.InDelta(t, 0.5*(1+math.Tanh(0.5)), tcnn.Output(0.002, tcnn.DefaultEpsilon), epsTiny)
}
