// SPDX-License-Identifier: MIT

package tcnn

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/csatsp/matrix"
	"github.com/katalvlaran/csatsp/tsp"
)

// neuron addresses unit (i,k): city i at tour position k.
type neuron struct {
	i, k int
}

// Network is one TCNN instance: distances, neuron state, self-feedback and the
// sweep order. It is exclusively owned by one goroutine for its whole life.
type Network struct {
	n      int
	consts Constants

	raw  *matrix.Dense // distances in original units (tour lengths)
	norm *matrix.Dense // raw / max(raw) (dynamics)

	act *matrix.Dense // internal activations x, unbounded
	out *matrix.Dense // outputs y = Output(x, ε); never written independently of act

	z    float64 // self-feedback, decays by (1−β) per sweep
	iter int     // completed sweeps

	order []neuron // sweep order, drawn once at construction

	rng                *rand.Rand
	activeThreshold    float64
	reshuffleEachSweep bool
	logger             *slog.Logger
}

// New builds a Network for the given distance matrix.
//
// Implementation:
//   - Stage 1: validate constants and distances (square, finite, non-negative).
//   - Stage 2: keep a private copy of the raw distances and a copy scaled by 1/max.
//     An all-zero matrix is kept as is.
//   - Stage 3: draw activations uniformly in [−1,1] (row-major), then the sweep order,
//     both from the network RNG; derive outputs.
//
// Errors:
//   - ErrInvalidConstants (wrapped).
//   - tsp.ErrNonSquare / matrix.ErrNonSquare for a non-square matrix, and the other
//     tsp.ValidateDistances sentinels. No Network is returned on error.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func New(dist matrix.Matrix, c Constants, opts ...Option) (*Network, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("tcnn.New: %w", err)
	}
	n, err := tsp.ValidateDistances(dist)
	if err != nil {
		return nil, fmt.Errorf("tcnn.New: %w", err)
	}
	o := gatherOptions(opts...)

	raw, err := denseCopy(dist, 1)
	if err != nil {
		return nil, fmt.Errorf("tcnn.New: %w", err)
	}
	dmax, err := matrix.Max(raw)
	if err != nil {
		return nil, fmt.Errorf("tcnn.New: %w", err)
	}
	scale := 1.0
	if dmax > 0 {
		scale = 1 / dmax
	}
	norm, err := denseCopy(raw, scale)
	if err != nil {
		return nil, fmt.Errorf("tcnn.New: %w", err)
	}

	act, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("tcnn.New: %w", err)
	}
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("tcnn.New: %w", err)
	}

	nw := &Network{
		n:                  n,
		consts:             c,
		raw:                raw,
		norm:               norm,
		act:                act,
		out:                out,
		z:                  c.Z0,
		rng:                o.rng,
		activeThreshold:    o.activeThreshold,
		reshuffleEachSweep: o.reshuffleEachSweep,
		logger:             o.logger,
	}

	x := act.RawData()
	for idx := range x {
		x[idx] = 2*nw.rng.Float64() - 1 // uniform in [−1,1)
	}
	nw.order = make([]neuron, 0, n*n)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			nw.order = append(nw.order, neuron{i: i, k: k})
		}
	}
	tsp.Shuffle(nw.order, nw.rng)
	nw.refreshOutputs()

	return nw, nil
}

// denseCopy returns alpha·m as a fresh *matrix.Dense.
func denseCopy(m matrix.Matrix, alpha float64) (*matrix.Dense, error) {
	s, err := matrix.Scale(m, alpha)
	if err != nil {
		return nil, err
	}

	return s.(*matrix.Dense), nil
}

// refreshOutputs recomputes every output from its activation.
func (nw *Network) refreshOutputs() {
	x, y := nw.act.RawData(), nw.out.RawData()
	for idx := range x {
		y[idx] = Output(x[idx], nw.consts.Epsilon)
	}
}

// N returns the number of cities.
func (nw *Network) N() int { return nw.n }

// Constants returns the network's constants.
func (nw *Network) Constants() Constants { return nw.consts }

// SelfFeedback returns the current self-feedback value z.
func (nw *Network) SelfFeedback() float64 { return nw.z }

// Iteration returns the number of completed sweeps.
func (nw *Network) Iteration() int { return nw.iter }

// Activation returns a copy of the activation matrix.
func (nw *Network) Activation() *matrix.Dense { return nw.act.Clone().(*matrix.Dense) }

// Outputs returns a copy of the output matrix.
func (nw *Network) Outputs() *matrix.Dense { return nw.out.Clone().(*matrix.Dense) }

// Distances returns a copy of the raw distance matrix.
func (nw *Network) Distances() *matrix.Dense { return nw.raw.Clone().(*matrix.Dense) }

// NormalizedDistances returns a copy of the distance matrix scaled by 1/max.
func (nw *Network) NormalizedDistances() *matrix.Dense { return nw.norm.Clone().(*matrix.Dense) }

// SweepOrder returns a copy of the current sweep order as (city, position) pairs.
func (nw *Network) SweepOrder() [][2]int {
	res := make([][2]int, len(nw.order))
	for idx, p := range nw.order {
		res[idx] = [2]int{p.i, p.k}
	}

	return res
}

// SetActivation overwrites the activations with m and recomputes every output,
// keeping y = Output(x, ε) everywhere. Self-feedback, the iteration counter and
// the sweep order are untouched.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch for a shape other than
// n×n, matrix.ErrNaNInf for non-finite entries. The network is unchanged on error.
func (nw *Network) SetActivation(m matrix.Matrix) error {
	if err := matrix.ValidateFinite(m); err != nil {
		return fmt.Errorf("tcnn.SetActivation: %w", err)
	}
	if m.Rows() != nw.n || m.Cols() != nw.n {
		return fmt.Errorf("tcnn.SetActivation: %d×%d, want %d×%d: %w",
			m.Rows(), m.Cols(), nw.n, nw.n, matrix.ErrDimensionMismatch)
	}
	next, err := denseCopy(m, 1)
	if err != nil {
		return fmt.Errorf("tcnn.SetActivation: %w", err)
	}

	copy(nw.act.RawData(), next.RawData())
	nw.refreshOutputs()

	return nil
}
