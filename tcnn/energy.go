// SPDX-License-Identifier: MIT

package tcnn

import "github.com/katalvlaran/csatsp/matrix"

// Energy returns the Lyapunov-style energy of the current outputs:
//
//	E = ½·W1·(Σ_i (Σ_k y[i,k] − 1)² + Σ_k (Σ_i y[i,k] − 1)²)
//	  + ½·W2·Σ_i Σ_j Σ_k d̂[i,j]·y[i,k]·(y[j,k+1] + y[j,k−1])
//
// E ≥ 0 for non-negative weights and distances. E is not monotone across
// sweeps: the self-feedback makes early sweeps chaotic.
//
// Complexity: O(n³).
func (nw *Network) Energy() float64 {
	var (
		n       = nw.n
		y       = nw.out.RawData()
		d       = nw.norm.RawData()
		penalty float64
		adj     float64
	)

	// The output matrix is a valid n×n Dense, so the kernels cannot fail.
	rows, _ := matrix.RowSums(nw.out)
	cols, _ := matrix.ColSums(nw.out)
	for idx := 0; idx < n; idx++ {
		penalty += (rows[idx] - 1) * (rows[idx] - 1)
		penalty += (cols[idx] - 1) * (cols[idx] - 1)
	}

	var i, j, k, next, prev int
	var dij float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			dij = d[i*n+j]
			if dij == 0 {
				continue
			}
			for k = 0; k < n; k++ {
				next, prev = (k+1)%n, (k-1+n)%n
				adj += dij * y[i*n+k] * (y[j*n+next] + y[j*n+prev])
			}
		}
	}

	return 0.5*nw.consts.W1*penalty + 0.5*nw.consts.W2*adj
}
