// SPDX-License-Identifier: MIT

package tcnn

import "github.com/katalvlaran/csatsp/tsp"

// Step performs one asynchronous sweep: every neuron is updated exactly once, in
// the network's sweep order, and each update immediately refreshes that neuron's
// output so later updates in the same sweep observe it. Afterwards the
// self-feedback decays by (1−β) and the iteration counter advances.
//
// Complexity: O(n³) per sweep (n² neurons × O(n) input sums).
func (nw *Network) Step() {
	if nw.reshuffleEachSweep {
		tsp.Shuffle(nw.order, nw.rng)
	}

	x, y, d := nw.act.RawData(), nw.out.RawData(), nw.norm.RawData()
	for _, p := range nw.order {
		nw.updateNeuron(p.i, p.k, x, y, d)
	}

	nw.z *= 1 - nw.consts.Beta
	nw.iter++
}

// updateNeuron applies the update rule to (i,k) in place on the flat slices
// x (activations), y (outputs) and d (normalized distances).
func (nw *Network) updateNeuron(i, k int, x, y, d []float64) {
	var (
		n    = nw.n
		c    = &nw.consts
		row  = i * n
		idx  = row + k
		next = (k + 1) % n
		prev = (k - 1 + n) % n

		rowSum, colSum, adj float64
		j                   int
	)

	// Conflict inputs: other positions of city i, other cities at position k.
	for j = 0; j < n; j++ {
		if j != k {
			rowSum += y[row+j]
		}
		if j != i {
			colSum += y[j*n+k]
		}
	}
	a := -c.W1 * (rowSum + colSum)

	// Adjacency input: near cities in the neighboring positions.
	for j = 0; j < n; j++ {
		if j != i {
			adj += d[row+j] * (y[j*n+next] + y[j*n+prev])
		}
	}
	b := -c.W2 * adj

	retained := c.K*x[idx] - nw.z*(y[idx]-c.I0)

	x[idx] = c.Alpha*(a+b+c.W1) + retained
	y[idx] = Output(x[idx], c.Epsilon)
}
