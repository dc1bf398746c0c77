// SPDX-License-Identifier: MIT

package tcnn

// active reports whether an output counts as "on" for the validity test.
func (nw *Network) active(v float64) bool { return v > nw.activeThreshold }

// ValidRows reports, per city i, whether exactly one position is active in row i.
func (nw *Network) ValidRows() []bool {
	n, y := nw.n, nw.out.RawData()
	res := make([]bool, n)
	for i := 0; i < n; i++ {
		cnt := 0
		for k := 0; k < n; k++ {
			if nw.active(y[i*n+k]) {
				cnt++
			}
		}
		res[i] = cnt == 1
	}

	return res
}

// ValidCols reports, per position k, whether exactly one city is active in column k.
func (nw *Network) ValidCols() []bool {
	n, y := nw.n, nw.out.RawData()
	res := make([]bool, n)
	for k := 0; k < n; k++ {
		cnt := 0
		for i := 0; i < n; i++ {
			if nw.active(y[i*n+k]) {
				cnt++
			}
		}
		res[k] = cnt == 1
	}

	return res
}

// NumValidRows counts the valid rows.
func (nw *Network) NumValidRows() int { return countTrue(nw.ValidRows()) }

// NumValidCols counts the valid columns.
func (nw *Network) NumValidCols() int { return countTrue(nw.ValidCols()) }

// PercentValid returns (valid rows + valid columns) / 2n, always in [0,1].
func (nw *Network) PercentValid() float64 {
	return float64(nw.NumValidRows()+nw.NumValidCols()) / float64(2*nw.n)
}

// ValidTour reports whether the outputs encode a permutation matrix.
// The counts are compared as integers, which is exactly PercentValid() == 1
// without a floating-point comparison.
func (nw *Network) ValidTour() bool {
	return nw.NumValidRows() == nw.n && nw.NumValidCols() == nw.n
}

func countTrue(bs []bool) int {
	cnt := 0
	for _, b := range bs {
		if b {
			cnt++
		}
	}

	return cnt
}
