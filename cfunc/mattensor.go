// SPDX-License-Identifier: MIT

// Package cfunc: tensor-product materialization (Cartesian expansion).
//
// The result value at the concatenated tuple (uL…, uR…, s) is
// mul(left(uL…, s), right(uR…, s)); since Null annihilates, every tensor
// combination behaves like an intersection of presence patterns:
//
//	Constant ⊗ Constant → Constant (fold)
//	any mix with Dense  → Dense   (full Cartesian expansion)
//	Constant ⊗ Sparse   → Sparse  (pattern replicated, values scaled)
//	Sparse ⊗ Constant   → Sparse  (full last-axis masks under present rows)
//	Sparse ⊗ Sparse     → Sparse  (Cartesian product of the two bitsets)
package cfunc

import (
	"math/bits"

	"github.com/katalvlaran/cfalg/bitset"
	"github.com/katalvlaran/cfalg/interval"
)

// materializeTensor expands two concrete leaves into the combined-dim leaf.
// Dimension bounds were enforced at node construction.
func materializeTensor(a, b Func) Func {
	sh, err := newShape(a.Dim()+b.Dim(), a.Units(), a.Series())
	if err != nil {
		panic("cfunc: tensor materialize shape violation")
	}

	switch l := a.(type) {
	case *Constant:
		switch r := b.(type) {
		case *Constant:
			return constant(sh, interval.Mul(l.val, r.val))
		case *Sparse:
			return tensorConstSparse(sh, l, r)
		}
	case *Sparse:
		switch r := b.(type) {
		case *Constant:
			return tensorSparseConst(sh, l, r)
		case *Sparse:
			return tensorSparseSparse(sh, l, r)
		}
	}

	// Every remaining pair involves a Dense side: expand fully.
	return tensorDense(sh, a, b)
}

// unitValue reads a leaf by linearized unit offset and series.
func unitValue(f Func, unitOff, series int) interval.Value {
	switch t := f.(type) {
	case *Constant:
		return t.val
	case *Dense:
		return t.unitAt(unitOff, series)
	case *Sparse:
		return t.unitAt(unitOff, series)
	}

	panic("cfunc: unit read on non-leaf operand")
}

// tensorDense performs the generic Cartesian expansion into a Dense leaf.
// Complexity: O(NU^(dimL+dimR) · NS) value multiplications.
func tensorDense(sh shape, a, b Func) *Dense {
	la, lb := a.shp().unitLen(), b.shp().unitLen()
	ns := sh.ns
	out := make([]interval.Value, sh.denseLen())
	for lu := 0; lu < la; lu++ {
		for ru := 0; ru < lb; ru++ {
			uo := lu*lb + ru
			for s := 0; s < ns; s++ {
				out[uo*ns+s] = interval.Mul(unitValue(a, lu, s), unitValue(b, ru, s))
			}
		}
	}

	return newDense(sh, out)
}

// tensorSparseSparse builds the Cartesian product of the two bitsets: the
// result row for (left tuple, right leading tuple, series) carries the right
// operand's row mask wherever the left value is present, with each surviving
// value mul(leftValue, rightValue).
// Complexity: O(result rows · words-per-row + NNZ(l) · NNZ-per-row(r)).
func tensorSparseSparse(sh shape, l, r *Sparse) *Sparse {
	rows, wpr := sh.rows(), sh.wordsPerRow()
	ebits := make([]uint32, rows*wpr)
	rowPtr := make([]int, rows+1)
	vals := make([]interval.Value, 0, len(l.vals)*len(r.vals)/maxInt(r.Rows(), 1))

	lUnits := l.sh.unitLen()
	rLeads := r.sh.pows[r.sh.dim-1]
	ns := sh.ns
	row := 0
	for lu := 0; lu < lUnits; lu++ {
		for rl := 0; rl < rLeads; rl++ {
			for s := 0; s < ns; s++ {
				lv := l.unitAt(lu, s)
				if !lv.IsNull() {
					rRow := rl*ns + s
					rw := r.RowBits(rRow)
					ow := ebits[row*wpr : (row+1)*wpr]
					ri := r.rowPtr[rRow]
					for w := 0; w < wpr; w++ {
						for m := rw[w]; m != 0; m &= m - 1 {
							one := uint32(1) << uint(bits.TrailingZeros32(m))
							v := interval.Mul(lv, r.vals[ri])
							ri++
							if !v.IsNull() {
								ow[w] |= one
								vals = append(vals, v)
							}
						}
					}
				}
				rowPtr[row+1] = len(vals)
				row++
			}
		}
	}

	return newSparse(sh, ebits, rowPtr, vals)
}

// tensorConstSparse replicates the sparse pattern once per constant-side
// unit tuple, scaling every value by the constant.
// Complexity: O(NU^dimC · (rows(s) · words-per-row + NNZ(s))).
func tensorConstSparse(sh shape, c *Constant, s *Sparse) *Sparse {
	rows, wpr := sh.rows(), sh.wordsPerRow()
	ebits := make([]uint32, rows*wpr)
	rowPtr := make([]int, rows+1)
	cUnits := c.sh.unitLen()
	sRows := s.sh.rows()
	vals := make([]interval.Value, 0, cUnits*len(s.vals))

	row := 0
	for cu := 0; cu < cUnits; cu++ {
		for sr := 0; sr < sRows; sr++ {
			sw := bitset.Row(s.ebits, wpr, sr)
			ow := ebits[row*wpr : (row+1)*wpr]
			si := s.rowPtr[sr]
			for w := 0; w < wpr; w++ {
				for m := sw[w]; m != 0; m &= m - 1 {
					one := uint32(1) << uint(bits.TrailingZeros32(m))
					v := interval.Mul(c.val, s.vals[si])
					si++
					if !v.IsNull() {
						ow[w] |= one
						vals = append(vals, v)
					}
				}
			}
			rowPtr[row+1] = len(vals)
			row++
		}
	}

	return newSparse(sh, ebits, rowPtr, vals)
}

// tensorSparseConst puts the constant on the trailing axes: when the
// constant has unit axes of its own, every present left value spreads into a
// full last-axis mask; a dim-0 constant just scales the left pattern.
// Complexity: O(result rows · NU) in the spreading case.
func tensorSparseConst(sh shape, s *Sparse, c *Constant) *Sparse {
	if c.sh.dim == 0 {
		// No trailing unit axes: the result shape equals the left operand's
		// and the constant only scales values.
		return mapSparse(s, func(v interval.Value) interval.Value {
			return interval.Mul(v, c.val)
		})
	}

	rows, wpr := sh.rows(), sh.wordsPerRow()
	ebits := make([]uint32, rows*wpr)
	rowPtr := make([]int, rows+1)
	full := bitset.FullMask(wpr, sh.nu)
	sUnits := s.sh.unitLen()
	cLeads := c.sh.pows[c.sh.dim-1]
	ns := sh.ns
	vals := make([]interval.Value, 0, len(s.vals)*cLeads*sh.nu)

	row := 0
	for su := 0; su < sUnits; su++ {
		for cl := 0; cl < cLeads; cl++ {
			for series := 0; series < ns; series++ {
				v := interval.Mul(s.unitAt(su, series), c.val)
				if !v.IsNull() {
					copy(ebits[row*wpr:(row+1)*wpr], full)
					for k := 0; k < sh.nu; k++ {
						vals = append(vals, v)
					}
				}
				rowPtr[row+1] = len(vals)
				row++
			}
		}
	}

	return newSparse(sh, ebits, rowPtr, vals)
}

// maxInt returns the larger of two ints.
func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
