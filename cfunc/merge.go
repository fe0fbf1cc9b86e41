// SPDX-License-Identifier: MIT

// Package cfunc: sparse-sparse CSR merge algorithms.
//
// Add/Sub need the union of the operands' bit patterns (either side alone
// still contributes ±value against an implicit Null), so the union merge
// walks the bitwise OR of each row pair with two value cursors. Mul/Div only
// ever produce values where both operands are present (Null annihilates),
// so the intersection merge walks the bitwise AND and addresses each
// operand's value by population-count rank within the word.
//
// Both merges emit values in ascending last-axis order per row and drop any
// Null result, so the produced CSR satisfies the layout invariant by
// construction.
package cfunc

import (
	"math/bits"

	"github.com/katalvlaran/cfalg/bitset"
	"github.com/katalvlaran/cfalg/interval"
)

// unionMerge combines two same-shape Sparse leaves under Add or Sub.
// Complexity: O(rows · words-per-row + NNZ(a) + NNZ(b)).
func unionMerge(a, b *Sparse, op Op, sd side) *Sparse {
	sh := a.sh
	rows, wpr := sh.rows(), sh.wordsPerRow()
	ebits := make([]uint32, rows*wpr)
	rowPtr := make([]int, rows+1)
	vals := make([]interval.Value, 0, len(a.vals)+len(b.vals))

	for r := 0; r < rows; r++ {
		aw := bitset.Row(a.ebits, wpr, r)
		bw := bitset.Row(b.ebits, wpr, r)
		ow := ebits[r*wpr : (r+1)*wpr]
		ai, bi := a.rowPtr[r], b.rowPtr[r]
		for w := 0; w < wpr; w++ {
			awd, bwd := aw[w], bw[w]
			// Walk every set bit of the union in ascending order; the
			// cursors consume each operand's packed values in step.
			for m := awd | bwd; m != 0; m &= m - 1 {
				one := uint32(1) << uint(bits.TrailingZeros32(m))
				av, bv := interval.Null, interval.Null
				if awd&one != 0 {
					av = a.vals[ai]
					ai++
				}
				if bwd&one != 0 {
					bv = b.vals[bi]
					bi++
				}
				v := apply(op, sd, av, bv)
				if v.IsNull() {
					continue // e.g. exact cancellation or overflow
				}
				ow[w] |= one
				vals = append(vals, v)
			}
		}
		rowPtr[r+1] = len(vals)
	}

	return newSparse(sh, ebits, rowPtr, vals)
}

// intersectMerge combines two same-shape Sparse leaves under Mul or Div.
// Only the AND of the row masks can carry a value; each operand's value is
// located by rank (population count below the bit) inside the word.
// Complexity: O(rows · words-per-row + NNZ(result)).
func intersectMerge(a, b *Sparse, op Op, sd side) *Sparse {
	sh := a.sh
	rows, wpr := sh.rows(), sh.wordsPerRow()
	ebits := make([]uint32, rows*wpr)
	rowPtr := make([]int, rows+1)
	nnz := len(a.vals)
	if len(b.vals) < nnz {
		nnz = len(b.vals)
	}
	vals := make([]interval.Value, 0, nnz)

	for r := 0; r < rows; r++ {
		aw := bitset.Row(a.ebits, wpr, r)
		bw := bitset.Row(b.ebits, wpr, r)
		ow := ebits[r*wpr : (r+1)*wpr]
		ai, bi := a.rowPtr[r], b.rowPtr[r]
		for w := 0; w < wpr; w++ {
			awd, bwd := aw[w], bw[w]
			for m := awd & bwd; m != 0; m &= m - 1 {
				pos := bits.TrailingZeros32(m)
				below := (uint32(1) << uint(pos)) - 1
				av := a.vals[ai+bits.OnesCount32(awd&below)]
				bv := b.vals[bi+bits.OnesCount32(bwd&below)]
				v := apply(op, sd, av, bv)
				if v.IsNull() {
					continue // overflow or zero-containing divisor
				}
				ow[w] |= uint32(1) << uint(pos)
				vals = append(vals, v)
			}
			ai += bits.OnesCount32(awd)
			bi += bits.OnesCount32(bwd)
		}
		rowPtr[r+1] = len(vals)
	}

	return newSparse(sh, ebits, rowPtr, vals)
}
