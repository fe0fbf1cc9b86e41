// SPDX-License-Identifier: MIT

// Package cfunc: the materialization engine — pairwise dispatch from leaf
// storage kinds to a concrete result leaf.
//
// Result-kind table per binary operator (stored order Constant-first thanks
// to node canonicalization; sd restores the true orientation):
//
//	Constant ∘ Constant → Constant  (fold)
//	Constant ∘ Dense    → Dense    (elementwise, side-correct order)
//	Constant ∘ Sparse   → Dense    for Add/Sub with a non-null constant
//	                                (the constant densifies every implicit
//	                                Null), Sparse otherwise (Mul/Div and the
//	                                Null constant preserve the pattern)
//	Dense    ∘ Dense    → Dense    (elementwise, O(N))
//	Dense    ∘ Sparse   → Dense    (absent positions contribute Null)
//	Sparse   ∘ Sparse   → Sparse   (union merge for Add/Sub, intersection
//	                                merge for Mul/Div — see merge.go)
//
// Any produced Sparse drops entries whose computed value is Null, keeping
// the no-explicit-Null invariant; its rowPtr stays non-decreasing with the
// terminal entry equal to len(values).
package cfunc

import (
	"github.com/katalvlaran/cfalg/bitset"
	"github.com/katalvlaran/cfalg/interval"
)

// materializeArith combines two concrete leaves under op with orientation
// sd. Non-leaf input is a programmer error (children are materialized by the
// caller).
func materializeArith(a, b Func, op Op, sd side) Func {
	switch l := a.(type) {
	case *Constant:
		switch r := b.(type) {
		case *Constant:
			return constant(l.sh, apply(op, sd, l.val, r.val))
		case *Dense:
			return constDense(l, r, op, sd)
		case *Sparse:
			return constSparse(l, r, op, sd)
		}
	case *Dense:
		switch r := b.(type) {
		case *Constant:
			return constDense(r, l, op, sd.flip())
		case *Dense:
			return denseDense(l, r, op, sd)
		case *Sparse:
			return denseSparse(l, r, op, sd)
		}
	case *Sparse:
		switch r := b.(type) {
		case *Constant:
			return constSparse(r, l, op, sd.flip())
		case *Dense:
			return denseSparse(r, l, op, sd.flip())
		case *Sparse:
			if op == OpAdd || op == OpSub {
				return unionMerge(l, r, op, sd)
			}

			return intersectMerge(l, r, op, sd)
		}
	}

	panic("cfunc: materialize over non-leaf operands")
}

// materializeUnary applies a scalar operation elementwise to a concrete
// leaf, preserving the storage kind. For Sparse operands the presence
// pattern is preserved up to Null-dropping: every unary operation of this
// package maps Null to Null (PowInt/Pow/NthRoot all totalize that way), so
// absent positions stay absent and present positions whose result turns
// Null are removed.
func materializeUnary(base Func, fn func(interval.Value) interval.Value) Func {
	switch t := base.(type) {
	case *Constant:
		return constant(t.sh, fn(t.val))
	case *Dense:
		out := make([]interval.Value, len(t.vals))
		for i, v := range t.vals {
			out[i] = fn(v)
		}

		return newDense(t.sh, out)
	case *Sparse:
		return mapSparse(t, fn)
	}

	panic("cfunc: materialize over non-leaf operand")
}

// constDense combines a Constant and a Dense (stored order c, d).
// Complexity: O(N).
func constDense(c *Constant, d *Dense, op Op, sd side) Func {
	out := make([]interval.Value, len(d.vals))
	for i, v := range d.vals {
		out[i] = apply(op, sd, c.val, v)
	}

	return newDense(d.sh, out)
}

// denseDense combines two Dense leaves elementwise.
// Complexity: O(N).
func denseDense(a, b *Dense, op Op, sd side) Func {
	out := make([]interval.Value, len(a.vals))
	for i, v := range a.vals {
		out[i] = apply(op, sd, v, b.vals[i])
	}

	return newDense(a.sh, out)
}

// denseSparse combines a Dense and a Sparse (stored order d, s) into a
// Dense: the sparse side contributes Null at absent positions, which for
// Add/Sub leaves the dense value intact and for Mul/Div annihilates it.
// Complexity: O(N · words-per-row / NU) bit lookups, O(N) writes.
func denseSparse(d *Dense, s *Sparse, op Op, sd side) Func {
	sh := d.sh
	out := make([]interval.Value, len(d.vals))
	rows, nu, ns := sh.rows(), sh.nu, sh.ns
	for r := 0; r < rows; r++ {
		lead, series := r/ns, r%ns
		for last := 0; last < nu; last++ {
			off := (lead*nu+last)*ns + series
			out[off] = apply(op, sd, d.vals[off], s.ValueAt(r, last))
		}
	}

	return newDense(sh, out)
}

// constSparse combines a Constant and a Sparse (stored order c, s).
//
// Add/Sub with a non-null constant densify: every implicitly-Null position
// becomes ±c, so the result is Dense. The Null constant and the
// multiplicative operators preserve the sparsity pattern (Null annihilates
// products and quotients at absent positions either way round), so those
// stay Sparse with each present value recombined and Null results dropped.
func constSparse(c *Constant, s *Sparse, op Op, sd side) Func {
	if (op == OpAdd || op == OpSub) && !c.val.IsNull() {
		return constDensify(c, s, op, sd)
	}

	return mapSparse(s, func(v interval.Value) interval.Value {
		return apply(op, sd, c.val, v)
	})
}

// constDensify expands Constant ± Sparse into a Dense.
// Complexity: O(N).
func constDensify(c *Constant, s *Sparse, op Op, sd side) Func {
	sh := s.sh
	out := make([]interval.Value, sh.denseLen())
	rows, nu, ns := sh.rows(), sh.nu, sh.ns
	for r := 0; r < rows; r++ {
		lead, series := r/ns, r%ns
		for last := 0; last < nu; last++ {
			out[(lead*nu+last)*ns+series] = apply(op, sd, c.val, s.ValueAt(r, last))
		}
	}

	return newDense(sh, out)
}

// mapSparse rebuilds a Sparse with fn applied to every present value,
// dropping entries whose result is Null. The CSR invariant of the result
// holds by construction: bits are visited in ascending order per row and
// rowPtr accumulates the surviving count.
// Complexity: O(rows · NU + NNZ).
func mapSparse(s *Sparse, fn func(interval.Value) interval.Value) *Sparse {
	sh := s.sh
	rows, wpr := sh.rows(), sh.wordsPerRow()
	ebits := make([]uint32, rows*wpr)
	rowPtr := make([]int, rows+1)
	vals := make([]interval.Value, 0, len(s.vals))

	idx := 0
	for r := 0; r < rows; r++ {
		words := s.RowBits(r)
		ow := ebits[r*wpr : (r+1)*wpr]
		for bit := 0; bit < sh.nu; bit++ {
			if !bitset.Test(words, bit) {
				continue
			}
			v := fn(s.vals[idx])
			idx++
			if v.IsNull() {
				continue
			}
			bitset.Set(ow, bit)
			vals = append(vals, v)
		}
		rowPtr[r+1] = len(vals)
	}

	return newSparse(sh, ebits, rowPtr, vals)
}
