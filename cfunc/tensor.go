// SPDX-License-Identifier: MIT

// Package cfunc: the lazy tensor-product node.
//
// The tensor product of a dim-d1 function and a dim-d2 function is the
// dim-(d1+d2) function whose value at the concatenated index tuple is the
// product of the operands' values at the split tuples. Because Null
// annihilates multiplication, tensor materialization always behaves like an
// intersection/Cartesian product of the operands' presence patterns.
package cfunc

import "github.com/katalvlaran/cfalg/interval"

// tensor is the lazy product node. The left operand owns the leading
// left.Dim() axes of the result, the right operand the trailing ones.
type tensor struct {
	sh    shape
	left  Func
	right Func
}

// Tensor returns the tensor product a⊗b, lazily.
// Soft failures: ErrShapeMismatch when NU/NS differ, ErrDimOverflow when the
// combined dimensionality exceeds MaxDim — checked before any allocation.
// A statically zero operand collapses to the Null Constant of the combined
// shape.
func Tensor(a, b Func) (Func, error) {
	if a == nil || b == nil {
		return nil, ErrNilFunc
	}
	if !a.shp().compatible(b.shp()) {
		return nil, ErrShapeMismatch
	}
	if a.Dim()+b.Dim() > MaxDim {
		return nil, ErrDimOverflow
	}

	return tensorCombine(a, b), nil
}

// tensorCombine builds the node for already-checked operands (also used by
// the Inv/SMul rewrites, whose operands come from an existing node).
func tensorCombine(a, b Func) Func {
	sh, err := newShape(a.Dim()+b.Dim(), a.Units(), a.Series())
	if err != nil {
		panic("cfunc: tensor shape violation")
	}

	if a.IsZero() || b.IsZero() {
		return constNull(sh)
	}
	if ca, ok := a.(*Constant); ok {
		if cb, ok2 := b.(*Constant); ok2 {
			return constant(sh, interval.Mul(ca.val, cb.val))
		}
	}

	return &tensor{sh: sh, left: a, right: b}
}

// Dim returns the combined number of unit axes.
func (n *tensor) Dim() int { return n.sh.dim }

// Units returns NU.
func (n *tensor) Units() int { return n.sh.nu }

// Series returns NS.
func (n *tensor) Series() int { return n.sh.ns }

// Kind returns KindTensor.
func (n *tensor) Kind() Kind { return KindTensor }

// IsLeaf reports false.
func (n *tensor) IsLeaf() bool { return false }

// IsAlg reports true.
func (n *tensor) IsAlg() bool { return true }

// IsZero reports false (zero operands were short-circuited away).
func (n *tensor) IsZero() bool { return false }

// IsOne reports false.
func (n *tensor) IsOne() bool { return false }

// At splits the index tuple across the operands and multiplies their values.
// Complexity: cost of both subtrees at one index.
func (n *tensor) At(units []int, series int) (interval.Value, error) {
	if err := n.sh.checkIndex(units, series); err != nil {
		return interval.Null, err
	}

	return n.eval(units, series), nil
}

// Materialize forces both operands and runs the Cartesian expansion.
func (n *tensor) Materialize() Func {
	return materializeTensor(n.left.Materialize(), n.right.Materialize())
}

func (n *tensor) shp() shape { return n.sh }

func (n *tensor) eval(units []int, series int) interval.Value {
	d1 := n.left.Dim()

	return interval.Mul(n.left.eval(units[:d1], series), n.right.eval(units[d1:], series))
}
