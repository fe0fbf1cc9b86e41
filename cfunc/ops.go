// SPDX-License-Identifier: MIT

// Package cfunc: the public operation surface and its algebraic
// short-circuits.
//
// Every binary operation first soft-fails on shape disagreement, then applies
// identity/absorbing rewrites before allocating a node:
//
//	x + Null = x     Null + x = x     x - Null = x     Null - x = -x
//	x · Null = Null  Null · x = Null  x · One = x      One · x = x
//	x / One  = x     One / x  = 1/x   Null / x = Null  x / Null = Null
//
// Constant∘Constant folds immediately through the interval package (which
// also collapses any non-finite fold to Null). "Null" above means any
// function statically known to be Null everywhere (IsZero), "One" a One
// Constant.
package cfunc

import (
	"fmt"

	"github.com/katalvlaran/cfalg/interval"
)

// Add returns a+b, lazily. Soft-fails with ErrShapeMismatch when the
// operands disagree on dim, NU or NS.
// Complexity: O(1) beyond the short-circuit checks.
func Add(a, b Func) (Func, error) { return binOp(a, b, OpAdd) }

// Sub returns a-b, lazily; same failure contract as Add.
func Sub(a, b Func) (Func, error) { return binOp(a, b, OpSub) }

// Mul returns a·b, lazily; same failure contract as Add.
func Mul(a, b Func) (Func, error) { return binOp(a, b, OpMul) }

// Div returns the totalized quotient a/b, lazily; same failure contract as
// Add. Division by zero-containing values is absorbed into Null pointwise,
// never an error.
func Div(a, b Func) (Func, error) { return binOp(a, b, OpDiv) }

// Neg returns -f, implemented as the scalar multiple by [-1,-1].
func Neg(f Func) (Func, error) {
	if f == nil {
		return nil, ErrNilFunc
	}

	return neg(f), nil
}

// Inv returns the pointwise reciprocal 1/f, rewriting the operator tree
// algebraically: 1/(A·B) = (1/A)·(1/B), 1/(A/B) = B/A, 1/(f^n) = f^-n,
// 1/(A⊗B) = (1/A)⊗(1/B); sums, differences and concrete leaves wrap as
// PowInt(f, -1).
func Inv(f Func) (Func, error) {
	if f == nil {
		return nil, ErrNilFunc
	}

	return inv(f), nil
}

// SMul returns the scalar multiple v·f. A Null scalar collapses to the Null
// Constant, a One scalar returns f unchanged; otherwise the scalar
// distributes into the subtree (s(A±B) = sA±sB, s(A∘B) = (sA)∘B for Mul/Div
// and Tensor) or, for a concrete leaf, wraps as Constant(v)·f.
func SMul(f Func, v interval.Value) (Func, error) {
	if f == nil {
		return nil, ErrNilFunc
	}

	return smul(f, v), nil
}

// binOp is the shared entry of the four binary operations.
func binOp(a, b Func, op Op) (Func, error) {
	if a == nil || b == nil {
		return nil, ErrNilFunc
	}
	if !a.shp().sameAs(b.shp()) {
		return nil, fmt.Errorf("cfunc: %s: %w", op, ErrShapeMismatch)
	}

	return combine(a, b, op), nil
}

// combine applies the short-circuit table, folds Constant pairs and
// otherwise builds a canonicalized arith node. Shapes are already equal.
func combine(a, b Func, op Op) Func {
	switch op {
	case OpAdd:
		if b.IsZero() {
			return a
		}
		if a.IsZero() {
			return b
		}
	case OpSub:
		if b.IsZero() {
			return a
		}
		if a.IsZero() {
			return neg(b)
		}
	case OpMul:
		if a.IsZero() || b.IsZero() {
			return constNull(a.shp())
		}
		if a.IsOne() {
			return b
		}
		if b.IsOne() {
			return a
		}
	case OpDiv:
		if b.IsOne() {
			return a
		}
		if a.IsZero() || b.IsZero() {
			// Null/x is Null pointwise; x/Null divides by a
			// zero-containing value, also Null.
			return constNull(a.shp())
		}
		if a.IsOne() {
			return inv(b)
		}
	}

	if ca, ok := a.(*Constant); ok {
		if cb, ok2 := b.(*Constant); ok2 {
			return constant(ca.sh, apply(op, sideLeft, ca.val, cb.val))
		}
	}

	return newArith(a, b, op)
}

// operands returns the children of an arith node in meaning order
// (numerator/minuend first), undoing the storage canonicalization.
func (n *arith) operands() (Func, Func) {
	if n.sd == sideRight {
		return n.right, n.left
	}

	return n.left, n.right
}

// neg is the internal negation: smul by [-1,-1].
func neg(f Func) Func {
	return smul(f, interval.Value{Lo: -1, Hi: -1})
}

// inv is the internal reciprocal rewrite.
func inv(f Func) Func {
	switch t := f.(type) {
	case *Constant:
		return constant(t.sh, interval.Inv(t.val))
	case *arith:
		x, y := t.operands()
		switch t.op {
		case OpMul:
			return combine(inv(x), inv(y), OpMul)
		case OpDiv:
			return combine(y, x, OpDiv)
		default:
			// Sums and differences have no product rewrite.
			return powIntOp(f, -1)
		}
	case *tensor:
		return tensorCombine(inv(t.left), inv(t.right))
	case *powInt:
		return powIntOp(t.base, -t.n)
	case *powReal:
		return powRealOp(t.base, -t.r)
	default:
		// Dense, Sparse, NthRoot: elementwise reciprocal via PowInt(-1).
		return powIntOp(f, -1)
	}
}

// smul is the internal scalar-multiple rewrite.
func smul(f Func, v interval.Value) Func {
	if v.IsNull() {
		return constNull(f.shp())
	}
	if v.IsOne() {
		return f
	}

	switch t := f.(type) {
	case *Constant:
		return constant(t.sh, interval.Mul(t.val, v))
	case *arith:
		x, y := t.operands()
		switch t.op {
		case OpAdd, OpSub:
			return combine(smul(x, v), smul(y, v), t.op)
		default:
			// Mul and Div: scale the left (numerator) operand once.
			return combine(smul(x, v), y, t.op)
		}
	case *tensor:
		return tensorCombine(smul(t.left, v), t.right)
	default:
		// Leaves and power nodes wrap as Constant(v)·f.
		return combine(constant(f.shp(), v), f, OpMul)
	}
}
