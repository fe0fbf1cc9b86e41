// SPDX-License-Identifier: MIT

// Package cfunc: the lazy binary-arithmetic node.
// Construction goes through the short-circuiting public operations in ops.go;
// newArith itself only canonicalizes and asserts invariants.
package cfunc

import "github.com/katalvlaran/cfalg/interval"

// arith is a lazy binary node left∘right (or right∘left when sd is
// sideRight). Children are shared immutable subtrees.
type arith struct {
	sh    shape
	left  Func
	right Func
	op    Op
	sd    side
}

// newArith builds an arithmetic node over shape-equal operands.
//
// Canonicalization: a Constant operand is always stored on the left, with sd
// recording the true orientation. The materializer and Inv/SMul rewrites then
// only ever see Constant-first pairs, halving the dispatch surface.
// A shape mismatch here is a programmer error: the public operations have
// already soft-failed on it.
func newArith(a, b Func, op Op) *arith {
	if !a.shp().sameAs(b.shp()) {
		panic("cfunc: arith node over mismatched shapes")
	}

	sd := sideLeft
	if _, bIsConst := b.(*Constant); bIsConst {
		if _, aIsConst := a.(*Constant); !aIsConst {
			a, b = b, a
			sd = sideRight
		}
	}

	return &arith{sh: a.shp(), left: a, right: b, op: op, sd: sd}
}

// apply evaluates one operator with the recorded orientation.
func apply(op Op, sd side, a, b interval.Value) interval.Value {
	if sd == sideRight {
		a, b = b, a
	}
	switch op {
	case OpAdd:
		return interval.Add(a, b)
	case OpSub:
		return interval.Sub(a, b)
	case OpMul:
		return interval.Mul(a, b)
	case OpDiv:
		return interval.Div(a, b)
	default:
		panic("cfunc: unknown operator")
	}
}

// Dim returns the number of unit axes.
func (n *arith) Dim() int { return n.sh.dim }

// Units returns NU.
func (n *arith) Units() int { return n.sh.nu }

// Series returns NS.
func (n *arith) Series() int { return n.sh.ns }

// Kind returns KindArith.
func (n *arith) Kind() Kind { return KindArith }

// IsLeaf reports false.
func (n *arith) IsLeaf() bool { return false }

// IsAlg reports true.
func (n *arith) IsAlg() bool { return true }

// IsZero reports false: tree nodes are never statically zero (a zero result
// would have been short-circuited away at construction).
func (n *arith) IsZero() bool { return false }

// IsOne reports false.
func (n *arith) IsOne() bool { return false }

// At evaluates both children pointwise and applies the operator — no
// materialization.
// Complexity: cost of both subtrees at one index.
func (n *arith) At(units []int, series int) (interval.Value, error) {
	if err := n.sh.checkIndex(units, series); err != nil {
		return interval.Null, err
	}

	return n.eval(units, series), nil
}

// Materialize forces both children and dispatches to the engine.
func (n *arith) Materialize() Func {
	return materializeArith(n.left.Materialize(), n.right.Materialize(), n.op, n.sd)
}

func (n *arith) shp() shape { return n.sh }

func (n *arith) eval(units []int, series int) interval.Value {
	return apply(n.op, n.sd, n.left.eval(units, series), n.right.eval(units, series))
}
