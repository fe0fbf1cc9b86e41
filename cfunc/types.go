// SPDX-License-Identifier: MIT

// Package cfunc: domain types — the Func capability, storage/operator kind
// tags, the arithmetic op enum and the internal shape descriptor.
package cfunc

import (
	"fmt"

	"github.com/katalvlaran/cfalg/interval"
)

// MaxDim bounds the number of unit axes of any function, including tensor
// products. Tensor construction fails softly (ErrDimOverflow) beyond it.
const MaxDim = 4

// Kind tags the concrete representation behind a Func: three leaf storages
// and five lazy operator-tree nodes. The set is closed — Func is a sealed
// interface — so engine dispatch can switch exhaustively over it.
type Kind uint8

const (
	// KindConstant is a single broadcast value.
	KindConstant Kind = iota
	// KindDense is a fully materialized flat array.
	KindDense
	// KindSparse is the CSR/bitset compressed layout.
	KindSparse
	// KindArith is a lazy binary arithmetic node.
	KindArith
	// KindTensor is a lazy tensor-product node.
	KindTensor
	// KindPowInt is a lazy integer-power node.
	KindPowInt
	// KindPowReal is a lazy real-power node.
	KindPowReal
	// KindNthRoot is a lazy n-th-root node.
	KindNthRoot
)

// String implements fmt.Stringer for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "Constant"
	case KindDense:
		return "Dense"
	case KindSparse:
		return "Sparse"
	case KindArith:
		return "Arith"
	case KindTensor:
		return "Tensor"
	case KindPowInt:
		return "PowInt"
	case KindPowReal:
		return "PowReal"
	case KindNthRoot:
		return "NthRoot"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Op enumerates the binary arithmetic operators of the algebra.
type Op uint8

const (
	// OpAdd is interval addition.
	OpAdd Op = iota
	// OpSub is interval subtraction.
	OpSub
	// OpMul is interval multiplication.
	OpMul
	// OpDiv is totalized interval division.
	OpDiv
)

// String implements fmt.Stringer for diagnostics.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "Add"
	case OpSub:
		return "Sub"
	case OpMul:
		return "Mul"
	case OpDiv:
		return "Div"
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}

// side records operand orientation after canonicalization: an arith node may
// store its operands swapped (e.g. Constant first, so the materializer sees
// half as many type pairs), and side remembers whether the node reads as
// "left OP right" (sideLeft) or "right OP left" (sideRight).
type side uint8

const (
	sideLeft side = iota
	sideRight
)

// flip reverses the orientation.
func (s side) flip() side {
	if s == sideLeft {
		return sideRight
	}

	return sideLeft
}

// Func is the unit-function capability: dim unit axes over [0,Units()), one
// series axis over [0,Series()), interval values at every index.
//
// Func is sealed (note the unexported methods): the closed variant set is
// exactly the eight Kinds, which lets the materialization engine dispatch by
// type switch with no default escape hatch.
//
// All implementations are immutable after construction.
type Func interface {
	// Dim returns the number of unit axes, in [0, MaxDim].
	// Complexity: O(1).
	Dim() int

	// Units returns NU, the size of every unit axis.
	// Complexity: O(1).
	Units() int

	// Series returns NS, the size of the series axis.
	// Complexity: O(1).
	Series() int

	// Kind returns the representation tag.
	// Complexity: O(1).
	Kind() Kind

	// IsLeaf reports whether the function is a concrete storage
	// (Constant, Dense or Sparse) rather than an operator-tree node.
	// Complexity: O(1).
	IsLeaf() bool

	// IsAlg reports whether the function is a lazy operator-tree node.
	// Always the negation of IsLeaf.
	// Complexity: O(1).
	IsAlg() bool

	// IsZero reports whether the function is statically known to be Null
	// everywhere (a Null Constant or an empty Sparse). A Dense that happens
	// to hold only Nulls reports false: zero detection never scans storage.
	// Complexity: O(1).
	IsZero() bool

	// IsOne reports whether the function is statically known to be One
	// everywhere (a One Constant).
	// Complexity: O(1).
	IsOne() bool

	// At returns the value at the given unit-index tuple and series index,
	// bounds-checked. A wrong-arity tuple or out-of-range index yields
	// ErrOutOfRange. Works on lazy nodes without materializing them.
	// Complexity: leaves O(dim) (Sparse adds O(words-per-row)); nodes add
	// the cost of both subtrees.
	At(units []int, series int) (interval.Value, error)

	// Materialize forces the function into a concrete leaf. Leaves return
	// themselves; operator nodes recursively materialize their children and
	// dispatch to the materialization engine. Never fails: every shape
	// constraint was enforced at construction time.
	Materialize() Func

	// shp exposes the internal shape descriptor; unexported, so the variant
	// set stays closed to this package.
	shp() shape

	// eval returns the value at already-validated indices, skipping bounds
	// checks. The hot path of pointwise evaluation and materialization.
	eval(units []int, series int) interval.Value
}

// shape bundles the dimensional parameters of a function together with the
// precomputed stride table pows[i] = NU^i used for dense offsets and tensor
// expansion.
type shape struct {
	dim int
	nu  int
	ns  int
	// pows[i] = nu^i for i in [0, MaxDim]; entries beyond dim are still
	// populated so tensor expansion can index them directly.
	pows [MaxDim + 1]int
}

// newShape validates the dimensional parameters and precomputes strides.
// Complexity: O(MaxDim).
func newShape(dim, nu, ns int) (shape, error) {
	if dim < 0 || dim > MaxDim || nu < 1 || ns < 1 {
		return shape{}, ErrBadShape
	}

	sh := shape{dim: dim, nu: nu, ns: ns}
	sh.pows[0] = 1
	for i := 1; i <= MaxDim; i++ {
		sh.pows[i] = sh.pows[i-1] * nu
	}

	return sh, nil
}

// sameAs reports agreement on all three dimensional parameters.
func (sh shape) sameAs(o shape) bool {
	return sh.dim == o.dim && sh.nu == o.nu && sh.ns == o.ns
}

// compatible reports agreement on NU and NS only (tensor operands may differ
// in dim).
func (sh shape) compatible(o shape) bool {
	return sh.nu == o.nu && sh.ns == o.ns
}

// unitLen returns NU^dim, the number of unit-index tuples.
func (sh shape) unitLen() int { return sh.pows[sh.dim] }

// denseLen returns NU^dim · NS, the dense storage length.
func (sh shape) denseLen() int { return sh.pows[sh.dim] * sh.ns }

// rows returns the CSR row count NU^(dim-1) · NS. Requires dim ≥ 1.
func (sh shape) rows() int { return sh.pows[sh.dim-1] * sh.ns }

// unitOffset linearizes a full unit-index tuple row-major (first axis
// slowest). Assumes a validated tuple.
func (sh shape) unitOffset(units []int) int {
	var off int
	for k := 0; k < sh.dim; k++ {
		off += units[k] * sh.pows[sh.dim-1-k]
	}

	return off
}

// offset returns the dense storage offset: series is the fastest axis.
// Assumes validated indices.
func (sh shape) offset(units []int, series int) int {
	return sh.unitOffset(units)*sh.ns + series
}

// checkIndex validates arity and ranges of an index tuple.
func (sh shape) checkIndex(units []int, series int) error {
	if len(units) != sh.dim {
		return fmt.Errorf("cfunc: want %d unit indices, got %d: %w", sh.dim, len(units), ErrOutOfRange)
	}
	for _, u := range units {
		if u < 0 || u >= sh.nu {
			return fmt.Errorf("cfunc: unit index %d outside [0,%d): %w", u, sh.nu, ErrOutOfRange)
		}
	}
	if series < 0 || series >= sh.ns {
		return fmt.Errorf("cfunc: series index %d outside [0,%d): %w", series, sh.ns, ErrOutOfRange)
	}

	return nil
}
