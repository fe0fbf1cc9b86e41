// SPDX-License-Identifier: MIT
// Package cfunc: sentinel error set.
// All public constructors and operations return these sentinels; tests match
// them via errors.Is. Undefined arithmetic is never an error (it totalizes to
// interval.Null); panics are reserved for structural invariant violations in
// private constructors.

package cfunc

import "errors"

var (
	// ErrNilFunc indicates a nil Func operand.
	ErrNilFunc = errors.New("cfunc: nil function")

	// ErrBadShape is returned when a requested shape is invalid: dim outside
	// [0,MaxDim] (or 0 for Sparse), NU < 1 or NS < 1.
	ErrBadShape = errors.New("cfunc: invalid shape")

	// ErrShapeMismatch is the soft failure for binary and tensor operations
	// whose operands disagree on dim, NU or NS. Callers branch on it without
	// any exception-handling overhead; it never indicates corruption.
	ErrShapeMismatch = errors.New("cfunc: operand shape mismatch")

	// ErrDimOverflow is the soft failure for a tensor product whose combined
	// dimensionality would exceed MaxDim. Returned before any allocation.
	ErrDimOverflow = errors.New("cfunc: tensor dimension overflow")

	// ErrOutOfRange indicates an index (unit axis or series) outside the
	// function's bounds, or an index tuple of the wrong arity.
	ErrOutOfRange = errors.New("cfunc: index out of range")

	// ErrBadLength indicates a value slice whose length disagrees with the
	// declared shape.
	ErrBadLength = errors.New("cfunc: values length mismatch")

	// ErrDuplicateEntry indicates two sparse entries sharing one
	// (units...,series) key during validated construction.
	ErrDuplicateEntry = errors.New("cfunc: duplicate sparse entry")

	// ErrNullEntry indicates an explicit Null value in sparse construction;
	// Null presence is always implicit in the CSR layout.
	ErrNullEntry = errors.New("cfunc: explicit null entry")
)
