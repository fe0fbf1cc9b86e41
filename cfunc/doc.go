// Package cfunc implements multi-dimensional, interval-valued unit functions
// and their lazy operator algebra.
//
// A unit function maps dim unit-axis indices in [0,NU) plus one series index
// in [0,NS) to an interval.Value. Three concrete storages exist:
//
//   - Constant — a single value broadcast to every index.
//   - Dense    — a flat row-major array of NU^dim·NS values (series fastest).
//   - Sparse   — a CSR-like layout: one fixed-width bitmask per row (all unit
//     axes except the last, cross series) over the last axis, plus a packed
//     array of only the present values. Absent entries are implicitly Null;
//     no Null is ever stored explicitly.
//
// Binary arithmetic (Add, Sub, Mul, Div), the tensor product (Tensor) and
// powers/roots (PowInt, Pow, NthRoot, plus Neg, Inv, SMul) build lazy
// operator-tree nodes instead of computing eagerly. Node construction applies
// algebraic short-circuits first — x+Null=x, x·Null=Null, x·One=x, x/One=x,
// One/x=1/x, Constant∘Constant folds immediately, nested powers compose
// exponents — so many expressions never allocate a node at all. Every node
// supports pointwise evaluation through At without materializing; Materialize
// forces a tree into a concrete Constant/Dense/Sparse leaf via the pairwise
// dispatch in materialize.go (CSR union/intersection merges for
// sparse-sparse, Cartesian expansion for tensor products).
//
// Failure channels are deliberate and distinct:
//
//   - Shape mismatches (dim/NU/NS, tensor dimension overflow) are soft:
//     operations return ErrShapeMismatch/ErrDimOverflow sentinels.
//   - Undefined arithmetic never fails: it is absorbed into the Null value by
//     the interval package.
//   - Structural invariant violations (a malformed CSR handed to an internal
//     constructor) are programmer errors and panic.
//
// All structures are immutable after construction, so sharing subtrees across
// expressions and goroutines needs no locks.
package cfunc
