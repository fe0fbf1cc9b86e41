// Package interval implements closed real intervals under a total arithmetic.
//
// The interval package provides:
//
//   - Value — a closed range [Lo,Hi] of finite reals, the carrier type of the
//     comparison-function algebra.
//   - Two algebraically meaningful sentinels: Null = [0,0] (additive identity,
//     multiplicative absorber) and One = [1,1] (multiplicative identity).
//   - Total operations Add, Sub, Mul, Div, Inv, PowInt, Pow, NthRoot, SMul,
//     Abs, Dist and Width: every operation is defined for every input, and
//     mathematically undefined cases (division by a zero-containing interval,
//     even roots or non-integer powers of sign-incompatible intervals,
//     overflow to non-finite endpoints) collapse to Null instead of failing.
//   - A fixed-width little-endian byte codec for individual values.
//
// Totality is the load-bearing property: algorithms built on top (operator
// trees, CSR merges, relational closure) rely on Null behaving as a true
// identity/absorbing element, so no operation in this package ever panics or
// returns an error, and no result ever carries a NaN or infinite endpoint.
//
// All operations run in O(1) time and space.
package interval
