// SPDX-License-Identifier: MIT

// Package interval: total powers and roots.
//
// Edge rules (totalized, see package doc):
//   - PowInt(x, 0)  = One unless x is Null; 0^0 totalizes to Null.
//   - PowInt(x, n<0) requires x to exclude zero, else Null.
//   - Pow with a non-integer exponent requires a strictly positive interval.
//   - NthRoot(x, 0) is Null always; NthRoot with an even index requires
//     x ⊆ [0,∞); a non-positive index totalizes to Null.
package interval

import "math"

// PowInt raises the interval to an integer power under the total arithmetic.
// Odd exponents are monotone over all reals; even exponents reflect the
// negative/positive/zero-crossing cases, mapping a crossing [a,b] to
// [0, max(a^n, b^n)].
// Complexity: O(1).
func PowInt(v Value, n int) Value {
	switch {
	case n == 0:
		// 0^0 is undefined; any other base yields One.
		if v.IsNull() {
			return Null
		}

		return One
	case n < 0:
		// x^-n = (1/x)^n; Inv already absorbs zero-containing bases.
		inv := Inv(v)
		if inv.IsNull() {
			return Null
		}

		return PowInt(inv, -n)
	}

	e := float64(n)
	lo := math.Pow(v.Lo, e)
	hi := math.Pow(v.Hi, e)
	if n%2 != 0 {
		// Odd power: strictly monotone, endpoints map in order.
		return total(lo, hi)
	}

	// Even power: orientation depends on the sign of the interval.
	switch {
	case v.Lo >= 0:
		return total(lo, hi)
	case v.Hi <= 0:
		return total(hi, lo)
	default:
		return total(0, math.Max(lo, hi))
	}
}

// Pow raises the interval to a real power. An integer exponent delegates to
// PowInt; a non-integer exponent is defined only on strictly positive
// intervals and totalizes to Null otherwise.
// Complexity: O(1).
func Pow(v Value, r float64) Value {
	if !finite(r) {
		return Null
	}
	if r == math.Trunc(r) && math.Abs(r) <= math.MaxInt32 {
		return PowInt(v, int(r))
	}
	if v.Lo <= 0 {
		return Null
	}

	lo := math.Pow(v.Lo, r)
	hi := math.Pow(v.Hi, r)
	if r < 0 {
		// x^r is decreasing for negative r on positive intervals.
		lo, hi = hi, lo
	}

	return total(lo, hi)
}

// NthRoot returns the n-th root of the interval. Odd indices are defined on
// all reals (sign-preserving); even indices require a non-negative interval.
// Index 0 is undefined and a negative index is outside the root contract, so
// both totalize to Null.
// Complexity: O(1).
func NthRoot(v Value, n int) Value {
	switch {
	case n <= 0:
		return Null
	case n == 1:
		return v
	case n%2 == 0 && v.Lo < 0:
		return Null
	}

	return total(root(v.Lo, n), root(v.Hi, n))
}

// root computes the sign-preserving n-th root of a single endpoint.
func root(x float64, n int) float64 {
	r := math.Pow(math.Abs(x), 1/float64(n))

	return math.Copysign(r, x)
}
