// SPDX-License-Identifier: MIT

// Package interval: total ring-like operations on Values.
// Every function here is total: for any pair of valid Values the result is a
// valid Value, with undefined or overflowing cases absorbed into Null.
package interval

import "math"

// Add returns the interval sum [a.Lo+b.Lo, a.Hi+b.Hi].
// Null is the additive identity: Add(x, Null) == x.
// Complexity: O(1).
func Add(a, b Value) Value {
	return total(a.Lo+b.Lo, a.Hi+b.Hi)
}

// Sub returns the interval difference [a.Lo-b.Hi, a.Hi-b.Lo].
// Sub(x, Null) == x and Sub(Null, x) == Neg(x) follow from the endpoint rule.
// Complexity: O(1).
func Sub(a, b Value) Value {
	return total(a.Lo-b.Hi, a.Hi-b.Lo)
}

// Mul returns the interval product: the min/max over all four endpoint
// products. Null annihilates (Mul(x, Null) == Null) and One is the identity.
// Complexity: O(1).
func Mul(a, b Value) Value {
	p1 := a.Lo * b.Lo
	p2 := a.Lo * b.Hi
	p3 := a.Hi * b.Lo
	p4 := a.Hi * b.Hi

	return total(min4(p1, p2, p3, p4), max4(p1, p2, p3, p4))
}

// Div returns the interval quotient a/b, totalized: if b contains zero the
// quotient is undefined and Div returns Null; otherwise a · Inv(b).
// Complexity: O(1).
func Div(a, b Value) Value {
	if b.ContainsZero() {
		return Null
	}

	return Mul(a, Inv(b))
}

// Inv returns the elementwise reciprocal [1/Hi, 1/Lo], totalized: an interval
// containing zero (including Null itself) has no reciprocal and maps to Null.
// The endpoint swap keeps Lo ≤ Hi for negative intervals.
// Complexity: O(1).
func Inv(v Value) Value {
	if v.ContainsZero() {
		return Null
	}

	return total(1/v.Hi, 1/v.Lo)
}

// SMul scales the interval by the real factor k, swapping endpoints when k is
// negative. A non-finite k totalizes to Null.
// Complexity: O(1).
func SMul(v Value, k float64) Value {
	lo, hi := k*v.Lo, k*v.Hi
	if lo > hi {
		lo, hi = hi, lo
	}

	return total(lo, hi)
}

// Neg returns the reflection [-Hi,-Lo]; shorthand for SMul(v, -1).
// Complexity: O(1).
func Neg(v Value) Value {
	return total(-v.Hi, -v.Lo)
}

// Abs returns the interval of absolute values: identity on non-negative
// intervals, reflection on non-positive ones and [0, max(-Lo,Hi)] when the
// interval crosses zero.
// Complexity: O(1).
func Abs(v Value) Value {
	switch {
	case v.Lo >= 0:
		return v
	case v.Hi <= 0:
		return total(-v.Hi, -v.Lo)
	default:
		return total(0, math.Max(-v.Lo, v.Hi))
	}
}

// Dist returns the sup-norm distance max(|a.Lo-b.Lo|, |a.Hi-b.Hi|) between
// two intervals, treated as points in R².
// Complexity: O(1).
func Dist(a, b Value) float64 {
	return math.Max(math.Abs(a.Lo-b.Lo), math.Abs(a.Hi-b.Hi))
}

// min4 returns the smallest of four finite-or-infinite float64 values.
func min4(a, b, c, d float64) float64 {
	return math.Min(math.Min(a, b), math.Min(c, d))
}

// max4 returns the largest of four finite-or-infinite float64 values.
func max4(a, b, c, d float64) float64 {
	return math.Max(math.Max(a, b), math.Max(c, d))
}
