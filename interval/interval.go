// SPDX-License-Identifier: MIT

// Package interval: the Value type, sentinels and structural predicates.
// Arithmetic lives in arith.go and pow.go; the byte codec in codec.go.
package interval

import "math"

// Value is a closed real interval [Lo,Hi].
//
// Invariant: both endpoints are finite and Lo ≤ Hi. Every Value produced by
// this package satisfies the invariant; New enforces it for caller-supplied
// endpoints. Equality is exact pair equality (==), not containment.
type Value struct {
	Lo float64 // lower endpoint, finite
	Hi float64 // upper endpoint, finite, ≥ Lo
}

// Null is the algebraic null [0,0]: the additive identity and the absorbing
// element of multiplication. Every undefined operation totalizes to Null.
var Null = Value{Lo: 0, Hi: 0}

// One is the multiplicative identity [1,1].
var One = Value{Lo: 1, Hi: 1}

// New validates the endpoint pair and returns the corresponding Value.
// Stage 1 (Validate): both endpoints finite, lo ≤ hi.
// Stage 2 (Finalize): return Value or ErrInvalidInterval.
// Complexity: O(1).
func New(lo, hi float64) (Value, error) {
	if !finite(lo) || !finite(hi) || lo > hi {
		return Null, ErrInvalidInterval
	}

	return Value{Lo: lo, Hi: hi}, nil
}

// IsNull reports whether v is exactly the Null sentinel [0,0].
// Complexity: O(1).
func (v Value) IsNull() bool { return v == Null }

// IsOne reports whether v is exactly the One sentinel [1,1].
// Complexity: O(1).
func (v Value) IsOne() bool { return v == One }

// Eq reports exact pair equality of both endpoints.
// Complexity: O(1).
func (v Value) Eq(o Value) bool { return v == o }

// Contains reports interval inclusion: o ⊆ v.
// Complexity: O(1).
func (v Value) Contains(o Value) bool { return v.Lo <= o.Lo && o.Hi <= v.Hi }

// ContainsZero reports whether 0 ∈ [Lo,Hi]. Note that Null contains zero, so
// Inv/Div of Null absorb to Null without a dedicated case.
// Complexity: O(1).
func (v Value) ContainsZero() bool { return v.Lo <= 0 && v.Hi >= 0 }

// Width returns the length Hi-Lo of the interval.
// Complexity: O(1).
func (v Value) Width() float64 { return v.Hi - v.Lo }

// finite reports whether x is neither NaN nor ±Inf.
func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// total is the totalizing constructor used by every arithmetic operation:
// a non-finite endpoint (overflow, 0·∞ artifacts) collapses the whole result
// to Null. Callers guarantee lo ≤ hi for finite inputs.
func total(lo, hi float64) Value {
	if !finite(lo) || !finite(hi) {
		return Null
	}

	return Value{Lo: lo, Hi: hi}
}
