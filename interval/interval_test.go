// SPDX-License-Identifier: MIT
// Package interval_test verifies the total arithmetic: construction, the
// identity/absorbing laws of Null and One, and totality at the edges.
package interval_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/cfalg/interval"
	"github.com/stretchr/testify/require"
)

// iv builds a Value through the validated constructor, failing the test on
// invalid fixtures so tables stay honest.
func iv(t *testing.T, lo, hi float64) interval.Value {
	t.Helper()
	v, err := interval.New(lo, hi)
	require.NoError(t, err)

	return v
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		lo, hi  float64
		wantErr error
	}{
		{"point", 2, 2, nil},
		{"ordinary", -1, 3, nil},
		{"inverted", 3, -1, interval.ErrInvalidInterval},
		{"nan lo", math.NaN(), 0, interval.ErrInvalidInterval},
		{"inf hi", 0, math.Inf(1), interval.ErrInvalidInterval},
		{"neg inf lo", math.Inf(-1), 0, interval.ErrInvalidInterval},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			v, err := interval.New(tc.lo, tc.hi)
			if tc.wantErr == nil {
				require.NoError(t, err)
				require.Equal(t, tc.lo, v.Lo)
				require.Equal(t, tc.hi, v.Hi)
			} else {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.wantErr))
			}
		})
	}
}

func TestSentinels(t *testing.T) {
	t.Parallel()

	require.True(t, interval.Null.IsNull())
	require.True(t, interval.One.IsOne())
	require.False(t, interval.One.IsNull())
	require.True(t, interval.Null.ContainsZero())
	require.False(t, interval.One.ContainsZero())
}

func TestAdd_IdentityAndEndpoints(t *testing.T) {
	t.Parallel()

	x := iv(t, 2, 3)
	y := iv(t, 4, 5)

	// Endpoint rule.
	require.Equal(t, iv(t, 6, 8), interval.Add(x, y))
	// Null is the additive identity on both sides.
	require.Equal(t, x, interval.Add(x, interval.Null))
	require.Equal(t, x, interval.Add(interval.Null, x))
}

func TestSub_Rules(t *testing.T) {
	t.Parallel()

	x := iv(t, 2, 3)
	require.Equal(t, iv(t, -2, 0), interval.Sub(iv(t, 1, 2), x))
	require.Equal(t, x, interval.Sub(x, interval.Null))
	require.Equal(t, interval.Neg(x), interval.Sub(interval.Null, x))
}

func TestMul_Laws(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b interval.Value
		want interval.Value
	}{
		{"positive", iv(t, 2, 3), iv(t, 4, 5), iv(t, 8, 15)},
		{"negative flips", iv(t, -3, -2), iv(t, 4, 5), iv(t, -15, -8)},
		{"crossing", iv(t, -1, 2), iv(t, 3, 4), iv(t, -4, 8)},
		{"one identity", iv(t, -7, 9), interval.One, iv(t, -7, 9)},
		{"null annihilates", iv(t, -7, 9), interval.Null, interval.Null},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, interval.Mul(tc.a, tc.b))
			// Multiplication is commutative.
			require.Equal(t, tc.want, interval.Mul(tc.b, tc.a))
		})
	}
}

func TestDivInv_Totalized(t *testing.T) {
	t.Parallel()

	x := iv(t, 2, 4)

	// Division by a zero-containing interval is absorbed into Null.
	require.Equal(t, interval.Null, interval.Div(x, iv(t, -1, 1)))
	require.Equal(t, interval.Null, interval.Div(x, interval.Null))
	// Identity divisor.
	require.Equal(t, x, interval.Div(x, interval.One))
	// Plain quotient: [2,4]/[2,2] = [1,2].
	require.Equal(t, iv(t, 1, 2), interval.Div(x, iv(t, 2, 2)))

	// Inv swaps endpoints on negative intervals.
	require.Equal(t, iv(t, -0.5, -0.25), interval.Inv(iv(t, -4, -2)))
	require.Equal(t, interval.Null, interval.Inv(interval.Null))
	require.Equal(t, interval.Null, interval.Inv(iv(t, -1, 2)))
}

func TestInverseLaws_Approx(t *testing.T) {
	t.Parallel()

	for _, x := range []interval.Value{iv(t, 2, 2), iv(t, -5, -5), iv(t, 0.25, 0.25)} {
		// For point intervals not crossing zero, x · 1/x ≈ One.
		got := interval.Mul(x, interval.Inv(x))
		require.InDelta(t, 1, got.Lo, 1e-12)
		require.InDelta(t, 1, got.Hi, 1e-12)

		// Inv is an involution away from zero.
		back := interval.Inv(interval.Inv(x))
		require.InDelta(t, x.Lo, back.Lo, 1e-12)
		require.InDelta(t, x.Hi, back.Hi, 1e-12)
	}
}

func TestTotality_OverflowCollapses(t *testing.T) {
	t.Parallel()

	huge := iv(t, math.MaxFloat64, math.MaxFloat64)

	for _, got := range []interval.Value{
		interval.Add(huge, huge),
		interval.Mul(huge, huge),
		interval.Sub(interval.Neg(huge), huge),
		interval.PowInt(huge, 3),
	} {
		require.Equal(t, interval.Null, got)
		require.False(t, math.IsInf(got.Lo, 0) || math.IsInf(got.Hi, 0))
	}
}

func TestSMulNegAbs(t *testing.T) {
	t.Parallel()

	x := iv(t, -2, 3)

	require.Equal(t, iv(t, -6, 4), interval.SMul(x, -2))
	require.Equal(t, iv(t, -3, 2), interval.Neg(x))
	require.Equal(t, interval.Null, interval.SMul(x, math.NaN()))

	require.Equal(t, iv(t, 0, 3), interval.Abs(x))
	require.Equal(t, iv(t, 2, 5), interval.Abs(iv(t, -5, -2)))
	require.Equal(t, iv(t, 2, 5), interval.Abs(iv(t, 2, 5)))
}

func TestDistWidthContains(t *testing.T) {
	t.Parallel()

	a := iv(t, 1, 5)
	b := iv(t, 2, 4)

	require.Equal(t, 1.0, interval.Dist(a, b))
	require.Equal(t, 4.0, a.Width())
	require.True(t, a.Contains(b))
	require.False(t, b.Contains(a))
	// Equality is exact pair equality, not containment.
	require.False(t, a.Eq(b))
	require.True(t, a.Eq(iv(t, 1, 5)))
}
