// SPDX-License-Identifier: MIT
// Package cfunc_test: shared fixtures for the function-algebra tests.
package cfunc_test

import (
	"testing"

	"github.com/katalvlaran/cfalg/cfunc"
	"github.com/katalvlaran/cfalg/interval"
	"github.com/stretchr/testify/require"
)

// iv builds a validated interval or fails the test.
func iv(t *testing.T, lo, hi float64) interval.Value {
	t.Helper()
	v, err := interval.New(lo, hi)
	require.NoError(t, err)

	return v
}

// constOf builds a Constant leaf or fails the test.
func constOf(t *testing.T, dim, nu, ns int, v interval.Value) *cfunc.Constant {
	t.Helper()
	c, err := cfunc.NewConstant(dim, nu, ns, v)
	require.NoError(t, err)

	return c
}

// denseOf builds a Dense leaf or fails the test.
func denseOf(t *testing.T, dim, nu, ns int, vals []interval.Value) *cfunc.Dense {
	t.Helper()
	d, err := cfunc.NewDense(dim, nu, ns, vals)
	require.NoError(t, err)

	return d
}

// sparseOf builds a Sparse leaf or fails the test.
func sparseOf(t *testing.T, dim, nu, ns int, entries []cfunc.Entry) *cfunc.Sparse {
	t.Helper()
	s, err := cfunc.NewSparse(dim, nu, ns, entries)
	require.NoError(t, err)

	return s
}

// e1 is a one-dimensional sparse entry.
func e1(u, s int, v interval.Value) cfunc.Entry {
	return cfunc.Entry{Units: []int{u}, Series: s, Val: v}
}

// e2 is a two-dimensional sparse entry.
func e2(u0, u1, s int, v interval.Value) cfunc.Entry {
	return cfunc.Entry{Units: []int{u0, u1}, Series: s, Val: v}
}

// at evaluates f at one index or fails the test.
func at(t *testing.T, f cfunc.Func, units []int, series int) interval.Value {
	t.Helper()
	v, err := f.At(units, series)
	require.NoError(t, err)

	return v
}

// forEachIndex enumerates every (unit tuple, series) pair of a shape.
func forEachIndex(dim, nu, ns int, fn func(units []int, series int)) {
	units := make([]int, dim)
	var walk func(axis int)
	walk = func(axis int) {
		if axis == dim {
			for s := 0; s < ns; s++ {
				fn(units, s)
			}

			return
		}
		for u := 0; u < nu; u++ {
			units[axis] = u
			walk(axis + 1)
		}
	}
	walk(0)
}

// requireSameEval asserts pointwise equality of two same-shape functions at
// every index.
func requireSameEval(t *testing.T, want, got cfunc.Func) {
	t.Helper()
	require.Equal(t, want.Dim(), got.Dim())
	require.Equal(t, want.Units(), got.Units())
	require.Equal(t, want.Series(), got.Series())
	forEachIndex(want.Dim(), want.Units(), want.Series(), func(units []int, series int) {
		require.Equal(t, at(t, want, units, series), at(t, got, units, series),
			"diverges at units=%v series=%d", units, series)
	})
}
