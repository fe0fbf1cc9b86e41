// SPDX-License-Identifier: MIT
// Package cfunc_test: storage conversions.
package cfunc_test

import (
	"testing"

	"github.com/katalvlaran/cfalg/cfunc"
	"github.com/katalvlaran/cfalg/interval"
	"github.com/stretchr/testify/require"
)

func TestToDense(t *testing.T) {
	t.Parallel()

	_, err := cfunc.ToDense(nil)
	require.ErrorIs(t, err, cfunc.ErrNilFunc)

	// A dense input passes through untouched.
	d := denseOf(t, 1, 2, 1, []interval.Value{iv(t, 1, 1), interval.Null})
	same, err := cfunc.ToDense(d)
	require.NoError(t, err)
	require.Same(t, d, same)

	// Constants broadcast.
	c, err := cfunc.ToDense(constOf(t, 1, 3, 2, iv(t, 2, 5)))
	require.NoError(t, err)
	require.Equal(t, 6, c.Len())
	for _, v := range c.Values() {
		require.Equal(t, iv(t, 2, 5), v)
	}

	// Sparse expansion fills absent positions with explicit Nulls.
	s := sparseOf(t, 2, 2, 1, []cfunc.Entry{
		e2(0, 1, 0, iv(t, 4, 4)),
		e2(1, 0, 0, iv(t, -2, -2)),
	})
	ds, err := cfunc.ToDense(s)
	require.NoError(t, err)
	require.Equal(t, []interval.Value{
		interval.Null, iv(t, 4, 4), iv(t, -2, -2), interval.Null,
	}, ds.Values())
	requireSameEval(t, s, ds)
}

func TestToSparse(t *testing.T) {
	t.Parallel()

	_, err := cfunc.ToSparse(nil)
	require.ErrorIs(t, err, cfunc.ErrNilFunc)

	// Sparse storage needs at least one unit axis.
	_, err = cfunc.ToSparse(constOf(t, 0, 1, 3, interval.One))
	require.ErrorIs(t, err, cfunc.ErrBadShape)

	// A sparse input passes through untouched.
	s := sparseOf(t, 1, 3, 1, []cfunc.Entry{e1(1, 0, iv(t, 2, 2))})
	same, err := cfunc.ToSparse(s)
	require.NoError(t, err)
	require.Same(t, s, same)

	// The Null constant compresses to the empty pattern, any other constant
	// to the full one.
	empty, err := cfunc.ToSparse(constOf(t, 2, 3, 2, interval.Null))
	require.NoError(t, err)
	require.True(t, empty.IsZero())

	full, err := cfunc.ToSparse(constOf(t, 2, 3, 2, iv(t, 7, 7)))
	require.NoError(t, err)
	require.Equal(t, 18, full.NNZ())
	require.Equal(t, iv(t, 7, 7), at(t, full, []int{2, 0}, 1))

	// Dense compression drops explicit Nulls.
	d := denseOf(t, 1, 3, 1, []interval.Value{iv(t, 1, 1), interval.Null, iv(t, 3, 3)})
	sd, err := cfunc.ToSparse(d)
	require.NoError(t, err)
	require.Equal(t, 2, sd.NNZ())
	requireSameEval(t, d, sd)
}

func TestConversions_RoundTripAndForcing(t *testing.T) {
	t.Parallel()

	s := sparseOf(t, 2, 3, 2, []cfunc.Entry{
		e2(0, 2, 1, iv(t, 1, 2)),
		e2(1, 1, 0, iv(t, -4, -3)),
		e2(2, 0, 1, iv(t, 5, 5)),
	})

	// Sparse → Dense → Sparse restores the exact entry list.
	d, err := cfunc.ToDense(s)
	require.NoError(t, err)
	back, err := cfunc.ToSparse(d)
	require.NoError(t, err)
	require.Equal(t, s.Entries(), back.Entries())

	// Converting a lazy tree forces it first.
	tree, err := cfunc.PowInt(s, 2)
	require.NoError(t, err)
	forced, err := cfunc.ToSparse(tree)
	require.NoError(t, err)
	require.Equal(t, 3, forced.NNZ())
	require.Equal(t, iv(t, 9, 16), at(t, forced, []int{1, 1}, 0))
}
