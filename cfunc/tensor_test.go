// SPDX-License-Identifier: MIT
// Package cfunc_test: tensor products — construction guards, lazy
// evaluation and Cartesian expansion.
package cfunc_test

import (
	"testing"

	"github.com/katalvlaran/cfalg/cfunc"
	"github.com/katalvlaran/cfalg/interval"
	"github.com/stretchr/testify/require"
)

func TestTensor_SoftFailures(t *testing.T) {
	t.Parallel()

	a := constOf(t, 1, 4, 2, interval.One)

	_, err := cfunc.Tensor(nil, a)
	require.ErrorIs(t, err, cfunc.ErrNilFunc)
	_, err = cfunc.Tensor(a, nil)
	require.ErrorIs(t, err, cfunc.ErrNilFunc)

	_, err = cfunc.Tensor(a, constOf(t, 1, 3, 2, interval.One))
	require.ErrorIs(t, err, cfunc.ErrShapeMismatch)
	_, err = cfunc.Tensor(a, constOf(t, 1, 4, 1, interval.One))
	require.ErrorIs(t, err, cfunc.ErrShapeMismatch)

	deep := constOf(t, 2, 4, 2, interval.One)
	_, err = cfunc.Tensor(deep, constOf(t, 3, 4, 2, interval.One))
	require.ErrorIs(t, err, cfunc.ErrDimOverflow)
}

func TestTensor_ShortCircuits(t *testing.T) {
	t.Parallel()

	s := sparseOf(t, 1, 2, 1, []cfunc.Entry{e1(0, 0, iv(t, 2, 2))})

	// A statically zero operand collapses the whole product.
	empty := sparseOf(t, 1, 2, 1, nil)
	z, err := cfunc.Tensor(empty, s)
	require.NoError(t, err)
	require.True(t, z.IsZero())
	require.Equal(t, 2, z.Dim())

	// Constant pairs fold.
	p, err := cfunc.Tensor(constOf(t, 1, 2, 1, iv(t, 2, 3)), constOf(t, 1, 2, 1, iv(t, 4, 4)))
	require.NoError(t, err)
	require.Equal(t, cfunc.KindConstant, p.Kind())
	require.Equal(t, iv(t, 8, 12), at(t, p, []int{1, 0}, 0))
}

func TestTensor_SparseSparse(t *testing.T) {
	t.Parallel()

	a := sparseOf(t, 1, 2, 1, []cfunc.Entry{e1(0, 0, iv(t, 2, 2))})
	b := sparseOf(t, 1, 2, 1, []cfunc.Entry{e1(1, 0, iv(t, 3, 4))})

	prod, err := cfunc.Tensor(a, b)
	require.NoError(t, err)
	require.Equal(t, cfunc.KindTensor, prod.Kind())
	require.Equal(t, 2, prod.Dim())

	// The product is present exactly on the Cartesian product of patterns.
	require.Equal(t, iv(t, 6, 8), at(t, prod, []int{0, 1}, 0))
	require.Equal(t, interval.Null, at(t, prod, []int{0, 0}, 0))
	require.Equal(t, interval.Null, at(t, prod, []int{1, 1}, 0))

	m, ok := prod.Materialize().(*cfunc.Sparse)
	require.True(t, ok)
	require.Equal(t, 1, m.NNZ())
	requireSameEval(t, prod, m)
}

func TestTensor_SparseConst(t *testing.T) {
	t.Parallel()

	s := sparseOf(t, 1, 2, 1, []cfunc.Entry{e1(0, 0, iv(t, 2, 2))})
	c := constOf(t, 1, 2, 1, iv(t, 3, 3))

	// Sparse ⊗ Constant: every present left value spreads over the whole
	// trailing axis.
	sc, err := cfunc.Tensor(s, c)
	require.NoError(t, err)
	m, ok := sc.Materialize().(*cfunc.Sparse)
	require.True(t, ok)
	require.Equal(t, 2, m.NNZ())
	require.Equal(t, iv(t, 6, 6), at(t, m, []int{0, 0}, 0))
	require.Equal(t, iv(t, 6, 6), at(t, m, []int{0, 1}, 0))
	require.Equal(t, interval.Null, at(t, m, []int{1, 0}, 0))
	requireSameEval(t, sc, m)

	// Constant ⊗ Sparse: the sparse pattern replicates under every leading
	// tuple.
	cs, err := cfunc.Tensor(c, s)
	require.NoError(t, err)
	mc, ok := cs.Materialize().(*cfunc.Sparse)
	require.True(t, ok)
	require.Equal(t, 2, mc.NNZ())
	require.Equal(t, iv(t, 6, 6), at(t, mc, []int{0, 0}, 0))
	require.Equal(t, iv(t, 6, 6), at(t, mc, []int{1, 0}, 0))
	require.Equal(t, interval.Null, at(t, mc, []int{1, 1}, 0))
	requireSameEval(t, cs, mc)
}

func TestTensor_ScalarConstOperand(t *testing.T) {
	t.Parallel()

	// A dim-0 constant adds no axes: the product keeps the other operand's
	// shape and scales its values.
	s := sparseOf(t, 1, 3, 2, []cfunc.Entry{
		e1(0, 1, iv(t, 2, 2)),
		e1(2, 0, iv(t, -1, -1)),
	})
	k := constOf(t, 0, 3, 2, iv(t, 4, 4))

	right, err := cfunc.Tensor(s, k)
	require.NoError(t, err)
	require.Equal(t, 1, right.Dim())
	mr, ok := right.Materialize().(*cfunc.Sparse)
	require.True(t, ok)
	require.Equal(t, 2, mr.NNZ())
	require.Equal(t, iv(t, 8, 8), at(t, mr, []int{0}, 1))
	require.Equal(t, iv(t, -4, -4), at(t, mr, []int{2}, 0))

	left, err := cfunc.Tensor(k, s)
	require.NoError(t, err)
	requireSameEval(t, right, left.Materialize())
}

func TestTensor_DenseExpansion(t *testing.T) {
	t.Parallel()

	d := denseOf(t, 1, 2, 1, []interval.Value{iv(t, 1, 1), iv(t, 2, 2)})
	s := sparseOf(t, 1, 2, 1, []cfunc.Entry{e1(1, 0, iv(t, 3, 3))})

	prod, err := cfunc.Tensor(d, s)
	require.NoError(t, err)
	m := prod.Materialize()
	require.Equal(t, cfunc.KindDense, m.Kind())
	require.Equal(t, iv(t, 3, 3), at(t, m, []int{0, 1}, 0))
	require.Equal(t, iv(t, 6, 6), at(t, m, []int{1, 1}, 0))
	require.Equal(t, interval.Null, at(t, m, []int{1, 0}, 0))
	requireSameEval(t, prod, m)

	// Dense ⊗ Dense covers every index pair.
	dd, err := cfunc.Tensor(d, d)
	require.NoError(t, err)
	md := dd.Materialize()
	require.Equal(t, cfunc.KindDense, md.Kind())
	require.Equal(t, iv(t, 4, 4), at(t, md, []int{1, 1}, 0))
	requireSameEval(t, dd, md)
}

func TestTensor_SeriesAlignment(t *testing.T) {
	t.Parallel()

	// The series axis is shared, never multiplied out: values combine only
	// within the same series index.
	a := sparseOf(t, 1, 2, 2, []cfunc.Entry{e1(0, 0, iv(t, 2, 2))})
	b := sparseOf(t, 1, 2, 2, []cfunc.Entry{
		e1(1, 0, iv(t, 3, 3)),
		e1(1, 1, iv(t, 5, 5)),
	})

	prod, err := cfunc.Tensor(a, b)
	require.NoError(t, err)
	m := prod.Materialize()
	require.Equal(t, iv(t, 6, 6), at(t, m, []int{0, 1}, 0))
	// Series 1 has no left value, so nothing survives there.
	require.Equal(t, interval.Null, at(t, m, []int{0, 1}, 1))
	requireSameEval(t, prod, m)
}
