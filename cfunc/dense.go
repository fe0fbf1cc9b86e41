// SPDX-License-Identifier: MIT

// Package cfunc: the Dense leaf — a fully materialized flat array.
//
// Layout: row-major over the unit axes (first axis slowest) with the series
// index as the fastest axis, addressed through the precomputed stride table
// pows[i] = NU^i:
//
//	offset(u0..u_{dim-1}, s) = (Σ_k u_k · NU^(dim-1-k)) · NS + s
package cfunc

import "github.com/katalvlaran/cfalg/interval"

// Dense is a unit function backed by a flat slice of NU^dim · NS values.
// Explicit Nulls are legal in dense storage (unlike Sparse, where absence
// encodes Null).
type Dense struct {
	sh   shape
	vals []interval.Value // length == sh.denseLen()
}

// NewDense creates a dense function over a copy of vals.
// Stage 1 (Validate): shape (ErrBadShape), then len(vals) == NU^dim · NS
// (ErrBadLength).
// Stage 2 (Prepare): copy the slice — the leaf owns its backing array.
// Stage 3 (Finalize): return the leaf.
// Complexity: O(len(vals)) time and memory.
func NewDense(dim, nu, ns int, vals []interval.Value) (*Dense, error) {
	sh, err := newShape(dim, nu, ns)
	if err != nil {
		return nil, err
	}
	if len(vals) != sh.denseLen() {
		return nil, ErrBadLength
	}

	own := make([]interval.Value, len(vals))
	copy(own, vals)

	return &Dense{sh: sh, vals: own}, nil
}

// newDense wraps an already-validated shape and an owned slice (internal;
// the materializer hands over freshly allocated slices).
func newDense(sh shape, vals []interval.Value) *Dense {
	if len(vals) != sh.denseLen() {
		panic("cfunc: internal dense length violation")
	}

	return &Dense{sh: sh, vals: vals}
}

// Values returns a copy of the backing array in storage order.
// Complexity: O(len).
func (d *Dense) Values() []interval.Value {
	out := make([]interval.Value, len(d.vals))
	copy(out, d.vals)

	return out
}

// Len returns the storage length NU^dim · NS.
// Complexity: O(1).
func (d *Dense) Len() int { return len(d.vals) }

// Dim returns the number of unit axes.
func (d *Dense) Dim() int { return d.sh.dim }

// Units returns NU.
func (d *Dense) Units() int { return d.sh.nu }

// Series returns NS.
func (d *Dense) Series() int { return d.sh.ns }

// Kind returns KindDense.
func (d *Dense) Kind() Kind { return KindDense }

// IsLeaf reports true.
func (d *Dense) IsLeaf() bool { return true }

// IsAlg reports false.
func (d *Dense) IsAlg() bool { return false }

// IsZero reports false: dense zero-ness is not statically known and is never
// detected by scanning.
func (d *Dense) IsZero() bool { return false }

// IsOne reports false, for the same reason as IsZero.
func (d *Dense) IsOne() bool { return false }

// At returns the stored value at the given indices, bounds-checked.
// Complexity: O(dim).
func (d *Dense) At(units []int, series int) (interval.Value, error) {
	if err := d.sh.checkIndex(units, series); err != nil {
		return interval.Null, err
	}

	return d.vals[d.sh.offset(units, series)], nil
}

// Materialize returns the receiver.
func (d *Dense) Materialize() Func { return d }

func (d *Dense) shp() shape { return d.sh }

func (d *Dense) eval(units []int, series int) interval.Value {
	return d.vals[d.sh.offset(units, series)]
}

// unitAt reads by linearized unit offset and series (internal; used by the
// tensor expansion which walks linear unit offsets rather than tuples).
func (d *Dense) unitAt(unitOff, series int) interval.Value {
	return d.vals[unitOff*d.sh.ns+series]
}
