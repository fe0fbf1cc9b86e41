// SPDX-License-Identifier: MIT

// Package cfunc: the Constant leaf — one value broadcast to every index.
package cfunc

import "github.com/katalvlaran/cfalg/interval"

// Constant is a unit function holding a single interval value broadcast to
// all NU^dim · NS positions. The cheapest leaf: O(1) storage regardless of
// shape, and the only leaf whose zero/one character is statically known.
type Constant struct {
	sh  shape
	val interval.Value
}

// NewConstant creates a dim-dimensional constant function over NU units and
// NS series broadcasting v.
// Stage 1 (Validate): dim ∈ [0,MaxDim], NU ≥ 1, NS ≥ 1 (ErrBadShape).
// Stage 2 (Finalize): return the leaf.
// Complexity: O(1).
func NewConstant(dim, nu, ns int, v interval.Value) (*Constant, error) {
	sh, err := newShape(dim, nu, ns)
	if err != nil {
		return nil, err
	}

	return &Constant{sh: sh, val: v}, nil
}

// constant builds a Constant for an already-validated shape (internal).
func constant(sh shape, v interval.Value) *Constant {
	return &Constant{sh: sh, val: v}
}

// constNull builds the Null constant for an already-validated shape.
func constNull(sh shape) *Constant {
	return &Constant{sh: sh, val: interval.Null}
}

// Value returns the broadcast value.
// Complexity: O(1).
func (c *Constant) Value() interval.Value { return c.val }

// Dim returns the number of unit axes.
func (c *Constant) Dim() int { return c.sh.dim }

// Units returns NU.
func (c *Constant) Units() int { return c.sh.nu }

// Series returns NS.
func (c *Constant) Series() int { return c.sh.ns }

// Kind returns KindConstant.
func (c *Constant) Kind() Kind { return KindConstant }

// IsLeaf reports true: Constant is a concrete storage.
func (c *Constant) IsLeaf() bool { return true }

// IsAlg reports false.
func (c *Constant) IsAlg() bool { return false }

// IsZero reports whether the broadcast value is Null.
func (c *Constant) IsZero() bool { return c.val.IsNull() }

// IsOne reports whether the broadcast value is One.
func (c *Constant) IsOne() bool { return c.val.IsOne() }

// At returns the broadcast value after bounds-checking the indices.
// Complexity: O(dim).
func (c *Constant) At(units []int, series int) (interval.Value, error) {
	if err := c.sh.checkIndex(units, series); err != nil {
		return interval.Null, err
	}

	return c.val, nil
}

// Materialize returns the receiver: a Constant is already concrete.
func (c *Constant) Materialize() Func { return c }

func (c *Constant) shp() shape { return c.sh }

func (c *Constant) eval([]int, int) interval.Value { return c.val }
