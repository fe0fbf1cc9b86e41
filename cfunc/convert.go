// SPDX-License-Identifier: MIT

// Package cfunc: storage conversions between the three leaf kinds.
//
// Both directions materialize lazy input first, so a conversion doubles as a
// forcing operation. Converting a leaf that already has the requested kind
// returns it unchanged, which makes both conversions idempotent.
package cfunc

import (
	"github.com/katalvlaran/cfalg/bitset"
	"github.com/katalvlaran/cfalg/interval"
)

// ToDense forces f and expands the result into dense storage. A Constant
// broadcasts its value, a Sparse fills absent positions with explicit Nulls.
// Complexity: O(NU^dim · NS) beyond the cost of materialization.
func ToDense(f Func) (*Dense, error) {
	if f == nil {
		return nil, ErrNilFunc
	}

	switch t := f.Materialize().(type) {
	case *Dense:
		return t, nil
	case *Constant:
		out := make([]interval.Value, t.sh.denseLen())
		for i := range out {
			out[i] = t.val
		}

		return newDense(t.sh, out), nil
	case *Sparse:
		sh := t.sh
		out := make([]interval.Value, sh.denseLen())
		rows, nu, ns := sh.rows(), sh.nu, sh.ns
		for r := 0; r < rows; r++ {
			words := t.RowBits(r)
			lead, series := r/ns, r%ns
			idx := t.rowPtr[r]
			for bit := 0; bit < nu; bit++ {
				if !bitset.Test(words, bit) {
					continue // implicit Null, and out starts zeroed
				}
				out[(lead*nu+bit)*ns+series] = t.vals[idx]
				idx++
			}
		}

		return newDense(sh, out), nil
	}

	panic("cfunc: materialize returned a non-leaf")
}

// ToSparse forces f and compresses the result into CSR/bitset storage,
// dropping every Null position. Sparse storage needs a last unit axis, so a
// dim-0 function fails softly with ErrBadShape. A non-null Constant produces
// the full presence pattern; the Null Constant produces the empty one.
// Complexity: O(NU^dim · NS) beyond the cost of materialization.
func ToSparse(f Func) (*Sparse, error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	if f.Dim() < 1 {
		return nil, ErrBadShape
	}

	switch t := f.Materialize().(type) {
	case *Sparse:
		return t, nil
	case *Constant:
		return constToSparse(t), nil
	case *Dense:
		return denseToSparse(t), nil
	}

	panic("cfunc: materialize returned a non-leaf")
}

// constToSparse broadcasts a constant into CSR form: empty for Null, full
// masks with the value repeated NU times per row otherwise.
func constToSparse(c *Constant) *Sparse {
	sh := c.sh
	rows, wpr := sh.rows(), sh.wordsPerRow()
	ebits := make([]uint32, rows*wpr)
	rowPtr := make([]int, rows+1)
	if c.val.IsNull() {
		return newSparse(sh, ebits, rowPtr, nil)
	}

	full := bitset.FullMask(wpr, sh.nu)
	vals := make([]interval.Value, rows*sh.nu)
	for r := 0; r < rows; r++ {
		copy(ebits[r*wpr:(r+1)*wpr], full)
		rowPtr[r+1] = (r + 1) * sh.nu
	}
	for i := range vals {
		vals[i] = c.val
	}

	return newSparse(sh, ebits, rowPtr, vals)
}

// denseToSparse scans the dense array row by row, recording non-Null values.
func denseToSparse(d *Dense) *Sparse {
	sh := d.sh
	rows, wpr := sh.rows(), sh.wordsPerRow()
	ebits := make([]uint32, rows*wpr)
	rowPtr := make([]int, rows+1)
	vals := make([]interval.Value, 0, len(d.vals))

	nu, ns := sh.nu, sh.ns
	for r := 0; r < rows; r++ {
		lead, series := r/ns, r%ns
		ow := ebits[r*wpr : (r+1)*wpr]
		for bit := 0; bit < nu; bit++ {
			v := d.vals[(lead*nu+bit)*ns+series]
			if v.IsNull() {
				continue
			}
			bitset.Set(ow, bit)
			vals = append(vals, v)
		}
		rowPtr[r+1] = len(vals)
	}

	return newSparse(sh, ebits, rowPtr, vals)
}
