// SPDX-License-Identifier: MIT

// Package cfunc: validated sparse construction.
//
// NewSparse is the ingestion boundary for raw comparison datasets: a list of
// (units..., series, value) tuples becomes an initial Sparse function. All
// dataset defects — out-of-range indices, duplicate keys, explicit Nulls —
// surface here as sentinels, so everything downstream can assume a valid CSR.
package cfunc

import (
	"fmt"

	"github.com/katalvlaran/cfalg/bitset"
	"github.com/katalvlaran/cfalg/interval"
)

// Entry is one present position of a sparse function: a full unit-index
// tuple, a series index and a non-Null value.
type Entry struct {
	Units  []int
	Series int
	Val    interval.Value
}

// NewSparse builds a Sparse function from a validated entry list.
// Stage 1 (Validate): shape with dim ≥ 1; every entry in range, non-Null and
// key-unique (ErrBadShape / ErrOutOfRange / ErrNullEntry / ErrDuplicateEntry).
// Stage 2 (Prepare): set presence bits, derive rowPtr from per-row counts.
// Stage 3 (Execute): place values by rank so each row stays ascending.
// Entry order in the input is irrelevant; the result is canonical.
// Complexity: O(rows · words-per-row + E · dim) time, O(rows + E) memory.
func NewSparse(dim, nu, ns int, entries []Entry) (*Sparse, error) {
	sh, err := newShape(dim, nu, ns)
	if err != nil {
		return nil, err
	}
	if dim < 1 {
		return nil, ErrBadShape
	}

	rows := sh.rows()
	wpr := sh.wordsPerRow()
	ebits := make([]uint32, rows*wpr)

	// First pass: validate and set presence bits; duplicates show up as an
	// already-set bit.
	for i, e := range entries {
		if err = sh.checkIndex(e.Units, e.Series); err != nil {
			return nil, fmt.Errorf("cfunc: entry %d: %w", i, err)
		}
		if e.Val.IsNull() {
			return nil, fmt.Errorf("cfunc: entry %d: %w", i, ErrNullEntry)
		}
		row, bit := sh.rowBit(e.Units, e.Series)
		words := ebits[row*wpr : (row+1)*wpr]
		if bitset.Test(words, bit) {
			return nil, fmt.Errorf("cfunc: entry %d: %w", i, ErrDuplicateEntry)
		}
		bitset.Set(words, bit)
	}

	// Row pointers from cumulative population counts.
	rowPtr := make([]int, rows+1)
	for r := 0; r < rows; r++ {
		rowPtr[r+1] = rowPtr[r] + bitset.Popcount(ebits[r*wpr:(r+1)*wpr])
	}

	// Second pass: place each value at rowPtr[row] + rank(bits below bit).
	vals := make([]interval.Value, len(entries))
	for _, e := range entries {
		row, bit := sh.rowBit(e.Units, e.Series)
		idx, _ := bitset.IndexOf(ebits, wpr, rowPtr, row, bit)
		vals[idx] = e.Val
	}

	return newSparse(sh, ebits, rowPtr, vals), nil
}

// rowBit splits a validated full index tuple into (CSR row, last-axis bit).
func (sh shape) rowBit(units []int, series int) (row, bit int) {
	var lead int
	for k := 0; k < sh.dim-1; k++ {
		lead += units[k] * sh.pows[sh.dim-2-k]
	}

	return lead*sh.ns + series, units[sh.dim-1]
}
