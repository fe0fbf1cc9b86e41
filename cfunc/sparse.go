// SPDX-License-Identifier: MIT

// Package cfunc: the Sparse leaf — CSR/bitset compressed storage.
//
// Layout (dim ≥ 1): one logical row per combination of the leading dim-1
// unit axes and the series index,
//
//	row(u0..u_{dim-2}, s) = (Σ_k u_k · NU^(dim-2-k)) · NS + s
//
// Each row carries a fixed-width bitmask of eWordsPerRow = ceil(NU/32) words
// over the last unit axis, packed back to back in ebits. rowPtr has rows+1
// monotonically non-decreasing entries with rowPtr[rows] == len(vals), and
// vals[rowPtr[r]..rowPtr[r+1]) holds row r's present values in ascending
// last-axis order — the position of bit k's value inside the row equals the
// population count of the mask bits below k. Absent entries are implicitly
// Null; no Null is ever stored.
package cfunc

import (
	"github.com/katalvlaran/cfalg/bitset"
	"github.com/katalvlaran/cfalg/interval"
)

// Sparse is a unit function in CSR/bitset form. External collaborators
// (relational predicates, closure) consume the layout directly through
// RowBits/RowPtr/ValueAt and the bitset package primitives.
type Sparse struct {
	sh     shape
	ebits  []uint32         // rows · eWordsPerRow mask words
	rowPtr []int            // rows+1 cumulative offsets into vals
	vals   []interval.Value // packed present values, never Null
}

// newSparse wraps already-built CSR arrays (internal). The public path is
// NewSparse in builder.go; the materializer calls this directly. Structural
// violations here are programmer errors, hence the panics.
func newSparse(sh shape, ebits []uint32, rowPtr []int, vals []interval.Value) *Sparse {
	if sh.dim < 1 {
		panic("cfunc: sparse storage requires dim >= 1")
	}
	rows := sh.rows()
	if len(ebits) != rows*sh.wordsPerRow() {
		panic("cfunc: sparse bitset length violation")
	}
	if len(rowPtr) != rows+1 || rowPtr[0] != 0 || rowPtr[rows] != len(vals) {
		panic("cfunc: sparse rowPtr shape violation")
	}
	for r := 0; r < rows; r++ {
		if rowPtr[r] > rowPtr[r+1] {
			panic("cfunc: sparse rowPtr monotonicity violation")
		}
	}
	if bitset.Popcount(ebits) != len(vals) {
		panic("cfunc: sparse population/value count violation")
	}

	return &Sparse{sh: sh, ebits: ebits, rowPtr: rowPtr, vals: vals}
}

// wordsPerRow returns ceil(NU/32).
func (sh shape) wordsPerRow() int { return bitset.WordsFor(sh.nu) }

// Rows returns the CSR row count NU^(dim-1) · NS.
// Complexity: O(1).
func (s *Sparse) Rows() int { return s.sh.rows() }

// WordsPerRow returns the fixed bitmask width of every row in words.
// Complexity: O(1).
func (s *Sparse) WordsPerRow() int { return s.sh.wordsPerRow() }

// NNZ returns the number of stored (present) values.
// Complexity: O(1).
func (s *Sparse) NNZ() int { return len(s.vals) }

// RowBits returns the bitmask of one row as a read-only view into the packed
// bitset (nil for an out-of-range row, never a panic).
// Complexity: O(1).
func (s *Sparse) RowBits(row int) []uint32 {
	return bitset.Row(s.ebits, s.sh.wordsPerRow(), row)
}

// RowPtr returns the cumulative row-pointer array as a read-only view:
// rows+1 non-decreasing entries, terminal value NNZ().
// Complexity: O(1).
func (s *Sparse) RowPtr() []int { return s.rowPtr }

// RowOf resolves the leading dim-1 unit indices plus a series index to a CSR
// row number.
// Complexity: O(dim).
func (s *Sparse) RowOf(lead []int, series int) (int, error) {
	if len(lead) != s.sh.dim-1 {
		return 0, ErrOutOfRange
	}
	var off int
	for k, u := range lead {
		if u < 0 || u >= s.sh.nu {
			return 0, ErrOutOfRange
		}
		off += u * s.sh.pows[s.sh.dim-2-k]
	}
	if series < 0 || series >= s.sh.ns {
		return 0, ErrOutOfRange
	}

	return off*s.sh.ns + series, nil
}

// ValueAt returns the stored value at (row, lastAxis) when the bit is set,
// and Null otherwise. Out-of-range coordinates read as Null, matching the
// implicit-Null semantics of the layout.
// Complexity: O(words-per-row).
func (s *Sparse) ValueAt(row, bit int) interval.Value {
	idx, ok := bitset.IndexOf(s.ebits, s.sh.wordsPerRow(), s.rowPtr, row, bit)
	if !ok {
		return interval.Null
	}

	return s.vals[idx]
}

// Entries reconstructs the full list of present entries in storage order
// (ascending row, then ascending last-axis index).
// Complexity: O(rows · words-per-row + NNZ).
func (s *Sparse) Entries() []Entry {
	out := make([]Entry, 0, len(s.vals))
	rows := s.sh.rows()
	for r := 0; r < rows; r++ {
		words := s.RowBits(r)
		lead, series := r/s.sh.ns, r%s.sh.ns
		idx := s.rowPtr[r]
		for bit := 0; bit < s.sh.nu; bit++ {
			if !bitset.Test(words, bit) {
				continue
			}
			units := make([]int, s.sh.dim)
			rem := lead
			for k := 0; k < s.sh.dim-1; k++ {
				p := s.sh.pows[s.sh.dim-2-k]
				units[k] = rem / p
				rem %= p
			}
			units[s.sh.dim-1] = bit
			out = append(out, Entry{Units: units, Series: series, Val: s.vals[idx]})
			idx++
		}
	}

	return out
}

// Dim returns the number of unit axes (≥ 1 for sparse storage).
func (s *Sparse) Dim() int { return s.sh.dim }

// Units returns NU.
func (s *Sparse) Units() int { return s.sh.nu }

// Series returns NS.
func (s *Sparse) Series() int { return s.sh.ns }

// Kind returns KindSparse.
func (s *Sparse) Kind() Kind { return KindSparse }

// IsLeaf reports true.
func (s *Sparse) IsLeaf() bool { return true }

// IsAlg reports false.
func (s *Sparse) IsAlg() bool { return false }

// IsZero reports whether the function has no present entries, i.e. it is
// Null everywhere.
func (s *Sparse) IsZero() bool { return len(s.vals) == 0 }

// IsOne reports false: broadcast One is representable only as a Constant.
func (s *Sparse) IsOne() bool { return false }

// At returns the value at the given indices (Null for absent positions),
// bounds-checked.
// Complexity: O(dim + words-per-row).
func (s *Sparse) At(units []int, series int) (interval.Value, error) {
	if err := s.sh.checkIndex(units, series); err != nil {
		return interval.Null, err
	}

	return s.eval(units, series), nil
}

// Materialize returns the receiver.
func (s *Sparse) Materialize() Func { return s }

func (s *Sparse) shp() shape { return s.sh }

func (s *Sparse) eval(units []int, series int) interval.Value {
	row, bit := s.sh.rowBit(units, series)

	return s.ValueAt(row, bit)
}

// unitAt reads by linearized unit offset and series (internal; tensor path).
func (s *Sparse) unitAt(unitOff, series int) interval.Value {
	return s.ValueAt((unitOff/s.sh.nu)*s.sh.ns+series, unitOff%s.sh.nu)
}
