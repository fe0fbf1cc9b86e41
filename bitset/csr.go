// SPDX-License-Identifier: MIT

// Package bitset: CSR row addressing.
//
// A packed multi-row bitset stores `rows` fixed-width rows back to back,
// wordsPerRow words each. Together with a monotone rowPtr array (rows+1
// entries, rowPtr[rows] == number of stored values) it addresses a packed
// value array: the value for (row, bit) lives at
//
//	rowPtr[row] + rank(bits of the row strictly below `bit`)
//
// whenever the bit is set, and is implicitly absent otherwise.
package bitset

// Row returns a view of one fixed-width row inside a packed bitset.
// An out-of-range row or non-positive width yields nil (silent, no panic).
// The returned slice aliases bits; callers must treat it as read-only.
// Complexity: O(1).
func Row(bits []uint32, wordsPerRow, row int) []uint32 {
	if wordsPerRow <= 0 || row < 0 {
		return nil
	}
	off := row * wordsPerRow
	if off+wordsPerRow > len(bits) {
		return nil
	}

	return bits[off : off+wordsPerRow]
}

// IndexOf resolves (row, bit) to the position of its stored value inside the
// packed value array. The boolean is false when the bit is absent or any
// coordinate is out of range; absent entries are implicitly Null at the call
// site, so no error channel is needed.
// Complexity: O(wordsPerRow).
func IndexOf(bits []uint32, wordsPerRow int, rowPtr []int, row, bit int) (int, bool) {
	if row < 0 || row >= len(rowPtr)-1 {
		return 0, false
	}
	words := Row(bits, wordsPerRow, row)
	if words == nil || !Test(words, bit) {
		return 0, false
	}

	return rowPtr[row] + RankBelow(words, bit), true
}
