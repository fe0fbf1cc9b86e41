// SPDX-License-Identifier: MIT

// Package bitset: word-level mask construction and predicates.
// All functions tolerate out-of-range input silently (see package doc).
package bitset

import "math/bits"

// WordBits is the width of one bitset word.
const WordBits = 32

// WordsFor returns the number of words needed to hold n bits (ceil division).
// Non-positive n yields 0.
// Complexity: O(1).
func WordsFor(n int) int {
	if n <= 0 {
		return 0
	}

	return (n + WordBits - 1) / WordBits
}

// Popcount32 returns the number of set bits in a single word.
// Compiles to a branchless popcount intrinsic where available.
// Complexity: O(1).
func Popcount32(w uint32) int {
	return bits.OnesCount32(w)
}

// Popcount returns the total number of set bits across all words.
// Complexity: O(len(words)).
func Popcount(words []uint32) int {
	var n int
	for _, w := range words {
		n += bits.OnesCount32(w)
	}

	return n
}

// FullMask builds a mask of `words` words with the low n bits set.
// A request exceeding the capacity saturates to all-ones; a non-positive n
// yields an all-zero mask. Never panics.
// Complexity: O(words).
func FullMask(words, n int) []uint32 {
	mask := make([]uint32, maxInt(words, 0))
	if n <= 0 {
		return mask
	}
	if n > len(mask)*WordBits {
		n = len(mask) * WordBits // saturate
	}

	full := n / WordBits
	for i := 0; i < full; i++ {
		mask[i] = ^uint32(0)
	}
	if rem := n % WordBits; rem != 0 {
		mask[full] = (uint32(1) << uint(rem)) - 1
	}

	return mask
}

// SubsetMask builds a mask of `words` words with one bit set per index.
// Duplicate indices are harmless; out-of-range indices are dropped silently.
// Complexity: O(words + len(indices)).
func SubsetMask(words int, indices []int) []uint32 {
	mask := make([]uint32, maxInt(words, 0))
	limit := len(mask) * WordBits
	for _, idx := range indices {
		if idx < 0 || idx >= limit {
			continue // dropped, not an error
		}
		mask[idx/WordBits] |= uint32(1) << uint(idx%WordBits)
	}

	return mask
}

// IsZero reports whether every word is zero.
// Complexity: O(len(words)).
func IsZero(words []uint32) bool {
	for _, w := range words {
		if w != 0 {
			return false
		}
	}

	return true
}

// IsSubset reports whether every set bit of a is also set in b.
// Words of b beyond len(a) are irrelevant; words of a beyond len(b) are
// compared against zero.
// Complexity: O(len(a)).
func IsSubset(a, b []uint32) bool {
	for i, w := range a {
		var bw uint32
		if i < len(b) {
			bw = b[i]
		}
		if w&^bw != 0 {
			return false
		}
	}

	return true
}

// AndInto writes the bitwise AND of row and mask into out, truncating to the
// shortest of the three lengths. This is the primitive used to intersect a
// unit's related-to row with an arbitrary unit subset.
// Complexity: O(min lengths).
func AndInto(row, mask, out []uint32) {
	n := len(out)
	if len(row) < n {
		n = len(row)
	}
	if len(mask) < n {
		n = len(mask)
	}
	for i := 0; i < n; i++ {
		out[i] = row[i] & mask[i]
	}
}

// Test reports whether bit `bit` is set. Out-of-range bits read as unset.
// Complexity: O(1).
func Test(words []uint32, bit int) bool {
	if bit < 0 || bit >= len(words)*WordBits {
		return false
	}

	return words[bit/WordBits]&(uint32(1)<<uint(bit%WordBits)) != 0
}

// Set sets bit `bit`. Out-of-range bits are a silent no-op.
// Complexity: O(1).
func Set(words []uint32, bit int) {
	if bit < 0 || bit >= len(words)*WordBits {
		return
	}
	words[bit/WordBits] |= uint32(1) << uint(bit%WordBits)
}

// RankBelow counts the set bits strictly below index `bit`. A bit index at or
// beyond capacity saturates to the total population count.
// Complexity: O(len(words)).
func RankBelow(words []uint32, bit int) int {
	if bit <= 0 {
		return 0
	}
	if bit >= len(words)*WordBits {
		return Popcount(words)
	}

	var n int
	full := bit / WordBits
	for i := 0; i < full; i++ {
		n += bits.OnesCount32(words[i])
	}
	if rem := bit % WordBits; rem != 0 {
		n += bits.OnesCount32(words[full] & ((uint32(1) << uint(rem)) - 1))
	}

	return n
}

// maxInt returns the larger of two ints.
func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
