// SPDX-License-Identifier: MIT
// Package bitset_test: word-level primitives, including word-boundary and
// oversized-request behavior.
package bitset_test

import (
	"testing"

	"github.com/katalvlaran/cfalg/bitset"
	"github.com/stretchr/testify/require"
)

func TestWordsFor(t *testing.T) {
	t.Parallel()

	tests := []struct{ n, want int }{
		{-5, 0}, {0, 0}, {1, 1}, {31, 1}, {32, 1}, {33, 2}, {64, 2}, {65, 3},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, bitset.WordsFor(tc.n), "WordsFor(%d)", tc.n)
	}
}

func TestPopcount(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, bitset.Popcount32(0))
	require.Equal(t, 1, bitset.Popcount32(0x80000000)) // bit 31, top of word
	require.Equal(t, 32, bitset.Popcount32(^uint32(0)))
	require.Equal(t, 33, bitset.Popcount([]uint32{^uint32(0), 1}))
	require.Equal(t, 0, bitset.Popcount(nil))
}

func TestFullMask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		words int
		n     int
		want  []uint32
	}{
		{"empty", 2, 0, []uint32{0, 0}},
		{"negative n", 2, -3, []uint32{0, 0}},
		{"within word", 1, 5, []uint32{0x1F}},
		{"exact word", 2, 32, []uint32{^uint32(0), 0}},
		{"boundary 31", 1, 31, []uint32{0x7FFFFFFF}},
		{"spanning", 2, 33, []uint32{^uint32(0), 1}},
		{"saturating", 1, 99, []uint32{^uint32(0)}},
		{"zero words", 0, 7, []uint32{}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, bitset.FullMask(tc.words, tc.n))
		})
	}
}

func TestSubsetMask_AgreesWithBitByBit(t *testing.T) {
	t.Parallel()

	indices := []int{0, 3, 31, 32, 40, 3 /* duplicate */, -1, 999 /* dropped */}
	got := bitset.SubsetMask(2, indices)

	// Reference construction, one Set per index.
	want := make([]uint32, 2)
	for _, idx := range indices {
		bitset.Set(want, idx)
	}
	require.Equal(t, want, got)

	// Spot-check the expected pattern.
	require.Equal(t, []uint32{0x80000009, 0x101}, got)
}

func TestIsZeroIsSubset(t *testing.T) {
	t.Parallel()

	require.True(t, bitset.IsZero(nil))
	require.True(t, bitset.IsZero([]uint32{0, 0}))
	require.False(t, bitset.IsZero([]uint32{0, 4}))

	a := []uint32{0b1010, 0x80000000}
	b := []uint32{0b1110, 0x80000001}
	require.True(t, bitset.IsSubset(a, b))
	require.False(t, bitset.IsSubset(b, a))
	// Missing words of b read as zero.
	require.False(t, bitset.IsSubset(a, b[:1]))
	require.True(t, bitset.IsSubset([]uint32{0b1010, 0}, b[:1]))
	// The empty set is a subset of everything.
	require.True(t, bitset.IsSubset(nil, a))
}

func TestAndInto_TruncatesSilently(t *testing.T) {
	t.Parallel()

	row := []uint32{0b1111, 0xFF}
	mask := []uint32{0b1010, 0x0F}
	out := make([]uint32, 2)
	bitset.AndInto(row, mask, out)
	require.Equal(t, []uint32{0b1010, 0x0F}, out)

	// Shorter mask: only the overlapping words are written.
	out2 := []uint32{7, 7}
	bitset.AndInto(row, mask[:1], out2)
	require.Equal(t, []uint32{0b1010, 7}, out2)
}

func TestTestSet_OutOfRange(t *testing.T) {
	t.Parallel()

	words := make([]uint32, 1)
	bitset.Set(words, 31)
	require.Equal(t, []uint32{0x80000000}, words)
	require.True(t, bitset.Test(words, 31))
	require.False(t, bitset.Test(words, 30))

	// Out-of-range access is a silent no-op / unset read.
	bitset.Set(words, 32)
	bitset.Set(words, -1)
	require.Equal(t, []uint32{0x80000000}, words)
	require.False(t, bitset.Test(words, 32))
	require.False(t, bitset.Test(words, -1))
}

func TestRankBelow(t *testing.T) {
	t.Parallel()

	words := []uint32{0x80000001, 0b110} // bits 0, 31, 33, 34

	tests := []struct{ bit, want int }{
		{0, 0}, {1, 1}, {31, 1}, {32, 2}, {33, 2}, {34, 3}, {35, 4},
		{64, 4}, {1000, 4}, {-3, 0},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, bitset.RankBelow(words, tc.bit), "RankBelow(bit=%d)", tc.bit)
	}
}
