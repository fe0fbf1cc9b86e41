// SPDX-License-Identifier: MIT

// Package relation: restriction to a unit subset.
package relation

import (
	"sort"

	"github.com/katalvlaran/cfalg/bitset"
	"github.com/katalvlaran/cfalg/cfunc"
)

// Restrict prunes r to the given unit subset and reindexes the survivors:
// the kept units, deduplicated and sorted ascending, become units 0..K-1 of
// the result. Pairs with either endpoint outside the subset are dropped;
// surviving values are untouched.
//
// Out-of-range subset members are ignored (the bitset mask drops them
// silently); a subset keeping no valid unit fails with ErrBadSubset.
//
// Stage 1 (Validate): operand contract, subset normalization.
// Stage 2 (Prepare): subset mask plus the old→new index map.
// Stage 3 (Execute): intersect each kept unit's row with the mask via
// bitset.AndInto and re-emit the surviving pairs under new indices.
// Complexity: O(K · NS · (words-per-row + K)) plus canonical reconstruction.
func Restrict(r *cfunc.Sparse, keep []int) (*cfunc.Sparse, error) {
	if err := check(r); err != nil {
		return nil, err
	}

	kept := normalize(keep, r.Units())
	if len(kept) == 0 {
		return nil, ErrBadSubset
	}
	newIdx := make(map[int]int, len(kept))
	for n, old := range kept {
		newIdx[old] = n
	}

	wpr := r.WordsPerRow()
	mask := bitset.SubsetMask(wpr, kept)
	tmp := make([]uint32, wpr)
	entries := make([]cfunc.Entry, 0, r.NNZ())

	for s := 0; s < r.Series(); s++ {
		for _, i := range kept {
			cr := mustRow(r, i, s)
			bitset.AndInto(r.RowBits(cr), mask, tmp)
			for _, j := range kept {
				if !bitset.Test(tmp, j) {
					continue
				}
				entries = append(entries, cfunc.Entry{
					Units:  []int{newIdx[i], newIdx[j]},
					Series: s,
					Val:    r.ValueAt(cr, j),
				})
			}
		}
	}

	return cfunc.NewSparse(2, len(kept), r.Series(), entries)
}

// normalize deduplicates, range-filters and sorts a unit subset.
func normalize(keep []int, nu int) []int {
	seen := make(map[int]bool, len(keep))
	out := make([]int, 0, len(keep))
	for _, u := range keep {
		if u < 0 || u >= nu || seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	sort.Ints(out)

	return out
}
