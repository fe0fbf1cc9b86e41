// SPDX-License-Identifier: MIT

// Package relation: structural predicates over the presence pattern.
package relation

import (
	"github.com/katalvlaran/cfalg/bitset"
	"github.com/katalvlaran/cfalg/cfunc"
)

// check validates the common operand contract of this package.
func check(r *cfunc.Sparse) error {
	if r == nil {
		return ErrNilRelation
	}
	if r.Dim() != 2 {
		return ErrNotBinary
	}

	return nil
}

// row returns the mask of units related to unit i in series s. The operand
// was validated, so the lookup cannot fail.
func row(r *cfunc.Sparse, i, s int) []uint32 {
	rr, err := r.RowOf([]int{i}, s)
	if err != nil {
		panic("relation: validated row lookup failed")
	}

	return r.RowBits(rr)
}

// IsReflexive reports whether every unit is related to itself in every
// series.
// Complexity: O(NU · NS).
func IsReflexive(r *cfunc.Sparse) (bool, error) {
	if err := check(r); err != nil {
		return false, err
	}

	for s := 0; s < r.Series(); s++ {
		for i := 0; i < r.Units(); i++ {
			if !bitset.Test(row(r, i, s), i) {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsSymmetric reports whether the presence pattern is symmetric in every
// series: (i,j) present implies (j,i) present. Values are not compared.
// Complexity: O(NU² · NS) bit tests.
func IsSymmetric(r *cfunc.Sparse) (bool, error) {
	if err := check(r); err != nil {
		return false, err
	}

	for s := 0; s < r.Series(); s++ {
		for i := 0; i < r.Units(); i++ {
			words := row(r, i, s)
			for j := i + 1; j < r.Units(); j++ {
				if bitset.Test(words, j) != bitset.Test(row(r, j, s), i) {
					return false, nil
				}
			}
		}
	}

	return true, nil
}

// IsTransitive reports whether the presence pattern is transitive in every
// series: whenever (i,j) is present, everything reachable from j is already
// reachable from i — a subset test per related pair.
// Complexity: O(NU² · NS) subset checks of words-per-row width.
func IsTransitive(r *cfunc.Sparse) (bool, error) {
	if err := check(r); err != nil {
		return false, err
	}

	for s := 0; s < r.Series(); s++ {
		for i := 0; i < r.Units(); i++ {
			words := row(r, i, s)
			for j := 0; j < r.Units(); j++ {
				if bitset.Test(words, j) && !bitset.IsSubset(row(r, j, s), words) {
					return false, nil
				}
			}
		}
	}

	return true, nil
}

// IsEquivalence reports whether the relation is reflexive, symmetric and
// transitive in every series.
func IsEquivalence(r *cfunc.Sparse) (bool, error) {
	if err := check(r); err != nil {
		return false, err
	}

	for _, pred := range []func(*cfunc.Sparse) (bool, error){
		IsReflexive, IsSymmetric, IsTransitive,
	} {
		ok, err := pred(r)
		if err != nil || !ok {
			return false, err
		}
	}

	return true, nil
}
