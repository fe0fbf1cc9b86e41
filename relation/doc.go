// SPDX-License-Identifier: MIT

// Package relation inspects and completes binary comparison relations.
//
// A relation is a two-axis sparse comparison function (cfunc.Sparse with
// Dim() == 2): position (i, j, s) holds the interval comparing unit i to
// unit j in series s, and absence means the pair was never compared. The
// package consumes the CSR/bitset layout through the public contract —
// RowOf/RowBits/ValueAt plus the bitset primitives — and never rebuilds it
// by hand.
//
// Three groups of operations:
//
//   - Predicates: IsReflexive, IsSymmetric, IsTransitive and IsEquivalence
//     check the presence pattern of every series. They are structural — a
//     stored reverse value is not required to be the inverse of its mate.
//
//   - Closure: the reflexive-symmetric-transitive completion. Missing
//     diagonal entries become One, missing reverse entries the interval
//     inverse of their mate, missing transitive entries the product along
//     the discovered path. Existing values are never revised, and the first
//     derivation of a missing value wins; iteration order is fixed, so the
//     result is deterministic.
//
//   - Restrict: prune a relation to a subset of units and reindex the
//     survivors, the dataset-trimming counterpart of Closure.
//
// All operations fail softly with package sentinels; a relation is never
// mutated in place.
package relation
