// Package cfalg is an in-memory algebra of interval-valued comparison
// functions — from the total interval arithmetic at the bottom to lazy
// operator trees and sparse materialization at the top.
//
// 🚀 What is cfalg?
//
//	A small, deterministic library that brings together:
//		• interval/ — closed-interval values under a *total* arithmetic
//		  (undefined cases collapse to the algebraic Null, never an error)
//		• bitset/   — 32-bit-word bitset and CSR addressing primitives
//		• cfunc/    — multi-dimensional unit functions stored as Constant,
//		  Dense or Sparse leaves, combined lazily through operator trees
//		  (add/sub/mul/div, tensor product, powers, roots) and forced into
//		  concrete leaves on demand
//		• relation/ — reflexivity/symmetry/transitivity predicates and the
//		  reflexive-symmetric-transitive closure over sparse comparison
//		  relations
//
// ✨ Why choose cfalg?
//
//   - Total by construction – every operation on every input yields a
//     well-formed result; division by zero, even roots of negatives and
//     overflow all absorb into Null
//   - Lazy where it pays – expression trees short-circuit algebraic
//     identities and only materialize when asked
//   - Pure Go – no cgo, no hidden deps
//   - Immutable structures – safe to share across goroutines without locks
//
// Quick example:
//
//	a, _ := cfunc.NewConstant(1, 4, 1, interval.Value{Lo: 2, Hi: 3})
//	b, _ := cfunc.NewConstant(1, 4, 1, interval.Value{Lo: 4, Hi: 5})
//	sum, _ := cfunc.Add(a, b) // folds immediately to Constant([6,8])
//
// Dive into the package docs for the storage layouts, the CSR merge
// algorithms and the algebraic rewrite rules.
package cfalg
