// SPDX-License-Identifier: MIT

// Package relation: reflexive-symmetric-transitive completion.
package relation

import (
	"github.com/katalvlaran/cfalg/cfunc"
	"github.com/katalvlaran/cfalg/interval"
)

// Closure returns the reflexive-symmetric-transitive completion of r,
// derived per series:
//
//	diagonal   (i,i) absent            → One
//	reverse    (j,i) absent, (i,j) set → Inv(v(i,j))
//	transitive (i,k) absent, (i,j) and
//	           (j,k) set               → Mul(v(i,j), v(j,k))
//
// Stage 1 (Validate): operand contract.
// Stage 2 (Prepare): load each series into a full NU×NU value matrix
// (Null = absent), seed the diagonal.
// Stage 3 (Execute): alternate symmetric and transitive passes in fixed
// ascending order until a full pass derives nothing. A present value is
// never revised — the first derivation of a missing pair wins — and a
// derivation that totalizes to Null (a zero-containing mate, an overflowing
// path product) leaves the pair absent.
// Stage 4 (Finalize): rebuild a canonical Sparse from the surviving values.
// Complexity: O(NS · NU³) per pass, at most NU²·NS passes; in practice a
// handful.
func Closure(r *cfunc.Sparse) (*cfunc.Sparse, error) {
	if err := check(r); err != nil {
		return nil, err
	}

	nu, ns := r.Units(), r.Series()
	entries := make([]cfunc.Entry, 0, r.NNZ())
	m := make([]interval.Value, nu*nu)

	for s := 0; s < ns; s++ {
		for i := range m {
			m[i] = interval.Null
		}
		for i := 0; i < nu; i++ {
			for j := 0; j < nu; j++ {
				m[i*nu+j] = r.ValueAt(mustRow(r, i, s), j)
			}
		}
		for i := 0; i < nu; i++ {
			if m[i*nu+i].IsNull() {
				m[i*nu+i] = interval.One
			}
		}

		for changed := true; changed; {
			changed = false
			changed = symmetricPass(m, nu) || changed
			changed = transitivePass(m, nu) || changed
		}

		for i := 0; i < nu; i++ {
			for j := 0; j < nu; j++ {
				if v := m[i*nu+j]; !v.IsNull() {
					entries = append(entries, cfunc.Entry{Units: []int{i, j}, Series: s, Val: v})
				}
			}
		}
	}

	return cfunc.NewSparse(2, nu, r.Series(), entries)
}

// mustRow resolves a validated (unit, series) pair to its CSR row.
func mustRow(r *cfunc.Sparse, i, s int) int {
	rr, err := r.RowOf([]int{i}, s)
	if err != nil {
		panic("relation: validated row lookup failed")
	}

	return rr
}

// symmetricPass derives missing reverse pairs; reports whether anything was
// added.
func symmetricPass(m []interval.Value, nu int) bool {
	var changed bool
	for i := 0; i < nu; i++ {
		for j := 0; j < nu; j++ {
			if m[i*nu+j].IsNull() || !m[j*nu+i].IsNull() {
				continue
			}
			if v := interval.Inv(m[i*nu+j]); !v.IsNull() {
				m[j*nu+i] = v
				changed = true
			}
		}
	}

	return changed
}

// transitivePass derives missing path compositions, Floyd-Warshall style:
// the intermediate unit is the outer loop so discovered pairs extend later
// paths within the same pass.
func transitivePass(m []interval.Value, nu int) bool {
	var changed bool
	for k := 0; k < nu; k++ {
		for i := 0; i < nu; i++ {
			if m[i*nu+k].IsNull() {
				continue
			}
			for j := 0; j < nu; j++ {
				if !m[i*nu+j].IsNull() || m[k*nu+j].IsNull() {
					continue
				}
				if v := interval.Mul(m[i*nu+k], m[k*nu+j]); !v.IsNull() {
					m[i*nu+j] = v
					changed = true
				}
			}
		}
	}

	return changed
}
