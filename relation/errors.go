// SPDX-License-Identifier: MIT
// Package relation: sentinel error set, matched via errors.Is.

package relation

import "errors"

var (
	// ErrNilRelation indicates a nil relation operand.
	ErrNilRelation = errors.New("relation: nil relation")

	// ErrNotBinary indicates a comparison function whose dimensionality is
	// not 2; relational operations are defined on unit-pair functions only.
	ErrNotBinary = errors.New("relation: function is not a binary relation")

	// ErrBadSubset indicates a restriction subset that keeps no valid unit.
	ErrBadSubset = errors.New("relation: empty unit subset")
)
