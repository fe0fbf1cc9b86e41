// SPDX-License-Identifier: MIT
// Package interval: sentinel error set.
// Only construction and decoding can fail; the arithmetic itself is total and
// never returns an error. Tests MUST match these sentinels via errors.Is.

package interval

import "errors"

var (
	// ErrInvalidInterval is returned when an endpoint pair violates the value
	// invariant: both endpoints finite and Lo ≤ Hi.
	ErrInvalidInterval = errors.New("interval: invalid endpoints")

	// ErrShortBuffer is returned by UnmarshalBinary when fewer than Size bytes
	// are supplied.
	ErrShortBuffer = errors.New("interval: short buffer")
)
