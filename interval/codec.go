// SPDX-License-Identifier: MIT

// Package interval: fixed-width binary codec.
// The wire form is Size bytes: the IEEE-754 bits of Lo then Hi, each encoded
// as a little-endian uint64. Round-tripping any valid Value is exact.
package interval

import (
	"encoding/binary"
	"math"
)

// Size is the constant encoded width of a Value in bytes.
const Size = 16

// MarshalBinary encodes the value into a fresh Size-byte slice.
// The error is always nil; it exists to satisfy encoding.BinaryMarshaler.
// Complexity: O(1).
func (v Value) MarshalBinary() ([]byte, error) {
	buf := make([]byte, Size)
	binary.LittleEndian.PutUint64(buf[0:8], math.Float64bits(v.Lo))
	binary.LittleEndian.PutUint64(buf[8:16], math.Float64bits(v.Hi))

	return buf, nil
}

// AppendBinary appends the Size-byte encoding of v to dst and returns the
// extended slice. Useful when packing many values without per-value allocs.
// Complexity: O(1) amortized.
func (v Value) AppendBinary(dst []byte) []byte {
	var buf [Size]byte
	binary.LittleEndian.PutUint64(buf[0:8], math.Float64bits(v.Lo))
	binary.LittleEndian.PutUint64(buf[8:16], math.Float64bits(v.Hi))

	return append(dst, buf[:]...)
}

// UnmarshalBinary decodes the first Size bytes of data into the receiver.
// Stage 1 (Validate): length ≥ Size, else ErrShortBuffer.
// Stage 2 (Decode): read both endpoints little-endian.
// Stage 3 (Validate): enforce the value invariant, else ErrInvalidInterval.
// Complexity: O(1).
func (v *Value) UnmarshalBinary(data []byte) error {
	if len(data) < Size {
		return ErrShortBuffer
	}

	lo := math.Float64frombits(binary.LittleEndian.Uint64(data[0:8]))
	hi := math.Float64frombits(binary.LittleEndian.Uint64(data[8:16]))
	if !finite(lo) || !finite(hi) || lo > hi {
		return ErrInvalidInterval
	}

	v.Lo, v.Hi = lo, hi

	return nil
}
