// Package bitset provides the 32-bit-word bitset primitives underneath the
// sparse (CSR) unit-function storage.
//
// The bitset package provides:
//
//   - Mask construction: FullMask (low-n-bits) and SubsetMask (OR of single
//     bits), both tolerant of oversized requests.
//   - Word-level predicates: IsZero, IsSubset, Test, plus Popcount/Popcount32
//     and the rank query RankBelow used for CSR value addressing.
//   - Row operations: Row (a view of one fixed-width row inside a packed
//     multi-row bitset) and AndInto (intersect a row with a caller-supplied
//     mask into an output buffer).
//   - IndexOf — the CSR lookup that turns (row, bit) into a position inside a
//     packed value array via rowPtr offsets plus rank.
//
// Error policy: these primitives sit on hot, branch-light paths, so
// out-of-range and oversized inputs are defined as silent no-ops, saturation
// or truncation — never a panic, never an error return. Bit order inside a
// word is LSB-first: bit 31 is the word's top bit 0x80000000.
package bitset
