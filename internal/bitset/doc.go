// Package bitset provides the packed word storage behind bit vectors.
//
// Layout:
//   - 64-bit words, bit i stored in word i>>6 at position i&63
//   - Least-significant bit of word 0 is bit 0, ascending
//   - Bits past the capacity in the final word are kept zero
//
// Word and SetWord read and write 64-bit chunks at arbitrary bit offsets,
// which lets callers combine operands that do not start on a word boundary.
package bitset
