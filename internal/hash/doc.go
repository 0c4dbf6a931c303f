// Package hash turns bit content into hash input.
//
// # Canonical Encoding
//
// Feed writes a length prefix followed by the content as masked 64-bit
// little-endian chunks. The encoding depends only on the logical bits, so
// aliased views, padded storage and fill pointers never change it.
//
// # Digests
//
//	sum := hash.Sum64(n, chunk)      // xxhash-64, for hash tables
//	crc := hash.Checksum(n, chunk)   // CRC32-Castagnoli, for integrity checks
//
// Any hash.Hash or io.Writer can be fed directly with Feed.
package hash
