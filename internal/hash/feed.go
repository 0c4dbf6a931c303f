package hash

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/cespare/xxhash/v2"
)

// ChunkFunc returns up to 64 content bits starting at bit off, least-significant first.
type ChunkFunc func(off int) uint64

// Feed writes the canonical encoding of a bit sequence of the given length to w:
// the length as 8 little-endian bytes followed by ceil(length/64) chunks of
// 8 little-endian bytes each, with bits past length cleared.
//
// Two sequences with equal length and equal bits always produce identical bytes,
// whatever their physical layout.
func Feed(w io.Writer, length int, chunk ChunkFunc) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(length))
	if _, err := w.Write(buf[:]); err != nil {
		return err
	}
	for off := 0; off < length; off += 64 {
		v := chunk(off)
		if rem := length - off; rem < 64 {
			v &= uint64(1)<<uint(rem) - 1
		}
		binary.LittleEndian.PutUint64(buf[:], v)
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	}
	return nil
}

// Sum64 returns the xxhash-64 digest of the canonical encoding.
func Sum64(length int, chunk ChunkFunc) uint64 {
	d := xxhash.New()
	_ = Feed(d, length, chunk) // xxhash.Digest.Write never fails
	return d.Sum64()
}

// Checksum returns the CRC32C of the canonical encoding.
func Checksum(length int, chunk ChunkFunc) uint32 {
	var buf bytes.Buffer
	buf.Grow(8 + 8*((length+63)/64))
	_ = Feed(&buf, length, chunk) // bytes.Buffer.Write never fails
	return CRC32C(buf.Bytes())
}
