package bitset

import (
	"errors"
	"math/bits"

	"github.com/hupe1980/bitvec/internal/mem"
)

const (
	// WordBits is the number of bits per storage word.
	WordBits = 64

	wordShift = 6
	wordMask  = WordBits - 1
)

// ErrIndexOutOfRange is returned when a bit index lies outside the storage capacity.
var ErrIndexOutOfRange = errors.New("bitset: index out of range")

// BitSet is a fixed-capacity packed bit buffer.
//
// Bit i lives in word i/64 at bit position i%64 (least-significant first).
// Bits past the capacity in the final word are kept zero.
//
// BitSet is not safe for concurrent use.
type BitSet struct {
	words []uint64
	nbits int
}

// WordsFor returns the number of words needed to hold nBits bits.
func WordsFor(nBits int) int {
	return (nBits + WordBits - 1) >> wordShift
}

// LowMask returns a word with the low n bits set (n is clamped to [0, 64]).
func LowMask(n int) uint64 {
	if n >= WordBits {
		return ^uint64(0)
	}
	if n <= 0 {
		return 0
	}
	return uint64(1)<<uint(n) - 1
}

// New allocates a BitSet of nBits bits, every bit set to init.
// A nil allocator falls back to mem.Default.
func New(nBits int, init bool, alloc mem.Allocator) *BitSet {
	if nBits < 0 {
		nBits = 0
	}
	if alloc == nil {
		alloc = mem.Default
	}
	b := &BitSet{
		words: alloc.AllocWords(WordsFor(nBits)),
		nbits: nBits,
	}
	if init {
		for i := range b.words {
			b.words[i] = ^uint64(0)
		}
		b.maskTail()
	}
	return b
}

// Len returns the capacity in bits.
func (b *BitSet) Len() int {
	return b.nbits
}

// Words exposes the backing words. Callers that write must keep the tail bits zero.
func (b *BitSet) Words() []uint64 {
	return b.words
}

// Get returns the bit at index i.
func (b *BitSet) Get(i int) (bool, error) {
	if i < 0 || i >= b.nbits {
		return false, ErrIndexOutOfRange
	}
	return b.get(i), nil
}

// Set stores v at index i.
func (b *BitSet) Set(i int, v bool) error {
	if i < 0 || i >= b.nbits {
		return ErrIndexOutOfRange
	}
	b.set(i, v)
	return nil
}

func (b *BitSet) get(i int) bool {
	return b.words[i>>wordShift]&(uint64(1)<<uint(i&wordMask)) != 0
}

func (b *BitSet) set(i int, v bool) {
	mask := uint64(1) << uint(i&wordMask)
	if v {
		b.words[i>>wordShift] |= mask
	} else {
		b.words[i>>wordShift] &^= mask
	}
}

// Word returns up to 64 bits starting at bit off, packed least-significant first.
// Positions at or past the capacity read as zero. off must be in [0, Len()).
func (b *BitSet) Word(off int) uint64 {
	w, sh := off>>wordShift, uint(off&wordMask)
	v := b.words[w] >> sh
	if sh != 0 && w+1 < len(b.words) {
		v |= b.words[w+1] << (WordBits - sh)
	}
	return v & LowMask(b.nbits-off)
}

// SetWord writes the low n bits of v (1 <= n <= 64) starting at bit off.
// The range [off, off+n) must lie within the capacity.
func (b *BitSet) SetWord(off int, v uint64, n int) {
	mask := LowMask(n)
	v &= mask
	w, sh := off>>wordShift, uint(off&wordMask)
	b.words[w] = b.words[w]&^(mask<<sh) | v<<sh
	if sh != 0 && n > WordBits-int(sh) {
		rs := WordBits - sh
		b.words[w+1] = b.words[w+1]&^(mask>>rs) | v>>rs
	}
}

// Count returns the number of set bits in [from, to).
func (b *BitSet) Count(from, to int) int {
	n := 0
	for off := from; off < to; off += WordBits {
		n += bits.OnesCount64(b.Word(off) & LowMask(to-off))
	}
	return n
}

// NextSet returns the index of the first set bit in [from, to), or to if there is none.
func (b *BitSet) NextSet(from, to int) int {
	for off := from; off < to; off += WordBits {
		if v := b.Word(off) & LowMask(to-off); v != 0 {
			return off + bits.TrailingZeros64(v)
		}
	}
	return to
}

// Any reports whether any bit in [from, to) is set.
func (b *BitSet) Any(from, to int) bool {
	return b.NextSet(from, to) < to
}

// Fill sets every bit in [from, to) to v.
func (b *BitSet) Fill(from, to int, v bool) {
	var pattern uint64
	if v {
		pattern = ^uint64(0)
	}
	for off := from; off < to; off += WordBits {
		b.SetWord(off, pattern, min(WordBits, to-off))
	}
}

// Clone returns an independent copy of b allocated from alloc.
func (b *BitSet) Clone(alloc mem.Allocator) *BitSet {
	c := New(b.nbits, false, alloc)
	copy(c.words, b.words)
	return c
}

// Resize returns a new BitSet of nBits bits allocated from alloc. Bits
// [0, min(Len(), nBits)) are copied from b; the rest are set to pad.
func (b *BitSet) Resize(nBits int, pad bool, alloc mem.Allocator) *BitSet {
	c := New(nBits, pad, alloc)
	if n := min(b.nbits, c.nbits); n > 0 {
		CopyBits(c, 0, b, 0, n)
	}
	return c
}

// Release hands the backing words back to alloc. b must not be used afterwards.
func (b *BitSet) Release(alloc mem.Allocator) {
	if alloc == nil {
		alloc = mem.Default
	}
	alloc.FreeWords(b.words)
	b.words = nil
	b.nbits = 0
}

// CopyBits copies n bits from src[srcOff:] to dst[dstOff:]. Overlapping
// ranges within the same BitSet are handled.
func CopyBits(dst *BitSet, dstOff int, src *BitSet, srcOff int, n int) {
	if n <= 0 {
		return
	}
	if dstOff&wordMask == 0 && srcOff&wordMask == 0 && n&wordMask == 0 {
		copy(dst.words[dstOff>>wordShift:(dstOff+n)>>wordShift], src.words[srcOff>>wordShift:(srcOff+n)>>wordShift])
		return
	}
	if dst == src && dstOff > srcOff && dstOff < srcOff+n {
		for end := n; end > 0; {
			k := min(WordBits, end)
			start := end - k
			dst.SetWord(dstOff+start, src.Word(srcOff+start), k)
			end = start
		}
		return
	}
	for off := 0; off < n; off += WordBits {
		k := min(WordBits, n-off)
		dst.SetWord(dstOff+off, src.Word(srcOff+off), k)
	}
}

// maskTail clears the bits past the capacity in the final word.
func (b *BitSet) maskTail() {
	if r := b.nbits & wordMask; r != 0 {
		b.words[len(b.words)-1] &= LowMask(r)
	}
}
