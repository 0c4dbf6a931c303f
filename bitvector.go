package bitvec

import (
	"io"
	"math/bits"

	"github.com/hupe1980/bitvec/internal/bitset"
	"github.com/hupe1980/bitvec/internal/hash"
)

// BitVector is a sequence of bits packed into 64-bit words.
//
// A vector either owns its storage or is displaced onto another vector's
// storage. It may carry a fill pointer, in which case Len reports the fill
// pointer rather than the physical dimension.
//
// BitVector is not safe for concurrent use. Mutating a displaced view
// requires exclusive access to its target as well.
type BitVector struct {
	bits        *bitset.BitSet // nil when displaced
	disp        *displacement
	dimension   int
	fillPointer int // -1 when absent
	adjustable  bool

	alloc   Allocator
	logger  *Logger
	metrics MetricsCollector
}

// Make creates a bit vector of dimension bits, each set to initValue.
func Make(initValue bool, dimension int, opts ...Option) (*BitVector, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if dimension < 0 {
		return nil, &IndexError{Op: "make", Index: dimension, Limit: 0}
	}

	v := &BitVector{
		dimension:   dimension,
		fillPointer: -1,
		adjustable:  o.adjustable,
		alloc:       o.allocator,
		logger:      o.logger,
		metrics:     o.metrics,
	}

	if o.hasFillPointer {
		if o.fillPointer < 0 || o.fillPointer > dimension {
			return nil, &IndexError{Op: "make", Index: o.fillPointer, Limit: dimension + 1}
		}
		v.fillPointer = o.fillPointer
	}

	if o.displacedTo != nil {
		d, err := newDisplacement(o.displacedTo, o.displacedOffset, dimension)
		if err != nil {
			return nil, err
		}
		v.disp = d
		v.logger.LogDisplace(dimension, d.offset, d.target.dimension)
		return v, nil
	}

	v.bits = bitset.New(dimension, initValue, v.alloc)
	v.logger.LogAllocate(dimension, len(v.bits.Words()))
	v.metrics.RecordAllocate(dimension)
	return v, nil
}

// MustMake is like Make but panics on error.
func MustMake(initValue bool, dimension int, opts ...Option) *BitVector {
	v, err := Make(initValue, dimension, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// FromBools creates a vector whose bits are the given values.
func FromBools(values []bool, opts ...Option) (*BitVector, error) {
	v, err := Make(false, len(values), opts...)
	if err != nil {
		return nil, err
	}
	for i, b := range values {
		if err := v.SetBit(i, b); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Dimension returns the physical capacity in bits.
func (v *BitVector) Dimension() int {
	return v.dimension
}

// Len returns the logical length: the fill pointer if present, else the dimension.
func (v *BitVector) Len() int {
	if v.fillPointer >= 0 {
		return v.fillPointer
	}
	return v.dimension
}

// IsAdjustable reports whether the vector can be resized in place.
func (v *BitVector) IsAdjustable() bool {
	return v.adjustable
}

// base returns the physical storage and the bit offset of this vector's index 0 in it.
func (v *BitVector) base() (*bitset.BitSet, int) {
	if v.disp != nil {
		return v.disp.target.bits, v.disp.offset
	}
	return v.bits, 0
}

// window returns the physical storage for writing the first n bits, failing
// when a displaced target no longer covers them.
func (v *BitVector) window(op string, n int) (*bitset.BitSet, int, error) {
	b, off := v.base()
	if n > 0 && off+n > b.Len() {
		return nil, 0, &IndexError{Op: op, Index: n - 1, Limit: b.Len() - off}
	}
	return b, off, nil
}

// word returns up to 64 bits starting at local index i. Bits at or past limit,
// or past the end of a shrunken target, read as zero.
func (v *BitVector) word(i, limit int) uint64 {
	b, off := v.base()
	if off+i >= b.Len() {
		return 0
	}
	return b.Word(off+i) & bitset.LowMask(limit-i)
}

func (v *BitVector) chunk(i int) uint64 {
	return v.word(i, v.Len())
}

// TestBit returns the bit at index i, which must lie in [0, Len()).
func (v *BitVector) TestBit(i int) (bool, error) {
	if i < 0 || i >= v.Len() {
		return false, &IndexError{Op: "test-bit", Index: i, Limit: v.Len()}
	}
	b, off := v.base()
	bit, err := b.Get(off + i)
	return bit, translateError("test-bit", i, b.Len()-off, err)
}

// SetBit stores val at index i, which must lie in [0, Len()).
func (v *BitVector) SetBit(i int, val bool) error {
	if i < 0 || i >= v.Len() {
		return &IndexError{Op: "set-bit", Index: i, Limit: v.Len()}
	}
	b, off := v.base()
	return translateError("set-bit", i, b.Len()-off, b.Set(off+i, val))
}

// Erase clears all Dimension() bits, ignoring the fill pointer.
func (v *BitVector) Erase() error {
	b, off, err := v.window("erase", v.dimension)
	if err != nil {
		return err
	}
	b.Fill(off, off+v.dimension, false)
	return nil
}

// forEachSet calls fn with every set index in [0, Len()) in ascending order
// until fn returns false.
func (v *BitVector) forEachSet(fn func(i int) bool) {
	n := v.Len()
	for i := 0; i < n; i += bitset.WordBits {
		w := v.chunk(i)
		for w != 0 {
			if !fn(i + bits.TrailingZeros64(w)) {
				return
			}
			w &= w - 1
		}
	}
}

// OnIndices returns the indices of all set bits in [0, Len()), ascending.
func (v *BitVector) OnIndices() []int {
	out := make([]int, 0, v.CountSet())
	v.forEachSet(func(i int) bool {
		out = append(out, i)
		return true
	})
	return out
}

// SetOnIndices clears [0, Len()) and then sets exactly the given indices.
// Every index is validated before anything is modified.
func (v *BitVector) SetOnIndices(indices []int) error {
	n := v.Len()
	for _, i := range indices {
		if i < 0 || i >= n {
			return &IndexError{Op: "set-on-indices", Index: i, Limit: n}
		}
	}
	b, off, err := v.window("set-on-indices", n)
	if err != nil {
		return err
	}
	b.Fill(off, off+n, false)
	for _, i := range indices {
		_ = b.Set(off+i, true) // bounds checked above
	}
	return nil
}

// CountSet returns the number of set bits in [0, Len()).
func (v *BitVector) CountSet() int {
	n := v.Len()
	if v.disp == nil {
		return v.bits.Count(0, n)
	}
	c := 0
	for i := 0; i < n; i += bitset.WordBits {
		c += bits.OnesCount64(v.chunk(i))
	}
	return c
}

// IsZero reports whether no bit in [0, Len()) is set.
func (v *BitVector) IsZero() bool {
	n := v.Len()
	if v.disp == nil {
		return !v.bits.Any(0, n)
	}
	for i := 0; i < n; i += bitset.WordBits {
		if v.chunk(i) != 0 {
			return false
		}
	}
	return true
}

// LowestIndex returns the index of the first set bit in [0, Len()).
// If no bit is set it returns Len().
func (v *BitVector) LowestIndex() int {
	n := v.Len()
	if v.disp == nil {
		return v.bits.NextSet(0, n)
	}
	for i := 0; i < n; i += bitset.WordBits {
		if w := v.chunk(i); w != 0 {
			return i + bits.TrailingZeros64(w)
		}
	}
	return n
}

// Equal reports whether v and other have the same length and the same bits.
// Dimension, fill pointer and displacement are not compared.
func (v *BitVector) Equal(other *BitVector) bool {
	if other == nil {
		return false
	}
	if v == other {
		return true
	}
	n := v.Len()
	if n != other.Len() {
		return false
	}
	for i := 0; i < n; i += bitset.WordBits {
		if v.chunk(i) != other.chunk(i) {
			return false
		}
	}
	return true
}

// WriteHash feeds the vector's length and content into w, typically a hash.Hash.
// Vectors for which Equal holds write identical bytes.
func (v *BitVector) WriteHash(w io.Writer) error {
	return hash.Feed(w, v.Len(), v.chunk)
}

// Hash64 returns an xxhash-64 digest of the content, consistent with Equal.
func (v *BitVector) Hash64() uint64 {
	return hash.Sum64(v.Len(), v.chunk)
}

// Checksum returns a CRC32-Castagnoli checksum of the content, consistent with Equal.
func (v *BitVector) Checksum() uint32 {
	return hash.Checksum(v.Len(), v.chunk)
}

// DeepCopy returns an independent vector with the same dimension, fill
// pointer, adjustability and bits. A displaced source is flattened: the copy
// always owns its storage.
func (v *BitVector) DeepCopy() *BitVector {
	c := &BitVector{
		dimension:   v.dimension,
		fillPointer: v.fillPointer,
		adjustable:  v.adjustable,
		alloc:       v.alloc,
		logger:      v.logger,
		metrics:     v.metrics,
	}
	if v.disp == nil {
		c.bits = v.bits.Clone(v.alloc)
	} else {
		c.bits = v.materialize(v.dimension)
	}
	c.metrics.RecordAllocate(c.dimension)
	return c
}

// materialize copies the first n bits into fresh owned storage.
func (v *BitVector) materialize(n int) *bitset.BitSet {
	s := bitset.New(n, false, v.alloc)
	for i := 0; i < n; i += bitset.WordBits {
		s.SetWord(i, v.word(i, n), min(bitset.WordBits, n-i))
	}
	return s
}
