package bitvec

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// ToRoaring returns a roaring bitmap holding the set indices in [0, Len()).
// Vectors longer than 2^32 bits cannot be represented.
func (v *BitVector) ToRoaring() (*roaring.Bitmap, error) {
	if uint64(v.Len()) > math.MaxUint32+1 {
		return nil, &OpError{Op: "to-roaring", Reason: "length exceeds 32-bit index space", Err: ErrUnsupportedOperation}
	}
	rb := roaring.New()
	v.forEachSet(func(i int) bool {
		rb.Add(uint32(i))
		return true
	})
	rb.RunOptimize()
	return rb, nil
}

// SetFromRoaring clears [0, Len()) and sets every index contained in rb.
// rb must not contain indices at or past Len().
func (v *BitVector) SetFromRoaring(rb *roaring.Bitmap) error {
	n := v.Len()
	if !rb.IsEmpty() {
		if maxIdx := int(rb.Maximum()); maxIdx >= n {
			return &IndexError{Op: "set-from-roaring", Index: maxIdx, Limit: n}
		}
	}
	b, off, err := v.window("set-from-roaring", n)
	if err != nil {
		return err
	}
	b.Fill(off, off+n, false)
	it := rb.Iterator()
	for it.HasNext() {
		_ = b.Set(off+int(it.Next()), true) // bounded by Maximum above
	}
	return nil
}

// FromRoaring creates a vector of the given dimension with the bits in rb set.
func FromRoaring(rb *roaring.Bitmap, dimension int, opts ...Option) (*BitVector, error) {
	v, err := Make(false, dimension, opts...)
	if err != nil {
		return nil, err
	}
	if err := v.SetFromRoaring(rb); err != nil {
		return nil, err
	}
	return v, nil
}
