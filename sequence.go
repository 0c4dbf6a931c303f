package bitvec

import (
	"fmt"
	"iter"
)

// Sequence is the random-access element protocol shared by indexable
// sequence types.
type Sequence[T any] interface {
	Len() int
	Elt(i int) (T, error)
	SetElt(i int, v T) error
}

var _ Sequence[uint8] = (*BitVector)(nil)

// Elt returns the bit at index i as 0 or 1.
func (v *BitVector) Elt(i int) (uint8, error) {
	b, err := v.TestBit(i)
	if err != nil || !b {
		return 0, err
	}
	return 1, nil
}

// SetElt stores e, which must be 0 or 1, at index i.
func (v *BitVector) SetElt(i int, e uint8) error {
	if e > 1 {
		return fmt.Errorf("bitvec: set-elt %d: %w", e, ErrInvalidElement)
	}
	return v.SetBit(i, e == 1)
}

// All returns an iterator over (index, bit) pairs in [0, Len()).
func (v *BitVector) All() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		n := v.Len()
		for i := 0; i < n; i++ {
			if !yield(i, v.word(i, n)&1 == 1) {
				return
			}
		}
	}
}

// Ones returns an iterator over the indices of set bits in [0, Len()), ascending.
func (v *BitVector) Ones() iter.Seq[int] {
	return func(yield func(int) bool) {
		v.forEachSet(yield)
	}
}

// CopyElements copies min(dst.Len(), src.Len()) elements from src to dst and
// returns the number copied.
func CopyElements[T any](dst, src Sequence[T]) (int, error) {
	n := min(dst.Len(), src.Len())
	for i := 0; i < n; i++ {
		e, err := src.Elt(i)
		if err != nil {
			return i, err
		}
		if err := dst.SetElt(i, e); err != nil {
			return i, err
		}
	}
	return n, nil
}
