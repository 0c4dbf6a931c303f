package bitvec

import (
	"time"
)

// Adjust resizes owned storage to newDimension bits. Bits below
// min(Dimension(), newDimension) are preserved and new bits are set to
// initBit. A fill pointer beyond the new dimension is clamped to it.
//
// Only adjustable, non-displaced vectors can be adjusted. A vector made
// without the Adjustable option cannot be resized and Adjust fails with
// ErrUnsupportedOperation. Views displaced
// onto v keep resolving through v and observe the new storage.
func (v *BitVector) Adjust(initBit bool, newDimension int) error {
	oldDimension := v.dimension
	err := v.adjust(initBit, newDimension)
	v.logger.LogAdjust(oldDimension, newDimension, err)
	return err
}

func (v *BitVector) adjust(initBit bool, newDimension int) error {
	if v.disp != nil {
		return &OpError{Op: "adjust", Reason: "displaced vectors cannot be resized", Err: ErrUnsupportedOperation}
	}
	if !v.adjustable {
		return &OpError{Op: "adjust", Reason: "vector is not adjustable", Err: ErrUnsupportedOperation}
	}
	if newDimension < 0 {
		return &IndexError{Op: "adjust", Index: newDimension, Limit: 0}
	}

	start := time.Now()
	old := v.bits
	v.bits = old.Resize(newDimension, initBit, v.alloc)
	old.Release(v.alloc)

	oldDimension := v.dimension
	v.dimension = newDimension
	if v.fillPointer > newDimension {
		v.fillPointer = newDimension
	}

	v.metrics.RecordAllocate(newDimension)
	v.metrics.RecordAdjust(oldDimension, newDimension, time.Since(start))
	return nil
}

// FillPointer returns the fill pointer and whether the vector has one.
func (v *BitVector) FillPointer() (int, bool) {
	if v.fillPointer < 0 {
		return 0, false
	}
	return v.fillPointer, true
}

// HasFillPointer reports whether the vector has a fill pointer.
func (v *BitVector) HasFillPointer() bool {
	return v.fillPointer >= 0
}

// SetFillPointer moves the fill pointer to fp, which must lie in [0, Dimension()].
func (v *BitVector) SetFillPointer(fp int) error {
	if v.fillPointer < 0 {
		return &OpError{Op: "set-fill-pointer", Err: ErrNoFillPointer}
	}
	if fp < 0 || fp > v.dimension {
		return &IndexError{Op: "set-fill-pointer", Index: fp, Limit: v.dimension + 1}
	}
	v.fillPointer = fp
	return nil
}

// VectorPush stores bit at the fill pointer and advances it, returning the
// stored value. It fails with ErrFillPointerExhausted when the fill pointer
// equals the dimension.
func (v *BitVector) VectorPush(bit bool) (bool, error) {
	if v.fillPointer < 0 {
		return false, &OpError{Op: "vector-push", Err: ErrNoFillPointer}
	}
	if v.fillPointer >= v.dimension {
		return false, &OpError{Op: "vector-push", Err: ErrFillPointerExhausted}
	}
	if err := v.push(bit); err != nil {
		return false, err
	}
	return bit, nil
}

// VectorPushExtend stores bit at the fill pointer and advances it, first
// growing the vector by extension bits (at least one) when it is full. It
// returns the index the bit was stored at.
//
// Growth is exactly the caller-supplied extension; pass a geometrically
// increasing amount for amortized constant-time pushes.
func (v *BitVector) VectorPushExtend(bit bool, extension int) (int, error) {
	if v.fillPointer < 0 {
		return 0, &OpError{Op: "vector-push-extend", Err: ErrNoFillPointer}
	}
	if v.fillPointer >= v.dimension {
		extension = max(extension, 1)
		if err := v.Adjust(false, v.dimension+extension); err != nil {
			return 0, err
		}
		v.logger.LogExtend(v.fillPointer, extension)
	}
	idx := v.fillPointer
	if err := v.push(bit); err != nil {
		return 0, err
	}
	return idx, nil
}

func (v *BitVector) push(bit bool) error {
	b, off := v.base()
	if err := b.Set(off+v.fillPointer, bit); err != nil {
		return translateError("vector-push", v.fillPointer, b.Len()-off, err)
	}
	v.fillPointer++
	return nil
}
