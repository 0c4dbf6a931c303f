package bitvec

// displacement binds a view to the storage of a non-displaced target.
// The pointer keeps the target alive for as long as the view exists.
type displacement struct {
	target *BitVector
	offset int
}

// newDisplacement validates the window against target and flattens chains so
// that the returned displacement always points at a storage owner.
func newDisplacement(target *BitVector, offset, dimension int) (*displacement, error) {
	if offset < 0 {
		return nil, &IndexError{Op: "displace", Index: offset, Limit: target.dimension + 1}
	}
	if offset+dimension > target.dimension {
		return nil, &IndexError{Op: "displace", Index: offset + dimension, Limit: target.dimension + 1}
	}
	if target.disp != nil {
		offset += target.disp.offset
		target = target.disp.target
	}
	return &displacement{target: target, offset: offset}, nil
}

// IsDisplaced reports whether the vector is a view over another vector's storage.
func (v *BitVector) IsDisplaced() bool {
	return v.disp != nil
}

// Displacement returns the storage owner and the bit offset this vector is
// displaced onto. ok is false for a vector that owns its storage.
//
// For a view created over another view, target is the underlying owner and
// offset the combined offset.
func (v *BitVector) Displacement() (target *BitVector, offset int, ok bool) {
	if v.disp == nil {
		return nil, 0, false
	}
	return v.disp.target, v.disp.offset, true
}

// sharesStorage reports whether v and other resolve to the same physical storage.
func (v *BitVector) sharesStorage(other *BitVector) bool {
	a, _ := v.base()
	b, _ := other.base()
	return a == b
}
