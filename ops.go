package bitvec

import (
	"github.com/hupe1980/bitvec/internal/bitset"
)

type bitOp int

const (
	opOr bitOp = iota
	opAnd
	opXor
	opAndNot
)

func (op bitOp) String() string {
	switch op {
	case opOr:
		return "or"
	case opAnd:
		return "and"
	case opXor:
		return "xor"
	case opAndNot:
		return "and-not"
	default:
		return "unknown"
	}
}

func (op bitOp) apply(a, b uint64) uint64 {
	switch op {
	case opOr:
		return a | b
	case opAnd:
		return a & b
	case opXor:
		return a ^ b
	default:
		return a &^ b
	}
}

// InPlaceOr sets v to v OR other over [0, Len()).
func (v *BitVector) InPlaceOr(other *BitVector) error {
	return v.inPlace(opOr, other)
}

// InPlaceAnd sets v to v AND other over [0, Len()).
func (v *BitVector) InPlaceAnd(other *BitVector) error {
	return v.inPlace(opAnd, other)
}

// InPlaceXor sets v to v XOR other over [0, Len()).
func (v *BitVector) InPlaceXor(other *BitVector) error {
	return v.inPlace(opXor, other)
}

// InPlaceAndNot clears every bit of v that is set in other.
func (v *BitVector) InPlaceAndNot(other *BitVector) error {
	return v.inPlace(opAndNot, other)
}

// InPlaceNot inverts every bit in [0, Len()).
func (v *BitVector) InPlaceNot() error {
	n := v.Len()
	dst, doff, err := v.window("not", n)
	if err != nil {
		return err
	}
	for i := 0; i < n; i += bitset.WordBits {
		dst.SetWord(doff+i, ^dst.Word(doff+i), min(bitset.WordBits, n-i))
	}
	v.metrics.RecordBitOp("not", n, doff&(bitset.WordBits-1) == 0)
	return nil
}

// BitOr returns a new vector holding v OR other.
func (v *BitVector) BitOr(other *BitVector) (*BitVector, error) {
	return v.combine(opOr, other)
}

// BitAnd returns a new vector holding v AND other.
func (v *BitVector) BitAnd(other *BitVector) (*BitVector, error) {
	return v.combine(opAnd, other)
}

// BitXor returns a new vector holding v XOR other.
func (v *BitVector) BitXor(other *BitVector) (*BitVector, error) {
	return v.combine(opXor, other)
}

// BitAndNot returns a new vector holding v AND NOT other.
func (v *BitVector) BitAndNot(other *BitVector) (*BitVector, error) {
	return v.combine(opAndNot, other)
}

// BitNot returns a new vector holding the complement of v.
func (v *BitVector) BitNot() (*BitVector, error) {
	r := v.copyLen()
	if err := r.InPlaceNot(); err != nil {
		return nil, err
	}
	return r, nil
}

func (v *BitVector) combine(op bitOp, other *BitVector) (*BitVector, error) {
	if n, m := v.Len(), other.Len(); n != m {
		return nil, &DimensionError{Op: op.String(), Expected: n, Actual: m}
	}
	r := v.copyLen()
	if err := r.inPlace(op, other); err != nil {
		return nil, err
	}
	return r, nil
}

// copyLen returns a fresh, owned, non-adjustable vector holding the first Len() bits.
func (v *BitVector) copyLen() *BitVector {
	n := v.Len()
	r := &BitVector{
		bits:        v.materialize(n),
		dimension:   n,
		fillPointer: -1,
		alloc:       v.alloc,
		logger:      v.logger,
		metrics:     v.metrics,
	}
	r.metrics.RecordAllocate(n)
	return r
}

func (v *BitVector) inPlace(op bitOp, other *BitVector) error {
	n := v.Len()
	if m := other.Len(); m != n {
		return &DimensionError{Op: op.String(), Expected: n, Actual: m}
	}
	if n == 0 {
		return nil
	}
	dst, doff, err := v.window(op.String(), n)
	if err != nil {
		return err
	}

	src, soff := other.base()
	if v.sharesStorage(other) && soff != doff && soff < doff+n && doff < soff+n {
		tmp := other.materialize(n)
		defer tmp.Release(other.alloc)
		src, soff = tmp, 0
	}

	aligned := doff&(bitset.WordBits-1) == 0 && soff&(bitset.WordBits-1) == 0 && soff+n <= src.Len()
	if aligned {
		dw := dst.Words()[doff/bitset.WordBits:]
		sw := src.Words()[soff/bitset.WordBits:]
		full := n / bitset.WordBits
		for i := 0; i < full; i++ {
			dw[i] = op.apply(dw[i], sw[i])
		}
		if r := n % bitset.WordBits; r != 0 {
			mask := bitset.LowMask(r)
			dw[full] = dw[full]&^mask | op.apply(dw[full], sw[full])&mask
		}
	} else {
		for i := 0; i < n; i += bitset.WordBits {
			var s uint64
			if p := soff + i; p < src.Len() {
				s = src.Word(p)
			}
			dst.SetWord(doff+i, op.apply(dst.Word(doff+i), s), min(bitset.WordBits, n-i))
		}
	}

	v.metrics.RecordBitOp(op.String(), n, aligned)
	return nil
}
