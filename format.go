package bitvec

import (
	"fmt"
	"io"
	"strings"

	"github.com/hupe1980/bitvec/internal/bitset"
)

const (
	// TagSimpleBitVector identifies a fixed-size vector: owned storage, no fill pointer, not adjustable.
	TagSimpleBitVector = "simple-bit-vector"
	// TagBitVector identifies every other bit vector.
	TagBitVector = "bit-vector"
)

// TypeTag returns the symbolic type name of the vector for host reflection.
func (v *BitVector) TypeTag() string {
	if v.disp == nil && v.fillPointer < 0 && !v.adjustable {
		return TagSimpleBitVector
	}
	return TagBitVector
}

// String renders the vector as exactly Len() characters, '0' or '1', index 0 first.
func (v *BitVector) String() string {
	n := v.Len()
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i += bitset.WordBits {
		w := v.chunk(i)
		for j := 0; j < min(bitset.WordBits, n-i); j++ {
			sb.WriteByte('0' + byte(w>>uint(j)&1))
		}
	}
	return sb.String()
}

// FromString parses a string of '0' and '1' characters into a new vector.
func FromString(s string, opts ...Option) (*BitVector, error) {
	v, err := Make(false, len(s), opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			if err := v.SetBit(i, true); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("bitvec: parse %q at %d: %w", s[i], i, ErrInvalidElement)
		}
	}
	return v, nil
}

// Dump writes a debug rendering of the vector's layout to w. The format is not stable.
func (v *BitVector) Dump(w io.Writer) error {
	fp := "none"
	if v.fillPointer >= 0 {
		fp = fmt.Sprint(v.fillPointer)
	}
	if _, err := fmt.Fprintf(w, "%s dimension=%d length=%d fill-pointer=%s adjustable=%t\n",
		v.TypeTag(), v.dimension, v.Len(), fp, v.adjustable); err != nil {
		return err
	}
	if v.disp != nil {
		_, err := fmt.Fprintf(w, "displaced-to=%p offset=%d target-dimension=%d\n",
			v.disp.target, v.disp.offset, v.disp.target.dimension)
		return err
	}
	for i, word := range v.bits.Words() {
		if _, err := fmt.Fprintf(w, "word[%d]=%016x\n", i, word); err != nil {
			return err
		}
	}
	return nil
}
