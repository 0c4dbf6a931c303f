package bitvec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/bitvec/internal/bitset"
)

var (
	// ErrIndexOutOfRange is returned for a bit, fill pointer or dimension outside its valid range.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrDimensionMismatch is returned when a bitwise operation combines vectors of different lengths.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrFillPointerExhausted is returned by VectorPush when the fill pointer has reached the dimension.
	ErrFillPointerExhausted = errors.New("fill pointer exhausted")

	// ErrNoFillPointer is returned by fill pointer operations on a vector without one.
	ErrNoFillPointer = errors.New("vector has no fill pointer")

	// ErrUnsupportedOperation is returned when an operation does not apply to the receiver,
	// such as resizing a displaced or non-adjustable vector.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrInvalidElement is returned when a value other than 0 or 1 is stored as a bit.
	ErrInvalidElement = errors.New("invalid bit element")
)

// IndexError reports an index outside [0, Limit).
//
// It unwraps to ErrIndexOutOfRange.
type IndexError struct {
	Op    string
	Index int
	Limit int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("bitvec: %s: index %d out of range [0, %d)", e.Op, e.Index, e.Limit)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// DimensionError reports a length mismatch between two operands.
//
// It unwraps to ErrDimensionMismatch.
type DimensionError struct {
	Op       string
	Expected int
	Actual   int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("bitvec: %s: dimension mismatch: expected %d, got %d", e.Op, e.Expected, e.Actual)
}

func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// OpError reports an operation that cannot be carried out on the receiver.
//
// The underlying sentinel can be accessed via errors.Unwrap.
type OpError struct {
	Op     string
	Reason string
	Err    error
}

func (e *OpError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("bitvec: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("bitvec: %s: %v: %s", e.Op, e.Err, e.Reason)
}

func (e *OpError) Unwrap() error { return e.Err }

// translateError maps storage-level errors onto the public error types.
func translateError(op string, index, limit int, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, bitset.ErrIndexOutOfRange) {
		return &IndexError{Op: op, Index: index, Limit: limit}
	}
	return err
}
