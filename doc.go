// Package bitvec provides a bit-packed vector for language runtimes.
//
// A BitVector stores single-bit elements in 64-bit words. Bit 0 is the
// least-significant bit of word 0, ascending. On top of the packed storage it
// supports:
//
//   - Displacement: a vector can alias a window of another vector's storage
//   - Fill pointers: a logical length distinct from the physical dimension
//   - Bitwise operations: AND, OR, XOR and AND-NOT, in place or allocating
//   - Growth: Adjust, VectorPush and VectorPushExtend
//
// # Quick Start
//
//	v, _ := bitvec.Make(false, 8)
//	_ = v.SetBit(3, true)
//	v.CountSet()   // 1
//	v.String()     // "00010000"
//
// # Fill Pointers
//
//	v, _ := bitvec.Make(false, 0, bitvec.Adjustable(), bitvec.WithFillPointer(0))
//	for _, b := range []bool{true, false, true} {
//	    _, _ = v.VectorPushExtend(b, max(v.Dimension(), 8))
//	}
//	v.Len()  // 3
//
// # Displacement
//
// A displaced vector owns no storage. Reads and writes at index i go to bit
// offset+i of the target, and the view holds a reference that keeps the
// target alive:
//
//	target := bitvec.MustMake(false, 128)
//	view := bitvec.MustMake(false, 64, bitvec.DisplacedTo(target, 32))
//	_ = view.SetBit(0, true)  // sets target bit 32
//
// A view over a view binds to the underlying owner with the offsets
// combined. DeepCopy always produces an independent vector with owned
// storage.
//
// # Equality and Hashing
//
// Equal compares length and bits only; dimension, fill pointer and
// displacement are ignored. WriteHash, Hash64 and Checksum are derived from
// the same logical content, so equal vectors hash equally.
//
// # Concurrency
//
// BitVector has no internal locking. Callers must serialize mutations, and
// a mutation through a displaced view needs exclusive access to its target.
package bitvec
