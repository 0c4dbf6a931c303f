// Package mem provides word allocation for packed bit storage.
package mem

import (
	"math/bits"
	"sync"
	"unsafe"
)

// Alignment is the byte alignment used by the aligned allocator (one cache line).
const Alignment = 64

// Allocator hands out zeroed word buffers for bit storage and takes them back
// once the owning storage is replaced.
//
// Implementations may pool, align or account for memory; callers treat them as
// opaque and never retry a failed allocation.
type Allocator interface {
	// AllocWords returns a zeroed slice of exactly n words.
	AllocWords(n int) []uint64
	// FreeWords releases a slice previously returned by AllocWords.
	// The caller must not use w afterwards.
	FreeWords(w []uint64)
}

// Heap allocates with make and leaves reclamation to the garbage collector.
type Heap struct{}

// AllocWords implements Allocator.
func (Heap) AllocWords(n int) []uint64 {
	if n <= 0 {
		return nil
	}
	return make([]uint64, n)
}

// FreeWords implements Allocator.
func (Heap) FreeWords([]uint64) {}

// Aligned allocates word buffers starting on a 64-byte boundary.
type Aligned struct{}

// AllocWords implements Allocator.
func (Aligned) AllocWords(n int) []uint64 {
	return AllocAlignedUint64(n)
}

// FreeWords implements Allocator.
func (Aligned) FreeWords([]uint64) {}

// Default is the allocator used when none is configured.
var Default Allocator = Heap{}

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	totalSize := size + Alignment
	buf := make([]byte, totalSize)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}

// AllocAlignedUint64 allocates a uint64 slice of the given length with 64-byte alignment.
func AllocAlignedUint64(n int) []uint64 {
	if n <= 0 {
		return nil
	}
	byteSlice := AllocAligned(n * 8)
	ptr := unsafe.Pointer(&byteSlice[0])   //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*uint64)(ptr), n) //nolint:gosec // unsafe is required for memory alignment
}

// maxPoolClass bounds pooled buffers at 2^20 words (8 MiB). Larger requests
// bypass the pool.
const maxPoolClass = 20

// Pool recycles word buffers in power-of-two size classes.
// It is safe for concurrent use.
type Pool struct {
	classes [maxPoolClass + 1]sync.Pool
}

// NewPool creates an empty Pool.
func NewPool() *Pool {
	return &Pool{}
}

func sizeClass(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// AllocWords implements Allocator.
func (p *Pool) AllocWords(n int) []uint64 {
	if n <= 0 {
		return nil
	}
	c := sizeClass(n)
	if c > maxPoolClass {
		return make([]uint64, n)
	}
	if v := p.classes[c].Get(); v != nil {
		w := (*(v.(*[]uint64)))[:n]
		clear(w)
		return w
	}
	return make([]uint64, n, 1<<c)
}

// FreeWords implements Allocator.
func (p *Pool) FreeWords(w []uint64) {
	if cap(w) == 0 {
		return
	}
	c := sizeClass(cap(w))
	if c > maxPoolClass || cap(w) != 1<<c {
		return
	}
	w = w[:cap(w)]
	p.classes[c].Put(&w)
}
