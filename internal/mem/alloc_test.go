package mem

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocAligned(t *testing.T) {
	sizes := []int{1, 10, 63, 64, 65, 100, 1024}

	for _, size := range sizes {
		buf := AllocAligned(size)
		assert.Len(t, buf, size)

		ptr := unsafe.Pointer(&buf[0])
		addr := uintptr(ptr)
		assert.Equal(t, uintptr(0), addr%Alignment, "Address %d should be aligned to %d for size %d", addr, Alignment, size)
	}

	assert.Nil(t, AllocAligned(0))
	assert.Nil(t, AllocAligned(-1))
}

func TestAllocAlignedUint64(t *testing.T) {
	sizes := []int{1, 7, 8, 9, 100, 1024}

	for _, size := range sizes {
		buf := AllocAlignedUint64(size)
		assert.Len(t, buf, size)

		addr := uintptr(unsafe.Pointer(&buf[0]))
		assert.Equal(t, uintptr(0), addr%Alignment, "Address %d should be aligned to %d for size %d", addr, Alignment, size)
		for _, w := range buf {
			assert.Zero(t, w)
		}
	}

	assert.Nil(t, AllocAlignedUint64(0))
}

func TestAllocators(t *testing.T) {
	allocators := map[string]Allocator{
		"heap":    Heap{},
		"aligned": Aligned{},
		"pool":    NewPool(),
	}

	for name, a := range allocators {
		t.Run(name, func(t *testing.T) {
			w := a.AllocWords(5)
			require.Len(t, w, 5)
			for i := range w {
				w[i] = ^uint64(0)
			}
			a.FreeWords(w)

			w2 := a.AllocWords(5)
			require.Len(t, w2, 5)
			for _, v := range w2 {
				assert.Zero(t, v, "allocator must hand out zeroed words")
			}

			assert.Nil(t, a.AllocWords(0))
		})
	}
}

func TestPoolSizeClasses(t *testing.T) {
	assert.Equal(t, 0, sizeClass(1))
	assert.Equal(t, 1, sizeClass(2))
	assert.Equal(t, 2, sizeClass(3))
	assert.Equal(t, 2, sizeClass(4))
	assert.Equal(t, 3, sizeClass(5))

	p := NewPool()
	w := p.AllocWords(5)
	assert.Equal(t, 8, cap(w))

	// Foreign slices whose capacity is not a class size are dropped.
	p.FreeWords(make([]uint64, 3))
	p.FreeWords(nil)
}

func BenchmarkAllocators(b *testing.B) {
	sizes := []int{1, 16, 256, 4096}
	allocators := map[string]Allocator{
		"heap":    Heap{},
		"aligned": Aligned{},
		"pool":    NewPool(),
	}
	for name, a := range allocators {
		for _, size := range sizes {
			b.Run(fmt.Sprintf("%s/words=%d", name, size), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					a.FreeWords(a.AllocWords(size))
				}
			})
		}
	}
}
