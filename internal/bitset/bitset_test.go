package bitset

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec/internal/mem"
)

func TestBitSet(t *testing.T) {
	b := New(100, false, nil)

	assert.Equal(t, 100, b.Len())
	assert.Len(t, b.Words(), 2)

	require.NoError(t, b.Set(10, true))
	v, err := b.Get(10)
	require.NoError(t, err)
	assert.True(t, v)
	assert.Equal(t, 1, b.Count(0, b.Len()))

	require.NoError(t, b.Set(10, false))
	v, err = b.Get(10)
	require.NoError(t, err)
	assert.False(t, v)

	_, err = b.Get(100)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = b.Get(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.ErrorIs(t, b.Set(100, true), ErrIndexOutOfRange)
}

func TestBitOrder(t *testing.T) {
	b := New(130, false, nil)
	require.NoError(t, b.Set(0, true))
	require.NoError(t, b.Set(63, true))
	require.NoError(t, b.Set(64, true))
	require.NoError(t, b.Set(129, true))

	w := b.Words()
	assert.Equal(t, uint64(1)|uint64(1)<<63, w[0])
	assert.Equal(t, uint64(1), w[1])
	assert.Equal(t, uint64(2), w[2])
}

func TestNewInitOnes(t *testing.T) {
	for _, n := range []int{0, 1, 63, 64, 65, 200} {
		b := New(n, true, mem.Aligned{})
		assert.Equal(t, n, b.Count(0, n), "n=%d", n)
		for i := 0; i < n; i++ {
			v, err := b.Get(i)
			require.NoError(t, err)
			require.True(t, v)
		}
		if r := n % WordBits; r != 0 {
			assert.Equal(t, LowMask(r), b.Words()[len(b.Words())-1], "tail bits must stay clear")
		}
	}
}

func TestWordAndSetWord(t *testing.T) {
	b := New(200, false, nil)
	b.SetWord(60, 0xABCD, 16)

	assert.Equal(t, uint64(0xABCD), b.Word(60)&LowMask(16))
	for i := 0; i < 16; i++ {
		v, _ := b.Get(60 + i)
		assert.Equal(t, (0xABCD>>i)&1 == 1, v, "bit %d", 60+i)
	}
	v, _ := b.Get(59)
	assert.False(t, v)
	v, _ = b.Get(76)
	assert.False(t, v)

	b.SetWord(100, ^uint64(0), 64)
	assert.Equal(t, ^uint64(0), b.Word(100))
	assert.Equal(t, 64, b.Count(100, 164))
	assert.Equal(t, 0, b.Count(164, 200))

	// Reads past the capacity come back zero.
	b.Fill(0, 200, true)
	assert.Equal(t, LowMask(10), b.Word(190))
}

func TestCountAndNextSet(t *testing.T) {
	b := New(300, false, nil)
	for _, i := range []int{3, 64, 65, 190, 299} {
		require.NoError(t, b.Set(i, true))
	}

	assert.Equal(t, 5, b.Count(0, 300))
	assert.Equal(t, 4, b.Count(4, 300))
	assert.Equal(t, 2, b.Count(64, 66))
	assert.Equal(t, 0, b.Count(66, 190))

	assert.Equal(t, 3, b.NextSet(0, 300))
	assert.Equal(t, 64, b.NextSet(4, 300))
	assert.Equal(t, 190, b.NextSet(66, 300))
	assert.Equal(t, 299, b.NextSet(191, 300))
	assert.Equal(t, 150, b.NextSet(66, 150), "no bit set returns the upper bound")
	assert.False(t, b.Any(66, 190))
	assert.True(t, b.Any(66, 191))
}

func TestFill(t *testing.T) {
	b := New(150, false, nil)
	b.Fill(10, 140, true)
	assert.Equal(t, 130, b.Count(0, 150))
	b.Fill(20, 30, false)
	assert.Equal(t, 120, b.Count(0, 150))
	v, _ := b.Get(9)
	assert.False(t, v)
	v, _ = b.Get(139)
	assert.True(t, v)
}

func TestCopyBits(t *testing.T) {
	tests := []struct {
		srcOff, dstOff, n int
	}{
		{0, 0, 128},
		{0, 0, 70},
		{3, 0, 100},
		{0, 5, 100},
		{17, 63, 64},
		{1, 2, 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("src=%d/dst=%d/n=%d", tt.srcOff, tt.dstOff, tt.n), func(t *testing.T) {
			src := New(256, false, nil)
			for i := 0; i < 256; i += 3 {
				require.NoError(t, src.Set(i, true))
			}
			dst := New(256, false, nil)
			CopyBits(dst, tt.dstOff, src, tt.srcOff, tt.n)

			for i := 0; i < 256; i++ {
				want := false
				if i >= tt.dstOff && i < tt.dstOff+tt.n {
					want, _ = src.Get(tt.srcOff + i - tt.dstOff)
				}
				got, _ := dst.Get(i)
				require.Equal(t, want, got, "bit %d", i)
			}
		})
	}
}

func TestCopyBitsOverlap(t *testing.T) {
	pattern := func() *BitSet {
		b := New(200, false, nil)
		for i := 0; i < 200; i += 7 {
			_ = b.Set(i, true)
		}
		return b
	}

	for _, shift := range []int{1, 5, 64, 70} {
		ref := pattern()

		fwd := pattern()
		CopyBits(fwd, shift, fwd, 0, 100)
		for i := 0; i < 100; i++ {
			want, _ := ref.Get(i)
			got, _ := fwd.Get(i + shift)
			require.Equal(t, want, got, "forward shift=%d bit %d", shift, i)
		}

		back := pattern()
		CopyBits(back, 0, back, shift, 100)
		for i := 0; i < 100; i++ {
			want, _ := ref.Get(i + shift)
			got, _ := back.Get(i)
			require.Equal(t, want, got, "backward shift=%d bit %d", shift, i)
		}
	}
}

func TestResize(t *testing.T) {
	b := New(8, false, nil)
	require.NoError(t, b.Set(3, true))

	grown := b.Resize(16, true, nil)
	assert.Equal(t, 16, grown.Len())
	for i := 0; i < 8; i++ {
		v, _ := grown.Get(i)
		assert.Equal(t, i == 3, v, "bit %d", i)
	}
	for i := 8; i < 16; i++ {
		v, _ := grown.Get(i)
		assert.True(t, v, "padded bit %d", i)
	}

	shrunk := grown.Resize(4, false, nil)
	assert.Equal(t, 4, shrunk.Len())
	assert.Equal(t, 1, shrunk.Count(0, 4))
	assert.Equal(t, uint64(0x8), shrunk.Words()[0])
}

func TestCloneIndependence(t *testing.T) {
	p := mem.NewPool()
	b := New(70, false, p)
	require.NoError(t, b.Set(69, true))

	c := b.Clone(p)
	require.NoError(t, c.Set(0, true))

	v, _ := b.Get(0)
	assert.False(t, v)
	v, _ = c.Get(69)
	assert.True(t, v)

	b.Release(p)
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 2, c.Count(0, c.Len()))
}

func BenchmarkCount(b *testing.B) {
	for _, n := range []int{64, 1000, 100000} {
		bs := New(n, true, nil)
		b.Run(fmt.Sprintf("bits=%d/aligned", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = bs.Count(0, n)
			}
		})
		b.Run(fmt.Sprintf("bits=%d/offset", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = bs.Count(3, n)
			}
		})
	}
}
