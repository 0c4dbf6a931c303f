package bitvec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordAllocate is called whenever owned storage of the given size in bits is allocated.
	RecordAllocate(bits int)

	// RecordAdjust is called after each successful reallocation.
	RecordAdjust(oldDimension, newDimension int, duration time.Duration)

	// RecordBitOp is called after each in-place bitwise operation.
	// aligned reports whether the word-at-a-time path was taken.
	RecordBitOp(op string, bits int, aligned bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAllocate(int)                   {}
func (NoopMetricsCollector) RecordAdjust(int, int, time.Duration) {}
func (NoopMetricsCollector) RecordBitOp(string, int, bool)        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AllocateCount     atomic.Int64
	AllocatedBits     atomic.Int64
	AdjustCount       atomic.Int64
	AdjustTotalNanos  atomic.Int64
	BitOpCount        atomic.Int64
	BitOpAlignedCount atomic.Int64
	BitOpBits         atomic.Int64
}

// RecordAllocate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAllocate(bits int) {
	b.AllocateCount.Add(1)
	b.AllocatedBits.Add(int64(bits))
}

// RecordAdjust implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdjust(_, _ int, duration time.Duration) {
	b.AdjustCount.Add(1)
	b.AdjustTotalNanos.Add(duration.Nanoseconds())
}

// RecordBitOp implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBitOp(_ string, bits int, aligned bool) {
	b.BitOpCount.Add(1)
	b.BitOpBits.Add(int64(bits))
	if aligned {
		b.BitOpAlignedCount.Add(1)
	}
}

// BasicMetricsStats is a point-in-time copy of the collected metrics.
type BasicMetricsStats struct {
	AllocateCount     int64
	AllocatedBits     int64
	AdjustCount       int64
	AvgAdjustLatency  time.Duration
	BitOpCount        int64
	BitOpAlignedCount int64
	BitOpBits         int64
}

// GetStats returns a snapshot of the current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	s := BasicMetricsStats{
		AllocateCount:     b.AllocateCount.Load(),
		AllocatedBits:     b.AllocatedBits.Load(),
		AdjustCount:       b.AdjustCount.Load(),
		BitOpCount:        b.BitOpCount.Load(),
		BitOpAlignedCount: b.BitOpAlignedCount.Load(),
		BitOpBits:         b.BitOpBits.Load(),
	}
	if s.AdjustCount > 0 {
		s.AvgAdjustLatency = time.Duration(b.AdjustTotalNanos.Load() / s.AdjustCount)
	}
	return s
}
