package bitvec

import (
	"github.com/hupe1980/bitvec/internal/mem"
)

// Allocator supplies and reclaims the words behind owned storage.
// Implementations must return zeroed memory.
type Allocator = mem.Allocator

// HeapAllocator returns the default allocator, which leaves reclamation to the garbage collector.
func HeapAllocator() Allocator { return mem.Heap{} }

// AlignedAllocator returns an allocator whose buffers start on a 64-byte boundary.
func AlignedAllocator() Allocator { return mem.Aligned{} }

// NewPoolAllocator returns an allocator that recycles buffers released by Adjust.
// It is safe to share between vectors and goroutines.
func NewPoolAllocator() Allocator { return mem.NewPool() }

type options struct {
	adjustable      bool
	hasFillPointer  bool
	fillPointer     int
	displacedTo     *BitVector
	displacedOffset int
	allocator       Allocator
	logger          *Logger
	metrics         MetricsCollector
}

func defaultOptions() options {
	return options{
		allocator: mem.Default,
		logger:    NoopLogger(),
		metrics:   NoopMetricsCollector{},
	}
}

// Option configures Make.
type Option func(*options)

// Adjustable marks the vector as resizable through Adjust and VectorPushExtend.
func Adjustable() Option {
	return func(o *options) {
		o.adjustable = true
	}
}

// WithFillPointer gives the vector a fill pointer, making Len report fp
// instead of the dimension. fp must lie in [0, dimension].
func WithFillPointer(fp int) Option {
	return func(o *options) {
		o.hasFillPointer = true
		o.fillPointer = fp
	}
}

// DisplacedTo makes the vector a view over target's storage starting at bit
// offset. No storage is allocated and the init value passed to Make is ignored.
//
// The window [offset, offset+dimension) must lie within target's dimension.
// If target is itself displaced, the view binds directly to the underlying
// storage owner with the offsets combined.
func DisplacedTo(target *BitVector, offset int) Option {
	return func(o *options) {
		o.displacedTo = target
		o.displacedOffset = offset
	}
}

// WithAllocator configures the allocator for owned storage.
//
// If nil is passed, the heap allocator is used.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		if a == nil {
			a = mem.Default
		}
		o.allocator = a
	}
}

// WithLogger sets the logger for debug records about allocation and growth.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics sets a metrics collector.
//
// If nil is passed, metrics are discarded.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}
