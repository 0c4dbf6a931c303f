// Package mem provides memory allocation utilities.
//
// # Allocators
//
// Bit storage obtains its words through the Allocator interface:
//
//   - Heap: plain make, reclaimed by the garbage collector (default)
//   - Aligned: 64-byte aligned buffers (cache-line friendly bulk scans)
//   - Pool: power-of-two size classes recycled through sync.Pool
//
// Every allocator returns zeroed memory.
package mem
