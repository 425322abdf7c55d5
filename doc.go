// Package arena implements a fixed-capacity bump allocator (memory arena) for Go.
//
// # Overview
//
// An arena allocator reserves one backing buffer up front and hands out
// portions of it by advancing a cursor. There is no per-object free;
// all space is reclaimed at once by Reset. This is particularly useful
// for:
//
//   - Request-scoped allocations in web servers
//   - Per-frame scratch memory in simulation or rendering loops
//   - Temporary object allocation with batch cleanup
//   - Reducing garbage collection pressure
//
// # Basic Usage
//
//	a, err := arena.New(1 << 20) // 1 MiB backing buffer
//	if err != nil {
//		return err
//	}
//	defer a.Release() // Return the buffer to the platform
//
//	// Allocate raw bytes
//	buf, err := a.AllocBytes(1024)
//
//	// Allocate typed values
//	ptr, err := arena.Alloc[MyStruct](a)
//	slice, err := arena.AllocSlice[int](a, 100)
//
//	// Reset for reuse (O(1) operation)
//	a.Reset()
//
// # Capacity
//
// The backing buffer is fixed at construction and never grows. When the
// remaining capacity cannot hold a request, the allocation fails with
// ErrOutOfMemory and the arena is left unchanged; the caller may Reset
// and start over, or construct a larger arena.
//
// # Thread Safety
//
// Arena is not safe for concurrent use. Callers that need concurrency
// must serialize access externally or use one arena per goroutine.
//
// # Important Notes
//
//   - Allocated memory is valid only until the next Reset or Release
//   - No individual deallocation - use Reset() for bulk cleanup
//   - Memory is not zeroed unless using Alloc() or AllocSliceZeroed()
//   - Natural alignment is maintained for all typed allocations
//   - Use Ref to detect use of an allocation past a Reset or Release
//
// # Metrics and Monitoring
//
// The arena provides usage accessors and a metrics snapshot:
//
//	m := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization * 100)
//	fmt.Printf("Used: %d of %d bytes\n", m.Used, m.Capacity)
package arena
