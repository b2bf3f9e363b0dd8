// Package arena implements a chunked bump allocator (memory arena) for Go.
//
// # Overview
//
// An arena allocator hands out memory by moving a cursor through
// pre-allocated chunks instead of calling the runtime allocator per
// request, and reclaims everything it owns in one step rather than
// tracking each allocation's lifetime individually. This is particularly
// useful for:
//
//   - Request-scoped allocations in web servers
//   - Temporary object allocation with batch cleanup
//   - Reducing garbage collection pressure
//   - High-performance applications requiring predictable allocation patterns
//
// # Basic Usage
//
//	a := arena.New() // default chunk size
//	defer a.Release() // clean up when done
//
//	// Allocate raw bytes
//	buf := a.AllocBytes(1024)
//
//	// Allocate typed values
//	ptr := arena.AllocValue(a, MyStruct{})
//	slice := arena.AllocSlice[int](a, 100)
//
//	// Reset for reuse (O(number of chunks), keeps the largest chunk)
//	a.Reset()
//
// # Thread Safety
//
// The basic Arena type is not thread-safe. For concurrent access, use SafeArena:
//
//	safeArena := arena.NewSafeArena()
//	defer safeArena.Release()
//
//	buf := safeArena.AllocBytes(1024)
//	ptr := arena.SafeAllocValue(safeArena, MyStruct{})
//
// # Memory Layout
//
// The arena allocates memory in chunks (default 512 bytes, doubling up to
// MaxChunkSize as needed). Within a chunk, the bump cursor starts at the
// top and moves downward toward the base as allocations are carved out,
// so each chunk's live region is [cursor, top) and new allocations are
// placed immediately below whatever was allocated most recently.
//
// # Performance Characteristics
//
//   - Allocation: O(1) amortized
//   - Reset: O(number of chunks), typically very fast
//   - Release: O(number of chunks)
//   - Memory overhead: minimal, just chunk bookkeeping
//
// # Important Notes
//
//   - Allocated memory is only valid while the arena exists.
//   - No individual deallocation: use Reset or Release for bulk cleanup.
//   - Memory from AllocUninitialized is not zeroed; AllocDefault and
//     AllocValue fully initialize the value.
//   - Chunks are []byte memory that the garbage collector does not scan,
//     so a pointer stored in an arena-allocated value does not keep its
//     target alive.
//
// # Metrics and Monitoring
//
// The arena provides a metrics snapshot for monitoring memory usage:
//
//	m := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Allocated: %d bytes\n", m.AllocatedBytes)
//	fmt.Printf("Capacity: %d bytes\n", m.Capacity)
//
// The metrics subpackage exports these as Prometheus gauges for callers
// that want to scrape them.
package arena
