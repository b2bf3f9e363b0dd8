package arena

import (
	"runtime"
	"sync"
)

// SafeArena is a mutex-protected wrapper around Arena for concurrent use.
// Every operation is thread-safe but pays for a mutex lock; prefer a plain
// Arena per goroutine where that is an option.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a thread-safe arena with one chunk of
// DefaultChunkSize bytes.
func NewSafeArena() *SafeArena {
	return &SafeArena{a: New()}
}

// NewSafeArenaWithCapacity creates a thread-safe arena whose first chunk
// can satisfy at least capacity bytes of allocation without growing.
func NewSafeArenaWithCapacity(capacity int) *SafeArena {
	return &SafeArena{a: WithCapacity(capacity)}
}

// AllocBytes thread-safely allocates n bytes. Returns nil if n <= 0.
func (s *SafeArena) AllocBytes(n int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocBytes(n)
}

// EnsureCapacity thread-safely grows the arena, if necessary, so the next
// n-byte allocation cannot itself trigger growth.
func (s *SafeArena) EnsureCapacity(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.EnsureCapacity(n)
}

// TryEnsureCapacity is the fallible, thread-safe form of EnsureCapacity.
func (s *SafeArena) TryEnsureCapacity(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.TryEnsureCapacity(n)
}

// Reset thread-safely reclaims every allocation, keeping the largest chunk.
func (s *SafeArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release thread-safely drops every chunk and makes the arena unusable.
func (s *SafeArena) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// Grow thread-safely grows b to newSize bytes; see Arena.Grow.
func (s *SafeArena) Grow(b []byte, newSize int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Grow(b, newSize)
}

// Shrink thread-safely shrinks b to newSize bytes; see Arena.Shrink.
func (s *SafeArena) Shrink(b []byte, newSize int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Shrink(b, newSize)
}

// AllocatedChunks returns a snapshot of the byte ranges IterAllocatedChunks
// would yield, taken under lock. Unlike Arena.IterAllocatedChunks this is
// not lazy: holding the mutex open across caller-controlled loop bodies
// risks deadlock if the body calls back into the same SafeArena, so the
// chunk list is materialized up front instead.
func (s *SafeArena) AllocatedChunks() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	var chunks [][]byte
	for b := range s.a.IterAllocatedChunks() {
		chunks = append(chunks, b)
	}
	return chunks
}

// Generic allocation functions for SafeArena. Go methods cannot be
// generic, so these mirror the package-level Alloc* functions as
// free functions taking *SafeArena instead of *Arena.

// SafeAllocValue thread-safely copies v into the arena.
func SafeAllocValue[T any](s *SafeArena, v T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocValue(s.a, v)
}

// SafeAllocDefault thread-safely allocates a zero-valued T.
func SafeAllocDefault[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocDefault[T](s.a)
}

// SafeAllocUninitialized thread-safely allocates a T without clearing its
// memory. See AllocUninitialized for the pointer-safety caveat.
func SafeAllocUninitialized[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocUninitialized[T](s.a)
}

// SafeAllocSlice thread-safely allocates a slice of n uninitialized
// elements of type T.
func SafeAllocSlice[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSlice[T](s.a, n)
}

// SafeAllocSliceCopy thread-safely copies src into a new arena-backed slice.
func SafeAllocSliceCopy[T any](s *SafeArena, src []T) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSliceCopy(s.a, src)
}

// SafeAllocSliceFillWith thread-safely allocates a slice of n elements,
// setting element i to fill(i).
func SafeAllocSliceFillWith[T any](s *SafeArena, n int, fill func(int) T) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSliceFillWith(s.a, n, fill)
}

// SafeAllocString thread-safely copies s into the arena.
func SafeAllocString(s *SafeArena, str string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocString(s.a, str)
}

// SafePtrAndKeepAlive thread-safely returns t and calls runtime.KeepAlive
// on the underlying arena.
func SafePtrAndKeepAlive[T any](s *SafeArena, t *T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	runtime.KeepAlive(s.a)
	return t
}
