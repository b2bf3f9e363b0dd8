package arena

// Arena is a chunked bump allocator. The zero value is not usable; create
// one with New or WithCapacity.
type Arena struct {
	current *chunkFooter
}

// New creates an Arena with one chunk of DefaultChunkSize bytes. Panics if
// the backing allocation fails, matching the infallible/Try* split every
// other allocation operation follows.
func New() *Arena {
	c, err := newChunk(DefaultChunkSize, nil)
	if err != nil {
		panic(err)
	}
	return &Arena{current: c}
}

// WithCapacity creates an Arena whose first chunk can satisfy at least
// capacity bytes of allocation without growing. Panics if the backing
// allocation fails.
func WithCapacity(capacity int) *Arena {
	if capacity < 0 {
		capacity = 0
	}
	size := nextChunkSize(0, uintptr(capacity), 1)
	c, err := newChunk(int(size), nil)
	if err != nil {
		panic(err)
	}
	return &Arena{current: c}
}

// AllocatedBytes returns the total number of bytes currently live across
// every chunk the arena owns.
func (a *Arena) AllocatedBytes() int {
	a.panicIfReleased()
	total := 0
	for f := a.current; f != nil; f = f.prev {
		total += f.allocatedBytes()
	}
	return total
}

// ChunkCapacity returns the total capacity, in bytes, of the chunk
// currently receiving allocations.
func (a *Arena) ChunkCapacity() int {
	a.panicIfReleased()
	return a.current.size()
}

// Reset reclaims every allocation the arena holds. It keeps only the
// single largest chunk (emptied and made current), discarding the rest,
// so a reset arena's next growth spurt starts from whatever capacity it
// had already proven it needed rather than from scratch.
func (a *Arena) Reset() {
	a.panicIfReleased()
	largest := a.current
	for f := a.current; f != nil; f = f.prev {
		if f.size() > largest.size() {
			largest = f
		}
	}
	largest.prev = nil
	largest.cursor = largest.footerPtr
	a.current = largest
}

// Release drops every chunk the arena holds, making the arena unusable.
// Calling Release again is a no-op; any other method called afterward
// panics, except Deallocate, which never does anything. Because chunks
// are ordinary GC-tracked []byte values, Release's job is simply to stop
// referencing them; there is no explicit free step to run.
func (a *Arena) Release() {
	if a.current == nil {
		return
	}
	for f := a.current; f != nil; {
		next := f.prev
		f.raw = nil
		f.prev = nil
		f = next
	}
	a.current = nil
}

// EnsureCapacity grows the arena, if necessary, so that an allocation of n
// bytes is guaranteed to succeed from the current chunk without itself
// triggering further growth. Panics if the backing allocation fails; use
// TryEnsureCapacity to handle that as an error.
func (a *Arena) EnsureCapacity(n int) {
	if err := a.TryEnsureCapacity(n); err != nil {
		panic(err)
	}
}

// TryEnsureCapacity is the fallible form of EnsureCapacity.
func (a *Arena) TryEnsureCapacity(n int) error {
	a.panicIfReleased()
	if n <= 0 {
		return nil
	}
	need := uintptr(n)
	if avail := a.current.cursor - a.current.base; need <= avail {
		return nil
	}
	newSize := nextChunkSize(a.current.size(), need, 1)
	next, err := newChunk(int(newSize), a.current)
	if err != nil {
		return err
	}
	a.current = next
	return nil
}
