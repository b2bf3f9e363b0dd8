package arena

import (
	"unsafe"

	"github.com/pkg/errors"
)

// Chunk sizing constants. MaxChunkSize is the smallest cap allowed (2^22);
// doubling stops growing the chunk size once it would exceed this, though
// a single oversized request still gets a chunk sized to fit it.
const (
	MinChunkSize     = 512
	GrowthFactor     = 2
	MaxChunkSize     = 1 << 22
	DefaultChunkSize = MinChunkSize
)

// nextChunkSize computes the size of the next chunk to allocate, given the
// size of the chunk that just ran out and the request that triggered the
// growth. It doubles the previous chunk size, capped at MaxChunkSize, then
// takes the max against whatever the triggering request actually needs so
// that an oversized request still gets a chunk that fits it in one shot.
func nextChunkSize(prevSize int, size, align uintptr) uintptr {
	doubled := uintptr(prevSize) * GrowthFactor
	if doubled > MaxChunkSize {
		doubled = MaxChunkSize
	}
	needed := roundUpPow2(size + align)
	newSize := doubled
	if needed > newSize {
		newSize = needed
	}
	if newSize < MinChunkSize {
		newSize = MinChunkSize
	}
	return newSize
}

// allocSlow is the cold path: the current chunk has no room, so a new
// chunk is grown and linked in front of it, sized to satisfy the
// triggering request plus the arena's usual doubling policy.
func (a *Arena) allocSlow(size, align uintptr) (unsafe.Pointer, error) {
	if addOverflows(size, align) {
		return nil, errors.Wrapf(ErrAllocFail, "requested size %d with align %d overflows", size, align)
	}
	prev := a.current
	newSize := nextChunkSize(prev.size(), size, align)
	next, err := newChunk(int(newSize), prev)
	if err != nil {
		return nil, errors.Wrapf(ErrAllocFail, "growing arena: %v", err)
	}
	ptr, ok := next.tryAlloc(size, align)
	if !ok {
		return nil, errors.Wrapf(ErrAllocFail, "newly grown chunk of %d bytes could not satisfy a request of %d bytes (align %d)", newSize, size, align)
	}
	a.current = next
	return ptr, nil
}
