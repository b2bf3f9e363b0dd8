package arena

import "unsafe"

// Allocator is the generic allocation protocol a bump arena and other
// allocation strategies can conform to, letting higher-level data
// structures stay agnostic of the backing allocator. The collections
// subpackage does not use it: Vec takes an *Arena directly.
type Allocator interface {
	// Allocate returns a fresh, zero-length-capable byte region of size
	// bytes aligned to align.
	Allocate(size, align uintptr) ([]byte, error)

	// Deallocate releases b. Implementations that only support bulk
	// reclamation (such as Arena) may treat this as a no-op.
	Deallocate(b []byte)

	// Grow and Shrink resize an existing allocation; see Arena.Grow and
	// Arena.Shrink.
	Grow(b []byte, newSize int) ([]byte, error)
	Shrink(b []byte, newSize int) []byte
}

var _ Allocator = (*Arena)(nil)

// Allocate satisfies Allocator by delegating to TryAllocLayout.
func (a *Arena) Allocate(size, align uintptr) ([]byte, error) {
	ptr, err := a.TryAllocLayout(size, align)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(ptr), int(size)), nil
}

// Deallocate is a no-op: an Arena only reclaims memory in bulk, via Reset
// or Release, never per allocation.
func (a *Arena) Deallocate(b []byte) {}
