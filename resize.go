package arena

import (
	"unsafe"

	"github.com/pkg/errors"
)

// growLayout grows an existing allocation of oldSize bytes at ptr to
// newSize bytes, preserving its contents and alignment. If ptr is the
// arena's current cursor (the most recent allocation) and there is room
// below it, the cursor is simply moved further down and the data shifted
// to meet it. Otherwise a fresh allocation is made and the old contents
// copied over; the old bytes are left in place, unreachable once the
// caller drops its old slice.
func (a *Arena) growLayout(ptr unsafe.Pointer, oldSize, newSize, align uintptr) (unsafe.Pointer, error) {
	if newSize <= oldSize {
		return ptr, nil
	}
	cur := a.current
	if uintptr(ptr) == cur.cursor {
		delta := newSize - oldSize
		if avail := cur.cursor - cur.base; delta <= avail {
			newCursor := (cur.cursor - delta) &^ (align - 1)
			if newCursor >= cur.base {
				dst := unsafe.Pointer(newCursor)
				memmove(dst, ptr, oldSize)
				cur.cursor = newCursor
				return dst, nil
			}
		}
	}
	newPtr, err := a.TryAllocLayout(newSize, align)
	if err != nil {
		return nil, err
	}
	memmove(newPtr, ptr, oldSize)
	return newPtr, nil
}

// shrinkLayout shrinks an existing allocation of oldSize bytes at ptr down
// to newSize bytes. If ptr is the arena's current cursor, the freed tail
// is reclaimed by moving the cursor up and sliding the retained bytes up
// to meet it, and the new (moved) pointer is returned. Otherwise ptr is
// returned unchanged: nothing is reclaimed, but the result is still a
// valid newSize-byte view, which satisfies the contract either way.
func (a *Arena) shrinkLayout(ptr unsafe.Pointer, oldSize, newSize uintptr) unsafe.Pointer {
	if newSize >= oldSize {
		return ptr
	}
	cur := a.current
	if uintptr(ptr) == cur.cursor {
		delta := oldSize - newSize
		newCursor := cur.cursor + delta
		dst := unsafe.Pointer(newCursor)
		memmove(dst, ptr, newSize)
		cur.cursor = newCursor
		return dst
	}
	return ptr
}

// Grow returns a newSize-byte slice holding b's contents, reusing b's
// storage in place when b is the arena's most recent allocation and there
// is room to extend it downward; otherwise it allocates fresh storage and
// copies b into it. Grow satisfies the Allocator interface.
func (a *Arena) Grow(b []byte, newSize int) ([]byte, error) {
	a.panicIfReleased()
	if newSize < len(b) {
		return nil, errors.Errorf("membump: Grow: new size %d is smaller than old size %d", newSize, len(b))
	}
	if newSize == len(b) {
		return b, nil
	}
	var ptr unsafe.Pointer
	if len(b) > 0 {
		ptr = unsafe.Pointer(unsafe.SliceData(b))
	} else {
		ptr = unsafe.Pointer(a.current.cursor)
	}
	newPtr, err := a.growLayout(ptr, uintptr(len(b)), uintptr(newSize), 1)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(newPtr), newSize), nil
}

// Shrink returns a newSize-byte slice holding b's first newSize bytes. If
// newSize >= len(b), b is returned unchanged. Shrink cannot fail.
// Shrink satisfies the Allocator interface.
func (a *Arena) Shrink(b []byte, newSize int) []byte {
	a.panicIfReleased()
	if newSize >= len(b) {
		return b
	}
	if newSize < 0 {
		newSize = 0
	}
	ptr := unsafe.Pointer(unsafe.SliceData(b))
	newPtr := a.shrinkLayout(ptr, uintptr(len(b)), uintptr(newSize))
	return unsafe.Slice((*byte)(newPtr), newSize)
}

// GrowSlice is the generic, element-typed counterpart to Grow: it grows s
// from its current length to newLen elements, preserving existing
// elements and zero-initializing the newly added ones.
func GrowSlice[T any](a *Arena, s []T, newLen int) ([]T, error) {
	a.panicIfReleased()
	if newLen < len(s) {
		return nil, errors.Errorf("membump: GrowSlice: new length %d smaller than old length %d", newLen, len(s))
	}
	var zero T
	elemSize, align := unsafe.Sizeof(zero), unsafe.Alignof(zero)
	if len(s) == 0 {
		return TryAllocSliceFillWith(a, newLen, func(int) T { return zero })
	}
	ptr := unsafe.Pointer(unsafe.SliceData(s))
	newPtr, err := a.growLayout(ptr, elemSize*uintptr(len(s)), elemSize*uintptr(newLen), align)
	if err != nil {
		return nil, err
	}
	out := unsafe.Slice((*T)(newPtr), newLen)
	for i := len(s); i < newLen; i++ {
		out[i] = zero
	}
	return out, nil
}
