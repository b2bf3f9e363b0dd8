package arena

import (
	"iter"
	"unsafe"
)

// IterAllocatedChunks returns a sequence of byte slices, one per chunk the
// arena currently owns, newest chunk first, each covering exactly that
// chunk's live bytes ([cursor, footerPtr)). Concatenating the yielded
// slices in order visits every live allocation exactly once. The caller
// must not allocate from or reset the arena while iterating.
func (a *Arena) IterAllocatedChunks() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		a.panicIfReleased()
		for f := a.current; f != nil; f = f.prev {
			length := f.allocatedBytes()
			var b []byte
			if length > 0 {
				b = unsafe.Slice((*byte)(unsafe.Pointer(f.cursor)), length)
			}
			if !yield(b) {
				return
			}
		}
	}
}
