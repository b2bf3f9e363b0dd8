package arena

import (
	"unsafe"

	"github.com/pkg/errors"
)

// chunkFooter is the bookkeeping record for one chunk of arena memory.
//
// Bump allocators in systems languages typically place the footer
// physically inside the last bytes of the chunk's raw allocation, so that
// one free() call releases both the data and the bookkeeping together.
// Go's []byte is already a single GC-tracked allocation with no matching
// "free the bookkeeping separately" step, and embedding a pointer-carrying
// struct inside a byte slice via unsafe.Pointer would fight the garbage
// collector's precise scanning instead of avoiding work. chunkFooter
// therefore lives as an ordinary Go struct alongside the raw slice it
// describes; "footerPtr" below is the conceptual top-of-chunk address that
// arrangement would place a physical footer at, kept only for the pointer
// arithmetic the bump primitive depends on.
type chunkFooter struct {
	raw []byte // owns the chunk's backing storage; keeps it reachable for the GC

	base      uintptr // address of raw[0]
	footerPtr uintptr // address one past raw's last byte; cursor starts here
	cursor    uintptr // next address to hand out; base <= cursor <= footerPtr

	prev *chunkFooter // link to the previous chunk, or nil at the sentinel
}

// chunkAllocFunc performs the underlying allocation for a new chunk's
// backing storage. It is a package variable rather than a direct call to
// make so tests can inject allocator failures and exercise the AllocFail
// path without needing to actually exhaust the Go heap. Genuine heap
// exhaustion is a fatal, unrecoverable runtime throw in Go, not a panic;
// the default implementation's recover only catches the recoverable
// "makeslice: len out of range" panic from an oversized length that still
// passed addOverflows, and reports it as an error instead, since make
// itself has no fallible form.
var chunkAllocFunc = defaultChunkAlloc

func defaultChunkAlloc(size int) (raw []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			raw = nil
			err = errors.Wrapf(ErrAllocFail, "allocating a %d-byte chunk panicked: %v", size, r)
		}
	}()
	return make([]byte, size), nil
}

// newChunk allocates a chunk of exactly size bytes and initializes its
// footer with the cursor at the top of the chunk, empty.
func newChunk(size int, prev *chunkFooter) (*chunkFooter, error) {
	raw, err := chunkAllocFunc(size)
	if err != nil {
		return nil, err
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	top := base + uintptr(size)
	return &chunkFooter{
		raw:       raw,
		base:      base,
		footerPtr: top,
		cursor:    top,
		prev:      prev,
	}, nil
}

// size returns the total size, in bytes, of this chunk's backing allocation.
func (f *chunkFooter) size() int {
	return len(f.raw)
}

// allocatedBytes returns the number of bytes currently live in this chunk:
// the distance the cursor has moved down from footerPtr.
func (f *chunkFooter) allocatedBytes() int {
	return int(f.footerPtr - f.cursor)
}
