// Package boxed gives an arena-allocated value a scoped destructor,
// mirroring bumpalo's Box<'a, T>: the value's storage stays owned by the
// arena (reclaimed only at the arena's next Reset or Release), but a
// caller-supplied destructor still runs deterministically at Close, with
// runtime.AddCleanup as a backstop if Close is never called.
package boxed

import (
	"runtime"

	arena "github.com/pavanmanishd/membump"
)

// Box wraps an arena-allocated *T together with a destructor to run when
// the box goes out of scope.
type Box[T any] struct {
	value   *T
	destroy func(*T)
	cleanup runtime.Cleanup
	closed  bool
}

// New allocates val into a and wraps it in a Box. destroy may be nil, in
// which case Close is purely advisory bookkeeping.
func New[T any](a *arena.Arena, val T, destroy func(*T)) *Box[T] {
	p := arena.AllocValue(a, val)
	b := &Box[T]{value: p, destroy: destroy}
	if destroy != nil {
		b.cleanup = runtime.AddCleanup(b, destroy, p)
	}
	return b
}

// Get returns the boxed value's pointer. Valid until the box's arena is
// reset or released.
func (b *Box[T]) Get() *T { return b.value }

// Close runs the destructor, if any, exactly once. Close is idempotent:
// calling it again is a no-op. It does not free the value's storage,
// which remains owned by the arena until Reset or Release.
func (b *Box[T]) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	if b.destroy != nil {
		b.cleanup.Stop()
		b.destroy(b.value)
	}
	return nil
}
