package arena

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTryAllocLayoutOverflow checks that a request whose size, combined
// with its alignment, cannot be expressed in pointer arithmetic fails with
// AllocFail rather than wrapping around.
func TestTryAllocLayoutOverflow(t *testing.T) {
	a := New()
	defer a.Release()

	_, err := a.TryAllocLayout(^uintptr(0), 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAllocFail))

	// the arena must still be usable afterward
	b := a.AllocBytes(8)
	assert.Len(t, b, 8)
}

// TestOOMDuringGrowthReturnsAllocFail checks that a system-allocator stub
// failing the N-th chunk request surfaces as AllocFail from
// TryAllocLayout, and that the arena remains usable once the stub stops
// failing.
func TestOOMDuringGrowthReturnsAllocFail(t *testing.T) {
	a := New()
	defer a.Release()

	orig := chunkAllocFunc
	t.Cleanup(func() { chunkAllocFunc = orig })

	calls := 0
	chunkAllocFunc = func(size int) ([]byte, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("injected allocator failure")
		}
		return orig(size)
	}

	// Larger than the default chunk, so allocSlow must grow immediately
	// and hit the injected failure on its very first chunk request.
	_, err := a.TryAllocLayout(4096, 8)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAllocFail))
	assert.Equal(t, 1, calls)

	// The arena must be left in a consistent, usable state: the old
	// current chunk is unchanged, so a small allocation still succeeds
	// from the fast path without touching the allocator at all.
	p, err := a.TryAllocLayout(8, 8)
	require.NoError(t, err)
	assert.NotNil(t, p)

	// Once the stub stops failing, a request that again needs a fresh
	// chunk succeeds too.
	chunkAllocFunc = orig
	_, err = a.TryAllocLayout(4096, 8)
	require.NoError(t, err)
}

// TestOOMDuringGrowthLeavesArenaResettable checks that resetting an arena
// whose growth has failed is always safe.
func TestOOMDuringGrowthLeavesArenaResettable(t *testing.T) {
	a := New()
	defer a.Release()

	orig := chunkAllocFunc
	t.Cleanup(func() { chunkAllocFunc = orig })
	chunkAllocFunc = func(size int) ([]byte, error) {
		return nil, errors.New("injected allocator failure")
	}

	_, err := a.TryAllocLayout(4096, 8)
	require.Error(t, err)

	chunkAllocFunc = orig
	require.NotPanics(t, func() { a.Reset() })
	assert.Equal(t, 0, a.AllocatedBytes())
}

// TestAllocLayoutPanicsOnAllocatorFailure confirms the infallible
// counterpart to TryAllocLayout aborts via panic rather than silently
// succeeding or returning a zero pointer when the backing allocator fails.
func TestAllocLayoutPanicsOnAllocatorFailure(t *testing.T) {
	a := New()
	defer a.Release()

	orig := chunkAllocFunc
	t.Cleanup(func() { chunkAllocFunc = orig })
	chunkAllocFunc = func(size int) ([]byte, error) {
		return nil, errors.New("injected allocator failure")
	}

	assert.Panics(t, func() { a.AllocLayout(4096, 8) })
}
