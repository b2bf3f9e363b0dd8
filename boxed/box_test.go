package boxed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	arena "github.com/pavanmanishd/membump"
)

type resource struct {
	name   string
	closed bool
}

func TestBoxRunsDestructorOnClose(t *testing.T) {
	a := arena.New()
	defer a.Release()

	var destroyedWith *resource
	b := New(a, resource{name: "conn"}, func(r *resource) {
		r.closed = true
		destroyedWith = r
	})

	require.Equal(t, "conn", b.Get().name)
	assert.False(t, b.Get().closed)

	require.NoError(t, b.Close())
	assert.True(t, b.Get().closed, "destructor should have mutated the boxed value in place")
	assert.Same(t, b.Get(), destroyedWith)
}

func TestBoxCloseIsIdempotent(t *testing.T) {
	a := arena.New()
	defer a.Release()

	calls := 0
	b := New(a, resource{name: "conn"}, func(r *resource) { calls++ })

	require.NoError(t, b.Close())
	require.NoError(t, b.Close())
	require.NoError(t, b.Close())
	assert.Equal(t, 1, calls, "destructor must run exactly once regardless of how many times Close is called")
}

func TestBoxNilDestroyIsAdvisory(t *testing.T) {
	a := arena.New()
	defer a.Release()

	b := New[int](a, 42, nil)
	assert.Equal(t, 42, *b.Get())
	assert.NoError(t, b.Close())
	assert.Equal(t, 42, *b.Get(), "storage remains valid after Close; only the destructor ran")
}

func TestBoxStorageSurvivesCloseUntilReset(t *testing.T) {
	a := arena.New()
	defer a.Release()

	b := New(a, resource{name: "conn"}, func(r *resource) { r.closed = true })
	require.NoError(t, b.Close())

	// The value's storage is still arena-owned and readable after Close;
	// only Reset/Release reclaims it.
	assert.Equal(t, "conn", b.Get().name)
}
