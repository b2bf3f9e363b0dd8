package arena

import "github.com/pkg/errors"

// Sentinel error kinds. Use errors.Is to test for these; operations that
// fail wrap one of them with request-specific context via errors.Wrapf.
var (
	// ErrAllocFail is returned when a request cannot be satisfied, either
	// because the computed chunk size would overflow or because no chunk
	// of any reasonable size could hold the request.
	ErrAllocFail = errors.New("membump: allocation failed")

	// ErrInvalidLayout is returned when a caller passes an alignment that
	// is not a power of two.
	ErrInvalidLayout = errors.New("membump: invalid layout: align must be a power of two")

	// ErrReleased is returned (via panic, not as an error value) when a
	// method is called on an Arena after Release.
	ErrReleased = errors.New("membump: use of arena after Release")
)

func (a *Arena) panicIfReleased() {
	if a.current == nil {
		panic(ErrReleased)
	}
}
