package arena

import (
	"runtime"
	"unsafe"

	"github.com/pkg/errors"
)

// AllocBytes returns an n-byte slice carved out of the arena, 1-byte
// aligned. The caller must keep the arena reachable (or call
// PtrAndKeepAlive) while the slice is in use. Returns nil if n <= 0.
func (a *Arena) AllocBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	ptr := a.AllocLayout(uintptr(n), 1)
	return unsafe.Slice((*byte)(ptr), n)
}

// AllocLayout allocates size bytes aligned to align and returns a pointer
// to the start of the region. It panics on failure; use TryAllocLayout to
// handle failure as an error.
func (a *Arena) AllocLayout(size, align uintptr) unsafe.Pointer {
	ptr, err := a.TryAllocLayout(size, align)
	if err != nil {
		panic(err)
	}
	return ptr
}

// TryAllocLayout is the fallible form of AllocLayout. Every other
// allocation helper in this package is built on top of it.
func (a *Arena) TryAllocLayout(size, align uintptr) (unsafe.Pointer, error) {
	a.panicIfReleased()
	if !isPowerOfTwo(align) {
		return nil, errors.Wrapf(ErrInvalidLayout, "align %d is not a power of two", align)
	}
	if ptr, ok := a.current.tryAlloc(size, align); ok {
		return ptr, nil
	}
	return a.allocSlow(size, align)
}

// AllocValue copies v into the arena and returns a pointer to the copy.
// It panics on failure; use TryAllocValue to handle failure as an error.
func AllocValue[T any](a *Arena, v T) *T {
	p, err := TryAllocValue(a, v)
	if err != nil {
		panic(err)
	}
	return p
}

// TryAllocValue is the fallible form of AllocValue.
func TryAllocValue[T any](a *Arena, v T) (*T, error) {
	var zero T
	ptr, err := a.TryAllocLayout(unsafe.Sizeof(zero), unsafe.Alignof(zero))
	if err != nil {
		return nil, err
	}
	p := (*T)(ptr)
	*p = v
	return p, nil
}

// AllocDefault allocates a zero-valued T inside the arena. Unlike
// AllocUninitialized, the memory is explicitly cleared, so bytes written
// by an allocation made before the arena's last Reset do not show through.
// See AllocUninitialized for how the garbage collector treats pointers
// stored in arena memory.
func AllocDefault[T any](a *Arena) *T {
	p, err := TryAllocDefault[T](a)
	if err != nil {
		panic(err)
	}
	return p
}

// TryAllocDefault is the fallible form of AllocDefault.
func TryAllocDefault[T any](a *Arena) (*T, error) {
	var zero T
	ptr, err := a.TryAllocLayout(unsafe.Sizeof(zero), unsafe.Alignof(zero))
	if err != nil {
		return nil, err
	}
	clear(unsafe.Slice((*byte)(ptr), unsafe.Sizeof(zero)))
	return (*T)(ptr), nil
}

// AllocUninitialized returns a *T located in the arena without clearing
// its memory. Faster than AllocDefault but the bytes are whatever was
// left over from an earlier allocation cycle, so every field must be
// written before it is read. Arena chunks are plain []byte memory, which
// the garbage collector does not scan: a pointer or interface stored in
// any arena-allocated value does not keep its target alive.
func AllocUninitialized[T any](a *Arena) *T {
	p, err := TryAllocUninitialized[T](a)
	if err != nil {
		panic(err)
	}
	return p
}

// TryAllocUninitialized is the fallible form of AllocUninitialized.
func TryAllocUninitialized[T any](a *Arena) (*T, error) {
	var zero T
	ptr, err := a.TryAllocLayout(unsafe.Sizeof(zero), unsafe.Alignof(zero))
	if err != nil {
		return nil, err
	}
	return (*T)(ptr), nil
}

// AllocSliceCopy copies src element-by-element into a new arena-backed
// slice and returns it.
func AllocSliceCopy[T any](a *Arena, src []T) []T {
	s, err := TryAllocSliceCopy(a, src)
	if err != nil {
		panic(err)
	}
	return s
}

// TryAllocSliceCopy is the fallible form of AllocSliceCopy.
func TryAllocSliceCopy[T any](a *Arena, src []T) ([]T, error) {
	if len(src) == 0 {
		return nil, nil
	}
	var zero T
	elemSize, align := unsafe.Sizeof(zero), unsafe.Alignof(zero)
	ptr, err := a.TryAllocLayout(elemSize*uintptr(len(src)), align)
	if err != nil {
		return nil, err
	}
	dst := unsafe.Slice((*T)(ptr), len(src))
	copy(dst, src)
	return dst, nil
}

// AllocSliceClone deep-copies src into a new arena-backed slice, using
// clone to produce each element's copy. Go has no built-in Clone
// constraint, so the cloning function is supplied explicitly; pass
// func(v T) T { return v } for a shallow copy equivalent to
// AllocSliceCopy.
func AllocSliceClone[T any](a *Arena, src []T, clone func(T) T) []T {
	s, err := TryAllocSliceClone(a, src, clone)
	if err != nil {
		panic(err)
	}
	return s
}

// TryAllocSliceClone is the fallible form of AllocSliceClone.
func TryAllocSliceClone[T any](a *Arena, src []T, clone func(T) T) ([]T, error) {
	if len(src) == 0 {
		return nil, nil
	}
	var zero T
	elemSize, align := unsafe.Sizeof(zero), unsafe.Alignof(zero)
	ptr, err := a.TryAllocLayout(elemSize*uintptr(len(src)), align)
	if err != nil {
		return nil, err
	}
	dst := unsafe.Slice((*T)(ptr), len(src))
	for i, v := range src {
		dst[i] = clone(v)
	}
	return dst, nil
}

// AllocSliceFillWith allocates a slice of n elements, setting element i to
// fill(i).
func AllocSliceFillWith[T any](a *Arena, n int, fill func(int) T) []T {
	s, err := TryAllocSliceFillWith(a, n, fill)
	if err != nil {
		panic(err)
	}
	return s
}

// TryAllocSliceFillWith is the fallible form of AllocSliceFillWith.
func TryAllocSliceFillWith[T any](a *Arena, n int, fill func(int) T) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	var zero T
	elemSize, align := unsafe.Sizeof(zero), unsafe.Alignof(zero)
	ptr, err := a.TryAllocLayout(elemSize*uintptr(n), align)
	if err != nil {
		return nil, err
	}
	dst := unsafe.Slice((*T)(ptr), n)
	for i := range dst {
		dst[i] = fill(i)
	}
	return dst, nil
}

// AllocSlice allocates a slice of n elements of type T without
// initializing them; kept for API continuity with arena implementations
// that distinguish an uninitialized bulk allocation from AllocSliceFillWith.
// Returns nil if n <= 0. See AllocUninitialized for the pointer-safety
// caveat on types holding pointers or interfaces.
func AllocSlice[T any](a *Arena, n int) []T {
	s, err := TryAllocSlice[T](a, n)
	if err != nil {
		panic(err)
	}
	return s
}

// TryAllocSlice is the fallible form of AllocSlice.
func TryAllocSlice[T any](a *Arena, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	var zero T
	elemSize, align := unsafe.Sizeof(zero), unsafe.Alignof(zero)
	ptr, err := a.TryAllocLayout(elemSize*uintptr(n), align)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(ptr), n), nil
}

// AllocString copies s into the arena and returns a string view over the
// copy, leaving the original s untouched.
func AllocString(a *Arena, s string) string {
	r, err := TryAllocString(a, s)
	if err != nil {
		panic(err)
	}
	return r
}

// TryAllocString is the fallible form of AllocString.
func TryAllocString(a *Arena, s string) (string, error) {
	if len(s) == 0 {
		return "", nil
	}
	ptr, err := a.TryAllocLayout(uintptr(len(s)), 1)
	if err != nil {
		return "", err
	}
	dst := unsafe.Slice((*byte)(ptr), len(s))
	copy(dst, s)
	return unsafe.String((*byte)(ptr), len(s)), nil
}

// PtrAndKeepAlive returns t and calls runtime.KeepAlive on the arena. Use
// it when a *T escapes into code the compiler can't prove keeps the
// arena reachable (e.g. after converting through unsafe.Pointer), to
// prevent the arena's backing chunks from being collected out from under
// the pointer.
func PtrAndKeepAlive[T any](a *Arena, t *T) *T {
	runtime.KeepAlive(a)
	return t
}
