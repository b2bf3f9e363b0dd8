// Package collections holds arena-backed data structures built purely on
// top of the core allocation primitives, in the spirit of bumpalo's
// collections module.
package collections

import (
	arena "github.com/pavanmanishd/membump"
)

// Vec is a dynamic array whose backing storage lives in an arena. It grows
// by doubling, like a regular Go slice, except the growth itself goes
// through the arena's Grow path instead of the runtime allocator.
type Vec[T any] struct {
	a    *arena.Arena
	data []T
}

// NewVec creates an empty Vec backed by a.
func NewVec[T any](a *arena.Arena) *Vec[T] {
	return &Vec[T]{a: a}
}

// NewVecWithCapacity creates an empty Vec backed by a, pre-sized to hold
// capacity elements without reallocating.
func NewVecWithCapacity[T any](a *arena.Arena, capacity int) *Vec[T] {
	v := &Vec[T]{a: a}
	if capacity > 0 {
		var zero T
		v.data = arena.AllocSliceFillWith(a, capacity, func(int) T { return zero })[:0]
	}
	return v
}

// Len returns the number of elements in v.
func (v *Vec[T]) Len() int { return len(v.data) }

// Cap returns the number of elements v's current backing storage can hold
// without growing.
func (v *Vec[T]) Cap() int { return cap(v.data) }

// Get returns the element at index i.
func (v *Vec[T]) Get(i int) T { return v.data[i] }

// Set overwrites the element at index i.
func (v *Vec[T]) Set(i int, val T) { v.data[i] = val }

// Push appends val to v, growing the backing storage through the arena if
// it is already at capacity.
func (v *Vec[T]) Push(val T) {
	if len(v.data) == cap(v.data) {
		v.grow(growCap(cap(v.data)))
	}
	v.data = append(v.data, val)
}

// Pop removes and returns the last element of v. It panics if v is empty.
func (v *Vec[T]) Pop() T {
	last := len(v.data) - 1
	val := v.data[last]
	v.data = v.data[:last]
	return val
}

// Slice returns v's contents as a plain Go slice, still backed by arena
// memory. The slice is only valid for as long as v's arena is.
func (v *Vec[T]) Slice() []T { return v.data }

func (v *Vec[T]) grow(newCap int) {
	grown, err := arena.GrowSlice(v.a, v.data[:cap(v.data)], newCap)
	if err != nil {
		panic(err)
	}
	v.data = grown[:len(v.data)]
}

func growCap(old int) int {
	if old == 0 {
		return 4
	}
	return old * 2
}
