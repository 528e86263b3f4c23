// File: vector/vector.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Construction, assignment, and the mutation surface of Vector.

package vector

import (
	"github.com/momentics/nexvec/api"
	"github.com/momentics/nexvec/core/storage"
)

// Vector is an ordered, indexable, mutable sequence of T over one
// contiguous heap region. The zero value is an empty vector with no
// allocation, ready to use.
type Vector[T any] struct {
	buf storage.Buffer[T]
}

var _ api.Sequence[int] = (*Vector[int])(nil)

// New returns an empty vector with no allocation.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewFilled returns a vector holding count copies of fill. A negative
// count is a fatal contract violation.
func NewFilled[T any](count int, fill T) *Vector[T] {
	if count < 0 {
		api.Fail(api.NewError(api.ErrCodeInvalidArgument, "negative element count").
			WithContext("count", count))
	}
	v := &Vector[T]{}
	v.buf.Reserve(count)
	for i := 0; i < count; i++ {
		v.buf.Append(fill)
	}
	return v
}

// Of returns a vector holding elems in order.
func Of[T any](elems ...T) *Vector[T] {
	return FromSlice(elems)
}

// FromSlice copies s into a new vector. The slice is copied, never
// aliased: later mutation of s does not affect the vector.
func FromSlice[T any](s []T) *Vector[T] {
	v := &Vector[T]{}
	v.buf.Reserve(len(s))
	for _, e := range s {
		v.buf.Append(e)
	}
	return v
}

// Clone returns a deep copy with independent storage. The source's
// capacity is carried over, not just its size.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{}
	c.buf.CloneFrom(&v.buf)
	return c
}

// Take moves v's storage into a freshly returned vector in O(1); v is
// left empty with zero capacity.
func (v *Vector[T]) Take() *Vector[T] {
	m := &Vector[T]{}
	m.buf.TakeFrom(&v.buf)
	return m
}

// CopyFrom replaces v's contents with a deep copy of other. Implemented
// copy-and-swap, so self-assignment is safe and prior storage is released
// exactly once.
func (v *Vector[T]) CopyFrom(other *Vector[T]) {
	if v == other {
		return
	}
	var tmp storage.Buffer[T]
	tmp.CloneFrom(&other.buf)
	v.buf.Swap(&tmp)
	tmp.Release()
}

// MoveFrom transfers other's storage into v, destroying v's prior
// contents; other is left empty with zero capacity. Self-assignment is a
// no-op.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	v.buf.TakeFrom(&other.buf)
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.buf.Len() }

// Cap returns the number of reserved storage slots, live or not.
func (v *Vector[T]) Cap() int { return v.buf.Cap() }

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool { return v.buf.Len() == 0 }

// PushBack appends value, growing capacity geometrically when the region
// is full.
func (v *Vector[T]) PushBack(value T) {
	v.buf.Append(value)
}

// EmplaceBack constructs a new last element directly in reserved storage:
// build receives the address of the fresh slot (zero value) and fills it
// in place, with no intermediate temporary. A nil build leaves the zero
// value. Returns the slot address, valid until the next invalidating
// operation.
func (v *Vector[T]) EmplaceBack(build func(*T)) *T {
	return v.buf.Emplace(build)
}

// PopBack destroys the last element. Fatal diagnostic on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.buf.Len() == 0 {
		api.Fail(api.NewError(api.ErrCodeEmptyContainer, "pop back on empty vector"))
	}
	v.buf.DropLast()
}

// TryPopBack destroys the last element, reporting ErrEmptyContainer
// instead of terminating when the vector is empty.
func (v *Vector[T]) TryPopBack() error {
	if v.buf.Len() == 0 {
		return api.NewError(api.ErrCodeEmptyContainer, "pop back on empty vector")
	}
	v.buf.DropLast()
	return nil
}

// Clear destroys all elements in reverse index order. Capacity is kept.
func (v *Vector[T]) Clear() {
	v.buf.Truncate(0)
}

// Resize changes the element count to newSize: surplus elements are
// destroyed from the end, missing ones are appended as copies of fill
// after a single up-front reservation. A negative newSize is a fatal
// contract violation.
func (v *Vector[T]) Resize(newSize int, fill T) {
	switch {
	case newSize < 0:
		api.Fail(api.NewError(api.ErrCodeInvalidArgument, "negative resize").
			WithContext("newSize", newSize))
	case newSize < v.buf.Len():
		v.buf.Truncate(newSize)
	case newSize > v.buf.Len():
		v.buf.Reserve(newSize)
		for v.buf.Len() < newSize {
			v.buf.Append(fill)
		}
	}
}

// Reserve guarantees capacity for at least n elements. Never shrinks.
func (v *Vector[T]) Reserve(n int) {
	if n < 0 {
		api.Fail(api.NewError(api.ErrCodeInvalidArgument, "negative reserve").
			WithContext("n", n))
	}
	v.buf.Reserve(n)
}

// ShrinkToFit reallocates down to exactly Len slots, releasing slack. An
// empty vector returns to the unallocated state.
func (v *Vector[T]) ShrinkToFit() {
	v.buf.ShrinkToFit()
}

// Swap exchanges the contents of v and other in O(1); no element is
// copied or moved.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
}
