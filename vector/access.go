// File: vector/access.go
// Author: momentics <momentics@gmail.com>
//
// Element access: the checked path reports violations through api.Fail
// (or as errors via the Try* variants); the unchecked path performs no
// validation of its own.

package vector

import "github.com/momentics/nexvec/api"

// Get returns the element at index i without bounds validation.
// Precondition: 0 <= i < Len(). Violating it is a contract breach: no
// diagnostic is produced, only the runtime's own slice bounds panic
// stands between the caller and out-of-range memory.
func (v *Vector[T]) Get(i int) T {
	return v.buf.Live()[i]
}

// Ref returns the address of the element at index i without bounds
// validation. Same precondition and hazard as Get. The pointer is valid
// until the next invalidating operation.
func (v *Vector[T]) Ref(i int) *T {
	return &v.buf.Live()[i]
}

// At returns the element at index i, producing a fatal diagnostic when i
// is out of range.
func (v *Vector[T]) At(i int) T {
	if i < 0 || i >= v.buf.Len() {
		api.Fail(outOfRange(i, v.buf.Len()))
	}
	return v.buf.Live()[i]
}

// SetAt stores value at index i, producing a fatal diagnostic when i is
// out of range.
func (v *Vector[T]) SetAt(i int, value T) {
	if i < 0 || i >= v.buf.Len() {
		api.Fail(outOfRange(i, v.buf.Len()))
	}
	v.buf.Live()[i] = value
}

// TryAt returns the element at index i, or ErrOutOfRange.
func (v *Vector[T]) TryAt(i int) (T, error) {
	if i < 0 || i >= v.buf.Len() {
		var zero T
		return zero, outOfRange(i, v.buf.Len())
	}
	return v.buf.Live()[i], nil
}

// Front returns the first element. Fatal diagnostic on an empty vector.
func (v *Vector[T]) Front() T {
	if v.buf.Len() == 0 {
		api.Fail(api.NewError(api.ErrCodeEmptyContainer, "front on empty vector"))
	}
	return v.buf.Live()[0]
}

// Back returns the last element. Fatal diagnostic on an empty vector.
func (v *Vector[T]) Back() T {
	if v.buf.Len() == 0 {
		api.Fail(api.NewError(api.ErrCodeEmptyContainer, "back on empty vector"))
	}
	return v.buf.Live()[v.buf.Len()-1]
}

// TryFront returns the first element, or ErrEmptyContainer.
func (v *Vector[T]) TryFront() (T, error) {
	if v.buf.Len() == 0 {
		var zero T
		return zero, api.NewError(api.ErrCodeEmptyContainer, "front on empty vector")
	}
	return v.buf.Live()[0], nil
}

// TryBack returns the last element, or ErrEmptyContainer.
func (v *Vector[T]) TryBack() (T, error) {
	if v.buf.Len() == 0 {
		var zero T
		return zero, api.NewError(api.ErrCodeEmptyContainer, "back on empty vector")
	}
	return v.buf.Live()[v.buf.Len()-1], nil
}

func outOfRange(i, n int) *api.Error {
	return api.NewError(api.ErrCodeOutOfRange, "index out of range").
		WithContext("index", i).
		WithContext("len", n)
}
