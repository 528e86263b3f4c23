// File: vector/iterate.go
// Author: momentics <momentics@gmail.com>
//
// Range-over-func iteration and the mutable slice view.

package vector

import "iter"

// All iterates index/element pairs in index order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, e := range v.buf.Live() {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Values iterates the elements in index order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range v.buf.Live() {
			if !yield(e) {
				return
			}
		}
	}
}

// Backward iterates index/element pairs from the last element to the
// first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		live := v.buf.Live()
		for i := len(live) - 1; i >= 0; i-- {
			if !yield(i, live[i]) {
				return
			}
		}
	}
}

// Slice returns the live elements as a mutable view over the vector's own
// storage. Writes through the view are writes into the vector. Subject to
// the package-level invalidation contract.
func (v *Vector[T]) Slice() []T {
	return v.buf.Live()
}
