// File: vector/compare.go
// Author: momentics <momentics@gmail.com>
//
// Pointwise equality and lexicographic ordering. Ordering uses the
// standard tie-break: on common-prefix equality the shorter vector is the
// lesser one.

package vector

import "golang.org/x/exp/constraints"

// Equal reports whether a and b have equal length and pointwise-equal
// elements in index order.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	bl := b.buf.Live()
	for i, e := range a.buf.Live() {
		if e != bl[i] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied element equality, for element
// types outside comparable.
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	bl := b.buf.Live()
	for i, e := range a.buf.Live() {
		if !eq(e, bl[i]) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically: -1 when a sorts before b, 0
// when equal, +1 when after.
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	return CompareFunc(a, b, func(x, y T) int {
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	})
}

// CompareFunc is Compare with a caller-supplied element ordering.
func CompareFunc[T any](a, b *Vector[T], cmp func(x, y T) int) int {
	al, bl := a.buf.Live(), b.buf.Live()
	n := len(al)
	if len(bl) < n {
		n = len(bl)
	}
	for i := 0; i < n; i++ {
		if c := cmp(al[i], bl[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(al) < len(bl):
		return -1
	case len(al) > len(bl):
		return 1
	default:
		return 0
	}
}

// Less reports a < b under lexicographic ordering.
func Less[T constraints.Ordered](a, b *Vector[T]) bool { return Compare(a, b) < 0 }

// LessEqual reports a <= b under lexicographic ordering.
func LessEqual[T constraints.Ordered](a, b *Vector[T]) bool { return Compare(a, b) <= 0 }

// Greater reports a > b under lexicographic ordering.
func Greater[T constraints.Ordered](a, b *Vector[T]) bool { return Compare(a, b) > 0 }

// GreaterEqual reports a >= b under lexicographic ordering.
func GreaterEqual[T constraints.Ordered](a, b *Vector[T]) bool { return Compare(a, b) >= 0 }
