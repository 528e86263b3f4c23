// File: api/sequence.go
// Author: momentics <momentics@gmail.com>
//
// Minimal read-side view of an ordered, indexable container.

package api

import "iter"

// Sequence describes the query surface shared by the library's containers.
type Sequence[T any] interface {
	// Len returns the number of live elements.
	Len() int

	// Cap returns the number of reserved storage slots, live or not.
	Cap() int

	// Empty reports whether Len is zero.
	Empty() bool

	// Values iterates the live elements in index order.
	Values() iter.Seq[T]
}
