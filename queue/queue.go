// File: queue/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// FIFO adapter over the vector container. Elements are appended at the
// back in amortized O(1); the front is consumed through a cursor, and the
// storage is compacted once consumed slots dominate it.

package queue

import (
	"github.com/momentics/nexvec/api"
	"github.com/momentics/nexvec/vector"
)

// compactThreshold is the minimum number of consumed slots before a
// compaction is considered.
const compactThreshold = 32

// FIFO is a first-in-first-out queue backed by a Vector.
type FIFO[T any] struct {
	items *vector.Vector[T]
	head  int
}

// New returns an empty FIFO.
func New[T any]() *FIFO[T] {
	return &FIFO[T]{items: vector.New[T]()}
}

// Len returns the number of queued elements.
func (q *FIFO[T]) Len() int { return q.items.Len() - q.head }

// Push appends value at the back of the queue.
func (q *FIFO[T]) Push(value T) {
	q.items.PushBack(value)
}

// Peek returns the front element without consuming it, or
// ErrEmptyContainer.
func (q *FIFO[T]) Peek() (T, error) {
	if q.Len() == 0 {
		var zero T
		return zero, api.NewError(api.ErrCodeEmptyContainer, "peek on empty queue")
	}
	return q.items.Get(q.head), nil
}

// Pop consumes and returns the front element, or ErrEmptyContainer.
func (q *FIFO[T]) Pop() (T, error) {
	if q.Len() == 0 {
		var zero T
		return zero, api.NewError(api.ErrCodeEmptyContainer, "pop on empty queue")
	}
	value := q.items.Get(q.head)
	var zero T
	*q.items.Ref(q.head) = zero // consumed slot keeps no payload reference
	q.head++
	q.compact()
	return value, nil
}

// compact reclaims consumed slots once they make up at least half the
// live storage.
func (q *FIFO[T]) compact() {
	if q.head < compactThreshold || q.head*2 < q.items.Len() {
		return
	}
	rest := vector.FromSlice(q.items.Slice()[q.head:])
	q.items.Swap(rest)
	q.head = 0
}
