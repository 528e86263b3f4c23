// File: queue/untyped.go
// Author: momentics <momentics@gmail.com>
//
// Untyped adapts github.com/eapache/queue behind the same FIFO surface,
// for interop with code holding `any` values and as the baseline the
// benchmarks compare the vector-backed queue against.

package queue

import (
	eq "github.com/eapache/queue"

	"github.com/momentics/nexvec/api"
)

// Untyped is a FIFO of `any` values over eapache's ring-backed queue.
type Untyped struct {
	q *eq.Queue
}

// NewUntyped returns an empty untyped FIFO.
func NewUntyped() *Untyped {
	return &Untyped{q: eq.New()}
}

// Len returns the number of queued elements.
func (u *Untyped) Len() int { return u.q.Length() }

// Push appends value at the back of the queue.
func (u *Untyped) Push(value any) {
	u.q.Add(value)
}

// Peek returns the front element without consuming it, or
// ErrEmptyContainer.
func (u *Untyped) Peek() (any, error) {
	if u.q.Length() == 0 {
		return nil, api.NewError(api.ErrCodeEmptyContainer, "peek on empty queue")
	}
	return u.q.Peek(), nil
}

// Pop consumes and returns the front element, or ErrEmptyContainer.
func (u *Untyped) Pop() (any, error) {
	if u.q.Length() == 0 {
		return nil, api.NewError(api.ErrCodeEmptyContainer, "pop on empty queue")
	}
	return u.q.Remove(), nil
}
