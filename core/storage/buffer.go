// File: core/storage/buffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Contiguous storage region with a live-prefix size and geometric growth.

package storage

// Buffer owns a single contiguous region of T slots. Slots [0, size) hold
// live values; slots [size, cap) are reserved and held at the zero value.
// A zero Buffer is valid: empty, unallocated.
//
// Invariants: 0 <= size <= cap(region); cap == 0 implies no allocation.
// Regions are never shared between buffers.
type Buffer[T any] struct {
	data []T // len(data) == capacity; nil when capacity is zero
	size int
}

// Len returns the number of live elements.
func (b *Buffer[T]) Len() int { return b.size }

// Cap returns the number of reserved slots.
func (b *Buffer[T]) Cap() int { return len(b.data) }

// Live returns the live prefix as a slice view. The view is invalidated by
// any operation that reallocates or changes the size.
func (b *Buffer[T]) Live() []T { return b.data[:b.size] }

// Reserve guarantees capacity for at least n slots, reallocating to exactly
// n when n exceeds the current capacity. Never shrinks.
func (b *Buffer[T]) Reserve(n int) {
	if n > len(b.data) {
		b.relocate(n)
	}
}

// ShrinkToFit drops reserved slack, reallocating to exactly Len slots. An
// empty buffer returns to the unallocated state.
func (b *Buffer[T]) ShrinkToFit() {
	if len(b.data) == b.size {
		return
	}
	if b.size == 0 {
		b.data = nil
		return
	}
	b.relocate(b.size)
}

// Swap exchanges the regions and sizes of b and other in O(1). No element
// is copied or moved.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.data, other.data = other.data, b.data
	b.size, other.size = other.size, b.size
}

// Release destroys all live elements and drops the region, returning the
// buffer to the zero state. The buffer remains usable afterwards.
func (b *Buffer[T]) Release() {
	b.Truncate(0)
	b.data = nil
}

// ensureAppend makes room for one more element. Capacity doubles from a
// floor of one slot, so a sequence of N appends performs O(log N)
// relocations and amortized O(1) work per append.
func (b *Buffer[T]) ensureAppend() {
	if b.size < len(b.data) {
		return
	}
	next := 1
	if len(b.data) > 0 {
		next = len(b.data) * 2
	}
	b.relocate(next)
}

// relocate moves the live prefix into a freshly allocated region of exactly
// n slots and retires the old one. Precondition: n >= size.
func (b *Buffer[T]) relocate(n int) {
	next := make([]T, n)
	moveInto(next, b.data[:b.size])
	b.data = next
}
