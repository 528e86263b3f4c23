// File: core/storage/lifecycle.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Element lifecycle: construction, destruction, copy- and move-transfer.
// Go has no destructors; destroying an element means zeroing its slot so
// vacated storage retains no payload references the GC would otherwise
// keep alive. Element copy and zeroing cannot fail, so no rollback
// protocol exists here.

package storage

// moveInto transfers src's values into dst, then zeroes src: the vacated
// slots keep no live values, and a stale view into the old region reads
// zeros instead of aliasing transferred elements.
func moveInto[T any](dst, src []T) {
	copy(dst, src)
	clear(src)
}

// Append constructs value in the next reserved slot, growing first when
// the region is full.
func (b *Buffer[T]) Append(value T) {
	b.ensureAppend()
	b.data[b.size] = value
	b.size++
}

// Emplace grows if needed, extends the live prefix by one slot and hands
// its address to build so the element is constructed directly in reserved
// storage. The slot holds the zero value when build sees it; a nil build
// leaves it that way. Returns the slot address.
func (b *Buffer[T]) Emplace(build func(*T)) *T {
	b.ensureAppend()
	slot := &b.data[b.size]
	b.size++
	if build != nil {
		build(slot)
	}
	return slot
}

// DropLast destroys the last live element. Precondition: Len > 0.
func (b *Buffer[T]) DropLast() {
	b.size--
	var zero T
	b.data[b.size] = zero
}

// Truncate destroys live elements [n, Len) in reverse index order,
// leaving capacity unchanged. Precondition: 0 <= n <= Len.
func (b *Buffer[T]) Truncate(n int) {
	clear(b.data[n:b.size])
	b.size = n
}

// CloneFrom makes b an independent deep copy of src. The source's
// capacity, not just its size, is carried over.
func (b *Buffer[T]) CloneFrom(src *Buffer[T]) {
	if b == src {
		return
	}
	b.Release()
	if len(src.data) > 0 {
		b.data = make([]T, len(src.data))
		copy(b.data, src.data[:src.size])
	}
	b.size = src.size
}

// TakeFrom transfers src's region into b in O(1); src is left empty and
// unallocated. b's prior contents are destroyed first. Self-transfer is a
// no-op.
func (b *Buffer[T]) TakeFrom(src *Buffer[T]) {
	if b == src {
		return
	}
	b.Release()
	b.data, b.size = src.data, src.size
	src.data, src.size = nil, 0
}
