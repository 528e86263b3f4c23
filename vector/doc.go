// Package vector
// Author: momentics <momentics@gmail.com>
//
// Generic, growable, contiguous-storage container with amortized O(1)
// append, deep-copy and ownership-transfer semantics, checked and
// unchecked access paths, lexicographic comparison, and whitespace-token
// text I/O.
//
// The container is single-owner and single-threaded: no internal
// synchronization exists, and callers needing concurrent access must
// serialize it externally.
//
// Invalidation contract. Views obtained from Slice, Ref, All, Values, or
// Backward are invalidated by: any append that triggers growth, any
// Reserve or ShrinkToFit that reallocates, Clear, a shrinking Resize, and
// PopBack (the reference to the removed element only). Swap and the move
// operations (Take, MoveFrom) invalidate nothing semantically, but
// existing views now belong to the other instance.
package vector
