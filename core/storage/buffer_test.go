// File: core/storage/buffer_test.go
// Author: momentics <momentics@gmail.com>
//
// White-box tests for the storage engine: growth policy, relocation,
// lifecycle zeroing.

package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZeroBufferIsEmptyAndUnallocated(t *testing.T) {
	var b Buffer[int]
	require.Equal(t, 0, b.Len())
	require.Equal(t, 0, b.Cap())
	require.Nil(t, b.data)
	require.Len(t, b.Live(), 0)
}

func TestAppendDoublesCapacityFromOne(t *testing.T) {
	var b Buffer[int]
	wantCaps := []int{1, 2, 4, 4, 8, 8, 8, 8, 16}
	for i := 0; i < len(wantCaps); i++ {
		b.Append(i)
		require.Equal(t, wantCaps[i], b.Cap(), "after append %d", i+1)
		require.Equal(t, i+1, b.Len())
	}
	for i, e := range b.Live() {
		require.Equal(t, i, e)
	}
}

func TestReserveAllocatesExactlyAndNeverShrinks(t *testing.T) {
	var b Buffer[int]
	b.Reserve(10)
	require.Equal(t, 10, b.Cap())
	require.Equal(t, 0, b.Len())

	b.Reserve(5) // no-op: n <= capacity
	require.Equal(t, 10, b.Cap())

	for i := 0; i < 10; i++ {
		b.Append(i)
	}
	// Reserved region absorbs all appends without relocation.
	require.Equal(t, 10, b.Cap())
}

func TestShrinkToFit(t *testing.T) {
	var b Buffer[int]
	for i := 0; i < 5; i++ {
		b.Append(i)
	}
	require.Equal(t, 8, b.Cap())

	b.ShrinkToFit()
	require.Equal(t, 5, b.Cap())
	require.Equal(t, []int{0, 1, 2, 3, 4}, b.Live())

	b.Truncate(0)
	b.ShrinkToFit()
	require.Equal(t, 0, b.Cap())
	require.Nil(t, b.data)
}

func TestTruncateZeroesVacatedSlots(t *testing.T) {
	var b Buffer[*int]
	x, y, z := 1, 2, 3
	b.Append(&x)
	b.Append(&y)
	b.Append(&z)

	b.Truncate(1)
	require.Equal(t, 1, b.Len())
	// Vacated slots hold no payload references.
	for _, slot := range b.data[1:] {
		require.Nil(t, slot)
	}
}

func TestDropLastZeroesSlot(t *testing.T) {
	var b Buffer[*int]
	x := 7
	b.Append(&x)
	b.DropLast()
	require.Equal(t, 0, b.Len())
	require.Nil(t, b.data[0])
}

func TestRelocateMovesAndZeroesOldRegion(t *testing.T) {
	var b Buffer[*int]
	vals := make([]int, 4)
	b.Reserve(4)
	for i := range vals {
		vals[i] = i
		b.Append(&vals[i])
	}
	old := b.data

	b.Reserve(16)
	require.Equal(t, 16, b.Cap())
	for i, p := range b.Live() {
		require.Equal(t, i, *p)
	}
	// Move transfer disposes the vacated source slots.
	for _, slot := range old {
		require.Nil(t, slot)
	}
}

func TestSwapExchangesRegionsWithoutCopy(t *testing.T) {
	var a, b Buffer[int]
	a.Append(1)
	a.Append(2)
	b.Append(9)
	aData, bData := &a.data[0], &b.data[0]

	a.Swap(&b)
	require.Equal(t, []int{9}, a.Live())
	require.Equal(t, []int{1, 2}, b.Live())
	// Same backing regions, just exchanged.
	require.Same(t, aData, &b.data[0])
	require.Same(t, bData, &a.data[0])
}

func TestCloneFromPreservesCapacity(t *testing.T) {
	var src Buffer[int]
	src.Reserve(8)
	src.Append(1)
	src.Append(2)

	var dst Buffer[int]
	dst.CloneFrom(&src)
	require.Equal(t, src.Cap(), dst.Cap())
	require.Equal(t, []int{1, 2}, dst.Live())

	dst.Live()[0] = 100
	require.Equal(t, 1, src.Live()[0], "clone must not alias the source")

	// Self-clone is a no-op.
	src.CloneFrom(&src)
	require.Equal(t, []int{1, 2}, src.Live())
}

func TestTakeFromTransfersOwnership(t *testing.T) {
	var src, dst Buffer[int]
	src.Append(1)
	src.Append(2)
	dst.Append(9)

	dst.TakeFrom(&src)
	require.Equal(t, []int{1, 2}, dst.Live())
	require.Equal(t, 0, src.Len())
	require.Equal(t, 0, src.Cap())

	// Self-transfer is a no-op.
	dst.TakeFrom(&dst)
	require.Equal(t, []int{1, 2}, dst.Live())
}

func TestEmplaceConstructsInPlace(t *testing.T) {
	var b Buffer[[2]int]
	slot := b.Emplace(func(p *[2]int) {
		p[0], p[1] = 3, 4
	})
	require.Equal(t, [2]int{3, 4}, *slot)
	require.Equal(t, 1, b.Len())

	// Nil build leaves the zero value.
	zero := b.Emplace(nil)
	require.Equal(t, [2]int{}, *zero)
}

func TestReleaseReturnsToZeroState(t *testing.T) {
	var b Buffer[int]
	for i := 0; i < 100; i++ {
		b.Append(i)
	}
	b.Release()
	require.Equal(t, 0, b.Len())
	require.Equal(t, 0, b.Cap())

	// Still usable after release.
	b.Append(42)
	require.Equal(t, []int{42}, b.Live())
}
