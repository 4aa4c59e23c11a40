package tree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIteratorForwardAndBackward(t *testing.T) {
	tr := NewRBTree[int]()
	for _, k := range []int{4, 1, 3, 2} {
		_, err := tr.Insert(k)
		require.NoError(t, err)
	}

	keys := make([]int, 0, 4)
	for it := tr.Begin(); it != tr.End(); it = it.Next() {
		k, err := it.Key()
		require.NoError(t, err)
		keys = append(keys, k)
	}
	require.Equal(t, []int{1, 2, 3, 4}, keys)

	keys = keys[:0]
	for it := tr.RBegin(); it != tr.End(); it = it.Prev() {
		k, err := it.Key()
		require.NoError(t, err)
		keys = append(keys, k)
	}
	require.Equal(t, []int{4, 3, 2, 1}, keys)

	// Prev of End lands on the maximum.
	k, err := tr.End().Prev().Key()
	require.NoError(t, err)
	require.Equal(t, 4, k)

	// Prev of Begin lands on End, Next of End stays at End.
	require.Equal(t, tr.End(), tr.Begin().Prev())
	require.Equal(t, tr.End(), tr.End().Next())
}

func TestIteratorEndDereference(t *testing.T) {
	tr := NewRBTree[int]()
	_, err := tr.End().Key()
	require.True(t, errors.Is(err, ErrIteratorOutOfRange))
	require.False(t, tr.End().Valid())

	var zero Iterator[int]
	_, err = zero.Key()
	require.True(t, errors.Is(err, ErrIteratorOutOfRange))

	_, err = tr.Insert(1)
	require.NoError(t, err)
	k, err := tr.Begin().Key()
	require.NoError(t, err)
	require.Equal(t, 1, k)
}

func TestIteratorEmptyTree(t *testing.T) {
	tr := NewRBTree[int]()
	require.Equal(t, tr.End(), tr.Begin())
	require.Equal(t, tr.End(), tr.RBegin())
}

func TestIteratorStableAcrossOtherMutations(t *testing.T) {
	tr := NewRBTree[int]()
	for i := 0; i < 64; i++ {
		_, err := tr.Insert(i * 2)
		require.NoError(t, err)
	}

	it := tr.Find(40)
	require.True(t, it.Valid())

	for i := 0; i < 64; i++ {
		_, err := tr.Insert(i*2 + 1)
		require.NoError(t, err)
	}
	require.True(t, tr.EraseKey(20))
	require.True(t, tr.EraseKey(60))

	k, err := it.Key()
	require.NoError(t, err)
	require.Equal(t, 40, k)
	next, err := it.Next().Key()
	require.NoError(t, err)
	require.Equal(t, 41, next)
}

func TestEraseIterator(t *testing.T) {
	tr := NewRBTree[int]()
	for _, k := range []int{1, 2, 3} {
		_, err := tr.Insert(k)
		require.NoError(t, err)
	}

	it := tr.Find(2)
	require.NoError(t, tr.Erase(it))
	require.Equal(t, []int{1, 3}, treeKeys(t, tr))
	require.NoError(t, Validate(tr))

	// The erased node no longer belongs to the tree.
	require.True(t, errors.Is(tr.Erase(it), ErrInvalidIterator))
	require.Equal(t, int64(2), tr.Len())
}

func TestEraseIteratorTwoChildren(t *testing.T) {
	tr := NewRBTree[int]()
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
		_, err := tr.Insert(k)
		require.NoError(t, err)
	}

	it := tr.Find(4)
	require.False(t, it.node.left.isNilLeaf())
	require.False(t, it.node.right.isNilLeaf())
	succ := tr.Find(5)

	require.NoError(t, tr.Erase(it))
	require.Equal(t, []int{1, 2, 3, 5, 6, 7}, treeKeys(t, tr))
	require.NoError(t, Validate(tr))

	// The handle to the erased position is dead; a second erase must
	// not remove a live key.
	require.True(t, errors.Is(tr.Erase(it), ErrInvalidIterator))
	require.Equal(t, int64(6), tr.Len())

	// The successor's handle follows its node into the vacated slot.
	k, err := succ.Key()
	require.NoError(t, err)
	require.Equal(t, 5, k)
	require.NoError(t, tr.Erase(succ))
	require.Equal(t, []int{1, 2, 3, 6, 7}, treeKeys(t, tr))
	require.NoError(t, Validate(tr))
}

func TestEraseInvalidIterators(t *testing.T) {
	tr := NewRBTree[int]()
	other := NewRBTree[int]()
	_, err := tr.Insert(1)
	require.NoError(t, err)
	_, err = other.Insert(1)
	require.NoError(t, err)

	// End iterator.
	require.True(t, errors.Is(tr.Erase(tr.End()), ErrInvalidIterator))
	// Zero iterator.
	var zero Iterator[int]
	require.True(t, errors.Is(tr.Erase(zero), ErrInvalidIterator))
	// Iterator of a different tree.
	require.True(t, errors.Is(tr.Erase(other.Begin()), ErrInvalidIterator))

	require.Equal(t, int64(1), tr.Len())
	require.Equal(t, int64(1), other.Len())
}

func TestBounds(t *testing.T) {
	tr := NewRBTree[int]()
	for _, k := range []int{1, 2, 4, 8} {
		_, err := tr.Insert(k)
		require.NoError(t, err)
	}

	k, err := tr.LowerBound(3).Key()
	require.NoError(t, err)
	require.Equal(t, 4, k)

	k, err = tr.UpperBound(4).Key()
	require.NoError(t, err)
	require.Equal(t, 8, k)

	k, err = tr.LowerBound(4).Key()
	require.NoError(t, err)
	require.Equal(t, 4, k)

	require.Equal(t, tr.End(), tr.LowerBound(9))
	require.Equal(t, tr.End(), tr.UpperBound(8))

	k, err = tr.LowerBound(-100).Key()
	require.NoError(t, err)
	require.Equal(t, 1, k)
}

func TestBoundsOnDuplicateRuns(t *testing.T) {
	tr := NewRBTree[int]()
	for _, k := range []int{3, 1, 3, 5, 3} {
		_, err := tr.Insert(k)
		require.NoError(t, err)
	}

	lo, hi := tr.LowerBound(3), tr.UpperBound(3)
	run := 0
	for it := lo; it != hi; it = it.Next() {
		k, err := it.Key()
		require.NoError(t, err)
		require.Equal(t, 3, k)
		run++
	}
	require.Equal(t, 3, run)

	k, err := hi.Key()
	require.NoError(t, err)
	require.Equal(t, 5, k)
}

func TestFindReturnsEndWhenAbsent(t *testing.T) {
	tr := NewRBTree[int]()
	require.Equal(t, tr.End(), tr.Find(42))

	_, err := tr.Insert(42)
	require.NoError(t, err)
	require.NotEqual(t, tr.End(), tr.Find(42))
	require.Equal(t, tr.End(), tr.Find(41))
}
