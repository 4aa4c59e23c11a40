package tree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func setKeys(t *testing.T, s *OrderedSet[int]) []int {
	t.Helper()
	keys := make([]int, 0, s.Len())
	s.Foreach(func(idx int64, key int) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func TestOrderedSetUniqueness(t *testing.T) {
	s := NewOrderedSet[int]()

	it1, inserted, err := s.Insert(3)
	require.NoError(t, err)
	require.True(t, inserted)

	it2, inserted, err := s.Insert(3)
	require.NoError(t, err)
	require.False(t, inserted)
	require.Equal(t, it1, it2)
	require.Equal(t, int64(1), s.Len())
}

func TestOrderedSetContainsAndFind(t *testing.T) {
	s := NewOrderedSet[int]()
	for _, k := range []int{5, 1, 9} {
		_, _, err := s.Insert(k)
		require.NoError(t, err)
	}

	require.True(t, s.Contains(5))
	require.False(t, s.Contains(4))
	require.Equal(t, s.End(), s.Find(4))

	k, err := s.Find(9).Key()
	require.NoError(t, err)
	require.Equal(t, 9, k)
}

func TestOrderedSetEraseByIteratorAndKey(t *testing.T) {
	s := NewOrderedSet[int]()
	for _, k := range []int{1, 2, 3, 4} {
		_, _, err := s.Insert(k)
		require.NoError(t, err)
	}

	require.NoError(t, s.Erase(s.Find(2)))
	require.True(t, s.EraseKey(4))
	require.False(t, s.EraseKey(4))
	require.True(t, errors.Is(s.Erase(s.End()), ErrInvalidIterator))
	require.Equal(t, []int{1, 3}, setKeys(t, s))
}

func TestOrderedSetMerge(t *testing.T) {
	a := NewOrderedSet[int]()
	b := NewOrderedSet[int]()
	for _, k := range []int{1, 2} {
		_, _, err := a.Insert(k)
		require.NoError(t, err)
	}
	for _, k := range []int{2, 3} {
		_, _, err := b.Insert(k)
		require.NoError(t, err)
	}

	require.NoError(t, a.Merge(b))
	require.Equal(t, []int{1, 2, 3}, setKeys(t, a))
	// The colliding key stays in the source set.
	require.Equal(t, []int{2}, setKeys(t, b))

	require.NoError(t, a.Merge(nil))
	require.Equal(t, int64(3), a.Len())
}

func TestOrderedSetInsertMany(t *testing.T) {
	s := NewOrderedSet[int]()
	results, err := s.InsertMany(2, 1, 2, 3)
	require.NoError(t, err)
	require.Len(t, results, 4)
	require.True(t, results[0].Inserted)
	require.True(t, results[1].Inserted)
	require.False(t, results[2].Inserted)
	require.True(t, results[3].Inserted)
	require.Equal(t, []int{1, 2, 3}, setKeys(t, s))
}

func TestOrderedSetBoundsAndIteration(t *testing.T) {
	s := NewOrderedSet[int]()
	for _, k := range []int{1, 2, 4, 8} {
		_, _, err := s.Insert(k)
		require.NoError(t, err)
	}

	k, err := s.LowerBound(3).Key()
	require.NoError(t, err)
	require.Equal(t, 4, k)
	k, err = s.UpperBound(4).Key()
	require.NoError(t, err)
	require.Equal(t, 8, k)
	require.Equal(t, s.End(), s.LowerBound(9))

	walked := int64(0)
	for it := s.Begin(); it != s.End(); it = it.Next() {
		walked++
	}
	require.Equal(t, s.Len(), walked)
}

func TestOrderedSetSwapAndClear(t *testing.T) {
	a := NewOrderedSet[int]()
	b := NewOrderedSet[int]()
	_, _, err := a.Insert(1)
	require.NoError(t, err)
	_, _, err = b.Insert(2)
	require.NoError(t, err)

	a.Swap(b)
	require.Equal(t, []int{2}, setKeys(t, a))
	require.Equal(t, []int{1}, setKeys(t, b))

	a.Clear()
	a.Clear()
	require.True(t, a.Empty())
	require.Equal(t, int64(0), a.Len())
}

func TestOrderedSetMaxSize(t *testing.T) {
	s := NewOrderedSet[int](WithTreeMaxSize[int](1))
	_, _, err := s.Insert(1)
	require.NoError(t, err)
	_, _, err = s.Insert(2)
	require.True(t, errors.Is(err, ErrTreeIsFull))
	require.Equal(t, int64(1), s.Len())
	require.Equal(t, int64(1), s.MaxSize())
}
