package queue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueuePushPop(t *testing.T) {
	q := New[int64]()
	require.True(t, q.Empty())
	require.Equal(t, int64(0), q.Len())

	q.Push(1)
	q.Push(2)
	q.Push(3)
	require.Equal(t, int64(3), q.Len())

	front, err := q.Front()
	require.NoError(t, err)
	require.Equal(t, int64(1), front)
	back, err := q.Back()
	require.NoError(t, err)
	require.Equal(t, int64(3), back)

	for _, expected := range []int64{1, 2, 3} {
		v, err := q.Pop()
		require.NoError(t, err)
		require.Equal(t, expected, v)
	}
	require.True(t, q.Empty())
}

func TestQueueEmptyErrors(t *testing.T) {
	q := New[string]()
	_, err := q.Pop()
	require.ErrorIs(t, err, ErrQueueIsEmpty)
	_, err = q.Front()
	require.ErrorIs(t, err, ErrQueueIsEmpty)
	_, err = q.Back()
	require.ErrorIs(t, err, ErrQueueIsEmpty)
}

func TestQueueOrderAfterInterleaving(t *testing.T) {
	q := New[int]()
	q.Push(1)
	q.Push(2)
	v, err := q.Pop()
	require.NoError(t, err)
	require.Equal(t, 1, v)
	q.Push(3)
	q.Push(4)
	for _, expected := range []int{2, 3, 4} {
		v, err = q.Pop()
		require.NoError(t, err)
		require.Equal(t, expected, v)
	}
}

func TestQueueSwap(t *testing.T) {
	a, b := New[int64](), New[int64]()
	a.Push(1)
	a.Push(2)
	b.Push(9)

	a.Swap(b)
	require.Equal(t, int64(1), a.Len())
	require.Equal(t, int64(2), b.Len())
	v, err := a.Pop()
	require.NoError(t, err)
	require.Equal(t, int64(9), v)
	v, err = b.Pop()
	require.NoError(t, err)
	require.Equal(t, int64(1), v)

	a.Swap(a)
	require.True(t, a.Empty())
	a.Swap(nil)
	require.True(t, a.Empty())
}
