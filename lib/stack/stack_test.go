package stack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackPushPop(t *testing.T) {
	s := New[int64]()
	require.True(t, s.Empty())
	require.Equal(t, int64(0), s.Len())

	s.Push(1)
	s.Push(2)
	s.Push(3)
	require.False(t, s.Empty())
	require.Equal(t, int64(3), s.Len())

	for _, expected := range []int64{3, 2, 1} {
		top, err := s.Top()
		require.NoError(t, err)
		require.Equal(t, expected, top)
		v, err := s.Pop()
		require.NoError(t, err)
		require.Equal(t, expected, v)
	}
	require.True(t, s.Empty())
}

func TestStackPushMany(t *testing.T) {
	s := New[string]()
	s.PushMany("a", "b", "c")
	require.Equal(t, int64(3), s.Len())
	v, err := s.Pop()
	require.NoError(t, err)
	require.Equal(t, "c", v)
}

func TestStackEmptyErrors(t *testing.T) {
	s := New[int]()
	_, err := s.Pop()
	require.ErrorIs(t, err, ErrStackIsEmpty)
	_, err = s.Top()
	require.ErrorIs(t, err, ErrStackIsEmpty)

	s.Push(7)
	_, err = s.Pop()
	require.NoError(t, err)
	_, err = s.Pop()
	require.ErrorIs(t, err, ErrStackIsEmpty)
}

func TestStackSwap(t *testing.T) {
	a, b := New[int64](), New[int64]()
	a.PushMany(1, 2)
	b.Push(9)

	a.Swap(b)
	require.Equal(t, int64(1), a.Len())
	require.Equal(t, int64(2), b.Len())
	v, err := a.Pop()
	require.NoError(t, err)
	require.Equal(t, int64(9), v)
	v, err = b.Pop()
	require.NoError(t, err)
	require.Equal(t, int64(2), v)

	// Self swap is a no-op.
	b.Swap(b)
	require.Equal(t, int64(1), b.Len())

	// Nil target is a no-op.
	b.Swap(nil)
	require.Equal(t, int64(1), b.Len())
}
