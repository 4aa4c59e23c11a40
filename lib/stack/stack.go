package stack

import (
	"errors"

	"github.com/benz9527/xcontainer/lib/infra"
	"github.com/benz9527/xcontainer/lib/list"
)

var (
	ErrStackIsEmpty = errors.New("[stack] there is no element")
)

// Stack is a LIFO adapter over the doubly linked list; the newest
// element sits at the back of the underlying list. Not thread safe.
type Stack[T comparable] interface {
	Len() int64
	Empty() bool
	Push(v T)
	PushMany(values ...T)
	// Pop removes and returns the top element, or ErrStackIsEmpty.
	Pop() (T, error)
	// Top peeks the top element without removing it.
	Top() (T, error)
	// Swap exchanges the contents of two stacks in O(1).
	Swap(other Stack[T])
}

type linkedStack[T comparable] struct {
	elements list.LinkedList[T]
}

func New[T comparable]() Stack[T] {
	return &linkedStack[T]{
		elements: list.NewLinkedList[T](),
	}
}

func (s *linkedStack[T]) Len() int64 {
	return s.elements.Len()
}

func (s *linkedStack[T]) Empty() bool {
	return s.elements.Empty()
}

func (s *linkedStack[T]) Push(v T) {
	s.elements.PushBack(v)
}

func (s *linkedStack[T]) PushMany(values ...T) {
	for _, v := range values {
		s.elements.PushBack(v)
	}
}

func (s *linkedStack[T]) Pop() (T, error) {
	v, err := s.elements.PopBack()
	if err != nil {
		var zero T
		return zero, infra.WrapErrorStackWithMessage(ErrStackIsEmpty, "stack pop")
	}
	return v, nil
}

func (s *linkedStack[T]) Top() (T, error) {
	e := s.elements.Back()
	if e == nil {
		var zero T
		return zero, infra.WrapErrorStackWithMessage(ErrStackIsEmpty, "stack top")
	}
	return e.Value, nil
}

func (s *linkedStack[T]) Swap(other Stack[T]) {
	ls, ok := other.(*linkedStack[T])
	if !ok || ls == nil || ls == s {
		return
	}
	s.elements, ls.elements = ls.elements, s.elements
}
