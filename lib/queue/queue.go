package queue

import (
	"errors"

	"github.com/benz9527/xcontainer/lib/infra"
	"github.com/benz9527/xcontainer/lib/list"
)

var (
	ErrQueueIsEmpty = errors.New("[queue] there is no element")
)

// Queue is a FIFO adapter over the doubly linked list; elements enter
// at the back and leave at the front. Not thread safe.
type Queue[T comparable] interface {
	Len() int64
	Empty() bool
	Push(v T)
	// Pop removes and returns the front element, or ErrQueueIsEmpty.
	Pop() (T, error)
	// Front peeks the oldest element without removing it.
	Front() (T, error)
	// Back peeks the newest element without removing it.
	Back() (T, error)
	// Swap exchanges the contents of two queues in O(1).
	Swap(other Queue[T])
}

type linkedQueue[T comparable] struct {
	elements list.LinkedList[T]
}

func New[T comparable]() Queue[T] {
	return &linkedQueue[T]{
		elements: list.NewLinkedList[T](),
	}
}

func (q *linkedQueue[T]) Len() int64 {
	return q.elements.Len()
}

func (q *linkedQueue[T]) Empty() bool {
	return q.elements.Empty()
}

func (q *linkedQueue[T]) Push(v T) {
	q.elements.PushBack(v)
}

func (q *linkedQueue[T]) Pop() (T, error) {
	v, err := q.elements.PopFront()
	if err != nil {
		var zero T
		return zero, infra.WrapErrorStackWithMessage(ErrQueueIsEmpty, "queue pop")
	}
	return v, nil
}

func (q *linkedQueue[T]) Front() (T, error) {
	e := q.elements.Front()
	if e == nil {
		var zero T
		return zero, infra.WrapErrorStackWithMessage(ErrQueueIsEmpty, "queue front")
	}
	return e.Value, nil
}

func (q *linkedQueue[T]) Back() (T, error) {
	e := q.elements.Back()
	if e == nil {
		var zero T
		return zero, infra.WrapErrorStackWithMessage(ErrQueueIsEmpty, "queue back")
	}
	return e.Value, nil
}

func (q *linkedQueue[T]) Swap(other Queue[T]) {
	lq, ok := other.(*linkedQueue[T])
	if !ok || lq == nil || lq == q {
		return
	}
	q.elements, lq.elements = lq.elements, q.elements
}
