package vector

import (
	"errors"
	"strconv"

	"github.com/benz9527/xcontainer/lib/infra"
)

var (
	ErrVectorIsEmpty    = errors.New("[vector] there is no element")
	ErrVectorIsFull     = errors.New("[vector] max size reached")
	ErrVectorOutOfRange = errors.New("[vector] index out of range")
)

const defaultVectorMaxSize = int64(1) << 40

// Vector is a growable contiguous sequence over a Go slice. Indexed
// access is bounds checked and reports errors instead of panicking.
// Not thread safe.
type Vector[T any] struct {
	elements []T
	maxSize  int64
}

type VectorOpt[T any] func(*Vector[T])

// WithVectorMaxSize caps the element count; the cap is a configured
// constant, not a live memory bound.
func WithVectorMaxSize[T any](maxSize int64) VectorOpt[T] {
	return func(vec *Vector[T]) {
		if maxSize > 0 {
			vec.maxSize = maxSize
		}
	}
}

// WithVectorCapacity pre-allocates backing storage.
func WithVectorCapacity[T any](capacity int64) VectorOpt[T] {
	return func(vec *Vector[T]) {
		if capacity > 0 {
			vec.elements = make([]T, 0, capacity)
		}
	}
}

func NewVector[T any](opts ...VectorOpt[T]) *Vector[T] {
	vec := &Vector[T]{
		maxSize: defaultVectorMaxSize,
	}
	for _, o := range opts {
		o(vec)
	}
	return vec
}

func (vec *Vector[T]) Len() int64 {
	return int64(len(vec.elements))
}

func (vec *Vector[T]) Cap() int64 {
	return int64(cap(vec.elements))
}

func (vec *Vector[T]) Empty() bool {
	return len(vec.elements) == 0
}

func (vec *Vector[T]) MaxSize() int64 {
	return vec.maxSize
}

func (vec *Vector[T]) At(i int64) (T, error) {
	if i < 0 || i >= vec.Len() {
		var zero T
		return zero, infra.WrapErrorStackWithMessage(ErrVectorOutOfRange, "at "+strconv.FormatInt(i, 10))
	}
	return vec.elements[i], nil
}

func (vec *Vector[T]) Set(i int64, v T) error {
	if i < 0 || i >= vec.Len() {
		return infra.WrapErrorStackWithMessage(ErrVectorOutOfRange, "set "+strconv.FormatInt(i, 10))
	}
	vec.elements[i] = v
	return nil
}

func (vec *Vector[T]) Front() (T, error) {
	if vec.Empty() {
		var zero T
		return zero, infra.WrapErrorStack(ErrVectorIsEmpty)
	}
	return vec.elements[0], nil
}

func (vec *Vector[T]) Back() (T, error) {
	if vec.Empty() {
		var zero T
		return zero, infra.WrapErrorStack(ErrVectorIsEmpty)
	}
	return vec.elements[len(vec.elements)-1], nil
}

func (vec *Vector[T]) PushBack(v T) error {
	if vec.Len() >= vec.maxSize {
		return infra.WrapErrorStackWithMessage(ErrVectorIsFull, "vector push back")
	}
	vec.elements = append(vec.elements, v)
	return nil
}

func (vec *Vector[T]) PopBack() (T, error) {
	if vec.Empty() {
		var zero T
		return zero, infra.WrapErrorStack(ErrVectorIsEmpty)
	}
	last := len(vec.elements) - 1
	v := vec.elements[last]
	var zero T
	vec.elements[last] = zero // release the reference for GC
	vec.elements = vec.elements[:last]
	return v, nil
}

// InsertAt shifts the suffix right and places v at index i; i equal to
// Len appends.
func (vec *Vector[T]) InsertAt(i int64, v T) error {
	if i < 0 || i > vec.Len() {
		return infra.WrapErrorStackWithMessage(ErrVectorOutOfRange, "insert at "+strconv.FormatInt(i, 10))
	}
	if vec.Len() >= vec.maxSize {
		return infra.WrapErrorStackWithMessage(ErrVectorIsFull, "vector insert")
	}
	var zero T
	vec.elements = append(vec.elements, zero)
	copy(vec.elements[i+1:], vec.elements[i:])
	vec.elements[i] = v
	return nil
}

// EraseAt removes and returns the element at index i, shifting the
// suffix left.
func (vec *Vector[T]) EraseAt(i int64) (T, error) {
	if i < 0 || i >= vec.Len() {
		var zero T
		return zero, infra.WrapErrorStackWithMessage(ErrVectorOutOfRange, "erase at "+strconv.FormatInt(i, 10))
	}
	v := vec.elements[i]
	copy(vec.elements[i:], vec.elements[i+1:])
	last := len(vec.elements) - 1
	var zero T
	vec.elements[last] = zero
	vec.elements = vec.elements[:last]
	return v, nil
}

// Reserve grows the backing capacity to at least capacity; it never
// shrinks and never changes Len.
func (vec *Vector[T]) Reserve(capacity int64) error {
	if capacity > vec.maxSize {
		return infra.WrapErrorStackWithMessage(ErrVectorIsFull, "vector reserve")
	}
	if capacity <= vec.Cap() {
		return nil
	}
	grown := make([]T, len(vec.elements), capacity)
	copy(grown, vec.elements)
	vec.elements = grown
	return nil
}

// ShrinkToFit drops spare capacity.
func (vec *Vector[T]) ShrinkToFit() {
	if vec.Cap() == vec.Len() {
		return
	}
	shrunk := make([]T, len(vec.elements))
	copy(shrunk, vec.elements)
	vec.elements = shrunk
}

func (vec *Vector[T]) Clear() {
	clear(vec.elements)
	vec.elements = vec.elements[:0]
}

func (vec *Vector[T]) Swap(other *Vector[T]) {
	if other == nil || other == vec {
		return
	}
	vec.elements, other.elements = other.elements, vec.elements
	vec.maxSize, other.maxSize = other.maxSize, vec.maxSize
}

// Foreach walks front to back, stopping early when action returns
// false.
func (vec *Vector[T]) Foreach(action func(idx int64, v T) bool) {
	for i := 0; i < len(vec.elements); i++ {
		if !action(int64(i), vec.elements[i]) {
			return
		}
	}
}
