package tree

import (
	"github.com/benz9527/xcontainer/lib/infra"
)

// OrderedSet is a unique-key ordered container, a thin shell over the
// red-black tree in unique mode. Every operation forwards; no
// balancing logic lives here.
type OrderedSet[K infra.OrderedKey] struct {
	tree *RBTree[K]
}

func NewOrderedSet[K infra.OrderedKey](opts ...RBTreeOpt[K]) *OrderedSet[K] {
	return &OrderedSet[K]{tree: NewRBTree[K](opts...)}
}

// Insert adds key unless already present. The bool reports whether a
// new element was added; on a hit the iterator references the existing
// element.
func (s *OrderedSet[K]) Insert(key K) (Iterator[K], bool, error) {
	return s.tree.InsertUnique(key)
}

// InsertMany applies Insert left to right; a later duplicate of an
// earlier argument observes it and reports Inserted false.
func (s *OrderedSet[K]) InsertMany(keys ...K) ([]InsertResult[K], error) {
	return s.tree.InsertManyUnique(keys...)
}

func (s *OrderedSet[K]) Erase(it Iterator[K]) error {
	return s.tree.Erase(it)
}

func (s *OrderedSet[K]) EraseKey(key K) bool {
	return s.tree.EraseKey(key)
}

func (s *OrderedSet[K]) Find(key K) Iterator[K] {
	return s.tree.Find(key)
}

func (s *OrderedSet[K]) Contains(key K) bool {
	return s.tree.findNode(key) != nil
}

func (s *OrderedSet[K]) LowerBound(key K) Iterator[K] {
	return s.tree.LowerBound(key)
}

func (s *OrderedSet[K]) UpperBound(key K) Iterator[K] {
	return s.tree.UpperBound(key)
}

// Merge moves other's keys that are absent here; duplicates stay in
// other. Self-merge is a no-op.
func (s *OrderedSet[K]) Merge(other *OrderedSet[K]) error {
	if other == nil {
		return nil
	}
	return s.tree.MergeUnique(other.tree)
}

func (s *OrderedSet[K]) Swap(other *OrderedSet[K]) {
	if other == nil {
		return
	}
	s.tree.Swap(other.tree)
}

func (s *OrderedSet[K]) Clear() {
	s.tree.Clear()
}

func (s *OrderedSet[K]) Begin() Iterator[K] {
	return s.tree.Begin()
}

func (s *OrderedSet[K]) End() Iterator[K] {
	return s.tree.End()
}

func (s *OrderedSet[K]) Len() int64 {
	return s.tree.Len()
}

func (s *OrderedSet[K]) Empty() bool {
	return s.tree.Empty()
}

func (s *OrderedSet[K]) MaxSize() int64 {
	return s.tree.MaxSize()
}

func (s *OrderedSet[K]) Foreach(action func(idx int64, key K) bool) {
	s.tree.Foreach(action)
}
