package tree

import (
	"github.com/benz9527/xcontainer/lib/infra"
)

// OrderedMultiset is a duplicate-key ordered container over the
// red-black tree. Equal keys form a contiguous inorder run in
// insertion order.
type OrderedMultiset[K infra.OrderedKey] struct {
	tree *RBTree[K]
}

func NewOrderedMultiset[K infra.OrderedKey](opts ...RBTreeOpt[K]) *OrderedMultiset[K] {
	return &OrderedMultiset[K]{tree: NewRBTree[K](opts...)}
}

// Insert always adds a node for key, after any equal keys already
// present.
func (ms *OrderedMultiset[K]) Insert(key K) (Iterator[K], error) {
	return ms.tree.Insert(key)
}

func (ms *OrderedMultiset[K]) InsertMany(keys ...K) ([]InsertResult[K], error) {
	return ms.tree.InsertMany(keys...)
}

func (ms *OrderedMultiset[K]) Erase(it Iterator[K]) error {
	return ms.tree.Erase(it)
}

// EraseKey removes a single element of key's run, reporting whether
// one existed.
func (ms *OrderedMultiset[K]) EraseKey(key K) bool {
	return ms.tree.EraseKey(key)
}

func (ms *OrderedMultiset[K]) Find(key K) Iterator[K] {
	return ms.tree.Find(key)
}

func (ms *OrderedMultiset[K]) Contains(key K) bool {
	return ms.tree.findNode(key) != nil
}

// Count walks key's run from its lower bound. O(k + log n) for a run
// of length k.
func (ms *OrderedMultiset[K]) Count(key K) int64 {
	count := int64(0)
	for it := ms.tree.LowerBound(key); it.node != nil; it = it.Next() {
		if ms.tree.cmp(it.node.key, key) != 0 {
			break
		}
		count++
	}
	return count
}

func (ms *OrderedMultiset[K]) LowerBound(key K) Iterator[K] {
	return ms.tree.LowerBound(key)
}

func (ms *OrderedMultiset[K]) UpperBound(key K) Iterator[K] {
	return ms.tree.UpperBound(key)
}

// EqualRange returns the run of key as [first, second); both ends are
// the same iterator when key is absent.
func (ms *OrderedMultiset[K]) EqualRange(key K) (Iterator[K], Iterator[K]) {
	return ms.tree.LowerBound(key), ms.tree.UpperBound(key)
}

// Merge drains other into this multiset; other is empty afterwards.
// Self-merge is a no-op.
func (ms *OrderedMultiset[K]) Merge(other *OrderedMultiset[K]) error {
	if other == nil {
		return nil
	}
	return ms.tree.Merge(other.tree)
}

func (ms *OrderedMultiset[K]) Swap(other *OrderedMultiset[K]) {
	if other == nil {
		return
	}
	ms.tree.Swap(other.tree)
}

func (ms *OrderedMultiset[K]) Clear() {
	ms.tree.Clear()
}

func (ms *OrderedMultiset[K]) Begin() Iterator[K] {
	return ms.tree.Begin()
}

func (ms *OrderedMultiset[K]) End() Iterator[K] {
	return ms.tree.End()
}

func (ms *OrderedMultiset[K]) Len() int64 {
	return ms.tree.Len()
}

func (ms *OrderedMultiset[K]) Empty() bool {
	return ms.tree.Empty()
}

func (ms *OrderedMultiset[K]) MaxSize() int64 {
	return ms.tree.MaxSize()
}

func (ms *OrderedMultiset[K]) Foreach(action func(idx int64, key K) bool) {
	ms.tree.Foreach(action)
}
