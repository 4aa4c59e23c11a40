package tree

import (
	"github.com/benz9527/xcontainer/lib/infra"
)

// Iterator is a node-stable cursor over a tree's inorder sequence.
// The zero node is the end sentinel; there is no live dummy node, the
// past-the-end position is represented by the absence of a node and
// every dereference site checks for it.
//
// An iterator stays valid across insertions and deletions elsewhere in
// the tree and is invalidated the instant its node is erased. Erasing
// a node with two children relocates the in-order successor into the
// erased position; an iterator parked on the successor keeps
// referencing its key. Iterators are values and compare with ==.
type Iterator[K infra.OrderedKey] struct {
	tree *RBTree[K]
	node *rbNode[K]
}

// Valid reports whether the iterator references a real node.
func (it Iterator[K]) Valid() bool {
	return it.tree != nil && it.node != nil
}

// Key dereferences the iterator. At the end position it reports
// ErrIteratorOutOfRange with the zero key.
func (it Iterator[K]) Key() (K, error) {
	if !it.Valid() {
		var zero K
		return zero, infra.WrapErrorStack(ErrIteratorOutOfRange)
	}
	return it.node.key, nil
}

// Next moves to the in-order successor; past the maximum it lands on
// End. Next of End stays at End.
func (it Iterator[K]) Next() Iterator[K] {
	if it.node == nil {
		return it
	}
	return Iterator[K]{tree: it.tree, node: it.node.succ()}
}

// Prev moves to the in-order predecessor. Prev of End lands on the
// maximum; Prev of Begin lands on End.
func (it Iterator[K]) Prev() Iterator[K] {
	if it.node == nil {
		if it.tree == nil {
			return it
		}
		return Iterator[K]{tree: it.tree, node: it.tree.max}
	}
	return Iterator[K]{tree: it.tree, node: it.node.pred()}
}
