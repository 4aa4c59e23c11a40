package tree

import (
	"errors"

	"go.uber.org/multierr"

	"github.com/benz9527/xcontainer/lib/infra"
)

func blackDepthTo[K infra.OrderedKey](target, to *rbNode[K]) int {
	depth := 0
	for aux := target; aux != to; aux = aux.parent {
		if aux.isBlack() {
			depth++
		}
	}
	return depth
}

// rbtree rule validation utilities.

// References:
// https://github1s.com/minghu6/rust-minghu6/blob/master/coll_st/src/bst/rb.rs

// Inorder traversal to validate the no-red-red property and the black
// root.
func RedViolationValidate[K infra.OrderedKey](tree *RBTree[K]) error {
	aux := tree.root
	if aux == nil {
		return nil
	}
	if aux.isRed() {
		return errors.New("rbtree red violation")
	}

	stack := make([]*rbNode[K], 0, tree.count>>1)
	defer func() {
		clear(stack)
	}()

	for ; !aux.isNilLeaf(); aux = aux.left {
		stack = append(stack, aux)
	}

	for size := len(stack); size > 0; size = len(stack) {
		if aux = stack[size-1]; aux.isRed() {
			if aux.parent.isRed() || aux.left.isRed() || aux.right.isRed() {
				return errors.New("rbtree red violation")
			}
		}

		stack = stack[:size-1]
		if aux.right != nil {
			for aux = aux.right; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
	return nil
}

// BFS traversal to load all nodes that border a nil leaf.
func bfsLeaves[K infra.OrderedKey](tree *RBTree[K]) []*rbNode[K] {
	aux := tree.root
	if aux.isNilLeaf() {
		return nil
	}

	leaves := make([]*rbNode[K], 0, tree.count>>1+1)
	stack := make([]*rbNode[K], 0, tree.count>>1)
	defer func() {
		clear(stack)
	}()
	stack = append(stack, aux)

	for len(stack) > 0 {
		aux = stack[0]
		l, r := aux.left, aux.right
		if /* nil leaves, keep one */ l.isNilLeaf() || r.isNilLeaf() {
			leaves = append(leaves, aux)
		}
		if !l.isNilLeaf() {
			stack = append(stack, l)
		}
		if !r.isNilLeaf() {
			stack = append(stack, r)
		}
		stack = stack[1:]
	}
	return leaves
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).

	        [13]
			/  \
		 <8>    [15]
		 / \    /  \
	  [6] [11] [14] [17]
	  /              /
	<1>            [16]

2-3-4 tree like:

	       <8> --- [13] --- <15>
		  /  \             /    \
		 /    \           /      \
	  <1>-[6][11]      [14] <16>-[17]

Each leaf node to root node black depth are equal.
*/
func BlackViolationValidate[K infra.OrderedKey](tree *RBTree[K]) error {
	leaves := bfsLeaves[K](tree)
	if leaves == nil {
		return nil
	}

	blackDepth := blackDepthTo[K](leaves[0], tree.root)
	for i := 1; i < len(leaves); i++ {
		if blackDepthTo[K](leaves[i], tree.root) != blackDepth {
			return errors.New("rbtree black violation")
		}
	}
	return nil
}

// SortedOrderValidate checks that the inorder key sequence is
// non-decreasing under the tree's comparator and that the element
// count matches a full traversal.
func SortedOrderValidate[K infra.OrderedKey](tree *RBTree[K]) error {
	var (
		prev    K
		hasPrev bool
		walked  int64
		bad     bool
	)
	tree.Foreach(func(idx int64, key K) bool {
		if hasPrev && tree.cmp(prev, key) > 0 {
			bad = true
			return false
		}
		prev, hasPrev = key, true
		walked++
		return true
	})
	if bad {
		return errors.New("rbtree order violation")
	}
	if walked != tree.count {
		return errors.New("rbtree size violation")
	}
	return nil
}

// Validate combines every invariant check.
func Validate[K infra.OrderedKey](tree *RBTree[K]) error {
	return multierr.Combine(
		RedViolationValidate(tree),
		BlackViolationValidate(tree),
		SortedOrderValidate(tree),
	)
}
