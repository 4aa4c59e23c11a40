package tree

import (
	"math"

	"github.com/benz9527/xcontainer/lib/infra"
)

// References:
// https://elixir.bootlin.com/linux/latest/source/lib/rbtree.c
// rbtree properties:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// p1. Every node is either red or black.
// p2. All NIL nodes are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant
//   NIL nodes goes through the same number of black nodes. (black-violation)
// p5. (Optional) The root is black.
// (Conclusion) If a node X has exactly one child, it must be a red child,
//   because if it were black, its NIL descendants would sit at a different
//   black depth than X's NIL child, violating p4.
// So the shortest path nodes are black nodes. Otherwise,
// the path must contain red node.
// The longest path nodes' number is 2 * shortest path nodes' number.

const defaultTreeMaxSize = int64(math.MaxInt64)

// RBTree is an ordered container backed by a red-black tree. It stores
// keys under a total order, in either duplicate mode (Insert) or unique
// mode (InsertUnique); the two modes may not be mixed on one tree by
// the adapters built on top of it.
//
// The tree owns every node it links; nodes move between trees only
// through Merge/MergeUnique, which physically splice them. No internal
// synchronization is provided, concurrent mutation is a caller bug.
type RBTree[K infra.OrderedKey] struct {
	root    *rbNode[K]
	min     *rbNode[K]
	max     *rbNode[K]
	cmp     infra.OrderedKeyComparator[K]
	count   int64
	maxSize int64
}

type RBTreeOpt[K infra.OrderedKey] func(*RBTree[K])

// WithTreeMaxSize caps the element count. The cap is a plain
// configured constant, not a live memory bound.
func WithTreeMaxSize[K infra.OrderedKey](maxSize int64) RBTreeOpt[K] {
	return func(tree *RBTree[K]) {
		if maxSize > 0 {
			tree.maxSize = maxSize
		}
	}
}

// WithTreeComparator replaces the natural ascending order. The
// comparator must be a strict weak ordering; this is not validated at
// runtime.
func WithTreeComparator[K infra.OrderedKey](cmp infra.OrderedKeyComparator[K]) RBTreeOpt[K] {
	return func(tree *RBTree[K]) {
		if cmp != nil {
			tree.cmp = cmp
		}
	}
}

func NewRBTree[K infra.OrderedKey](opts ...RBTreeOpt[K]) *RBTree[K] {
	tree := &RBTree[K]{
		cmp:     infra.OrderedKeyCompare[K],
		maxSize: defaultTreeMaxSize,
	}
	for _, o := range opts {
		o(tree)
	}
	return tree
}

func (tree *RBTree[K]) Len() int64 {
	return tree.count
}

func (tree *RBTree[K]) Empty() bool {
	return tree.count == 0
}

func (tree *RBTree[K]) MaxSize() int64 {
	return tree.maxSize
}

// Begin references the minimum key, End the past-the-end position,
// RBegin the maximum key. All O(1); Begin == End on an empty tree.
func (tree *RBTree[K]) Begin() Iterator[K] {
	return Iterator[K]{tree: tree, node: tree.min}
}

func (tree *RBTree[K]) End() Iterator[K] {
	return Iterator[K]{tree: tree}
}

func (tree *RBTree[K]) RBegin() Iterator[K] {
	return Iterator[K]{tree: tree, node: tree.max}
}

/*
		 |                         |
		 X                         S
		/ \     leftRotate(X)     / \
	   L   S    ============>    X   Sd
		  / \                   / \
		Sc   Sd                L   Sc
*/
func (tree *RBTree[K]) leftRotate(x *rbNode[K]) {
	if x == nil || x.right.isNilLeaf() {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] left rotate node x is nil or x.right is nil")
	}

	p, y := x.parent, x.right
	dir := x.Direction()
	x.right, y.left = y.left, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case Root:
		tree.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown node direction to left-rotate")
	}
	y.parent = p
}

/*
			 |                         |
			 X                         S
			/ \     rightRotate(S)    / \
	       L   S    <============    X   R
			  / \                   / \
			Sc   Sd               Sc   Sd
*/
func (tree *RBTree[K]) rightRotate(x *rbNode[K]) {
	if x == nil || x.left.isNilLeaf() {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] right rotate node x is nil or x.left is nil")
	}

	p, y := x.parent, x.left
	dir := x.Direction()
	x.left, y.right = y.right, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case Root:
		tree.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown node direction to right-rotate")
	}
	y.parent = p
}

// attach links the detached red node z at its BST position. Equal keys
// descend to the right subtree, so duplicates keep insertion order
// among themselves. In unique mode an equal hit returns the existing
// node untouched.
// i1: Empty rbtree, insert directly, but root node is painted to black.
func (tree *RBTree[K]) attach(z *rbNode[K], unique bool) (*rbNode[K], bool, error) {
	if /* i1 */ tree.root.isNilLeaf() {
		if tree.count >= tree.maxSize {
			return nil, false, infra.WrapErrorStack(ErrTreeIsFull)
		}
		z.color = Black
		tree.root = z
		tree.min, tree.max = z, z
		tree.count++
		return z, true, nil
	}

	var x, y *rbNode[K] = tree.root, nil
	res := int64(0)
	for !x.isNilLeaf() {
		y = x
		res = tree.cmp(z.key, x.key)
		if res == 0 && unique {
			return x, false, nil
		}
		if /* less */ res < 0 {
			x = x.left
		} else /* greater, or equal ties right */ {
			x = x.right
		}
	}

	if y.isNilLeaf() {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] attach a new node below a nil node")
	}
	if tree.count >= tree.maxSize {
		return nil, false, infra.WrapErrorStack(ErrTreeIsFull)
	}

	z.parent = y
	if res < 0 {
		y.left = z
	} else {
		y.right = z
	}
	tree.count++

	if tree.cmp(z.key, tree.min.key) < 0 {
		tree.min = z
	}
	if tree.cmp(z.key, tree.max.key) >= 0 {
		tree.max = z
	}

	tree.insertRebalance(z)
	return z, true, nil
}

// Insert adds key in duplicate mode and returns an iterator to the new
// node. It fails only when the configured max size is reached; the
// tree is untouched in that case.
func (tree *RBTree[K]) Insert(key K) (Iterator[K], error) {
	z := &rbNode[K]{key: key, color: Red}
	n, _, err := tree.attach(z, false)
	if err != nil {
		return tree.End(), err
	}
	return Iterator[K]{tree: tree, node: n}, nil
}

// InsertUnique adds key unless an equal key is already present. The
// bool reports whether a new node was linked; on an equal hit the
// iterator references the existing node and nothing is mutated.
func (tree *RBTree[K]) InsertUnique(key K) (Iterator[K], bool, error) {
	z := &rbNode[K]{key: key, color: Red}
	n, inserted, err := tree.attach(z, true)
	if err != nil {
		return tree.End(), false, err
	}
	return Iterator[K]{tree: tree, node: n}, inserted, nil
}

// InsertMany applies Insert to each key left to right; later keys
// observe the effect of earlier ones. On a max-size failure the
// results collected so far are returned with the error.
func (tree *RBTree[K]) InsertMany(keys ...K) ([]InsertResult[K], error) {
	results := make([]InsertResult[K], 0, len(keys))
	for _, key := range keys {
		it, err := tree.Insert(key)
		if err != nil {
			return results, err
		}
		results = append(results, InsertResult[K]{Iter: it, Inserted: true})
	}
	return results, nil
}

// InsertManyUnique applies InsertUnique to each key left to right.
func (tree *RBTree[K]) InsertManyUnique(keys ...K) ([]InsertResult[K], error) {
	results := make([]InsertResult[K], 0, len(keys))
	for _, key := range keys {
		it, inserted, err := tree.InsertUnique(key)
		if err != nil {
			return results, err
		}
		results = append(results, InsertResult[K]{Iter: it, Inserted: inserted})
	}
	return results, nil
}

/*
New node X is red by default.

<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

im1: Current node X's parent P is black and P is root, so hold p3 and p4.

im2: Current node X's parent P is red and P is root, repaint P into black.

im3: If both the parent P and the uncle U are red, grandpa G is black.
(red-violation)
After repainted G into red may be still red-violation.
Recursive to fix grandpa.

	    [G]             <G>
	    / \             / \
	  <P> <U>  ====>  [P] [U]
	  /               /
	<X>             <X>

im4: The parent P is red but the uncle U is black. (red-violation)
X is opposite direction to P. Rotate P to opposite direction.
After rotation may be still red-violation. Here must enter im5 to fix.

	  [G]                 [G]
	  / \    rotate(P)    / \
	<P> [U]  ========>  <X> [U]
	  \                 /
	  <X>             <P>

im5: Handle im4 scenario, current node is the same direction as parent.

	    [G]                 <P>               [P]
	    / \    rotate(G)    / \    repaint    / \
	  <P> [U]  ========>  <X> [G]  ======>  <X> <G>
	  /                         \                 \
	<X>                         [U]               [U]
*/
func (tree *RBTree[K]) insertRebalance(x *rbNode[K]) {
	for !x.isNilLeaf() {
		if x.isRoot() {
			if x.isRed() {
				x.color = Black
			}
			return
		}

		if x.parent.isBlack() {
			return
		}

		if x.parent.isRoot() {
			if /* im1 */ x.parent.isBlack() {
				return
			} else /* im2 */ {
				x.parent.color = Black
			}
		}

		if /* im3 */ x.hasUncle() && x.uncle().isRed() {
			x.parent.color = Black
			x.uncle().color = Black
			gp := x.grandpa()
			gp.color = Red
			x = gp
			continue
		} else {
			if !x.hasUncle() || x.uncle().isBlack() {
				dir := x.Direction()
				if /* im4 */ dir != x.parent.Direction() {
					p := x.parent
					switch dir {
					case Left:
						tree.rightRotate(p)
					case Right:
						tree.leftRotate(p)
					default:
						// impossible run to here
						panic( /* debug assertion */ "[rbtree] insert rebalance violate (im4)")
					}
					x = p // enter im5 to fix
				}

				switch /* im5 */ dir = x.parent.Direction(); dir {
				case Left:
					tree.rightRotate(x.grandpa())
				case Right:
					tree.leftRotate(x.grandpa())
				default:
					// impossible run to here
					panic( /* debug assertion */ "[rbtree] insert rebalance violate (im5)")
				}

				x.parent.color = Black
				x.sibling().color = Red
				return
			}
		}
	}
}

/*
r1: Only a root node, remove directly.

r2: Current node X has left and right node.
Find node X's succ S and exchange the two nodes structurally, links
and colors both, so S takes over X's position and X slides into S's
old slot. No key moves, so a handle to X dies with the removal while
a handle to S follows its node to the new position.
The succ of a node with two children has no left child.

	  |                      |
	  X                      S
	 / \                    / \
	L  ..   exchange(X,S)  L  ..
		|   ============>      |
		P                      P
	   / \                    / \
	  S  ..                  X  ..

r3: (1) Current node X is a red leaf node, remove directly.

r3: (2) Current node X is a black leaf node, we have to rebalance after remove.
(black-violation)

r4: Current node X is not a leaf node but contains a not nil child node.
The child node must be a red node. (See conclusion. Otherwise, black-violation)

removeNode unlinks and returns z itself with all structural links
cleared; its key field survives for splice reuse.
*/
func (tree *RBTree[K]) removeNode(z *rbNode[K]) *rbNode[K] {
	defer func() {
		tree.count--
		if tree.root == nil {
			tree.min, tree.max = nil, nil
		} else {
			tree.min, tree.max = tree.root.minimum(), tree.root.maximum()
		}
	}()

	if /* r1 */ tree.count == 1 && z.isRoot() {
		tree.root = nil
		z.left, z.right = nil, nil
		return z
	}

	if /* r2 */ !z.left.isNilLeaf() && !z.right.isNilLeaf() {
		tree.replaceBySucc(z)
	}

	y := z
	if /* r3 */ y.isLeaf() {
		if /* r3 (1) */ y.isRed() {
			switch dir := y.Direction(); dir {
			case Left:
				y.parent.left = nil
			case Right:
				y.parent.right = nil
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] y should be a leaf node, violate (r3-1)")
			}
		} else /* r3 (2) */ {
			tree.removeRebalance(y)
			if y.parent != nil {
				if y == y.parent.left {
					y.parent.left = nil
				} else if y == y.parent.right {
					y.parent.right = nil
				}
			}
		}
	} else /* r4 */ {
		var replace *rbNode[K]
		if !y.right.isNilLeaf() {
			replace = y.right
		} else if !y.left.isNilLeaf() {
			replace = y.left
		}

		if replace == nil {
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] remove a leaf node without child, violate (r4)")
		}

		switch dir := y.Direction(); dir {
		case Root:
			tree.root = replace
			tree.root.parent = nil
		case Left:
			y.parent.left = replace
			replace.parent = y.parent
		case Right:
			y.parent.right = replace
			replace.parent = y.parent
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] impossible run to here")
		}

		if y.isBlack() {
			if replace.isRed() {
				replace.color = Black
			} else {
				tree.removeRebalance(replace)
			}
		}
	}

	y.parent = nil
	y.left = nil
	y.right = nil
	return y
}

// replaceBySucc exchanges z with its in-order successor, links and
// colors both. The successor keeps its key and takes over z's
// position; z slides into the successor's old slot with no left child
// and at most a right child, ready for the leaf or one-child unlink.
func (tree *RBTree[K]) replaceBySucc(z *rbNode[K]) {
	y := z.succ()
	if y == nil || !y.left.isNilLeaf() {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] succ of a node with two children must have no left child")
	}

	zp, zl, zr := z.parent, z.left, z.right
	yp, yr := y.parent, y.right
	dir := z.Direction()

	y.left = zl
	zl.parent = y
	if zr == y {
		y.right = z
		z.parent = y
	} else {
		// y is the leftmost node of z's right subtree.
		y.right = zr
		zr.parent = y
		z.parent = yp
		yp.left = z
	}

	z.left = nil
	z.right = yr
	if yr != nil {
		yr.parent = z
	}

	y.parent = zp
	switch dir {
	case Root:
		tree.root = y
	case Left:
		zp.left = y
	case Right:
		zp.right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown node direction to exchange")
	}
	z.color, y.color = y.color, z.color
}

// Erase removes the node referenced by it. An end iterator, an
// iterator of another tree, or an iterator whose node was already
// erased reports ErrInvalidIterator without mutation.
func (tree *RBTree[K]) Erase(it Iterator[K]) error {
	if it.tree != tree || it.node == nil {
		return infra.WrapErrorStackWithMessage(ErrInvalidIterator, "rbtree erase")
	}
	if !tree.owns(it.node) {
		return infra.WrapErrorStackWithMessage(ErrInvalidIterator, "rbtree erase")
	}
	tree.removeNode(it.node)
	return nil
}

// EraseKey removes one node holding key, reporting whether one existed.
// In duplicate mode only a single node of the run is removed.
func (tree *RBTree[K]) EraseKey(key K) bool {
	z := tree.findNode(key)
	if z == nil {
		return false
	}
	tree.removeNode(z)
	return true
}

// owns reports whether node hangs off this tree's root. Membership is
// checked by walking the parent chain, the same probe the linked list
// runs before structural mutation.
func (tree *RBTree[K]) owns(node *rbNode[K]) bool {
	aux := node
	for aux.parent != nil {
		aux = aux.parent
	}
	return aux == tree.root
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

Sc is the same direction to X and it X's sibling's child node.
Sd is the opposite direction to X and it X's sibling's child node.

rm1: Current node X's sibling S is red, so the parent P, nephew node Sc and Sd
must be black. (Otherwise, red-violation)
(1) X is left node of P, left rotate P
(2) X is right node of P, right rotate P.
(3) repaint S into black, P into red.

	  [P]                   <S>               [S]
	  / \    l-rotate(P)    / \    repaint    / \
	[X] <S>  ==========>  [P] [D]  ======>  <P> [Sd]
	    / \               / \               / \
	 [Sc] [Sd]          [X] [Sc]          [X] [Sc]

rm2: Current node X's parent P is red, the sibling S, nephew node Sc and Sd
is black.
Repaint S into red and P into black.

	  <P>             [P]
	  / \             / \
	[X] [S]  ====>  [X] <S>
	    / \             / \
	 [Sc] [Sd]       [Sc] [Sd]

rm3: All of current node X's parent P, the sibling S, nephew node Sc and Sd
are black.
Unable to satisfy p3 and p4. We have to paint the S into red to satisfy
p4 locally. Then recursive to handle P.

	  [P]             [P]
	  / \             / \
	[X] [S]  ====>  [X] <S>
	    / \             / \
	 [Sc] [Sd]       [Sc] [Sd]

rm4: Current node X's sibling S is black, nephew node Sc is red and Sd
is black. Ignore X's parent P's color (red or black is okay)
Unable to satisfy p3 and p4.
(1) If X is left node of P, right rotate P.
(2) If X is right node of P, left rotate P.
(3) Repaint S into red, Sc into black
Enter into rm5 to fix.

	                        {P}                {P}
	  {P}                   / \                / \
	  / \    r-rotate(S)  [X] <Sc>   repaint  [X] [Sc]
	[X] [S]  ==========>        \    ======>       \
	    / \                     [S]                <S>
	  <Sc> [Sd]                   \                  \
	                              [Sd]               [Sd]

rm5: Current node X's sibling S is black, nephew node Sc is black and Sd
is red. Ignore X's parent P's color (red or black is okay)
Unable to satisfy p4 (black-violation)
(1) If X is left node of P, left rotate P.
(2) If X is right node of P, right rotate P.
(3) Swap P and S's color (red-violation)
(4) Repaint Sd into black.

	  {P}                   [S]                {S}
	  / \    l-rotate(P)    / \     repaint    / \
	[X] [S]  ==========>  {P} <Sd>  ======>  [P] [Sd]
	    / \               / \                / \
	 [Sc] <Sd>          [X] [Sc]           [X] [Sc]
*/
func (tree *RBTree[K]) removeRebalance(x *rbNode[K]) {
	for {
		if x.isRoot() {
			return
		}

		sibling := x.sibling()
		dir := x.Direction()
		if /* rm1 */ sibling.isRed() {
			switch dir {
			case Left:
				tree.leftRotate(x.parent)
			case Right:
				tree.rightRotate(x.parent)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] remove rebalance violate (rm1)")
			}
			sibling.color = Black
			x.parent.color = Red // ready to enter rm2
			sibling = x.sibling()
		}

		var sc, sd *rbNode[K]
		switch /* rm2 */ dir {
		case Left:
			sc, sd = sibling.left, sibling.right
		case Right:
			sc, sd = sibling.right, sibling.left
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] remove rebalance violate (rm2)")
		}

		if sc.isBlack() && sd.isBlack() {
			if /* rm2 */ x.parent.isRed() {
				sibling.color = Red
				x.parent.color = Black
				break
			} else /* rm3 */ {
				sibling.color = Red
				x = x.parent
				continue
			}
		} else {
			if /* rm4 */ !sc.isNilLeaf() && sc.isRed() {
				switch dir {
				case Left:
					tree.rightRotate(sibling)
				case Right:
					tree.leftRotate(sibling)
				default:
					// impossible run to here
					panic( /* debug assertion */ "[rbtree] remove rebalance violate (rm4)")
				}
				sc.color = Black
				sibling.color = Red
				sibling = x.sibling()
				switch dir {
				case Left:
					sd = sibling.right
				case Right:
					sd = sibling.left
				default:
					// impossible run to here
					panic( /* debug assertion */ "[rbtree] remove rebalance violate (rm4)")
				}
			}

			switch /* rm5 */ dir {
			case Left:
				tree.leftRotate(x.parent)
			case Right:
				tree.rightRotate(x.parent)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] remove rebalance violate (rm5)")
			}
			sibling.color = x.parent.color
			x.parent.color = Black
			if !sd.isNilLeaf() {
				sd.color = Black
			}
			break
		}
	}
}

func (tree *RBTree[K]) findNode(key K) *rbNode[K] {
	for x := tree.root; !x.isNilLeaf(); {
		res := tree.cmp(key, x.key)
		if res == 0 {
			return x
		} else if res < 0 {
			x = x.left
		} else {
			x = x.right
		}
	}
	return nil
}

// Find returns an iterator to a node holding key, or End when absent.
func (tree *RBTree[K]) Find(key K) Iterator[K] {
	return Iterator[K]{tree: tree, node: tree.findNode(key)}
}

// LowerBound returns the first node whose key is not less than key,
// or End when every key is less.
func (tree *RBTree[K]) LowerBound(key K) Iterator[K] {
	var candidate *rbNode[K]
	for x := tree.root; !x.isNilLeaf(); {
		if tree.cmp(x.key, key) >= 0 {
			candidate = x
			x = x.left
		} else {
			x = x.right
		}
	}
	return Iterator[K]{tree: tree, node: candidate}
}

// UpperBound returns the first node whose key is greater than key,
// or End when no key is greater.
func (tree *RBTree[K]) UpperBound(key K) Iterator[K] {
	var candidate *rbNode[K]
	for x := tree.root; !x.isNilLeaf(); {
		if tree.cmp(x.key, key) > 0 {
			candidate = x
			x = x.left
		} else {
			x = x.right
		}
	}
	return Iterator[K]{tree: tree, node: candidate}
}

// extractMin unlinks and returns the minimum node, or nil on an empty
// tree. The minimum never has a left child, so the successor exchange
// never applies.
func (tree *RBTree[K]) extractMin() *rbNode[K] {
	if tree.root.isNilLeaf() {
		return nil
	}
	return tree.removeNode(tree.min)
}

// extractKey unlinks one node holding key and returns it detached, or
// nil when absent.
func (tree *RBTree[K]) extractKey(key K) *rbNode[K] {
	z := tree.findNode(key)
	if z == nil {
		return nil
	}
	return tree.removeNode(z)
}

// Merge splices every node of other into this tree by repeatedly
// extracting other's minimum, leaving other empty. O(m log(n+m)).
// Self-merge is a no-op. When the combined size would exceed the max
// size, nothing is moved and ErrTreeIsFull is reported.
func (tree *RBTree[K]) Merge(other *RBTree[K]) error {
	if other == nil || other == tree {
		return nil
	}
	if tree.count+other.count > tree.maxSize {
		return infra.WrapErrorStackWithMessage(ErrTreeIsFull, "rbtree merge")
	}
	for !other.root.isNilLeaf() {
		n := other.extractMin()
		n.detach()
		if _, _, err := tree.attach(n, false); err != nil {
			// impossible run to here, capacity was pre-checked
			panic( /* debug assertion */ "[rbtree] merge attach failed after capacity check")
		}
	}
	return nil
}

// MergeUnique splices the nodes of other whose keys are absent from
// this tree; keys already present stay in other (skip-and-retain).
// Self-merge is a no-op. When the movable keys would exceed the max
// size, nothing is moved and ErrTreeIsFull is reported.
func (tree *RBTree[K]) MergeUnique(other *RBTree[K]) error {
	if other == nil || other == tree {
		return nil
	}

	moved := make([]K, 0, other.count)
	other.Foreach(func(idx int64, key K) bool {
		if len(moved) > 0 && tree.cmp(moved[len(moved)-1], key) == 0 {
			return true
		}
		if tree.findNode(key) == nil {
			moved = append(moved, key)
		}
		return true
	})

	if tree.count+int64(len(moved)) > tree.maxSize {
		return infra.WrapErrorStackWithMessage(ErrTreeIsFull, "rbtree merge unique")
	}
	for _, key := range moved {
		n := other.extractKey(key)
		if n == nil {
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] merge lost a collected key")
		}
		n.detach()
		if _, _, err := tree.attach(n, false); err != nil {
			// impossible run to here, capacity was pre-checked
			panic( /* debug assertion */ "[rbtree] merge attach failed after capacity check")
		}
	}
	return nil
}

// Swap exchanges the whole contents of two trees in O(1); no node is
// touched. Self-swap is a no-op.
func (tree *RBTree[K]) Swap(other *RBTree[K]) {
	if other == nil || other == tree {
		return
	}
	tree.root, other.root = other.root, tree.root
	tree.min, other.min = other.min, tree.min
	tree.max, other.max = other.max, tree.max
	tree.cmp, other.cmp = other.cmp, tree.cmp
	tree.count, other.count = other.count, tree.count
	tree.maxSize, other.maxSize = other.maxSize, tree.maxSize
}

// Foreach runs an inorder traversal, stopping early when action
// returns false.
func (tree *RBTree[K]) Foreach(action func(idx int64, key K) bool) {
	size := tree.count
	aux := tree.root
	if size <= 0 || aux == nil {
		return
	}

	stack := make([]*rbNode[K], 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; !aux.isNilLeaf(); aux = aux.left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		if aux = stack[size-1]; !action(idx, aux.key) {
			return
		}
		idx++
		stack = stack[:size-1]
		if aux.right != nil {
			for aux = aux.right; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}

// Clear unlinks every node so the parent/child cycles do not pin the
// whole tree in memory. Idempotent.
func (tree *RBTree[K]) Clear() {
	aux := tree.root
	tree.root, tree.min, tree.max = nil, nil, nil
	tree.count = 0
	if aux == nil {
		return
	}

	stack := make([]*rbNode[K], 0, 8)
	for ; !aux.isNilLeaf(); aux = aux.left {
		stack = append(stack, aux)
	}

	for size := len(stack); size > 0; size = len(stack) {
		aux = stack[size-1]
		r := aux.right
		aux.right, aux.left, aux.parent = nil, nil, nil
		stack = stack[:size-1]
		if r != nil {
			for aux = r; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}
