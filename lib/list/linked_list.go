package list

var _ LinkedList[struct{}] = (*doublyLinkedList[struct{}])(nil) // Type check assertion

type nodeElementInListStatus uint8

const (
	notInList nodeElementInListStatus = iota
	emptyList
	theOnlyOne
	theFirstButNotTheLast
	theLastButNotTheFirst
	inMiddle
)

// doublyLinkedList links its elements through a root sentinel ring:
// root.next is the head, root.prev is the tail, and an empty list has
// the root linked to itself. Elements are node-stable handles; Splice
// moves the nodes themselves, never copies of their values.
type doublyLinkedList[T comparable] struct {
	root *NodeElement[T]
	len  int64
}

func NewLinkedList[T comparable]() LinkedList[T] {
	return new(doublyLinkedList[T]).init()
}

func (l *doublyLinkedList[T]) init() *doublyLinkedList[T] {
	l.root = &NodeElement[T]{
		listRef: l,
	}
	l.root.next = l.root
	l.root.prev = l.root
	l.len = 0
	return l
}

func (l *doublyLinkedList[T]) getRoot() *NodeElement[T] {
	return l.root
}

func (l *doublyLinkedList[T]) Len() int64 {
	return l.len
}

func (l *doublyLinkedList[T]) Empty() bool {
	return l.len == 0
}

// checkElement reports where targetE sits in the list before any
// structural mutation touches it, guarding against elements of other
// lists and already removed elements.
func (l *doublyLinkedList[T]) checkElement(targetE *NodeElement[T]) (*NodeElement[T], nodeElementInListStatus) {
	if l.len == 0 {
		return l.getRoot(), emptyList
	}

	if targetE == nil || targetE.listRef != l || targetE.prev == nil || targetE.next == nil {
		return nil, notInList
	}

	// mem address compare
	switch {
	case targetE.prev == l.getRoot() && targetE.next == l.getRoot():
		// targetE is the first one and the last one
		if l.root.next != targetE || l.root.prev != targetE {
			return nil, notInList
		}
		return targetE, theOnlyOne
	case targetE.prev == l.getRoot() && targetE.next != l.getRoot():
		// targetE is the first one but not the last one
		if targetE.next.prev != targetE {
			return nil, notInList
		}
		return targetE, theFirstButNotTheLast
	case targetE.prev != l.getRoot() && targetE.next == l.getRoot():
		// targetE is the last one but not the first one
		if targetE.prev.next != targetE {
			return nil, notInList
		}
		return targetE, theLastButNotTheFirst
	case targetE.prev != l.getRoot() && targetE.next != l.getRoot():
		// targetE is neither the first one nor the last one
		if targetE.prev.next != targetE || targetE.next.prev != targetE {
			return nil, notInList
		}
		return targetE, inMiddle
	}
	return nil, notInList
}

// insertAfter links newE immediately after at inside the sentinel ring.
func (l *doublyLinkedList[T]) insertAfter(newE, at *NodeElement[T]) *NodeElement[T] {
	newE.listRef = l
	newE.prev = at
	newE.next = at.next
	at.next.prev = newE
	at.next = newE
	l.len++
	return newE
}

func (l *doublyLinkedList[T]) unlink(e *NodeElement[T]) *NodeElement[T] {
	e.prev.next = e.next
	e.next.prev = e.prev
	// avoid memory leaks
	e.listRef = nil
	e.next = nil
	e.prev = nil
	l.len--
	return e
}

func (l *doublyLinkedList[T]) AppendValue(values ...T) []*NodeElement[T] {
	if len(values) <= 0 {
		return nil
	}
	newElements := make([]*NodeElement[T], 0, len(values))
	for _, v := range values {
		newElements = append(newElements, l.insertAfter(newNodeElement(v, l), l.root.prev))
	}
	return newElements
}

func (l *doublyLinkedList[T]) InsertAfter(v T, dstE *NodeElement[T]) *NodeElement[T] {
	at, status := l.checkElement(dstE)
	if status == notInList || status == emptyList {
		return nil
	}
	return l.insertAfter(newNodeElement(v, l), at)
}

func (l *doublyLinkedList[T]) InsertBefore(v T, dstE *NodeElement[T]) *NodeElement[T] {
	at, status := l.checkElement(dstE)
	if status == notInList || status == emptyList {
		return nil
	}
	return l.insertAfter(newNodeElement(v, l), at.prev)
}

func (l *doublyLinkedList[T]) Remove(targetE *NodeElement[T]) *NodeElement[T] {
	if l == nil || l.root == nil || l.len == 0 {
		return nil
	}

	at, status := l.checkElement(targetE)
	switch status {
	case theOnlyOne, theFirstButNotTheLast, theLastButNotTheFirst, inMiddle:
		return l.unlink(at)
	default:

	}
	return nil
}

// Foreach, allows remove linked list elements while iterating.
func (l *doublyLinkedList[T]) Foreach(fn func(idx int64, e *NodeElement[T]) error) error {
	if l == nil || l.root == nil || fn == nil || l.len == 0 {
		return nil
	}

	var (
		iterator       = l.root.next
		idx      int64 = 0
	)
	for iterator != l.root {
		n := iterator.next
		if err := fn(idx, iterator); err != nil {
			return err
		}
		iterator = n
		idx++
	}
	return nil
}

// ReverseForeach, allows remove linked list elements while iterating.
func (l *doublyLinkedList[T]) ReverseForeach(fn func(idx int64, e *NodeElement[T])) {
	if l == nil || l.root == nil || fn == nil || l.len == 0 {
		return
	}

	var (
		iterator       = l.root.prev
		idx      int64 = 0
	)
	for iterator != l.root {
		p := iterator.prev
		fn(idx, iterator)
		iterator = p
		idx++
	}
}

func (l *doublyLinkedList[T]) FindFirst(targetV T, compareFn ...func(e *NodeElement[T]) bool) (*NodeElement[T], bool) {
	if l == nil || l.root == nil || l.len == 0 {
		return nil, false
	}

	if len(compareFn) <= 0 {
		compareFn = []func(e *NodeElement[T]) bool{
			func(e *NodeElement[T]) bool {
				return e.Value == targetV
			},
		}
	}

	for iterator := l.root.next; iterator != l.root; iterator = iterator.next {
		if compareFn[0](iterator) {
			return iterator, true
		}
	}
	return nil, false
}

func (l *doublyLinkedList[T]) Front() *NodeElement[T] {
	if l == nil || l.root == nil || l.len == 0 {
		return nil
	}
	return l.root.next
}

func (l *doublyLinkedList[T]) Back() *NodeElement[T] {
	if l == nil || l.root == nil || l.len == 0 {
		return nil
	}
	return l.root.prev
}

func (l *doublyLinkedList[T]) PushFront(v T) *NodeElement[T] {
	if l == nil || l.root == nil {
		return nil
	}
	return l.insertAfter(newNodeElement(v, l), l.root)
}

func (l *doublyLinkedList[T]) PushBack(v T) *NodeElement[T] {
	if l == nil || l.root == nil {
		return nil
	}
	return l.insertAfter(newNodeElement(v, l), l.root.prev)
}

func (l *doublyLinkedList[T]) PopFront() (T, error) {
	if l == nil || l.root == nil || l.len == 0 {
		var zero T
		return zero, ErrListIsEmpty
	}
	return l.unlink(l.root.next).Value, nil
}

func (l *doublyLinkedList[T]) PopBack() (T, error) {
	if l == nil || l.root == nil || l.len == 0 {
		var zero T
		return zero, ErrListIsEmpty
	}
	return l.unlink(l.root.prev).Value, nil
}

// Splice moves every element of src to the back of l, keeping element
// identity so outstanding handles stay valid. src is drained. The
// relink walks src once to retarget each element's list reference.
func (l *doublyLinkedList[T]) Splice(src LinkedList[T]) {
	if l == nil || l.root == nil {
		return
	}

	dl, ok := src.(*doublyLinkedList[T])
	if !ok || dl == nil || dl.getRoot() == l.getRoot() || dl.len == 0 {
		// avoid type mismatch and self splice
		return
	}

	for e := dl.root.next; e != dl.root; {
		next := e.next
		e.listRef = l
		e.prev = nil
		e.next = nil
		l.insertAfter(e, l.root.prev)
		e = next
	}
	dl.init()
}
