package tree

import (
	"errors"

	"github.com/benz9527/xcontainer/lib/infra"
)

// go install golang.org/x/tools/cmd/stringer@latest

//go:generate stringer -type=RBColor
type RBColor uint8

const (
	Black RBColor = iota
	Red
)

//go:generate stringer -type=RBDirection
type RBDirection int8

const (
	Left RBDirection = -1 + iota
	Root
	Right
)

var (
	ErrTreeIsFull         = errors.New("[rbtree] max size reached")
	ErrInvalidIterator    = errors.New("[rbtree] iterator does not reference this tree")
	ErrIteratorOutOfRange = errors.New("[rbtree] dereference of end iterator")
)

// InsertResult reports one element of a bulk insertion. Inserted is
// false when the unique variant found the key already present; Iter
// then references the node holding the existing key.
type InsertResult[K infra.OrderedKey] struct {
	Iter     Iterator[K]
	Inserted bool
}
