package Trees

import "fmt"

// InvalidArgumentError is returned when a null-equivalent element (nil pointer,
// nil interface, nil map/slice/func/chan, or NaN) is given to a mutating method.
type InvalidArgumentError struct {
	Op string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: element is absent", e.Op)
}

// NoSuchElementError is returned when asking an empty tree for its root, first
// or last element, or when following a parent/child link that isn't there.
type NoSuchElementError struct {
	What string
}

func (e *NoSuchElementError) Error() string {
	return "no such element: " + e.What
}

// UnsupportedOperationError is returned by operations a tree variant refuses,
// e.g. rotating a RedBlackTree from outside.
type UnsupportedOperationError struct {
	Op string
}

func (e *UnsupportedOperationError) Error() string {
	return e.Op + " is not supported on this tree"
}

// CapacityError is returned when the slot index type can't address another node.
type CapacityError struct {
	Max uint64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("tree is full: at most %d nodes", e.Max)
}

// InvariantError reports a broken structural or coloring rule found by Verify.
// Seeing one means the tree is corrupt.
type InvariantError struct {
	Rule string
	At   string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant %q violated at %s", e.Rule, e.At)
}
