package Trees

import "iter"

// Tree is the collection view shared by OrderedTree and RedBlackTree.
// Elements are ordered by the tree's comparator and duplicates are kept.
// Methods that return an error fail before touching the tree.
// None of the implementations are safe for concurrent use; callers that
// share a tree across goroutines must serialize access themselves.
type Tree[T any] interface {
	//Add v to the Tree. Fails with *InvalidArgumentError if v is absent.
	Add(v T) error
	//Delete one element equal to v. Returning true if one was found.
	Delete(v T) bool
	//Contains an element equal to v.
	Contains(v T) bool
	//First element in order. *NoSuchElementError when empty.
	First() (T, error)
	//Last element in order. *NoSuchElementError when empty.
	Last() (T, error)
	//Len is the number of elements.
	Len() int
	//Empty reports whether the tree has no elements.
	Empty() bool
	//Clear removes every element.
	Clear()
	//Height of the tree in edges, -1 when empty.
	Height() int
	//All elements in order. The tree mustn't be modified during the iteration.
	All() iter.Seq[T]
	//Verify returns an *InvariantError if the structure is corrupt.
	Verify() error
	String() string
}

var (
	_ Tree[int] = (*OrderedTree[int, uint])(nil)
	_ Tree[int] = (*RedBlackTree[int, uint])(nil)
)
