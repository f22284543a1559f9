package Trees

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Vertex is a read-only view of one node. It can't change the tree; it follows
// the node through rotations but goes stale once that node's slot is deleted.
// The zero Vertex belongs to no tree.
type Vertex[T any, S constraints.Unsigned] struct {
	u *base[T, S]
	i S
}

// Get the element held by the node.
func (x Vertex[T, S]) Get() T {
	return x.u.slots[x.i].v
}

func (x Vertex[T, S]) HasParent() bool {
	return x.u.slots[x.i].p != 0
}

func (x Vertex[T, S]) HasLeft() bool {
	return x.u.slots[x.i].l != 0
}

func (x Vertex[T, S]) HasRight() bool {
	return x.u.slots[x.i].r != 0
}

func (x Vertex[T, S]) Parent() (Vertex[T, S], error) {
	return x.follow(x.u.slots[x.i].p, "parent")
}

func (x Vertex[T, S]) Left() (Vertex[T, S], error) {
	return x.follow(x.u.slots[x.i].l, "left child")
}

func (x Vertex[T, S]) Right() (Vertex[T, S], error) {
	return x.follow(x.u.slots[x.i].r, "right child")
}

func (x Vertex[T, S]) follow(i S, what string) (Vertex[T, S], error) {
	if i == 0 {
		return Vertex[T, S]{}, &NoSuchElementError{fmt.Sprintf("%s of %v", what, x)}
	}
	return Vertex[T, S]{x.u, i}, nil
}

// Height of the subtree rooted here, in edges. A leaf has height 0.
func (x Vertex[T, S]) Height() int {
	return x.u.height(x.i)
}

// Depth of the node; the root has depth 0.
func (x Vertex[T, S]) Depth() int {
	return x.u.depth(x.i)
}

// String is the element, wrapped as R{v} or B{v} when the node is colored.
func (x Vertex[T, S]) String() string {
	return x.u.label(x.i)
}

func (u *base[T, S]) label(i S) string {
	if c := u.slots[i].c; c != None {
		return fmt.Sprintf("%v{%v}", c, u.slots[i].v)
	}
	return fmt.Sprint(u.slots[i].v)
}

// VertexView is the capability every tree variant's vertices share.
type VertexView[T any] interface {
	Get() T
	HasParent() bool
	HasLeft() bool
	HasRight() bool
	Height() int
	Depth() int
}

var _ VertexView[int] = Vertex[int, uint]{}
