package Trees

import (
	"golang.org/x/exp/constraints"
)

// Color of a node. Nodes of an OrderedTree stay None; nodes of a RedBlackTree
// are always Red or Black once Insert returns.
type Color byte

const (
	None Color = iota
	Red
	Black
)

func (c Color) String() string {
	switch c {
	case Red:
		return "R"
	case Black:
		return "B"
	}
	return "-"
}

// A node in the tree.
// slots[0] is the nil loopback shared by every absent link; its fields are never written.
type slot[T any, S constraints.Unsigned] struct {
	v       T
	l, r, p S
	c       Color
}

// base is the node arena shared by all tree variants. Links are slot indexes,
// so the parent link is a plain back reference and never keeps a node alive.
type base[T any, S constraints.Unsigned] struct {
	root, free S // free is the beginning of the linked list that contains all the free indexes; slot.l represents next.
	sz         S
	slots      []slot[T, S]
}

func makeBase[T any, S constraints.Unsigned](hint S) base[T, S] {
	return base[T, S]{slots: make([]slot[T, S], 1, int(hint)+1)}
}

// newSlot returns the index of a fresh leaf holding v. Holes are filled before the arena grows.
func (u *base[T, S]) newSlot(v T, c Color) (S, error) {
	if len(u.slots) == 0 {
		u.slots = make([]slot[T, S], 1, 8)
	}
	i := u.popFree()
	if i == 0 {
		if uint64(len(u.slots)) > uint64(^S(0)) {
			return 0, &CapacityError{uint64(^S(0))}
		}
		i = S(len(u.slots))
		u.slots = append(u.slots, slot[T, S]{})
	}
	u.slots[i] = slot[T, S]{v: v, c: c}
	return i, nil
}

// addFree index once. The element is released.
func (u *base[T, S]) addFree(a S) {
	u.slots[a] = slot[T, S]{l: u.free}
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[T, S]) popFree() S {
	b := u.free
	if b != 0 {
		u.free = u.slots[b].l
	}
	return b
}

// child of i on the given side.
func (u *base[T, S]) child(i S, left bool) S {
	if left {
		return u.slots[i].l
	}
	return u.slots[i].r
}

func (u *base[T, S]) isLeft(i S) bool {
	p := u.slots[i].p
	return p != 0 && u.slots[p].l == i
}

// replaceChild makes c take old's place under old's parent, or as the root.
func (u *base[T, S]) replaceChild(old, c S) {
	if p := u.slots[old].p; p == 0 {
		u.root = c
	} else if u.slots[p].l == old {
		u.slots[p].l = c
	} else {
		u.slots[p].r = c
	}
	if c != 0 {
		u.slots[c].p = u.slots[old].p
	}
}

// rotateLeft around n. The right child takes n's place and n becomes its left child.
// No-op returning false if n has no right child.
// Time: O(1); Space: O(1)
func (u *base[T, S]) rotateLeft(n S) bool {
	rc := u.slots[n].r
	if rc == 0 {
		return false
	}
	u.replaceChild(n, rc)
	moved := u.slots[rc].l
	u.slots[n].r = moved
	if moved != 0 {
		u.slots[moved].p = n
	}
	u.slots[rc].l = n
	u.slots[n].p = rc
	return true
}

// rotateRight around n. The left child takes n's place and n becomes its right child.
// No-op returning false if n has no left child.
// Time: O(1); Space: O(1)
func (u *base[T, S]) rotateRight(n S) bool {
	lc := u.slots[n].l
	if lc == 0 {
		return false
	}
	u.replaceChild(n, lc)
	moved := u.slots[lc].r
	u.slots[n].l = moved
	if moved != 0 {
		u.slots[moved].p = n
	}
	u.slots[lc].r = n
	u.slots[n].p = lc
	return true
}

// rotate n toward the given side: rotateLeft when left is true.
func (u *base[T, S]) rotate(n S, left bool) {
	if left {
		u.rotateLeft(n)
	} else {
		u.rotateRight(n)
	}
}

// hole is what splice leaves behind: the spliced node hung from parent on the
// left or right, and child (0 when the node was a leaf) now hangs there instead.
type hole[S constraints.Unsigned] struct {
	parent, child S
	left          bool
}

// splice removes a node with at most one child, promoting the child into its
// place, and frees the slot.
func (u *base[T, S]) splice(i S) hole[S] {
	n := u.slots[i]
	c := n.l
	if c == 0 {
		c = n.r
	}
	h := hole[S]{parent: n.p, child: c, left: u.isLeft(i)}
	u.replaceChild(i, c)
	u.addFree(i)
	return h
}

// swapPredecessor exchanges the element of i, which has two children, with its
// in-order predecessor and returns the predecessor's slot. That slot has no right child.
func (u *base[T, S]) swapPredecessor(i S) S {
	j := u.maximum(u.slots[i].l)
	u.slots[i].v, u.slots[j].v = u.slots[j].v, u.slots[i].v
	return j
}

func (u *base[T, S]) minimum(i S) S {
	for u.slots[i].l != 0 {
		i = u.slots[i].l
	}
	return i
}

func (u *base[T, S]) maximum(i S) S {
	for u.slots[i].r != 0 {
		i = u.slots[i].r
	}
	return i
}

// height of the subtree at i counted in edges; -1 for the empty subtree. Recursive.
func (u *base[T, S]) height(i S) int {
	if i == 0 {
		return -1
	}
	return 1 + max(u.height(u.slots[i].l), u.height(u.slots[i].r))
}

func (u *base[T, S]) depth(i S) (d int) {
	for i = u.slots[i].p; i != 0; i = u.slots[i].p {
		d++
	}
	return
}

// Size of the tree.
// Time: O(1); Space: O(1)
func (u *base[T, S]) Size() S {
	return u.sz
}

// Len is Size as an int.
func (u *base[T, S]) Len() int {
	return int(u.sz)
}

func (u *base[T, S]) Empty() bool {
	return u.root == 0
}

// Height of the tree in edges, -1 when empty.
// Time: O(n)
func (u *base[T, S]) Height() int {
	return u.height(u.root)
}

// Clear the tree. The arena keeps its capacity.
func (u *base[T, S]) Clear() {
	clear(u.slots)
	if len(u.slots) > 0 {
		u.slots = u.slots[:1]
	}
	u.root, u.free, u.sz = 0, 0, 0
}

// Root of the tree.
func (u *base[T, S]) Root() (Vertex[T, S], error) {
	if u.root == 0 {
		return Vertex[T, S]{}, &NoSuchElementError{"root of empty tree"}
	}
	return u.vertex(u.root), nil
}

// First element in order.
// Time: O(D); Space: O(1)
func (u *base[T, S]) First() (T, error) {
	if u.root == 0 {
		return *new(T), &NoSuchElementError{"first of empty tree"}
	}
	return u.slots[u.minimum(u.root)].v, nil
}

// Last element in order.
// Time: O(D); Space: O(1)
func (u *base[T, S]) Last() (T, error) {
	if u.root == 0 {
		return *new(T), &NoSuchElementError{"last of empty tree"}
	}
	return u.slots[u.maximum(u.root)].v, nil
}

func (u *base[T, S]) vertex(i S) Vertex[T, S] {
	return Vertex[T, S]{u, i}
}

// owns reports whether x is a live vertex of this tree.
func (u *base[T, S]) owns(x Vertex[T, S]) bool {
	return x.u == u && x.i != 0 && int(x.i) < len(u.slots) && (x.i == u.root || u.slots[x.i].p != 0)
}
