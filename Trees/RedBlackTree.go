package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// RedBlackTree is an OrderedTree that recolors and rotates after every
// insertion and deletion so that:
//  1. every node is Red or Black;
//  2. the root is Black;
//  3. absent children count as Black;
//  4. a Red node has two Black children;
//  5. every path from a node down to an absent child has the same number of Black nodes.
//
// The height is therefore at most 2*log2(n+1).
// Rotations are reserved to the tree itself: RotateLeft and RotateRight always fail.
type RedBlackTree[T any, S constraints.Unsigned] struct {
	OrderedTree[T, S]
}

// NewRedBlack tree for cmp.Ordered elements; hint is the expected size.
func NewRedBlack[T cmp.Ordered, S constraints.Unsigned](hint S) *RedBlackTree[T, S] {
	return &RedBlackTree[T, S]{OrderedTree[T, S]{makeBase[T](hint), cmp.Compare[T]}}
}

// NewRedBlackC is NewRedBlack with a custom comparator.
func NewRedBlackC[T any, S constraints.Unsigned](hint S, cmp func(T, T) int) *RedBlackTree[T, S] {
	return &RedBlackTree[T, S]{OrderedTree[T, S]{makeBase[T](hint), cmp}}
}

// RedBlackFrom inserts every element of vs, in order, into a new tree.
func RedBlackFrom[T cmp.Ordered, S constraints.Unsigned](vs []T) (*RedBlackTree[T, S], error) {
	u := NewRedBlack[T](S(len(vs)))
	for _, v := range vs {
		if err := u.Add(v); err != nil {
			return nil, err
		}
	}
	return u, nil
}

func (u *RedBlackTree[T, S]) isRed(i S) bool {
	return i != 0 && u.slots[i].c == Red
}

func (u *RedBlackTree[T, S]) isBlack(i S) bool {
	return i == 0 || u.slots[i].c == Black
}

// Insert v and return the vertex that now holds it.
// Time: O(log n)
func (u *RedBlackTree[T, S]) Insert(v T) (Vertex[T, S], error) {
	n, err := u.insert(v, Red)
	if err != nil {
		return Vertex[T, S]{}, err
	}
	u.fixInsert(n)
	return u.vertex(n), nil
}

// Add [Tree.Add]
func (u *RedBlackTree[T, S]) Add(v T) error {
	_, err := u.Insert(v)
	return err
}

// fixInsert restores the invariants after v was linked as a Red leaf.
// Rotations never move elements between slots, so v keeps holding the new element.
func (u *RedBlackTree[T, S]) fixInsert(v S) {
	for {
		p := u.slots[v].p
		if p == 0 {
			u.slots[v].c = Black
			return
		}
		if u.isBlack(p) {
			return
		}
		// p is Red so it isn't the root and a exists.
		a := u.slots[p].p
		pLeft := u.slots[a].l == p
		if t := u.child(a, !pLeft); u.isRed(t) {
			// Red uncle: push the Red up two levels.
			u.slots[t].c, u.slots[p].c, u.slots[a].c = Black, Black, Red
			v = a
			continue
		}
		if vLeft := u.slots[p].l == v; vLeft != pLeft {
			// Zig-zag: straighten it so v, p and a are in a line.
			u.rotate(p, pLeft)
			v, p = p, v
		}
		u.slots[p].c, u.slots[a].c = Black, Red
		u.rotate(a, !pLeft)
		return
	}
}

// Delete [Tree.Delete].
// Time: O(log n)
func (u *RedBlackTree[T, S]) Delete(v T) bool {
	i := u.search(v)
	if i == 0 {
		return false
	}
	if u.slots[i].l != 0 && u.slots[i].r != 0 {
		i = u.swapPredecessor(i)
	}
	c := u.slots[i].c
	h := u.splice(i)
	u.sz--
	switch {
	case c == Red:
		// A Red node with at most one child is a leaf and carried no black-height.
	case u.isRed(h.child):
		u.slots[h.child].c = Black
	default:
		u.fixDelete(h.parent, h.left)
	}
	return true
}

// fixDelete repairs a double-black deficiency at the left or right child
// position of p; that position may be empty.
func (u *RedBlackTree[T, S]) fixDelete(p S, left bool) {
	for p != 0 {
		h := u.child(p, !left)
		if u.isRed(h) {
			// Red sibling: make it the parent so the new sibling is Black.
			u.slots[h].c, u.slots[p].c = Black, Red
			u.rotate(p, left)
			h = u.child(p, !left)
		}
		// The deficient side is one Black short, so h is a real node.
		near, far := u.child(h, left), u.child(h, !left)
		if u.isBlack(near) && u.isBlack(far) {
			u.slots[h].c = Red
			if u.isRed(p) {
				u.slots[p].c = Black
				return
			}
			v := p
			p = u.slots[v].p
			left = p != 0 && u.slots[p].l == v
			continue
		}
		if u.isBlack(far) {
			// Near child Red, far Black: rotate it into the far position.
			u.slots[near].c, u.slots[h].c = Black, Red
			u.rotate(h, !left)
			h = u.child(p, !left)
			far = u.child(h, !left)
		}
		u.slots[h].c, u.slots[p].c = u.slots[p].c, Black
		u.slots[far].c = Black
		u.rotate(p, left)
		return
	}
	if u.root != 0 {
		u.slots[u.root].c = Black
	}
}

// RotateLeft always fails: the caller couldn't restore the balance afterward.
func (u *RedBlackTree[T, S]) RotateLeft(Vertex[T, S]) error {
	return &UnsupportedOperationError{"RotateLeft"}
}

// RotateRight always fails: the caller couldn't restore the balance afterward.
func (u *RedBlackTree[T, S]) RotateRight(Vertex[T, S]) error {
	return &UnsupportedOperationError{"RotateRight"}
}

// Color of a vertex of this tree.
func (u *RedBlackTree[T, S]) Color(x Vertex[T, S]) (Color, error) {
	if !u.owns(x) {
		return None, &NoSuchElementError{"vertex is not in this tree"}
	}
	return u.slots[x.i].c, nil
}

// BlackHeight of the root: the number of Black nodes on any path from the root
// down to an absent child, the root excluded. 0 for an empty tree.
func (u *RedBlackTree[T, S]) BlackHeight() (h int) {
	if u.root == 0 {
		return 0
	}
	for i := u.slots[u.root].l; i != 0; i = u.slots[i].l {
		if u.slots[i].c == Black {
			h++
		}
	}
	// the absent child itself.
	return h + 1
}

// Equal reports whether both trees have the same shape, equal elements and colors.
func (u *RedBlackTree[T, S]) Equal(o *RedBlackTree[T, S]) bool {
	return u.equal(&o.base, u.Cmp, true)
}

// Verify checks links, order, size and the five red-black rules.
func (u *RedBlackTree[T, S]) Verify() error {
	if err := u.verify(u.Cmp); err != nil {
		return err
	}
	return u.verifyColors()
}
