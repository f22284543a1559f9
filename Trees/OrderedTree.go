package Trees

import (
	"cmp"
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// OrderedTree is an unbalanced binary search tree. Equal elements are kept,
// each new one going to the right of the ones already present, so an in-order
// walk is non-decreasing and stable with respect to insertion.
// T is the type of values it will hold, S is the type of the slot indexes and
// bounds the number of nodes to max(S).
// The zero value is an empty tree once Cmp is set.
type OrderedTree[T any, S constraints.Unsigned] struct {
	base[T, S]
	//returns negative number if first < second, 0 if first==second, positive number if first>second. see cmp.Compare for an example.
	Cmp func(T, T) int
}

// NewOrdered tree for cmp.Ordered elements; hint is the expected size.
func NewOrdered[T cmp.Ordered, S constraints.Unsigned](hint S) *OrderedTree[T, S] {
	return &OrderedTree[T, S]{makeBase[T](hint), cmp.Compare[T]}
}

// NewOrderedC is NewOrdered with a custom comparator.
func NewOrderedC[T any, S constraints.Unsigned](hint S, cmp func(T, T) int) *OrderedTree[T, S] {
	return &OrderedTree[T, S]{makeBase[T](hint), cmp}
}

// OrderedFrom inserts every element of vs, in order, into a new tree.
func OrderedFrom[T cmp.Ordered, S constraints.Unsigned](vs []T) (*OrderedTree[T, S], error) {
	u := NewOrdered[T](S(len(vs)))
	for _, v := range vs {
		if err := u.Add(v); err != nil {
			return nil, err
		}
	}
	return u, nil
}

// absent reports whether v is null-equivalent: a nil pointer, interface, map,
// slice, func or chan, or a NaN which has no place in a total order.
func absent[T any](v T) bool {
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	}
	return false
}

// insert links a new leaf holding v with color c and returns its slot.
// Strictly smaller goes left, greater or equal goes right.
// Time: O(D)
func (u *OrderedTree[T, S]) insert(v T, c Color) (S, error) {
	if absent(v) {
		return 0, &InvalidArgumentError{"insert"}
	}
	var p S
	left := false
	for cur := u.root; cur != 0; {
		p = cur
		if left = u.Cmp(v, u.slots[cur].v) < 0; left {
			cur = u.slots[cur].l
		} else {
			cur = u.slots[cur].r
		}
	}
	n, err := u.newSlot(v, c)
	if err != nil {
		return 0, err
	}
	u.slots[n].p = p
	if p == 0 {
		u.root = n
	} else if left {
		u.slots[p].l = n
	} else {
		u.slots[p].r = n
	}
	u.sz++
	return n, nil
}

// Insert v and return the vertex that now holds it.
// Time: O(D)
func (u *OrderedTree[T, S]) Insert(v T) (Vertex[T, S], error) {
	n, err := u.insert(v, None)
	if err != nil {
		return Vertex[T, S]{}, err
	}
	return u.vertex(n), nil
}

// Add [Tree.Add]
func (u *OrderedTree[T, S]) Add(v T) error {
	_, err := u.insert(v, None)
	return err
}

// search returns the first slot on the search path holding an element equal to v, or 0.
// Time: O(D); Space: O(1)
func (u *OrderedTree[T, S]) search(v T) S {
	if absent(v) {
		return 0
	}
	for cur := u.root; cur != 0; {
		if order := u.Cmp(v, u.slots[cur].v); order < 0 {
			cur = u.slots[cur].l
		} else if order > 0 {
			cur = u.slots[cur].r
		} else {
			return cur
		}
	}
	return 0
}

// Search for a vertex holding an element equal to v.
func (u *OrderedTree[T, S]) Search(v T) (Vertex[T, S], bool) {
	if i := u.search(v); i != 0 {
		return u.vertex(i), true
	}
	return Vertex[T, S]{}, false
}

// Contains [Tree.Contains]
func (u *OrderedTree[T, S]) Contains(v T) bool {
	return u.search(v) != 0
}

// Delete [Tree.Delete]. A node with two children trades its element with its
// in-order predecessor, which is then spliced out instead.
// Time: O(D)
func (u *OrderedTree[T, S]) Delete(v T) bool {
	i := u.search(v)
	if i == 0 {
		return false
	}
	if u.slots[i].l != 0 && u.slots[i].r != 0 {
		i = u.swapPredecessor(i)
	}
	u.splice(i)
	u.sz--
	return true
}

// RotateLeft around x: its right child takes its place. Nothing happens if x
// has no right child. The in-order sequence is unchanged.
// Time: O(1)
func (u *OrderedTree[T, S]) RotateLeft(x Vertex[T, S]) error {
	if !u.owns(x) {
		return &NoSuchElementError{"vertex is not in this tree"}
	}
	u.rotateLeft(x.i)
	return nil
}

// RotateRight around x: its left child takes its place. Nothing happens if x
// has no left child.
// Time: O(1)
func (u *OrderedTree[T, S]) RotateRight(x Vertex[T, S]) error {
	if !u.owns(x) {
		return &NoSuchElementError{"vertex is not in this tree"}
	}
	u.rotateRight(x.i)
	return nil
}

// Equal reports whether both trees have the same shape with equal elements at
// the same places. Colors are ignored.
func (u *OrderedTree[T, S]) Equal(o *OrderedTree[T, S]) bool {
	return u.equal(&o.base, u.Cmp, false)
}

// Verify checks links, order and size.
func (u *OrderedTree[T, S]) Verify() error {
	return u.verify(u.Cmp)
}
