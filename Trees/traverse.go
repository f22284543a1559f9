package Trees

import (
	"iter"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/go-trees/Queues"
)

// The walks below hand out read-only vertices and stop as soon as f returns false.
// The tree mustn't be modified during a walk.

// PreOrder walk: node, left subtree, right subtree.
// Time: O(n); Space: O(D)
func (u *base[T, S]) PreOrder(f func(Vertex[T, S]) bool) {
	if u.root == 0 {
		return
	}
	st := arraystack.New()
	st.Push(u.root)
	for !st.Empty() {
		top, _ := st.Pop()
		curI := top.(S)
		if !f(u.vertex(curI)) {
			return
		}
		if r := u.slots[curI].r; r != 0 {
			st.Push(r)
		}
		if l := u.slots[curI].l; l != 0 {
			st.Push(l)
		}
	}
}

// InOrder walk: left subtree, node, right subtree. Elements come out non-decreasing.
// Time: O(n); Space: O(D)
func (u *base[T, S]) InOrder(f func(Vertex[T, S]) bool) {
	st := arraystack.New()
	for curI := u.root; curI != 0 || !st.Empty(); {
		if curI != 0 {
			st.Push(curI)
			curI = u.slots[curI].l
			continue
		}
		top, _ := st.Pop()
		curI = top.(S)
		if !f(u.vertex(curI)) {
			return
		}
		curI = u.slots[curI].r
	}
}

// PostOrder walk: left subtree, right subtree, node.
// Time: O(n); Space: O(D)
func (u *base[T, S]) PostOrder(f func(Vertex[T, S]) bool) {
	st := arraystack.New()
	var last S
	for curI := u.root; curI != 0 || !st.Empty(); {
		if curI != 0 {
			st.Push(curI)
			curI = u.slots[curI].l
			continue
		}
		top, _ := st.Peek()
		t := top.(S)
		if r := u.slots[t].r; r != 0 && r != last {
			curI = r
			continue
		}
		if !f(u.vertex(t)) {
			return
		}
		last = t
		st.Pop()
	}
}

// BFS walk, level by level, left to right.
// Time: O(n); Space: O(width)
func (u *base[T, S]) BFS(f func(Vertex[T, S]) bool) {
	if u.root == 0 {
		return
	}
	q := Queues.MakeArrayQueue[S](16)
	q.Push(u.root)
	for !q.Empty() {
		curI, _ := q.Pop()
		if !f(u.vertex(curI)) {
			return
		}
		if l := u.slots[curI].l; l != 0 {
			q.Push(l)
		}
		if r := u.slots[curI].r; r != 0 {
			q.Push(r)
		}
	}
}

// All [Tree.All]
func (u *base[T, S]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		u.InOrder(func(x Vertex[T, S]) bool {
			return yield(x.Get())
		})
	}
}
