package Trees

import (
	"math/rand"

	"golang.org/x/exp/constraints"
)

var rg = *rand.New(rand.NewSource(0))

// shape is a plain copy of a tree used for diffs.
type shape struct {
	V    int
	C    string
	L, R *shape
}

func shapeOf[S constraints.Unsigned](u *base[int, S], i S) *shape {
	if i == 0 {
		return nil
	}
	n := u.slots[i]
	s := &shape{V: n.v, L: shapeOf(u, n.l), R: shapeOf(u, n.r)}
	if n.c != None {
		s.C = n.c.String()
	}
	return s
}

func red(v int, l, r *shape) *shape   { return &shape{v, "R", l, r} }
func black(v int, l, r *shape) *shape { return &shape{v, "B", l, r} }
func plain(v int, l, r *shape) *shape { return &shape{v, "", l, r} }

var cache [2]uint

func (u *base[T, S]) _depth(curI S, d byte) {
	cur := u.slots[curI]
	if cur.l != 0 {
		u._depth(cur.l, d+1)
	}
	if cur.r != 0 {
		u._depth(cur.r, d+1)
	}
	if cur.l == 0 && cur.r == 0 {
		cache[0]++
		cache[1] += uint(d)
	}
}

// depth is the average depth of the leaves.
func (u *base[T, S]) avgDepth() float32 {
	if u.root == 0 {
		return 0
	}
	cache[0], cache[1] = 0, 0
	u._depth(u.root, 1)
	return float32(cache[1]) / float32(cache[0])
}
