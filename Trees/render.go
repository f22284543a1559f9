package Trees

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	Go_Trees "github.com/g-m-twostay/go-trees"
)

// String draws the tree one node per line, children below their parent:
//
//	B{20}
//	├─›R{10}
//	└─»R{30}
//
// "›" leads to a left child and "»" to a right child. Empty trees are "".
// Recursive.
func (u *base[T, S]) String() string {
	if u.root == 0 {
		return ""
	}
	var sb strings.Builder
	open := Go_Trees.NewBitArray(u.height(u.root) + 1) //open.Get(l) means a later sibling at depth l still needs its │
	u.render(&sb, u.root, 0, open)
	return sb.String()
}

func (u *base[T, S]) render(sb *strings.Builder, i S, l int, open Go_Trees.BitArray) {
	sb.WriteString(u.label(i))
	sb.WriteByte('\n')
	open.Up(l)
	n := u.slots[i]
	if n.l != 0 {
		u.indent(sb, l, open)
		if n.r != 0 {
			sb.WriteString("├─›")
		} else {
			sb.WriteString("└─›")
			open.Down(l)
		}
		u.render(sb, n.l, l+1, open)
	}
	if n.r != 0 {
		u.indent(sb, l, open)
		sb.WriteString("└─»")
		open.Down(l)
		u.render(sb, n.r, l+1, open)
	}
}

func (u *base[T, S]) indent(sb *strings.Builder, l int, open Go_Trees.BitArray) {
	for i := 0; i < l; i++ {
		if open.Get(i) {
			sb.WriteString("│  ")
		} else {
			sb.WriteString("   ")
		}
	}
}

// Digest of the tree's shape, colors and elements, printed with %v. Equal trees
// have equal digests.
// Time: O(n)
func (u *base[T, S]) Digest() uint64 {
	d := xxhash.New()
	var buf []byte
	u.PreOrder(func(x Vertex[T, S]) bool {
		n := u.slots[x.i]
		var shape byte
		if n.l != 0 {
			shape |= 1
		}
		if n.r != 0 {
			shape |= 2
		}
		buf = append(buf[:0], shape, byte(n.c))
		buf = fmt.Append(buf, n.v)
		buf = binary.AppendUvarint(buf, uint64(len(buf)))
		d.Write(buf)
		return true
	})
	return d.Sum64()
}

// equal compares shapes and elements, and colors if colors is true.
func (u *base[T, S]) equal(o *base[T, S], cmp func(T, T) int, colors bool) bool {
	if u.sz != o.sz {
		return false
	}
	var eq func(a, b S) bool
	eq = func(a, b S) bool {
		if a == 0 || b == 0 {
			return a == b
		}
		x, y := u.slots[a], o.slots[b]
		if cmp(x.v, y.v) != 0 || colors && x.c != y.c {
			return false
		}
		return eq(x.l, y.l) && eq(x.r, y.r)
	}
	return eq(u.root, o.root)
}
