package Trees

import "fmt"

// verify checks that every link has a matching back link, that the in-order
// walk is non-decreasing under cmp, and that the node count matches Size.
// Time: O(n)
func (u *base[T, S]) verify(cmp func(T, T) int) error {
	if u.root == 0 {
		if u.sz != 0 {
			return &InvariantError{"size", fmt.Sprintf("empty tree with size %d", u.sz)}
		}
		return nil
	}
	if p := u.slots[u.root].p; p != 0 {
		return &InvariantError{"parent link", fmt.Sprintf("root %s has parent %d", u.label(u.root), p)}
	}
	var err error
	var count S
	var prev S
	u.InOrder(func(x Vertex[T, S]) bool {
		count++
		n := u.slots[x.i]
		for _, c := range [2]S{n.l, n.r} {
			if c != 0 && u.slots[c].p != x.i {
				err = &InvariantError{"parent link", fmt.Sprintf("child %s of %s", u.label(c), u.label(x.i))}
				return false
			}
		}
		if prev != 0 && cmp(u.slots[prev].v, n.v) > 0 {
			err = &InvariantError{"order", fmt.Sprintf("%s before %s", u.label(prev), u.label(x.i))}
			return false
		}
		prev = x.i
		return true
	})
	if err == nil && count != u.sz {
		err = &InvariantError{"size", fmt.Sprintf("%d nodes, size %d", count, u.sz)}
	}
	return err
}

// verifyColors checks the red-black rules, reporting the first broken one.
// Recursive.
func (u *base[T, S]) verifyColors() error {
	if u.root == 0 {
		return nil
	}
	if c := u.slots[u.root].c; c != Black {
		return &InvariantError{"black root", u.label(u.root)}
	}
	_, err := u.blackHeight(u.root)
	return err
}

// blackHeight of the subtree at i counting the absent children as Black.
func (u *base[T, S]) blackHeight(i S) (int, error) {
	if i == 0 {
		return 1, nil
	}
	n := u.slots[i]
	switch n.c {
	case Red:
		for _, c := range [2]S{n.l, n.r} {
			if c != 0 && u.slots[c].c == Red {
				return 0, &InvariantError{"red has black children", fmt.Sprintf("%s under %s", u.label(c), u.label(i))}
			}
		}
	case Black:
	default:
		return 0, &InvariantError{"red or black", u.label(i)}
	}
	lh, err := u.blackHeight(n.l)
	if err != nil {
		return 0, err
	}
	rh, err := u.blackHeight(n.r)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, &InvariantError{"equal black height", fmt.Sprintf("%s: left %d, right %d", u.label(i), lh, rh)}
	}
	if n.c == Black {
		lh++
	}
	return lh, nil
}
