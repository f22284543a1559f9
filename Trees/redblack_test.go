package Trees

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShape(t *testing.T, tree *RedBlackTree[int, uint], want *shape) {
	t.Helper()
	if diff := pretty.Compare(shapeOf(&tree.base, tree.root), want); diff != "" {
		t.Fatalf("-got/+want:\n%s\ntree:\n%s", diff, tree)
	}
}

func TestRedBlackTree_ThreeAscending(t *testing.T) {
	tree, err := RedBlackFrom[int, uint]([]int{10, 20, 30})
	require.NoError(t, err)
	requireShape(t, tree, black(20, red(10, nil, nil), red(30, nil, nil)))
	require.Equal(t, 1, tree.Height())
	require.Equal(t, 1, tree.BlackHeight())

	require.True(t, tree.Delete(20))
	require.NoError(t, tree.Verify())
	require.Equal(t, uint(2), tree.Size())
	requireShape(t, tree, black(10, nil, red(30, nil, nil)))
}

func TestRedBlackTree_SevenAscending(t *testing.T) {
	tree, err := RedBlackFrom[int, uint]([]int{1, 2, 3, 4, 5, 6, 7})
	require.NoError(t, err)
	require.NoError(t, tree.Verify())
	requireShape(t, tree, black(2,
		black(1, nil, nil),
		red(4, black(3, nil, nil), black(6, red(5, nil, nil), red(7, nil, nil)))))
	require.Equal(t, 3, tree.Height())
	require.Equal(t, 2, tree.BlackHeight())
}

func TestRedBlackTree_SevenLevelOrder(t *testing.T) {
	tree, err := RedBlackFrom[int, uint]([]int{4, 2, 6, 1, 3, 5, 7})
	require.NoError(t, err)
	requireShape(t, tree, black(4,
		black(2, red(1, nil, nil), red(3, nil, nil)),
		black(6, red(5, nil, nil), red(7, nil, nil))))
	require.Equal(t, 2, tree.Height())
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, slices.Collect(tree.All()))
}

func TestRedBlackTree_Single(t *testing.T) {
	tree := NewRedBlack[int, uint](0)
	x, err := tree.Insert(42)
	require.NoError(t, err)
	c, err := tree.Color(x)
	require.NoError(t, err)
	require.Equal(t, Black, c)
	require.Equal(t, 0, tree.Height())

	require.True(t, tree.Delete(42))
	require.True(t, tree.Empty())
	require.Equal(t, -1, tree.Height())
	require.Equal(t, 0, tree.BlackHeight())
	require.NoError(t, tree.Verify())
	require.False(t, tree.Delete(42))
}

// Every insertion and deletion keeps the tree valid and within the height bound.
func TestRedBlackTree_Invariants(t *testing.T) {
	tree := NewRedBlack[int, uint16](0)
	content := make(map[int]int)
	var all []int
	for range 600 {
		v := rg.Intn(300)
		x, err := tree.Insert(v)
		require.NoError(t, err)
		require.Equal(t, v, x.Get())
		all = append(all, v)
		content[v]++
		require.NoError(t, tree.Verify())
		n := float64(tree.Size())
		require.LessOrEqual(t, float64(tree.Height()), 2*math.Log2(n+1))
	}
	t.Logf("depth: %f, height: %d, size: %d.\n", tree.avgDepth(), tree.Height(), tree.Size())

	rg.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	for i, v := range all {
		require.True(t, tree.Delete(v), "failed to delete key %v", v)
		content[v]--
		require.Equal(t, content[v] > 0, tree.Contains(v))
		require.NoError(t, tree.Verify(), "after deleting %v", v)
		require.Equal(t, len(all)-i-1, tree.Len())
		if n := float64(tree.Size()); n > 0 {
			require.LessOrEqual(t, float64(tree.Height()), 2*math.Log2(n+1))
		}
	}
	require.True(t, tree.Empty())
}

func TestRedBlackTree_Sequential(t *testing.T) {
	tree := NewRedBlack[int, uint](1000)
	for i := range 1000 {
		require.NoError(t, tree.Add(i))
	}
	require.NoError(t, tree.Verify())
	require.LessOrEqual(t, float64(tree.Height()), 2*math.Log2(1001))
	for i := range 500 {
		require.True(t, tree.Delete(i))
	}
	for i := 999; i >= 500; i -= 2 {
		require.True(t, tree.Delete(i))
	}
	require.NoError(t, tree.Verify())
	require.Equal(t, 250, tree.Len())
	f, _ := tree.First()
	l, _ := tree.Last()
	assert.Equal(t, 500, f)
	assert.Equal(t, 998, l)
}

func TestRedBlackTree_Mixed(t *testing.T) {
	tree := NewRedBlack[int, uint32](0)
	content := make(map[int]int)
	size := 0
	for range 5000 {
		v := rg.Intn(500)
		if rg.Intn(3) == 0 {
			ok := tree.Delete(v)
			require.Equal(t, content[v] > 0, ok)
			if ok {
				content[v]--
				size--
			}
		} else {
			require.NoError(t, tree.Add(v))
			content[v]++
			size++
		}
	}
	require.NoError(t, tree.Verify())
	require.Equal(t, size, tree.Len())
	for v, c := range content {
		require.Equal(t, c > 0, tree.Contains(v))
	}
}

func TestRedBlackTree_Rotations(t *testing.T) {
	tree, _ := RedBlackFrom[int, uint]([]int{10, 20, 30})
	before := tree.Digest()
	root, err := tree.Root()
	require.NoError(t, err)
	var e *UnsupportedOperationError
	require.ErrorAs(t, tree.RotateLeft(root), &e)
	require.ErrorAs(t, tree.RotateRight(root), &e)
	require.Equal(t, before, tree.Digest())
	require.NoError(t, tree.Verify())
}

func TestRedBlackTree_Absent(t *testing.T) {
	var e *InvalidArgumentError
	ft := NewRedBlack[float32, uint](0)
	require.NoError(t, ft.Add(1))
	require.ErrorAs(t, ft.Add(float32(math.NaN())), &e)
	require.Equal(t, 1, ft.Len())
	require.NoError(t, ft.Verify())

	type rec struct{ k int }
	pt := NewRedBlackC[*rec, uint](0, func(a, b *rec) int { return a.k - b.k })
	_, err := pt.Insert(nil)
	require.ErrorAs(t, err, &e)
	require.True(t, pt.Empty())
}

func TestRedBlackTree_Color(t *testing.T) {
	tree, _ := RedBlackFrom[int, uint]([]int{10, 20, 30})
	x, ok := tree.Search(10)
	require.True(t, ok)
	c, err := tree.Color(x)
	require.NoError(t, err)
	require.Equal(t, Red, c)
	require.Equal(t, "R{10}", x.String())

	other, _ := RedBlackFrom[int, uint]([]int{10})
	y, _ := other.Root()
	var e *NoSuchElementError
	_, err = tree.Color(y)
	require.ErrorAs(t, err, &e)
}

func TestRedBlackTree_Comparator(t *testing.T) {
	type item struct {
		key int
		id  int
	}
	// descending by key; equal keys keep insertion order.
	tree := NewRedBlackC[item, uint](0, func(a, b item) int { return b.key - a.key })
	for i := range 40 {
		require.NoError(t, tree.Add(item{i % 4, i}))
	}
	require.NoError(t, tree.Verify())
	var got []item
	for v := range tree.All() {
		got = append(got, v)
	}
	require.Len(t, got, 40)
	for i := 1; i < len(got); i++ {
		require.GreaterOrEqual(t, got[i-1].key, got[i].key)
		if got[i-1].key == got[i].key {
			require.Less(t, got[i-1].id, got[i].id)
		}
	}
}

func TestRedBlackTree_Equal(t *testing.T) {
	in := make([]int, 200)
	for i := range in {
		in[i] = rg.Intn(100)
	}
	a, _ := RedBlackFrom[int, uint](in)
	b, _ := RedBlackFrom[int, uint](in)
	require.True(t, a.Equal(b))
	require.Equal(t, a.Digest(), b.Digest())

	b.Delete(in[0])
	b.Add(in[0])
	require.NoError(t, b.Verify())
	if !a.Equal(b) {
		require.NotEqual(t, a.Digest(), b.Digest())
	}
	b.Clear()
	require.True(t, b.Empty())
	require.False(t, a.Equal(b))
	require.NoError(t, b.Add(1))
	require.NoError(t, b.Verify())
}

func TestRedBlackTree_Clear(t *testing.T) {
	tree, _ := RedBlackFrom[int, uint]([]int{3, 1, 2})
	tree.Clear()
	require.Equal(t, uint(0), tree.Size())
	_, err := tree.First()
	require.True(t, errors.As(err, new(*NoSuchElementError)))
	require.Empty(t, tree.String())
}
