package search

import (
	"errors"
	"testing"

	"github.com/npillmayer/ordmap/compare"
	"github.com/npillmayer/ordmap/sentinel"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

type item struct {
	key int
	tag string
}

func policy(mode Mode) Policy[int, item] {
	return Policy[int, item]{
		KeyOf: func(it item) int { return it.key },
		Less:  compare.Ordered[int](),
		Mode:  mode,
	}
}

func insert(t *sentinel.Tree[item], p Policy[int, item], it item) (*sentinel.Node[item], bool) {
	pl := p.InsertPosition(t, it.key)
	if pl.Duplicate() {
		return pl.Existing, false
	}
	n := &sentinel.Node[item]{Payload: it}
	t.Attach(n, pl.Parent, pl.Left)
	return n, true
}

func tags(t *sentinel.Tree[item], first, last *sentinel.Node[item]) []string {
	var out []string
	for n := first; n != last; n = t.Next(n) {
		out = append(out, n.Payload.tag)
	}
	return out
}

func TestUniqueRejectsDuplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	r := require.New(t)
	tree := sentinel.New[item]()
	p := policy(Unique)
	first, ok := insert(tree, p, item{5, "a"})
	r.True(ok)
	again, ok := insert(tree, p, item{5, "b"})
	r.False(ok)
	r.Same(first, again)
	r.Equal("a", again.Payload.tag)
	r.Equal(1, tree.Len())
	r.NoError(p.CheckOrder(tree))
}

func TestMultiKeepsEqualKeysInInsertionOrder(t *testing.T) {
	r := require.New(t)
	tree := sentinel.New[item]()
	p := policy(Multi)
	for _, it := range []item{{5, "a"}, {3, "c"}, {5, "b"}, {7, "x"}, {5, "d"}, {1, "y"}} {
		_, ok := insert(tree, p, it)
		r.True(ok)
	}
	r.NoError(tree.Check())
	r.NoError(p.CheckOrder(tree))
	first, last := p.EqualRange(tree, 5)
	r.Equal([]string{"a", "b", "d"}, tags(tree, first, last))
	r.Equal(3, p.Count(tree, 5))
	r.Equal(0, p.Count(tree, 4))
	r.Equal(5, p.Find(tree, 5).Payload.key)
}

func TestBounds(t *testing.T) {
	r := require.New(t)
	tree := sentinel.New[item]()
	p := policy(Unique)
	r.True(tree.IsSentinel(p.LowerBound(tree, 1)), "empty tree")
	r.True(tree.IsSentinel(p.UpperBound(tree, 1)), "empty tree")
	r.True(tree.IsSentinel(p.Find(tree, 1)), "empty tree")
	for _, k := range []int{50, 30, 70, 20, 40, 60, 80} {
		insert(tree, p, item{key: k})
	}
	cases := []struct {
		key        int
		lower, upp int // 0 means end
	}{
		{10, 20, 20},
		{20, 20, 30},
		{45, 50, 50},
		{50, 50, 60},
		{80, 80, 0},
		{90, 0, 0},
	}
	keyOf := func(n *sentinel.Node[item]) int {
		if tree.IsSentinel(n) {
			return 0
		}
		return n.Payload.key
	}
	for _, c := range cases {
		r.Equal(c.lower, keyOf(p.LowerBound(tree, c.key)), "lower bound of %d", c.key)
		r.Equal(c.upp, keyOf(p.UpperBound(tree, c.key)), "upper bound of %d", c.key)
	}
	r.True(tree.IsSentinel(p.Find(tree, 45)))
	first, last := p.EqualRange(tree, 45)
	r.Same(first, last)
}

func TestInsertPositionOnEmptyTree(t *testing.T) {
	r := require.New(t)
	tree := sentinel.New[item]()
	pl := policy(Multi).InsertPosition(tree, 3)
	r.False(pl.Duplicate())
	r.True(tree.IsSentinel(pl.Parent))
}

func TestCheckOrderDetectsMisplacedNode(t *testing.T) {
	r := require.New(t)
	tree := sentinel.New[item]()
	n5 := &sentinel.Node[item]{Payload: item{key: 5}}
	tree.Attach(n5, tree.End(), false)
	tree.Attach(&sentinel.Node[item]{Payload: item{key: 9}}, n5, true) // 9 left of 5
	err := policy(Multi).CheckOrder(tree)
	r.Error(err)
	r.True(errors.Is(err, sentinel.ErrInvariant))
	tree = sentinel.New[item]()
	n5 = &sentinel.Node[item]{Payload: item{key: 5}}
	tree.Attach(n5, tree.End(), false)
	tree.Attach(&sentinel.Node[item]{Payload: item{key: 5}}, n5, false)
	r.NoError(policy(Multi).CheckOrder(tree))
	r.Error(policy(Unique).CheckOrder(tree))
}

func TestModeString(t *testing.T) {
	require.Equal(t, "unique", Unique.String())
	require.Equal(t, "multi", Multi.String())
	require.Equal(t, "Mode(7)", Mode(7).String())
}
