package ordmap

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/btree"
	"github.com/npillmayer/ordmap/alloc"
	"github.com/npillmayer/ordmap/compare"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
	tidwall "github.com/tidwall/btree"
)

// Random operations on a Map, mirrored on a google/btree holding the same keys.
func TestMapAgainstReference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	r := require.New(t)
	rnd := rand.New(rand.NewPCG(17, 4711))
	nodes := alloc.NewFreeList[Entry[int, int]](alloc.DefaultFreeListSize)
	m, err := NewMap(Config[int, Entry[int, int]]{Less: compare.Ordered[int](), Allocator: nodes})
	r.NoError(err)
	ref := btree.NewG(8, func(a, b int) bool { return a < b })
	for op := range 2000 {
		k := rnd.IntN(200)
		switch rnd.IntN(4) {
		case 0, 1:
			_, inserted, err := m.Put(k, op)
			r.NoError(err)
			_, had := ref.ReplaceOrInsert(k)
			r.Equal(!had, inserted, "put %d", k)
		case 2:
			_, had := ref.Delete(k)
			r.Equal(had, m.Delete(k), "delete %d", k)
		case 3:
			pos := m.LowerBound(k)
			if pos.IsEnd() {
				_, err := m.Erase(pos)
				r.ErrorIs(err, ErrOutOfRange)
				continue
			}
			e := pos.MustItem()
			_, err := m.Erase(pos)
			r.NoError(err)
			_, had := ref.Delete(e.Key)
			r.True(had)
		}
		r.Equal(ref.Len(), m.Len())
		if lo, ok := ref.Min(); ok {
			r.Equal(lo, m.First().Value.Key)
			hi, _ := ref.Max()
			r.Equal(hi, m.Last().Value.Key)
		} else {
			r.False(m.First().Ok)
		}
		if op%100 == 0 {
			r.NoError(m.Check())
			var keys []int
			ref.Ascend(func(k int) bool {
				keys = append(keys, k)
				return true
			})
			r.Equal(keys, slices.Collect(m.Keys()))
		}
	}
	r.Equal(ref.Len(), nodes.Live())
	m.Clear()
	r.Equal(0, nodes.Live())
}

type tagged struct {
	key, seq int
}

func lessTagged(a, b tagged) bool {
	if a.key != b.key {
		return a.key < b.key
	}
	return a.seq < b.seq
}

// Random operations on a MultiMap, mirrored on a tidwall/btree ordered by key
// and insertion sequence. Agreement of the full sequences shows that equal keys
// stay in insertion order.
func TestMultiMapAgainstReference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	r := require.New(t)
	rnd := rand.New(rand.NewPCG(3, 1415))
	m := MultiMapOf[int, int]()
	ref := tidwall.NewBTreeG(lessTagged)
	contents := func() []tagged {
		var items []tagged
		for e := range m.All() {
			items = append(items, tagged{e.Key, e.Value})
		}
		return items
	}
	for seq := range 3000 {
		k := rnd.IntN(40)
		switch rnd.IntN(5) {
		case 0, 1, 2:
			pos, err := m.Put(k, seq)
			r.NoError(err)
			r.Equal(seq, pos.MustItem().Value)
			ref.Set(tagged{k, seq})
		case 3: // erase the oldest entry for k
			pos := m.LowerBound(k)
			if pos.IsEnd() || pos.MustItem().Key != k {
				r.Equal(0, m.Count(k))
				continue
			}
			e := pos.MustItem()
			_, err := m.Erase(pos)
			r.NoError(err)
			_, had := ref.Delete(tagged{e.Key, e.Value})
			r.True(had)
			if oldest, ok := ref.Min(); ok {
				r.Equal(oldest.key, m.First().Value.Key)
			}
		case 4: // erase all entries for k
			var doomed []tagged
			ref.Ascend(tagged{k, -1}, func(item tagged) bool {
				if item.key != k {
					return false
				}
				doomed = append(doomed, item)
				return true
			})
			for _, item := range doomed {
				ref.Delete(item)
			}
			r.Equal(len(doomed), m.Delete(k))
		}
		r.Equal(ref.Len(), m.Len())
		if seq%150 == 0 {
			r.NoError(m.Check())
			var items []tagged
			ref.Scan(func(item tagged) bool {
				items = append(items, item)
				return true
			})
			r.Equal(items, contents())
		}
	}
}
