package ordmap

import (
	"bytes"
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
	gocmp "github.com/google/go-cmp/cmp"
	"github.com/npillmayer/ordmap/compare"
	"github.com/npillmayer/ordmap/treeviz"
)

func TestMapSetAndGet(t *testing.T) {
	defer traced(t)()
	m := MapOf[string, int]()
	qt.Assert(t, qt.IsNil(m.Set("b", 2)))
	qt.Assert(t, qt.IsNil(m.Set("a", 1)))
	qt.Assert(t, qt.IsNil(m.Set("b", 20)))
	v, ok := m.Get("b")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, 20))
	_, ok = m.Get("z")
	qt.Assert(t, qt.IsFalse(ok))
	_, err := m.At("z")
	qt.Assert(t, qt.ErrorIs(err, ErrKeyNotFound))
	qt.Assert(t, qt.DeepEquals(slices.Collect(m.Keys()), []string{"a", "b"}))
	qt.Assert(t, qt.DeepEquals(slices.Collect(m.Values()), []int{1, 20}))
	qt.Assert(t, qt.DeepEquals(maps.Collect(m.Entries()), map[string]int{"a": 1, "b": 20}))
	qt.Assert(t, qt.IsTrue(m.Delete("a")))
	qt.Assert(t, qt.IsFalse(m.Delete("a")))
	qt.Assert(t, qt.Equals(m.Len(), 1))
}

func TestMapPutKeepsPresentValue(t *testing.T) {
	defer traced(t)()
	m := MapOf[int, string]()
	m.Put(1, "one")
	pos, inserted, err := m.Put(1, "uno")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsFalse(inserted))
	qt.Assert(t, qt.Equals(pos.MustItem().Value, "one"))
	qt.Assert(t, qt.Equals(pos.MustItem().String(), "1: one"))
}

func TestMapWithCompositeKeys(t *testing.T) {
	defer traced(t)()
	type name struct{ last, first string }
	less := compare.Chain(
		func(a, b name) int { return strings.Compare(a.last, b.last) },
		func(a, b name) int { return strings.Compare(a.first, b.first) },
	)
	m, err := NewMap[name, int](Config[name, Entry[name, int]]{Less: less})
	qt.Assert(t, qt.IsNil(err))
	m.Put(name{"Lovelace", "Ada"}, 1815)
	m.Put(name{"Hopper", "Grace"}, 1906)
	m.Put(name{"Lovelace", "Byron"}, 1788)
	got := slices.Collect(m.Keys())
	want := []name{{"Hopper", "Grace"}, {"Lovelace", "Ada"}, {"Lovelace", "Byron"}}
	if diff := gocmp.Diff(want, got, gocmp.AllowUnexported(name{})); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}
}

func TestMultiMapDelete(t *testing.T) {
	defer traced(t)()
	m := MultiMapOf[string, int]()
	for i, k := range []string{"x", "y", "x", "x"} {
		m.Put(k, i)
	}
	qt.Assert(t, qt.DeepEquals(slices.Collect(m.ValuesOf("x")), []int{0, 2, 3}))
	qt.Assert(t, qt.Equals(m.Delete("x"), 3))
	qt.Assert(t, qt.Equals(m.Delete("x"), 0))
	qt.Assert(t, qt.Equals(m.Len(), 1))
	qt.Assert(t, qt.IsNil(slices.Collect(m.ValuesOf("x"))))
	other := MultiMapOf[string, int]()
	other.Swap(m)
	qt.Assert(t, qt.Equals(other.Len(), 1))
	qt.Assert(t, qt.IsTrue(m.IsEmpty()))
}

func TestSetAddRemove(t *testing.T) {
	defer traced(t)()
	s := SetOf("pear", "apple")
	_, added, err := s.Add("fig")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(added))
	_, added, _ = s.Add("apple")
	qt.Assert(t, qt.IsFalse(added))
	qt.Assert(t, qt.IsTrue(s.Contains("fig")))
	qt.Assert(t, qt.IsTrue(s.Remove("fig")))
	qt.Assert(t, qt.IsFalse(s.Remove("fig")))
	qt.Assert(t, qt.DeepEquals(slices.Collect(s.All()), []string{"apple", "pear"}))
	qt.Assert(t, qt.Equals(s.Count("pear"), 1))
}

func TestMultiSetCounts(t *testing.T) {
	defer traced(t)()
	s := MultiSetOf(3, 1, 3, 2, 3)
	qt.Assert(t, qt.Equals(s.Count(3), 3))
	qt.Assert(t, qt.Equals(s.Len(), 5))
	qt.Assert(t, qt.DeepEquals(slices.Collect(s.All()), []int{1, 2, 3, 3, 3}))
	qt.Assert(t, qt.Equals(s.Remove(3), 3))
	qt.Assert(t, qt.Equals(s.Count(3), 0))
	qt.Assert(t, qt.IsNil(s.Check()))
	other := MultiSetOf(9)
	s.Swap(other)
	qt.Assert(t, qt.DeepEquals(slices.Collect(s.All()), []int{9}))
	qt.Assert(t, qt.DeepEquals(slices.Collect(other.All()), []int{1, 2}))
}

func TestRendering(t *testing.T) {
	defer traced(t)()
	m := MapOf[int, string]()
	m.Put(2, "b")
	m.Put(1, "a")
	var buf bytes.Buffer
	qt.Assert(t, qt.IsNil(m.WriteDot(&buf)))
	qt.Assert(t, qt.StringContains(buf.String(), "label=<1: a>"))
	buf.Reset()
	qt.Assert(t, qt.IsNil(m.Fprint(&buf, &treeviz.Config{LineWidth: 40})))
	qt.Assert(t, qt.Equals(buf.String(), "header (2 elements, height 2)\n─── 2: b\n    └── 1: a\n"))
}
