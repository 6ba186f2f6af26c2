package Sets

import (
	"errors"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/g-m-twostay/datality"
	"github.com/google/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var common = []int{7, 17, 15, 3, 8, 13, 1, 18, 19, 0, 12, 5, 10, 9, 4, 14, 11, 2, 6, 16}

var _ Set[int] = (*SkipList[int])(nil)

func seeded(vs ...int) *SkipList[int] {
	return NewSkipList(rand.New(rand.NewSource(1)), 0.5, vs...)
}

func notFound(err error) bool {
	return errors.Is(err, datality.ErrNotFound)
}

func TestSkipList(t *testing.T) {
	assert := assert.New(t)
	s := seeded(common...)
	assert.EqualValues(20, s.Size())
	assert.False(s.corrupt())
	assert.True(seeded().Empty())
	assert.EqualValues(3, NewSkipList[string](nil, 0, "erick", "sophia", "marion").Size())
	assert.False(s.Insert(7))
	assert.EqualValues(20, s.Size())

	v, err := s.Search(3)
	require.NoError(t, err)
	assert.Equal(3, v)
	_, err = seeded().Search(3)
	assert.True(notFound(err))

	for v, want := range map[int]int{0: 1, 7: 8, 17: 18, 18: 19} {
		got, err := s.Successor(v)
		require.NoError(t, err)
		assert.Equal(want, got)
	}
	for _, s := range []*SkipList[int]{seeded(), seeded(7)} {
		_, err = s.Successor(8)
		assert.True(notFound(err))
	}
	_, err = seeded(7).Successor(7)
	assert.True(notFound(err))
	_, err = s.Successor(19)
	assert.True(notFound(err))
}

func TestSkipList_Delete(t *testing.T) {
	assert := assert.New(t)
	assert.True(notFound(seeded().Delete(5)))
	assert.True(notFound(seeded(7).Delete(8)))
	for _, v := range []int{15, 7} {
		s := seeded(common...)
		require.NoError(t, s.Delete(v))
		assert.EqualValues(19, s.Size())
		assert.False(s.Has(v))
		assert.False(s.corrupt())
	}

	s := seeded(common...)
	for _, v := range common {
		require.NoError(t, s.Delete(v))
	}
	assert.True(s.Empty())
	assert.EqualValues(1, s.Height(), "empty levels are dropped")
	assert.Equal("0: ", s.String())
}

func TestSkipList_NaN(t *testing.T) {
	assert := assert.New(t)
	s := NewSkipList(nil, 0.5, 1.0, math.NaN())
	assert.EqualValues(1, s.Size())
	assert.False(s.Put(math.NaN()))
	assert.False(s.Remove(math.NaN()))
	assert.False(s.Has(math.NaN()))
}

func TestSkipList_String(t *testing.T) {
	s := seeded(3, 1, 2)
	lines := s.String()
	assert.Contains(t, lines, "(1)->(2)->(3)->")
	assert.Regexp(t, `^0: `, lines)
}

func TestSkipList_Seed(t *testing.T) {
	assert.Equal(t, seeded(common...).String(), seeded(common...).String())
}

func TestSkipList_Range(t *testing.T) {
	s := seeded(common...)
	var got []int
	s.Range(func(v int) bool {
		got = append(got, v)
		return v < 4
	})
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestSkipList_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := NewSkipList[int](rand.New(rand.NewSource(rapid.Int64().Draw(t, "seed"))), rapid.Float64Range(0.1, 0.9).Draw(t, "p"))
		oracle := btree.NewOrderedG[int](4)
		t.Repeat(map[string]func(*rapid.T){
			"Put": func(t *rapid.T) {
				v := rapid.IntRange(-100, 100).Draw(t, "v")
				_, had := oracle.ReplaceOrInsert(v)
				if s.Put(v) == had {
					t.Fatalf("Put(%d) with presence %v", v, had)
				}
			},
			"Remove": func(t *rapid.T) {
				v := rapid.IntRange(-100, 100).Draw(t, "v")
				_, had := oracle.Delete(v)
				if s.Remove(v) != had {
					t.Fatalf("Remove(%d) with presence %v", v, had)
				}
			},
			"Successor": func(t *rapid.T) {
				v := rapid.IntRange(-100, 100).Draw(t, "v")
				got, err := s.Successor(v)
				want, has := 0, false
				if oracle.Has(v) {
					oracle.AscendGreaterOrEqual(v+1, func(item int) bool {
						want, has = item, true
						return false
					})
				}
				if has != (err == nil) || got != want {
					t.Fatalf("Successor(%d) = %d, %v; want %d, %v", v, got, err, want, has)
				}
			},
			"": func(t *rapid.T) {
				var want []int
				oracle.Ascend(func(item int) bool {
					want = append(want, item)
					return true
				})
				if got := s.Values(); !slices.Equal(got, want) {
					t.Fatalf("values %v, want %v", got, want)
				}
				if s.corrupt() {
					t.Fatal("corrupt")
				}
			},
		})
	})
}

func TestDisjointSet(t *testing.T) {
	assert := assert.New(t)
	djs := NewDisjointSet[string]()
	assert.True(djs.Union("erick", "sophia"))
	assert.True(djs.Union("kim", "sophia"))
	assert.True(djs.Union("aldo", "valeria"))
	assert.False(djs.Same("aldo", "erick"))
	assert.True(djs.Same("kim", "erick"))
	assert.False(djs.Union("kim", "erick"))
	assert.EqualValues(2, djs.Size())
	assert.True(djs.Union("aldo", "kim"))
	assert.True(djs.Same("valeria", "erick"))
	assert.EqualValues(1, djs.Size())
	assert.Equal(5, djs.Len())
	assert.Len(djs.Sets(), 1)
}

func TestDisjointSet_Union(t *testing.T) {
	assert := assert.New(t)
	djs := NewDisjointSet(1, 2, 3, 4)
	assert.EqualValues(4, djs.Size())
	assert.False(djs.MakeSet(1))
	assert.Equal(5, djs.Find(5), "unknown elements are their own representative")
	assert.Equal(4, djs.Len())

	djs.Union(1, 2)
	assert.Equal(2, djs.Find(1), "a root goes under the other root")
	djs.Union(3, 1)
	assert.Equal(2, djs.Find(3))
	djs.Union(1, 4)
	assert.Equal(2, djs.Find(4), "a non-root keeps its root on top")
	assert.EqualValues(1, djs.Size())
	assert.Equal("map[1:2 2:2 3:2 4:2]", djs.String())
}

func TestDisjointSet_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 50).Draw(t, "n")
		djs := NewDisjointSet[int]()
		// label is a naive partition kept alongside.
		label := make([]int, n)
		for i := range label {
			label[i] = i
			djs.MakeSet(i)
		}
		sets := uint(n)
		for _, p := range rapid.SliceOf(rapid.SliceOfN(rapid.IntRange(0, n-1), 2, 2)).Draw(t, "unions") {
			a, b := p[0], p[1]
			joined := label[a] != label[b]
			if djs.Union(a, b) != joined {
				t.Fatalf("Union(%d, %d) != %v", a, b, joined)
			}
			if joined {
				old := label[a]
				for i := range label {
					if label[i] == old {
						label[i] = label[b]
					}
				}
				sets--
			}
		}
		if djs.Size() != sets {
			t.Fatalf("%d sets, want %d", djs.Size(), sets)
		}
		for a := 0; a < n; a++ {
			for b := 0; b < n; b++ {
				if djs.Same(a, b) != (label[a] == label[b]) {
					t.Fatalf("Same(%d, %d) != %v", a, b, label[a] == label[b])
				}
			}
		}
	})
}

func BenchmarkSkipList_Insert(b *testing.B) {
	vs := rand.New(rand.NewSource(0)).Perm(1 << 14)
	for range b.N {
		s := seeded()
		for _, v := range vs {
			s.Insert(v)
		}
	}
}
