package Trees

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSBTree(t *testing.T) {
	testTree(t, func(vs ...int) Tree[int, uint] { return NewSBTree(vs...) })
}

func TestSBTree_Balance(t *testing.T) {
	assert := assert.New(t)
	tree := NewSBTree[int]()
	for i := 0; i < 1000; i++ {
		tree.Insert(i)
	}
	assert.True(tree.balanced())
	assert.False(tree.Corrupt())
	assert.LessOrEqual(float64(depth(tree.Root())), 1.44*math.Log2(1001.5)-0.33)
	assert.EqualValues(1000, tree.Root().Meta())

	rapid.Check(t, func(t *rapid.T) {
		tree := NewSBTree(rapid.SliceOf(rapid.IntRange(-1000, 1000)).Draw(t, "vs")...)
		if !tree.balanced() || tree.Corrupt() {
			t.Fatalf("broken tree:\n%s", tree)
		}
	})
}

func TestSBTree_Rank(t *testing.T) {
	assert := assert.New(t)
	tree := NewSBTree(big...)
	sorted := distinct(big)
	for i, v := range sorted {
		assert.EqualValues(i+1, tree.RankOf(v))
		k, ok := tree.Kth(uint(i + 1))
		assert.True(ok)
		assert.Equal(v, k)
	}
	assert.EqualValues(0, tree.RankOf(5))
	_, ok := tree.Kth(0)
	assert.False(ok)
	_, ok = tree.Kth(uint(len(sorted) + 1))
	assert.False(ok)

	for _, v := range sorted[:40] {
		require.NoError(t, tree.Delete(v))
	}
	k, ok := tree.Kth(1)
	assert.True(ok)
	assert.Equal(sorted[40], k)
	assert.EqualValues(1, tree.RankOf(sorted[40]))
}

func TestSBTree_Build(t *testing.T) {
	assert := assert.New(t)
	tree, err := BuildSBTree(distinct(big))
	require.NoError(t, err)
	assert.EqualValues(95, tree.Size())
	assert.False(tree.Corrupt())
	assert.Equal(distinct(big), tree.Values())
	assert.True(tree.Insert(1))
	assert.False(tree.Corrupt())

	tree, err = BuildSBTree[int](nil)
	require.NoError(t, err)
	assert.True(tree.Empty())

	_, err = BuildSBTree([]int{1, 3, 3})
	var e InvalidSliceError[int]
	if assert.ErrorAs(err, &e) {
		assert.Equal(InvalidSliceError[int]{At: 2, Prev: 3, Next: 3}, e)
	}
	_, err = BuildSBTree([]float64{math.NaN()})
	assert.Error(err)
}

func BenchmarkSBTree_Insert(b *testing.B) {
	benchInsert(b, func() Tree[int, uint] { return NewSBTree[int]() })
}

func BenchmarkSBTree_Delete(b *testing.B) {
	benchDelete(b, func() Tree[int, uint] { return NewSBTree[int]() })
}

func BenchmarkSBTree_Build(b *testing.B) {
	vs := distinct(rand.New(rand.NewSource(0)).Perm(bAddN))
	b.ResetTimer()
	for range b.N {
		BuildSBTree(vs)
	}
}
