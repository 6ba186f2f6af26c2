package Trees

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRBTree(t *testing.T) {
	testTree(t, func(vs ...int) Tree[int, Color] { return NewRBTree(vs...) })
}

func TestRBTree_Colors(t *testing.T) {
	assert := assert.New(t)
	tree := NewRBTree(1)
	assert.Equal(Black, tree.Root().Meta())
	tree.Insert(2)
	assert.Equal(Red, tree.Root().Right().Meta())
	tree.Insert(3)
	assert.Equal(2, tree.Root().Value())
	assert.Equal(Black, tree.Root().Meta())
	assert.Equal(Red, tree.Root().Left().Meta())
	assert.Equal(Red, tree.Root().Right().Meta())
	// The red uncle is recolored.
	tree.Insert(4)
	assert.Equal(Black, tree.Root().Left().Meta())
	assert.Equal(Black, tree.Root().Right().Meta())
	assert.Equal(Red, tree.Root().Right().Right().Meta())
	assert.Equal("red", Red.String())
	assert.Equal("black", Black.String())
}

func TestRBTree_Random(t *testing.T) {
	assert := assert.New(t)
	rg := rand.New(rand.NewSource(3))
	tree := NewRBTree[int]()
	for _, v := range rg.Perm(2000) {
		tree.Insert(v)
	}
	require.False(t, tree.Corrupt())
	assert.LessOrEqual(float64(depth(tree.Root())), 2*math.Log2(2001))
	for _, v := range rg.Perm(2000)[:1500] {
		require.NoError(t, tree.Delete(v))
		require.False(t, tree.Corrupt(), "after deleting %d", v)
		require.Equal(t, Black, tree.Root().Meta())
	}
	assert.EqualValues(500, tree.Size())
}

func TestRBTree_Corrupt(t *testing.T) {
	tree := NewRBTree(1, 2, 3)
	tree.root.l.m = Black
	assert.True(t, tree.Corrupt(), "black heights differ")

	tree = NewRBTree(1, 2, 3)
	tree.root.m = Red
	assert.True(t, tree.Corrupt(), "red root")

	tree = NewRBTree(1, 2, 3, 4)
	tree.root.r.m = Red
	assert.True(t, tree.Corrupt(), "red-red edge")
}

func TestRBTree_NaN(t *testing.T) {
	assert := assert.New(t)
	tree := NewRBTree[float64]()
	assert.False(tree.Insert(math.NaN()))
	assert.Nil(tree.Root())
	assertNotFound(t, tree.Delete(math.NaN()))
	assert.True(tree.Empty())
}

func BenchmarkRBTree_Insert(b *testing.B) {
	benchInsert(b, func() Tree[int, Color] { return NewRBTree[int]() })
}

func BenchmarkRBTree_Delete(b *testing.B) {
	benchDelete(b, func() Tree[int, Color] { return NewRBTree[int]() })
}
