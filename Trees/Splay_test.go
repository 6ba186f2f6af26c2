package Trees

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplay(t *testing.T) {
	testTree(t, func(vs ...int) Tree[int, struct{}] { return NewSplay(vs...) })
}

func TestSplay_MoveToRoot(t *testing.T) {
	assert := assert.New(t)
	tree := NewSplay(common...)
	assert.Equal(16, tree.Root().Value(), "last insert is at the root")

	n, err := tree.Search(3)
	require.NoError(t, err)
	assert.Same(tree.Root(), n)
	assert.Equal(3, n.Value())
	assert.False(tree.Corrupt())

	before := tree.String()
	_, err = tree.Search(20)
	assertNotFound(t, err)
	assert.Equal(before, tree.String(), "a miss leaves the tree alone")

	assert.False(tree.Insert(7))
	assert.Equal(7, tree.Root().Value(), "a duplicate is still splayed")
	assert.EqualValues(20, tree.Size())

	assert.True(tree.Has(11))
	assert.Equal(7, tree.Root().Value(), "Has doesn't splay")
}

func TestSplay_Sequential(t *testing.T) {
	assert := assert.New(t)
	tree := NewSplay[int]()
	for i := 0; i < 100; i++ {
		tree.Insert(i)
		assert.Equal(i, tree.Root().Value())
	}
	// Ascending inserts leave a left spine.
	assert.Equal(100, depth(tree.Root()))
	_, err := tree.Search(0)
	require.NoError(t, err)
	assert.Equal(0, tree.Root().Value())
	assert.Equal(99, tree.Root().Right().Value())
	assert.False(tree.Corrupt())
}

func BenchmarkSplay_Insert(b *testing.B) {
	benchInsert(b, func() Tree[int, struct{}] { return NewSplay[int]() })
}
