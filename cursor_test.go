package bptree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorEmptyTree(t *testing.T) {
	t.Parallel()

	tree := New(byKey)
	c := tree.Cursor()
	assert.False(t, c.Valid())
	c.Next() // must not panic
	assert.False(t, c.Valid())
}

func TestCursorSingleLeaf(t *testing.T) {
	t.Parallel()

	tree := New(byKey)
	insertKeys(tree, 20, 10, 30)

	var keys []int
	for c := tree.Cursor(); c.Valid(); c.Next() {
		keys = append(keys, c.Key())
		require.NotEmpty(t, c.Rows())
	}
	assert.Equal(t, []int{10, 20, 30}, keys)
}

func TestCursorChainIntegrity(t *testing.T) {
	t.Parallel()

	// After an arbitrary operation mix, the chain walk must visit every
	// resident key exactly once, in ascending order.
	rng := rand.New(rand.NewSource(99))
	tree := New(byKey, WithUniqueKeys())
	resident := map[int]bool{}

	for i := 0; i < 1500; i++ {
		key := rng.Intn(300)
		if rng.Intn(3) == 0 {
			tree.Delete(key)
			delete(resident, key)
		} else {
			tree.Insert(rec(key))
			resident[key] = true
		}
	}
	requireHealthy(t, tree)

	seen := map[int]bool{}
	last := -1
	for c := tree.Cursor(); c.Valid(); c.Next() {
		k := c.Key()
		require.Greater(t, k, last, "chain keys must be strictly ascending")
		require.False(t, seen[k], "key %d visited twice", k)
		require.True(t, resident[k], "key %d should not be resident", k)
		seen[k] = true
		last = k
	}
	assert.Len(t, seen, len(resident))
}

func TestCursorGroups(t *testing.T) {
	t.Parallel()

	tree := New(byKey)
	r1, r2 := &record{Key: 5, Name: "a"}, &record{Key: 5, Name: "b"}
	tree.Insert(r1)
	tree.Insert(rec(3))
	tree.Insert(r2)

	c := tree.Cursor()
	require.True(t, c.Valid())
	assert.Equal(t, 3, c.Key())
	c.Next()
	require.True(t, c.Valid())
	assert.Equal(t, 5, c.Key())
	assert.Equal(t, []*record{r1, r2}, c.Rows())
	c.Next()
	assert.False(t, c.Valid())
}
