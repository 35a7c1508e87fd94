package base

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChildIndexRouting(t *testing.T) {
	t.Parallel()

	n := &Node[string]{Keys: []int{10, 20, 30}}

	// First child index i such that key < Keys[i], defaulting to last
	assert.Equal(t, 0, n.ChildIndex(5))
	assert.Equal(t, 1, n.ChildIndex(10), "separator routes equal keys right")
	assert.Equal(t, 1, n.ChildIndex(15))
	assert.Equal(t, 3, n.ChildIndex(30))
	assert.Equal(t, 3, n.ChildIndex(99))
}

func TestFindKey(t *testing.T) {
	t.Parallel()

	n := &Node[string]{Leaf: true, Keys: []int{10, 20, 30}}
	assert.Equal(t, 1, n.FindKey(20))
	assert.Equal(t, -1, n.FindKey(15))
	assert.Equal(t, -1, n.FindKey(99))
}

func TestMinKeyDescendsLeftmostChain(t *testing.T) {
	t.Parallel()

	leaf := &Node[string]{Leaf: true, Keys: []int{3, 4}, Groups: [][]string{{"a"}, {"b"}}}
	mid := &Node[string]{Keys: []int{7}, Children: []*Node[string]{leaf, nil}}
	root := &Node[string]{Keys: []int{10}, Children: []*Node[string]{mid, nil}}

	key, ok := root.MinKey()
	require.True(t, ok)
	assert.Equal(t, 3, key)

	empty := &Node[string]{Leaf: true}
	_, ok = empty.MinKey()
	assert.False(t, ok)
}

func TestSlotEditing(t *testing.T) {
	t.Parallel()

	n := &Node[string]{Leaf: true}
	n.InsertSlot(0, 20, []string{"b"})
	n.InsertSlot(0, 10, []string{"a"})
	n.InsertSlot(2, 30, []string{"c"})

	assert.Equal(t, []int{10, 20, 30}, n.Keys)
	assert.Equal(t, [][]string{{"a"}, {"b"}, {"c"}}, n.Groups)

	n.RemoveSlot(1)
	assert.Equal(t, []int{10, 30}, n.Keys)
	assert.Equal(t, [][]string{{"a"}, {"c"}}, n.Groups)
}

func TestCapacityBounds(t *testing.T) {
	t.Parallel()

	n := &Node[string]{Leaf: true, Keys: []int{1, 2, 3}}
	assert.True(t, n.IsFull())
	assert.False(t, n.IsUnderflow())

	n.Keys = n.Keys[:0]
	assert.True(t, n.IsUnderflow())

	n.Keys = []int{1}
	assert.False(t, n.IsUnderflow(), "order 4 minimum is one key")
}
