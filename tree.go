// Package bptree implements an in-memory order-4 B+ tree index over an
// application row set, modelled after an InnoDB-style clustered index.
//
// A Tree is built with a key-extraction function and a duplicate-key
// policy: unique keys give primary-key semantics (last write wins),
// non-unique keys aggregate duplicate rows into per-key groups the way
// a secondary index does. The tree shape stays navigable through Root
// for inspection and visualization consumers.
//
// All calls are synchronous and single-threaded; callers must serialize
// mutating calls to a given Tree.
package bptree

import (
	"github.com/4iKZ/MySQL-InnoDB-B-Tree/internal/base"
	"github.com/4iKZ/MySQL-InnoDB-B-Tree/internal/cache"
)

// KeyFunc extracts the integer index key from a row. It must be
// deterministic for a given row; this is assumed caller-validated.
type KeyFunc[R comparable] func(R) int

// Tree is an order-4 B+ tree over rows of type R.
//
// For delete-by-row and duplicate handling, rows are matched by Go
// equality. Callers that need identity semantics across rows that may
// be value-equal should use a pointer row type.
type Tree[R comparable] struct {
	key    KeyFunc[R]
	unique bool
	logger Logger

	root   *base.Node[R]
	nextID uint64

	// leaves is an optional key→leaf lookup cache, purged on every
	// mutation. Nil unless WithLookupCache was given.
	leaves *cache.Lookup[R]
}

// New creates an empty tree: a single empty leaf root.
func New[R comparable](key KeyFunc[R], options ...Option) *Tree[R] {
	opts := defaultOptions()
	for _, opt := range options {
		opt(&opts)
	}

	t := &Tree[R]{
		key:    key,
		unique: opts.unique,
		logger: opts.logger,
	}
	if opts.lookupCache > 0 {
		if leaves, err := cache.NewLookup[R](opts.lookupCache); err == nil {
			t.leaves = leaves
		}
	}
	t.root = t.newNode(true)
	return t
}

// FromRows bulk-constructs a tree by inserting rows one at a time in
// the given order. The order is preserved exactly as given, never
// pre-sorted: insertion order determines the split pattern, and
// downstream consumers rely on observing order-dependent structure.
func FromRows[R comparable](rows []R, key KeyFunc[R], options ...Option) *Tree[R] {
	t := New(key, options...)
	for _, row := range rows {
		t.Insert(row)
	}
	return t
}

// newNode allocates a node with the next tree-scoped id. The counter is
// per instance so independent trees are reproducible.
func (t *Tree[R]) newNode(leaf bool) *base.Node[R] {
	t.nextID++
	return &base.Node[R]{ID: t.nextID, Leaf: leaf}
}

// Root returns the root node for inspection. The returned structure is
// a snapshot valid only until the next Insert or Delete; callers must
// not retain node references across mutating calls.
func (t *Tree[R]) Root() *base.Node[R] {
	return t.root
}

// UniqueKeys reports the duplicate-key policy the tree was built with.
func (t *Tree[R]) UniqueKeys() bool {
	return t.unique
}

// Get returns the group of rows stored under key, in insertion order.
// ok is false when the key is not resident.
func (t *Tree[R]) Get(key int) (rows []R, ok bool) {
	leaf := t.findLeaf(key)
	i := leaf.FindKey(key)
	if i < 0 {
		return nil, false
	}
	rows = make([]R, len(leaf.Groups[i]))
	copy(rows, leaf.Groups[i])
	return rows, true
}

// Len returns the number of resident rows.
func (t *Tree[R]) Len() int {
	n := 0
	for leaf := t.firstLeaf(); leaf != nil; leaf = leaf.Next {
		for _, group := range leaf.Groups {
			n += len(group)
		}
	}
	return n
}

// Keys returns every resident key in ascending order, walking the leaf
// chain.
func (t *Tree[R]) Keys() []int {
	var keys []int
	for leaf := t.firstLeaf(); leaf != nil; leaf = leaf.Next {
		keys = append(keys, leaf.Keys...)
	}
	return keys
}

// findLeaf descends from the root to the leaf owning key: at each
// internal node the first child index i with key < Keys[i] is taken,
// defaulting to the last child.
func (t *Tree[R]) findLeaf(key int) *base.Node[R] {
	if t.leaves != nil {
		if leaf, ok := t.leaves.Get(key); ok {
			return leaf
		}
	}

	n := t.root
	for !n.Leaf {
		n = n.Children[n.ChildIndex(key)]
	}

	if t.leaves != nil {
		t.leaves.Add(key, n)
	}
	return n
}

// firstLeaf returns the leftmost leaf, the head of the scan chain.
func (t *Tree[R]) firstLeaf() *base.Node[R] {
	n := t.root
	for !n.Leaf {
		n = n.Children[0]
	}
	return n
}

// invalidate drops all cached leaf lookups. Called on every mutation
// before the structure changes become visible.
func (t *Tree[R]) invalidate() {
	if t.leaves != nil {
		t.leaves.Purge()
	}
}
