package bptree

import (
	"github.com/4iKZ/MySQL-InnoDB-B-Tree/internal/base"
)

// Cursor provides ordered iteration over the tree's keys by walking
// the leaf chain. A cursor is a read-only view: it is invalidated by
// any Insert or Delete on the tree and must not be used across
// mutating calls.
//
// Usage:
//
//	for c := tree.Cursor(); c.Valid(); c.Next() {
//		process(c.Key(), c.Rows())
//	}
type Cursor[R comparable] struct {
	leaf  *base.Node[R]
	slot  int
	valid bool
}

// Cursor returns a cursor positioned at the first key, or an invalid
// cursor for an empty tree.
func (t *Tree[R]) Cursor() *Cursor[R] {
	c := &Cursor[R]{leaf: t.firstLeaf()}
	c.valid = len(c.leaf.Keys) > 0
	return c
}

// Valid reports whether the cursor is positioned on a key.
func (c *Cursor[R]) Valid() bool {
	return c.valid
}

// Next advances to the following key in ascending order, crossing to
// the next leaf in the chain when the current one is exhausted.
func (c *Cursor[R]) Next() {
	if !c.valid {
		return
	}
	c.slot++
	for c.slot >= len(c.leaf.Keys) {
		c.leaf = c.leaf.Next
		c.slot = 0
		if c.leaf == nil {
			c.valid = false
			return
		}
	}
}

// Key returns the key at the cursor position.
func (c *Cursor[R]) Key() int {
	return c.leaf.Keys[c.slot]
}

// Rows returns the group stored at the cursor position, in insertion
// order. The slice aliases tree storage and must not be mutated.
func (c *Cursor[R]) Rows() []R {
	return c.leaf.Groups[c.slot]
}
