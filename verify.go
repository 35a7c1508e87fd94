package bptree

import (
	"fmt"

	"github.com/4iKZ/MySQL-InnoDB-B-Tree/internal/base"
)

// Verify walks the whole tree and checks the structural invariants:
// key-count bounds, equal leaf depth, separator bounds, leaf group
// shape, chain ordering and coverage, and parent/child consistency.
// It returns nil on a healthy tree and the first violation found
// otherwise, wrapped with the offending node id.
func (t *Tree[R]) Verify() error {
	v := &verifier[R]{
		tree: t,
		seen: make(map[uint64]bool),
	}
	if err := v.node(t.root, nil, nil, nil, 0); err != nil {
		return err
	}
	return v.chain()
}

type verifier[R comparable] struct {
	tree      *Tree[R]
	seen      map[uint64]bool
	leafDepth int
	leaves    []*base.Node[R] // leaves in left-to-right tree order
}

// node checks the subtree rooted at n. lo and hi are the key bounds
// inherited from ancestor separators: lo inclusive, hi exclusive.
func (v *verifier[R]) node(n *base.Node[R], parent *base.Node[R], lo, hi *int, depth int) error {
	if v.seen[n.ID] {
		return fmt.Errorf("node %d: %w", n.ID, ErrDuplicateNodeID)
	}
	v.seen[n.ID] = true

	if n.Parent != parent {
		return fmt.Errorf("node %d: %w", n.ID, ErrParentMismatch)
	}

	if err := v.keyCount(n, parent); err != nil {
		return err
	}

	for i, k := range n.Keys {
		if i > 0 && n.Keys[i-1] >= k {
			return fmt.Errorf("node %d: %w", n.ID, ErrKeyOrder)
		}
		if lo != nil && k < *lo {
			return fmt.Errorf("node %d: key %d below separator %d: %w", n.ID, k, *lo, ErrSeparatorBound)
		}
		if hi != nil && k >= *hi {
			return fmt.Errorf("node %d: key %d not below separator %d: %w", n.ID, k, *hi, ErrSeparatorBound)
		}
	}

	if n.Leaf {
		if len(n.Children) != 0 || len(n.Groups) != len(n.Keys) {
			return fmt.Errorf("node %d: %w", n.ID, ErrGroupShape)
		}
		for _, group := range n.Groups {
			if len(group) == 0 {
				return fmt.Errorf("node %d: empty group: %w", n.ID, ErrGroupShape)
			}
		}
		if len(v.leaves) == 0 {
			v.leafDepth = depth
		} else if depth != v.leafDepth {
			return fmt.Errorf("node %d: %w", n.ID, ErrLeafDepth)
		}
		v.leaves = append(v.leaves, n)
		return nil
	}

	if len(n.Groups) != 0 || len(n.Children) != len(n.Keys)+1 {
		return fmt.Errorf("node %d: %w", n.ID, ErrChildCount)
	}
	if n.Next != nil {
		return fmt.Errorf("internal node %d carries a chain link: %w", n.ID, ErrCorruption)
	}

	for i, child := range n.Children {
		clo, chi := lo, hi
		if i > 0 {
			clo = &n.Keys[i-1]
		}
		if i < len(n.Keys) {
			chi = &n.Keys[i]
		}
		if err := v.node(child, n, clo, chi, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (v *verifier[R]) keyCount(n *base.Node[R], parent *base.Node[R]) error {
	if parent == nil {
		// Root: an empty leaf is the canonical empty tree; an internal
		// root needs at least one separator.
		if len(n.Keys) > base.MaxKeys || (!n.Leaf && len(n.Keys) == 0) {
			return fmt.Errorf("root %d holds %d keys: %w", n.ID, len(n.Keys), ErrKeyCount)
		}
		return nil
	}
	if len(n.Keys) < base.MinKeys || len(n.Keys) > base.MaxKeys {
		return fmt.Errorf("node %d holds %d keys: %w", n.ID, len(n.Keys), ErrKeyCount)
	}
	return nil
}

// chain checks that walking Next from the leftmost leaf visits exactly
// the tree's leaves, left to right, with keys strictly ascending across
// the whole walk, and that internal nodes carry no chain link.
func (v *verifier[R]) chain() error {
	i := 0
	last := (*int)(nil)
	for leaf := v.tree.firstLeaf(); leaf != nil; leaf = leaf.Next {
		if i >= len(v.leaves) || v.leaves[i] != leaf {
			return fmt.Errorf("node %d: %w", leaf.ID, ErrChainCoverage)
		}
		i++
		for _, k := range leaf.Keys {
			if last != nil && *last >= k {
				return fmt.Errorf("node %d: key %d after %d: %w", leaf.ID, k, *last, ErrChainOrder)
			}
			key := k
			last = &key
		}
	}
	if i != len(v.leaves) {
		return fmt.Errorf("%w: chain visited %d of %d leaves", ErrChainCoverage, i, len(v.leaves))
	}
	return nil
}
