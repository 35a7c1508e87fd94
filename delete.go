package bptree

import (
	"github.com/4iKZ/MySQL-InnoDB-B-Tree/internal/base"
)

// Delete removes every slot matching key. Slots are looked up defensively
// so an accidental duplicate key slot is cleared as well. Deleting an
// absent key is a no-op.
func (t *Tree[R]) Delete(key int) {
	t.remove(key, nil)
}

// DeleteRow removes the single row matching by equality from the group
// holding key; if the group becomes empty the key slot is removed
// entirely. Deleting an absent key or row is a no-op.
func (t *Tree[R]) DeleteRow(key int, row R) {
	t.remove(key, &row)
}

func (t *Tree[R]) remove(key int, row *R) {
	leaf := t.findLeaf(key)

	removed := false
	if row == nil {
		for i := 0; i < len(leaf.Keys); {
			if leaf.Keys[i] == key {
				leaf.RemoveSlot(i)
				removed = true
				continue
			}
			i++
		}
	} else {
		i := leaf.FindKey(key)
		if i >= 0 {
			group := leaf.Groups[i]
			for j, r := range group {
				if r == *row {
					leaf.Groups[i] = append(group[:j], group[j+1:]...)
					removed = true
					break
				}
			}
			if removed && len(leaf.Groups[i]) == 0 {
				leaf.RemoveSlot(i)
			}
		}
	}

	if !removed {
		// Absent target: no mutation at all.
		return
	}
	t.invalidate()

	t.refreshSeparators(leaf)
	t.rebalance(leaf)
	t.collapseRoot()
}

// refreshSeparators walks upward from a mutated leaf repairing stale
// separators: whenever the current node is not its parent's leftmost
// child, the separator guarding it is reset to the minimum key still
// reachable below it. Iterative so stack depth is independent of tree
// height.
func (t *Tree[R]) refreshSeparators(n *base.Node[R]) {
	for n.Parent != nil {
		parent := n.Parent
		if i := parent.ChildPos(n); i > 0 {
			if min, ok := n.MinKey(); ok {
				parent.Keys[i-1] = min
			}
			// An emptied subtree has no minimum; the underflow pass
			// merges it away and removes the separator instead.
		}
		n = parent
	}
}

// rebalance restores the minimum key count from n upward. Borrowing is
// preferred over merging, and the left sibling is tested before the
// right in both cases; the preference order is fixed policy, not an
// accident. Iterative: a merge can underflow the parent, which is then
// handled one level up.
func (t *Tree[R]) rebalance(n *base.Node[R]) {
	for n != t.root && n.IsUnderflow() {
		parent := n.Parent
		i := parent.ChildPos(n)

		if i > 0 && len(parent.Children[i-1].Keys) > base.MinKeys {
			t.borrowFromLeft(parent, i)
			return
		}
		if i < len(parent.Children)-1 && len(parent.Children[i+1].Keys) > base.MinKeys {
			t.borrowFromRight(parent, i)
			return
		}

		if i > 0 {
			t.mergeChildren(parent, i-1)
		} else {
			t.mergeChildren(parent, i)
		}
		n = parent
	}
}

// borrowFromLeft moves one element from the left sibling of
// parent.Children[i] into it.
func (t *Tree[R]) borrowFromLeft(parent *base.Node[R], i int) {
	donor := parent.Children[i-1]
	recv := parent.Children[i]
	t.checkDonor(donor)

	last := len(donor.Keys) - 1
	if recv.Leaf {
		key := donor.Keys[last]
		group := donor.Groups[last]
		donor.Keys = donor.Keys[:last]
		donor.Groups = donor.Groups[:last]

		recv.InsertSlot(0, key, group)
		// Separator reads the receiver only after the donor slot is
		// fully removed; never a transient mid-move value.
		parent.Keys[i-1] = recv.Keys[0]
	} else {
		// Rotate through the parent: the old separator descends, the
		// donor's outermost key ascends.
		recv.InsertKey(0, parent.Keys[i-1])
		parent.Keys[i-1] = donor.Keys[last]
		donor.Keys = donor.Keys[:last]

		moved := donor.Children[len(donor.Children)-1]
		donor.RemoveChild(len(donor.Children) - 1)
		recv.InsertChild(0, moved)
		moved.Parent = recv
	}
}

// borrowFromRight moves one element from the right sibling of
// parent.Children[i] into it.
func (t *Tree[R]) borrowFromRight(parent *base.Node[R], i int) {
	recv := parent.Children[i]
	donor := parent.Children[i+1]
	t.checkDonor(donor)

	if recv.Leaf {
		key := donor.Keys[0]
		group := donor.Groups[0]
		donor.RemoveSlot(0)

		recv.Keys = append(recv.Keys, key)
		recv.Groups = append(recv.Groups, group)
		parent.Keys[i] = donor.Keys[0]
	} else {
		recv.Keys = append(recv.Keys, parent.Keys[i])
		parent.Keys[i] = donor.Keys[0]
		donor.RemoveKey(0)

		moved := donor.Children[0]
		donor.RemoveChild(0)
		recv.Children = append(recv.Children, moved)
		moved.Parent = recv
	}
}

// checkDonor emits the defensive diagnostic for a donor about to be
// emptied. The surplus checks in rebalance prevent this by choosing
// merge instead; hitting it means a policy bug, not a caller error.
func (t *Tree[R]) checkDonor(donor *base.Node[R]) {
	if len(donor.Keys) <= 1 {
		t.logger.Warn("borrow would empty donor sibling", "node", donor.ID, "keys", len(donor.Keys))
	}
}

// mergeChildren folds parent.Children[i+1] into parent.Children[i],
// destroying the absorbed right node.
func (t *Tree[R]) mergeChildren(parent *base.Node[R], i int) {
	left := parent.Children[i]
	right := parent.Children[i+1]

	if left.Leaf {
		left.Keys = append(left.Keys, right.Keys...)
		left.Groups = append(left.Groups, right.Groups...)
		// Splice the chain past the absorbed leaf.
		left.Next = right.Next
	} else {
		left.Keys = append(left.Keys, parent.Keys[i])
		left.Keys = append(left.Keys, right.Keys...)
		left.Children = append(left.Children, right.Children...)
		for _, c := range right.Children {
			c.Parent = left
		}
	}

	parent.RemoveKey(i)
	parent.RemoveChild(i + 1)
	right.Parent = nil
	right.Next = nil
}

// collapseRoot replaces an internal root left with zero keys by its
// sole remaining child, shrinking tree height by one.
func (t *Tree[R]) collapseRoot() {
	if !t.root.Leaf && len(t.root.Keys) == 0 {
		t.root = t.root.Children[0]
		t.root.Parent = nil
	}
}
