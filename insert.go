package bptree

import (
	"github.com/4iKZ/MySQL-InnoDB-B-Tree/internal/base"
)

// Insert places row into the tree under the key extracted by the
// tree's KeyFunc.
//
// Splitting is proactive and top-down: a full root is split before the
// descent begins, and a full child is split before it is descended
// into, so no upward pass is ever needed after the leaf mutation.
func (t *Tree[R]) Insert(row R) {
	key := t.key(row)
	t.invalidate()

	if t.root.IsFull() {
		// Grow the tree by one level, then split the old root as the
		// sole child of the new one.
		newRoot := t.newNode(false)
		newRoot.Children = append(newRoot.Children, t.root)
		t.root.Parent = newRoot
		t.root = newRoot
		t.splitChild(newRoot, 0)
	}

	t.insertNonFull(t.root, key, row)
}

// insertNonFull descends from a non-full node to the owning leaf and
// places the row there.
func (t *Tree[R]) insertNonFull(n *base.Node[R], key int, row R) {
	for !n.Leaf {
		i := n.ChildIndex(key)
		if n.Children[i].IsFull() {
			t.splitChild(n, i)
			// The promoted separator now sits at Keys[i]; keys at or
			// above it route to the new right sibling.
			if key >= n.Keys[i] {
				i++
			}
		}
		n = n.Children[i]
	}

	pos := 0
	for pos < len(n.Keys) && n.Keys[pos] < key {
		pos++
	}

	if pos < len(n.Keys) && n.Keys[pos] == key {
		if t.unique {
			// Primary-key semantics: last write wins.
			n.Groups[pos] = []R{row}
		} else {
			// Secondary-index semantics: aggregate in insertion order.
			n.Groups[pos] = append(n.Groups[pos], row)
		}
		return
	}

	n.InsertSlot(pos, key, []R{row})
}

// splitChild splits the full child at index i of parent.
//
// Leaf split: the right sibling takes all slots from the midpoint on
// and its first key is duplicated upward as the new separator — leaf
// keys never leave the leaf level. Internal split: the midpoint key is
// promoted and removed, becoming the separator.
func (t *Tree[R]) splitChild(parent *base.Node[R], i int) {
	child := parent.Children[i]
	mid := len(child.Keys) / 2

	right := t.newNode(child.Leaf)
	right.Parent = parent

	var sep int
	if child.Leaf {
		right.Keys = append([]int(nil), child.Keys[mid:]...)
		right.Groups = append([][]R(nil), child.Groups[mid:]...)
		child.Keys = child.Keys[:mid]
		child.Groups = child.Groups[:mid]

		// Chain insertion: right slots in immediately after child.
		right.Next = child.Next
		child.Next = right

		sep = right.Keys[0]
	} else {
		sep = child.Keys[mid]
		right.Keys = append([]int(nil), child.Keys[mid+1:]...)
		right.Children = append([]*base.Node[R](nil), child.Children[mid+1:]...)
		for _, c := range right.Children {
			c.Parent = right
		}
		child.Keys = child.Keys[:mid]
		child.Children = child.Children[:mid+1]
	}

	parent.InsertKey(i, sep)
	parent.InsertChild(i+1, right)
}
