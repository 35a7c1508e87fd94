package base

const (
	// Order is the branching factor: the maximum number of children an
	// internal Node may hold. Fixed at 4 to mirror a classic textbook
	// InnoDB-style index page for inspection purposes.
	Order = 4

	// MaxKeys is the maximum key count for any Node.
	MaxKeys = Order - 1

	// MinKeys is the minimum key count for non-root nodes.
	MinKeys = Order/2 - 1
)

// Node is a tree page, either internal or leaf.
//
// For internal nodes Children holds len(Keys)+1 subtrees and Groups is
// nil. For leaf nodes Groups holds one non-empty row group per key
// (len(Groups) == len(Keys)) and Children is nil.
//
// Parent and Next are non-owning back/side references: Parent points at
// the unique internal node listing this Node among its Children (nil
// for the root), Next at the leaf immediately following in ascending
// key order (nil for the last leaf). External readers must treat the
// whole structure as a snapshot valid only until the next mutating
// call on the owning tree.
type Node[R comparable] struct {
	// ID is assigned once at creation and is unique among live nodes of
	// the owning tree. Used for external correlation only.
	ID uint64

	Leaf bool

	// Keys is strictly ascending and unique within the Node.
	Keys []int

	// Groups holds the rows per key, leaf nodes only. A group preserves
	// insertion order and is never split across leaves.
	Groups [][]R

	// Children holds the subtrees, internal nodes only.
	Children []*Node[R]

	Parent *Node[R]
	Next   *Node[R]
}

// IsFull reports whether the Node is at its key capacity.
func (n *Node[R]) IsFull() bool {
	return len(n.Keys) >= MaxKeys
}

// IsUnderflow reports whether a non-root Node holds too few keys.
func (n *Node[R]) IsUnderflow() bool {
	return len(n.Keys) < MinKeys
}

// ChildIndex returns the index of the child to descend into for key:
// the first i such that key < Keys[i], defaulting to the last child.
func (n *Node[R]) ChildIndex(key int) int {
	for i, k := range n.Keys {
		if key < k {
			return i
		}
	}
	return len(n.Keys)
}

// FindKey returns the slot index of key in a leaf, or -1 if absent.
// The scan stops early since Keys is ascending.
func (n *Node[R]) FindKey(key int) int {
	for i, k := range n.Keys {
		if k == key {
			return i
		}
		if k > key {
			return -1
		}
	}
	return -1
}

// ChildPos returns the index of child within n.Children, or -1 if n
// does not list it.
func (n *Node[R]) ChildPos(child *Node[R]) int {
	for i, c := range n.Children {
		if c == child {
			return i
		}
	}
	return -1
}

// MinKey returns the minimum key reachable by descending the
// leftmost-child chain from n. ok is false when that leaf is empty.
func (n *Node[R]) MinKey() (key int, ok bool) {
	for !n.Leaf {
		n = n.Children[0]
	}
	if len(n.Keys) == 0 {
		return 0, false
	}
	return n.Keys[0], true
}

// InsertSlot places a (key, group) pair at slot i of a leaf.
func (n *Node[R]) InsertSlot(i int, key int, group []R) {
	n.Keys = append(n.Keys, 0)
	copy(n.Keys[i+1:], n.Keys[i:])
	n.Keys[i] = key

	n.Groups = append(n.Groups, nil)
	copy(n.Groups[i+1:], n.Groups[i:])
	n.Groups[i] = group
}

// RemoveSlot drops the (key, group) pair at slot i of a leaf.
func (n *Node[R]) RemoveSlot(i int) {
	n.Keys = append(n.Keys[:i], n.Keys[i+1:]...)
	copy(n.Groups[i:], n.Groups[i+1:])
	n.Groups[len(n.Groups)-1] = nil
	n.Groups = n.Groups[:len(n.Groups)-1]
}

// InsertChild places child at index i of an internal node's Children.
func (n *Node[R]) InsertChild(i int, child *Node[R]) {
	n.Children = append(n.Children, nil)
	copy(n.Children[i+1:], n.Children[i:])
	n.Children[i] = child
}

// RemoveChild drops the child at index i of an internal node.
func (n *Node[R]) RemoveChild(i int) {
	copy(n.Children[i:], n.Children[i+1:])
	n.Children[len(n.Children)-1] = nil
	n.Children = n.Children[:len(n.Children)-1]
}

// InsertKey places key at index i of an internal node's Keys.
func (n *Node[R]) InsertKey(i int, key int) {
	n.Keys = append(n.Keys, 0)
	copy(n.Keys[i+1:], n.Keys[i:])
	n.Keys[i] = key
}

// RemoveKey drops the key at index i.
func (n *Node[R]) RemoveKey(i int) {
	n.Keys = append(n.Keys[:i], n.Keys[i+1:]...)
}
