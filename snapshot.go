package bptree

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/4iKZ/MySQL-InnoDB-B-Tree/internal/base"
)

// Snapshot is a deep, acyclic copy of the tree shape taken at a point
// in time, safe to serialize and hand to an external collaborator
// (visualization, transmission). Parent back-references are stripped
// and the leaf-chain Next reference is reduced to the peer's id plus
// leaf flag, so encoding never recurses through the cycle or
// re-embeds a neighboring subtree.
type Snapshot[R comparable] struct {
	Order int              `json:"order"`
	Root  *SnapshotNode[R] `json:"root"`
}

// SnapshotNode mirrors one tree node without back-references.
type SnapshotNode[R comparable] struct {
	ID       uint64             `json:"id"`
	Leaf     bool               `json:"leaf"`
	Keys     []int              `json:"keys"`
	Groups   [][]R              `json:"groups,omitempty"`
	Children []*SnapshotNode[R] `json:"children,omitempty"`

	// Next identifies the following leaf in the scan chain by id only.
	// Nil for internal nodes and for the last leaf.
	Next *uint64 `json:"next,omitempty"`
}

// Snapshot copies the current tree shape. Unlike Root, the result
// remains valid across later mutations.
func (t *Tree[R]) Snapshot() *Snapshot[R] {
	return &Snapshot[R]{
		Order: base.Order,
		Root:  exportNode(t.root),
	}
}

func exportNode[R comparable](n *base.Node[R]) *SnapshotNode[R] {
	out := &SnapshotNode[R]{
		ID:   n.ID,
		Leaf: n.Leaf,
		Keys: append([]int(nil), n.Keys...),
	}
	if n.Leaf {
		out.Groups = make([][]R, len(n.Groups))
		for i, group := range n.Groups {
			out.Groups[i] = append([]R(nil), group...)
		}
		if n.Next != nil {
			id := n.Next.ID
			out.Next = &id
		}
		return out
	}
	out.Children = make([]*SnapshotNode[R], len(n.Children))
	for i, child := range n.Children {
		out.Children[i] = exportNode(child)
	}
	return out
}

// Digest returns an xxhash64 of the snapshot's structure: node ids,
// kinds, keys, group sizes, and chain links. Two snapshots of the same
// tree digest equal; a consumer holding a stale snapshot can compare
// digests to detect that the tree mutated under it. Row contents do
// not participate.
func (s *Snapshot[R]) Digest() uint64 {
	d := xxhash.New()
	var buf [8]byte

	write := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		d.Write(buf[:])
	}

	var walk func(n *SnapshotNode[R])
	walk = func(n *SnapshotNode[R]) {
		write(n.ID)
		if n.Leaf {
			write(1)
		} else {
			write(0)
		}
		write(uint64(len(n.Keys)))
		for i, k := range n.Keys {
			write(uint64(k))
			if n.Leaf {
				write(uint64(len(n.Groups[i])))
			}
		}
		if n.Next != nil {
			write(*n.Next)
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(s.Root)

	return d.Sum64()
}
