package bptree

import "errors"

// Verification errors. The mutation surface itself never fails: absent
// keys, absent rows, and operations on an empty tree all degrade to
// no-ops. These sentinels are returned only by Verify when the tree
// structure itself is damaged.
var (
	ErrCorruption      = errors.New("tree corruption detected")
	ErrKeyCount        = errors.New("node key count out of range")
	ErrKeyOrder        = errors.New("node keys not strictly ascending")
	ErrSeparatorBound  = errors.New("separator bound violated")
	ErrLeafDepth       = errors.New("leaves at unequal depth")
	ErrChainOrder      = errors.New("leaf chain out of order")
	ErrChainCoverage   = errors.New("leaf chain does not cover all leaves")
	ErrParentMismatch  = errors.New("parent/child references inconsistent")
	ErrGroupShape      = errors.New("leaf group shape invalid")
	ErrChildCount      = errors.New("internal child count mismatch")
	ErrDuplicateNodeID = errors.New("duplicate node id")
)
