// Package cache provides a bounded key-to-leaf lookup cache so repeated
// point lookups between mutations skip the root-to-leaf descent.
package cache

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/elastic/go-freelru"

	"github.com/4iKZ/MySQL-InnoDB-B-Tree/internal/base"
)

// Lookup maps keys to the leaf currently owning them. Entries are only
// valid until the next mutation; the owning tree purges the whole cache
// on every structural change rather than tracking which leaves moved.
type Lookup[R comparable] struct {
	lru *freelru.LRU[int, *base.Node[R]]
}

func hashKey(key int) uint32 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(key))
	return uint32(xxhash.Sum64(buf[:]))
}

// NewLookup creates a cache holding at most capacity entries.
func NewLookup[R comparable](capacity int) (*Lookup[R], error) {
	lru, err := freelru.New[int, *base.Node[R]](uint32(capacity), hashKey)
	if err != nil {
		return nil, err
	}
	return &Lookup[R]{lru: lru}, nil
}

// Get returns the cached leaf for key, if any.
func (l *Lookup[R]) Get(key int) (*base.Node[R], bool) {
	return l.lru.Get(key)
}

// Add records the leaf owning key.
func (l *Lookup[R]) Add(key int, leaf *base.Node[R]) {
	l.lru.Add(key, leaf)
}

// Purge drops every entry. Called by the tree before any mutation
// becomes visible, since splits and merges relocate keys wholesale.
func (l *Lookup[R]) Purge() {
	l.lru.Purge()
}

// Len returns the number of cached entries.
func (l *Lookup[R]) Len() int {
	return l.lru.Len()
}
