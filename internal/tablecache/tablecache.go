// Package tablecache keeps derived feedback tables around so repeated runs
// with the same non-default polynomial pay the 256×8-step derivation once.
// Tables are immutable, so handing the same pointer to every caller is safe.
package tablecache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"memcheck-core/lfsr"
)

// Cache is a bounded polynomial → table map with LRU eviction.
type Cache struct {
	lru *lru.Cache[uint32, *lfsr.Table]
}

// New returns a cache holding up to size tables; size <= 0 picks a default.
func New(size int) *Cache {
	if size <= 0 {
		size = 16
	}
	c, err := lru.New[uint32, *lfsr.Table](size)
	if err != nil {
		// lru.New only fails for non-positive sizes, excluded above.
		panic(err)
	}
	return &Cache{lru: c}
}

// Get returns the feedback table for poly, deriving it on first use.
func (c *Cache) Get(poly uint32) *lfsr.Table {
	if t, ok := c.lru.Get(poly); ok {
		return t
	}
	t := lfsr.DeriveTable(poly)
	c.lru.Add(poly, t)
	return t
}

// Len reports how many tables are cached.
func (c *Cache) Len() int { return c.lru.Len() }
