// Package memo holds previously computed list results so that repeated,
// unfiltered list queries for the same table, attribute and language do
// not hit the store again. Entries live until explicitly invalidated or
// the process exits.
package memo

import "sync"

// Key identifies one memoized list result. Everything that changes the
// shape of an unfiltered list query participates: the fallback chain
// depends on the source language, the row order on the sort flag.
type Key struct {
	Table     string
	Attribute string
	Language  string
	Source    string
	Sorted    bool
}

// Cache is a process-wide memo for list results. Callers that persist
// writes to a memoized table are expected to call Invalidate afterwards;
// the cache performs no invalidation of its own.
type Cache interface {
	Get(key Key) (any, bool)
	Set(key Key, value any)
	Invalidate(table string)
	Flush()
}

type inMemoryCache struct {
	entries sync.Map // map[Key]any
}

// NewCache returns an empty in-memory cache.
func NewCache() Cache {
	return &inMemoryCache{}
}

func (c *inMemoryCache) Get(key Key) (any, bool) {
	return c.entries.Load(key)
}

func (c *inMemoryCache) Set(key Key, value any) {
	c.entries.Store(key, value)
}

// Invalidate drops every entry recorded for the given table.
func (c *inMemoryCache) Invalidate(table string) {
	c.entries.Range(func(key, _ any) bool {
		if k, ok := key.(Key); ok && k.Table == table {
			c.entries.Delete(key)
		}
		return true
	})
}

// Flush drops all entries.
func (c *inMemoryCache) Flush() {
	c.entries.Range(func(key, _ any) bool {
		c.entries.Delete(key)
		return true
	})
}
