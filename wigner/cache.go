// SPDX-License-Identifier: MIT

package wigner

import "sync"

// key is the six-integer identity of one coupling coefficient.
type key struct {
	l1, l2, l3 int
	m1, m2, m3 int
}

// Cache memoizes an Evaluator per distinct six-integer key, forever.
// Construct once and share by reference; independent caches never
// exchange entries, so tests can observe evaluation counts in isolation.
type Cache struct {
	mu    sync.RWMutex
	eval  Evaluator
	table map[key]float64
}

// NewCache returns a Cache backed by the exact Coefficient evaluator.
func NewCache() *Cache {
	return NewCacheWith(Coefficient)
}

// NewCacheWith returns a Cache backed by a caller-supplied evaluator.
// Panics on a nil evaluator: that is a programmer error, not a runtime
// condition.
func NewCacheWith(eval Evaluator) *Cache {
	if eval == nil {
		panic("wigner: nil evaluator")
	}
	return &Cache{eval: eval, table: make(map[key]float64)}
}

// Get returns the coupling coefficient for the key, computing it on
// first request and reusing the stored value thereafter. Safe for
// concurrent use; a populate race recomputes the same pure value.
func (c *Cache) Get(l1, l2, l3, m1, m2, m3 int) float64 {
	k := key{l1: l1, l2: l2, l3: l3, m1: m1, m2: m2, m3: m3}

	c.mu.RLock()
	v, ok := c.table[k]
	c.mu.RUnlock()
	if ok {
		return v
	}

	v = c.eval(l1, l2, l3, m1, m2, m3)
	c.mu.Lock()
	c.table[k] = v
	c.mu.Unlock()
	return v
}

// Len reports the number of memoized entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.table)
}
