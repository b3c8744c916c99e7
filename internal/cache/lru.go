package cache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru"

	"github.com/edgecomet/uaparser/internal/ruleset"
)

// LRU wraps hashicorp/golang-lru behind the Cache interface (§4.6.1): a
// size-bounded map maintaining access order, evicting least-recently-used
// on overflow. The wrapped cache is already internally locked per entry,
// but §5 specifies a single exclusive lock across get and put for this
// policy, so one is held here rather than relying on the library's own.
type LRU struct {
	mu   sync.Mutex
	inner *lru.Cache
}

// NewLRU builds an LRU cache holding at most capacity entries. Panics if
// capacity is not positive — a programmer error, not a runtime condition
// (§4.9).
func NewLRU(capacity int) *LRU {
	inner, err := lru.New(capacity)
	if err != nil {
		panic("cache: invalid LRU capacity: " + err.Error())
	}
	return &LRU{inner: inner}
}

// Get implements Cache.
func (c *LRU) Get(key string) (ruleset.Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.inner.Get(key)
	if !ok {
		return ruleset.Result{}, false
	}
	return v.(ruleset.Result), true
}

// Put implements Cache.
func (c *LRU) Put(key string, value ruleset.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.inner.Add(key, value)
}

// Len returns the current number of cached entries, for test assertions.
func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Len()
}
