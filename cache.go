package sqlsanitize

import (
	"sync"
	"sync/atomic"
)

// defaultCacheCapacity is the number of distinct statements the default
// cache will hold before it freezes.
const defaultCacheCapacity = 1000

// cache is a bounded, insertion-frozen memoization of sanitize results,
// keyed on the raw input string. Reads never block: they load an
// immutable map snapshot through an atomic pointer. Writes are
// serialized through a single mutex and build a new snapshot (the old
// one is left untouched for any reader still holding it), copy-on-write
// style. Once the snapshot reaches capacity, it is frozen: further
// misses are computed and returned but never inserted.
type cache struct {
	capacity int

	snapshot atomic.Pointer[map[string]StatementInfo]
	size     atomic.Int32

	writeMu sync.Mutex
}

func newCache(capacity int) *cache {
	c := &cache{capacity: capacity}
	empty := make(map[string]StatementInfo)
	c.snapshot.Store(&empty)
	return c
}

// get returns the cached StatementInfo for input if present, computing
// and (capacity permitting) storing it via compute otherwise.
func (c *cache) get(input string, compute func() StatementInfo) StatementInfo {
	if m := c.snapshot.Load(); m != nil {
		if info, ok := (*m)[input]; ok {
			return info
		}
	}

	info := compute()

	if int(c.size.Load()) >= c.capacity {
		// Frozen: skip the insertion lock entirely, rather than having
		// every miss serialize on it once the cache is full.
		return info
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	m := c.snapshot.Load()
	if _, ok := (*m)[input]; ok {
		// lost the race to another writer
		return (*m)[input]
	}
	if len(*m) >= c.capacity {
		// frozen: compute but do not grow the snapshot
		return info
	}

	next := make(map[string]StatementInfo, len(*m)+1)
	for k, v := range *m {
		next[k] = v
	}
	next[input] = info
	c.snapshot.Store(&next)
	c.size.Store(int32(len(next)))

	return info
}

func (c *cache) len() int {
	return int(c.size.Load())
}

var defaultCache = newCache(defaultCacheCapacity)

// Get sanitizes input, serving the result from the process-wide cache when
// input was stored there before the cache froze at capacity.
// Get is safe for concurrent use.
func Get(input string) StatementInfo {
	return defaultCache.get(input, func() StatementInfo {
		return sanitize(input)
	})
}

// CacheLen reports the number of distinct statements currently held in the
// process-wide cache.
func CacheLen() int {
	return defaultCache.len()
}

// CacheCapacity reports the process-wide cache's configured capacity.
func CacheCapacity() int {
	return defaultCache.capacity
}

// SetCacheCapacity replaces the process-wide cache with an empty one of the
// given capacity. It is intended for tests and for CLI configuration at
// startup, not for runtime tuning: existing cached results are discarded.
func SetCacheCapacity(capacity int) {
	defaultCache = newCache(capacity)
}
