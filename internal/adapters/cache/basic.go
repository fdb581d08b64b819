package cache

import "sync"

// Unbounded playtime cache. Entries are never evicted or expired.
type basicPlaytimeCache struct {
	cache     map[uint64]int
	cacheLock sync.Mutex
}

func (c *basicPlaytimeCache) Get(userID uint64) (int, bool) {
	c.cacheLock.Lock()
	defer c.cacheLock.Unlock()

	seconds, ok := c.cache[userID]
	return seconds, ok
}

func (c *basicPlaytimeCache) Put(userID uint64, seconds int) {
	c.cacheLock.Lock()
	defer c.cacheLock.Unlock()

	c.cache[userID] = seconds
}

func (c *basicPlaytimeCache) Len() int {
	c.cacheLock.Lock()
	defer c.cacheLock.Unlock()

	return len(c.cache)
}

func NewBasicPlaytimeCache() *basicPlaytimeCache {
	return &basicPlaytimeCache{
		cache: make(map[uint64]int),
	}
}
