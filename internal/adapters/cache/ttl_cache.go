package cache

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
)

type ttlPlaytimeCache struct {
	cache *ttlcache.Cache[uint64, int]
}

func (c *ttlPlaytimeCache) Get(userID uint64) (int, bool) {
	item := c.cache.Get(userID)
	if item == nil {
		return 0, false
	}
	return item.Value(), true
}

func (c *ttlPlaytimeCache) Put(userID uint64, seconds int) {
	c.cache.Set(userID, seconds, ttlcache.DefaultTTL)
}

func (c *ttlPlaytimeCache) Len() int {
	return c.cache.Len()
}

// Playtime cache with an expiry and/or a maximum number of entries.
//
// ttl <= 0 disables expiry, capacity == 0 disables the size bound.
// Call the returned function to stop the background cleanup.
func NewTTLPlaytimeCache(ttl time.Duration, capacity uint64) (*ttlPlaytimeCache, func()) {
	options := []ttlcache.Option[uint64, int]{
		ttlcache.WithDisableTouchOnHit[uint64, int](),
	}
	if ttl > 0 {
		options = append(options, ttlcache.WithTTL[uint64, int](ttl))
	}
	if capacity > 0 {
		options = append(options, ttlcache.WithCapacity[uint64, int](capacity))
	}

	playtimeTTLCache := ttlcache.New[uint64, int](options...)

	stop := func() {}
	if ttl > 0 {
		go playtimeTTLCache.Start()
		stop = playtimeTTLCache.Stop
	}

	return &ttlPlaytimeCache{cache: playtimeTTLCache}, stop
}
