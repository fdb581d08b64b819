package cache

import "time"

// Picks the playtime cache for the given policy. No ttl and no capacity gives the unbounded cache.
func NewPlaytimeCache(ttl time.Duration, capacity uint64) (PlaytimeCache, func()) {
	if ttl <= 0 && capacity == 0 {
		return NewBasicPlaytimeCache(), func() {}
	}
	return NewTTLPlaytimeCache(ttl, capacity)
}
