package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTLPlaytimeCache(t *testing.T) {
	t.Parallel()

	t.Run("Put and Get", func(t *testing.T) {
		t.Parallel()

		playtimeCache, stop := NewTTLPlaytimeCache(1000*time.Second, 0)
		defer stop()

		playtimeCache.Put(76561198000000000, 3600)

		seconds, ok := playtimeCache.Get(76561198000000000)
		assert.True(t, ok, "Expected entry to exist")
		assert.Equal(t, 3600, seconds)
	})

	t.Run("Get missing", func(t *testing.T) {
		t.Parallel()

		playtimeCache, stop := NewTTLPlaytimeCache(1000*time.Second, 0)
		defer stop()

		_, ok := playtimeCache.Get(76561198000000000)
		assert.False(t, ok)
	})

	t.Run("Put overwrites", func(t *testing.T) {
		t.Parallel()

		playtimeCache, stop := NewTTLPlaytimeCache(1000*time.Second, 0)
		defer stop()

		playtimeCache.Put(1, 10)
		playtimeCache.Put(1, 20)

		seconds, ok := playtimeCache.Get(1)
		require.True(t, ok)
		require.Equal(t, 20, seconds)
		require.Equal(t, 1, playtimeCache.Len())
	})

	t.Run("entries expire", func(t *testing.T) {
		t.Parallel()

		playtimeCache, stop := NewTTLPlaytimeCache(20*time.Millisecond, 0)
		defer stop()

		playtimeCache.Put(1, 10)

		require.Eventually(t, func() bool {
			_, ok := playtimeCache.Get(1)
			return !ok
		}, 5*time.Second, 10*time.Millisecond)
	})

	t.Run("capacity bounds the number of entries", func(t *testing.T) {
		t.Parallel()

		playtimeCache, stop := NewTTLPlaytimeCache(0, 2)
		defer stop()

		playtimeCache.Put(1, 10)
		playtimeCache.Put(2, 20)
		playtimeCache.Put(3, 30)

		require.Equal(t, 2, playtimeCache.Len())

		seconds, ok := playtimeCache.Get(3)
		require.True(t, ok)
		require.Equal(t, 30, seconds)
	})
}
