// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sameShard sends every key to shard 0 so that eviction order is
// observable.
func sameShard(uint64) uint64 { return 0 }

// put stores v under k through GetOrCreate and reports whether it was
// already cached.
func put[V any](c *ShardedCache[uint64, V], k uint64, v V) bool {
	built := false
	_, _ = c.GetOrCreate(k, func() (V, error) {
		built = true
		return v, nil
	})
	return !built
}

func TestNewShardedDefaults(t *testing.T) {
	c := NewSharded[uint64, int](0, Uint64Hasher)
	assert.Equal(t, DefaultCapacity, c.Stats().Capacity)
	assert.Zero(t, c.Len())

	c = NewSharded[uint64, int](8, Uint64Hasher)
	assert.Equal(t, 8, c.Stats().Capacity)
}

func TestShardedStats(t *testing.T) {
	c := NewSharded[uint64, string](4, Uint64Hasher)
	assert.Zero(t, c.Stats().HitRate())

	assert.False(t, put(c, 1, "one"))
	assert.True(t, put(c, 1, "uno"))
	assert.True(t, put(c, 1, "eins"))

	st := c.Stats()
	assert.Equal(t, 1, st.Len)
	assert.Equal(t, uint64(2), st.Hits)
	assert.Equal(t, uint64(1), st.Misses)
	assert.InDelta(t, 2.0/3, st.HitRate(), 1e-12)
}

func TestShardedEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewSharded[uint64, int](3, sameShard)
	put(c, 1, 1)
	put(c, 2, 2)
	put(c, 3, 3)
	put(c, 1, 1)
	put(c, 4, 4)

	assert.Equal(t, uint64(1), c.Stats().Evictions)
	assert.Equal(t, 3, c.Len())
	for _, k := range []uint64{1, 3, 4} {
		assert.Truef(t, put(c, k, 0), "key %d", k)
	}
	assert.False(t, put(c, 2, 2), "2 was least recently used")
}

func TestShardedGetOrCreate(t *testing.T) {
	c := NewSharded[uint64, string](4, Uint64Hasher)
	calls := 0
	create := func() (string, error) {
		calls++
		return "built", nil
	}

	v, err := c.GetOrCreate(7, create)
	require.NoError(t, err)
	assert.Equal(t, "built", v)

	v, err = c.GetOrCreate(7, create)
	require.NoError(t, err)
	assert.Equal(t, "built", v)
	assert.Equal(t, 1, calls)
}

func TestShardedGetOrCreateErrorNotCached(t *testing.T) {
	c := NewSharded[uint64, string](4, Uint64Hasher)
	boom := errors.New("boom")

	_, err := c.GetOrCreate(1, func() (string, error) { return "", boom })
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, c.Len())

	v, err := c.GetOrCreate(1, func() (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestShardedDeleteClear(t *testing.T) {
	c := NewSharded[uint64, int](4, Uint64Hasher)
	for i := range uint64(10) {
		put(c, i, int(i))
	}
	assert.True(t, c.Delete(3))
	assert.False(t, c.Delete(3))
	assert.Equal(t, 9, c.Len())

	c.Clear()
	assert.Zero(t, c.Len())
	assert.False(t, put(c, 5, 5))
	assert.Equal(t, 1, c.Len())
}

func TestUint64HasherSpreads(t *testing.T) {
	c := NewSharded[uint64, int](1024, Uint64Hasher)
	for i := range uint64(1600) {
		put(c, i, 0)
	}
	for i := range c.shards {
		assert.NotEmptyf(t, c.shards[i].entries, "shard %d is empty", i)
	}
	assert.Equal(t, Uint64Hasher(42), Uint64Hasher(42))
	assert.NotEqual(t, Uint64Hasher(42), Uint64Hasher(43))
}

func TestShardedConcurrentGetOrCreate(t *testing.T) {
	c := NewSharded[uint64, int](64, Uint64Hasher)
	var created atomic.Int64
	var wg sync.WaitGroup

	for g := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range uint64(50) {
				v, err := c.GetOrCreate(k, func() (int, error) {
					created.Add(1)
					return int(k) * 2, nil
				})
				if assert.NoError(t, err, "goroutine %d", g) {
					assert.Equal(t, int(k)*2, v)
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(50), created.Load(), "each key is created once")
	assert.Equal(t, 50, c.Len())
}
