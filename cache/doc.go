// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cache provides a generic, sharded LRU cache.
//
// Keys are spread over a fixed number of shards by a caller-supplied
// Hasher, and each shard has its own lock, so unrelated keys never
// contend. GetOrCreate builds missing values under the owning shard's
// lock only: two callers asking for the same key create it once, while
// callers on other shards proceed in parallel.
//
//	c := cache.NewSharded[Key, *Value](64, hashKey)
//	v, err := c.GetOrCreate(k, func() (*Value, error) { return build(k) })
package cache
