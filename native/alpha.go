// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/gg"
	"github.com/gogpu/surface"
	"github.com/gogpu/surface/cache"
)

// AlphaSteps is the number of opacity levels faded images are quantized to.
const AlphaSteps = 16

// AlphaKey identifies a faded copy of an image.
type AlphaKey struct {
	ImageID uint64
	Level   uint8 // 1..AlphaSteps-1
}

func hashAlphaKey(k AlphaKey) uint64 {
	return cache.Uint64Hasher(k.ImageID*AlphaSteps + uint64(k.Level))
}

// AlphaLevel quantizes alpha to the nearest of AlphaSteps+1 levels after
// clamping it to [0, 1]. Level 0 is invisible and AlphaSteps is opaque.
func AlphaLevel(alpha float64) uint8 {
	if math.IsNaN(alpha) {
		return 0
	}
	a := min(max(alpha, 0), 1)
	return uint8(math.Round(a * AlphaSteps))
}

// AlphaCache memoizes faded copies of images keyed by image and opacity
// level. It is safe for concurrent use; a missing copy is built under the
// lock of its shard only.
type AlphaCache struct {
	entries *cache.ShardedCache[AlphaKey, *gg.ImageBuf]
}

// NewAlphaCache returns a cache holding up to capacity faded images per
// shard. A capacity <= 0 selects cache.DefaultCapacity.
func NewAlphaCache(capacity int) *AlphaCache {
	return &AlphaCache{entries: cache.NewSharded[AlphaKey, *gg.ImageBuf](capacity, hashAlphaKey)}
}

// Faded returns img with its alpha multiplied by level/AlphaSteps.
func (c *AlphaCache) Faded(img *surface.Image, level uint8) (*gg.ImageBuf, error) {
	if level == 0 || level >= AlphaSteps {
		return nil, fmt.Errorf("native: alpha level %d out of range", level)
	}
	key := AlphaKey{ImageID: img.ID(), Level: level}
	return c.entries.GetOrCreate(key, func() (*gg.ImageBuf, error) {
		src, err := img.Pixels()
		if err != nil {
			return nil, err
		}
		surface.Logger().Debug("native: fading image", "image", key.ImageID, "level", level)
		return fade(src, level), nil
	})
}

// Forget drops every faded copy of img, for callers that replace or
// release an image.
func (c *AlphaCache) Forget(img *surface.Image) {
	for level := uint8(1); level < AlphaSteps; level++ {
		c.entries.Delete(AlphaKey{ImageID: img.ID(), Level: level})
	}
}

// Reset drops every cached copy. Counters are kept.
func (c *AlphaCache) Reset() {
	c.entries.Clear()
}

// Stats reports the cache counters.
func (c *AlphaCache) Stats() cache.Stats {
	return c.entries.Stats()
}

// Len returns the number of cached copies.
func (c *AlphaCache) Len() int {
	return c.entries.Len()
}

func fade(src *gg.ImageBuf, level uint8) *gg.ImageBuf {
	in := src.ToStdImage()
	b := in.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	mask := image.NewUniform(color.Alpha{A: uint8(math.Round(float64(level) * 255 / AlphaSteps))})
	draw.DrawMask(out, out.Bounds(), in, b.Min, mask, image.Point{}, draw.Src)
	return gg.ImageBufFromImage(out)
}
