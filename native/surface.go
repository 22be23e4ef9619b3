// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

import (
	"fmt"
	"image"
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/surface"
	"github.com/gogpu/surface/internal/scope"
)

// sharedAlphaCache serves surfaces created through the registry without
// an explicit cache capacity.
var sharedAlphaCache = sync.OnceValue(func() *AlphaCache {
	return NewAlphaCache(0)
})

func init() {
	surface.Register("native", func(width, height float64, cfg surface.Config) (surface.Surface, error) {
		alpha := sharedAlphaCache()
		if cfg.ImageCacheCapacity > 0 {
			alpha = NewAlphaCache(cfg.ImageCacheCapacity)
		}
		return newSurface(pixels(width), pixels(height), alpha, cfg), nil
	})
}

// pixels rounds a dimension up to whole pixels.
func pixels(v float64) int {
	return int(math.Ceil(v))
}

// Surface draws onto a *gg.Context. Each open scope holds one level of
// the context's state stack, so Restore unwinds transforms and clips
// together.
type Surface struct {
	ctx    *gg.Context
	scopes *scope.Stack[struct{}]

	measurer surface.Measurer
	alpha    *AlphaCache
}

var _ surface.Surface = (*Surface)(nil)

// New returns a transparent surface of width x height pixels. A nil alpha
// cache gives the surface a private one sized by the options.
func New(width, height int, alpha *AlphaCache, opts ...surface.Option) (*Surface, error) {
	if err := surface.ValidateSize(float64(width), float64(height)); err != nil {
		return nil, err
	}
	cfg := surface.NewConfig(opts...)
	if alpha == nil {
		alpha = NewAlphaCache(cfg.ImageCacheCapacity)
	}
	return newSurface(width, height, alpha, cfg), nil
}

func newSurface(width, height int, alpha *AlphaCache, cfg surface.Config) *Surface {
	return &Surface{
		ctx:      gg.NewContext(width, height),
		scopes:   scope.New(struct{}{}),
		measurer: cfg.Measurer,
		alpha:    alpha,
	}
}

// Context returns the underlying drawing context.
func (s *Surface) Context() *gg.Context { return s.ctx }

// Width returns the width in pixels.
func (s *Surface) Width() int { return s.ctx.Width() }

// Height returns the height in pixels.
func (s *Surface) Height() int { return s.ctx.Height() }

// Depth returns the number of open scopes, counting the root.
func (s *Surface) Depth() int { return s.scopes.Depth() }

// Image returns the rendered image.
func (s *Surface) Image() image.Image { return s.ctx.Image() }

// WriteTo encodes the image as PNG to w. It implements io.WriterTo.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	if err := s.ctx.EncodePNG(cw); err != nil {
		return cw.n, fmt.Errorf("native: encode png: %w", err)
	}
	return cw.n, nil
}

// SavePNG writes the image to the named file.
func (s *Surface) SavePNG(path string) error {
	if err := s.ctx.SavePNG(path); err != nil {
		return fmt.Errorf("native: save png: %w", err)
	}
	return nil
}

// Close releases the drawing context. The alpha cache may be shared and
// is left intact.
func (s *Surface) Close() error {
	st := s.alpha.Stats()
	surface.Logger().Debug("native: surface closed",
		"alpha_cached", st.Len,
		"alpha_hit_rate", st.HitRate(),
		"alpha_evictions", st.Evictions)
	return s.ctx.Close()
}

// push opens an implicit scope.
func (s *Surface) push() {
	s.ctx.Push()
	s.scopes.Push(struct{}{})
}

// ScaleTransform implements surface.Surface.
func (s *Surface) ScaleTransform(sx, sy float64) {
	s.push()
	s.ctx.Scale(sx, sy)
}

// TranslateTransform implements surface.Surface.
func (s *Surface) TranslateTransform(dx, dy float64) {
	s.push()
	s.ctx.Translate(dx, dy)
}

// RotateTransform implements surface.Surface.
func (s *Surface) RotateTransform(angle float64) {
	s.push()
	s.ctx.Rotate(angle * math.Pi / 180)
}

// MultiplyTransform implements surface.Surface.
func (s *Surface) MultiplyTransform(m gg.Matrix) {
	s.push()
	s.ctx.Transform(m)
}

// IntersectClipRect implements surface.Surface.
func (s *Surface) IntersectClipRect(r surface.Rect) {
	s.push()
	s.ctx.ClipRect(r.X, r.Y, r.Width, r.Height)
}

// IntersectClipPath implements surface.Surface. An unsupported path opens
// no scope.
func (s *Surface) IntersectClipPath(p surface.PathSource) error {
	if err := s.setPath(p); err != nil {
		return fmt.Errorf("native: clip path: %w", err)
	}
	s.push()
	s.ctx.Clip()
	return nil
}

// Save implements surface.Surface.
func (s *Surface) Save() surface.Handle {
	s.ctx.Push()
	return s.scopes.Save(struct{}{})
}

// Restore implements surface.Surface.
func (s *Surface) Restore(h surface.Handle) error {
	n, err := s.scopes.Restore(h)
	if err != nil {
		return fmt.Errorf("native: restore: %w", err)
	}
	for range n {
		s.ctx.Pop()
	}
	return nil
}

// MeasureString implements surface.Surface.
func (s *Surface) MeasureString(str string, font *surface.Font) (width, height float64) {
	return s.measurer.MeasureString(str, font)
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
