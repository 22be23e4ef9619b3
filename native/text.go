// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/surface"
)

// anchor maps an alignment to the fraction of the text extent that lands
// on the anchor point.
func anchor(a surface.Align) float64 {
	switch a {
	case surface.AlignCenter:
		return 0.5
	case surface.AlignFar:
		return 1
	default:
		return 0
	}
}

// DrawString implements surface.Surface. Fonts without a loaded face draw
// nothing.
func (s *Surface) DrawString(str string, font *surface.Font, brush *surface.Brush, x, y float64, format surface.StringFormat) {
	if font == nil || font.Face == nil {
		surface.Logger().Warn("native: DrawString without a font face", "text", str)
		return
	}
	if brush == nil || brush.Color.A <= 0 {
		return
	}
	s.ctx.SetFont(font.Face)
	s.ctx.SetFillBrush(gg.Solid(brush.Color))
	if format.LineAlignment == surface.AlignBaseline {
		w, _ := s.ctx.MeasureString(str)
		s.ctx.DrawString(str, x-w*anchor(format.Alignment), y)
		return
	}
	s.ctx.DrawStringAnchored(str, x, y, anchor(format.Alignment), anchor(format.LineAlignment))
}

// DrawImage implements surface.Surface. An image that fails to load is
// skipped with a warning.
func (s *Surface) DrawImage(img *surface.Image, x, y, width, height float64) {
	buf := s.pixels(img)
	if buf == nil {
		return
	}
	s.ctx.DrawImageEx(buf, gg.DrawImageOptions{X: x, Y: y, DstWidth: width, DstHeight: height})
}

// DrawImageAlpha implements surface.Surface. alpha is quantized with
// AlphaLevel: invisible levels draw nothing, opaque draws the image
// itself and anything in between draws a cached faded copy.
func (s *Surface) DrawImageAlpha(alpha float64, img *surface.Image, dst surface.Rect) {
	level := AlphaLevel(alpha)
	switch {
	case level == 0:
		return
	case level >= AlphaSteps:
		s.DrawImage(img, dst.X, dst.Y, dst.Width, dst.Height)
		return
	case img == nil:
		surface.Logger().Warn("native: DrawImageAlpha with nil image")
		return
	}
	buf, err := s.alpha.Faded(img, level)
	if err != nil {
		surface.Logger().Warn("native: image skipped", "url", img.URL(), "err", err)
		return
	}
	s.ctx.DrawImageEx(buf, gg.DrawImageOptions{X: dst.X, Y: dst.Y, DstWidth: dst.Width, DstHeight: dst.Height})
}

func (s *Surface) pixels(img *surface.Image) *gg.ImageBuf {
	if img == nil {
		surface.Logger().Warn("native: DrawImage with nil image")
		return nil
	}
	buf, err := img.Pixels()
	if err != nil {
		surface.Logger().Warn("native: image skipped", "url", img.URL(), "err", err)
		return nil
	}
	return buf
}
