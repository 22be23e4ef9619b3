// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package svg

import (
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/surface"
)

// Baseline offsets, as fractions of the font size, that move a text anchor
// from the top (or middle) of the line box to the baseline.
const (
	ascentNear   = 0.9
	ascentCenter = ascentNear / 2
)

// DrawString implements surface.Surface. The text is NFC-normalized and
// anchored with text-anchor; the vertical alignment is approximated by
// shifting y, since SVG positions text by its baseline.
func (s *Surface) DrawString(str string, font *surface.Font, brush *surface.Brush, x, y float64, format surface.StringFormat) {
	if s.ignored("DrawString") {
		return
	}
	e := NewElement(TagText)
	e.Content = norm.NFC.String(str)

	var size float64
	if font != nil {
		size = font.Size
		e.Set("font-family", font.Family)
		e.SetNumber("font-size", font.Size)
		if font.Style.Has(surface.FontItalic) {
			e.Set("font-style", "italic")
		}
		if font.Style.Has(surface.FontBold) {
			e.Set("font-weight", "bold")
		}
		switch {
		case font.Style.Has(surface.FontUnderline):
			e.Set("text-decoration", "underline")
		case font.Style.Has(surface.FontStrikeout):
			e.Set("text-decoration", "line-through")
		}
	}

	switch format.Alignment {
	case surface.AlignCenter:
		e.Set("text-anchor", "middle")
	case surface.AlignFar:
		e.Set("text-anchor", "end")
	}

	switch format.LineAlignment {
	case surface.AlignNear:
		y += size * ascentNear
	case surface.AlignCenter:
		y += size * ascentCenter
	}

	e.SetNumber("x", x)
	e.SetNumber("y", y)
	e.ApplyBrush(brush)
	s.add(e)
}

// DrawImage implements surface.Surface. The image is referenced by URL.
func (s *Surface) DrawImage(img *surface.Image, x, y, width, height float64) {
	if s.ignored("DrawImage") {
		return
	}
	if img == nil {
		surface.Logger().Warn("svg: DrawImage with nil image")
		return
	}
	s.add(imageElement(img, surface.NewRect(x, y, width, height)))
}

// DrawImageAlpha implements surface.Surface. alpha is clamped to [0, 1]
// and written as the opacity attribute.
func (s *Surface) DrawImageAlpha(alpha float64, img *surface.Image, dst surface.Rect) {
	if s.ignored("DrawImageAlpha") {
		return
	}
	if img == nil {
		surface.Logger().Warn("svg: DrawImageAlpha with nil image")
		return
	}
	e := imageElement(img, dst)
	e.SetNumber("opacity", min(max(alpha, 0), 1))
	s.add(e)
}

func imageElement(img *surface.Image, r surface.Rect) *Element {
	e := NewElement(TagImage)
	e.SetNumber("x", r.X)
	e.SetNumber("y", r.Y)
	e.SetNumber("width", r.Width)
	e.SetNumber("height", r.Height)
	e.Set("xlink:href", img.URL())
	return e
}
