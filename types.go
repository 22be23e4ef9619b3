// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Pen describes how outlines are stroked.
type Pen struct {
	// Color is the stroke color.
	Color gg.RGBA

	// Width is the stroke width in user units.
	Width float64
}

// NewPen returns a pen with the given color and width.
func NewPen(c gg.RGBA, width float64) *Pen {
	return &Pen{Color: c, Width: width}
}

// Brush describes how interiors are filled. Only solid colors are supported.
type Brush struct {
	Color gg.RGBA
}

// NewBrush returns a solid brush.
func NewBrush(c gg.RGBA) *Brush {
	return &Brush{Color: c}
}

// FontStyle is a set of style flags.
type FontStyle uint8

const (
	// FontBold selects a bold weight.
	FontBold FontStyle = 1 << iota

	// FontItalic selects an italic style.
	FontItalic

	// FontUnderline draws a line under the text.
	FontUnderline

	// FontStrikeout draws a line through the text. Underline wins when
	// both are set.
	FontStrikeout
)

// Has reports whether all flags in f are set.
func (s FontStyle) Has(f FontStyle) bool {
	return s&f == f
}

// Font is a font descriptor. Family, Size and Style are what vector
// backends emit; Face is the optional loaded face raster backends draw
// with and the default measurer measures with.
type Font struct {
	Family string
	Size   float64
	Style  FontStyle
	Face   text.Face
}

// Align positions text along an axis relative to the anchor point.
type Align uint8

const (
	// AlignNear puts the anchor at the start (left or top).
	AlignNear Align = iota

	// AlignCenter centers text on the anchor.
	AlignCenter

	// AlignFar puts the anchor at the end (right or bottom).
	AlignFar

	// AlignBaseline puts the anchor on the text baseline. Only meaningful
	// for line alignment.
	AlignBaseline
)

// String returns the name of the alignment.
func (a Align) String() string {
	switch a {
	case AlignNear:
		return "near"
	case AlignCenter:
		return "center"
	case AlignFar:
		return "far"
	case AlignBaseline:
		return "baseline"
	default:
		return "unknown"
	}
}

// StringFormat controls text placement relative to the anchor point.
// The zero value anchors text at its top-left corner.
type StringFormat struct {
	// Alignment is the horizontal alignment.
	Alignment Align

	// LineAlignment is the vertical alignment.
	LineAlignment Align
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect returns a Rect.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Handle identifies a scope opened by Surface.Save. The zero Handle is
// never returned by Save and is always rejected by Restore.
type Handle uint64

// PathSource supplies a path as an ordered sequence of segments. Iterate
// calls fn once per verb, in order, with that verb's coordinates.
// *gg.Path satisfies it.
type PathSource interface {
	Iterate(fn func(verb gg.PathVerb, coords []float64))
}

var _ PathSource = (*gg.Path)(nil)
