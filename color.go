// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"math"
	"strconv"

	"github.com/gogpu/gg"
)

// NoPaint is the attribute value for a fully transparent color or an
// absent pen or brush.
const NoPaint = "none"

// Paint maps a color to its attribute form:
//
//   - alpha <= 0: NoPaint
//   - 0 < alpha < 1: rgba(R,G,B,A)
//   - alpha >= 1: rgb(R,G,B)
//
// R, G and B are the [0, 1] channels scaled to 0..255; A keeps its [0, 1]
// range and is formatted with FormatNumber.
func Paint(c gg.RGBA) string {
	if !(c.A > 0) {
		return NoPaint
	}
	buf := make([]byte, 0, 32)
	if c.A < 1 {
		buf = append(buf, "rgba("...)
	} else {
		buf = append(buf, "rgb("...)
	}
	buf = strconv.AppendInt(buf, int64(channel(c.R)), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(channel(c.G)), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(channel(c.B)), 10)
	if c.A < 1 {
		buf = append(buf, ',')
		buf = AppendNumber(buf, c.A)
	}
	buf = append(buf, ')')
	return string(buf)
}

// PenPaint returns the stroke attribute for p.
func PenPaint(p *Pen) string {
	if p == nil {
		return NoPaint
	}
	return Paint(p.Color)
}

// BrushPaint returns the fill attribute for b.
func BrushPaint(b *Brush) string {
	if b == nil {
		return NoPaint
	}
	return Paint(b.Color)
}

// channel converts a [0, 1] component to 0..255 with clamping.
func channel(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(math.Round(v * 255))
}
