// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pathdata encodes geometry as compact SVG path data.
//
// A Builder writes its first command in absolute coordinates and every
// later one relative to the previous end point, picking the horizontal or
// vertical line forms when a coordinate does not change. FitCurve turns a
// point sequence into cubic segments and EndpointArc converts
// center-and-angle arcs to endpoint form.
package pathdata

import "github.com/gogpu/surface"

// Builder accumulates path data for one shape. The zero value is ready to
// use.
type Builder struct {
	buf   []byte
	used  bool
	lastX float64
	lastY float64
	// start of the current subpath, where Close leaves the pen
	startX float64
	startY float64
}

// String returns the encoded path data.
func (b *Builder) String() string {
	return string(b.buf)
}

// Empty reports whether no command has been written yet.
func (b *Builder) Empty() bool {
	return !b.used
}

// Current returns the absolute end point of the last command.
func (b *Builder) Current() (x, y float64) {
	return b.lastX, b.lastY
}

// MoveTo starts a new subpath at x, y.
func (b *Builder) MoveTo(x, y float64) {
	if b.begin('M', 'm') {
		b.pair(x, y)
	} else {
		b.pair(x-b.lastX, y-b.lastY)
	}
	b.lastX, b.lastY = x, y
	b.startX, b.startY = x, y
}

// LineTo draws a straight segment to x, y.
func (b *Builder) LineTo(x, y float64) {
	switch {
	case !b.used:
		b.begin('L', 'l')
		b.pair(x, y)
	case x == b.lastX:
		b.begin('V', 'v')
		b.num(y - b.lastY)
	case y == b.lastY:
		b.begin('H', 'h')
		b.num(x - b.lastX)
	default:
		b.begin('L', 'l')
		b.pair(x-b.lastX, y-b.lastY)
	}
	b.lastX, b.lastY = x, y
}

// ArcTo draws an elliptical arc in endpoint form to x, y.
func (b *Builder) ArcTo(rx, ry, phi float64, largeArc, sweep bool, x, y float64) {
	abs := b.begin('A', 'a')
	b.num(rx)
	b.num(ry)
	b.num(phi)
	b.flag(largeArc)
	b.flag(sweep)
	if abs {
		b.pair(x, y)
	} else {
		b.pair(x-b.lastX, y-b.lastY)
	}
	b.lastX, b.lastY = x, y
}

// CurveTo draws a cubic Bézier segment with control points (x1, y1) and
// (x2, y2) ending at x, y.
func (b *Builder) CurveTo(x1, y1, x2, y2, x, y float64) {
	if b.begin('C', 'c') {
		b.pair(x1, y1)
		b.pair(x2, y2)
		b.pair(x, y)
	} else {
		b.pair(x1-b.lastX, y1-b.lastY)
		b.pair(x2-b.lastX, y2-b.lastY)
		b.pair(x-b.lastX, y-b.lastY)
	}
	b.lastX, b.lastY = x, y
}

// Close closes the current subpath. The pen returns to the subpath start,
// so later relative commands continue from the last moved-to point.
func (b *Builder) Close() {
	if len(b.buf) > 0 {
		b.buf = append(b.buf, ' ')
	}
	b.buf = append(b.buf, 'Z')
	b.lastX, b.lastY = b.startX, b.startY
}

// begin writes the command letter and reports whether it is the absolute
// form.
func (b *Builder) begin(abs, rel byte) bool {
	if !b.used {
		if len(b.buf) > 0 {
			b.buf = append(b.buf, ' ')
		}
		b.buf = append(b.buf, abs)
		b.used = true
		return true
	}
	b.buf = append(b.buf, ' ', rel)
	return false
}

func (b *Builder) num(v float64) {
	b.buf = append(b.buf, ' ')
	b.buf = surface.AppendNumber(b.buf, v)
}

func (b *Builder) pair(x, y float64) {
	b.num(x)
	b.num(y)
}

func (b *Builder) flag(f bool) {
	if f {
		b.buf = append(b.buf, ' ', '1')
	} else {
		b.buf = append(b.buf, ' ', '0')
	}
}
