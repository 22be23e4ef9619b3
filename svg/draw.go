// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package svg

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/surface"
	"github.com/gogpu/surface/internal/pathdata"
)

func encodePath(p surface.PathSource) (string, error) {
	if p == nil {
		return "", fmt.Errorf("%w: nil path", surface.ErrEmptyGeometry)
	}
	return pathdata.Encode(p)
}

// addPath appends a path element with the given data.
func (s *Surface) addPath(d string, pen *surface.Pen, brush *surface.Brush) *Element {
	e := NewElement(TagPath)
	e.Set("d", d)
	e.ApplyPen(pen)
	e.ApplyBrush(brush)
	return s.add(e)
}

// DrawLine implements surface.Surface.
func (s *Surface) DrawLine(pen *surface.Pen, x1, y1, x2, y2 float64) {
	if s.ignored("DrawLine") {
		return
	}
	e := NewElement(TagLine)
	e.SetNumber("x1", x1)
	e.SetNumber("y1", y1)
	e.SetNumber("x2", x2)
	e.SetNumber("y2", y2)
	e.ApplyPen(pen)
	s.add(e)
}

// DrawLines implements surface.Surface. The polyline is written as a
// single path.
func (s *Surface) DrawLines(pen *surface.Pen, pts []gg.Point) error {
	if err := s.checkFrozen("DrawLines"); err != nil {
		return err
	}
	if len(pts) == 0 {
		return fmt.Errorf("svg: lines: %w", surface.ErrEmptyGeometry)
	}
	var b pathdata.Builder
	b.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		b.LineTo(p.X, p.Y)
	}
	s.addPath(b.String(), pen, nil)
	return nil
}

// DrawRectangle implements surface.Surface.
func (s *Surface) DrawRectangle(pen *surface.Pen, brush *surface.Brush, x, y, width, height float64) {
	if s.ignored("DrawRectangle") {
		return
	}
	e := NewElement(TagRect)
	e.SetNumber("x", x)
	e.SetNumber("y", y)
	e.SetNumber("width", width)
	e.SetNumber("height", height)
	e.ApplyPen(pen)
	e.ApplyBrush(brush)
	s.add(e)
}

// DrawEllipse implements surface.Surface.
func (s *Surface) DrawEllipse(pen *surface.Pen, brush *surface.Brush, x, y, width, height float64) {
	if s.ignored("DrawEllipse") {
		return
	}
	e := NewElement(TagEllipse)
	e.SetNumber("cx", x+width/2)
	e.SetNumber("cy", y+height/2)
	e.SetNumber("rx", width/2)
	e.SetNumber("ry", height/2)
	e.ApplyPen(pen)
	e.ApplyBrush(brush)
	s.add(e)
}

// DrawArc implements surface.Surface. A sweep of a full turn or more is
// written as two half arcs, since an arc whose endpoints coincide draws
// nothing.
func (s *Surface) DrawArc(pen *surface.Pen, x, y, width, height, startAngle, sweepAngle float64) {
	if s.ignored("DrawArc") {
		return
	}
	var b pathdata.Builder
	if math.Abs(sweepAngle) >= 360 {
		half := math.Copysign(180, sweepAngle)
		first := pathdata.EndpointArc(x, y, width, height, startAngle, half)
		second := pathdata.EndpointArc(x, y, width, height, startAngle+half, half)
		pathdata.AppendArc(&b, first)
		b.ArcTo(second.RX, second.RY, second.Phi, second.LargeArc, second.Sweep, second.X2, second.Y2)
	} else {
		pathdata.AppendArc(&b, pathdata.EndpointArc(x, y, width, height, startAngle, sweepAngle))
	}
	s.addPath(b.String(), pen, nil)
}

// DrawPath implements surface.Surface. A path with an unsupported segment
// adds nothing to the tree.
func (s *Surface) DrawPath(pen *surface.Pen, brush *surface.Brush, p surface.PathSource) error {
	if err := s.checkFrozen("DrawPath"); err != nil {
		return err
	}
	d, err := encodePath(p)
	if err != nil {
		return fmt.Errorf("svg: path: %w", err)
	}
	s.addPath(d, pen, brush)
	return nil
}

// DrawCurve implements surface.Surface.
func (s *Surface) DrawCurve(pen *surface.Pen, pts []gg.Point, tension float64) error {
	if err := s.checkFrozen("DrawCurve"); err != nil {
		return err
	}
	var b pathdata.Builder
	if err := pathdata.FitCurve(&b, pts, tension, false); err != nil {
		return fmt.Errorf("svg: curve: %w", err)
	}
	s.addPath(b.String(), pen, nil)
	return nil
}

// DrawClosedCurve implements surface.Surface.
func (s *Surface) DrawClosedCurve(pen *surface.Pen, brush *surface.Brush, pts []gg.Point, tension float64) error {
	if err := s.checkFrozen("DrawClosedCurve"); err != nil {
		return err
	}
	var b pathdata.Builder
	if err := pathdata.FitCurve(&b, pts, tension, true); err != nil {
		return fmt.Errorf("svg: closed curve: %w", err)
	}
	s.addPath(b.String(), pen, brush)
	return nil
}
