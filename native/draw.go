// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/surface"
	"github.com/gogpu/surface/internal/pathdata"
)

// ctxSink adapts a context's path methods to pathdata.Sink.
type ctxSink struct {
	ctx *gg.Context
}

func (c ctxSink) MoveTo(x, y float64) { c.ctx.MoveTo(x, y) }
func (c ctxSink) LineTo(x, y float64) { c.ctx.LineTo(x, y) }
func (c ctxSink) CurveTo(x1, y1, x2, y2, x, y float64) {
	c.ctx.CubicTo(x1, y1, x2, y2, x, y)
}
func (c ctxSink) Close() { c.ctx.ClosePath() }

// setPath replaces the current path with p. On error the current path is
// left empty.
func (s *Surface) setPath(p surface.PathSource) error {
	s.ctx.ClearPath()
	if p == nil {
		return fmt.Errorf("%w: nil path", surface.ErrEmptyGeometry)
	}
	if err := pathdata.AppendPath(ctxSink{s.ctx}, p); err != nil {
		s.ctx.ClearPath()
		return err
	}
	return nil
}

// paint fills and then strokes the current path, and clears it.
func (s *Surface) paint(pen *surface.Pen, brush *surface.Brush) {
	if brush != nil && brush.Color.A > 0 {
		s.ctx.SetFillBrush(gg.Solid(brush.Color))
		if err := s.ctx.FillPreserve(); err != nil {
			surface.Logger().Warn("native: fill failed", "err", err)
		}
	}
	if pen != nil && pen.Color.A > 0 {
		s.ctx.SetStrokeBrush(gg.Solid(pen.Color))
		s.ctx.SetLineWidth(pen.Width)
		if err := s.ctx.StrokePreserve(); err != nil {
			surface.Logger().Warn("native: stroke failed", "err", err)
		}
	}
	s.ctx.ClearPath()
}

// DrawLine implements surface.Surface.
func (s *Surface) DrawLine(pen *surface.Pen, x1, y1, x2, y2 float64) {
	s.ctx.ClearPath()
	s.ctx.MoveTo(x1, y1)
	s.ctx.LineTo(x2, y2)
	s.paint(pen, nil)
}

// DrawLines implements surface.Surface.
func (s *Surface) DrawLines(pen *surface.Pen, pts []gg.Point) error {
	if len(pts) == 0 {
		return fmt.Errorf("native: lines: %w", surface.ErrEmptyGeometry)
	}
	s.ctx.ClearPath()
	s.ctx.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.ctx.LineTo(p.X, p.Y)
	}
	s.paint(pen, nil)
	return nil
}

// DrawRectangle implements surface.Surface.
func (s *Surface) DrawRectangle(pen *surface.Pen, brush *surface.Brush, x, y, width, height float64) {
	s.ctx.ClearPath()
	s.ctx.DrawRectangle(x, y, width, height)
	s.paint(pen, brush)
}

// DrawEllipse implements surface.Surface.
func (s *Surface) DrawEllipse(pen *surface.Pen, brush *surface.Brush, x, y, width, height float64) {
	s.ctx.ClearPath()
	s.ctx.DrawEllipse(x+width/2, y+height/2, width/2, height/2)
	s.paint(pen, brush)
}

// DrawArc implements surface.Surface.
func (s *Surface) DrawArc(pen *surface.Pen, x, y, width, height, startAngle, sweepAngle float64) {
	s.ctx.ClearPath()
	pathdata.AppendArcCurves(ctxSink{s.ctx}, x, y, width, height, startAngle, sweepAngle)
	s.paint(pen, nil)
}

// DrawPath implements surface.Surface.
func (s *Surface) DrawPath(pen *surface.Pen, brush *surface.Brush, p surface.PathSource) error {
	if err := s.setPath(p); err != nil {
		return fmt.Errorf("native: path: %w", err)
	}
	s.paint(pen, brush)
	return nil
}

// DrawCurve implements surface.Surface.
func (s *Surface) DrawCurve(pen *surface.Pen, pts []gg.Point, tension float64) error {
	s.ctx.ClearPath()
	if err := pathdata.FitCurve(ctxSink{s.ctx}, pts, tension, false); err != nil {
		return fmt.Errorf("native: curve: %w", err)
	}
	s.paint(pen, nil)
	return nil
}

// DrawClosedCurve implements surface.Surface.
func (s *Surface) DrawClosedCurve(pen *surface.Pen, brush *surface.Brush, pts []gg.Point, tension float64) error {
	s.ctx.ClearPath()
	if err := pathdata.FitCurve(ctxSink{s.ctx}, pts, tension, true); err != nil {
		return fmt.Errorf("native: closed curve: %w", err)
	}
	s.paint(pen, brush)
	return nil
}
