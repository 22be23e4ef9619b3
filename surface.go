// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "github.com/gogpu/gg"

// DefaultTension is the curve tension used by callers that have no
// preference. Higher values give tighter, flatter curves.
const DefaultTension = 0.5

// Surface is the set of drawing operations every backend implements.
//
// Pens and brushes are optional: a nil *Pen draws no outline and a nil
// *Brush draws no interior. A shape with neither is accepted and produces
// no visible output.
//
// # Scope-opening operations
//
// ScaleTransform, TranslateTransform, RotateTransform, MultiplyTransform,
// IntersectClipRect and IntersectClipPath each open a new nested scope
// that stays in effect until a Restore pops past it. They have no inverse
// call. Wrap them in Save/Restore:
//
//	h := s.Save()
//	s.RotateTransform(45)
//	s.DrawLine(pen, 0, 0, 10, 0)
//	err := s.Restore(h)
//
// Forgetting the pair permanently affects all subsequently drawn siblings.
// Clips compose by intersection; a later clip never replaces an earlier one.
//
// A Surface is not safe for concurrent use.
type Surface interface {
	// ScaleTransform scales subsequent drawing by sx, sy.
	ScaleTransform(sx, sy float64)

	// TranslateTransform moves the origin of subsequent drawing by dx, dy.
	TranslateTransform(dx, dy float64)

	// RotateTransform rotates subsequent drawing clockwise by angle degrees.
	RotateTransform(angle float64)

	// MultiplyTransform applies an arbitrary affine matrix.
	MultiplyTransform(m gg.Matrix)

	// IntersectClipRect restricts subsequent drawing to r.
	IntersectClipRect(r Rect)

	// IntersectClipPath restricts subsequent drawing to the interior of p.
	IntersectClipPath(p PathSource) error

	// DrawLine strokes a single segment.
	DrawLine(pen *Pen, x1, y1, x2, y2 float64)

	// DrawLines strokes a connected polyline through pts.
	DrawLines(pen *Pen, pts []gg.Point) error

	// DrawRectangle outlines and/or fills an axis-aligned rectangle.
	DrawRectangle(pen *Pen, brush *Brush, x, y, width, height float64)

	// DrawEllipse outlines and/or fills the ellipse inscribed in the box.
	DrawEllipse(pen *Pen, brush *Brush, x, y, width, height float64)

	// DrawArc strokes part of the ellipse inscribed in the box. Angles are
	// in degrees, measured clockwise from the positive x axis.
	DrawArc(pen *Pen, x, y, width, height, startAngle, sweepAngle float64)

	// DrawPath outlines and/or fills an arbitrary structured path.
	DrawPath(pen *Pen, brush *Brush, p PathSource) error

	// DrawCurve strokes an open spline through pts.
	DrawCurve(pen *Pen, pts []gg.Point, tension float64) error

	// DrawClosedCurve outlines and/or fills a closed spline through pts.
	DrawClosedCurve(pen *Pen, brush *Brush, pts []gg.Point, tension float64) error

	// DrawString draws s anchored at x, y according to format.
	DrawString(s string, font *Font, brush *Brush, x, y float64, format StringFormat)

	// MeasureString reports the rendered size of s in font.
	MeasureString(s string, font *Font) (width, height float64)

	// DrawImage draws img scaled into the given box.
	DrawImage(img *Image, x, y, width, height float64)

	// DrawImageAlpha draws img into dst with a uniform opacity in [0, 1].
	DrawImageAlpha(alpha float64, img *Image, dst Rect)

	// Save opens a new scope and returns a handle identifying it.
	Save() Handle

	// Restore closes every scope opened after the matching Save, then the
	// saved scope itself. It returns ErrUnbalancedScope if h is not on the
	// stack or an inner Save is still open.
	Restore(h Handle) error
}
