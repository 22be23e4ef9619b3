// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pathdata

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/surface"
)

// FitCurve writes a cardinal spline through pts to dst as cubic Bézier
// segments.
//
// With a = tension+1, the tangent at point i is (next-prev)/a. Closed
// curves wrap around; open curves use one-sided differences at both ends.
// Each segment i→i+1 gets the control points p[i]+d[i]/3 and
// p[i+1]-d[i+1]/3. A closed curve adds the segment from the last point
// back to the first and closes the path.
//
// It returns an error wrapping surface.ErrEmptyGeometry when pts has fewer
// than two points.
func FitCurve(dst Sink, pts []gg.Point, tension float64, closed bool) error {
	if len(pts) < 2 {
		return fmt.Errorf("%w: curve needs at least 2 points, got %d", surface.ErrEmptyGeometry, len(pts))
	}

	a := tension + 1
	n := len(pts)
	deriv := func(i int) gg.Point {
		var prev, next gg.Point
		switch {
		case closed:
			next = pts[(i+1)%n]
			prev = pts[(i+n-1)%n]
		case i == 0:
			next, prev = pts[1], pts[0]
		case i == n-1:
			next, prev = pts[i], pts[i-1]
		default:
			next, prev = pts[i+1], pts[i-1]
		}
		return gg.Pt((next.X-prev.X)/a, (next.Y-prev.Y)/a)
	}

	segment := func(from, fromD, to, toD gg.Point) {
		dst.CurveTo(
			from.X+fromD.X/3, from.Y+fromD.Y/3,
			to.X-toD.X/3, to.Y-toD.Y/3,
			to.X, to.Y)
	}

	last := pts[0]
	lastD := deriv(0)
	dst.MoveTo(last.X, last.Y)
	for i := 1; i < n; i++ {
		p, d := pts[i], deriv(i)
		segment(last, lastD, p, d)
		last, lastD = p, d
	}

	if closed {
		segment(last, lastD, pts[0], deriv(0))
		dst.Close()
	}
	return nil
}
