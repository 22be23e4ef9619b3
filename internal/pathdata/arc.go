// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pathdata

import "math"

// Arc is an elliptical arc in endpoint parameterization.
type Arc struct {
	X1, Y1   float64 // start point
	X2, Y2   float64 // end point
	RX, RY   float64
	Phi      float64 // x-axis rotation in degrees, always 0 here
	LargeArc bool
	Sweep    bool
}

// EndpointArc converts an arc of the ellipse inscribed in the box
// (x, y, width, height) to endpoint form. startAngle and sweepAngle are
// degrees measured clockwise from the positive x axis on a y-down canvas.
//
// Both angles are negated so that the ellipse equations can be evaluated
// with the vertical component flipped. Only axis-aligned ellipses are
// supported, so Phi is zero.
func EndpointArc(x, y, width, height, startAngle, sweepAngle float64) Arc {
	rx := width / 2
	ry := height / 2
	cx := x + rx
	cy := y + ry

	sin1, cos1 := sincosDeg(-startAngle)
	sin2, cos2 := sincosDeg(-(startAngle + sweepAngle))
	sweep := -sweepAngle * math.Pi / 180

	return Arc{
		X1:       rx*cos1 + cx,
		Y1:       -ry*sin1 + cy,
		X2:       rx*cos2 + cx,
		Y2:       -ry*sin2 + cy,
		RX:       rx,
		RY:       ry,
		LargeArc: math.Abs(sweep) > math.Pi,
		Sweep:    sweep < 0,
	}
}

// sincosDeg returns the sine and cosine of deg degrees, exact at the
// multiples of 90.
func sincosDeg(deg float64) (sin, cos float64) {
	if math.Mod(deg, 90) == 0 {
		switch (int(math.Mod(deg/90, 4)) + 4) % 4 {
		case 0:
			return 0, 1
		case 1:
			return 1, 0
		case 2:
			return 0, -1
		default:
			return -1, 0
		}
	}
	return math.Sincos(deg * math.Pi / 180)
}

// AppendArc writes a as a move to its start point followed by the arc.
func AppendArc(b *Builder, a Arc) {
	b.MoveTo(a.X1, a.Y1)
	b.ArcTo(a.RX, a.RY, a.Phi, a.LargeArc, a.Sweep, a.X2, a.Y2)
}

// AppendArcCurves writes the arc of the ellipse inscribed in the box as
// cubic Bézier segments spanning at most 90 degrees each, starting with a
// move to the first point. Angles follow EndpointArc.
func AppendArcCurves(dst Sink, x, y, width, height, startAngle, sweepAngle float64) {
	rx := width / 2
	ry := height / 2
	cx := x + rx
	cy := y + ry

	n := max(int(math.Ceil(math.Abs(sweepAngle)/90)), 1)
	step := sweepAngle / float64(n)
	// control arm length for a unit circle segment of step degrees
	k := 4.0 / 3 * math.Tan(step*math.Pi/720)

	sin0, cos0 := sincosDeg(startAngle)
	dst.MoveTo(cx+rx*cos0, cy+ry*sin0)
	for i := 1; i <= n; i++ {
		sin1, cos1 := sincosDeg(startAngle + step*float64(i))
		dst.CurveTo(
			cx+rx*(cos0-k*sin0), cy+ry*(sin0+k*cos0),
			cx+rx*(cos1+k*sin1), cy+ry*(sin1-k*cos1),
			cx+rx*cos1, cy+ry*sin1)
		sin0, cos0 = sin1, cos1
	}
}
