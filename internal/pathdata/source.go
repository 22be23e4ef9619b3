// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pathdata

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/surface"
)

// Sink receives path segments in absolute coordinates. *Builder is a Sink.
type Sink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x, y float64)
	Close()
}

var _ Sink = (*Builder)(nil)

// AppendPath replays a structured path into dst. Move, line, cubic and
// close verbs are supported; a quadratic or unknown verb, or a verb with
// too few coordinates, stops the replay with an error wrapping
// surface.ErrUnsupportedGeometry. dst is then partially written and
// callers must discard it.
func AppendPath(dst Sink, p surface.PathSource) error {
	var (
		err error
		seg int
	)
	p.Iterate(func(verb gg.PathVerb, c []float64) {
		if err != nil {
			return
		}
		defer func() { seg++ }()

		switch verb {
		case gg.MoveTo:
			if err = need(seg, verb, c, 2); err == nil {
				dst.MoveTo(c[0], c[1])
			}
		case gg.LineTo:
			if err = need(seg, verb, c, 2); err == nil {
				dst.LineTo(c[0], c[1])
			}
		case gg.CubicTo:
			if err = need(seg, verb, c, 6); err == nil {
				dst.CurveTo(c[0], c[1], c[2], c[3], c[4], c[5])
			}
		case gg.Close:
			dst.Close()
		default:
			err = fmt.Errorf("%w: segment %d has verb %v", surface.ErrUnsupportedGeometry, seg, verb)
		}
	})
	return err
}

func need(seg int, verb gg.PathVerb, c []float64, n int) error {
	if len(c) < n {
		return fmt.Errorf("%w: segment %d (verb %v) has %d coordinates, want %d",
			surface.ErrUnsupportedGeometry, seg, verb, len(c), n)
	}
	return nil
}

// Encode returns the path data for a structured path.
func Encode(p surface.PathSource) (string, error) {
	var b Builder
	if err := AppendPath(&b, p); err != nil {
		return "", err
	}
	return b.String(), nil
}
