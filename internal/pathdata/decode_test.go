// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pathdata

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/parse/v2/strconv"
)

// decode replays path data and returns the absolute end point of every
// command. A close command reports the subpath start it returns to.
func decode(t *testing.T, d string) []gg.Point {
	t.Helper()

	src := []byte(d)
	i := 0
	skip := func() {
		for i < len(src) && (src[i] == ' ' || src[i] == ',') {
			i++
		}
	}
	num := func() float64 {
		skip()
		f, n := strconv.ParseFloat(src[i:])
		require.NotZerof(t, n, "expected a number at offset %d in %q", i, d)
		i += n
		return f
	}

	var pts []gg.Point
	var cur, start gg.Point
	for {
		skip()
		if i >= len(src) {
			break
		}
		cmd := src[i]
		i++
		rel := cmd >= 'a'
		var base gg.Point
		if rel {
			base = cur
		}
		switch cmd | 0x20 {
		case 'm':
			x, y := num(), num()
			cur = gg.Pt(base.X+x, base.Y+y)
			start = cur
		case 'l':
			x, y := num(), num()
			cur = gg.Pt(base.X+x, base.Y+y)
		case 'h':
			cur.X = base.X + num()
		case 'v':
			cur.Y = base.Y + num()
		case 'c':
			for k := 0; k < 4; k++ {
				num()
			}
			x, y := num(), num()
			cur = gg.Pt(base.X+x, base.Y+y)
		case 'a':
			for k := 0; k < 5; k++ {
				num()
			}
			x, y := num(), num()
			cur = gg.Pt(base.X+x, base.Y+y)
		case 'z':
			cur = start
		default:
			t.Fatalf("unknown command %q at offset %d in %q", cmd, i-1, d)
		}
		pts = append(pts, cur)
	}
	return pts
}

func requirePointsInDelta(t *testing.T, want, got []gg.Point, delta float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDeltaf(t, want[i].X, got[i].X, delta, "point %d x", i)
		require.InDeltaf(t, want[i].Y, got[i].Y, delta, "point %d y", i)
	}
}
