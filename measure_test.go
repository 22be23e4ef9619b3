// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"testing"

	"github.com/gogpu/gg/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestFaceMeasurer(t *testing.T) {
	src, err := text.NewFontSource(goregular.TTF)
	require.NoError(t, err)
	font := &Font{Family: "Go", Size: 16, Face: src.Face(16)}

	var m FaceMeasurer
	w1, h1 := m.MeasureString("i", font)
	w2, h2 := m.MeasureString("iiii", font)
	assert.Greater(t, w1, 0.0)
	assert.Greater(t, h1, 0.0)
	assert.InDelta(t, 4*w1, w2, 0.5)
	assert.Equal(t, h1, h2)

	w, h := m.MeasureString("", font)
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestFaceMeasurerWithoutFace(t *testing.T) {
	var m FaceMeasurer
	w, h := m.MeasureString("hello", &Font{Family: "Arial", Size: 12})
	assert.Zero(t, w)
	assert.Zero(t, h)

	w, h = m.MeasureString("hello", nil)
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestMeasurerFunc(t *testing.T) {
	var got string
	m := MeasurerFunc(func(s string, f *Font) (float64, float64) {
		got = s
		return float64(len(s)), f.Size
	})
	w, h := m.MeasureString("abc", &Font{Size: 9})
	assert.Equal(t, "abc", got)
	assert.Equal(t, 3.0, w)
	assert.Equal(t, 9.0, h)
}

func TestFontStyleHas(t *testing.T) {
	s := FontBold | FontUnderline
	assert.True(t, s.Has(FontBold))
	assert.True(t, s.Has(FontBold|FontUnderline))
	assert.False(t, s.Has(FontItalic))
	assert.False(t, s.Has(FontBold|FontItalic))
}

func TestAlignString(t *testing.T) {
	assert.Equal(t, "near", AlignNear.String())
	assert.Equal(t, "center", AlignCenter.String())
	assert.Equal(t, "far", AlignFar.String())
	assert.Equal(t, "baseline", AlignBaseline.String())
	assert.Equal(t, "unknown", Align(9).String())
}
