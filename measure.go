// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "github.com/gogpu/gg/text"

// Measurer reports the rendered size of a string. Surfaces delegate
// MeasureString to it; the result is for caller layout decisions and is
// never used to position output.
type Measurer interface {
	MeasureString(s string, font *Font) (width, height float64)
}

// MeasurerFunc adapts a function to Measurer.
type MeasurerFunc func(s string, font *Font) (width, height float64)

// MeasureString calls f.
func (f MeasurerFunc) MeasureString(s string, font *Font) (width, height float64) {
	return f(s, font)
}

// FaceMeasurer measures with the font's text.Face: width is the total
// advance and height the line height. Fonts without a face measure as
// zero.
type FaceMeasurer struct{}

// MeasureString implements Measurer.
func (FaceMeasurer) MeasureString(s string, font *Font) (width, height float64) {
	if font == nil || font.Face == nil {
		return 0, 0
	}
	return text.Measure(s, font.Face)
}
