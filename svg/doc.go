// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package svg implements surface.Surface by recording drawing calls into a
// retained element tree and writing it as an SVG 1.1 document.
//
// Transforms and clips open nested groups, clip shapes live in a
// definitions section, and shapes are written as compact relative path
// data. Before output the tree is optimized once: empty and attribute-less
// groups disappear and single-child groups collapse into their child.
//
//	s, _ := svg.New(200, 100)
//	h := s.Save()
//	s.TranslateTransform(10, 10)
//	s.DrawRectangle(nil, surface.NewBrush(gg.Red), 0, 0, 50, 50)
//	_ = s.Restore(h)
//	_, err := s.WriteTo(w)
//
// Images are referenced by URL and never embedded.
package svg
