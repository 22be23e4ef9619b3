// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package native implements surface.Surface by forwarding every call to a
// *gg.Context, producing a raster image.
//
// Importing the package registers the "native" backend:
//
//	import _ "github.com/gogpu/surface/native"
//
//	s, err := surface.New("native", 640, 480)
//
// Or create it directly and keep access to the pixels:
//
//	s, err := native.New(640, 480, nil)
//	...
//	err = s.SavePNG("out.png")
//
// Images drawn with a partial opacity are faded once per 1/16 opacity
// step and kept in an AlphaCache, which may be shared between surfaces.
package native
