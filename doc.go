// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface defines a drawing contract that lets one stream of vector
// drawing calls be rendered by more than one backend.
//
// # Overview
//
// Callers hold a [Surface] and issue calls in sequence: transforms, clips,
// shapes, text and images, bracketed by [Surface.Save] and
// [Surface.Restore]. Two backends ship with the module:
//
//   - svg: builds a retained element tree, optimizes it and serializes it
//     as a compact SVG document
//   - native: forwards every call to a *gg.Context and rasterizes
//
// Backends register themselves by name, following the database/sql driver
// pattern:
//
//	import _ "github.com/gogpu/surface/svg"
//
//	s, err := surface.New("svg", 800, 600)
//	if err != nil {
//	    return err
//	}
//	h := s.Save()
//	s.TranslateTransform(10, 10)
//	s.DrawRectangle(nil, &surface.Brush{Color: gg.RGB(1, 0, 0)}, 0, 0, 100, 50)
//	if err := s.Restore(h); err != nil {
//	    return err
//	}
//
// # Scopes
//
// Every transform and clip call opens a new nested scope. There is no
// inverse call: the only way to leave such a scope is to Restore a handle
// returned by an enclosing Save. A transform or clip issued without a
// surrounding Save/Restore pair affects everything drawn after it.
//
// # Concurrency
//
// A Surface is driven by exactly one goroutine. Concurrent renders need
// independent Surface values; they share nothing except the optional image
// cache of the native backend, which does its own locking.
package surface
