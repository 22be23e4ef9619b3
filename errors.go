// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "errors"

// Sentinel errors returned by surfaces. Backends wrap them with context,
// so callers should match with errors.Is.
var (
	// ErrUnsupportedGeometry is returned when a structured path contains a
	// segment kind a backend cannot express (for example a quadratic curve).
	ErrUnsupportedGeometry = errors.New("surface: unsupported geometry")

	// ErrUnbalancedScope is returned by Restore when the handle is not on
	// the scope stack or when Save/Restore pairs are interleaved out of
	// last-in-first-out order.
	ErrUnbalancedScope = errors.New("surface: unbalanced scope")

	// ErrEmptyGeometry is returned when a point sequence is too short for
	// the requested operation.
	ErrEmptyGeometry = errors.New("surface: empty geometry")

	// ErrUnknownBackend is returned by New for a name nobody registered.
	ErrUnknownBackend = errors.New("surface: unknown backend")

	// ErrFrozen is returned by drawing calls issued after a surface has
	// produced its output.
	ErrFrozen = errors.New("surface: surface is frozen")

	// ErrInvalidSize is returned for non-positive or non-finite dimensions.
	ErrInvalidSize = errors.New("surface: invalid size")
)
