// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

// Factory creates a surface of the given size.
// Factories are registered via Register and called by New.
type Factory func(width, height float64, cfg Config) (Surface, error)

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register makes a backend available under name. It is typically called
// from init() in the backend package:
//
//	func init() {
//	    surface.Register("svg", func(w, h float64, cfg surface.Config) (surface.Surface, error) {
//	        return newSurface(w, h, cfg), nil
//	    })
//	}
//
// Register panics if factory is nil or name is already registered.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("surface: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("surface: Register called twice for " + name)
	}
	factories[name] = factory
}

// Unregister removes a backend. It is a no-op for unknown names.
// This is primarily useful in tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// New creates a surface with the named backend.
//
//	import _ "github.com/gogpu/surface/native" // registers "native"
//
//	s, err := surface.New("native", 640, 480)
//
// The error wraps ErrUnknownBackend when name is not registered (usually
// a forgotten import) and ErrInvalidSize for unusable dimensions.
func New(name string, width, height float64, opts ...Option) (Surface, error) {
	if err := ValidateSize(width, height); err != nil {
		return nil, err
	}

	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownBackend, name)
	}

	s, err := factory(width, height, NewConfig(opts...))
	if err != nil {
		return nil, fmt.Errorf("surface: create %q: %w", name, err)
	}
	Logger().Debug("surface created", "backend", name, "width", width, "height", height)
	return s, nil
}

// Backends returns the registered backend names in alphabetical order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a backend with the given name exists.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}

// ValidateSize checks that width and height are positive and finite.
func ValidateSize(width, height float64) error {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return fmt.Errorf("%w: %gx%g", ErrInvalidSize, width, height)
	}
	return nil
}
