// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package scope implements the open-scope stack shared by the surface
// backends.
//
// The bottom entry is the root and is never popped. Implicit scopes
// (transforms, clips) are pushed with Push; explicit scopes with Save,
// which hands out a generational surface.Handle. Restore validates the
// handle before touching the stack, so stale or foreign handles are
// reported instead of corrupting it.
package scope

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/surface"
)

type entry[T any] struct {
	value  T
	handle surface.Handle // zero for implicit scopes and the root
}

// handles is shared by every stack, so a handle is never valid on a
// stack other than the one that issued it.
var handles atomic.Uint64

// Stack is a stack of open scopes. The zero value is not usable; call New.
type Stack[T any] struct {
	entries []entry[T]
}

// New returns a stack whose bottom entry is root.
func New[T any](root T) *Stack[T] {
	s := &Stack[T]{entries: make([]entry[T], 1, 16)}
	s.entries[0].value = root
	return s
}

// Top returns the innermost open scope.
func (s *Stack[T]) Top() T {
	return s.entries[len(s.entries)-1].value
}

// Depth returns the number of open scopes, counting the root.
func (s *Stack[T]) Depth() int {
	return len(s.entries)
}

// Push opens an implicit scope.
func (s *Stack[T]) Push(v T) {
	s.entries = append(s.entries, entry[T]{value: v})
}

// Save opens an explicit scope and returns its handle.
func (s *Stack[T]) Save(v T) surface.Handle {
	h := surface.Handle(handles.Add(1))
	s.entries = append(s.entries, entry[T]{value: v, handle: h})
	return h
}

// Restore pops every scope above the one opened by the Save that returned
// h, then that scope. It returns the number of entries popped.
//
// The error wraps surface.ErrUnbalancedScope when h is not on the stack or
// when a later Save is still open above it; the stack is left unchanged.
func (s *Stack[T]) Restore(h surface.Handle) (int, error) {
	if h == 0 {
		return 0, fmt.Errorf("%w: zero handle", surface.ErrUnbalancedScope)
	}
	idx := -1
	for i := len(s.entries) - 1; i > 0; i-- {
		if s.entries[i].handle == h {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, fmt.Errorf("%w: handle %d is not open", surface.ErrUnbalancedScope, h)
	}
	for _, e := range s.entries[idx+1:] {
		if e.handle != 0 {
			return 0, fmt.Errorf("%w: handle %d restored while %d is still open",
				surface.ErrUnbalancedScope, h, e.handle)
		}
	}

	n := len(s.entries) - idx
	var zero T
	for i := idx; i < len(s.entries); i++ {
		s.entries[i].value = zero
	}
	s.entries = s.entries[:idx]
	return n, nil
}
