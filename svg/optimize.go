// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package svg

import "slices"

// MergePolicy decides how a group attribute combines with the same
// attribute on the child it collapses into.
type MergePolicy uint8

const (
	// MergeConcat joins the group value and the child value with a space,
	// group first.
	MergeConcat MergePolicy = iota

	// MergeExclusive forbids the collapse when both nodes carry the key.
	MergeExclusive
)

// mergePolicies lists the keys with a policy other than MergeConcat.
// transform stays MergeConcat: SVG applies a transform list left to
// right, so "outer inner" is exactly the nested composition.
var mergePolicies = map[string]MergePolicy{
	"clip-path": MergeExclusive,
}

// PolicyFor returns the merge policy for an attribute key.
func PolicyFor(key string) MergePolicy {
	return mergePolicies[key]
}

// Optimize rewrites the tree rooted at e in place, bottom-up:
//
//  1. children are optimized first
//  2. child groups with no children are removed
//  3. child groups with no attributes are replaced by their children
//  4. if e is a group with a single child, e takes over the child's tag,
//     children and content, and the child's attributes are merged into
//     e's according to PolicyFor
//
// Optimize is idempotent.
func Optimize(e *Element) {
	for _, c := range e.Children {
		Optimize(c)
	}

	e.Children = slices.DeleteFunc(e.Children, func(c *Element) bool {
		return c.Tag == TagGroup && len(c.Children) == 0
	})

	if slices.ContainsFunc(e.Children, isBareGroup) {
		flat := make([]*Element, 0, len(e.Children))
		for _, c := range e.Children {
			if isBareGroup(c) {
				flat = append(flat, c.Children...)
			} else {
				flat = append(flat, c)
			}
		}
		e.Children = flat
	}

	if e.Tag == TagGroup && len(e.Children) == 1 {
		collapse(e, e.Children[0])
	}
}

func isBareGroup(e *Element) bool {
	return e.Tag == TagGroup && len(e.Attrs) == 0
}

func collapse(g, child *Element) {
	for _, a := range child.Attrs {
		if PolicyFor(a.Key) == MergeExclusive && g.Has(a.Key) {
			return
		}
	}

	g.Tag = child.Tag
	g.Children = child.Children
	g.Content = child.Content
	for _, a := range child.Attrs {
		if v, ok := g.Get(a.Key); ok {
			g.Set(a.Key, v+" "+a.Value)
		} else {
			g.Attrs = append(g.Attrs, a)
		}
	}
}
