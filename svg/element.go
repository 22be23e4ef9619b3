// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package svg

import "github.com/gogpu/surface"

// Element names used by the backend.
const (
	TagSVG      = "svg"
	TagDefs     = "defs"
	TagClipPath = "clipPath"
	TagGroup    = "g"
	TagPath     = "path"
	TagLine     = "line"
	TagRect     = "rect"
	TagEllipse  = "ellipse"
	TagText     = "text"
	TagImage    = "image"
)

// Attr is a single attribute.
type Attr struct {
	Key   string
	Value string
}

// Element is a node of the retained tree.
//
// Attributes keep insertion order, which is also output order. Children
// are owned exclusively by their parent.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []*Element
	Content  string
}

// NewElement returns an element with the given tag and no attributes.
func NewElement(tag string) *Element {
	return &Element{Tag: tag}
}

// Append adds child as the last child of e and returns it.
func (e *Element) Append(child *Element) *Element {
	e.Children = append(e.Children, child)
	return child
}

// Has reports whether e carries the attribute key.
func (e *Element) Has(key string) bool {
	return e.index(key) >= 0
}

// Get returns the value of key and whether it is present.
func (e *Element) Get(key string) (string, bool) {
	if i := e.index(key); i >= 0 {
		return e.Attrs[i].Value, true
	}
	return "", false
}

// Set assigns key. An existing key keeps its position; a new key is
// appended.
func (e *Element) Set(key, value string) {
	if i := e.index(key); i >= 0 {
		e.Attrs[i].Value = value
		return
	}
	e.Attrs = append(e.Attrs, Attr{Key: key, Value: value})
}

// SetNumber assigns key to v formatted with surface.FormatNumber.
func (e *Element) SetNumber(key string, v float64) {
	e.Set(key, surface.FormatNumber(v))
}

// ApplyPen sets stroke and stroke-width from p, or stroke="none" when p
// is nil.
func (e *Element) ApplyPen(p *surface.Pen) {
	e.Set("stroke", surface.PenPaint(p))
	if p != nil {
		e.SetNumber("stroke-width", p.Width)
	}
}

// ApplyBrush sets fill from b, or fill="none" when b is nil.
func (e *Element) ApplyBrush(b *surface.Brush) {
	e.Set("fill", surface.BrushPaint(b))
}

// NodeCount returns the number of elements in the subtree rooted at e.
func (e *Element) NodeCount() int {
	n := 1
	for _, c := range e.Children {
		n += c.NodeCount()
	}
	return n
}

// Clone returns a deep copy of e.
func (e *Element) Clone() *Element {
	c := &Element{
		Tag:     e.Tag,
		Content: e.Content,
		Attrs:   append([]Attr(nil), e.Attrs...),
	}
	if len(e.Children) > 0 {
		c.Children = make([]*Element, len(e.Children))
		for i, child := range e.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}

func (e *Element) index(key string) int {
	for i, a := range e.Attrs {
		if a.Key == key {
			return i
		}
	}
	return -1
}
