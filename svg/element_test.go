// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package svg

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementSetKeepsOrder(t *testing.T) {
	e := NewElement(TagRect)
	e.Set("x", "1")
	e.Set("y", "2")
	e.Set("fill", "red")
	e.Set("x", "3")

	assert.Equal(t, []Attr{{"x", "3"}, {"y", "2"}, {"fill", "red"}}, e.Attrs)

	v, ok := e.Get("x")
	assert.True(t, ok)
	assert.Equal(t, "3", v)
	_, ok = e.Get("stroke")
	assert.False(t, ok)
	assert.True(t, e.Has("fill"))
	assert.False(t, e.Has("stroke"))
}

func TestElementSetNumber(t *testing.T) {
	e := NewElement(TagLine)
	e.SetNumber("x1", 1.0/3)
	e.SetNumber("y1", -0.0)
	e.SetNumber("x2", 1234567)

	assert.Equal(t, []Attr{{"x1", "0.333333"}, {"y1", "0"}, {"x2", "1.23457e+06"}}, e.Attrs)
}

func TestElementApplyPenAndBrush(t *testing.T) {
	e := NewElement(TagRect)
	e.ApplyPen(surface.NewPen(gg.RGBA{R: 1, A: 1}, 2))
	e.ApplyBrush(surface.NewBrush(gg.RGBA{B: 1, A: 0.5}))
	assert.Equal(t, []Attr{
		{"stroke", "rgb(255,0,0)"},
		{"stroke-width", "2"},
		{"fill", "rgba(0,0,255,0.5)"},
	}, e.Attrs)

	e = NewElement(TagRect)
	e.ApplyPen(nil)
	e.ApplyBrush(nil)
	assert.Equal(t, []Attr{{"stroke", "none"}, {"fill", "none"}}, e.Attrs)
}

func TestElementNodeCount(t *testing.T) {
	root := NewElement(TagGroup)
	assert.Equal(t, 1, root.NodeCount())

	g := root.Append(NewElement(TagGroup))
	g.Append(NewElement(TagRect))
	g.Append(NewElement(TagLine))
	root.Append(NewElement(TagText))

	assert.Equal(t, 5, root.NodeCount())
	assert.Equal(t, 3, g.NodeCount())
}

func TestElementClone(t *testing.T) {
	root := NewElement(TagGroup)
	root.Set("transform", "scale(2 2)")
	child := root.Append(NewElement(TagText))
	child.Content = "hi"

	c := root.Clone()
	require.Equal(t, root, c)

	c.Set("transform", "rotate(1)")
	c.Children[0].Content = "changed"
	v, _ := root.Get("transform")
	assert.Equal(t, "scale(2 2)", v)
	assert.Equal(t, "hi", child.Content)
}
