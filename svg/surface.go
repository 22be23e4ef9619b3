// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package svg

import (
	"fmt"
	"io"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/surface"
	"github.com/gogpu/surface/internal/scope"
)

func init() {
	surface.Register("svg", func(width, height float64, cfg surface.Config) (surface.Surface, error) {
		return newSurface(width, height, cfg), nil
	})
}

// Surface records drawing calls into an element tree and writes it as an
// SVG document.
//
// The tree is optimized once, on the first WriteTo or SaveToFile. After
// that the surface is frozen: fallible drawing calls return
// surface.ErrFrozen and the others are ignored with a warning.
type Surface struct {
	width  float64
	height float64

	root  *Element
	defs  []*Element
	defID int
	stack *scope.Stack[*Element]

	measurer surface.Measurer
	frozen   bool
}

var _ surface.Surface = (*Surface)(nil)

// New returns an empty surface of the given size.
func New(width, height float64, opts ...surface.Option) (*Surface, error) {
	if err := surface.ValidateSize(width, height); err != nil {
		return nil, err
	}
	return newSurface(width, height, surface.NewConfig(opts...)), nil
}

func newSurface(width, height float64, cfg surface.Config) *Surface {
	root := NewElement(TagGroup)
	return &Surface{
		width:    width,
		height:   height,
		root:     root,
		stack:    scope.New(root),
		measurer: cfg.Measurer,
	}
}

// Width returns the declared document width.
func (s *Surface) Width() float64 { return s.width }

// Height returns the declared document height.
func (s *Surface) Height() float64 { return s.height }

// Root returns the root of the content tree.
func (s *Surface) Root() *Element { return s.root }

// Definitions returns the definitions collection in creation order.
func (s *Surface) Definitions() []*Element { return s.defs }

// Depth returns the number of open scopes, counting the root.
func (s *Surface) Depth() int { return s.stack.Depth() }

// Frozen reports whether the tree has been optimized for output.
func (s *Surface) Frozen() bool { return s.frozen }

func (s *Surface) current() *Element {
	return s.stack.Top()
}

// add appends e to the innermost open scope.
func (s *Surface) add(e *Element) *Element {
	return s.current().Append(e)
}

// open appends e to the innermost open scope and makes it the new one.
func (s *Surface) open(e *Element) *Element {
	s.stack.Push(s.current().Append(e))
	return e
}

// define adds e to the definitions collection under a fresh id.
func (s *Surface) define(e *Element) string {
	s.defID++
	id := fmt.Sprintf("did%d", s.defID)
	e.Set("id", id)
	s.defs = append(s.defs, e)
	return id
}

// ignored reports whether a call must be dropped because the surface is
// frozen.
func (s *Surface) ignored(op string) bool {
	if s.frozen {
		surface.Logger().Warn("svg: drawing on a frozen surface", "op", op)
	}
	return s.frozen
}

func (s *Surface) checkFrozen(op string) error {
	if s.frozen {
		return fmt.Errorf("svg: %s: %w", op, surface.ErrFrozen)
	}
	return nil
}

// ScaleTransform implements surface.Surface.
func (s *Surface) ScaleTransform(sx, sy float64) {
	if s.ignored("ScaleTransform") {
		return
	}
	s.openTransform("scale", sx, sy)
}

// TranslateTransform implements surface.Surface.
func (s *Surface) TranslateTransform(dx, dy float64) {
	if s.ignored("TranslateTransform") {
		return
	}
	s.openTransform("translate", dx, dy)
}

// RotateTransform implements surface.Surface.
func (s *Surface) RotateTransform(angle float64) {
	if s.ignored("RotateTransform") {
		return
	}
	s.openTransform("rotate", angle)
}

// MultiplyTransform implements surface.Surface.
func (s *Surface) MultiplyTransform(m gg.Matrix) {
	if s.ignored("MultiplyTransform") {
		return
	}
	s.openTransform("matrix", m.A, m.D, m.B, m.E, m.C, m.F)
}

func (s *Surface) openTransform(fn string, args ...float64) {
	buf := make([]byte, 0, 48)
	buf = append(buf, fn...)
	buf = append(buf, '(')
	for i, v := range args {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = surface.AppendNumber(buf, v)
	}
	buf = append(buf, ')')

	g := NewElement(TagGroup)
	g.Set("transform", string(buf))
	s.open(g)
}

// IntersectClipRect implements surface.Surface.
func (s *Surface) IntersectClipRect(r surface.Rect) {
	if s.ignored("IntersectClipRect") {
		return
	}
	shape := NewElement(TagRect)
	shape.SetNumber("x", r.X)
	shape.SetNumber("y", r.Y)
	shape.SetNumber("width", r.Width)
	shape.SetNumber("height", r.Height)
	s.openClip(shape)
}

// IntersectClipPath implements surface.Surface.
func (s *Surface) IntersectClipPath(p surface.PathSource) error {
	if err := s.checkFrozen("IntersectClipPath"); err != nil {
		return err
	}
	d, err := encodePath(p)
	if err != nil {
		return fmt.Errorf("svg: clip path: %w", err)
	}
	shape := NewElement(TagPath)
	shape.Set("d", d)
	s.openClip(shape)
	return nil
}

func (s *Surface) openClip(shape *Element) {
	clip := NewElement(TagClipPath)
	id := s.define(clip)
	clip.Append(shape)

	g := NewElement(TagGroup)
	g.Set("clip-path", "url(#"+id+")")
	s.open(g)
}

// Save implements surface.Surface. A frozen surface returns the zero
// Handle.
func (s *Surface) Save() surface.Handle {
	if s.ignored("Save") {
		return 0
	}
	g := NewElement(TagGroup)
	s.current().Append(g)
	return s.stack.Save(g)
}

// Restore implements surface.Surface.
func (s *Surface) Restore(h surface.Handle) error {
	if err := s.checkFrozen("Restore"); err != nil {
		return err
	}
	if _, err := s.stack.Restore(h); err != nil {
		return fmt.Errorf("svg: restore: %w", err)
	}
	return nil
}

// MeasureString implements surface.Surface by delegating to the
// configured measurer.
func (s *Surface) MeasureString(str string, font *surface.Font) (width, height float64) {
	return s.measurer.MeasureString(str, font)
}

// freeze optimizes the tree once.
func (s *Surface) freeze() {
	if s.frozen {
		return
	}
	before := s.root.NodeCount()
	Optimize(s.root)
	s.frozen = true
	surface.Logger().Debug("svg: tree optimized",
		"nodes_before", before,
		"nodes_after", s.root.NodeCount(),
		"definitions", len(s.defs))
}

// WriteTo optimizes the tree on the first call and writes the document
// to w. It implements io.WriterTo.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	s.freeze()
	n, err := writeDocument(w, s.width, s.height, s.defs, s.root)
	if err != nil {
		return n, fmt.Errorf("svg: write: %w", err)
	}
	return n, nil
}

// SaveToFile writes the document to the named file.
func (s *Surface) SaveToFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("svg: save: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("svg: save: %w", cerr)
		}
	}()
	_, err = s.WriteTo(f)
	return err
}
