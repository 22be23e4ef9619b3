// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/surface"
)

// Scene is a drawing described in TOML.
type Scene struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Shapes []Shape `toml:"shapes"`
}

// Shape is one drawing call plus the transforms and clip it is drawn
// under.
type Shape struct {
	Kind string `toml:"kind"`

	X float64 `toml:"x"`
	Y float64 `toml:"y"`
	W float64 `toml:"w"`
	H float64 `toml:"h"`

	Points  [][2]float64 `toml:"points"`
	Tension *float64     `toml:"tension"`
	Start   float64      `toml:"start"`
	Sweep   float64      `toml:"sweep"`

	Fill        string  `toml:"fill"`
	Stroke      string  `toml:"stroke"`
	StrokeWidth float64 `toml:"stroke_width"`

	Text       string  `toml:"text"`
	FontFamily string  `toml:"font_family"`
	FontSize   float64 `toml:"font_size"`
	Bold       bool    `toml:"bold"`
	Italic     bool    `toml:"italic"`
	Underline  bool    `toml:"underline"`
	Align      string  `toml:"align"`
	VAlign     string  `toml:"valign"`

	Image string   `toml:"image"`
	URL   string   `toml:"url"`
	Alpha *float64 `toml:"alpha"`

	Translate []float64 `toml:"translate"`
	Scale     []float64 `toml:"scale"`
	Rotate    float64   `toml:"rotate"`
	Clip      []float64 `toml:"clip"`
}

// ParseScene decodes a TOML scene. Unknown keys are rejected.
func ParseScene(data []byte) (*Scene, error) {
	var sc Scene
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if err := surface.ValidateSize(sc.Width, sc.Height); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return &sc, nil
}

// renderer draws scenes, sharing fonts and images between shapes.
type renderer struct {
	fonts  *text.FontSource
	images map[string]*surface.Image
}

func newRenderer(fonts *text.FontSource) *renderer {
	return &renderer{fonts: fonts, images: make(map[string]*surface.Image)}
}

// Render draws every shape of sc onto s.
func (r *renderer) Render(s surface.Surface, sc *Scene) error {
	var errs []error
	for i, sh := range sc.Shapes {
		if err := r.draw(s, sh); err != nil {
			errs = append(errs, fmt.Errorf("shape %d (%s): %w", i, sh.Kind, err))
		}
	}
	return errors.Join(errs...)
}

func (r *renderer) draw(s surface.Surface, sh Shape) (err error) {
	h := s.Save()
	defer func() {
		if rerr := s.Restore(h); rerr != nil && err == nil {
			err = rerr
		}
	}()

	if len(sh.Translate) == 2 {
		s.TranslateTransform(sh.Translate[0], sh.Translate[1])
	}
	if sh.Rotate != 0 {
		s.RotateTransform(sh.Rotate)
	}
	if len(sh.Scale) == 2 {
		s.ScaleTransform(sh.Scale[0], sh.Scale[1])
	}
	if len(sh.Clip) == 4 {
		s.IntersectClipRect(surface.NewRect(sh.Clip[0], sh.Clip[1], sh.Clip[2], sh.Clip[3]))
	}

	pen, brush := sh.pen(), sh.brush()
	tension := surface.DefaultTension
	if sh.Tension != nil {
		tension = *sh.Tension
	}

	switch sh.Kind {
	case "line":
		s.DrawLine(pen, sh.X, sh.Y, sh.X+sh.W, sh.Y+sh.H)
	case "lines":
		return s.DrawLines(pen, sh.points())
	case "rect":
		s.DrawRectangle(pen, brush, sh.X, sh.Y, sh.W, sh.H)
	case "ellipse":
		s.DrawEllipse(pen, brush, sh.X, sh.Y, sh.W, sh.H)
	case "arc":
		s.DrawArc(pen, sh.X, sh.Y, sh.W, sh.H, sh.Start, sh.Sweep)
	case "polygon":
		return s.DrawPath(pen, brush, sh.polygon())
	case "curve":
		return s.DrawCurve(pen, sh.points(), tension)
	case "closed_curve":
		return s.DrawClosedCurve(pen, brush, sh.points(), tension)
	case "text":
		s.DrawString(sh.Text, r.font(sh), brush, sh.X, sh.Y, sh.format())
	case "image":
		img := r.image(sh)
		if sh.Alpha != nil {
			s.DrawImageAlpha(*sh.Alpha, img, surface.NewRect(sh.X, sh.Y, sh.W, sh.H))
		} else {
			s.DrawImage(img, sh.X, sh.Y, sh.W, sh.H)
		}
	default:
		return fmt.Errorf("unknown kind %q", sh.Kind)
	}
	return nil
}

func (sh Shape) pen() *surface.Pen {
	if sh.Stroke == "" {
		return nil
	}
	w := sh.StrokeWidth
	if w == 0 {
		w = 1
	}
	return surface.NewPen(gg.Hex(sh.Stroke), w)
}

func (sh Shape) brush() *surface.Brush {
	if sh.Fill == "" {
		return nil
	}
	return surface.NewBrush(gg.Hex(sh.Fill))
}

func (sh Shape) points() []gg.Point {
	pts := make([]gg.Point, len(sh.Points))
	for i, p := range sh.Points {
		pts[i] = gg.Pt(p[0], p[1])
	}
	return pts
}

func (sh Shape) polygon() *gg.Path {
	p := gg.NewPath()
	for i, pt := range sh.Points {
		if i == 0 {
			p.MoveTo(pt[0], pt[1])
		} else {
			p.LineTo(pt[0], pt[1])
		}
	}
	if len(sh.Points) > 0 {
		p.Close()
	}
	return p
}

func (sh Shape) format() surface.StringFormat {
	return surface.StringFormat{Alignment: parseAlign(sh.Align), LineAlignment: parseAlign(sh.VAlign)}
}

func parseAlign(s string) surface.Align {
	switch s {
	case "center", "middle":
		return surface.AlignCenter
	case "far", "end", "right", "bottom":
		return surface.AlignFar
	case "baseline":
		return surface.AlignBaseline
	default:
		return surface.AlignNear
	}
}

func (r *renderer) font(sh Shape) *surface.Font {
	size := sh.FontSize
	if size == 0 {
		size = 12
	}
	f := &surface.Font{Family: sh.FontFamily, Size: size}
	if f.Family == "" {
		f.Family = "Go"
	}
	if sh.Bold {
		f.Style |= surface.FontBold
	}
	if sh.Italic {
		f.Style |= surface.FontItalic
	}
	if sh.Underline {
		f.Style |= surface.FontUnderline
	}
	if r.fonts != nil {
		f.Face = r.fonts.Face(size)
	}
	return f
}

func (r *renderer) image(sh Shape) *surface.Image {
	key := sh.Image + "\x00" + sh.URL
	img, ok := r.images[key]
	if !ok {
		url := sh.URL
		if url == "" {
			url = sh.Image
		}
		img = surface.NewImage(sh.Image, url)
		r.images[key] = img
	}
	return img
}
