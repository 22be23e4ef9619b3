// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command surfdemo renders a TOML scene with any registered surface
// backend.
//
//	surfdemo -backend svg -scene scene.toml -output out.svg
//	surfdemo -backend native -output out.png
//
// Without -scene a built-in demo scene is drawn.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/gg/text"
	"github.com/gogpu/surface"
	_ "github.com/gogpu/surface/native"
	_ "github.com/gogpu/surface/svg"
)

//go:embed demo.toml
var demoScene []byte

func main() {
	var (
		backend = flag.String("backend", "svg", "surface backend: "+strings.Join(surface.Backends(), ", "))
		scene   = flag.String("scene", "", "TOML scene file (default: built-in demo)")
		output  = flag.String("output", "", "output file (default: demo.svg or demo.png)")
		verbose = flag.Bool("v", false, "log backend diagnostics")
	)
	flag.Parse()

	if *verbose {
		surface.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	data := demoScene
	if *scene != "" {
		var err error
		if data, err = os.ReadFile(*scene); err != nil {
			log.Fatalf("Failed to read scene: %v", err)
		}
	}

	out := *output
	if out == "" {
		out = "demo.svg"
		if *backend == "native" {
			out = "demo.png"
		}
	}

	if err := run(*backend, data, out); err != nil {
		log.Fatal(err)
	}
	log.Printf("Scene rendered with %s to %s\n", *backend, out)
}

func run(backend string, data []byte, output string) error {
	sc, err := ParseScene(data)
	if err != nil {
		return err
	}

	fonts, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}

	s, err := surface.New(backend, sc.Width, sc.Height)
	if err != nil {
		return err
	}
	if err := newRenderer(fonts).Render(s, sc); err != nil {
		return err
	}

	wt, ok := s.(io.WriterTo)
	if !ok {
		return fmt.Errorf("backend %q cannot write its output", backend)
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if _, err := wt.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
