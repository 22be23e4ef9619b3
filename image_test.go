// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageIDsUnique(t *testing.T) {
	a := NewImage("a.png", "a.png")
	b := NewImage("a.png", "a.png")
	assert.NotEqual(t, a.ID(), b.ID())
	assert.NotZero(t, a.ID())
	assert.Equal(t, "a.png", a.URL())
}

func TestImageFromBuf(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	buf := gg.ImageBufFromImage(src)
	img := NewImageFromBuf(buf, "https://example.com/x.png")

	got, err := img.Pixels()
	require.NoError(t, err)
	assert.Same(t, buf, got)
	assert.Equal(t, "https://example.com/x.png", img.URL())
}

func TestImageLoadsLazilyOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dot.png")
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src.Set(1, 1, color.NRGBA{R: 255, A: 255})
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, src))
	require.NoError(t, f.Close())

	img := NewImage(path, "dot.png")
	var wg sync.WaitGroup
	bufs := make([]*gg.ImageBuf, 4)
	for i := range bufs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bufs[i], _ = img.Pixels()
		}()
	}
	wg.Wait()

	require.NotNil(t, bufs[0])
	for _, b := range bufs[1:] {
		assert.Same(t, bufs[0], b)
	}
	assert.Equal(t, 4, bufs[0].Width())
	r, _, _, a := bufs[0].GetRGBA(1, 1)
	assert.Equal(t, uint8(255), r)
	assert.Equal(t, uint8(255), a)
}

func TestImageLoadErrorCached(t *testing.T) {
	img := NewImage(filepath.Join(t.TempDir(), "missing.png"), "missing.png")
	_, err1 := img.Pixels()
	require.Error(t, err1)
	_, err2 := img.Pixels()
	assert.Same(t, err1, err2)
	assert.Contains(t, err1.Error(), "missing.png")
}
