// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gg"
)

var imageIDs atomic.Uint64

// Image is a logical image handle. Vector backends reference it by URL and
// never embed its bytes; raster backends decode its pixels on first use.
//
// An Image is safe for concurrent use and may be shared between surfaces.
type Image struct {
	id   uint64
	path string
	url  string

	once sync.Once
	buf  *gg.ImageBuf
	err  error
}

// NewImage returns an image whose pixels are loaded lazily from path and
// which vector backends reference as url.
func NewImage(path, url string) *Image {
	return &Image{id: imageIDs.Add(1), path: path, url: url}
}

// NewImageFromBuf returns an image backed by already decoded pixels.
func NewImageFromBuf(buf *gg.ImageBuf, url string) *Image {
	img := &Image{id: imageIDs.Add(1), url: url, buf: buf}
	img.once.Do(func() {})
	return img
}

// ID returns a process-unique identifier for the image.
func (img *Image) ID() uint64 {
	return img.id
}

// URL returns the stable, dereferenceable address of the image.
func (img *Image) URL() string {
	return img.url
}

// Pixels returns the decoded image, loading it on the first call.
// The result, including a load error, is cached.
func (img *Image) Pixels() (*gg.ImageBuf, error) {
	img.once.Do(func() {
		buf, err := gg.LoadImage(img.path)
		if err != nil {
			img.err = fmt.Errorf("surface: load image %q: %w", img.path, err)
			return
		}
		img.buf = buf
	})
	return img.buf, img.err
}
