// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

// Option configures a Surface during creation.
//
// Example:
//
//	s, err := surface.New("svg", 800, 600, surface.WithMeasurer(m))
type Option func(*Config)

// Config holds the resolved creation options handed to backend factories.
type Config struct {
	// Measurer answers MeasureString. Defaults to FaceMeasurer.
	Measurer Measurer

	// ImageCacheCapacity is the per-shard capacity of the raster backend's
	// alpha-blended image cache. Zero selects the cache default.
	ImageCacheCapacity int
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		Measurer: FaceMeasurer{},
	}
}

// NewConfig applies opts on top of DefaultConfig.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Measurer == nil {
		cfg.Measurer = FaceMeasurer{}
	}
	return cfg
}

// WithMeasurer sets the text measurement service.
func WithMeasurer(m Measurer) Option {
	return func(c *Config) {
		c.Measurer = m
	}
}

// WithImageCacheCapacity sets the per-shard capacity of the raster
// backend's alpha-blended image cache.
func WithImageCacheCapacity(n int) Option {
	return func(c *Config) {
		c.ImageCacheCapacity = n
	}
}
