// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package circleimage

import "github.com/gogpu/gg"

// Config holds the styling attributes of a circular image.
// Hosts populate it (directly, through options, or from a style theme)
// before constructing a Renderer.
type Config struct {
	// BorderColor is the ring color. Default: fully transparent.
	BorderColor gg.RGBA

	// BorderWidth is the ring width in pixels. Default: 0.
	BorderWidth float64

	// FitMode selects cover or contain scaling. Default: FitCover.
	FitMode FitMode
}

// DefaultConfig returns the configuration used when no options are given:
// no visible border, cover fit.
func DefaultConfig() Config {
	return Config{
		BorderColor: gg.RGBA{},
		BorderWidth: 0,
		FitMode:     FitCover,
	}
}

// Border returns the border spec described by the config.
func (c Config) Border() BorderSpec {
	return BorderSpec{Color: c.BorderColor, Width: c.BorderWidth}
}

// Option configures a Renderer during creation.
//
// Example:
//
//	r := circleimage.NewRenderer(
//	    circleimage.WithBorder(gg.Hex("#ffffff"), 4),
//	    circleimage.WithFitMode(circleimage.FitCover),
//	)
type Option func(*Config)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

// WithBorder sets border color and width.
func WithBorder(color gg.RGBA, width float64) Option {
	return func(c *Config) {
		c.BorderColor = color
		c.BorderWidth = width
	}
}

// WithBorderColor sets the border color.
func WithBorderColor(color gg.RGBA) Option {
	return func(c *Config) {
		c.BorderColor = color
	}
}

// WithBorderWidth sets the border width in pixels.
func WithBorderWidth(width float64) Option {
	return func(c *Config) {
		c.BorderWidth = width
	}
}

// WithFitMode sets the fit mode.
func WithFitMode(mode FitMode) Option {
	return func(c *Config) {
		c.FitMode = mode
	}
}
