// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package circleimage

import (
	"image"
	"log/slog"

	"github.com/gogpu/gg"
)

// cacheKey is everything a descriptor depends on. Pixels are not part of
// it: two sources of the same size share geometry.
type cacheKey struct {
	source   Size
	viewport Viewport
	border   BorderSpec
	mode     FitMode
}

// Renderer wraps RenderCompositeMode with a configuration and a one-entry
// cache, so repeated draws with unchanged sizes skip recomputation.
//
// Renderer is NOT safe for concurrent use. Use one Renderer per rendering
// goroutine, or synchronize externally.
type Renderer struct {
	cfg Config

	key   cacheKey
	desc  CompositeDescriptor
	valid bool

	computed int // recomputations, for tests
}

// NewRenderer creates a Renderer with DefaultConfig modified by opts.
func NewRenderer(opts ...Option) *Renderer {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Renderer{cfg: cfg}
}

// Config returns the current configuration.
func (r *Renderer) Config() Config {
	return r.cfg
}

// SetConfig replaces the configuration and drops the cached descriptor.
func (r *Renderer) SetConfig(cfg Config) {
	r.cfg = cfg
	r.Invalidate()
}

// SetBorderColor changes the ring color.
func (r *Renderer) SetBorderColor(c gg.RGBA) {
	r.cfg.BorderColor = c
	r.Invalidate()
}

// SetBorderWidth changes the ring width. Validation happens on Render.
func (r *Renderer) SetBorderWidth(w float64) {
	r.cfg.BorderWidth = w
	r.Invalidate()
}

// SetFitMode changes the fit mode.
func (r *Renderer) SetFitMode(m FitMode) {
	r.cfg.FitMode = m
	r.Invalidate()
}

// Invalidate drops the cached descriptor.
func (r *Renderer) Invalidate() {
	r.valid = false
}

// Render returns the composite descriptor for src in vp, reusing the cached
// one when source size, viewport and configuration are unchanged.
//
// A nil src returns ErrMissingSource; the cache is left untouched.
func (r *Renderer) Render(src image.Image, vp Viewport) (CompositeDescriptor, error) {
	if src == nil {
		return CompositeDescriptor{}, ErrMissingSource
	}

	key := cacheKey{
		source:   SizeOf(src),
		viewport: vp,
		border:   r.cfg.Border(),
		mode:     r.cfg.FitMode,
	}
	if r.valid && r.key == key {
		return r.desc.clone(), nil
	}

	d, err := composite(key.source, vp, key.border, key.mode)
	if err != nil {
		r.valid = false
		return CompositeDescriptor{}, err
	}

	Logger().Debug("circleimage: geometry recomputed",
		slog.String("source", key.source.String()),
		slog.String("viewport", vp.String()),
		slog.String("fit", key.mode.String()),
		slog.Float64("radius", d.Circle.Radius),
		slog.Bool("ring", d.Stroke != nil),
	)

	r.computed++
	r.key = key
	r.desc = d
	r.valid = true
	return d.clone(), nil
}
