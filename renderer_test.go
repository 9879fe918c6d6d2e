// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package circleimage

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/gg"
)

func TestNewRendererDefaults(t *testing.T) {
	r := NewRenderer()
	if r.Config() != DefaultConfig() {
		t.Errorf("Config() = %+v, want defaults", r.Config())
	}
	if r.Config().Border().Active() {
		t.Error("default border should be inactive")
	}
}

func TestNewRendererOptions(t *testing.T) {
	red := gg.RGBA{R: 1, A: 1}
	r := NewRenderer(WithBorderColor(red), WithBorderWidth(3), WithFitMode(FitContain))
	want := Config{BorderColor: red, BorderWidth: 3, FitMode: FitContain}
	if r.Config() != want {
		t.Errorf("Config() = %+v, want %+v", r.Config(), want)
	}

	r = NewRenderer(WithConfig(want), WithBorder(white, 1))
	if got := r.Config(); got.BorderColor != white || got.BorderWidth != 1 || got.FitMode != FitContain {
		t.Errorf("Config() = %+v", got)
	}
}

func TestRendererCaches(t *testing.T) {
	r := NewRenderer(WithBorder(white, 2))
	src := image.NewRGBA(image.Rect(0, 0, 40, 20))
	vp := Viewport{Width: 30, Height: 30}

	first, err := r.Render(src, vp)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	second, err := r.Render(src, vp)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if r.computed != 1 {
		t.Errorf("computed = %d after two identical renders, want 1", r.computed)
	}
	if first.Circle != second.Circle || first.Transform != second.Transform || *first.Stroke != *second.Stroke {
		t.Errorf("cached descriptor differs: %v vs %v", first, second)
	}

	// Another image of the same size reuses the geometry.
	if _, err := r.Render(image.NewGray(image.Rect(0, 0, 40, 20)), vp); err != nil {
		t.Fatal(err)
	}
	if r.computed != 1 {
		t.Errorf("computed = %d for same-size source, want 1", r.computed)
	}

	// Returned descriptors do not alias the cache.
	first.Stroke.Width = 99
	third, _ := r.Render(src, vp)
	if third.Stroke.Width != 2 {
		t.Errorf("cache mutated through returned descriptor: width %v", third.Stroke.Width)
	}
}

func TestRendererRecomputes(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 20))
	vp := Viewport{Width: 30, Height: 30}

	tests := []struct {
		name   string
		change func(r *Renderer) (image.Image, Viewport)
	}{
		{"viewport", func(*Renderer) (image.Image, Viewport) { return src, Viewport{Width: 31, Height: 30} }},
		{"source size", func(*Renderer) (image.Image, Viewport) { return image.NewRGBA(image.Rect(0, 0, 41, 20)), vp }},
		{"border width", func(r *Renderer) (image.Image, Viewport) { r.SetBorderWidth(5); return src, vp }},
		{"border color", func(r *Renderer) (image.Image, Viewport) { r.SetBorderColor(gg.RGBA{G: 1, A: 1}); return src, vp }},
		{"fit mode", func(r *Renderer) (image.Image, Viewport) { r.SetFitMode(FitContain); return src, vp }},
		{"config", func(r *Renderer) (image.Image, Viewport) { r.SetConfig(DefaultConfig()); return src, vp }},
		{"invalidate", func(r *Renderer) (image.Image, Viewport) { r.Invalidate(); return src, vp }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer(WithBorder(white, 2))
			if _, err := r.Render(src, vp); err != nil {
				t.Fatal(err)
			}
			img, v := tt.change(r)
			if _, err := r.Render(img, v); err != nil {
				t.Fatal(err)
			}
			if r.computed != 2 {
				t.Errorf("computed = %d, want 2", r.computed)
			}
		})
	}
}

func TestRendererErrors(t *testing.T) {
	r := NewRenderer()
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))

	if _, err := r.Render(nil, Viewport{Width: 10, Height: 10}); !errors.Is(err, ErrMissingSource) {
		t.Errorf("nil source error = %v, want ErrMissingSource", err)
	}
	if _, err := r.Render(src, Viewport{Width: 0, Height: 100}); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("zero viewport error = %v, want ErrInvalidDimension", err)
	}

	r.SetBorderWidth(-1)
	if _, err := r.Render(src, Viewport{Width: 10, Height: 10}); !errors.Is(err, ErrInvalidBorder) {
		t.Errorf("negative border error = %v, want ErrInvalidBorder", err)
	}
	if r.valid {
		t.Error("cache valid after failed render")
	}

	r.SetBorderWidth(1)
	if _, err := r.Render(src, Viewport{Width: 10, Height: 10}); err != nil {
		t.Errorf("render after fixing border: %v", err)
	}
}
