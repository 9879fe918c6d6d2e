// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package widget provides View, a host-side circular image widget.
//
// View is the adapter between a UI toolkit and the renderer: the toolkit
// forwards size changes, content changes and styling to it, and calls Draw
// from its paint callback with the gg.Context of the current frame.
//
//	v := widget.New(widget.WithTheme(theme))
//	v.SetImage(avatar)
//	v.SetSize(96, 96)
//	if v.NeedsRedraw() {
//	    _ = v.Draw(dc, 16, 16)
//	}
//
// View is NOT safe for concurrent use.
package widget

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/gogpu/circleimage"
	"github.com/gogpu/circleimage/ggsurface"
	"github.com/gogpu/circleimage/raster"
	"github.com/gogpu/circleimage/style"
)

// ErrNoTheme is returned by SetBorderColorResource when the view has no theme.
var ErrNoTheme = errors.New("widget: no theme")

// View draws an image clipped to a circle inscribed in its bounds.
type View struct {
	renderer *circleimage.Renderer
	theme    *style.Theme
	interp   raster.Interpolation

	src   image.Image
	size  circleimage.Viewport
	dirty bool
}

// Option configures a View.
type Option func(*View)

// WithConfig sets the initial styling attributes.
func WithConfig(cfg circleimage.Config) Option {
	return func(v *View) {
		v.renderer.SetConfig(cfg)
	}
}

// WithTheme sets the theme used to resolve color resources.
func WithTheme(t *style.Theme) Option {
	return func(v *View) {
		v.theme = t
	}
}

// WithInterpolation sets how the source image is resampled.
func WithInterpolation(i raster.Interpolation) Option {
	return func(v *View) {
		v.interp = i
	}
}

// New creates an empty View with the default configuration.
func New(opts ...Option) *View {
	v := &View{
		renderer: circleimage.NewRenderer(),
		dirty:    true,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewStyled creates a View configured from a named theme style.
func NewStyled(t *style.Theme, name string, opts ...Option) (*View, error) {
	cfg, err := t.Config(name)
	if err != nil {
		return nil, err
	}
	return New(append([]Option{WithTheme(t), WithConfig(cfg)}, opts...)...), nil
}

// Config returns the current styling attributes.
func (v *View) Config() circleimage.Config {
	return v.renderer.Config()
}

// Image returns the current source image, or nil.
func (v *View) Image() image.Image {
	return v.src
}

// SetImage sets the source image. nil clears it; the view then draws nothing.
func (v *View) SetImage(img image.Image) {
	v.src = img
	v.invalidate()
}

// Size returns the current viewport size.
func (v *View) Size() circleimage.Viewport {
	return v.size
}

// SetSize is called by the host on every layout change.
func (v *View) SetSize(width, height int) {
	s := circleimage.Viewport{Width: width, Height: height}
	if s == v.size {
		return
	}
	v.size = s
	v.invalidate()
}

// SetBorderColor sets the ring color.
func (v *View) SetBorderColor(c gg.RGBA) {
	v.renderer.SetBorderColor(c)
	v.invalidate()
}

// SetBorderColorResource sets the ring color from the theme palette, by
// name ("accent") or reference ("@color/accent").
func (v *View) SetBorderColorResource(name string) error {
	if v.theme == nil {
		return ErrNoTheme
	}
	ref := name
	if len(ref) == 0 || ref[0] != '@' {
		ref = "@color/" + name
	}
	c, err := v.theme.Color(ref)
	if err != nil {
		return err
	}
	v.SetBorderColor(c)
	return nil
}

// SetBorderWidth sets the ring width in pixels. Negative or non-finite
// widths are rejected and leave the view unchanged.
func (v *View) SetBorderWidth(w float64) error {
	if err := circleimage.ValidateBorderWidth(w); err != nil {
		return fmt.Errorf("widget: %w", err)
	}
	v.renderer.SetBorderWidth(w)
	v.invalidate()
	return nil
}

// SetFitMode sets cover or contain scaling.
func (v *View) SetFitMode(m circleimage.FitMode) {
	v.renderer.SetFitMode(m)
	v.invalidate()
}

// NeedsRedraw reports whether anything changed since the last Draw.
func (v *View) NeedsRedraw() bool {
	return v.dirty
}

func (v *View) invalidate() {
	v.dirty = true
}

// Descriptor returns the current composite, or ErrMissingSource when no
// image is set.
func (v *View) Descriptor() (circleimage.CompositeDescriptor, error) {
	return v.renderer.Render(v.src, v.size)
}

// Draw paints the view on dc with its top-left corner at (x, y).
// Without a source image Draw paints nothing and returns nil.
func (v *View) Draw(dc *gg.Context, x, y int) error {
	d, err := v.Descriptor()
	if errors.Is(err, circleimage.ErrMissingSource) {
		circleimage.Logger().Debug("widget: no image, skipping draw")
		v.dirty = false
		return nil
	}
	if err != nil {
		return err
	}

	if err := ggsurface.New(dc, ggsurface.WithInterpolation(v.interp)).Draw(v.src, d, image.Pt(x, y)); err != nil {
		return err
	}
	circleimage.Logger().Debug("widget: drawn",
		slog.Int("x", x), slog.Int("y", y),
		slog.String("size", v.size.String()),
	)
	v.dirty = false
	return nil
}
