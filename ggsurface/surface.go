// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggsurface executes circleimage composite descriptors on a
// gg drawing context.
//
// The image circle is a path filled with a brush that samples the source
// through the inverse of the fit transform, and the ring is a stroked
// circle. Both go through the context's own rasterizer, so its current
// transform applies and a registered GPU accelerator is used when it
// supports the operation.
//
// # Thread Safety
//
// A Surface is NOT safe for concurrent use, same as the gg.Context it wraps.
package ggsurface

import (
	"errors"
	"image"
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/gogpu/circleimage"
	"github.com/gogpu/circleimage/raster"
)

// ErrNilContext is returned when a Surface has no gg.Context.
var ErrNilContext = errors.New("ggsurface: nil context")

// Surface draws circular images onto a gg.Context.
type Surface struct {
	dc     *gg.Context
	interp raster.Interpolation
}

// Option configures a Surface.
type Option func(*Surface)

// WithInterpolation sets how source pixels are sampled. raster.Nearest
// picks the closest pixel; the other values sample bilinearly.
func WithInterpolation(i raster.Interpolation) Option {
	return func(s *Surface) {
		s.interp = i
	}
}

// New creates a Surface drawing on dc.
func New(dc *gg.Context, opts ...Option) *Surface {
	s := &Surface{dc: dc, interp: raster.BiLinear}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Context returns the wrapped drawing context.
func (s *Surface) Context() *gg.Context {
	return s.dc
}

// Draw renders src as described by d with the viewport's top-left corner
// at at, in the context's user space.
//
// A nil src draws nothing and returns nil.
func (s *Surface) Draw(src image.Image, d circleimage.CompositeDescriptor, at image.Point) error {
	if s.dc == nil {
		return ErrNilContext
	}
	if src == nil {
		circleimage.Logger().Debug("ggsurface: no source, nothing drawn")
		return nil
	}
	if err := d.Validate(src); err != nil {
		return err
	}

	if err := s.fillImage(src, d, at); err != nil {
		return err
	}
	if d.Stroke != nil {
		return s.strokeRing(*d.Stroke, at)
	}
	return nil
}

// fillImage fills the clip circle with the source image.
func (s *Surface) fillImage(src image.Image, d circleimage.CompositeDescriptor, at image.Point) error {
	if d.Circle.Radius <= 0 {
		return nil
	}

	// source -> viewport -> user -> device
	toDevice := s.dc.GetTransform().
		Multiply(gg.Translate(float64(at.X), float64(at.Y))).
		Multiply(d.Transform.Matrix())

	prev := s.dc.FillBrush()
	defer s.dc.SetFillBrush(prev)

	s.dc.SetFillBrush(newImageBrush(src, toDevice, s.interp))
	s.dc.ClearPath()
	s.dc.DrawCircle(float64(at.X)+d.Circle.CX, float64(at.Y)+d.Circle.CY, d.Circle.Radius)
	if err := s.dc.Fill(); err != nil {
		return err
	}

	circleimage.Logger().Debug("ggsurface: image drawn",
		slog.Int("x", at.X), slog.Int("y", at.Y),
		slog.String("viewport", d.Viewport.String()),
		slog.String("interp", s.interp.String()),
	)
	return nil
}

// strokeRing draws the ring. The context's brush and stroke style are
// restored afterwards.
func (s *Surface) strokeRing(st circleimage.StrokeCommand, at image.Point) error {
	if st.Width <= 0 || st.Color.A <= 0 {
		return nil
	}

	prevBrush, prevStroke := s.dc.FillBrush(), s.dc.GetStroke()
	defer func() {
		s.dc.SetFillBrush(prevBrush)
		s.dc.SetStroke(prevStroke)
	}()

	cx, cy := float64(at.X)+st.CX, float64(at.Y)+st.CY
	s.dc.SetFillBrush(gg.Solid(st.Color))
	s.dc.ClearPath()

	// A ring whose inner edge reaches the center covers a full disc.
	if st.Radius <= st.Width/2 {
		s.dc.DrawCircle(cx, cy, st.Radius+st.Width/2)
		return s.dc.Fill()
	}

	s.dc.SetStroke(gg.DefaultStroke().WithWidth(st.Width))
	s.dc.DrawCircle(cx, cy, st.Radius)
	return s.dc.Stroke()
}
