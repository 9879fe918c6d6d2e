// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster composites a circleimage.CompositeDescriptor into an
// *image.RGBA.
//
// The circle and the ring are rasterized with golang.org/x/image/vector
// into anti-aliased alpha masks. Source pixels are resampled through the
// descriptor's fit transform with golang.org/x/image/draw, using the circle
// mask as destination mask, so only pixels inside the circle are touched.
package raster

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"

	"github.com/gogpu/circleimage"
)

// ErrNilDestination is returned when Composite is given a nil destination.
var ErrNilDestination = errors.New("raster: nil destination")

// Composite draws src onto dst as described by d, with the viewport's
// top-left corner at at. Pixels outside the circle are left untouched.
// The viewport may extend past dst's bounds; it is clipped.
func Composite(dst *image.RGBA, at image.Point, src image.Image, d circleimage.CompositeDescriptor, opts ...Option) error {
	if dst == nil {
		return ErrNilDestination
	}
	if err := d.Validate(src); err != nil {
		return err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	vp := image.Rectangle{Min: at, Max: at.Add(image.Pt(d.Viewport.Width, d.Viewport.Height))}
	circleimage.Logger().Debug("raster: composite",
		slog.String("viewport", vp.String()),
		slog.String("interp", o.interp.String()),
		slog.Float64("radius", d.Circle.Radius),
	)

	if d.Circle.Radius > 0 {
		mask := CircleMask(d.Viewport, d.Circle)
		b := src.Bounds()
		s := d.Transform.Scale
		s2d := f64.Aff3{
			s, 0, d.Transform.OffsetX + float64(at.X) - s*float64(b.Min.X),
			0, s, d.Transform.OffsetY + float64(at.Y) - s*float64(b.Min.Y),
		}
		o.interp.interpolator().Transform(dst, s2d, src, b, draw.Over, &draw.Options{
			DstMask:  mask,
			DstMaskP: image.Pt(-at.X, -at.Y),
		})
	}

	if st := d.Stroke; st != nil && st.Width > 0 && st.Color.A > 0 {
		ring := RingMask(d.Viewport, *st)
		draw.DrawMask(dst, vp, image.NewUniform(st.Color.Color()), image.Point{}, ring, image.Point{}, draw.Over)
	}
	return nil
}

// Render composites src into a new transparent image the size of the
// descriptor's viewport.
func Render(src image.Image, d circleimage.CompositeDescriptor, opts ...Option) (*image.RGBA, error) {
	if !d.Viewport.Valid() {
		return nil, fmt.Errorf("%w: viewport %v", circleimage.ErrInvalidDimension, d.Viewport)
	}
	dst := image.NewRGBA(image.Rect(0, 0, d.Viewport.Width, d.Viewport.Height))
	if err := Composite(dst, image.Point{}, src, d, opts...); err != nil {
		return nil, err
	}
	return dst, nil
}

// CircleMask returns a viewport-sized anti-aliased mask of the circle.
func CircleMask(vp circleimage.Viewport, c circleimage.CircleGeometry) *image.Alpha {
	z := vector.NewRasterizer(vp.Width, vp.Height)
	addCircle(z, c.CX, c.CY, c.Radius, false)
	return rasterize(z)
}

// RingMask returns a viewport-sized anti-aliased mask of the annulus covered
// by the stroke: radii Radius-Width/2 to Radius+Width/2.
func RingMask(vp circleimage.Viewport, st circleimage.StrokeCommand) *image.Alpha {
	z := vector.NewRasterizer(vp.Width, vp.Height)
	outer := st.Radius + st.Width/2
	inner := st.Radius - st.Width/2
	addCircle(z, st.CX, st.CY, outer, false)
	if inner > 0 {
		// Opposite winding cancels coverage inside the inner circle.
		addCircle(z, st.CX, st.CY, inner, true)
	}
	return rasterize(z)
}

func rasterize(z *vector.Rasterizer) *image.Alpha {
	mask := image.NewAlpha(z.Bounds())
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}
