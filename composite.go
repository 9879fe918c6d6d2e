// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package circleimage

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
)

// BorderSpec describes the ring drawn around the circle.
type BorderSpec struct {
	Color gg.RGBA
	Width float64
}

// Active reports whether the border produces any visible stroke.
// A zero width or a fully transparent color draws nothing.
func (b BorderSpec) Active() bool {
	return b.Width > 0 && b.Color.A > 0
}

// StrokeCommand is a circle stroke for the host surface. The stroke is
// centered on the circle of the given Radius, half inside and half outside.
type StrokeCommand struct {
	CX, CY float64
	Radius float64
	Width  float64
	Color  gg.RGBA
}

// CompositeDescriptor is everything a surface needs to draw one circular
// image: the clip circle, the transform applied to source pixels, and an
// optional ring stroke. Coordinates are relative to the viewport origin.
type CompositeDescriptor struct {
	Viewport  Viewport
	Source    Size
	FitMode   FitMode
	Circle    CircleGeometry
	Transform FitTransform

	// Stroke is nil when the border is inactive.
	Stroke *StrokeCommand
}

// RenderComposite computes the cover-fit composite of src inside vp.
// It is pure: no pixels are touched.
//
// A nil src returns ErrMissingSource.
func RenderComposite(src image.Image, vp Viewport, border BorderSpec) (CompositeDescriptor, error) {
	return RenderCompositeMode(src, vp, border, FitCover)
}

// RenderCompositeMode is RenderComposite with an explicit fit mode.
func RenderCompositeMode(src image.Image, vp Viewport, border BorderSpec, mode FitMode) (CompositeDescriptor, error) {
	if src == nil {
		return CompositeDescriptor{}, ErrMissingSource
	}
	return composite(SizeOf(src), vp, border, mode)
}

// composite builds a descriptor from sizes alone; the pixels never matter.
func composite(src Size, vp Viewport, border BorderSpec, mode FitMode) (CompositeDescriptor, error) {
	if err := checkBorderWidth(border.Width); err != nil {
		return CompositeDescriptor{}, err
	}

	t, err := mode.Transform(src.Width, src.Height, vp.Width, vp.Height)
	if err != nil {
		return CompositeDescriptor{}, err
	}

	// The image is inset by the border width even when no ring is drawn.
	circle, err := ComputeCircleGeometry(vp.Width, vp.Height, border.Width)
	if err != nil {
		return CompositeDescriptor{}, err
	}

	d := CompositeDescriptor{
		Viewport:  vp,
		Source:    src,
		FitMode:   mode,
		Circle:    circle,
		Transform: t,
	}
	if border.Active() {
		outer := math.Min(float64(vp.Width), float64(vp.Height)) / 2
		d.Stroke = &StrokeCommand{
			CX:     circle.CX,
			CY:     circle.CY,
			Radius: math.Max(0, outer-border.Width/2),
			Width:  border.Width,
			Color:  border.Color,
		}
	}
	return d, nil
}

// clone returns a copy that shares no memory with d.
func (d CompositeDescriptor) clone() CompositeDescriptor {
	if d.Stroke != nil {
		s := *d.Stroke
		d.Stroke = &s
	}
	return d
}

// Validate reports whether d can be drawn with src: the viewport and scale
// must be positive and src must have the size d was computed for.
func (d CompositeDescriptor) Validate(src image.Image) error {
	if src == nil {
		return ErrMissingSource
	}
	if !d.Viewport.Valid() {
		return fmt.Errorf("%w: viewport %v", ErrInvalidDimension, d.Viewport)
	}
	if got := SizeOf(src); got != d.Source {
		return fmt.Errorf("%w: source is %v, descriptor expects %v", ErrInvalidDimension, got, d.Source)
	}
	if d.Transform.Scale <= 0 {
		return fmt.Errorf("%w: scale %v", ErrInvalidDimension, d.Transform.Scale)
	}
	return nil
}

// SourceBounds returns the part of the source, in source pixel space, that
// ends up inside the viewport.
func (d CompositeDescriptor) SourceBounds() (x0, y0, x1, y1 float64) {
	s := d.Transform.Scale
	x0 = math.Max(0, -d.Transform.OffsetX/s)
	y0 = math.Max(0, -d.Transform.OffsetY/s)
	x1 = math.Min(float64(d.Source.Width), (float64(d.Viewport.Width)-d.Transform.OffsetX)/s)
	y1 = math.Min(float64(d.Source.Height), (float64(d.Viewport.Height)-d.Transform.OffsetY)/s)
	return x0, y0, x1, y1
}

func (d CompositeDescriptor) String() string {
	ring := "none"
	if d.Stroke != nil {
		ring = fmt.Sprintf("r=%.2f w=%.2f", d.Stroke.Radius, d.Stroke.Width)
	}
	return fmt.Sprintf("composite{src=%v vp=%v fit=%v scale=%.4f off=(%.2f,%.2f) circle=(%.2f,%.2f r=%.2f) ring=%s}",
		d.Source, d.Viewport, d.FitMode, d.Transform.Scale, d.Transform.OffsetX, d.Transform.OffsetY,
		d.Circle.CX, d.Circle.CY, d.Circle.Radius, ring)
}
