// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package circleimage

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
)

// Size is a width and height in pixels.
type Size struct {
	Width, Height int
}

// Viewport is the pixel area the circle is inscribed into.
type Viewport = Size

// SizeOf returns the pixel size of an image's bounds.
func SizeOf(img image.Image) Size {
	b := img.Bounds()
	return Size{Width: b.Dx(), Height: b.Dy()}
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// FitTransform maps source pixel space into viewport pixel space:
//
//	x' = Scale*x + OffsetX
//	y' = Scale*y + OffsetY
type FitTransform struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// Apply maps a source point into viewport space.
func (t FitTransform) Apply(x, y float64) (float64, float64) {
	return t.Scale*x + t.OffsetX, t.Scale*y + t.OffsetY
}

// Matrix returns the transform as a gg affine matrix (scale, then translate).
func (t FitTransform) Matrix() gg.Matrix {
	return gg.Translate(t.OffsetX, t.OffsetY).Multiply(gg.Scale(t.Scale, t.Scale))
}

// ScaledSize returns the source dimensions after scaling.
func (t FitTransform) ScaledSize(src Size) (w, h float64) {
	return float64(src.Width) * t.Scale, float64(src.Height) * t.Scale
}

// CircleGeometry is the clip circle inscribed in a viewport.
type CircleGeometry struct {
	CX, CY float64
	Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c CircleGeometry) Contains(x, y float64) bool {
	dx, dy := x-c.CX, y-c.CY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

func checkDimensions(sourceWidth, sourceHeight, viewportWidth, viewportHeight int) error {
	if sourceWidth <= 0 || sourceHeight <= 0 {
		return fmt.Errorf("%w: source %dx%d", ErrInvalidDimension, sourceWidth, sourceHeight)
	}
	if viewportWidth <= 0 || viewportHeight <= 0 {
		return fmt.Errorf("%w: viewport %dx%d", ErrInvalidDimension, viewportWidth, viewportHeight)
	}
	return nil
}

// wider reports whether the source is relatively wider than the viewport,
// comparing sw/sh > vw/vh without division.
func wider(sourceWidth, sourceHeight, viewportWidth, viewportHeight int) bool {
	return int64(sourceWidth)*int64(viewportHeight) > int64(viewportWidth)*int64(sourceHeight)
}

// ComputeFitTransform returns the center-crop ("cover") transform of a
// source image onto a viewport. The scaled image covers the viewport on both
// axes and the excess on the other axis is cropped symmetrically, so the
// non-flush offset is zero or negative.
//
// All four dimensions must be positive, otherwise ErrInvalidDimension.
func ComputeFitTransform(sourceWidth, sourceHeight, viewportWidth, viewportHeight int) (FitTransform, error) {
	if err := checkDimensions(sourceWidth, sourceHeight, viewportWidth, viewportHeight); err != nil {
		return FitTransform{}, err
	}

	sw, sh := float64(sourceWidth), float64(sourceHeight)
	vw, vh := float64(viewportWidth), float64(viewportHeight)

	var t FitTransform
	if wider(sourceWidth, sourceHeight, viewportWidth, viewportHeight) {
		t.Scale = vh / sh
		t.OffsetX = (vw - sw*t.Scale) / 2
	} else {
		t.Scale = vw / sw
		t.OffsetY = (vh - sh*t.Scale) / 2
	}
	return t, nil
}

// ComputeContainTransform returns the letterbox ("contain") transform: the
// whole source fits inside the viewport and is centered, leaving
// non-negative margins on one axis.
func ComputeContainTransform(sourceWidth, sourceHeight, viewportWidth, viewportHeight int) (FitTransform, error) {
	if err := checkDimensions(sourceWidth, sourceHeight, viewportWidth, viewportHeight); err != nil {
		return FitTransform{}, err
	}

	sw, sh := float64(sourceWidth), float64(sourceHeight)
	vw, vh := float64(viewportWidth), float64(viewportHeight)

	var t FitTransform
	if wider(sourceWidth, sourceHeight, viewportWidth, viewportHeight) {
		t.Scale = vw / sw
		t.OffsetY = (vh - sh*t.Scale) / 2
	} else {
		t.Scale = vh / sh
		t.OffsetX = (vw - sw*t.Scale) / 2
	}
	return t, nil
}

// ComputeCircleGeometry returns the circle inscribed in the viewport,
// inset by borderWidth so a ring of that width stays inside the viewport.
// The radius is clamped to zero when the border is wider than half the
// shorter side.
func ComputeCircleGeometry(viewportWidth, viewportHeight int, borderWidth float64) (CircleGeometry, error) {
	if viewportWidth <= 0 || viewportHeight <= 0 {
		return CircleGeometry{}, fmt.Errorf("%w: viewport %dx%d", ErrInvalidDimension, viewportWidth, viewportHeight)
	}
	if err := checkBorderWidth(borderWidth); err != nil {
		return CircleGeometry{}, err
	}

	vw, vh := float64(viewportWidth), float64(viewportHeight)
	return CircleGeometry{
		CX:     vw / 2,
		CY:     vh / 2,
		Radius: math.Max(0, math.Min(vw, vh)/2-borderWidth),
	}, nil
}

// ValidateBorderWidth returns ErrInvalidBorder for negative or non-finite widths.
func ValidateBorderWidth(w float64) error {
	return checkBorderWidth(w)
}

func checkBorderWidth(w float64) error {
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: width %v", ErrInvalidBorder, w)
	}
	return nil
}
