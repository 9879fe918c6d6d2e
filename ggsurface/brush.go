// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsurface

import (
	"image"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/gogpu/circleimage/raster"
)

// imageSampler reads a source image at device-space points.
// It is the gg counterpart of a bitmap shader: the fill path decides
// coverage, the sampler decides color.
type imageSampler struct {
	pix     *image.NRGBA
	inv     gg.Matrix // device space to source space
	nearest bool
}

// newImageBrush returns a brush painting src mapped to device space by
// toDevice. Points that fall outside src are transparent.
//
// Nearest samples the closest pixel; every other interpolation samples
// bilinearly.
func newImageBrush(src image.Image, toDevice gg.Matrix, interp raster.Interpolation) gg.CustomBrush {
	s := &imageSampler{
		pix:     straightAlpha(src),
		inv:     toDevice.Invert(),
		nearest: interp == raster.Nearest,
	}
	return gg.NewCustomBrush(s.colorAt).WithName("circleimage")
}

// straightAlpha returns src as a zero-origin *image.NRGBA, copying only
// when needed.
func straightAlpha(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := src.Bounds()
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(n, n.Rect, src, b.Min, draw.Src)
	return n
}

func (s *imageSampler) colorAt(x, y float64) gg.RGBA {
	p := s.inv.TransformPoint(gg.Pt(x, y))
	w, h := s.pix.Rect.Dx(), s.pix.Rect.Dy()
	if p.X < 0 || p.Y < 0 || p.X >= float64(w) || p.Y >= float64(h) {
		return gg.Transparent
	}
	if s.nearest {
		return s.texel(int(p.X), int(p.Y))
	}
	return s.bilinear(p.X-0.5, p.Y-0.5, w, h)
}

func (s *imageSampler) texel(x, y int) gg.RGBA {
	i := s.pix.PixOffset(x, y)
	px := s.pix.Pix[i : i+4 : i+4]
	return gg.RGBA{
		R: float64(px[0]) / 255,
		G: float64(px[1]) / 255,
		B: float64(px[2]) / 255,
		A: float64(px[3]) / 255,
	}
}

// bilinear blends the four texels around (fx, fy) in premultiplied space
// and returns a straight-alpha color. Edges are clamped.
func (s *imageSampler) bilinear(fx, fy float64, w, h int) gg.RGBA {
	x0f, y0f := math.Floor(fx), math.Floor(fy)
	tx, ty := fx-x0f, fy-y0f
	x0, y0 := clampInt(int(x0f), w), clampInt(int(y0f), h)
	x1, y1 := clampInt(int(x0f)+1, w), clampInt(int(y0f)+1, h)

	var r, g, b, a float64
	add := func(x, y int, weight float64) {
		c := s.texel(x, y)
		wa := weight * c.A
		r += c.R * wa
		g += c.G * wa
		b += c.B * wa
		a += wa
	}
	add(x0, y0, (1-tx)*(1-ty))
	add(x1, y0, tx*(1-ty))
	add(x0, y1, (1-tx)*ty)
	add(x1, y1, tx*ty)

	if a <= 0 {
		return gg.Transparent
	}
	return gg.RGBA{R: r / a, G: g / a, B: b / a, A: a}
}

func clampInt(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
