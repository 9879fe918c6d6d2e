// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "golang.org/x/image/vector"

// kappa is the control point distance for approximating a quarter circle
// with a cubic Bézier: 4/3 * (sqrt(2) - 1).
const kappa = 0.5522847498307936

// addCircle appends a closed circle to z as four cubic Béziers, clockwise
// in screen coordinates unless reverse is set.
func addCircle(z *vector.Rasterizer, cx, cy, r float64, reverse bool) {
	if r <= 0 {
		return
	}
	k := r * kappa

	// Quadrant end points in clockwise order (Y down), starting at 3 o'clock.
	type seg struct{ c1x, c1y, c2x, c2y, x, y float64 }
	segs := [4]seg{
		{cx + r, cy + k, cx + k, cy + r, cx, cy + r},
		{cx - k, cy + r, cx - r, cy + k, cx - r, cy},
		{cx - r, cy - k, cx - k, cy - r, cx, cy - r},
		{cx + k, cy - r, cx + r, cy - k, cx + r, cy},
	}

	z.MoveTo(float32(cx+r), float32(cy))
	if !reverse {
		for _, s := range segs {
			z.CubeTo(float32(s.c1x), float32(s.c1y), float32(s.c2x), float32(s.c2y), float32(s.x), float32(s.y))
		}
	} else {
		// Walk the same segments backwards, swapping control points.
		start := [4][2]float64{{cx + r, cy}, {cx, cy + r}, {cx - r, cy}, {cx, cy - r}}
		for i := 3; i >= 0; i-- {
			s := segs[i]
			z.CubeTo(float32(s.c2x), float32(s.c2y), float32(s.c1x), float32(s.c1y), float32(start[i][0]), float32(start[i][1]))
		}
	}
	z.ClosePath()
}
