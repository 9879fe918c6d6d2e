// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"fmt"

	"golang.org/x/image/draw"
)

// Interpolation selects how source pixels are resampled.
type Interpolation uint8

const (
	// BiLinear is the default: smooth and cheap.
	BiLinear Interpolation = iota

	// Nearest picks the closest source pixel.
	Nearest

	// CatmullRom is the slowest and sharpest.
	CatmullRom
)

func (i Interpolation) String() string {
	switch i {
	case BiLinear:
		return "bilinear"
	case Nearest:
		return "nearest"
	case CatmullRom:
		return "catmullrom"
	default:
		return fmt.Sprintf("Interpolation(%d)", i)
	}
}

func (i Interpolation) interpolator() draw.Interpolator {
	switch i {
	case Nearest:
		return draw.NearestNeighbor
	case CatmullRom:
		return draw.CatmullRom
	default:
		return draw.BiLinear
	}
}

// Option configures Composite and Render.
type Option func(*options)

type options struct {
	interp Interpolation
}

func defaultOptions() options {
	return options{interp: BiLinear}
}

// WithInterpolation sets the resampling filter.
func WithInterpolation(i Interpolation) Option {
	return func(o *options) {
		o.interp = i
	}
}
