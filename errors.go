// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package circleimage

import "errors"

// Errors returned by geometry and composite computations.
// All of them are local validation failures: fix the input and call again.
var (
	// ErrInvalidDimension is returned when a width or height is not positive.
	ErrInvalidDimension = errors.New("circleimage: invalid dimension")

	// ErrInvalidBorder is returned when a border width is negative or not finite.
	ErrInvalidBorder = errors.New("circleimage: invalid border")

	// ErrMissingSource is returned when a composite is requested without a
	// source image. Hosts should treat it as "draw nothing".
	ErrMissingSource = errors.New("circleimage: missing source image")

	// ErrInvalidFitMode is returned for an unknown fit mode.
	ErrInvalidFitMode = errors.New("circleimage: invalid fit mode")
)
