// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package circleimage

import (
	"fmt"
	"strings"
)

// FitMode selects how a source image is scaled into the viewport.
type FitMode uint8

const (
	// FitCover scales the image to fill the viewport and crops the excess.
	// This is the default.
	FitCover FitMode = iota

	// FitContain scales the image to fit inside the viewport, leaving
	// transparent margins on one axis.
	FitContain
)

// String returns the mode name as used in style attributes.
func (m FitMode) String() string {
	switch m {
	case FitCover:
		return "cover"
	case FitContain:
		return "contain"
	default:
		return fmt.Sprintf("FitMode(%d)", m)
	}
}

// Transform computes the fit transform for this mode.
func (m FitMode) Transform(sourceWidth, sourceHeight, viewportWidth, viewportHeight int) (FitTransform, error) {
	switch m {
	case FitCover:
		return ComputeFitTransform(sourceWidth, sourceHeight, viewportWidth, viewportHeight)
	case FitContain:
		return ComputeContainTransform(sourceWidth, sourceHeight, viewportWidth, viewportHeight)
	default:
		return FitTransform{}, fmt.Errorf("%w: %v", ErrInvalidFitMode, m)
	}
}

// ParseFitMode parses "cover" or "contain" (case-insensitive).
// The empty string yields FitCover.
func ParseFitMode(s string) (FitMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cover":
		return FitCover, nil
	case "contain":
		return FitContain, nil
	default:
		return FitCover, fmt.Errorf("%w: %q", ErrInvalidFitMode, s)
	}
}
