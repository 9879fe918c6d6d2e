// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package style

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

const colorRefPrefix = "@color/"

// Color resolves a color attribute. The empty string and "transparent"
// yield a fully transparent color.
func (t *Theme) Color(s string) (gg.RGBA, error) {
	s = strings.TrimSpace(s)
	name, isRef := strings.CutPrefix(s, colorRefPrefix)
	if !isRef {
		return ParseColor(s)
	}

	v, ok := t.Colors[name]
	if !ok {
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	// Palette entries are literals; no reference chains.
	c, err := ParseColor(v)
	if err != nil {
		return gg.RGBA{}, fmt.Errorf("color %q: %w", name, err)
	}
	return c, nil
}

// ParseColor parses a color literal: "#rgb", "#rgba", "#rrggbb",
// "#rrggbbaa" (the '#' is optional), "transparent" or "".
func ParseColor(s string) (gg.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "transparent") {
		return gg.RGBA{}, nil
	}

	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	for _, r := range hex {
		if !isHexDigit(r) {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}
	return gg.Hex(hex), nil
}

func isHexDigit(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

// Length resolves a length attribute into pixels. Accepted forms are a
// bare number (pixels), "<n>px" and "<n>dp" (scaled by the theme density).
// The empty string is 0.
func (t *Theme) Length(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	scale := 1.0
	num := s
	switch {
	case strings.HasSuffix(s, "dp"):
		num = strings.TrimSuffix(s, "dp")
		scale = t.density()
	case strings.HasSuffix(s, "px"):
		num = strings.TrimSuffix(s, "px")
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLength, s)
	}
	return v * scale, nil
}

func (t *Theme) density() float64 {
	if t.Density <= 0 {
		return 1
	}
	return t.Density
}
