// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package style resolves circular image attributes from themes.
//
// A theme is a TOML document with a pixel density, a palette of named
// colors and named styles:
//
//	density = 2.0
//
//	[colors]
//	accent = "#ff8800"
//
//	[styles.avatar]
//	border_color = "@color/accent"
//	border_width = "2dp"
//	fit_mode = "cover"
//
// Styles resolve into a circleimage.Config; the renderer itself never reads
// themes.
package style

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/circleimage"
)

// Errors returned while resolving themes and attributes.
var (
	// ErrUnknownColor is returned for a color reference missing from the palette.
	ErrUnknownColor = errors.New("style: unknown color")

	// ErrInvalidColor is returned for a malformed color literal.
	ErrInvalidColor = errors.New("style: invalid color")

	// ErrInvalidLength is returned for a malformed or negative length.
	ErrInvalidLength = errors.New("style: invalid length")

	// ErrUnknownStyle is returned when a named style does not exist.
	ErrUnknownStyle = errors.New("style: unknown style")
)

// Attrs are the styling attributes of one circular image, as written in a
// theme. Empty fields take the circleimage defaults.
type Attrs struct {
	// BorderColor is "#rgb", "#rgba", "#rrggbb", "#rrggbbaa",
	// "transparent" or a palette reference "@color/name".
	BorderColor string `toml:"border_color"`

	// BorderWidth is a number with optional unit "px" or "dp".
	BorderWidth string `toml:"border_width"`

	// FitMode is "cover" or "contain".
	FitMode string `toml:"fit_mode"`
}

// Theme is a palette plus named styles.
type Theme struct {
	// Density converts dp to px. Zero means 1.
	Density float64           `toml:"density"`
	Colors  map[string]string `toml:"colors"`
	Styles  map[string]Attrs  `toml:"styles"`
}

// NewTheme returns an empty theme with density 1.
func NewTheme() *Theme {
	return &Theme{
		Density: 1,
		Colors:  map[string]string{},
		Styles:  map[string]Attrs{},
	}
}

// ParseTheme decodes a TOML theme.
func ParseTheme(data []byte) (*Theme, error) {
	t := NewTheme()
	if err := toml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("style: decode theme: %w", err)
	}
	if t.Density == 0 {
		t.Density = 1
	}
	if t.Density < 0 {
		return nil, fmt.Errorf("%w: density %v", ErrInvalidLength, t.Density)
	}
	if t.Colors == nil {
		t.Colors = map[string]string{}
	}
	if t.Styles == nil {
		t.Styles = map[string]Attrs{}
	}
	return t, nil
}

// LoadTheme reads and decodes a TOML theme file.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("style: read theme: %w", err)
	}
	t, err := ParseTheme(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	circleimage.Logger().Debug("style: theme loaded",
		slog.String("path", path),
		slog.Int("colors", len(t.Colors)),
		slog.Int("styles", len(t.Styles)),
	)
	return t, nil
}

// Config resolves the named style.
func (t *Theme) Config(name string) (circleimage.Config, error) {
	a, ok := t.Styles[name]
	if !ok {
		return circleimage.Config{}, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	cfg, err := t.Resolve(a)
	if err != nil {
		return circleimage.Config{}, fmt.Errorf("style %q: %w", name, err)
	}
	return cfg, nil
}

// Resolve converts attributes into a renderer configuration.
func (t *Theme) Resolve(a Attrs) (circleimage.Config, error) {
	cfg := circleimage.DefaultConfig()

	c, err := t.Color(a.BorderColor)
	if err != nil {
		return cfg, err
	}
	w, err := t.Length(a.BorderWidth)
	if err != nil {
		return cfg, err
	}
	m, err := circleimage.ParseFitMode(a.FitMode)
	if err != nil {
		return cfg, err
	}

	cfg.BorderColor = c
	cfg.BorderWidth = w
	cfg.FitMode = m
	return cfg, nil
}
