// Command circleimage renders an image file as a circular avatar PNG.
//
// Usage:
//
//	circleimage -in photo.jpg -out avatar.png -size 256x256 -border-color '#ffffff' -border-width 8
//	circleimage -in photo.jpg -theme theme.toml -style avatar
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/gg"

	"github.com/gogpu/circleimage"
	"github.com/gogpu/circleimage/raster"
	"github.com/gogpu/circleimage/style"
	"github.com/gogpu/circleimage/widget"
)

type options struct {
	in, out     string
	size        string
	borderColor string
	borderWidth string
	fit         string
	interp      string
	theme       string
	style       string

	// set records which flags were given explicitly.
	set map[string]bool
}

func main() {
	var o options
	flag.StringVar(&o.in, "in", "", "input image (PNG, JPEG, GIF, WebP, BMP, TIFF)")
	flag.StringVar(&o.out, "out", "circle.png", "output PNG file")
	flag.StringVar(&o.size, "size", "256x256", "output size WxH")
	flag.StringVar(&o.borderColor, "border-color", "", "ring color: #rgb[a], #rrggbb[aa] or @color/name")
	flag.StringVar(&o.borderWidth, "border-width", "0", "ring width: px, or dp with a theme density")
	flag.StringVar(&o.fit, "fit", "cover", "fit mode: cover or contain")
	flag.StringVar(&o.interp, "interp", "bilinear", "resampling: nearest or bilinear (catmullrom is sampled bilinearly)")
	flag.StringVar(&o.theme, "theme", "", "TOML theme file")
	flag.StringVar(&o.style, "style", "", "named style from the theme")
	verbose := flag.Bool("v", false, "debug logging to stderr")
	flag.Parse()

	o.set = map[string]bool{}
	flag.Visit(func(f *flag.Flag) { o.set[f.Name] = true })

	if *verbose {
		circleimage.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if o.in == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(o); err != nil {
		log.Fatalf("circleimage: %v", err)
	}
	log.Printf("Saved %s (%s)\n", o.out, o.size)
}

func run(o options) error {
	w, h, err := parseSize(o.size)
	if err != nil {
		return err
	}
	interp, err := parseInterpolation(o.interp)
	if err != nil {
		return err
	}

	theme := style.NewTheme()
	if o.theme != "" {
		if theme, err = style.LoadTheme(o.theme); err != nil {
			return err
		}
	}

	cfg, err := resolveConfig(theme, o)
	if err != nil {
		return err
	}

	src, err := loadImage(o.in)
	if err != nil {
		return err
	}

	v := widget.New(widget.WithTheme(theme), widget.WithConfig(cfg), widget.WithInterpolation(interp))
	v.SetImage(src)
	v.SetSize(w, h)

	dc := gg.NewContext(w, h)
	if err := v.Draw(dc, 0, 0); err != nil {
		return err
	}
	return dc.SavePNG(o.out)
}

// resolveConfig starts from the named style, if any, and applies the
// attributes given explicitly on the command line.
func resolveConfig(theme *style.Theme, o options) (circleimage.Config, error) {
	var attrs style.Attrs
	if o.style != "" {
		a, ok := theme.Styles[o.style]
		if !ok {
			return circleimage.Config{}, fmt.Errorf("%w: %q", style.ErrUnknownStyle, o.style)
		}
		attrs = a
	}
	if o.style == "" || o.set["border-color"] {
		attrs.BorderColor = o.borderColor
	}
	if o.style == "" || o.set["border-width"] {
		attrs.BorderWidth = o.borderWidth
	}
	if o.style == "" || o.set["fit"] {
		attrs.FitMode = o.fit
	}
	return theme.Resolve(attrs)
}

func parseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: size %q, want WxH", circleimage.ErrInvalidDimension, s)
	}
	w, errW := strconv.Atoi(ws)
	h, errH := strconv.Atoi(hs)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: size %q, want WxH", circleimage.ErrInvalidDimension, s)
	}
	return w, h, nil
}

func parseInterpolation(s string) (raster.Interpolation, error) {
	for _, i := range []raster.Interpolation{raster.Nearest, raster.BiLinear, raster.CatmullRom} {
		if strings.EqualFold(s, i.String()) {
			return i, nil
		}
	}
	return raster.BiLinear, fmt.Errorf("unknown interpolation %q", s)
}
