package main

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/circleimage"
	"github.com/gogpu/circleimage/raster"
	"github.com/gogpu/circleimage/style"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		w, h int
		ok   bool
	}{
		{"256x256", 256, 256, true},
		{"640X480", 640, 480, true},
		{"0x10", 0, 0, false},
		{"10x-1", 0, 0, false},
		{"10", 0, 0, false},
		{"axb", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h, err := parseSize(tt.in)
			if (err == nil) != tt.ok {
				t.Fatalf("parseSize(%q) error = %v", tt.in, err)
			}
			if !tt.ok {
				if !errors.Is(err, circleimage.ErrInvalidDimension) {
					t.Errorf("error = %v, want ErrInvalidDimension", err)
				}
				return
			}
			if w != tt.w || h != tt.h {
				t.Errorf("parseSize(%q) = %dx%d, want %dx%d", tt.in, w, h, tt.w, tt.h)
			}
		})
	}
}

func TestParseInterpolation(t *testing.T) {
	for _, want := range []raster.Interpolation{raster.Nearest, raster.BiLinear, raster.CatmullRom} {
		got, err := parseInterpolation(want.String())
		if err != nil || got != want {
			t.Errorf("parseInterpolation(%q) = %v, %v", want.String(), got, err)
		}
	}
	if _, err := parseInterpolation("lanczos"); err == nil {
		t.Error("expected error for unknown interpolation")
	}
}

func TestResolveConfigOverrides(t *testing.T) {
	th, err := style.ParseTheme([]byte(`
[styles.avatar]
border_color = "#ff0000"
border_width = "4"
fit_mode = "contain"
`))
	if err != nil {
		t.Fatal(err)
	}

	o := options{style: "avatar", borderWidth: "1", fit: "cover", set: map[string]bool{"border-width": true}}
	cfg, err := resolveConfig(th, o)
	if err != nil {
		t.Fatalf("resolveConfig() error = %v", err)
	}
	if cfg.BorderWidth != 1 {
		t.Errorf("BorderWidth = %v, want explicit flag value 1", cfg.BorderWidth)
	}
	if cfg.FitMode != circleimage.FitContain {
		t.Errorf("FitMode = %v, want style value contain", cfg.FitMode)
	}

	o.style = "missing"
	if _, err := resolveConfig(th, o); !errors.Is(err, style.ErrUnknownStyle) {
		t.Errorf("missing style error = %v", err)
	}
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")

	src := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			src.Set(x, y, color.RGBA{G: 255, A: 255})
		}
	}
	writePNG(t, in, src)

	o := options{
		in: in, out: out, size: "32x32",
		borderColor: "#ffffff", borderWidth: "2",
		fit: "cover", interp: "nearest",
	}
	if err := run(o); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Fatalf("output bounds = %v, want 32x32", b)
	}
	if _, g, _, a := img.At(16, 16).RGBA(); g>>8 < 240 || a>>8 < 240 {
		t.Errorf("center = g %d a %d, want opaque green", g>>8, a>>8)
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Errorf("corner alpha = %d, want 0", a>>8)
	}
}

func TestRunRejectsNonImage(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(in, []byte("hello, not a picture"), 0o600); err != nil {
		t.Fatal(err)
	}
	o := options{in: in, out: filepath.Join(dir, "out.png"), size: "8x8", borderWidth: "0", fit: "cover", interp: "bilinear"}
	if err := run(o); !errors.Is(err, errNotImage) {
		t.Errorf("run() error = %v, want errNotImage", err)
	}
}

func TestLoadImageEmptyFile(t *testing.T) {
	in := filepath.Join(t.TempDir(), "empty.png")
	if err := os.WriteFile(in, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadImage(in); err == nil {
		t.Error("loadImage() on an empty file succeeded, want error")
	}
}
