package main

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	// Registered decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/h2non/filetype"
)

// errNotImage is returned when the input does not look like an image file.
var errNotImage = errors.New("not an image file")

// headerSize is the number of bytes filetype needs to match any type.
const headerSize = 262

// loadImage sniffs and decodes an image file.
func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	head := make([]byte, headerSize)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	head = head[:n]

	kind, err := filetype.Match(head)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if kind.MIME.Type != "image" {
		return nil, fmt.Errorf("%s: %w", path, errNotImage)
	}

	img, _, err := image.Decode(io.MultiReader(bytes.NewReader(head), f))
	if err != nil {
		return nil, fmt.Errorf("%s: decode %s: %w", path, kind.Extension, err)
	}
	return img, nil
}
