package appicon

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"os"

	"github.com/disintegration/imaging"
)

// ErrMissingCodec is returned by Preflight when PNG images can't be produced.
var ErrMissingCodec = errors.New("png codec unavailable")

// Preflight verifies that a PNG image can be encoded and decoded back.
func Preflight() error {
	var buf bytes.Buffer

	img := imaging.New(1, 1, color.NRGBA{})
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return fmt.Errorf("%w: %v", ErrMissingCodec, err)
	}
	_, format, err := image.DecodeConfig(&buf)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMissingCodec, err)
	}
	if format != "png" {
		return fmt.Errorf("%w: decoded as %q", ErrMissingCodec, format)
	}
	return nil
}

// saveImg encodes img as PNG into the file at path, replacing its content.
func saveImg(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}

	if err := encodeImg(file, img); err != nil {
		if err := file.Close(); err != nil {
			log.Printf("could not close the destination file: %v", err)
		}
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("could not write the destination file: %w", err)
	}
	return nil
}

// encodeImg encodes an image as PNG to a destination of type io.Writer.
func encodeImg(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		return fmt.Errorf("could not encode the image: %w", err)
	}
	return nil
}
