package output

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/nfnt/resize"

	"github.com/df07/go-sphere-caster/pkg/renderer"
)

// WritePNG encodes the image as PNG
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// EncodePNG returns the image encoded as PNG
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SavePNG writes the image to path as PNG
func SavePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := WritePNG(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// Preview returns a bilinear downscale of the framebuffer with the given width,
// keeping the aspect ratio. A width of 0 or one not smaller than the framebuffer
// returns the full-size image.
func Preview(fb *renderer.Framebuffer, width int) image.Image {
	img := fb.ToImage()
	if width <= 0 || width >= fb.Width {
		return img
	}
	return resize.Resize(uint(width), 0, img, resize.Bilinear)
}
