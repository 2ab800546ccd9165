package loaders

import (
	"fmt"
	"image"
	_ "image/png" // PNG decoder
	"io"
	"os"

	"github.com/df07/go-sphere-caster/pkg/core"
)

// ImageData is a decoded render as linear colors in [0, 1], row-major from the top-left pixel
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// At returns the color of pixel (x, y)
func (d *ImageData) At(x, y int) core.Vec3 {
	return d.Pixels[y*d.Width+x]
}

// Load reads a rendered PPM or PNG file. The format is detected from the file
// header and returned alongside the pixels ("ppm" or "png").
func Load(filename string) (*ImageData, string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode reads any registered image format into ImageData
func Decode(r io.Reader) (*ImageData, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return fromImage(img), format, nil
}

// fromImage converts 16-bit RGBA samples to [0, 1] channels, dropping alpha
func fromImage(img image.Image) *ImageData {
	bounds := img.Bounds()
	data := &ImageData{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pixels: make([]core.Vec3, bounds.Dx()*bounds.Dy()),
	}

	for y := 0; y < data.Height; y++ {
		for x := 0; x < data.Width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			data.Pixels[y*data.Width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}
	return data
}
