package output

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-sphere-caster/pkg/renderer"
)

// ChannelToByte converts a color channel to a byte. Values at or below 0 map to 0,
// values at or above 1 map to 255, everything else is value*255 truncated.
func ChannelToByte(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v * 255)
}

// PPMHeader returns the ASCII header of a binary PPM image
func PPMHeader(width, height int) string {
	return fmt.Sprintf("P6\n%d %d\n255\n", width, height)
}

// WritePPM writes the framebuffer as a binary (P6) PPM image: the header followed by
// one byte per channel, R then G then B, in row-major pixel order
func WritePPM(w io.Writer, fb *renderer.Framebuffer) error {
	if fb.Width <= 0 || fb.Height <= 0 || len(fb.Pixels) != fb.Width*fb.Height {
		return fmt.Errorf("framebuffer %dx%d holds %d pixels", fb.Width, fb.Height, len(fb.Pixels))
	}

	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(PPMHeader(fb.Width, fb.Height)); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	for _, pixel := range fb.Pixels {
		rgb := [3]byte{ChannelToByte(pixel.X), ChannelToByte(pixel.Y), ChannelToByte(pixel.Z)}
		if _, err := bw.Write(rgb[:]); err != nil {
			return fmt.Errorf("failed to write PPM body: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush PPM data: %w", err)
	}
	return nil
}

// EncodePPM returns the framebuffer encoded as a binary PPM image
func EncodePPM(fb *renderer.Framebuffer) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(PPMHeader(fb.Width, fb.Height)) + fb.Len()*3)
	if err := WritePPM(&buf, fb); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SavePPM creates (or truncates) the file at path and writes the framebuffer to it
func SavePPM(path string, fb *renderer.Framebuffer) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := WritePPM(file, fb); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
