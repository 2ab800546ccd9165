package loaders

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"strconv"
)

// PPMHeader represents the parsed header of a binary (P6) PPM file
type PPMHeader struct {
	Width  int
	Height int
	MaxVal int
}

func init() {
	image.RegisterFormat("ppm", "P6", decodePPMImage, decodePPMConfig)
}

// LoadPPM loads a binary PPM file and converts it to Vec3 color array
func LoadPPM(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PPM file: %w", err)
	}
	defer file.Close()

	return DecodePPM(file)
}

// DecodePPM reads a P6 stream with a maximum channel value of 255
func DecodePPM(r io.Reader) (*ImageData, error) {
	img, err := decodePPMImage(r)
	if err != nil {
		return nil, err
	}
	return fromImage(img), nil
}

// decodePPMImage is the image.Decode hook for P6 streams
func decodePPMImage(r io.Reader) (image.Image, error) {
	br := bufio.NewReader(r)

	header, err := parsePPMHeader(br)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PPM header: %w", err)
	}

	body := make([]byte, header.Width*header.Height*3)
	if _, err := io.ReadFull(br, body); err != nil {
		return nil, fmt.Errorf("failed to read PPM body: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, header.Width, header.Height))
	for i := 0; i < header.Width*header.Height; i++ {
		img.Pix[4*i] = body[3*i]
		img.Pix[4*i+1] = body[3*i+1]
		img.Pix[4*i+2] = body[3*i+2]
		img.Pix[4*i+3] = 255
	}
	return img, nil
}

// decodePPMConfig is the image.DecodeConfig hook for P6 streams
func decodePPMConfig(r io.Reader) (image.Config, error) {
	header, err := parsePPMHeader(bufio.NewReader(r))
	if err != nil {
		return image.Config{}, fmt.Errorf("failed to parse PPM header: %w", err)
	}
	return image.Config{ColorModel: color.RGBAModel, Width: header.Width, Height: header.Height}, nil
}

// parsePPMHeader reads the magic number, dimensions and maxval, consuming the
// single whitespace byte that separates the header from the body
func parsePPMHeader(br *bufio.Reader) (*PPMHeader, error) {
	magic, err := readToken(br)
	if err != nil {
		return nil, err
	}
	if magic != "P6" {
		return nil, fmt.Errorf("unsupported magic number %q", magic)
	}

	values := make([]int, 3)
	names := []string{"width", "height", "maxval"}
	for i, name := range names {
		token, err := readToken(br)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		values[i], err = strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %s", name, token)
		}
		if values[i] <= 0 {
			return nil, fmt.Errorf("%s must be positive, got: %d", name, values[i])
		}
	}

	header := &PPMHeader{Width: values[0], Height: values[1], MaxVal: values[2]}
	if header.MaxVal != 255 {
		return nil, fmt.Errorf("unsupported maxval %d", header.MaxVal)
	}
	return header, nil
}

// readToken skips leading whitespace and comments, then reads one token and
// the whitespace byte that terminates it
func readToken(br *bufio.Reader) (string, error) {
	var token []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && len(token) > 0 {
				return string(token), nil
			}
			return "", err
		}
		switch {
		case b == '#' && len(token) == 0:
			if _, err := br.ReadString('\n'); err != nil {
				return "", err
			}
		case isSpace(b):
			if len(token) > 0 {
				return string(token), nil
			}
		default:
			token = append(token, b)
		}
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}
