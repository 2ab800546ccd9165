package output

import (
	"path/filepath"
	"testing"

	"github.com/df07/go-sphere-caster/pkg/core"
	"github.com/df07/go-sphere-caster/pkg/loaders"
	"github.com/df07/go-sphere-caster/pkg/renderer"
)

func TestSavePNG(t *testing.T) {
	fb := renderer.NewFramebuffer(2, 1)
	fb.Set(0, 0, core.NewVec3(1, 0, 0))
	fb.Set(1, 0, core.NewVec3(0, 0, 1))

	path := filepath.Join(t.TempDir(), "out.png")
	if err := SavePNG(path, fb.ToImage()); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	data, format, err := loaders.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if format != "png" {
		t.Errorf("Expected png format, got %s", format)
	}
	if data.At(0, 0) != core.NewVec3(1, 0, 0) || data.At(1, 0) != core.NewVec3(0, 0, 1) {
		t.Errorf("Unexpected PNG pixels: %v", data.Pixels)
	}
}

func TestPreview(t *testing.T) {
	fb := renderer.NewFramebuffer(64, 32)
	for i := range fb.Pixels {
		fb.Pixels[i] = core.NewVec3(0.2, 0.7, 0.8)
	}

	tests := []struct {
		name           string
		width          int
		expectedWidth  int
		expectedHeight int
	}{
		{"half size", 32, 32, 16},
		{"thumbnail", 16, 16, 8},
		{"disabled", 0, 64, 32},
		{"larger than source", 128, 64, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := Preview(fb, tt.width)
			bounds := img.Bounds()
			if bounds.Dx() != tt.expectedWidth || bounds.Dy() != tt.expectedHeight {
				t.Errorf("Expected %dx%d, got %dx%d", tt.expectedWidth, tt.expectedHeight, bounds.Dx(), bounds.Dy())
			}
		})
	}
}

func TestEncodePNG_NonEmpty(t *testing.T) {
	data, err := EncodePNG(renderer.NewFramebuffer(4, 4).ToImage())
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Errorf("Expected PNG signature, got %v", data[:min(8, len(data))])
	}
}
