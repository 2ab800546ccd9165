package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-caster/pkg/core"
)

func TestCamera_RayDirection_Center(t *testing.T) {
	camera := NewCamera(CameraConfig{Width: 3, Height: 3, FOV: math.Pi / 2})

	dir := camera.RayDirection(1, 1)
	expected := core.NewVec3(0, 0, -1)
	if dir.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected center ray %v, got %v", expected, dir)
	}
}

func TestCamera_RayDirection_Projection(t *testing.T) {
	tests := []struct {
		name     string
		config   CameraConfig
		i, j     int
		expected core.Vec3
	}{
		{
			name:     "wide image top right",
			config:   CameraConfig{Width: 4, Height: 2, FOV: math.Pi / 2},
			i:        3,
			j:        0,
			expected: core.NewVec3(1.5, 0.5, -1).Normalize(),
		},
		{
			name:     "wide image bottom left",
			config:   CameraConfig{Width: 4, Height: 2, FOV: math.Pi / 2},
			i:        0,
			j:        1,
			expected: core.NewVec3(-1.5, -0.5, -1).Normalize(),
		},
		{
			name:     "narrow fov",
			config:   CameraConfig{Width: 2, Height: 2, FOV: 2 * math.Atan(0.5)},
			i:        1,
			j:        1,
			expected: core.NewVec3(0.25, -0.25, -1).Normalize(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := NewCamera(tt.config)
			dir := camera.RayDirection(tt.i, tt.j)
			if dir.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, dir)
			}
		})
	}
}

func TestCamera_RayDirection_UnitLength(t *testing.T) {
	config := CameraConfig{Width: 16, Height: 9, FOV: math.Pi / 3}
	camera := NewCamera(config)

	for j := 0; j < config.Height; j++ {
		for i := 0; i < config.Width; i++ {
			dir := camera.RayDirection(i, j)
			if math.Abs(dir.Length()-1) > 1e-9 {
				t.Fatalf("Pixel (%d,%d): expected unit direction, got length %f", i, j, dir.Length())
			}
			if dir.Z >= 0 {
				t.Fatalf("Pixel (%d,%d): expected ray looking down -Z, got %v", i, j, dir)
			}
		}
	}
}

func TestCamera_AspectAppliedHorizontallyOnly(t *testing.T) {
	// Only the horizontal offset of a 2:1 image is scaled by the aspect ratio
	camera := NewCamera(CameraConfig{Width: 200, Height: 100, FOV: math.Pi / 2})

	dir := camera.RayDirection(0, 0)
	ratio := math.Abs(dir.X/dir.Z) / math.Abs(dir.Y/dir.Z)
	expected := (199.0 / 200.0) / (99.0 / 100.0) * 2
	if math.Abs(ratio-expected) > 1e-9 {
		t.Errorf("Expected horizontal/vertical ratio %f, got %f", expected, ratio)
	}
}

func TestCamera_GetRay_Origin(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig())
	ray := camera.GetRay(10, 20)

	if ray.Origin != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected ray origin at world origin, got %v", ray.Origin)
	}
	if ray.Direction != camera.RayDirection(10, 20) {
		t.Errorf("Expected ray direction to match RayDirection")
	}
}
