package renderer

import (
	"math"

	"github.com/df07/go-sphere-caster/pkg/core"
)

// CameraConfig contains the image size and field of view
type CameraConfig struct {
	Width  int     // Image width in pixels
	Height int     // Image height in pixels
	FOV    float64 // Vertical field of view in radians
}

// DefaultCameraConfig returns 1024x768 with a 90 degree field of view
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:  1024,
		Height: 768,
		FOV:    math.Pi / 2,
	}
}

// Camera is a pinhole camera fixed at the origin, looking down -Z with +Y up
type Camera struct {
	config      CameraConfig
	origin      core.Vec3
	aspectRatio float64
	scale       float64 // tan(fov/2)
}

// NewCamera creates a camera for the given configuration
func NewCamera(config CameraConfig) *Camera {
	return &Camera{
		config:      config,
		origin:      core.NewVec3(0, 0, 0),
		aspectRatio: float64(config.Width) / float64(config.Height),
		scale:       math.Tan(config.FOV / 2),
	}
}

// RayDirection returns the unit direction through the center of pixel (i, j).
// Row j=0 is the top of the image, so y is negated to keep +Y pointing up in the output.
func (c *Camera) RayDirection(i, j int) core.Vec3 {
	x := (2*(float64(i)+0.5)/float64(c.config.Width) - 1) * c.scale * c.aspectRatio
	y := -(2*(float64(j)+0.5)/float64(c.config.Height) - 1) * c.scale
	return core.NewVec3(x, y, -1).Normalize()
}

// GetRay generates the primary ray for pixel (i, j)
func (c *Camera) GetRay(i, j int) core.Ray {
	return core.NewRay(c.origin, c.RayDirection(i, j))
}

// GetConfig returns the camera configuration
func (c *Camera) GetConfig() CameraConfig {
	return c.config
}
