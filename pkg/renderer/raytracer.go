package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-sphere-caster/pkg/core"
	"github.com/df07/go-sphere-caster/pkg/material"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}

// Scene interface to avoid circular imports
type Scene interface {
	Intersect(ray core.Ray) (*material.HitRecord, bool)
	GetBackgroundColor() core.Vec3
}

// Raytracer casts one ray per pixel and resolves flat diffuse colors
type Raytracer struct {
	scene  Scene
	camera *Camera
	logger core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(scene Scene, config CameraConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Raytracer{
		scene:  scene,
		camera: NewCamera(config),
		logger: logger,
	}
}

// GetCamera returns the camera used for primary rays
func (rt *Raytracer) GetCamera() *Camera {
	return rt.camera
}

// CastRay returns the diffuse color of the nearest hit, or the background color
func (rt *Raytracer) CastRay(ray core.Ray) core.Vec3 {
	color, _ := rt.castRay(ray)
	return color
}

func (rt *Raytracer) castRay(ray core.Ray) (core.Vec3, bool) {
	hit, isHit := rt.scene.Intersect(ray)
	if !isHit {
		return rt.scene.GetBackgroundColor(), false
	}
	return hit.Material.DiffuseColor, true
}

// Render fills a framebuffer in row-major order, top row first
func (rt *Raytracer) Render() (*Framebuffer, RenderStats) {
	config := rt.camera.GetConfig()
	fb := NewFramebuffer(config.Width, config.Height)
	stats := RenderStats{TotalPixels: fb.Len()}

	rt.logger.Printf("Rendering %dx%d...\n", config.Width, config.Height)
	startTime := time.Now()

	for j := 0; j < config.Height; j++ {
		for i := 0; i < config.Width; i++ {
			color, isHit := rt.castRay(rt.camera.GetRay(i, j))
			if isHit {
				stats.HitPixels++
			}
			fb.Set(i, j, color)
		}
	}

	stats.BackgroundPixels = stats.TotalPixels - stats.HitPixels
	stats.Duration = time.Since(startTime)
	rt.logger.Printf("Render completed in %v (%d of %d pixels hit geometry)\n",
		stats.Duration, stats.HitPixels, stats.TotalPixels)

	return fb, stats
}
