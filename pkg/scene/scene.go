package scene

import (
	"math"

	"github.com/df07/go-sphere-caster/pkg/core"
	"github.com/df07/go-sphere-caster/pkg/geometry"
	"github.com/df07/go-sphere-caster/pkg/material"
)

// DefaultMaxDistance is the far cutoff: hits at or beyond it count as background
const DefaultMaxDistance = 1000.0

// DefaultBackground is the sky color used when a ray hits nothing
var DefaultBackground = core.NewVec3(0.2, 0.7, 0.8)

// Scene contains all the elements needed for rendering
type Scene struct {
	Spheres     []*geometry.Sphere // Objects in the scene, in insertion order
	Background  core.Vec3          // Color for rays that hit nothing
	MaxDistance float64            // Hits at or beyond this distance are ignored
}

// NewScene creates an empty scene with the default background and far cutoff
func NewScene(spheres ...*geometry.Sphere) *Scene {
	return &Scene{
		Spheres:     spheres,
		Background:  DefaultBackground,
		MaxDistance: DefaultMaxDistance,
	}
}

// AddSphere appends a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) *geometry.Sphere {
	sphere := geometry.NewSphere(center, radius, mat)
	s.Spheres = append(s.Spheres, sphere)
	return sphere
}

// GetBackgroundColor returns the color for rays that miss every sphere
func (s *Scene) GetBackgroundColor() core.Vec3 {
	return s.Background
}

// Intersect finds the nearest sphere hit by the ray. The ray direction must be a unit vector.
// Among equally distant hits the earliest sphere in the list wins.
func (s *Scene) Intersect(ray core.Ray) (*material.HitRecord, bool) {
	var closest *geometry.Sphere
	closestSoFar := math.Inf(1)

	for _, sphere := range s.Spheres {
		if dist, isHit := sphere.RayIntersect(ray); isHit && dist < closestSoFar {
			closestSoFar = dist
			closest = sphere
		}
	}

	if closest == nil || closestSoFar >= s.MaxDistance {
		return nil, false
	}

	point := ray.At(closestSoFar)
	return &material.HitRecord{
		Point:    point,
		Normal:   closest.Normal(point),
		T:        closestSoFar,
		Material: closest.Material,
	}, true
}

// GetPrimitiveCount returns the number of spheres in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Spheres)
}
