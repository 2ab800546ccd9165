package geometry

import (
	"math"

	"github.com/df07/go-sphere-caster/pkg/core"
	"github.com/df07/go-sphere-caster/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// RayIntersect returns the distance along the ray to the nearest intersection in
// front of the ray origin. The ray direction must be a unit vector.
// When the origin is inside the sphere the far intersection is returned.
func (s *Sphere) RayIntersect(ray core.Ray) (float64, bool) {
	// Vector from ray origin to sphere center
	l := s.Center.Subtract(ray.Origin)

	// Projection of the center onto the ray, and squared distance from the center to the ray line
	tca := l.Dot(ray.Direction)
	d2 := l.Dot(l) - tca*tca

	radius2 := s.Radius * s.Radius
	if d2 > radius2 {
		return 0, false
	}

	// Half chord length
	thc := math.Sqrt(radius2 - d2)

	t0 := tca - thc
	t1 := tca + thc
	if t0 < 0 {
		t0 = t1
	}
	if t0 < 0 {
		// Sphere is entirely behind the origin
		return 0, false
	}

	return t0, true
}

// Normal returns the outward unit normal at a point on the sphere surface
func (s *Sphere) Normal(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}
