package material

import (
	"fmt"

	"github.com/df07/go-sphere-caster/pkg/core"
)

// Material describes how a surface looks. Only a flat diffuse color is supported;
// the color is used directly as the pixel color without any lighting.
type Material struct {
	DiffuseColor core.Vec3 // Components conventionally in [0,1], not clamped here
}

// NewMaterial creates a material with the given diffuse color
func NewMaterial(diffuseColor core.Vec3) Material {
	return Material{DiffuseColor: diffuseColor}
}

// Hex returns the diffuse color as a #rrggbb string, clamping each channel
func (m Material) Hex() string {
	c := m.DiffuseColor.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Outward surface normal (unit length)
	T        float64   // Distance along the ray
	Material Material  // Copy of the material of the object that was hit
}
