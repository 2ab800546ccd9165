package scene

import (
	"github.com/df07/go-sphere-caster/pkg/core"
	"github.com/df07/go-sphere-caster/pkg/material"
)

// NewDefaultScene creates the four grey spheres scene
func NewDefaultScene() *Scene {
	s := NewScene()

	darkGrey := material.NewMaterial(core.NewVec3(0.2, 0.2, 0.2))
	midGrey := material.NewMaterial(core.NewVec3(0.3, 0.3, 0.3))
	lightGrey := material.NewMaterial(core.NewVec3(0.4, 0.4, 0.4))

	s.AddSphere(core.NewVec3(-3, 0, -16), 2, darkGrey)
	s.AddSphere(core.NewVec3(-1, 1.5, -12), 2, darkGrey)
	s.AddSphere(core.NewVec3(1.5, -0.5, -18), 3, midGrey)
	s.AddSphere(core.NewVec3(7, 5, -18), 4, lightGrey)

	return s
}

// NewSingleSphereScene creates a scene with one red sphere straight ahead of the camera
func NewSingleSphereScene() *Scene {
	s := NewScene()
	s.AddSphere(core.NewVec3(0, 0, -10), 4, material.NewMaterial(core.NewVec3(0.8, 0.1, 0.1)))
	return s
}

// NewEmptyScene creates a scene with no objects; every pixel is background
func NewEmptyScene() *Scene {
	return NewScene()
}
