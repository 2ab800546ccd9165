package material

import (
	"testing"

	"github.com/df07/go-sphere-caster/pkg/core"
)

func TestMaterial_Hex(t *testing.T) {
	tests := []struct {
		name     string
		color    core.Vec3
		expected string
	}{
		{"grey", core.NewVec3(0.2, 0.2, 0.2), "#333333"},
		{"white", core.NewVec3(1, 1, 1), "#ffffff"},
		{"out of range", core.NewVec3(1.5, -0.3, 0.5), "#ff007f"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mat := NewMaterial(tt.color)
			if hex := mat.Hex(); hex != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, hex)
			}
		})
	}
}

func TestMaterial_CopiedByValue(t *testing.T) {
	original := NewMaterial(core.NewVec3(0.1, 0.2, 0.3))
	hit := HitRecord{Material: original}

	hit.Material.DiffuseColor = core.NewVec3(1, 1, 1)

	if original.DiffuseColor != core.NewVec3(0.1, 0.2, 0.3) {
		t.Errorf("Modifying a hit record's material changed the original: %v", original.DiffuseColor)
	}
}
