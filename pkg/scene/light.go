package scene

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Light is a point light. Its contribution does not fall off with distance.
type Light struct {
	Position  core.Vec3
	Intensity float64
}

// NewLight creates a new point light
func NewLight(position core.Vec3, intensity float64) Light {
	return Light{Position: position, Intensity: intensity}
}
