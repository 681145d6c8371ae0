package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Material holds the optical coefficients of a surface.
//
// Reflectiveness and Transparency are added on top of the local Phong term
// without renormalization, so a surface may return more light than it
// receives.
type Material struct {
	Ambient  core.Color // Constant term, unaffected by lights and shadows
	Diffuse  core.Color // Lambertian response
	Specular core.Color // Phong highlight color

	Shininess       float64 // Phong exponent (>= 0)
	Reflectiveness  float64 // Weight of the mirror-reflected ray in [0,1]
	Transparency    float64 // Weight of the refracted ray in [0,1]
	RefractiveIndex float64 // Index of refraction of the interior (> 0)
}

// Default returns a black, opaque, non-reflective material with refractive index 1
func Default() Material {
	return Material{RefractiveIndex: 1.0}
}

// WithDiffuse returns a copy of the material with its diffuse color replaced
func (m Material) WithDiffuse(diffuse core.Color) Material {
	m.Diffuse = diffuse
	return m
}

// WithAmbient returns a copy of the material with its ambient color replaced
func (m Material) WithAmbient(ambient core.Color) Material {
	m.Ambient = ambient
	return m
}
