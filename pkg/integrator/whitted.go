package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// WhittedIntegrator combines Phong direct lighting with hard shadows and
// recursively traced mirror reflection and refraction
type WhittedIntegrator struct {
	counter *RayCounter
}

// NewWhittedIntegrator creates a new Whitted integrator
func NewWhittedIntegrator() *WhittedIntegrator {
	return &WhittedIntegrator{}
}

// WithCounter attaches a ray counter; pass nil to disable counting
func (w *WhittedIntegrator) WithCounter(counter *RayCounter) *WhittedIntegrator {
	w.counter = counter
	return w
}

// RayColor returns the background once depth exceeds the scene recursion
// depth or when nothing is hit; otherwise the sum of the local, reflected
// and refracted terms
func (w *WhittedIntegrator) RayColor(ray core.Ray, s *scene.Scene, depth int) core.Color {
	if depth > s.RecursionDepth {
		return s.BackgroundColor
	}
	if depth == 0 {
		w.counter.addPrimary()
	}

	hit, isHit := s.Intersect(ray)
	if !isHit {
		return s.BackgroundColor
	}

	phong := w.phongColor(ray, s, hit)
	reflected := w.reflectedColor(ray, s, hit, depth)
	refracted := w.refractedColor(ray, s, hit, depth)
	return phong.Add(reflected).Add(refracted)
}

// phongColor evaluates ambient, diffuse and specular terms for every light
// not blocked by another object
func (w *WhittedIntegrator) phongColor(ray core.Ray, s *scene.Scene, hit scene.IntersectResult) core.Color {
	diffuseLight := 0.0
	specularLight := 0.0

	for _, light := range s.Lights {
		toLight := light.Position.Subtract(hit.Point)
		lightDistance := toLight.Length()
		lightDirection := toLight.Normalize()

		w.counter.addShadow()
		if occluderDistance, blocked := s.IntersectDistance(core.NewRay(hit.Point, lightDirection)); blocked && occluderDistance < lightDistance {
			continue
		}

		diffuseLight += light.Intensity * math.Max(0, lightDirection.Dot(hit.Normal))

		highlight := math.Max(0, core.Reflect(lightDirection, hit.Normal).Dot(ray.Direction))
		specularLight += math.Pow(highlight, hit.Material.Shininess) * light.Intensity
	}

	m := hit.Material
	return m.Ambient.
		Add(m.Diffuse.Multiply(diffuseLight)).
		Add(m.Specular.Multiply(specularLight))
}

// reflectedColor traces the mirror direction, weighted by reflectiveness
func (w *WhittedIntegrator) reflectedColor(ray core.Ray, s *scene.Scene, hit scene.IntersectResult, depth int) core.Color {
	if hit.Material.Reflectiveness == 0 {
		return core.Black()
	}

	w.counter.addReflected()
	direction := core.Reflect(ray.Direction, hit.Normal).Normalize()
	reflected := w.RayColor(core.NewRay(hit.Point, direction), s, depth+1)
	return reflected.Multiply(hit.Material.Reflectiveness)
}

// refractedColor traces the transmitted direction, weighted by transparency.
// Total internal reflection contributes nothing here.
func (w *WhittedIntegrator) refractedColor(ray core.Ray, s *scene.Scene, hit scene.IntersectResult, depth int) core.Color {
	if hit.Material.Transparency == 0 {
		return core.Black()
	}

	direction, ok := Refract(ray.Direction, hit.Normal, hit.Material.RefractiveIndex, 1.0)
	if !ok {
		return core.Black()
	}

	w.counter.addRefracted()
	refracted := w.RayColor(core.NewRay(hit.Point, direction.Normalize()), s, depth+1)
	return refracted.Multiply(hit.Material.Transparency)
}
