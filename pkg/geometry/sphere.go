package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// Intersect tests if a ray intersects with the sphere
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	// Project the center onto the ray to find the closest approach
	toCenter := s.Center.Subtract(ray.Origin)
	projection := toCenter.Dot(ray.Direction)
	distanceSq := toCenter.Dot(toCenter) - projection*projection

	radiusSq := s.Radius * s.Radius
	if distanceSq > radiusSq {
		return 0, false
	}

	halfChord := math.Sqrt(radiusSq - distanceSq)
	t0 := projection - halfChord
	t1 := projection + halfChord

	// Both roots behind the origin
	if t1 < core.Epsilon {
		return 0, false
	}
	// Origin inside the sphere: use the exit point
	if t0 < core.Epsilon {
		return t1, true
	}
	return t0, true
}

// NormalAt returns the outward normal (from center to point)
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}
