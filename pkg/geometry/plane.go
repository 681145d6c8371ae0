package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Origin core.Vec3 // A point on the plane
	Normal core.Vec3 // Normal vector (should be normalized)
}

// NewPlane creates a new plane. The normal is used as given.
func NewPlane(origin, normal core.Vec3) *Plane {
	return &Plane{
		Origin: origin,
		Normal: normal,
	}
}

// Intersect tests if a ray intersects with the plane
func (p *Plane) Intersect(ray core.Ray) (float64, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray parallel to the plane
	if math.Abs(denominator) < core.Epsilon {
		return 0, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Origin.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < core.Epsilon {
		return 0, false
	}

	return t, true
}

// NormalAt returns the plane normal; the point is ignored
func (p *Plane) NormalAt(point core.Vec3) core.Vec3 {
	return p.Normal
}
