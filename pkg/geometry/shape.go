package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Shape is a geometric primitive that can be struck by a ray.
// Implementations are *Sphere and *Plane.
type Shape interface {
	// Intersect returns the smallest distance t >= core.Epsilon at which the
	// ray strikes the shape. The ray direction must be normalized.
	Intersect(ray core.Ray) (float64, bool)
	// NormalAt returns the outward unit normal at a point on the shape.
	NormalAt(point core.Vec3) core.Vec3
}
