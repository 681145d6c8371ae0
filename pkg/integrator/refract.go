package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Refract bends direction through a surface using Snell's law.
//
// normal is the outward normal of a medium with index innerIndex surrounded
// by outerIndex. A ray arriving from inside (direction·normal > 0) is handled
// by flipping the normal and swapping the indices. Returns false on total
// internal reflection. The result is not normalized.
func Refract(direction, normal core.Vec3, innerIndex, outerIndex float64) (core.Vec3, bool) {
	cosIncident := -direction.Dot(normal)
	if cosIncident < 0 {
		return Refract(direction, normal.Negate(), outerIndex, innerIndex)
	}

	eta := outerIndex / innerIndex
	k := 1 - eta*eta*(1-cosIncident*cosIncident)
	if k < 0 {
		return core.Vec3{}, false
	}

	return direction.Multiply(eta).Add(normal.Multiply(eta*cosIncident - math.Sqrt(k))), true
}
