package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPlane_Intersect_BasicIntersection(t *testing.T) {
	// Create a horizontal plane at y=0
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	// Ray shooting down from above
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	dist, isHit := plane.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(dist-1.0) > 1e-9 {
		t.Errorf("Expected t=1, got t=%f", dist)
	}

	point := ray.At(dist)
	if point.Length() > 1e-9 {
		t.Errorf("Expected hit point at origin, got %v", point)
	}
}

func TestPlane_Intersect_Misses(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
	}{
		{"parallel ray", core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0)},
		{"nearly parallel ray", core.NewVec3(0, 1, 0), core.NewVec3(1, -1e-5, 0).Normalize()},
		{"plane behind ray", core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0)},
		{"origin on plane", core.NewVec3(3, 0, 2), core.NewVec3(0, -1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if dist, isHit := plane.Intersect(core.NewRay(tt.origin, tt.direction)); isHit {
				t.Errorf("Expected miss, but got hit at t=%f", dist)
			}
		})
	}
}

func TestPlane_Intersect_FromBelow(t *testing.T) {
	// Planes are two-sided for intersection purposes
	plane := NewPlane(core.NewVec3(0, 2, 0), core.NewVec3(0, 1, 0))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	dist, isHit := plane.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit from below, but got miss")
	}
	if math.Abs(dist-2.0) > 1e-9 {
		t.Errorf("Expected t=2, got t=%f", dist)
	}
}

func TestPlane_NormalAt_Constant(t *testing.T) {
	normal := core.NewVec3(0, 0, -1)
	plane := NewPlane(core.NewVec3(0, 0, 5), normal)

	for _, p := range []core.Vec3{core.NewVec3(0, 0, 5), core.NewVec3(100, -3, 5)} {
		n := plane.NormalAt(p)
		if n != normal {
			t.Errorf("Expected %v, got %v", normal, n)
		}
		if math.Abs(n.Length()-1) > 1e-12 {
			t.Errorf("Expected unit normal, got length %f", n.Length())
		}
	}
}
