package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// IntersectResult describes the surface at a ray hit
type IntersectResult struct {
	Point    core.Vec3
	Normal   core.Vec3
	Material material.Material
}

// Hittable is a renderable object: a shape plus the rule that gives it a
// material. Implementations are *Primitive and *CheckerBoard.
type Hittable interface {
	// Intersect returns the distance along the ray to the nearest valid hit
	Intersect(ray core.Ray) (float64, bool)
	// IntersectionResult evaluates normal and material at a hit point
	IntersectionResult(point core.Vec3) IntersectResult
}

// Primitive is a shape with a single uniform material
type Primitive struct {
	Shape    geometry.Shape
	Material material.Material
}

// NewPrimitive creates a new primitive
func NewPrimitive(shape geometry.Shape, mat material.Material) *Primitive {
	return &Primitive{Shape: shape, Material: mat}
}

// Intersect delegates to the underlying shape
func (p *Primitive) Intersect(ray core.Ray) (float64, bool) {
	return p.Shape.Intersect(ray)
}

// IntersectionResult returns the shape normal and the stored material
func (p *Primitive) IntersectionResult(point core.Vec3) IntersectResult {
	return IntersectResult{
		Point:    point,
		Normal:   p.Shape.NormalAt(point),
		Material: p.Material,
	}
}

// CheckerBoard is a square tile of a plane painted with a checker pattern.
//
// Only the region [origin.x, origin.x+Width] x [origin.z, origin.z+Width] of
// the plane can be hit. Cells whose index sum is even use CheckerColor as
// their diffuse color; the rest use BasicMaterial unchanged.
type CheckerBoard struct {
	Plane         *geometry.Plane
	Width         float64
	BasicMaterial material.Material
	CheckerColor  core.Color
	CheckerSize   float64
}

// NewCheckerBoard creates a new checkerboard tile
func NewCheckerBoard(plane *geometry.Plane, width float64, basic material.Material, checkerColor core.Color, checkerSize float64) *CheckerBoard {
	return &CheckerBoard{
		Plane:         plane,
		Width:         width,
		BasicMaterial: basic,
		CheckerColor:  checkerColor,
		CheckerSize:   checkerSize,
	}
}

// Intersect hits the plane and discards points outside the tile
func (c *CheckerBoard) Intersect(ray core.Ray) (float64, bool) {
	t, isHit := c.Plane.Intersect(ray)
	if !isHit {
		return 0, false
	}

	point := ray.At(t)
	origin := c.Plane.Origin
	if point.X < origin.X || point.Z < origin.Z ||
		point.X-origin.X > c.Width || point.Z-origin.Z > c.Width {
		return 0, false
	}
	return t, true
}

// IntersectionResult picks the cell material by checker parity
func (c *CheckerBoard) IntersectionResult(point core.Vec3) IntersectResult {
	mat := c.BasicMaterial
	if c.isCheckerCell(point) {
		mat.Diffuse = c.CheckerColor
	}
	return IntersectResult{
		Point:    point,
		Normal:   c.Plane.Normal,
		Material: mat,
	}
}

// isCheckerCell reports whether the cell containing point takes the checker color.
// Go's % truncates toward zero, so negative odd sums give -1 and stay odd.
func (c *CheckerBoard) isCheckerCell(point core.Vec3) bool {
	cellX := int(math.Floor(point.X / c.CheckerSize))
	cellZ := int(math.Floor(point.Z / c.CheckerSize))
	return (cellX+cellZ)%2 == 0
}
