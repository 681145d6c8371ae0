package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Camera is a pinhole at the origin looking down -Z with +Y up
type Camera struct {
	width, height int
	depth         float64 // Distance from the pinhole to the image plane, in pixels
}

// NewCamera creates a camera for an image of the given size and vertical
// field of view in radians
func NewCamera(width, height int, fieldOfView float64) *Camera {
	return &Camera{
		width:  width,
		height: height,
		depth:  -float64(height) / (2 * math.Tan(fieldOfView/2)),
	}
}

// PrimaryRay returns the normalized ray through the center of pixel (x, y).
// Row 0 is the top of the image.
func (c *Camera) PrimaryRay(x, y int) core.Ray {
	dirX := (float64(x) + 0.5) - float64(c.width)/2
	dirY := -(float64(y) + 0.5) + float64(c.height)/2

	direction := core.NewVec3(dirX, dirY, c.depth).Normalize()
	return core.NewRay(core.Vec3{}, direction)
}
