package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering.
// A scene must not be modified while a render is in progress.
type Scene struct {
	BackgroundColor core.Color
	Objects         []Hittable // Objects in the scene
	Lights          []Light    // Lights in the scene
	RecursionDepth  int        // Maximum bounce count, inclusive
}

// CameraConfig describes the pinhole camera a scene was authored for
type CameraConfig struct {
	Width       int     // Image width in pixels
	Height      int     // Image height in pixels
	FieldOfView float64 // Vertical field of view in degrees
}

// DefaultCameraConfig returns the camera used by the built-in scenes
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:       1024,
		Height:      768,
		FieldOfView: 60.0,
	}
}

// MergeCameraConfig applies non-zero override fields on top of base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.FieldOfView != 0 {
		result.FieldOfView = override.FieldOfView
	}
	return result
}

// Validate checks that the camera describes a non-empty image and a field of
// view strictly between 0 and 180 degrees. A downsampled image needs at least
// 2x2 pixels so that its half-size version is not empty.
func (c CameraConfig) Validate(downsample bool) error {
	minSize := 1
	if downsample {
		minSize = 2
	}
	if c.Width < minSize || c.Height < minSize {
		return fmt.Errorf("%w: image size %dx%d is below %dx%d", ErrInvalidScene, c.Width, c.Height, minSize, minSize)
	}
	if c.FieldOfView <= 0 || c.FieldOfView >= 180 {
		return fmt.Errorf("%w: field of view %g is outside (0, 180) degrees", ErrInvalidScene, c.FieldOfView)
	}
	return nil
}

// Add appends objects to the scene
func (s *Scene) Add(objects ...Hittable) {
	s.Objects = append(s.Objects, objects...)
}

// AddLight appends lights to the scene
func (s *Scene) AddLight(lights ...Light) {
	s.Lights = append(s.Lights, lights...)
}

// Intersect finds the nearest object struck by the ray
func (s *Scene) Intersect(ray core.Ray) (IntersectResult, bool) {
	object, distance, isHit := s.nearest(ray)
	if !isHit {
		return IntersectResult{}, false
	}
	return object.IntersectionResult(ray.At(distance)), true
}

// IntersectDistance returns the distance to the nearest object struck by the ray
func (s *Scene) IntersectDistance(ray core.Ray) (float64, bool) {
	_, distance, isHit := s.nearest(ray)
	return distance, isHit
}

// nearest is a brute-force scan; the first object wins ties
func (s *Scene) nearest(ray core.Ray) (Hittable, float64, bool) {
	var closest Hittable
	closestSoFar := math.MaxFloat64

	for _, object := range s.Objects {
		if distance, isHit := object.Intersect(ray); isHit && distance < closestSoFar {
			closestSoFar = distance
			closest = object
		}
	}

	if closest == nil {
		return nil, 0, false
	}
	return closest, closestSoFar, true
}

// ErrInvalidScene is wrapped by every error returned from Validate
var ErrInvalidScene = errors.New("invalid scene")

// Validate checks the preconditions the renderer assumes but does not enforce
func (s *Scene) Validate() error {
	if s.RecursionDepth < 0 {
		return fmt.Errorf("%w: recursion depth %d is negative", ErrInvalidScene, s.RecursionDepth)
	}

	for i, object := range s.Objects {
		if err := validateHittable(object); err != nil {
			return fmt.Errorf("%w: object %d: %v", ErrInvalidScene, i, err)
		}
	}

	for i, light := range s.Lights {
		if light.Intensity <= 0 {
			return fmt.Errorf("%w: light %d has non-positive intensity %g", ErrInvalidScene, i, light.Intensity)
		}
	}

	return nil
}

func validateHittable(object Hittable) error {
	switch h := object.(type) {
	case *Primitive:
		if err := validateMaterial(h.Material); err != nil {
			return err
		}
		return validateShape(h.Shape)
	case *CheckerBoard:
		if h.Plane == nil {
			return errors.New("checkerboard has no plane")
		}
		if err := validateMaterial(h.BasicMaterial); err != nil {
			return err
		}
		if h.Width <= 0 {
			return fmt.Errorf("checkerboard width %g is not positive", h.Width)
		}
		if h.CheckerSize <= 0 {
			return fmt.Errorf("checker size %g is not positive", h.CheckerSize)
		}
		return validateShape(h.Plane)
	default:
		return fmt.Errorf("unsupported object type %T", object)
	}
}

func validateMaterial(m material.Material) error {
	if m.Transparency > 0 && m.RefractiveIndex <= 0 {
		return fmt.Errorf("transparent material has refractive index %g", m.RefractiveIndex)
	}
	return nil
}

func validateShape(shape geometry.Shape) error {
	switch s := shape.(type) {
	case *geometry.Sphere:
		if s == nil {
			return errors.New("nil sphere")
		}
		if s.Radius <= 0 {
			return fmt.Errorf("sphere radius %g is not positive", s.Radius)
		}
	case *geometry.Plane:
		if s == nil {
			return errors.New("nil plane")
		}
		if s.Normal.Length() < core.Epsilon {
			return fmt.Errorf("plane normal %v has zero length", s.Normal)
		}
	default:
		return fmt.Errorf("unsupported shape type %T", shape)
	}
	return nil
}
