package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewTutorialScene creates four spheres above a checkerboard floor under a sky background
func NewTutorialScene(cameraOverrides ...CameraConfig) (*Scene, CameraConfig) {
	cameraConfig := DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := &Scene{
		BackgroundColor: core.NewColor(0.2, 0.7, 0.8),
		RecursionDepth:  4,
	}

	s.Add(
		NewPrimitive(geometry.NewSphere(core.NewVec3(-3, 0, -16), 2), material.Ivory()),
		NewPrimitive(geometry.NewSphere(core.NewVec3(-1, -1.5, -12), 2), material.Glass()),
		NewPrimitive(geometry.NewSphere(core.NewVec3(1.5, -0.5, -18), 3), material.RedRubber()),
		NewPrimitive(geometry.NewSphere(core.NewVec3(7, 5, -18), 4), material.Mirror()),
	)

	// 20x20 floor below the spheres
	floor := geometry.NewPlane(core.NewVec3(-10, -4, -30), core.NewVec3(0, 1, 0))
	s.Add(NewCheckerBoard(
		floor,
		20,
		material.Default().WithDiffuse(core.White().Multiply(0.3)),
		core.NewColor(1.0, 0.7, 0.3).Multiply(0.3),
		2,
	))

	s.AddLight(
		NewLight(core.NewVec3(-20, 20, 20), 1.5),
		NewLight(core.NewVec3(30, 50, -25), 1.8),
		NewLight(core.NewVec3(30, 20, 30), 1.7),
	)

	return s, cameraConfig
}
