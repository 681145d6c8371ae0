package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Wall and ball palette, as 8-bit colors
var (
	paleYellow        = core.NewColorRGB8(253, 255, 194)
	greenTea          = core.NewColorRGB8(201, 255, 194)
	freshAir          = core.NewColorRGB8(175, 228, 254)
	vodka             = core.NewColorRGB8(196, 181, 255)
	royalPurple       = core.NewColorRGB8(113, 78, 179)
	unitedNationsBlue = core.NewColorRGB8(82, 134, 218)
	mantis            = core.NewColorRGB8(109, 187, 91)
	minionYellow      = core.NewColorRGB8(235, 224, 81)
	royalOrange       = core.NewColorRGB8(249, 141, 82)
	paradisePink      = core.NewColorRGB8(225, 78, 101)
)

// NewBoxScene creates a closed room of six planes (one a mirror wall) holding
// a row of shiny, mirrored and glass spheres
func NewBoxScene(cameraOverrides ...CameraConfig) (*Scene, CameraConfig) {
	cameraConfig := DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	glass := material.Glass()
	glass.Transparency = 0.9
	mirror := material.Mirror()
	matt := material.BasicMatt()
	shiny := material.BasicShiny()

	backWall := material.Default().WithDiffuse(freshAir.Multiply(0.45))
	backWall.Reflectiveness = 0.1

	s := &Scene{
		BackgroundColor: core.Black(),
		RecursionDepth:  6,
	}

	// Room
	s.Add(
		NewPrimitive(geometry.NewPlane(core.NewVec3(0, 20, 0), core.NewVec3(0, -1, 0)), matt.WithDiffuse(paleYellow)),
		NewPrimitive(geometry.NewPlane(core.NewVec3(0, -10, 0), core.NewVec3(0, 1, 0)), shiny.WithDiffuse(vodka.Multiply(0.5))),
		NewPrimitive(geometry.NewPlane(core.NewVec3(15, 0, 0), core.NewVec3(-1, 0, 0)), mirror),
		NewPrimitive(geometry.NewPlane(core.NewVec3(-15, 0, 0), core.NewVec3(1, 0, 0)), matt.WithDiffuse(greenTea.Multiply(0.9))),
		NewPrimitive(geometry.NewPlane(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), matt.WithDiffuse(freshAir)),
		NewPrimitive(geometry.NewPlane(core.NewVec3(0, 0, -45), core.NewVec3(0, 0, 1)), backWall),
	)

	// Balls on the floor
	s.Add(
		NewPrimitive(geometry.NewSphere(core.NewVec3(9, -6.5, -30), 3.5), mirror),
		NewPrimitive(geometry.NewSphere(core.NewVec3(0.5, -8.5, -36), 1.5), glass),
		NewPrimitive(geometry.NewSphere(core.NewVec3(2, -8, -24), 2), shiny.WithDiffuse(royalPurple.Multiply(0.7))),
		NewPrimitive(geometry.NewSphere(core.NewVec3(-3, -8, -28), 2), shiny.WithDiffuse(royalOrange.Multiply(0.7))),
		NewPrimitive(geometry.NewSphere(core.NewVec3(-7, -7.5, -23), 2.5), shiny.WithDiffuse(minionYellow.Multiply(0.7))),
		NewPrimitive(geometry.NewSphere(core.NewVec3(-9, -6, -33), 4), shiny.WithDiffuse(unitedNationsBlue.Multiply(0.7))),
		NewPrimitive(geometry.NewSphere(core.NewVec3(12, -8.8, -26), 1.2), shiny.WithDiffuse(mantis.Multiply(0.7))),
		NewPrimitive(geometry.NewSphere(core.NewVec3(-0.5, -9, -21.5), 1),
			matt.WithDiffuse(paradisePink.Multiply(0.6)).WithAmbient(paradisePink.Multiply(0.3))),
	)

	s.AddLight(
		NewLight(core.NewVec3(8, 8, 0), 0.7),
		NewLight(core.NewVec3(-8, 8, 0), 0.7),
		NewLight(core.NewVec3(0, 5, -35), 0.5),
	)

	return s, cameraConfig
}
