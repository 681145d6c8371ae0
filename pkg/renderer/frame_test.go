package renderer

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// directionIntegrator encodes the ray direction as a color
type directionIntegrator struct{}

func (directionIntegrator) RayColor(ray core.Ray, s *scene.Scene, depth int) core.Color {
	d := ray.Direction
	return core.NewColor(d.X, d.Y, d.Z)
}

// recordingLogger collects log lines for inspection
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.lines = append(l.lines, format)
}

func TestNewFrame(t *testing.T) {
	f := NewFrame(8, 6, 60)

	if math.Abs(f.FieldOfView-math.Pi/3) > 1e-12 {
		t.Errorf("Expected fov pi/3 radians, got %f", f.FieldOfView)
	}
	if len(f.Pixels()) != 48 {
		t.Errorf("Expected 48 pixels, got %d", len(f.Pixels()))
	}
	for i, c := range f.Pixels() {
		if c != core.Black() {
			t.Fatalf("Pixel %d not initialized to black: %v", i, c)
		}
	}
}

func TestFrame_SetAt_RowMajor(t *testing.T) {
	f := NewFrame(3, 2, 60)
	c := core.NewColor(0.1, 0.2, 0.3)
	f.Set(2, 1, c)

	if f.At(2, 1) != c {
		t.Errorf("Expected %v at (2,1), got %v", c, f.At(2, 1))
	}
	if f.Pixels()[1*3+2] != c {
		t.Errorf("Expected row-major storage at index 5")
	}
}

func TestFrame_Render_EveryPixel(t *testing.T) {
	f := NewFrame(37, 23, 45)
	config := RenderConfig{TileSize: 8, NumWorkers: 4}

	stats, err := f.Render(context.Background(), &scene.Scene{}, directionIntegrator{}, config)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if stats.TotalPixels != 37*23 || stats.TotalTiles != 15 || stats.NumWorkers != 4 {
		t.Errorf("Unexpected stats %+v", stats)
	}

	camera := f.Camera()
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			d := camera.PrimaryRay(x, y).Direction
			if f.At(x, y) != core.NewColor(d.X, d.Y, d.Z) {
				t.Fatalf("Pixel (%d,%d) holds %v, expected direction %v", x, y, f.At(x, y), d)
			}
		}
	}
}

func TestFrame_Render_Deterministic(t *testing.T) {
	s, _, err := scene.Lookup("tutorial")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	serial := NewFrame(32, 24, 60)
	if _, err := serial.Render(context.Background(), s, integrator.NewWhittedIntegrator(), RenderConfig{TileSize: 0, NumWorkers: 1}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	parallel := NewFrame(32, 24, 60)
	if _, err := parallel.Render(context.Background(), s, integrator.NewWhittedIntegrator(), RenderConfig{TileSize: 5, NumWorkers: 8}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	serialPixels := serial.Pixels()
	for i, c := range parallel.Pixels() {
		if c != serialPixels[i] {
			t.Fatalf("Pixel %d differs: serial %v, parallel %v", i, serialPixels[i], c)
		}
	}
}

func TestFrame_Render_SingleSphere(t *testing.T) {
	s := &scene.Scene{BackgroundColor: core.NewColor(0, 0, 1), RecursionDepth: 0}
	s.Add(scene.NewPrimitive(geometry.NewSphere(core.NewVec3(0, 0, -5), 1), material.Default().WithDiffuse(core.White())))
	s.AddLight(scene.NewLight(core.NewVec3(0, 0, 0), 1))

	f := NewFrame(9, 9, 60)
	if _, err := f.Render(context.Background(), s, integrator.NewWhittedIntegrator(), DefaultRenderConfig()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Center pixel looks straight at the lit pole of the sphere
	center := f.At(4, 4)
	if math.Abs(center.R-1) > 1e-9 || math.Abs(center.B-1) > 1e-9 {
		t.Errorf("Expected white center, got %v", center)
	}
	if corner := f.At(0, 0); corner != s.BackgroundColor {
		t.Errorf("Expected background in corner, got %v", corner)
	}
}

func TestFrame_Render_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	logger := &recordingLogger{}
	f := NewFrame(16, 16, 60)
	_, err := f.Render(ctx, &scene.Scene{}, directionIntegrator{}, RenderConfig{TileSize: 4, NumWorkers: 2, Logger: logger})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}

	if len(logger.lines) != 2 || !strings.HasPrefix(logger.lines[1], "Render aborted") {
		t.Errorf("Expected start and abort log lines, got %v", logger.lines)
	}
}

func TestRenderStats_String(t *testing.T) {
	stats := RenderStats{TotalPixels: 100, TotalTiles: 4, NumWorkers: 2}
	if stats.PixelsPerSecond() != 0 {
		t.Errorf("Expected zero throughput without elapsed time")
	}
	if !strings.Contains(stats.String(), "100 pixels in 4 tiles on 2 workers") {
		t.Errorf("Unexpected summary %q", stats.String())
	}
}
