package renderer

import (
	"context"
	"image"
	"math"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RenderConfig contains configuration for parallel rendering
type RenderConfig struct {
	TileSize   int         // Size of each square tile in pixels
	NumWorkers int         // Number of parallel workers (0 = use CPU count)
	Logger     core.Logger // Progress output (nil = silent)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   32,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Frame is a row-major buffer of linear colors with the camera that fills it
type Frame struct {
	Width       int
	Height      int
	FieldOfView float64 // Vertical field of view in radians
	buffer      []core.Color
}

// NewFrame creates a black frame. The field of view is given in degrees.
func NewFrame(width, height int, fieldOfViewDegrees float64) *Frame {
	return &Frame{
		Width:       width,
		Height:      height,
		FieldOfView: fieldOfViewDegrees * math.Pi / 180,
		buffer:      make([]core.Color, width*height),
	}
}

// At returns the color stored for pixel (x, y)
func (f *Frame) At(x, y int) core.Color {
	return f.buffer[y*f.Width+x]
}

// Set stores the color for pixel (x, y)
func (f *Frame) Set(x, y int, c core.Color) {
	f.buffer[y*f.Width+x] = c
}

// Camera returns the pinhole camera matching the frame size and field of view
func (f *Frame) Camera() *Camera {
	return NewCamera(f.Width, f.Height, f.FieldOfView)
}

// Render casts one primary ray per pixel and stores the result.
//
// The image is split into tiles that are rendered concurrently; each tile
// writes only its own pixels, and the scene is only read. A cancelled
// context stops the render and its error is returned, leaving the buffer
// partially written.
func (f *Frame) Render(ctx context.Context, s *scene.Scene, integ integrator.Integrator, config RenderConfig) (RenderStats, error) {
	logger := config.Logger
	if logger == nil {
		logger = discardLogger{}
	}

	numWorkers := config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	tiles := NewTileGrid(f.Width, f.Height, config.TileSize)
	camera := f.Camera()

	logger.Printf("Rendering %dx%d in %d tiles (using %d workers)...\n", f.Width, f.Height, len(tiles), numWorkers)
	startTime := time.Now()

	g, tileCtx := errgroup.WithContext(ctx)
	g.SetLimit(numWorkers)
	for _, tile := range tiles {
		if tileCtx.Err() != nil {
			break
		}
		tile := tile
		g.Go(func() error {
			return f.renderTile(tileCtx, tile.Bounds, camera, s, integ)
		})
	}

	stats := RenderStats{
		TotalPixels: f.Width * f.Height,
		TotalTiles:  len(tiles),
		NumWorkers:  numWorkers,
	}

	err := g.Wait()
	if err == nil {
		// Tiles skipped by the scheduling loop report nothing
		err = ctx.Err()
	}
	stats.Elapsed = time.Since(startTime)
	if err != nil {
		logger.Printf("Render aborted after %v: %v\n", stats.Elapsed, err)
		return stats, err
	}

	logger.Printf("Render completed: %s\n", stats)
	return stats, nil
}

// renderTile fills the pixels within bounds, checking for cancellation per row
func (f *Frame) renderTile(ctx context.Context, bounds image.Rectangle, camera *Camera, s *scene.Scene, integ integrator.Integrator) error {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			f.Set(x, y, integ.RayColor(camera.PrimaryRay(x, y), s, 0))
		}
	}
	return nil
}
