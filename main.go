package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Config holds the command line options for a single render
type Config struct {
	SceneType  string
	Width      int
	Height     int
	FOV        float64
	NumWorkers int
	TileSize   int
	MaxDepth   int
	Downsample bool
	OutputRoot string
}

func main() {
	config := parseFlags()

	// Stop rendering cleanly on Ctrl-C
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, config); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags parses command line flags and returns the config
func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.SceneType, "scene", scene.DefaultSceneName, "Scene type: 'tutorial' or 'box'")
	flag.IntVar(&config.Width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&config.Height, "height", 0, "Image height in pixels (0 = scene default)")
	flag.Float64Var(&config.FOV, "fov", 0, "Vertical field of view in degrees (0 = scene default)")
	flag.IntVar(&config.NumWorkers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.IntVar(&config.TileSize, "tile", renderer.DefaultRenderConfig().TileSize, "Tile size in pixels")
	flag.IntVar(&config.MaxDepth, "max-depth", -1, "Recursion depth override (-1 = scene default)")
	flag.BoolVar(&config.Downsample, "downsample", false, "Also save a 2x2-averaged half-size image")
	flag.StringVar(&config.OutputRoot, "output", "output", "Root directory for rendered images")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		showHelp()
		os.Exit(0)
	}

	return config
}

// showHelp displays help information
func showHelp() {
	fmt.Println("Whitted Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-10s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to <output>/<scene>/render_<timestamp>.png")
}

// run renders the configured scene and writes it to disk
func run(ctx context.Context, config Config) error {
	fmt.Println("Starting Whitted Raytracer...")

	sceneObj, cameraConfig, err := createScene(config)
	if err != nil {
		return err
	}

	outputDir := createOutputDir(config.OutputRoot, config.SceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	counter := &integrator.RayCounter{}
	frame := renderer.NewFrame(cameraConfig.Width, cameraConfig.Height, cameraConfig.FieldOfView)
	renderConfig := renderer.RenderConfig{
		TileSize:   config.TileSize,
		NumWorkers: config.NumWorkers,
		Logger:     renderer.NewDefaultLogger(),
	}

	startTime := time.Now()
	if _, err := frame.Render(ctx, sceneObj, integrator.NewWhittedIntegrator().WithCounter(counter), renderConfig); err != nil {
		return err
	}
	renderTime := time.Since(startTime)

	rays := counter.Snapshot()
	fmt.Printf("Render completed in %v\n", renderTime)
	fmt.Printf("Rays traced: %d (primary %d, shadow %d, reflected %d, refracted %d)\n",
		rays.Total(), rays.Primary, rays.Shadow, rays.Reflected, rays.Refracted)

	fullPath, smallPath := outputPaths(outputDir, time.Now())
	if err := frame.Save(fullPath); err != nil {
		return err
	}
	fmt.Printf("Render saved as %s\n", fullPath)

	if config.Downsample {
		if err := frame.SaveDownsampled(smallPath); err != nil {
			return err
		}
		fmt.Printf("Downsampled render saved as %s\n", smallPath)
	}

	return nil
}

// createScene looks up the requested scene, applies overrides and validates it
func createScene(config Config) (*scene.Scene, scene.CameraConfig, error) {
	overrides := scene.CameraConfig{
		Width:       config.Width,
		Height:      config.Height,
		FieldOfView: config.FOV,
	}

	sceneObj, cameraConfig, err := scene.Lookup(config.SceneType, overrides)
	if err != nil {
		return nil, scene.CameraConfig{}, err
	}
	if config.MaxDepth >= 0 {
		sceneObj.RecursionDepth = config.MaxDepth
	}
	if err := cameraConfig.Validate(config.Downsample); err != nil {
		return nil, scene.CameraConfig{}, err
	}
	if err := sceneObj.Validate(); err != nil {
		return nil, scene.CameraConfig{}, err
	}

	fmt.Printf("Using %s scene (%dx%d, fov %.0f)...\n", config.SceneType, cameraConfig.Width, cameraConfig.Height, cameraConfig.FieldOfView)
	return sceneObj, cameraConfig, nil
}

// createOutputDir returns the directory renders of a scene are written to
func createOutputDir(root, sceneType string) string {
	return filepath.Join(root, sceneType)
}

// outputPaths returns the timestamped full-size and downsampled file names
func outputPaths(outputDir string, now time.Time) (string, string) {
	timestamp := now.Format("20060102_150405")
	full := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	small := filepath.Join(outputDir, fmt.Sprintf("render_%s_small.png", timestamp))
	return full, small
}
