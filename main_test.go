package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError error
		width       int
		height      int
	}{
		{"tutorial defaults", Config{SceneType: "tutorial", MaxDepth: -1}, nil, 1024, 768},
		{"box defaults", Config{SceneType: "box", MaxDepth: -1}, nil, 1024, 768},
		{"size override", Config{SceneType: "tutorial", Width: 64, Height: 48, MaxDepth: -1}, nil, 64, 48},
		{"downsample 2x2", Config{SceneType: "tutorial", Width: 2, Height: 2, Downsample: true, MaxDepth: -1}, nil, 2, 2},
		{"unknown scene", Config{SceneType: "nonexistent", MaxDepth: -1}, scene.ErrUnknownScene, 0, 0},
		{"empty scene name", Config{SceneType: "", MaxDepth: -1}, scene.ErrUnknownScene, 0, 0},
		{"negative width", Config{SceneType: "tutorial", Width: -4, Height: 8, MaxDepth: -1}, scene.ErrInvalidScene, 0, 0},
		{"negative height", Config{SceneType: "tutorial", Width: 8, Height: -1, MaxDepth: -1}, scene.ErrInvalidScene, 0, 0},
		{"fov too wide", Config{SceneType: "tutorial", FOV: 720, MaxDepth: -1}, scene.ErrInvalidScene, 0, 0},
		{"negative fov", Config{SceneType: "tutorial", FOV: -30, MaxDepth: -1}, scene.ErrInvalidScene, 0, 0},
		{"downsample single column", Config{SceneType: "tutorial", Width: 1, Height: 4, Downsample: true, MaxDepth: -1}, scene.ErrInvalidScene, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, cameraConfig, err := createScene(tt.config)

			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Errorf("Expected %v, got %v", tt.expectError, err)
				}
				if s != nil {
					t.Errorf("Expected nil scene for invalid config %+v", tt.config)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.config.SceneType, err)
			}
			if s == nil {
				t.Fatalf("Expected scene for valid scene type '%s', got nil", tt.config.SceneType)
			}
			if cameraConfig.Width != tt.width || cameraConfig.Height != tt.height {
				t.Errorf("Expected %dx%d, got %dx%d", tt.width, tt.height, cameraConfig.Width, cameraConfig.Height)
			}
			if len(s.Objects) == 0 || len(s.Lights) == 0 {
				t.Errorf("Expected scene to have objects and lights")
			}
		})
	}
}

func TestCreateScene_MaxDepthOverride(t *testing.T) {
	s, _, err := createScene(Config{SceneType: "tutorial", MaxDepth: 1})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.RecursionDepth != 1 {
		t.Errorf("Expected recursion depth 1, got %d", s.RecursionDepth)
	}
}

func TestCreateOutputDir(t *testing.T) {
	tests := []struct {
		name      string
		root      string
		sceneType string
		expected  string
	}{
		{"tutorial scene", "output", "tutorial", filepath.Join("output", "tutorial")},
		{"box scene", "output", "box", filepath.Join("output", "box")},
		{"custom root", "renders", "box", filepath.Join("renders", "box")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := createOutputDir(tt.root, tt.sceneType); got != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, got)
			}
		})
	}
}

func TestOutputPaths(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	full, small := outputPaths("out", now)

	if full != filepath.Join("out", "render_20240309_140507.png") {
		t.Errorf("Unexpected full-size path '%s'", full)
	}
	if small != filepath.Join("out", "render_20240309_140507_small.png") {
		t.Errorf("Unexpected downsampled path '%s'", small)
	}
}

func TestRun_WritesImages(t *testing.T) {
	root := t.TempDir()
	config := Config{
		SceneType:  "tutorial",
		Width:      16,
		Height:     12,
		NumWorkers: 2,
		TileSize:   8,
		MaxDepth:   -1,
		Downsample: true,
		OutputRoot: root,
	}

	if err := run(context.Background(), config); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(root, "tutorial"))
	if err != nil {
		t.Fatalf("Expected output directory to exist: %v", err)
	}

	var full, small int
	for _, entry := range entries {
		switch {
		case strings.HasSuffix(entry.Name(), "_small.png"):
			small++
		case strings.HasSuffix(entry.Name(), ".png"):
			full++
		}
	}
	if full != 1 || small != 1 {
		t.Errorf("Expected one full and one downsampled image, got %d and %d", full, small)
	}
}

func TestRun_RejectsInvalidSizeBeforeRendering(t *testing.T) {
	root := t.TempDir()
	config := Config{SceneType: "tutorial", Width: -4, Height: 8, MaxDepth: -1, OutputRoot: root}

	if err := run(context.Background(), config); !errors.Is(err, scene.ErrInvalidScene) {
		t.Fatalf("Expected ErrInvalidScene, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "tutorial")); !os.IsNotExist(err) {
		t.Errorf("Expected no output directory for a rejected config, got %v", err)
	}
}
