package renderer

import (
	"image"
	"testing"
)

func TestNewTileGrid_Coverage(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		tileSize      int
		expectedTiles int
	}{
		{"exact fit", 64, 64, 32, 4},
		{"ragged edges", 100, 50, 32, 8},
		{"tile larger than image", 10, 10, 64, 1},
		{"zero tile size", 30, 20, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := NewTileGrid(tt.width, tt.height, tt.tileSize)
			if len(tiles) != tt.expectedTiles {
				t.Errorf("Expected %d tiles, got %d", tt.expectedTiles, len(tiles))
			}

			covered := make([]int, tt.width*tt.height)
			imageBounds := image.Rect(0, 0, tt.width, tt.height)
			for i, tile := range tiles {
				if tile.ID != i {
					t.Errorf("Expected tile ID %d, got %d", i, tile.ID)
				}
				if !tile.Bounds.In(imageBounds) {
					t.Errorf("Tile %d bounds %v exceed image %v", i, tile.Bounds, imageBounds)
				}
				for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
					for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
						covered[y*tt.width+x]++
					}
				}
			}

			for i, count := range covered {
				if count != 1 {
					t.Fatalf("Pixel %d covered %d times", i, count)
				}
			}
		})
	}
}
