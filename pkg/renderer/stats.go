package renderer

import (
	"fmt"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	TotalTiles  int           // Number of tiles the image was split into
	NumWorkers  int           // Number of tiles rendered concurrently
	Elapsed     time.Duration // Wall-clock render time
}

// PixelsPerSecond returns the render throughput
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / s.Elapsed.Seconds()
}

func (s RenderStats) String() string {
	return fmt.Sprintf("%d pixels in %d tiles on %d workers, %v (%.0f px/s)",
		s.TotalPixels, s.TotalTiles, s.NumWorkers, s.Elapsed.Round(time.Millisecond), s.PixelsPerSecond())
}
