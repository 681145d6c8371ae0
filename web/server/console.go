package server

import (
	"fmt"
	"log"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// RenderLogger implements core.Logger by writing to the server log,
// tagging every line with the render it belongs to
type RenderLogger struct {
	renderID string
}

// NewRenderLogger creates a new logger for a specific render
func NewRenderLogger(renderID string) core.Logger {
	return &RenderLogger{renderID: renderID}
}

// Printf implements core.Logger interface
func (rl *RenderLogger) Printf(format string, args ...interface{}) {
	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	log.Printf("[render %s] %s", rl.renderID, message)
}
