package server

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene       string  `json:"scene"`      // Built-in scene name
	Width       int     `json:"width"`      // Image width
	Height      int     `json:"height"`     // Image height
	FieldOfView float64 `json:"fov"`        // Vertical field of view in degrees
	Downsample  bool    `json:"downsample"` // Return a 2x2-averaged half-size image
	NumWorkers  int     `json:"workers"`    // Parallel workers (0 = CPU count)
	TileSize    int     `json:"tileSize"`   // Square tile edge in pixels
	MaxDepth    int     `json:"maxDepth"`   // Optional recursion depth override (-1 = scene default)
}

// handleRender renders a scene and returns it as a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "use GET")
		return
	}

	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, _, err := scene.Lookup(req.Scene)
	if errors.Is(err, scene.ErrUnknownScene) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if req.MaxDepth >= 0 {
		sceneObj.RecursionDepth = req.MaxDepth
	}
	if err := sceneObj.Validate(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger := NewRenderLogger(strconv.FormatInt(s.renderID.Add(1), 10))
	frame := renderer.NewFrame(req.Width, req.Height, req.FieldOfView)
	config := renderer.RenderConfig{
		TileSize:   req.TileSize,
		NumWorkers: req.NumWorkers,
		Logger:     logger,
	}

	// Use request context to stop rendering when the client disconnects
	if _, err := frame.Render(r.Context(), sceneObj, integrator.NewWhittedIntegrator(), config); err != nil {
		logger.Printf("Render error: %v\n", err)
		writeError(w, http.StatusServiceUnavailable, fmt.Sprintf("Render error: %v", err))
		return
	}

	var buf bytes.Buffer
	if err := frame.EncodePNG(&buf, req.Downsample); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing render response: %v", err)
	}
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	defaults := scene.DefaultCameraConfig()
	req := &RenderRequest{Scene: scene.DefaultSceneName}

	if name := query.Get("scene"); name != "" {
		req.Scene = name
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, 2, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 300, 2, 2000); err != nil {
		return nil, err
	}
	if req.FieldOfView, err = parseFloatParam(query, "fov", defaults.FieldOfView, 1, 179); err != nil {
		return nil, err
	}
	if req.Downsample, err = parseBoolParam(query, "downsample", false); err != nil {
		return nil, err
	}
	if req.NumWorkers, err = parseIntParam(query, "workers", 0, 0, 256); err != nil {
		return nil, err
	}
	if req.TileSize, err = parseIntParam(query, "tileSize", renderer.DefaultRenderConfig().TileSize, 1, 2000); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "maxDepth", -1, -1, 16); err != nil {
		return nil, err
	}

	// Performance warning
	if req.Width*req.Height > 1024*768 {
		log.Printf("Render warning: Large image may render slowly")
	}

	return req, nil
}
