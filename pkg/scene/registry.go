package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned by Lookup for names that are not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Name accepted by Lookup
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
}

type builtinScene struct {
	info  SceneInfo
	build func(cameraOverrides ...CameraConfig) (*Scene, CameraConfig)
}

var builtinScenes = map[string]builtinScene{
	"tutorial": {
		info: SceneInfo{
			ID:          "tutorial",
			DisplayName: "Tutorial",
			Description: "Ivory, glass, rubber and mirror spheres over a checkerboard floor",
		},
		build: NewTutorialScene,
	},
	"box": {
		info: SceneInfo{
			ID:          "box",
			DisplayName: "Box",
			Description: "Room of coloured walls with a mirror wall, shiny balls and a glass ball",
		},
		build: NewBoxScene,
	},
}

// DefaultSceneName is used when no scene is requested
const DefaultSceneName = "tutorial"

// Lookup builds the named built-in scene and its camera configuration
func Lookup(name string, cameraOverrides ...CameraConfig) (*Scene, CameraConfig, error) {
	entry, ok := builtinScenes[name]
	if !ok {
		return nil, CameraConfig{}, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	s, cameraConfig := entry.build(cameraOverrides...)
	return s, cameraConfig, nil
}

// ListScenes returns the built-in scenes sorted by display name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, entry := range builtinScenes {
		scenes = append(scenes, entry.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes
}

// Names returns the IDs of the built-in scenes in display order
func Names() []string {
	scenes := ListScenes()
	names := make([]string, len(scenes))
	for i, info := range scenes {
		names[i] = info.ID
	}
	return names
}
