package scene

import (
	"fmt"
	"sort"
)

// SceneInfo represents a built-in scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
}

type sceneEntry struct {
	info    SceneInfo
	factory func() *Scene
}

var builtinScenes = map[string]sceneEntry{
	"default": {
		info:    SceneInfo{ID: "default", DisplayName: "Default", Description: "Four grey spheres at different depths"},
		factory: NewDefaultScene,
	},
	"single": {
		info:    SceneInfo{ID: "single", DisplayName: "Single Sphere", Description: "One sphere of radius 4 straight ahead"},
		factory: NewSingleSphereScene,
	},
	"empty": {
		info:    SceneInfo{ID: "empty", DisplayName: "Empty", Description: "No objects, background only"},
		factory: NewEmptyScene,
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, entry := range builtinScenes {
		scenes = append(scenes, entry.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Names returns the IDs of the built-in scenes in sorted order
func Names() []string {
	infos := ListScenes()
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.ID
	}
	return names
}

// ByName creates a new instance of the named built-in scene
func ByName(name string) (*Scene, error) {
	entry, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene: %q", name)
	}
	return entry.factory(), nil
}
