package scene

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// ErrUnknownScene is returned when a scene name is not in the catalogue
var ErrUnknownScene = errors.New("scene: unknown scene")

// Groups used to organise the catalogue
const (
	GroupOutdoor = "Outdoor Scenes"
	GroupLit     = "Emissive Scenes"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id" yaml:"id"`                   // Name passed to New
	DisplayName string `json:"displayName" yaml:"displayName"` // Human readable name
	Description string `json:"description" yaml:"description"`
	Group       string `json:"group" yaml:"group"`
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// Options control how a catalogue scene is built
type Options struct {
	Seed       int64          // Seeds random placement and noise tables
	TextureDir string         // Directory holding image textures such as earthmap.jpg
	Sampling   SamplingConfig // Non-zero fields override the scene's defaults

	// TextureMaxSize caps the larger side of loaded image textures; 0 keeps them full size
	TextureMaxSize int
}

// builder constructs one catalogue scene
type builder struct {
	info  SceneInfo
	build func(opts Options, random *rand.Rand) (*Scene, error)
}

var builtins = []builder{
	{SceneInfo{ID: "random", Description: "Checker ground with a field of moving, metal and glass spheres", Group: GroupOutdoor}, newRandomScene},
	{SceneInfo{ID: "three-spheres", Description: "Diffuse, metal and hollow glass spheres with depth of field", Group: GroupOutdoor}, newThreeSpheresScene},
	{SceneInfo{ID: "two-spheres", Description: "Two checker-textured spheres", Group: GroupOutdoor}, newTwoSpheresScene},
	{SceneInfo{ID: "two-perlin-spheres", Description: "Marble-like Perlin noise on a ground and a sphere", Group: GroupOutdoor}, newTwoPerlinSpheresScene},
	{SceneInfo{ID: "earth", Description: "Image-textured globe, reads earthmap.jpg from the texture directory", Group: GroupOutdoor}, newEarthScene},
	{SceneInfo{ID: "simple-light", Description: "Perlin spheres lit by a sphere and a rectangle light", Group: GroupLit}, newSimpleLightScene},
	{SceneInfo{ID: "cornell-box", Description: "Cornell box with two rotated boxes", Group: GroupLit}, newCornellBoxScene},
	{SceneInfo{ID: "cornell-smoke", Description: "Cornell box with smoke and fog blocks", Group: GroupLit}, newCornellSmokeScene},
	{SceneInfo{ID: "final", Description: "Every feature at once: boxes, media, motion blur, noise and image textures", Group: GroupLit}, newFinalScene},
}

// DefaultSceneName is rendered when no scene is configured
const DefaultSceneName = "two-perlin-spheres"

// ListScenes returns the catalogue in declaration order
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		info := b.info
		info.DisplayName = titleCase(info.ID)
		scenes = append(scenes, info)
	}
	return scenes
}

// GroupScenes returns the catalogue grouped by category, groups in alphabetical order
func GroupScenes() []SceneGroup {
	groupMap := make(map[string][]SceneInfo)
	for _, info := range ListScenes() {
		groupMap[info.Group] = append(groupMap[info.Group], info)
	}

	var groupNames []string
	for name := range groupMap {
		groupNames = append(groupNames, name)
	}
	sort.Strings(groupNames)

	groups := make([]SceneGroup, 0, len(groupNames))
	for _, name := range groupNames {
		groups = append(groups, SceneGroup{Name: name, Scenes: groupMap[name]})
	}
	return groups
}

// New builds the named catalogue scene. The returned scene is complete and is
// not modified by rendering.
func New(name string, opts Options) (*Scene, error) {
	id := strings.ToLower(strings.TrimSpace(name))
	if id == "" {
		id = DefaultSceneName
	}

	for _, b := range builtins {
		if b.info.ID != id {
			continue
		}
		s, err := b.build(opts, rand.New(rand.NewSource(opts.Seed)))
		if err != nil {
			return nil, fmt.Errorf("scene: build %s: %w", id, err)
		}
		return s, nil
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownScene, name)
}

// resolveSampling applies the non-zero fields of override on top of defaults
func resolveSampling(defaults, override SamplingConfig) SamplingConfig {
	if override.Width > 0 {
		defaults.Width = override.Width
	}
	if override.Height > 0 {
		defaults.Height = override.Height
	}
	if override.SamplesPerPixel > 0 {
		defaults.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth > 0 {
		defaults.MaxDepth = override.MaxDepth
	}
	return defaults
}

// titleCase converts a scene id like "cornell-box" to "Cornell Box"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
