package scene

import (
	"github.com/df07/go-nextweek-pathtracer/pkg/core"
	"github.com/df07/go-nextweek-pathtracer/pkg/geometry"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Camera         *geometry.Camera
	CameraConfig   geometry.CameraConfig
	World          geometry.Shape // Root of the object hierarchy, usually a *geometry.List
	Background     Background     // Radiance returned for rays that escape the world
	SamplingConfig SamplingConfig
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns the resolution and sample counts used by the catalogue scenes
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           1200,
		Height:          800,
		SamplesPerPixel: 140,
		MaxDepth:        50,
	}
}

// AspectRatio returns width / height, or 1 for an empty resolution
func (c SamplingConfig) AspectRatio() float64 {
	if c.Width <= 0 || c.Height <= 0 {
		return 1.0
	}
	return float64(c.Width) / float64(c.Height)
}

// NewScene builds a scene and its camera. The camera aspect ratio follows the sampling resolution.
func NewScene(name string, world geometry.Shape, background Background, cameraConfig geometry.CameraConfig, samplingConfig SamplingConfig) *Scene {
	cameraConfig.AspectRatio = samplingConfig.AspectRatio()
	if background == nil {
		background = NewSolidColor(core.NewVec3(0, 0, 0))
	}
	return &Scene{
		Name:           name,
		Camera:         geometry.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		World:          world,
		Background:     background,
		SamplingConfig: samplingConfig,
	}
}

// GetPrimitiveCount returns the total number of leaf shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return countPrimitivesInShape(s.World)
}

// countPrimitivesInShape counts primitives in a single shape, descending into lists and wrappers
func countPrimitivesInShape(shape geometry.Shape) int {
	switch obj := shape.(type) {
	case nil:
		return 0
	case *geometry.List:
		count := 0
		for _, child := range obj.Shapes {
			count += countPrimitivesInShape(child)
		}
		return count
	case *geometry.Box:
		return 6
	case *geometry.Translate:
		return countPrimitivesInShape(obj.Shape)
	case *geometry.RotateY:
		return countPrimitivesInShape(obj.Shape)
	case *geometry.FlipNormals:
		return countPrimitivesInShape(obj.Shape)
	case *geometry.ConstantMedium:
		return countPrimitivesInShape(obj.Boundary)
	default:
		return 1
	}
}
