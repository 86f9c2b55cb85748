package integrator

import (
	"github.com/df07/go-nextweek-pathtracer/pkg/core"
	"github.com/df07/go-nextweek-pathtracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor returns one radiance sample carried back along the ray
	RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler) core.Vec3

	// MaxDepth returns the number of scattering events after which a path stops
	MaxDepth() int
}
