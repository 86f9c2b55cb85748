package integrator

import (
	"math"

	"github.com/df07/go-nextweek-pathtracer/pkg/core"
	"github.com/df07/go-nextweek-pathtracer/pkg/material"
	"github.com/df07/go-nextweek-pathtracer/pkg/scene"
)

const (
	// DefaultMaxDepth is the number of scattering events after which a path stops
	DefaultMaxDepth = 50

	// shadowAcneEpsilon keeps secondary rays from re-hitting the surface they left
	shadowAcneEpsilon = 0.001
)

// PathTracingIntegrator implements unidirectional path tracing with a hard bounce limit
type PathTracingIntegrator struct {
	maxDepth int
}

// NewPathTracingIntegrator creates a new path tracing integrator.
// A non-positive maxDepth falls back to DefaultMaxDepth.
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &PathTracingIntegrator{maxDepth: maxDepth}
}

// MaxDepth returns the bounce limit
func (pt *PathTracingIntegrator) MaxDepth() int {
	return pt.maxDepth
}

// RayColor computes the color for a single ray.
//
// Each hit adds the surface's emission weighted by the path throughput. The path
// continues while the material scatters and fewer than maxDepth bounces have
// happened; a ray that escapes picks up the scene background.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Vec3 {
	if s.World == nil {
		return pt.background(ray, s)
	}

	color := core.NewVec3(0, 0, 0)
	throughput := core.NewVec3(1, 1, 1)

	for depth := 0; ; depth++ {
		hit, isHit := s.World.Hit(ray, shadowAcneEpsilon, math.MaxFloat64, sampler)
		if !isHit {
			return color.Add(throughput.MultiplyVec(pt.background(ray, s)))
		}

		// Start with emitted light from the hit material
		emitted := material.Emitted(hit.Material, hit.UV, hit.Point)
		color = color.Add(throughput.MultiplyVec(emitted))

		if depth >= pt.maxDepth {
			return color
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			// Material absorbed the ray, only emitted light counts
			return color
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		if throughput.X == 0 && throughput.Y == 0 && throughput.Z == 0 {
			// Nothing further along the path can contribute
			return color
		}
		ray = scatter.Scattered
	}
}

// background returns the scene's background radiance for an escaped ray
func (pt *PathTracingIntegrator) background(ray core.Ray, s *scene.Scene) core.Vec3 {
	if s.Background == nil {
		return core.NewVec3(0, 0, 0)
	}
	return s.Background.Color(ray)
}
