package material

import (
	"github.com/df07/go-nextweek-pathtracer/pkg/core"
)

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter produces at most one scattered ray for an incoming ray at a hit.
	// Returns false when the ray is absorbed.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emitted(uv core.Vec2, point core.Vec3) core.Vec3
}

// Emitted returns the light emitted by m at the given surface point, or black
// when m does not emit.
func Emitted(m Material, uv core.Vec2, point core.Vec3) core.Vec3 {
	if emitter, ok := m.(Emitter); ok {
		return emitter.Emitted(uv, point)
	}
	return core.Vec3{}
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection.
// Normal is the unit geometric normal pointing out of the surface; materials
// compare it with the ray direction to tell entering from exiting.
type HitRecord struct {
	T        float64   // Parameter t along the ray
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Unit outward surface normal
	UV       core.Vec2 // Surface texture coordinates in [0,1]
	Material Material  // Material of the hit object
}
