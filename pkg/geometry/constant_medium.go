package geometry

import (
	"math"

	"github.com/df07/go-nextweek-pathtracer/pkg/core"
	"github.com/df07/go-nextweek-pathtracer/pkg/material"
)

// boundaryEpsilon separates the entry and exit searches through the boundary
const boundaryEpsilon = 0.0001

// ConstantMedium is a homogeneous fog filling a closed boundary shape.
// Rays passing through scatter once at an exponentially distributed depth.
type ConstantMedium struct {
	Boundary      Shape
	Density       float64
	PhaseFunction material.Material
}

// NewConstantMedium creates a medium of the given density with an isotropic phase function
func NewConstantMedium(boundary Shape, density float64, albedo material.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		Density:       density,
		PhaseFunction: material.NewTexturedIsotropic(albedo),
	}
}

// Hit samples a free-flight distance inside the boundary and reports a scatter event there
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	if m.Density <= 0 || ray.IsDegenerate() {
		return nil, false
	}

	// Entry anywhere along the line, then exit just past the entry
	entry, ok := m.Boundary.Hit(ray, -math.MaxFloat64, math.MaxFloat64, sampler)
	if !ok {
		return nil, false
	}
	exit, ok := m.Boundary.Hit(ray, entry.T+boundaryEpsilon, math.MaxFloat64, sampler)
	if !ok {
		return nil, false
	}

	t1 := max(entry.T, tMin, 0)
	t2 := min(exit.T, tMax)
	if t1 >= t2 {
		return nil, false
	}

	rayLength := ray.Direction.Length()
	distanceInside := (t2 - t1) * rayLength

	// U in (0,1]
	u := 1 - sampler.Get1D()
	hitDistance := -(1 / m.Density) * math.Log(u)
	if hitDistance >= distanceInside {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	if !inRange(t, tMin, tMax) {
		return nil, false
	}

	return &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   core.NewVec3(1, 0, 0), // Arbitrary; volumes have no surface
		Material: m.PhaseFunction,
	}, true
}
