package geometry

import (
	"github.com/df07/go-nextweek-pathtracer/pkg/core"
	"github.com/df07/go-nextweek-pathtracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
//
// Hit reports the closest intersection with t in (tMin, tMax]. It never
// mutates the ray. The sampler is only consumed by stochastic shapes such as
// participating media; deterministic shapes ignore it.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool)
}

// inRange reports whether t lies in the half-open interval (tMin, tMax]
func inRange(t, tMin, tMax float64) bool {
	return t > tMin && t <= tMax
}
