package geometry

import (
	"github.com/df07/go-nextweek-pathtracer/pkg/core"
	"github.com/df07/go-nextweek-pathtracer/pkg/material"
)

// List aggregates shapes and reports the nearest hit among them.
// Members are tested linearly; there is no spatial index.
type List struct {
	Shapes []Shape
}

// NewList creates a list from the given shapes
func NewList(shapes ...Shape) *List {
	return &List{Shapes: shapes}
}

// Add appends shapes to the list
func (l *List) Add(shapes ...Shape) {
	l.Shapes = append(l.Shapes, shapes...)
}

// Len returns the number of direct members
func (l *List) Len() int {
	return len(l.Shapes)
}

// Hit returns the globally closest hit by shrinking tMax as hits are found
func (l *List) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar, sampler); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
