package geometry

import (
	"github.com/df07/go-nextweek-pathtracer/pkg/core"
	"github.com/df07/go-nextweek-pathtracer/pkg/material"
)

// Box is an axis-aligned box between two corners, built as a shell of six
// rectangles. Place it elsewhere with Translate and RotateY.
type Box struct {
	Min, Max core.Vec3
	faces    *List
}

// NewBox creates a box spanning p0 to p1 with one material on every face
func NewBox(p0, p1 core.Vec3, mat material.Material) *Box {
	faces := NewList(
		NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p1.Z, mat),
		NewFlipNormals(NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p0.Z, mat)),
		NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p1.Y, mat),
		NewFlipNormals(NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p0.Y, mat)),
		NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p1.X, mat),
		NewFlipNormals(NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p0.X, mat)),
	)
	return &Box{Min: p0, Max: p1, faces: faces}
}

// Hit tests if a ray intersects with any face of the box
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return b.faces.Hit(ray, tMin, tMax, sampler)
}
