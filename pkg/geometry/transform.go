package geometry

import (
	"math"

	"github.com/df07/go-nextweek-pathtracer/pkg/core"
	"github.com/df07/go-nextweek-pathtracer/pkg/material"
)

// Translate moves a shape by Offset
type Translate struct {
	Shape  Shape
	Offset core.Vec3
}

// NewTranslate wraps shape so it appears displaced by offset
func NewTranslate(shape Shape, offset core.Vec3) *Translate {
	return &Translate{Shape: shape, Offset: offset}
}

// Hit moves the ray into object space, delegates, and moves the hit point back
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	moved := core.NewRayAt(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)
	hit, isHit := t.Shape.Hit(moved, tMin, tMax, sampler)
	if !isHit {
		return nil, false
	}
	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// RotateY rotates a shape around the world Y axis
type RotateY struct {
	Shape    Shape
	Degrees  float64
	sinTheta float64
	cosTheta float64
}

// NewRotateY wraps shape rotated by angle degrees about the Y axis
func NewRotateY(shape Shape, angle float64) *RotateY {
	radians := angle * math.Pi / 180
	return &RotateY{
		Shape:    shape,
		Degrees:  angle,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}
}

// toObject applies the inverse rotation
func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// toWorld applies the rotation
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit rotates the ray into object space, delegates, and rotates point and normal back
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	rotated := core.NewRayAt(r.toObject(ray.Origin), r.toObject(ray.Direction), ray.Time)
	hit, isHit := r.Shape.Hit(rotated, tMin, tMax, sampler)
	if !isHit {
		return nil, false
	}
	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// FlipNormals reverses the normal reported by a shape
type FlipNormals struct {
	Shape Shape
}

// NewFlipNormals wraps shape with inverted normals
func NewFlipNormals(shape Shape) *FlipNormals {
	return &FlipNormals{Shape: shape}
}

// Hit delegates and negates only the normal
func (f *FlipNormals) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	hit, isHit := f.Shape.Hit(ray, tMin, tMax, sampler)
	if !isHit {
		return nil, false
	}
	hit.Normal = hit.Normal.Negate()
	return hit, true
}
