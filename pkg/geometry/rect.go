package geometry

import (
	"github.com/df07/go-nextweek-pathtracer/pkg/core"
	"github.com/df07/go-nextweek-pathtracer/pkg/material"
)

// Axis identifies a coordinate axis
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// AxisAlignedRect is a rectangle lying in a plane perpendicular to one axis.
// A0..A1 and B0..B1 bound the two in-plane coordinates, K is the plane offset.
// Its normal points along the positive fixed axis.
type AxisAlignedRect struct {
	Fixed    Axis // Axis the plane is perpendicular to
	A0, A1   float64
	B0, B1   float64
	K        float64
	Material material.Material

	axisA, axisB int // In-plane axes, as component indices
	normal       core.Vec3
}

// NewXYRect creates a rectangle in the plane z = k
func NewXYRect(x0, x1, y0, y1, k float64, material material.Material) *AxisAlignedRect {
	return newAxisAlignedRect(AxisZ, x0, x1, y0, y1, k, material)
}

// NewXZRect creates a rectangle in the plane y = k
func NewXZRect(x0, x1, z0, z1, k float64, material material.Material) *AxisAlignedRect {
	return newAxisAlignedRect(AxisY, x0, x1, z0, z1, k, material)
}

// NewYZRect creates a rectangle in the plane x = k
func NewYZRect(y0, y1, z0, z1, k float64, material material.Material) *AxisAlignedRect {
	return newAxisAlignedRect(AxisX, y0, y1, z0, z1, k, material)
}

func newAxisAlignedRect(fixed Axis, a0, a1, b0, b1, k float64, mat material.Material) *AxisAlignedRect {
	r := &AxisAlignedRect{Fixed: fixed, A0: a0, A1: a1, B0: b0, B1: b1, K: k, Material: mat}
	switch fixed {
	case AxisX:
		r.axisA, r.axisB = 1, 2
		r.normal = core.NewVec3(1, 0, 0)
	case AxisY:
		r.axisA, r.axisB = 0, 2
		r.normal = core.NewVec3(0, 1, 0)
	default:
		r.axisA, r.axisB = 0, 1
		r.normal = core.NewVec3(0, 0, 1)
	}
	return r
}

// Hit solves the plane equation along the fixed axis and checks the in-plane bounds
func (r *AxisAlignedRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	// Degenerate bounds describe no surface
	if !(r.A1 > r.A0) || !(r.B1 > r.B0) || ray.IsDegenerate() {
		return nil, false
	}

	fixed := int(r.Fixed)
	denominator := ray.Direction.Component(fixed)
	if denominator == 0 {
		// Parallel to the plane
		return nil, false
	}

	t := (r.K - ray.Origin.Component(fixed)) / denominator
	if !inRange(t, tMin, tMax) {
		return nil, false
	}

	a := ray.Origin.Component(r.axisA) + t*ray.Direction.Component(r.axisA)
	b := ray.Origin.Component(r.axisB) + t*ray.Direction.Component(r.axisB)
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return nil, false
	}

	return &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   r.normal,
		UV:       core.NewVec2((a-r.A0)/(r.A1-r.A0), (b-r.B0)/(r.B1-r.B0)),
		Material: r.Material,
	}, true
}
