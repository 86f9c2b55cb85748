package geometry

import (
	"math"

	"github.com/df07/go-nextweek-pathtracer/pkg/core"
	"github.com/df07/go-nextweek-pathtracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return hitSphere(ray, s.Center, s.Radius, s.Material, tMin, tMax)
}

// hitSphere solves the ray-sphere quadratic; shared by static and moving spheres
func hitSphere(ray core.Ray, center core.Vec3, radius float64, mat material.Material, tMin, tMax float64) (*material.HitRecord, bool) {
	if radius == 0 || ray.IsDegenerate() {
		return nil, false
	}

	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	// No intersection if discriminant is negative
	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	// Try the closer intersection point first
	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if !inRange(root, tMin, tMax) {
		// Try the farther intersection point
		root = (-halfB + sqrtD) / a
		if !inRange(root, tMin, tMax) {
			return nil, false
		}
	}

	point := ray.At(root)
	// Outward normal; a negative radius turns it inward for hollow shells
	normal := point.Subtract(center).Multiply(1.0 / radius)

	return &material.HitRecord{
		T:        root,
		Point:    point,
		Normal:   normal,
		UV:       sphereUV(normal),
		Material: mat,
	}, true
}

// sphereUV maps a point on the unit sphere to texture coordinates.
// u follows the longitude around Y, v goes from the south (0) to the north (1) pole.
func sphereUV(p core.Vec3) core.Vec2 {
	phi := math.Atan2(p.Z, p.X)
	theta := math.Asin(max(-1, min(1, p.Y)))
	return core.NewVec2(
		1-(phi+math.Pi)/(2*math.Pi),
		(theta+math.Pi/2)/math.Pi,
	)
}
