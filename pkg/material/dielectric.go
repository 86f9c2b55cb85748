package material

import (
	"math"

	"github.com/df07/go-nextweek-pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering.
// Exactly one of the reflected or refracted rays is returned, chosen with the
// Schlick reflectance as probability.
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Dielectrics always attenuate by 1.0 (no color absorption for clear glass)
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	direction := rayIn.Direction
	length := direction.Length()
	dirDotNormal := direction.Dot(hit.Normal)

	var outwardNormal core.Vec3
	var niOverNt, cosine float64
	if dirDotNormal > 0 {
		// Ray is exiting the material (from glass to air)
		outwardNormal = hit.Normal.Negate()
		niOverNt = d.RefractiveIndex
		cosine = dirDotNormal / length
	} else {
		// Ray is entering the material (from air to glass)
		outwardNormal = hit.Normal
		niOverNt = 1.0 / d.RefractiveIndex
		cosine = -dirDotNormal / length
	}

	reflectProb := 1.0
	refracted, canRefract := Refract(direction, outwardNormal, niOverNt)
	if canRefract {
		if dirDotNormal > 0 {
			// Use the cosine on the outside of the boundary
			cosine = math.Sqrt(1 - d.RefractiveIndex*d.RefractiveIndex*(1-cosine*cosine))
		}
		reflectProb = Schlick(cosine, d.RefractiveIndex)
	}

	var scattered core.Vec3
	if sampler.Get1D() < reflectProb {
		scattered = Reflect(direction, hit.Normal)
	} else {
		scattered = refracted
	}

	return ScatterResult{
		Scattered:   core.NewRayAt(hit.Point, scattered, rayIn.Time),
		Attenuation: attenuation,
	}, true
}

// Refract bends v through a surface with unit normal n facing against v, using Snell's law.
// It returns false on total internal reflection (discriminant ≤ 0).
func Refract(v, n core.Vec3, niOverNt float64) (core.Vec3, bool) {
	uv := v.Normalize()
	dt := uv.Dot(n)
	discriminant := 1.0 - niOverNt*niOverNt*(1-dt*dt)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}
	refracted := uv.Subtract(n.Multiply(dt)).Multiply(niOverNt).Subtract(n.Multiply(math.Sqrt(discriminant)))
	return refracted, true
}

// Schlick calculates the Fresnel reflectance using Schlick's approximation
func Schlick(cosine, refIdx float64) float64 {
	r0 := (1 - refIdx) / (1 + refIdx)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
