package material

import (
	"github.com/df07/go-nextweek-pathtracer/pkg/core"
)

// Isotropic scatters uniformly in all directions. It is the phase function
// used inside participating media.
type Isotropic struct {
	Albedo Texture
}

// NewIsotropic creates an isotropic material with a solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewConstantTexture(albedo)}
}

// NewTexturedIsotropic creates an isotropic material with a texture
func NewTexturedIsotropic(albedo Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter picks a uniformly distributed direction on the unit sphere
func (i *Isotropic) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   core.NewRayAt(hit.Point, core.SampleOnUnitSphere(sampler.Get2D()), rayIn.Time),
		Attenuation: i.Albedo.Evaluate(hit.UV, hit.Point),
	}, true
}
