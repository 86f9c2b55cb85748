package geometry

import (
	"math/rand"

	"github.com/df07/go-nextweek-pathtracer/pkg/core"
	"github.com/df07/go-nextweek-pathtracer/pkg/material"
)

var testMaterial = material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

func newTestSampler(seed int64) core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// randomRayTowards builds a ray starting outside a radius-10 ball aimed near target
func randomRayTowards(random *rand.Rand, target core.Vec3) core.Ray {
	origin := core.SampleOnUnitSphere(core.NewVec2(random.Float64(), random.Float64())).Multiply(10).Add(target)
	jitter := core.NewVec3(random.Float64()-0.5, random.Float64()-0.5, random.Float64()-0.5).Multiply(2)
	return core.NewRay(origin, target.Add(jitter).Subtract(origin))
}
