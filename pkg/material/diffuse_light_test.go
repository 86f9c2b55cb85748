package material

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/df07/go-nextweek-pathtracer/pkg/core"
)

func TestDiffuseLight_NeverScatters(t *testing.T) {
	light := NewDiffuseLight(core.NewVec3(4, 4, 4))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(1)))

	directions := []core.Vec3{
		core.NewVec3(0, -1, 0),
		core.NewVec3(1, -1, 0),
		core.NewVec3(0, 1, 0), // from behind
	}
	for _, d := range directions {
		_, scattered := light.Scatter(core.NewRay(core.NewVec3(0, 1, 0), d), upHit(light), sampler)
		assert.False(t, scattered)
	}
}

func TestDiffuseLight_EmittedIgnoresIncidence(t *testing.T) {
	emission := core.NewVec3(15, 14, 13)
	light := NewDiffuseLight(emission)

	assert.Equal(t, emission, light.Emitted(core.NewVec2(0, 0), core.NewVec3(0, 0, 0)))
	assert.Equal(t, emission, light.Emitted(core.NewVec2(0.7, 0.1), core.NewVec3(3, -2, 9)))
	assert.Equal(t, emission, Emitted(light, core.NewVec2(0.5, 0.5), core.NewVec3(1, 1, 1)))
}

func TestEmitted_NonEmissiveMaterialIsBlack(t *testing.T) {
	materials := []Material{
		NewLambertian(core.NewVec3(1, 1, 1)),
		NewMetal(core.NewVec3(1, 1, 1), 0),
		NewDielectric(1.5),
		NewIsotropic(core.NewVec3(1, 1, 1)),
	}
	for _, m := range materials {
		assert.Equal(t, core.Vec3{}, Emitted(m, core.NewVec2(0.5, 0.5), core.NewVec3(1, 2, 3)), "%T", m)
	}
}
