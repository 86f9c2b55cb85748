package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/df07/go-nextweek-pathtracer/pkg/core"
)

func TestPerlin_ZeroAtLatticePoints(t *testing.T) {
	perlin := NewPerlin(rand.New(rand.NewSource(42)))

	// Gradient noise vanishes on integer lattice points
	for _, p := range []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(3, -2, 7),
		core.NewVec3(-10, 4, 100),
	} {
		assert.InDelta(t, 0, perlin.Noise(p), 1e-12, "lattice point %v", p)
	}
}

func TestPerlin_BoundedAndSmooth(t *testing.T) {
	perlin := NewPerlin(rand.New(rand.NewSource(42)))
	random := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		p := core.NewVec3(random.Float64()*50, random.Float64()*50, random.Float64()*50)
		n := perlin.Noise(p)
		assert.LessOrEqual(t, math.Abs(n), math.Sqrt(3), "noise out of range at %v", p)

		// Tiny steps produce tiny changes
		step := perlin.Noise(p.Add(core.NewVec3(1e-6, 0, 0)))
		assert.InDelta(t, n, step, 1e-4)
	}
}

func TestPerlin_TurbulenceNonNegative(t *testing.T) {
	perlin := NewPerlin(rand.New(rand.NewSource(7)))
	random := rand.New(rand.NewSource(2))

	for i := 0; i < 200; i++ {
		p := core.NewVec3(random.Float64()*10, random.Float64()*10, random.Float64()*10)
		assert.GreaterOrEqual(t, perlin.Turbulence(p, 7), 0.0)
	}
	assert.Equal(t, 0.0, perlin.Turbulence(core.NewVec3(1, 2, 3), 0))
}
