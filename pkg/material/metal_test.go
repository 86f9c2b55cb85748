package material

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-nextweek-pathtracer/pkg/core"
)

func TestNewMetal_FuzznessClamp(t *testing.T) {
	tests := []struct {
		name             string
		inputFuzzness    float64
		expectedFuzzness float64
	}{
		{"Valid fuzzness 0.0", 0.0, 0.0},
		{"Valid fuzzness 0.5", 0.5, 0.5},
		{"Valid fuzzness 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
		{"Clamp large positive", 10.0, 1.0},
		{"Clamp large negative", -10.0, 0.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzzness)
			assert.Equal(t, tt.expectedFuzzness, metal.Fuzzness)
		})
	}
}

func TestMetal_PerfectReflectionIsDeterministic(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)

	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1))
	hit := upHit(metal)
	expected := core.NewVec3(0, 1, -1).Normalize()

	// Different generators must produce the exact same mirror direction
	for seed := int64(0); seed < 20; seed++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
		scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
		require.True(t, didScatter, "Metal should scatter")

		assert.InDelta(t, 0, scatter.Scattered.Direction.Subtract(expected).Length(), 1e-12)
		assert.Equal(t, albedo, scatter.Attenuation)
		assert.Equal(t, hit.Point, scatter.Scattered.Origin)
	}
}

func TestMetal_FuzzyReflection(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.5)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := upHit(metal)

	var directions []core.Vec3
	for i := 0; i < 10; i++ {
		scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
		if !didScatter {
			continue
		}
		directions = append(directions, scatter.Scattered.Direction)
		assert.Greater(t, scatter.Scattered.Direction.Dot(hit.Normal), 0.0)
	}
	require.NotEmpty(t, directions)

	allSame := true
	for _, d := range directions[1:] {
		if d.Subtract(directions[0]).Length() > 1e-10 {
			allSame = false
			break
		}
	}
	assert.False(t, allSame, "Fuzzy metal should produce varying reflection directions")
}

func TestMetal_AbsorbsBelowSurface(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 1.0)
	hit := upHit(metal)
	hit.Normal = core.NewVec3(0, 0, 1)

	// Grazing ray: mirror direction is almost tangent, a fuzz sample pointing down pushes it below
	rayIn := core.NewRay(core.NewVec3(-1, 0, 0.01), core.NewVec3(1, 0, -0.01))
	// u1=1 and u3=0 give a full-length perturbation along -Z
	sampler := sphereSampler{sample: core.NewVec3(1, 0, 0)}

	_, didScatter := metal.Scatter(rayIn, hit, sampler)
	assert.False(t, didScatter)
}

func TestReflect(t *testing.T) {
	v := core.NewVec3(1, -1, 0)
	n := core.NewVec3(0, 1, 0)
	assert.Equal(t, core.NewVec3(1, 1, 0), Reflect(v, n))
}
