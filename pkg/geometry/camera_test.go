package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/df07/go-nextweek-pathtracer/pkg/core"
)

func forwardCameraConfig() CameraConfig {
	return CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: 2.0,
	}
}

func assertVecNear(t *testing.T, expected, actual core.Vec3) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, 1e-9, "x")
	assert.InDelta(t, expected.Y, actual.Y, 1e-9, "y")
	assert.InDelta(t, expected.Z, actual.Z, 1e-9, "z")
}

func TestCamera_GetRay_Viewport(t *testing.T) {
	// vfov 90 with focus distance 1 gives half height 1, aspect 2 gives half width 2
	camera := NewCamera(forwardCameraConfig())
	sampler := newTestSampler(1)

	tests := []struct {
		name      string
		s, t      float64
		direction core.Vec3
	}{
		{"center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"lower left", 0, 0, core.NewVec3(-2, -1, -1)},
		{"upper right", 1, 1, core.NewVec3(2, 1, -1)},
		{"upper left", 0, 1, core.NewVec3(-2, 1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.s, tt.t, sampler)
			assertVecNear(t, core.NewVec3(0, 0, 0), ray.Origin)
			assertVecNear(t, tt.direction, ray.Direction)
		})
	}
}

func TestCamera_GetRay_PinholeHasFixedOrigin(t *testing.T) {
	config := forwardCameraConfig()
	config.Center = core.NewVec3(13, 2, 3)
	config.LookAt = core.NewVec3(0, 0, 0)
	camera := NewCamera(config)
	sampler := newTestSampler(2)

	for i := 0; i < 50; i++ {
		ray := camera.GetRay(sampler.Get1D(), sampler.Get1D(), sampler)
		assert.Equal(t, config.Center, ray.Origin)
	}
}

func TestCamera_GetRay_ApertureStaysOnLens(t *testing.T) {
	config := forwardCameraConfig()
	config.Aperture = 0.5
	config.FocusDistance = 4
	camera := NewCamera(config)
	sampler := newTestSampler(3)

	for i := 0; i < 200; i++ {
		ray := camera.GetRay(0.5, 0.5, sampler)
		// The lens lies in the z=0 plane, radius aperture/2
		assert.InDelta(t, 0, ray.Origin.Z, 1e-9)
		assert.LessOrEqual(t, ray.Origin.Length(), 0.25+1e-9)

		// Every ray through the viewport center converges on the focus plane
		focusPoint := ray.At(1)
		assertVecNear(t, core.NewVec3(0, 0, -4), focusPoint)
	}
}

func TestCamera_GetRay_TimeWithinShutter(t *testing.T) {
	config := forwardCameraConfig()
	config.Time0 = 0.0
	config.Time1 = 1.0
	camera := NewCamera(config)
	sampler := newTestSampler(4)

	minTime, maxTime := math.Inf(1), math.Inf(-1)
	for i := 0; i < 500; i++ {
		ray := camera.GetRay(0.5, 0.5, sampler)
		assert.GreaterOrEqual(t, ray.Time, 0.0)
		assert.LessOrEqual(t, ray.Time, 1.0)
		minTime = math.Min(minTime, ray.Time)
		maxTime = math.Max(maxTime, ray.Time)
	}
	assert.Less(t, minTime, 0.1)
	assert.Greater(t, maxTime, 0.9)
}

func TestCamera_GetRay_ClosedShutter(t *testing.T) {
	config := forwardCameraConfig()
	config.Time0 = 0.3
	config.Time1 = 0.3
	camera := NewCamera(config)

	ray := camera.GetRay(0.5, 0.5, newTestSampler(5))
	assert.Equal(t, 0.3, ray.Time)
}

func TestCamera_UpParallelToView(t *testing.T) {
	config := forwardCameraConfig()
	config.Up = core.NewVec3(0, 0, 1)
	camera := NewCamera(config)

	ray := camera.GetRay(0.3, 0.7, newTestSampler(6))
	assert.True(t, ray.Direction.IsFinite())
	assert.False(t, ray.IsDegenerate())
}
