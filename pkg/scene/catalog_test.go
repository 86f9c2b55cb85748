package scene

import (
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-nextweek-pathtracer/pkg/core"
	"github.com/df07/go-nextweek-pathtracer/pkg/geometry"
	"github.com/df07/go-nextweek-pathtracer/pkg/material"
)

// writeEarthTexture stores a small stand-in earth map and returns its directory
func writeEarthTexture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: 20, G: 80, B: 200, A: 255})
		}
	}

	f, err := os.Create(filepath.Join(dir, EarthTextureFile))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, jpeg.Encode(f, img, nil))
	return dir
}

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"cornell-box", "Cornell Box"},
		{"two_perlin-spheres", "Two Perlin Spheres"},
		{"final", "Final"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, titleCase(tc.input))
		})
	}
}

func TestNew_AllScenes(t *testing.T) {
	opts := Options{Seed: 1, TextureDir: writeEarthTexture(t)}

	for _, info := range ListScenes() {
		t.Run(info.ID, func(t *testing.T) {
			s, err := New(info.ID, opts)
			require.NoError(t, err)

			assert.Equal(t, info.ID, s.Name)
			assert.NotNil(t, s.Camera)
			assert.NotNil(t, s.World)
			assert.NotNil(t, s.Background)
			assert.Positive(t, s.GetPrimitiveCount())

			assert.Positive(t, s.SamplingConfig.Width)
			assert.Positive(t, s.SamplingConfig.Height)
			assert.Equal(t, 140, s.SamplingConfig.SamplesPerPixel)
			assert.Equal(t, 50, s.SamplingConfig.MaxDepth)
			assert.InDelta(t, s.SamplingConfig.AspectRatio(), s.CameraConfig.AspectRatio, 1e-12)
		})
	}
}

func TestNew_DefaultScene(t *testing.T) {
	s, err := New("", Options{})
	require.NoError(t, err)
	assert.Equal(t, DefaultSceneName, s.Name)
	assert.Equal(t, 1200, s.SamplingConfig.Width)
	assert.Equal(t, 800, s.SamplingConfig.Height)
	assert.Equal(t, core.NewVec3(13, 2, 3), s.CameraConfig.Center)
	assert.Equal(t, 20.0, s.CameraConfig.VFov)
	assert.Equal(t, 10.0, s.CameraConfig.FocusDistance)
	assert.Equal(t, 1.0, s.CameraConfig.Time1)
}

func TestNew_UnknownScene(t *testing.T) {
	_, err := New("teapot", Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownScene)
	assert.Contains(t, err.Error(), "teapot")
}

func TestNew_MissingTexture(t *testing.T) {
	for _, name := range []string{"earth", "final"} {
		t.Run(name, func(t *testing.T) {
			_, err := New(name, Options{TextureDir: t.TempDir()})
			require.Error(t, err)
			assert.ErrorIs(t, err, os.ErrNotExist)
		})
	}
}

func TestNew_SamplingOverride(t *testing.T) {
	s, err := New("cornell-box", Options{Sampling: SamplingConfig{Width: 200, SamplesPerPixel: 10}})
	require.NoError(t, err)

	assert.Equal(t, 200, s.SamplingConfig.Width)
	assert.Equal(t, 600, s.SamplingConfig.Height)
	assert.Equal(t, 10, s.SamplingConfig.SamplesPerPixel)
	assert.Equal(t, 50, s.SamplingConfig.MaxDepth)
	assert.InDelta(t, 200.0/600.0, s.CameraConfig.AspectRatio, 1e-12)
}

func TestNew_RandomSceneIsSeeded(t *testing.T) {
	first, err := New("random", Options{Seed: 7})
	require.NoError(t, err)
	second, err := New("random", Options{Seed: 7})
	require.NoError(t, err)
	other, err := New("random", Options{Seed: 8})
	require.NoError(t, err)

	firstList := first.World.(*geometry.List)
	secondList := second.World.(*geometry.List)
	require.Equal(t, firstList.Len(), secondList.Len())
	assert.Equal(t, firstList.Shapes[1], secondList.Shapes[1])
	assert.NotEqual(t, firstList.Shapes[1], other.World.(*geometry.List).Shapes[1])
}

func TestCornellBox_HighRayHitsBackWall(t *testing.T) {
	s, err := New("cornell-box", Options{})
	require.NoError(t, err)

	sampler := core.NewSeededSampler(1)
	// Above the tall block, so the first surface is the back wall at z = 555
	ray := core.NewRay(core.NewVec3(278, 450, -800), core.NewVec3(0, 0, 1))

	hit, ok := s.World.Hit(ray, 0.001, 1e9, sampler)
	require.True(t, ok)
	assert.InDelta(t, 555, hit.Point.Z, 1e-6)
	// Flipped normal faces the camera
	assert.InDelta(t, -1, hit.Normal.Z, 1e-9)
}

func TestGroupScenes(t *testing.T) {
	groups := GroupScenes()
	require.Len(t, groups, 2)
	assert.Equal(t, GroupLit, groups[0].Name)
	assert.Equal(t, GroupOutdoor, groups[1].Name)

	total := 0
	for _, g := range groups {
		total += len(g.Scenes)
	}
	assert.Equal(t, len(ListScenes()), total)
	assert.Equal(t, "Cornell Box", groups[0].Scenes[1].DisplayName)
}

func TestBackgrounds(t *testing.T) {
	sky := NewDefaultSky()
	assert.Equal(t, core.NewVec3(0.5, 0.7, 1.0), sky.Color(core.NewRay(core.Vec3{}, core.NewVec3(0, 5, 0))))
	assert.Equal(t, core.NewVec3(1, 1, 1), sky.Color(core.NewRay(core.Vec3{}, core.NewVec3(0, -2, 0))))

	black := NewSolidColor(core.NewVec3(0, 0, 0))
	assert.Equal(t, core.Vec3{}, black.Color(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0))))
}

func TestNew_EarthTextureMaxSize(t *testing.T) {
	dir := writeEarthTexture(t)

	tests := []struct {
		name          string
		maxSize       int
		width, height int
	}{
		{"full size", 0, 8, 4},
		{"downscaled", 4, 4, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New("earth", Options{TextureDir: dir, TextureMaxSize: tt.maxSize})
			require.NoError(t, err)

			sphere := s.World.(*geometry.List).Shapes[0].(*geometry.Sphere)
			texture := sphere.Material.(*material.Lambertian).Albedo.(*material.ImageTexture)
			assert.Equal(t, tt.width, texture.Width)
			assert.Equal(t, tt.height, texture.Height)
		})
	}
}
