package scene

import (
	"math/rand"
	"path/filepath"

	"github.com/df07/go-nextweek-pathtracer/pkg/core"
	"github.com/df07/go-nextweek-pathtracer/pkg/geometry"
	"github.com/df07/go-nextweek-pathtracer/pkg/loaders"
	"github.com/df07/go-nextweek-pathtracer/pkg/material"
)

// EarthTextureFile is the image the earth scenes look for in the texture directory
const EarthTextureFile = "earthmap.jpg"

// outdoorCamera is the shared view for the sky-lit scenes: looking at the
// origin from (13,2,3) with the shutter open over [0,1]
func outdoorCamera() geometry.CameraConfig {
	return geometry.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		Aperture:      0.0,
		FocusDistance: 10.0,
		Time0:         0.0,
		Time1:         1.0,
	}
}

// newCheckerTexture returns the green and white checker used by the ground planes
func newCheckerTexture() *material.CheckerTexture {
	return material.NewCheckerTexture(
		material.NewConstantTexture(core.NewVec3(0.2, 0.3, 0.1)),
		material.NewConstantTexture(core.NewVec3(0.9, 0.9, 0.9)),
	)
}

// newRandomScene creates the book cover: a checker ground covered in small
// spheres, with three large feature spheres in the middle
func newRandomScene(opts Options, random *rand.Rand) (*Scene, error) {
	world := geometry.NewList()

	ground := material.NewTexturedLambertian(newCheckerTexture())
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	for a := -10; a < 10; a++ {
		for b := -10; b < 10; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				// Diffuse spheres bounce upward while the shutter is open
				albedo := core.NewVec3(
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
				)
				end := center.Add(core.NewVec3(0, 0.5*random.Float64(), 0))
				world.Add(geometry.NewMovingSphere(center, end, 0.0, 1.0, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.NewVec3(
					0.5*(1+random.Float64()),
					0.5*(1+random.Float64()),
					0.5*(1+random.Float64()),
				)
				world.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, 0.5*random.Float64())))
			default:
				world.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	return NewScene("random", world, NewDefaultSky(), outdoorCamera(),
		resolveSampling(DefaultSamplingConfig(), opts.Sampling)), nil
}

// newThreeSpheresScene creates a small scene with a hollow glass bubble made of
// a glass sphere and a slightly smaller inward-facing one
func newThreeSpheresScene(opts Options, random *rand.Rand) (*Scene, error) {
	glass := material.NewDielectric(1.5)
	world := geometry.NewList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.2)),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		// A negative radius flips the normals inward
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, glass),
	)

	camera := geometry.CameraConfig{
		Center:        core.NewVec3(3, 3, 2),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		Aperture:      2.0,
		FocusDistance: 0.0, // Focus on the look-at point
	}

	return NewScene("three-spheres", world, NewDefaultSky(), camera,
		resolveSampling(DefaultSamplingConfig(), opts.Sampling)), nil
}

// newTwoSpheresScene creates two large checkered spheres touching at the origin
func newTwoSpheresScene(opts Options, random *rand.Rand) (*Scene, error) {
	checker := material.NewTexturedLambertian(newCheckerTexture())
	world := geometry.NewList(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)

	return NewScene("two-spheres", world, NewDefaultSky(), outdoorCamera(),
		resolveSampling(DefaultSamplingConfig(), opts.Sampling)), nil
}

// newTwoPerlinSpheresScene creates a noise-textured ground and sphere sharing one material
func newTwoPerlinSpheresScene(opts Options, random *rand.Rand) (*Scene, error) {
	noise := material.NewTexturedLambertian(material.NewNoiseTexture(material.NewPerlin(random), 2.0))
	world := geometry.NewList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, noise),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, noise),
	)

	return NewScene("two-perlin-spheres", world, NewDefaultSky(), outdoorCamera(),
		resolveSampling(DefaultSamplingConfig(), opts.Sampling)), nil
}

// newEarthScene creates a globe wrapped in the earth texture
func newEarthScene(opts Options, random *rand.Rand) (*Scene, error) {
	texture, err := loadEarthTexture(opts)
	if err != nil {
		return nil, err
	}

	world := geometry.NewList(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(texture)),
	)

	return NewScene("earth", world, NewDefaultSky(), outdoorCamera(),
		resolveSampling(DefaultSamplingConfig(), opts.Sampling)), nil
}

// loadEarthTexture reads the earth image from the texture directory
func loadEarthTexture(opts Options) (*material.ImageTexture, error) {
	return loaders.LoadImageTexture(filepath.Join(opts.TextureDir, EarthTextureFile), opts.TextureMaxSize)
}
