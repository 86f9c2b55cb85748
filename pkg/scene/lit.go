package scene

import (
	"math/rand"

	"github.com/df07/go-nextweek-pathtracer/pkg/core"
	"github.com/df07/go-nextweek-pathtracer/pkg/geometry"
	"github.com/df07/go-nextweek-pathtracer/pkg/material"
)

// cornellSize is the edge length of the Cornell box
const cornellSize = 555.0

// newBlackBackground returns the background for scenes lit only by emitters
func newBlackBackground() *SolidColor {
	return NewSolidColor(core.NewVec3(0, 0, 0))
}

// cornellSampling returns the square default resolution for the box scenes
func cornellSampling(override SamplingConfig) SamplingConfig {
	defaults := DefaultSamplingConfig()
	defaults.Width = 600
	defaults.Height = 600
	return resolveSampling(defaults, override)
}

// cornellCamera looks into the open side of the box
func cornellCamera(center core.Vec3) geometry.CameraConfig {
	return geometry.CameraConfig{
		Center:        center,
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40.0,
		Aperture:      0.0,
		FocusDistance: 10.0,
		Time0:         0.0,
		Time1:         1.0,
	}
}

// newSimpleLightScene creates two noise spheres lit by a glowing sphere and a rectangle
func newSimpleLightScene(opts Options, random *rand.Rand) (*Scene, error) {
	noise := material.NewTexturedLambertian(material.NewNoiseTexture(material.NewPerlin(random), 4.0))
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	world := geometry.NewList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, noise),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, noise),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
		geometry.NewXYRect(3, 5, 1, 3, -2, light),
	)

	camera := geometry.CameraConfig{
		Center:        core.NewVec3(26, 3, 6),
		LookAt:        core.NewVec3(0, 2, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		FocusDistance: 10.0,
		Time0:         0.0,
		Time1:         1.0,
	}

	return NewScene("simple-light", world, newBlackBackground(), camera,
		resolveSampling(DefaultSamplingConfig(), opts.Sampling)), nil
}

// cornellWalls builds the five walls of the box around a ceiling light.
// The walls facing the camera are flipped so their normals point inward.
func cornellWalls(lightRect *geometry.AxisAlignedRect) *geometry.List {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	return geometry.NewList(
		geometry.NewFlipNormals(geometry.NewYZRect(0, cornellSize, 0, cornellSize, cornellSize, green)),
		geometry.NewYZRect(0, cornellSize, 0, cornellSize, 0, red),
		lightRect,
		geometry.NewFlipNormals(geometry.NewXZRect(0, cornellSize, 0, cornellSize, cornellSize, white)),
		geometry.NewXZRect(0, cornellSize, 0, cornellSize, 0, white),
		geometry.NewFlipNormals(geometry.NewXYRect(0, cornellSize, 0, cornellSize, cornellSize, white)),
	)
}

// cornellBlocks returns the short and tall boxes, rotated and placed on the floor
func cornellBlocks(mat material.Material) (short, tall geometry.Shape) {
	short = geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), mat), -18),
		core.NewVec3(130, 0, 65),
	)
	tall = geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), mat), 15),
		core.NewVec3(265, 0, 295),
	)
	return short, tall
}

// newCornellBoxScene creates the classic Cornell box with two white blocks
func newCornellBoxScene(opts Options, random *rand.Rand) (*Scene, error) {
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))
	world := cornellWalls(geometry.NewXZRect(213, 343, 227, 332, cornellSize-1, light))

	short, tall := cornellBlocks(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
	world.Add(short, tall)

	return NewScene("cornell-box", world, newBlackBackground(),
		cornellCamera(core.NewVec3(278, 278, -800)), cornellSampling(opts.Sampling)), nil
}

// newCornellSmokeScene replaces the blocks with white smoke and black fog under a wide light
func newCornellSmokeScene(opts Options, random *rand.Rand) (*Scene, error) {
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	world := cornellWalls(geometry.NewXZRect(113, 443, 127, 432, cornellSize-1, light))

	short, tall := cornellBlocks(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
	world.Add(
		geometry.NewConstantMedium(short, 0.01, material.NewConstantTexture(core.NewVec3(1, 1, 1))),
		geometry.NewConstantMedium(tall, 0.01, material.NewConstantTexture(core.NewVec3(0, 0, 0))),
	)

	return NewScene("cornell-smoke", world, newBlackBackground(),
		cornellCamera(core.NewVec3(278, 278, -800)), cornellSampling(opts.Sampling)), nil
}

// newFinalScene combines every primitive, material and texture in one scene
func newFinalScene(opts Options, random *rand.Rand) (*Scene, error) {
	earth, err := loadEarthTexture(opts)
	if err != nil {
		return nil, err
	}

	world := geometry.NewList()

	// Floor of boxes with random heights
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	const boxesPerSide = 20
	floor := geometry.NewList()
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			w := 100.0
			x0 := -1000 + float64(i)*w
			z0 := -1000 + float64(j)*w
			y1 := 100 * (random.Float64() + 0.01)
			floor.Add(geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}
	world.Add(floor)

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	world.Add(geometry.NewXZRect(123, 423, 147, 412, 554, light))

	center := core.NewVec3(400, 400, 200)
	world.Add(geometry.NewMovingSphere(center, center.Add(core.NewVec3(30, 0, 0)), 0, 1, 50,
		material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 10.0)))

	// Glass ball filled with blue subsurface fog
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	world.Add(boundary)
	world.Add(geometry.NewConstantMedium(boundary, 0.2, material.NewConstantTexture(core.NewVec3(0.2, 0.4, 0.9))))

	// Thin mist over the whole scene
	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	world.Add(geometry.NewConstantMedium(mist, 0.0001, material.NewConstantTexture(core.NewVec3(1, 1, 1))))

	world.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(earth)))
	world.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80,
		material.NewTexturedLambertian(material.NewNoiseTexture(material.NewPerlin(random), 0.1))))

	// Cluster of small spheres in a rotated cube
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	cluster := geometry.NewList()
	for i := 0; i < 1000; i++ {
		p := core.NewVec3(165*random.Float64(), 165*random.Float64(), 165*random.Float64())
		cluster.Add(geometry.NewSphere(p, 10, white))
	}
	world.Add(geometry.NewTranslate(geometry.NewRotateY(cluster, 15), core.NewVec3(-100, 270, 395)))

	return NewScene("final", world, newBlackBackground(),
		cornellCamera(core.NewVec3(478, 278, -600)), cornellSampling(opts.Sampling)), nil
}
