package material

import (
	"math"

	"github.com/df07/go-nextweek-pathtracer/pkg/core"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// ConstantTexture provides a uniform color
type ConstantTexture struct {
	Color core.Vec3
}

// NewConstantTexture creates a new constant color texture
func NewConstantTexture(color core.Vec3) *ConstantTexture {
	return &ConstantTexture{Color: color}
}

// Evaluate returns the constant color regardless of UV or position
func (c *ConstantTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return c.Color
}

// CheckerTexture alternates between two textures in a 3D pattern driven only
// by the world position, so it does not depend on the surface parametrization.
type CheckerTexture struct {
	Even      Texture
	Odd       Texture
	Frequency float64
}

// NewCheckerTexture creates a checker pattern with the classic frequency of 10
func NewCheckerTexture(even, odd Texture) *CheckerTexture {
	return &CheckerTexture{Even: even, Odd: odd, Frequency: 10}
}

// Evaluate picks a child texture from the sign of sin(fx)·sin(fy)·sin(fz)
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	f := c.Frequency
	sines := math.Sin(f*point.X) * math.Sin(f*point.Y) * math.Sin(f*point.Z)
	if sines < 0 {
		return c.Odd.Evaluate(uv, point)
	}
	return c.Even.Evaluate(uv, point)
}

// NoiseTexture is a marble-like pattern built from turbulent Perlin noise
type NoiseTexture struct {
	Noise *Perlin
	Scale float64
}

// NewNoiseTexture creates a noise texture sampling noise at scale·point
func NewNoiseTexture(noise *Perlin, scale float64) *NoiseTexture {
	return &NoiseTexture{Noise: noise, Scale: scale}
}

// Evaluate returns a grey level 0.5·(1 + sin(scale·z + 10·turb(p)))
func (n *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	level := 0.5 * (1 + math.Sin(n.Scale*point.Z+10*n.Noise.Turbulence(point, 7)))
	return core.NewVec3(level, level, level)
}
