package scene

import "github.com/df07/go-nextweek-pathtracer/pkg/core"

// Background supplies the radiance carried by rays that leave the scene
type Background interface {
	Color(ray core.Ray) core.Vec3
}

// SkyGradient blends linearly between two colors by the height of the ray direction
type SkyGradient struct {
	BottomColor core.Vec3 // Color for rays pointing straight down
	TopColor    core.Vec3 // Color for rays pointing straight up
}

// NewSkyGradient creates a vertical gradient background
func NewSkyGradient(bottom, top core.Vec3) *SkyGradient {
	return &SkyGradient{BottomColor: bottom, TopColor: top}
}

// NewDefaultSky returns the white to light blue sky used by the outdoor scenes
func NewDefaultSky() *SkyGradient {
	return NewSkyGradient(core.NewVec3(1.0, 1.0, 1.0), core.NewVec3(0.5, 0.7, 1.0))
}

// Color returns the gradient color for the ray's direction
func (g *SkyGradient) Color(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return g.BottomColor.Multiply(1.0 - t).Add(g.TopColor.Multiply(t))
}

// SolidColor is a constant background, black for scenes lit only by emitters
type SolidColor struct {
	Value core.Vec3
}

// NewSolidColor creates a constant background
func NewSolidColor(c core.Vec3) *SolidColor {
	return &SolidColor{Value: c}
}

// Color returns the constant color
func (s *SolidColor) Color(ray core.Ray) core.Vec3 {
	return s.Value
}
