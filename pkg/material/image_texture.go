package material

import (
	"github.com/df07/go-nextweek-pathtracer/pkg/core"
)

// ImageTexture provides color from a decoded 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < t.Width*t.Height {
		// Nothing to sample; cyan makes the gap visible
		return core.NewVec3(0, 1, 1)
	}

	// V=0 is bottom, V=1 is top (flip V for image coordinates where origin is top-left)
	x := int(uv.X * float64(t.Width))
	y := int((1.0-uv.Y)*float64(t.Height) - 0.001)

	// Clamp to image bounds
	x = max(0, min(t.Width-1, x))
	y = max(0, min(t.Height-1, y))

	return t.Pixels[y*t.Width+x]
}
