package output

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-nextweek-pathtracer/pkg/core"
	"github.com/df07/go-nextweek-pathtracer/pkg/renderer"
)

// EncodeChannel gamma-encodes one linear channel as int(255.99 * sqrt(v)).
//
// Without clamping, radiance above 1 produces values above 255 and is written
// out as-is. Negative and NaN inputs always encode as 0.
func EncodeChannel(v float64, clamp bool) int {
	if !(v > 0) {
		return 0
	}
	if clamp && v > 1 {
		v = 1
	}
	encoded := 255.99 * math.Sqrt(v)
	if encoded > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(encoded)
}

// EncodeColor gamma-encodes all three channels of c
func EncodeColor(c core.Vec3, clamp bool) (r, g, b int) {
	return EncodeChannel(c.X, clamp), EncodeChannel(c.Y, clamp), EncodeChannel(c.Z, clamp)
}

// ToImage converts a linear framebuffer to an 8-bit image. Raster formats
// cannot hold values past 255, so channels are always clamped here.
func ToImage(fb *renderer.Framebuffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := EncodeColor(fb.At(x, y), true)
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255})
		}
	}
	return img
}
