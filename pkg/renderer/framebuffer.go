package renderer

import "github.com/df07/go-nextweek-pathtracer/pkg/core"

// Framebuffer holds the linear (not gamma-encoded) average radiance of every pixel.
// Row 0 is the top scanline.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer creates a black framebuffer of the given size
func NewFramebuffer(width, height int) *Framebuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color of pixel (x, y)
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.Pixels[y*fb.Width+x]
}

// Set stores the color of pixel (x, y)
func (fb *Framebuffer) Set(x, y int, c core.Vec3) {
	fb.Pixels[y*fb.Width+x] = c
}

// AverageLuminance returns the mean luminance over all pixels
func (fb *Framebuffer) AverageLuminance() float64 {
	if len(fb.Pixels) == 0 {
		return 0
	}
	total := 0.0
	for _, c := range fb.Pixels {
		total += c.Luminance()
	}
	return total / float64(len(fb.Pixels))
}
