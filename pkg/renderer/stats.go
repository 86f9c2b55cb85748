package renderer

import (
	"time"

	"github.com/df07/go-nextweek-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	TotalSamples     int           // Total number of samples taken
	AverageSamples   float64       // Average samples per pixel
	MaxSamples       int           // Samples requested per pixel
	AverageLuminance float64       // Mean luminance of the linear framebuffer
	OverflowPixels   int           // Pixels with a channel above 1.0
	Duration         time.Duration // Wall clock time spent rendering
}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// overflows reports whether any channel of c exceeds 1
func overflows(c core.Vec3) bool {
	return c.X > 1 || c.Y > 1 || c.Z > 1
}
