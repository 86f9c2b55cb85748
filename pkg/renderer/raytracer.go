package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-nextweek-pathtracer/pkg/core"
	"github.com/df07/go-nextweek-pathtracer/pkg/integrator"
	"github.com/df07/go-nextweek-pathtracer/pkg/scene"
)

// progressSteps is how many progress lines a full render logs
const progressSteps = 10

// Raytracer handles the rendering process
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	config     scene.SamplingConfig
	seed       int64
	logger     core.Logger
}

// NewRaytracer creates a new raytracer using the scene's sampling configuration.
// Every pixel draws from its own generator derived from seed, so a render is
// reproducible for a given seed regardless of traversal order.
func NewRaytracer(s *scene.Scene, integ integrator.Integrator, seed int64, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		scene:      s,
		integrator: integ,
		config:     s.SamplingConfig,
		seed:       seed,
		logger:     logger,
	}
}

// RenderPixel estimates the average radiance of pixel (x, y), where y = 0 is the top row
func (rt *Raytracer) RenderPixel(x, y int) PixelStats {
	var stats PixelStats
	sampler := core.NewSeededSampler(core.PixelSeed(rt.seed, x, y))
	camera := rt.scene.Camera

	// The camera's t axis runs bottom to top
	row := rt.config.Height - 1 - y

	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		jitter := sampler.Get2D()
		s := (float64(x) + jitter.X) / float64(rt.config.Width)
		t := (float64(row) + jitter.Y) / float64(rt.config.Height)

		ray := camera.GetRay(s, t, sampler)
		stats.AddSample(rt.integrator.RayColor(ray, rt.scene, sampler))
	}

	return stats
}

// Render traces every pixel and returns the linear framebuffer.
// Cancelling ctx stops the render between scanlines.
func (rt *Raytracer) Render(ctx context.Context) (*Framebuffer, RenderStats, error) {
	if rt.config.Width <= 0 || rt.config.Height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("renderer: invalid resolution %dx%d", rt.config.Width, rt.config.Height)
	}
	if rt.config.SamplesPerPixel <= 0 {
		return nil, RenderStats{}, fmt.Errorf("renderer: samples per pixel must be positive, got %d", rt.config.SamplesPerPixel)
	}
	if rt.scene.Camera == nil {
		return nil, RenderStats{}, fmt.Errorf("renderer: scene %q has no camera", rt.scene.Name)
	}

	start := time.Now()
	fb := NewFramebuffer(rt.config.Width, rt.config.Height)
	stats := RenderStats{
		TotalPixels: rt.config.Width * rt.config.Height,
		MaxSamples:  rt.config.SamplesPerPixel,
	}

	rt.logger.Printf("Rendering %q at %dx%d with %d samples per pixel (max depth %d)",
		rt.scene.Name, rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel, rt.integrator.MaxDepth())

	nextReport := 1
	for y := 0; y < rt.config.Height; y++ {
		if err := ctx.Err(); err != nil {
			return nil, RenderStats{}, fmt.Errorf("renderer: render interrupted at row %d: %w", y, err)
		}

		for x := 0; x < rt.config.Width; x++ {
			pixel := rt.RenderPixel(x, y)
			color := pixel.GetColor()
			fb.Set(x, y, color)

			stats.TotalSamples += pixel.SampleCount
			if overflows(color) {
				stats.OverflowPixels++
			}
		}

		if (y+1)*progressSteps >= nextReport*rt.config.Height {
			rt.logger.Printf("Rendered %d/%d rows", y+1, rt.config.Height)
			for nextReport*rt.config.Height <= (y+1)*progressSteps {
				nextReport++
			}
		}
	}

	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	stats.AverageLuminance = fb.AverageLuminance()
	stats.Duration = time.Since(start)

	rt.logger.Printf("Render complete: %d samples in %v, average luminance %.4f",
		stats.TotalSamples, stats.Duration.Round(time.Millisecond), stats.AverageLuminance)
	if stats.OverflowPixels > 0 {
		rt.logger.Printf("%d pixels exceed 1.0 in at least one channel", stats.OverflowPixels)
	}

	return fb, stats, nil
}
