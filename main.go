package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/df07/go-nextweek-pathtracer/pkg/config"
	"github.com/df07/go-nextweek-pathtracer/pkg/core"
	"github.com/df07/go-nextweek-pathtracer/pkg/integrator"
	"github.com/df07/go-nextweek-pathtracer/pkg/output"
	"github.com/df07/go-nextweek-pathtracer/pkg/publish"
	"github.com/df07/go-nextweek-pathtracer/pkg/renderer"
	"github.com/df07/go-nextweek-pathtracer/pkg/scene"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run parses arguments, renders the configured scene and writes the result.
// With no output file the image is written to stdout as PPM.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "Config file (.toml, .yaml or .json)")
	list := fs.Bool("list", false, "List the built-in scenes and exit")
	var flags config.Flags
	fs.StringVar(&flags.Scene, "scene", "", "Scene to render (default "+config.DefaultScene+")")
	fs.IntVar(&flags.Width, "width", 0, "Image width in pixels (default from scene)")
	fs.IntVar(&flags.Height, "height", 0, "Image height in pixels (default from scene)")
	fs.IntVar(&flags.SamplesPerPixel, "samples", 0, "Samples per pixel (default from scene)")
	fs.IntVar(&flags.MaxDepth, "depth", 0, "Maximum bounces per path (default 50)")
	fs.Int64Var(&flags.Seed, "seed", 0, "Random seed for scene layout and sampling")
	fs.StringVar(&flags.Output, "output", "", "Output file; empty writes PPM to stdout")
	fs.StringVar(&flags.Format, "format", "", "Output format: ppm, png or webp (default from output extension)")
	fs.BoolVar(&flags.Clamp, "clamp", false, "Clamp PPM channels to 255 instead of letting bright pixels overflow")
	fs.IntVar(&flags.ThumbnailSize, "thumbnail", 0, "Also write a thumbnail no larger than this many pixels")
	fs.StringVar(&flags.TextureDir, "textures", "", "Directory holding image textures (default textures)")
	fs.IntVar(&flags.TextureMaxSize, "texture-max-size", 0, "Downscale image textures so neither side exceeds this many pixels")
	fs.StringVar(&flags.LogLevel, "log-level", "", "Log level: debug, info, warn or error")
	fs.StringVar(&flags.UploadBucket, "upload-bucket", "", "Upload the render to this S3 bucket")

	if err := fs.Parse(args); err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			flags.SeedSet = true
		}
	})

	if *list {
		return listScenes(stdout)
	}

	var cfg config.Config
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.Resolve(flags)
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	return render(ctx, cfg, log, stdout)
}

// render builds the scene, traces it and hands the image to the configured outputs
func render(ctx context.Context, cfg config.Config, log *slog.Logger, stdout io.Writer) error {
	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	s, err := scene.New(cfg.Scene, scene.Options{
		Seed:           cfg.Seed,
		TextureDir:     cfg.TextureDir,
		TextureMaxSize: cfg.TextureMaxSize,
		Sampling: scene.SamplingConfig{
			Width:           cfg.Width,
			Height:          cfg.Height,
			SamplesPerPixel: cfg.SamplesPerPixel,
			MaxDepth:        cfg.MaxDepth,
		},
	})
	if err != nil {
		return err
	}
	log.Info("scene ready", "scene", s.Name, "primitives", s.GetPrimitiveCount(),
		"width", s.SamplingConfig.Width, "height", s.SamplingConfig.Height)

	rt := renderer.NewRaytracer(s,
		integrator.NewPathTracingIntegrator(s.SamplingConfig.MaxDepth),
		cfg.Seed,
		core.NewSlogLogger(log, slog.LevelDebug))

	fb, stats, err := rt.Render(ctx)
	if err != nil {
		return err
	}
	log.Info("render finished",
		"pixels", stats.TotalPixels,
		"samples", stats.TotalSamples,
		"duration", stats.Duration,
		"avg_luminance", stats.AverageLuminance,
		"overflow_pixels", stats.OverflowPixels)

	if cfg.Output == "" {
		return output.WritePPM(stdout, fb, cfg.ClampColors)
	}

	if err := output.WriteFile(cfg.Output, fb, format, cfg.ClampColors); err != nil {
		return err
	}
	log.Info("render saved", "path", cfg.Output, "format", string(format))

	files := []string{cfg.Output}
	contentTypes := []string{format.ContentType()}

	if cfg.ThumbnailSize > 0 {
		thumbPath := output.ThumbnailPath(cfg.Output, format)
		if err := output.WriteThumbnail(thumbPath, fb, cfg.ThumbnailSize, format); err != nil {
			return err
		}
		log.Info("thumbnail saved", "path", thumbPath, "size", cfg.ThumbnailSize)

		thumbFormat := format
		if thumbFormat == output.FormatPPM {
			thumbFormat = output.FormatPNG
		}
		files = append(files, thumbPath)
		contentTypes = append(contentTypes, thumbFormat.ContentType())
	}

	if !cfg.Upload.Enabled() {
		return nil
	}

	publisher, err := publish.New(cfg.Upload, core.NewSlogLogger(log, slog.LevelInfo))
	if err != nil {
		return err
	}
	for i, file := range files {
		if _, err := publisher.UploadFile(ctx, file, s.Name, contentTypes[i]); err != nil {
			return err
		}
	}
	return nil
}

// listScenes prints the scene catalogue grouped by category
func listScenes(w io.Writer) error {
	for _, group := range scene.GroupScenes() {
		if _, err := fmt.Fprintf(w, "%s:\n", group.Name); err != nil {
			return err
		}
		for _, info := range group.Scenes {
			if _, err := fmt.Fprintf(w, "  %-20s %s\n", info.ID, info.Description); err != nil {
				return err
			}
		}
	}
	return nil
}
