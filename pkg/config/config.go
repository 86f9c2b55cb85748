package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a resolved configuration cannot be rendered
var ErrInvalid = errors.New("config: invalid")

// Default render settings
const (
	DefaultScene           = "two-perlin-spheres"
	DefaultWidth           = 1200
	DefaultHeight          = 800
	DefaultSamplesPerPixel = 140
	DefaultMaxDepth        = 50
	DefaultFormat          = "ppm"
	DefaultLogLevel        = "info"
)

// Config holds all render and output settings.
// Zero values mean "use the scene's or the built-in default".
type Config struct {
	// Render settings
	Scene           string `toml:"scene" yaml:"scene" json:"scene"`
	Width           int    `toml:"width" yaml:"width" json:"width"`
	Height          int    `toml:"height" yaml:"height" json:"height"`
	SamplesPerPixel int    `toml:"samples_per_pixel" yaml:"samples_per_pixel" json:"samples_per_pixel"`
	MaxDepth        int    `toml:"max_depth" yaml:"max_depth" json:"max_depth"`
	Seed            int64  `toml:"seed" yaml:"seed" json:"seed"`
	TextureDir      string `toml:"texture_dir" yaml:"texture_dir" json:"texture_dir"`
	TextureMaxSize  int    `toml:"texture_max_size" yaml:"texture_max_size" json:"texture_max_size"` // 0 loads textures at full size

	// Output settings
	Output        string `toml:"output" yaml:"output" json:"output"` // Empty writes PPM to stdout
	Format        string `toml:"format" yaml:"format" json:"format"` // ppm, png or webp
	ClampColors   bool   `toml:"clamp_colors" yaml:"clamp_colors" json:"clamp_colors"`
	ThumbnailSize int    `toml:"thumbnail_size" yaml:"thumbnail_size" json:"thumbnail_size"` // 0 disables thumbnails

	LogLevel string `toml:"log_level" yaml:"log_level" json:"log_level"`

	Upload Upload `toml:"upload" yaml:"upload" json:"upload"`
}

// Upload configures publishing finished renders to S3-compatible storage
type Upload struct {
	Bucket   string `toml:"bucket" yaml:"bucket" json:"bucket"` // Empty disables uploads
	Prefix   string `toml:"prefix" yaml:"prefix" json:"prefix"`
	Endpoint string `toml:"endpoint" yaml:"endpoint" json:"endpoint"`
	Region   string `toml:"region" yaml:"region" json:"region"`
	EnvFile  string `toml:"env_file" yaml:"env_file" json:"env_file"` // Optional .env holding credentials
}

// Enabled reports whether an upload target is configured
func (u Upload) Enabled() bool {
	return u.Bucket != ""
}

// Load reads a TOML, YAML or JSON config file, picked by extension.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".json":
		err = json.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("%w: unsupported config format %q for %s", ErrInvalid, ext, path)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings
type Flags struct {
	Scene           string
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Seed            int64
	SeedSet         bool // Seed was given explicitly, so 0 is meaningful
	Output          string
	Format          string
	Clamp           bool
	ThumbnailSize   int
	TextureDir      string
	TextureMaxSize  int
	LogLevel        string
	UploadBucket    string
}

// Resolve applies CLI flags on top of the file values and fills defaults.
// CLI flags take priority when non-zero/non-empty. Width, height, samples and
// depth stay zero when unset so the scene can supply its own defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.SamplesPerPixel > 0 {
		c.SamplesPerPixel = flags.SamplesPerPixel
	}
	if flags.MaxDepth > 0 {
		c.MaxDepth = flags.MaxDepth
	}
	if flags.SeedSet {
		c.Seed = flags.Seed
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Clamp {
		c.ClampColors = true
	}
	if flags.ThumbnailSize > 0 {
		c.ThumbnailSize = flags.ThumbnailSize
	}
	if flags.TextureDir != "" {
		c.TextureDir = flags.TextureDir
	}
	if flags.TextureMaxSize > 0 {
		c.TextureMaxSize = flags.TextureMaxSize
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	if flags.UploadBucket != "" {
		c.Upload.Bucket = flags.UploadBucket
	}

	if c.Scene == "" {
		c.Scene = DefaultScene
	}
	if c.Format == "" {
		// Infer from the output extension, otherwise plain PPM
		if ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(c.Output)), "."); ext != "" {
			c.Format = ext
		} else {
			c.Format = DefaultFormat
		}
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.TextureDir == "" {
		c.TextureDir = "textures"
	}
	if c.Upload.Region == "" {
		c.Upload.Region = "us-east-1"
	}
}

// Validate checks the resolved configuration
func (c *Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: resolution %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.SamplesPerPixel < 0 {
		return fmt.Errorf("%w: samples_per_pixel %d", ErrInvalid, c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth %d", ErrInvalid, c.MaxDepth)
	}
	if c.TextureMaxSize < 0 {
		return fmt.Errorf("%w: texture_max_size %d", ErrInvalid, c.TextureMaxSize)
	}
	if c.ThumbnailSize < 0 {
		return fmt.Errorf("%w: thumbnail_size %d", ErrInvalid, c.ThumbnailSize)
	}
	switch c.Format {
	case "ppm", "png", "webp":
	default:
		return fmt.Errorf("%w: format %q (want ppm, png or webp)", ErrInvalid, c.Format)
	}
	if c.Format != "ppm" && c.Output == "" {
		return fmt.Errorf("%w: format %q needs an output file", ErrInvalid, c.Format)
	}
	if c.ThumbnailSize > 0 && c.Output == "" {
		return fmt.Errorf("%w: thumbnails need an output file", ErrInvalid)
	}
	if c.Upload.Enabled() && c.Output == "" {
		return fmt.Errorf("%w: uploads need an output file", ErrInvalid)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLogLevel maps a level name such as "debug" or "WARN" to a slog level
func ParseLogLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log_level %q", ErrInvalid, name)
	}
	return level, nil
}
