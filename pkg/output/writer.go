package output

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/nfnt/resize"

	"github.com/df07/go-nextweek-pathtracer/pkg/renderer"
)

// Format is an output image encoding
type Format string

const (
	FormatPPM  Format = "ppm"
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
)

// ErrUnknownFormat is returned for an unsupported output format name
var ErrUnknownFormat = errors.New("output: unknown format")

// ParseFormat resolves a format name such as "png" or ".webp"
func ParseFormat(name string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(name), ".") {
	case "ppm", "":
		return FormatPPM, nil
	case "png":
		return FormatPNG, nil
	case "webp":
		return FormatWebP, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, name)
	}
}

// Extension returns the file extension for the format, including the dot
func (f Format) Extension() string {
	return "." + string(f)
}

// ContentType returns the MIME type of the encoded image
func (f Format) ContentType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatWebP:
		return "image/webp"
	default:
		return "image/x-portable-pixmap"
	}
}

// Encode writes the framebuffer in the given format. Clamping only affects
// PPM; raster formats always clamp.
func Encode(w io.Writer, fb *renderer.Framebuffer, format Format, clamp bool) error {
	switch format {
	case FormatPPM:
		return WritePPM(w, fb, clamp)
	case FormatPNG, FormatWebP:
		return encodeImage(w, ToImage(fb), format)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// encodeImage writes an 8-bit image as PNG or WebP
func encodeImage(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("output: png encode: %w", err)
		}
	case FormatWebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("output: webp encode: %w", err)
		}
	default:
		return fmt.Errorf("%w %q for raster image", ErrUnknownFormat, format)
	}
	return nil
}

// WriteFile encodes the framebuffer to path, creating parent directories
func WriteFile(path string, fb *renderer.Framebuffer, format Format, clamp bool) error {
	return writeFile(path, func(w io.Writer) error {
		return Encode(w, fb, format, clamp)
	})
}

// Thumbnail returns a downscaled copy of the framebuffer that fits within
// maxSize x maxSize, keeping the aspect ratio
func Thumbnail(fb *renderer.Framebuffer, maxSize int) image.Image {
	return resize.Thumbnail(uint(maxSize), uint(maxSize), ToImage(fb), resize.Bilinear)
}

// WriteThumbnail writes a thumbnail of the framebuffer to path. PPM thumbnails
// are stored as PNG.
func WriteThumbnail(path string, fb *renderer.Framebuffer, maxSize int, format Format) error {
	if maxSize <= 0 {
		return fmt.Errorf("output: thumbnail size must be positive, got %d", maxSize)
	}
	if format == FormatPPM {
		format = FormatPNG
	}
	thumb := Thumbnail(fb, maxSize)
	return writeFile(path, func(w io.Writer) error {
		return encodeImage(w, thumb, format)
	})
}

// ThumbnailPath derives the thumbnail file name for an output path
func ThumbnailPath(path string, format Format) string {
	if format == FormatPPM {
		format = FormatPNG
	}
	base := strings.TrimSuffix(path, filepath.Ext(path))
	return base + "_thumb" + format.Extension()
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("output: create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("output: close %s: %w", path, cerr)
		}
	}()

	return write(f)
}
