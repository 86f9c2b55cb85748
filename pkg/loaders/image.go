package loaders

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/webp"

	"github.com/df07/go-nextweek-pathtracer/pkg/core"
	"github.com/df07/go-nextweek-pathtracer/pkg/material"
)

// ErrEmptyImage is returned when a decoded image has no pixels
var ErrEmptyImage = errors.New("loaders: image has no pixels")

// decoder reads one image format
type decoder struct {
	format string
	decode func(io.Reader) (image.Image, error)
}

// decoders maps file extensions to their format. TGA has no magic number, so
// formats are picked by extension rather than by sniffing the header.
var decoders = map[string]decoder{
	".png":  {"png", png.Decode},
	".jpg":  {"jpeg", jpeg.Decode},
	".jpeg": {"jpeg", jpeg.Decode},
	".gif":  {"gif", gif.Decode},
	".bmp":  {"bmp", bmp.Decode},
	".webp": {"webp", webp.Decode},
	".tga":  {"tga", tga.Decode},
}

// ImageData contains loaded image data as Vec3 color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major, top row first, channels in [0,1]
	Format string     // Name of the decoder that read the file
}

// LoadImage loads an image file and converts it to Vec3 color array.
// PNG, JPEG, GIF, BMP, WebP and TGA are recognised by file extension; any
// other extension falls back to the registered decoders.
func LoadImage(filename string) (*ImageData, error) {
	return LoadImageScaled(filename, 0)
}

// LoadImageScaled loads an image and shrinks it so neither side exceeds maxDimension.
// A maxDimension of 0 keeps the original size.
func LoadImageScaled(filename string, maxDimension int) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loaders: open image %s: %w", filename, err)
	}
	defer file.Close()

	img, format, err := decodeImage(file, filename)
	if err != nil {
		return nil, fmt.Errorf("loaders: decode image %s: %w", filename, err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("loaders: %s: %w", filename, ErrEmptyImage)
	}

	data := FromImage(fitWithin(img, maxDimension))
	data.Format = format
	return data, nil
}

// decodeImage picks a decoder from the file extension
func decodeImage(r io.Reader, filename string) (image.Image, string, error) {
	if d, ok := decoders[strings.ToLower(filepath.Ext(filename))]; ok {
		img, err := d.decode(r)
		return img, d.format, err
	}
	return image.Decode(r)
}

// LoadImageTexture loads an image file as a texture for materials,
// downscaled so neither side exceeds maxDimension (0 keeps the original size)
func LoadImageTexture(filename string, maxDimension int) (*material.ImageTexture, error) {
	data, err := LoadImageScaled(filename, maxDimension)
	if err != nil {
		return nil, err
	}
	return data.Texture(), nil
}

// Texture wraps the pixels in an image texture
func (d *ImageData) Texture() *material.ImageTexture {
	return material.NewImageTexture(d.Width, d.Height, d.Pixels)
}

// FromImage converts any image to a Vec3 color array, ignoring alpha
func FromImage(img image.Image) *ImageData {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	// Normalize to 16 bits per channel with the origin at (0,0)
	rgba := image.NewRGBA64(image.Rect(0, 0, width, height))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	pixels := make([]core.Vec3, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := rgba.RGBA64At(x, y)
			pixels[y*width+x] = core.NewVec3(
				float64(c.R)/65535.0,
				float64(c.G)/65535.0,
				float64(c.B)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// fitWithin downsamples img so that its larger side is at most maxDimension
func fitWithin(img image.Image, maxDimension int) image.Image {
	bounds := img.Bounds()
	if maxDimension <= 0 || (bounds.Dx() <= maxDimension && bounds.Dy() <= maxDimension) {
		return img
	}

	width, height := maxDimension, maxDimension
	if bounds.Dx() >= bounds.Dy() {
		height = max(1, bounds.Dy()*maxDimension/bounds.Dx())
	} else {
		width = max(1, bounds.Dx()*maxDimension/bounds.Dy())
	}

	dst := image.NewRGBA64(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}
