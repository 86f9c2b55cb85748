package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-nextweek-pathtracer/pkg/renderer"
)

// WritePPM writes the framebuffer as a plain-text P3 image: a header of
// "P3", "<width> <height>" and "255" on separate lines, then one "r g b"
// line per pixel from the top scanline down, left to right.
func WritePPM(w io.Writer, fb *renderer.Framebuffer, clamp bool) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return fmt.Errorf("output: write ppm header: %w", err)
	}

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := EncodeColor(fb.At(x, y), clamp)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return fmt.Errorf("output: write ppm pixel (%d,%d): %w", x, y, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("output: flush ppm: %w", err)
	}
	return nil
}
