package renderer

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/mpoquet/go-whitted-raytracer/pkg/core"
)

// maxPPMLineLength is the longest line the PPM plain format allows.
const maxPPMLineLength = 70

// Canvas is a rectangular grid of colors, addressed with (0,0) at the
// top-left corner.
type Canvas struct {
	Width  int
	Height int
	pixels []core.Tuple
}

// NewCanvas creates a canvas of the given dimensions with every pixel black.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Tuple, width*height),
	}
}

// WritePixel sets the color at (x, y). Writes outside the canvas are ignored.
func (c *Canvas) WritePixel(x, y int, color core.Tuple) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	c.pixels[y*c.Width+x] = color
}

// PixelAt returns the color at (x, y).
func (c *Canvas) PixelAt(x, y int) core.Tuple {
	return c.pixels[y*c.Width+x]
}

// clampComponent scales a color component to the 0-255 range.
func clampComponent(v float64) int {
	scaled := int(math.Round(v * 255))
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return scaled
}

// ToPPM serializes the canvas in the plain PPM (P3) format. Pixel rows are
// wrapped so that no line exceeds 70 characters, and the output ends with a
// newline.
func (c *Canvas) ToPPM() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "P3\n%d %d\n255\n", c.Width, c.Height)

	for y := 0; y < c.Height; y++ {
		lineLength := 0
		for x := 0; x < c.Width; x++ {
			pixel := c.PixelAt(x, y)
			for _, v := range []float64{pixel.X, pixel.Y, pixel.Z} {
				value := fmt.Sprintf("%d", clampComponent(v))
				if lineLength == 0 {
					sb.WriteString(value)
					lineLength = len(value)
				} else if lineLength+1+len(value) <= maxPPMLineLength {
					sb.WriteString(" ")
					sb.WriteString(value)
					lineLength += 1 + len(value)
				} else {
					sb.WriteString("\n")
					sb.WriteString(value)
					lineLength = len(value)
				}
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// WritePPM writes the canvas to w in the plain PPM format.
func (c *Canvas) WritePPM(w io.Writer) error {
	_, err := io.WriteString(w, c.ToPPM())
	return err
}
