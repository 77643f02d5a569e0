// Package renderer turns a world into an image: the camera maps canvas
// pixels to rays, and the canvas collects the resulting colors for PPM
// output.
package renderer

import (
	"math"
	"runtime"
	"sync"

	"github.com/mpoquet/go-whitted-raytracer/pkg/core"
	"github.com/mpoquet/go-whitted-raytracer/pkg/integrator"
	"github.com/mpoquet/go-whitted-raytracer/pkg/scene"
)

// Camera maps a rectangular canvas onto a view of the world. The canvas
// sits one unit in front of the camera, and the field of view spans its
// larger dimension.
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64
	PixelSize   float64

	transform  core.Matrix
	inverse    core.Matrix
	halfWidth  float64
	halfHeight float64

	Logger core.Logger
}

// NewCamera creates a camera for a canvas of hsize by vsize pixels with the
// given field of view in radians, looking down the -z axis.
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		Logger:      &core.SilentLogger{},
	}
	c.SetTransform(core.Identity(4))

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.PixelSize = (c.halfWidth * 2) / float64(hsize)

	return c
}

// Transform returns the camera's view transform.
func (c *Camera) Transform() core.Matrix {
	return c.transform
}

// SetTransform sets the view transform, caching its inverse. It panics if
// the matrix is not invertible.
func (c *Camera) SetTransform(m core.Matrix) {
	inverse, err := m.Inverse()
	if err != nil {
		panic("camera transform is not invertible")
	}
	c.transform = m
	c.inverse = inverse
}

// RayForPixel returns the world-space ray through the center of the canvas
// pixel at (px, py).
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.PixelSize
	yOffset := (float64(py) + 0.5) * c.PixelSize

	// The canvas faces the camera, so world x increases to the left.
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}

// Render traces every pixel of the canvas through the world. Rows are
// rendered in parallel, one goroutine per CPU.
func (c *Camera) Render(world *scene.World) *Canvas {
	return c.RenderParallel(world, runtime.NumCPU())
}

// RenderParallel renders with the given number of worker goroutines.
func (c *Camera) RenderParallel(world *scene.World, numWorkers int) *Canvas {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	canvas := NewCanvas(c.HSize, c.VSize)
	wh := integrator.NewWhitted(world)

	rows := make(chan int, c.VSize)
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				for x := 0; x < c.HSize; x++ {
					ray := c.RayForPixel(x, y)
					color := wh.ColorAt(ray, integrator.DefaultMaxDepth)
					canvas.WritePixel(x, y, color)
				}
			}
		}()
	}

	reportEvery := c.VSize / 10
	if reportEvery == 0 {
		reportEvery = 1
	}
	for y := 0; y < c.VSize; y++ {
		rows <- y
		if (y+1)%reportEvery == 0 {
			c.Logger.Printf("Queued %d/%d rows\n", y+1, c.VSize)
		}
	}
	close(rows)
	wg.Wait()

	return canvas
}
