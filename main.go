package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/mpoquet/go-whitted-raytracer/pkg/loaders"
	"github.com/mpoquet/go-whitted-raytracer/pkg/renderer"
	"github.com/mpoquet/go-whitted-raytracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default', 'hexagon', 'cover' or 'obj'")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 400, "Image height in pixels")
	output := flag.String("out", "render.ppm", "Output PPM file")
	workers := flag.Int("workers", runtime.NumCPU(), "Number of render goroutines")
	objFile := flag.String("obj", "", "OBJ file to render (with -scene obj)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Three spheres on a checkered plane")
		fmt.Println("  hexagon - Hexagonal ring built from nested groups")
		fmt.Println("  cover   - Showcase with cubes, cylinders, cones and glass")
		fmt.Println("  obj     - Triangle mesh loaded from the file given with -obj")
		return
	}

	var world *scene.World
	var spec scene.CameraSpec

	switch *sceneType {
	case "default":
		world, spec = scene.NewDefaultScene()
	case "hexagon":
		world, spec = scene.NewHexagonScene()
	case "cover":
		world, spec = scene.NewCoverScene()
	case "obj":
		if *objFile == "" {
			log.Fatal("-scene obj requires an -obj file")
		}
		data, err := loaders.LoadOBJ(*objFile)
		if err != nil {
			log.Fatalf("Error loading mesh: %v", err)
		}
		if data.IgnoredLines > 0 {
			fmt.Printf("Ignored %d unrecognized lines in %s\n", data.IgnoredLines, *objFile)
		}
		world, spec = scene.NewMeshScene(data.ToGroup())
	default:
		fmt.Printf("Unknown scene type: %s. Using default scene.\n", *sceneType)
		world, spec = scene.NewDefaultScene()
	}

	camera := renderer.NewCamera(*width, *height, spec.FieldOfView)
	camera.SetTransform(spec.ViewTransform())
	camera.Logger = log.New(os.Stderr, "", log.LstdFlags)

	fmt.Printf("Rendering %dx%d with %d workers...\n", *width, *height, *workers)
	startTime := time.Now()
	canvas := camera.RenderParallel(world, *workers)
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	file, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Error creating file: %v", err)
	}
	defer file.Close()

	if err := canvas.WritePPM(file); err != nil {
		log.Fatalf("Error writing PPM: %v", err)
	}

	fmt.Printf("Render saved as %s\n", *output)
}
