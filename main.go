package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/thommay/ray-trace-challenge/pkg/canvas"
	"github.com/thommay/ray-trace-challenge/pkg/renderer"
	"github.com/thommay/ray-trace-challenge/pkg/scene"
	"github.com/thommay/ray-trace-challenge/pkg/world"
)

func main() {
	// Parse command line flags
	sceneName := flag.String("scene", "figure", fmt.Sprintf("Scene to render: %s", strings.Join(scene.Names(), ", ")))
	width := flag.Int("width", 500, "Image width in pixels")
	height := flag.Int("height", 250, "Image height in pixels")
	depth := flag.Int("depth", world.DefaultRecursionDepth, "Maximum reflection/refraction bounces")
	parallel := flag.Bool("parallel", true, "Render rows across all CPUs")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Ray Trace Challenge")
		fmt.Println("Usage: ray-trace-challenge [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  figure  - Mirrored cone and cylinder figure on a reflective floor")
		fmt.Println("  glass   - Hollow glass sphere over a checkered floor")
		fmt.Println("  hexagon - Grouped hexagon of spheres and cylinders")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.ppm and .png")
		return
	}

	if err := run(*sceneName, *width, *height, *depth, *parallel); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(sceneName string, width, height, depth int, parallel bool) error {
	builder, err := scene.Lookup(sceneName)
	if err != nil {
		return err
	}

	fmt.Printf("Rendering %q at %dx%d...\n", sceneName, width, height)
	w, camera, err := builder(width, height)
	if err != nil {
		return fmt.Errorf("building scene: %w", err)
	}

	image := canvas.NewCanvas(width, height)
	startTime := time.Now()
	if parallel {
		renderer.RenderParallel(camera, w, depth, 0, image)
	} else {
		renderer.Render(camera, w, depth, image)
	}
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	outputDir := filepath.Join("output", sceneName)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	ppmName := filepath.Join(outputDir, fmt.Sprintf("render_%s.ppm", timestamp))
	if err := os.WriteFile(ppmName, []byte(image.PPM()), 0644); err != nil {
		return fmt.Errorf("saving PPM: %w", err)
	}
	fmt.Printf("Render saved as %s\n", ppmName)

	pngName := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	file, err := os.Create(pngName)
	if err != nil {
		return fmt.Errorf("creating PNG file: %w", err)
	}
	defer file.Close()
	if err := image.WritePNG(file); err != nil {
		return fmt.Errorf("saving PNG: %w", err)
	}
	fmt.Printf("Render saved as %s\n", pngName)
	return nil
}
