package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/df07/go-sphere-caster/pkg/config"
	"github.com/df07/go-sphere-caster/pkg/output"
	"github.com/df07/go-sphere-caster/pkg/publish"
	"github.com/df07/go-sphere-caster/pkg/renderer"
	"github.com/df07/go-sphere-caster/pkg/scene"
)

func main() {
	// Environment and .env provide the defaults, flags override them
	rootDir := os.Getenv("RAYCAST_ROOT_DIR")
	if rootDir == "" {
		rootDir = "."
	}
	cfg, err := config.Load(rootDir)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	sceneType := flag.String("scene", cfg.Scene, "Scene type: "+strings.Join(scene.Names(), ", "))
	width := flag.Int("width", cfg.Width, "Image width in pixels")
	height := flag.Int("height", cfg.Height, "Image height in pixels")
	fov := flag.Float64("fov", cfg.FOVDegrees, "Vertical field of view in degrees")
	outputPath := flag.String("output", cfg.Output, "PPM output file")
	pngPath := flag.String("png", cfg.PNGOutput, "Optional PNG output file")
	previewWidth := flag.Int("preview-width", cfg.PreviewWidth, "Downscale the PNG output to this width (0 = full size)")
	upload := flag.Bool("upload", cfg.UploadEnabled(), "Upload the rendered images to S3_BUCKET")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Sphere Raycaster")
		fmt.Println("Usage: raycaster [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, info := range scene.ListScenes() {
			fmt.Printf("  %-8s - %s\n", info.ID, info.Description)
		}
		fmt.Println()
		fmt.Println("Settings can also be provided through RAYCAST_* and S3_* variables or a .env file.")
		return
	}

	cfg.Scene = *sceneType
	cfg.Width = *width
	cfg.Height = *height
	cfg.FOVDegrees = *fov
	cfg.Output = *outputPath
	cfg.PNGOutput = *pngPath
	cfg.PreviewWidth = *previewWidth

	if err := run(context.Background(), cfg, *upload); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// createScene creates a built-in scene by name
func createScene(sceneType string) (*scene.Scene, error) {
	return scene.ByName(sceneType)
}

// run renders the configured scene, writes the outputs and optionally uploads them
func run(ctx context.Context, cfg config.Config, upload bool) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	selectedScene, err := createScene(cfg.Scene)
	if err != nil {
		return err
	}

	fmt.Printf("Using %s scene (%d spheres)...\n", cfg.Scene, selectedScene.GetPrimitiveCount())

	raytracer := renderer.NewRaytracer(selectedScene, cfg.CameraConfig(), renderer.NewDefaultLogger())
	fb, stats := raytracer.Render()
	fmt.Printf("Hit ratio: %.1f%% (%d background pixels)\n", stats.HitRatio()*100, stats.BackgroundPixels)

	if err := output.SavePPM(cfg.Output, fb); err != nil {
		return err
	}
	fmt.Printf("Render saved as %s\n", cfg.Output)

	if cfg.PNGOutput != "" {
		if err := output.SavePNG(cfg.PNGOutput, output.Preview(fb, cfg.PreviewWidth)); err != nil {
			return err
		}
		fmt.Printf("PNG saved as %s\n", cfg.PNGOutput)
	}

	if !upload {
		return nil
	}

	publisher, err := publish.NewS3Publisher(cfg, renderer.NewDefaultLogger())
	if err != nil {
		return err
	}
	return publishRender(ctx, publisher, cfg, fb)
}

// publishRender uploads the PPM, and the PNG when one was requested, under a timestamped name
func publishRender(ctx context.Context, publisher *publish.S3Publisher, cfg config.Config, fb *renderer.Framebuffer) error {
	timestamp := time.Now().Format("20060102_150405")

	ppmData, err := output.EncodePPM(fb)
	if err != nil {
		return err
	}
	name := fmt.Sprintf("%s_%s.ppm", cfg.Scene, timestamp)
	if _, err := publisher.Publish(ctx, name, ppmData, publish.ContentTypePPM); err != nil {
		return err
	}

	if cfg.PNGOutput != "" {
		pngData, err := output.EncodePNG(output.Preview(fb, cfg.PreviewWidth))
		if err != nil {
			return err
		}
		name = fmt.Sprintf("%s_%s.png", cfg.Scene, timestamp)
		if _, err := publisher.Publish(ctx, name, pngData, publish.ContentTypePNG); err != nil {
			return err
		}
	}

	return nil
}
