package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"quat-renderer/internal/anim"
	"quat-renderer/internal/batch"
	"quat-renderer/internal/config"
	"quat-renderer/internal/mathutil"
	"quat-renderer/internal/mesh"
	"quat-renderer/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	frames := flag.Int("frames", 0, "Number of frames (default: 48)")
	size := flag.Int("size", 0, "Output image size in pixels (default: 256)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	format := flag.String("format", "", "Frame format: webp or tga (default: webp)")
	texPath := flag.String("texture", "", "Texture (TGA, PNG or JPEG) mapped on each cube face")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir: *outputDir,
		Texture:   *texPath,
		Frames:    *frames,
		Size:      *size,
		Workers:   *workers,
		Format:    *format,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	track, err := cfg.Track()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building track: %v\n", err)
		os.Exit(1)
	}
	poses := track.Frames(cfg.Frames)

	tex, err := loadTexture(cfg.Texture)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using checker texture\n", err)
		tex = defaultTexture()
	}

	fmt.Println("Quaternion SLERP cube renderer")
	fmt.Printf("Keyframes: %d, Frames: %d, Workers: %d\n", track.Len(), len(poses), cfg.Workers)
	fmt.Printf("Max step: %.2f°\n", mathutil.Rad2Deg(anim.MaxStep(poses)))
	fmt.Printf("Output: %s (%s)\n", cfg.OutputDir, cfg.Format)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir:   cfg.OutputDir,
		Mesh:        mesh.Cube(cfg.CubeSize),
		Texture:     tex,
		RenderSize:  cfg.RenderSize,
		Supersample: cfg.Supersample,
		Format:      cfg.Format,
		Workers:     cfg.Workers,
		Progress:    os.Stdout,
	}, poses)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	var failed []batch.Result
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", len(results)-len(failed), len(results))

	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		for _, r := range failed[:min(len(failed), 20)] {
			fmt.Printf("  frame %d: %s\n", r.Frame, r.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, poses, cfg.Format); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if len(failed) > 0 {
		os.Exit(1)
	}
}

func loadTexture(path string) (*image.NRGBA, error) {
	if path == "" {
		return defaultTexture(), nil
	}
	return texture.Load(path)
}

func defaultTexture() *image.NRGBA {
	return texture.Checker(64, 4, color.NRGBA{235, 235, 225, 255}, color.NRGBA{60, 110, 190, 255})
}
