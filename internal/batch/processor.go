package batch

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"quat-renderer/internal/mathutil"
	"quat-renderer/internal/mesh"
	"quat-renderer/internal/postprocess"
	"quat-renderer/internal/raster"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Mesh        mesh.Mesh
	Texture     *image.NRGBA // read-only, shared by all workers
	RenderSize  int
	Supersample int
	Format      string // "webp" or "tga"
	Workers     int
	Progress    io.Writer // nil disables progress lines
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Path    string
	Success bool
	Error   string
}

// FrameName returns the file name used for frame i.
func FrameName(i int, format string) string {
	return fmt.Sprintf("frame_%04d.%s", i, format)
}

// Run renders one frame per pose using a worker pool.
// Results are indexed like poses.
func Run(cfg Config, poses []mathutil.Quat) []Result {
	total := len(poses)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := max(cfg.Workers, 1)
	start := time.Now()

	// Progress reporter; Run does not return until it stops writing.
	done := make(chan struct{})
	reporterDone := make(chan struct{})
	if cfg.Progress == nil {
		close(reporterDone)
	} else {
		go func() {
			defer close(reporterDone)
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						rate := float64(p) / time.Since(start).Seconds()
						fmt.Fprintf(cfg.Progress, "  [%d/%d] %.1f frames/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = renderFrame(cfg, idx, poses[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range poses {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)
	<-reporterDone

	return results
}

func renderFrame(cfg Config, idx int, pose mathutil.Quat) Result {
	outPath := filepath.Join(cfg.OutputDir, FrameName(idx, cfg.Format))
	res := Result{Frame: idx, Path: outPath}

	img := raster.RenderPose(cfg.Mesh, pose, cfg.Texture, cfg.RenderSize, cfg.Supersample)
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize)
	}

	if err := writeImage(outPath, img, cfg.Format); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Success = true
	return res
}

func writeImage(path string, img image.Image, format string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch format {
	case "webp":
		if err := nativewebp.Encode(f, img, nil); err != nil {
			return fmt.Errorf("WebP encode: %w", err)
		}
	case "tga":
		if err := tga.Encode(f, img); err != nil {
			return fmt.Errorf("TGA encode: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return f.Close()
}
