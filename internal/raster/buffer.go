package raster

import (
	"image"
	"math"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float64 // depth per pixel, larger is closer
}

// NewFrameBuffer allocates a transparent color buffer and a -inf z-buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, w*h*4),
		ZBuf:   make([]float64, w*h),
	}
	fb.clearDepth()
	return fb
}

// Reset clears color and depth so a worker can reuse the buffer.
func (fb *FrameBuffer) Reset() {
	clear(fb.Color)
	fb.clearDepth()
}

func (fb *FrameBuffer) clearDepth() {
	for i := range fb.ZBuf {
		fb.ZBuf[i] = math.Inf(-1)
	}
}

// Image copies the color buffer into a new NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}
