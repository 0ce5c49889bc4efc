package postprocess

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func solid(size int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestDownsampleSize(t *testing.T) {
	out := Downsample(solid(64, color.NRGBA{200, 100, 50, 255}), 16)
	assert.Equal(t, image.Rect(0, 0, 16, 16), out.Bounds())

	c := out.NRGBAAt(8, 8)
	assert.InDelta(t, 200, int(c.R), 1)
	assert.InDelta(t, 100, int(c.G), 1)
	assert.Equal(t, uint8(255), c.A)
}

func TestDownsampleNoUpscale(t *testing.T) {
	img := solid(8, color.NRGBA{1, 2, 3, 255})
	assert.Same(t, img, Downsample(img, 16))
}

func TestDownsampleKeepsEdgeColor(t *testing.T) {
	// Left half opaque red, right half fully transparent black.
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 16; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 0, 0, 255})
		}
	}
	out := Downsample(img, 8)

	// The boundary column is partly transparent but still pure red.
	c := out.NRGBAAt(3, 4)
	assert.Greater(t, c.A, uint8(0))
	assert.Less(t, c.A, uint8(255))
	assert.InDelta(t, 255, int(c.R), 2)
}
