package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"

	"github.com/ftrvxmtrx/tga"
)

// Load reads a TGA, PNG or JPEG file and returns it as NRGBA.
func Load(path string) (*image.NRGBA, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}
	img, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	return img, nil
}

var (
	pngMagic  = []byte("\x89PNG\r\n\x1a\n")
	jpegMagic = []byte{0xff, 0xd8}
)

// Decode sniffs the format of data and decodes it to NRGBA.
// TGA has no magic number, so anything that is not PNG or JPEG is read as TGA.
func Decode(data []byte) (*image.NRGBA, error) {
	r := bytes.NewReader(data)
	var img image.Image
	var err error
	switch {
	case bytes.HasPrefix(data, pngMagic):
		img, err = png.Decode(r)
	case bytes.HasPrefix(data, jpegMagic):
		img, err = jpeg.Decode(r)
	default:
		img, err = tga.Decode(r)
	}
	if err != nil {
		return nil, err
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("empty image")
	}
	return toNRGBA(img), nil
}

// Checker builds a size×size checkerboard with cells squares per side,
// used when no texture file is configured.
func Checker(size, cells int, a, b color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	cell := max(size/max(cells, 1), 1)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// toNRGBA converts any image to NRGBA with origin (0,0).
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
