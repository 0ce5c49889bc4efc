package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample scales a supersampled frame to targetSize×targetSize.
// Filtering runs on premultiplied alpha so transparent background pixels
// do not bleed dark halos into the silhouette edge.
func Downsample(img *image.NRGBA, targetSize int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= targetSize && b.Dy() <= targetSize {
		return img
	}

	// draw.Src from NRGBA into RGBA premultiplies for us.
	premul := image.NewRGBA(b)
	draw.Draw(premul, b, img, b.Min, draw.Src)

	// CatmullRom approximates Lanczos at a fraction of the cost.
	dst := image.NewRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premul, premul.Bounds(), draw.Src, nil)

	return unpremultiply(dst)
}

func unpremultiply(src *image.RGBA) *image.NRGBA {
	b := src.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			si := src.PixOffset(x, y)
			di := out.PixOffset(x, y)
			a := float64(src.Pix[si+3])
			if a > 1 {
				inv := 255.0 / a
				out.Pix[di] = clamp8(float64(src.Pix[si]) * inv)
				out.Pix[di+1] = clamp8(float64(src.Pix[si+1]) * inv)
				out.Pix[di+2] = clamp8(float64(src.Pix[si+2]) * inv)
			}
			out.Pix[di+3] = src.Pix[si+3]
		}
	}
	return out
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
