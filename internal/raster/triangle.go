package raster

import (
	"image"
	"math"

	"quat-renderer/internal/mathutil"
)

// Vertex is a projected vertex: screen X, screen Y, depth (larger is closer).
type Vertex struct {
	X, Y, Z float64
}

// RasterizeTriangle fills one flat-shaded triangle with z-buffering and
// bilinear texturing. With tex == nil every pixel uses base.
//
// Hot path: no allocation inside the pixel loop.
func RasterizeTriangle(
	fb *FrameBuffer,
	v [3]Vertex,
	uv [3][2]float64,
	tex *image.NRGBA,
	base [4]uint8,
	lc *LightConfig,
) {
	// Face normal from screen-space edges
	e1 := mathutil.Vec3{v[1].X - v[0].X, v[1].Y - v[0].Y, v[1].Z - v[0].Z}
	e2 := mathutil.Vec3{v[2].X - v[0].X, v[2].Y - v[0].Y, v[2].Z - v[0].Z}
	n := e1.Cross(e2)
	if n.Len() < 1e-8 {
		return
	}
	shade := lc.ComputeShade(n.Normalize())

	minX := int(math.Min(math.Min(v[0].X, v[1].X), v[2].X))
	maxX := int(math.Max(math.Max(v[0].X, v[1].X), v[2].X)) + 1
	minY := int(math.Min(math.Min(v[0].Y, v[1].Y), v[2].Y))
	maxY := int(math.Max(math.Max(v[0].Y, v[1].Y), v[2].Y)) + 1

	minX = max(minX, 0)
	minY = max(minY, 0)
	maxX = min(maxX, fb.Width-1)
	maxY = min(maxY, fb.Height-1)
	if minX >= maxX || minY >= maxY {
		return
	}

	// Barycentric setup
	x0, y0 := v[0].X, v[0].Y
	x1, y1 := v[1].X, v[1].Y
	x2, y2 := v[2].X, v[2].Y
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1
			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*v[0].Z + w1*v[1].Z + w2*v[2].Z
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}

			cr, cg, cb, ca := base[0], base[1], base[2], base[3]
			if tex != nil {
				u := w0*uv[0][0] + w1*uv[1][0] + w2*uv[2][0]
				t := w0*uv[0][1] + w1*uv[1][1] + w2*uv[2][1]
				cr, cg, cb, ca = SampleTexture(tex, u, t)
			}

			// Skip transparent texels
			if ca < 8 {
				continue
			}
			fb.ZBuf[zIdx] = z

			r, g, b := lc.Shade(cr, cg, cb, shade)
			px := zIdx * 4
			fb.Color[px] = r
			fb.Color[px+1] = g
			fb.Color[px+2] = b
			fb.Color[px+3] = ca
		}
	}
}
