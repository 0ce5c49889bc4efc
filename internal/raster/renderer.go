package raster

import (
	"image"

	"quat-renderer/internal/mathutil"
	"quat-renderer/internal/mesh"
)

// DefaultColor is used for untextured meshes.
var DefaultColor = [4]uint8{160, 160, 170, 255}

// RenderPose renders m rotated by pose, seen through mathutil.CameraTilt,
// into a size·supersample square image. The projection scale comes from the
// model's bounding sphere, so every pose of one mesh renders at the same size.
func RenderPose(m mesh.Mesh, pose mathutil.Quat, tex *image.NRGBA, size, supersample int) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}
	renderSize := size * supersample
	fb := NewFrameBuffer(renderSize, renderSize)
	if len(m.Verts) == 0 {
		return fb.Image()
	}

	// Model pose first, then the camera.
	view := mathutil.Multiply(mathutil.CameraTilt, pose)
	verts := m.Posed(view)

	var radius float64
	for _, v := range m.Verts {
		radius = max(radius, v.Len())
	}
	radius = max(radius, 0.001)

	margin := 8 * supersample
	scale := float64(renderSize-2*margin) / (2 * radius)
	proj := Project(verts, scale, renderSize)

	lc := DefaultLightConfig()
	for _, f := range m.Faces {
		var tri [3]Vertex
		var uv [3][2]float64
		ok := true
		for k := range 3 {
			vi, ti := f.VI[k], f.TI[k]
			if vi < 0 || vi >= len(proj) {
				ok = false
				break
			}
			tri[k] = proj[vi]
			if ti >= 0 && ti < len(m.UVs) {
				uv[k] = m.UVs[ti]
			}
		}
		if !ok {
			continue
		}
		RasterizeTriangle(fb, tri, uv, tex, DefaultColor, &lc)
	}

	return fb.Image()
}

// Project maps view-space points to screen space with an orthographic
// camera looking down -Z, origin at the image center and Y pointing up.
func Project(verts []mathutil.Vec3, scale float64, renderSize int) []Vertex {
	half := float64(renderSize) / 2
	out := make([]Vertex, len(verts))
	for i, v := range verts {
		out[i] = Vertex{
			X: v[0]*scale + half,
			Y: -v[1]*scale + half,
			Z: v[2],
		}
	}
	return out
}
