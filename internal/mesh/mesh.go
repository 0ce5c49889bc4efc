package mesh

import "quat-renderer/internal/mathutil"

// Face indexes one triangle into a mesh's vertex and UV arrays.
type Face struct {
	VI [3]int
	TI [3]int
}

// Mesh holds triangle geometry in model space.
type Mesh struct {
	Verts []mathutil.Vec3
	UVs   [][2]float64
	Faces []Face
}

// Cube returns an axis-aligned cube centered on the origin with the given
// half extent. Corners are shared; each side maps the full [0,1]² UV square.
func Cube(half float64) Mesh {
	h := half
	verts := []mathutil.Vec3{
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
	}
	uvs := [][2]float64{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

	// Counter-clockwise seen from outside.
	quads := [6][4]int{
		{4, 5, 6, 7}, // +z
		{1, 0, 3, 2}, // -z
		{5, 1, 2, 6}, // +x
		{0, 4, 7, 3}, // -x
		{7, 6, 2, 3}, // +y
		{0, 1, 5, 4}, // -y
	}

	faces := make([]Face, 0, 12)
	for _, q := range quads {
		faces = append(faces,
			Face{VI: [3]int{q[0], q[1], q[2]}, TI: [3]int{0, 1, 2}},
			Face{VI: [3]int{q[0], q[2], q[3]}, TI: [3]int{0, 2, 3}},
		)
	}

	return Mesh{Verts: verts, UVs: uvs, Faces: faces}
}

// Posed returns the mesh vertices rotated by q. The mesh is not modified.
func (m Mesh) Posed(q mathutil.Quat) []mathutil.Vec3 {
	out := make([]mathutil.Vec3, len(m.Verts))
	// lengths match by construction
	_ = mathutil.RotatePoints(q, m.Verts, out)
	return out
}
