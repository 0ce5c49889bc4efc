package mesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quat-renderer/internal/mathutil"
)

func TestCubeTopology(t *testing.T) {
	m := Cube(0.5)
	require.Len(t, m.Verts, 8)
	require.Len(t, m.Faces, 12)

	for _, f := range m.Faces {
		for k := 0; k < 3; k++ {
			assert.Less(t, f.VI[k], len(m.Verts))
			assert.Less(t, f.TI[k], len(m.UVs))
		}
	}
}

func TestCubeFacesPointOutward(t *testing.T) {
	m := Cube(1)
	for i, f := range m.Faces {
		a, b, c := m.Verts[f.VI[0]], m.Verts[f.VI[1]], m.Verts[f.VI[2]]
		n := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c).Scale(1.0 / 3)
		assert.Greater(t, n.Dot(centroid), 0.0, "face %d", i)
	}
}

func TestPosedKeepsModel(t *testing.T) {
	m := Cube(1)
	q := mathutil.EulerToQuat(0, 0, math.Pi/2)
	posed := m.Posed(q)

	assert.Equal(t, mathutil.Vec3{-1, -1, -1}, m.Verts[0])
	assert.InDeltaSlice(t, []float64{1, -1, -1}, posed[0][:], 1e-12)
}
