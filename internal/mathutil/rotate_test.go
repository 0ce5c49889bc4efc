package mathutil

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestQuatToMat3Orthogonal(t *testing.T) {
	for _, q := range randomQuats(50) {
		m := QuatToMat3(q)
		assert.True(t, m.IsRotation(1e-9), "q=%v", q)
		assert.InDelta(t, 1, m.Det(), 1e-9)
	}
}

func TestQuatToMat3Identity(t *testing.T) {
	assert.Equal(t, Mat3Identity(), QuatToMat3(Identity))
}

func TestQuatToDense(t *testing.T) {
	q := randomQuats(1)[0]

	t.Run("3x3", func(t *testing.T) {
		dst := mat.NewDense(3, 3, nil)
		require.NoError(t, QuatToDense(q, dst))

		want := QuatToMat3(q)
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				assert.Equal(t, want.At(r, c), dst.At(r, c))
			}
		}
	})

	t.Run("wrong shape", func(t *testing.T) {
		err := QuatToDense(q, mat.NewDense(3, 4, nil))
		assert.ErrorIs(t, err, ErrMatrixSize)
	})

	t.Run("nil", func(t *testing.T) {
		assert.ErrorIs(t, QuatToDense(q, nil), ErrMatrixSize)
	})
}

func TestRotatePointMatchesMatrix(t *testing.T) {
	v := Vec3{0.3, -1.7, 2.4}
	for _, q := range randomQuats(30) {
		want := QuatToMat3(q).MulVec3(v)
		assertVecNear(t, want, RotatePoint(q, v), 1e-12)
		assertVecNear(t, Vec3(ToMgl(q).Rotate(mgl64.Vec3(v))), v.Rotate(q), 1e-12)
		assert.InDelta(t, v.Len(), RotatePoint(q, v).Len(), 1e-12)
	}
}

func TestRotatePoints(t *testing.T) {
	q := EulerToQuat(0, 0, 1.1)
	src := []Vec3{{1, 0, 0}, {0, 2, 0}, {0, 0, 3}, {1, 1, 1}}

	t.Run("order preserved", func(t *testing.T) {
		dst := make([]Vec3, len(src))
		require.NoError(t, RotatePoints(q, src, dst))
		for i := range src {
			assertVecNear(t, RotatePoint(q, src[i]), dst[i], 0)
		}
	})

	t.Run("in place", func(t *testing.T) {
		pts := append([]Vec3(nil), src...)
		require.NoError(t, RotatePoints(q, pts, pts))
		assertVecNear(t, RotatePoint(q, src[3]), pts[3], 0)
	})

	t.Run("length mismatch", func(t *testing.T) {
		err := RotatePoints(q, src, make([]Vec3, 2))
		assert.ErrorIs(t, err, ErrLengthMismatch)
	})

	t.Run("empty", func(t *testing.T) {
		assert.NoError(t, RotatePoints(q, nil, nil))
	})
}

func TestRotatePointsDense(t *testing.T) {
	q := EulerToQuat(0.4, -0.2, 0.9)

	t.Run("column point", func(t *testing.T) {
		src := mat.NewDense(3, 1, []float64{1, 2, 3})
		dst := mat.NewDense(3, 1, nil)
		require.NoError(t, RotatePointsDense(q, src, dst))

		want := RotatePoint(q, Vec3{1, 2, 3})
		assertVecNear(t, want, Vec3{dst.At(0, 0), dst.At(1, 0), dst.At(2, 0)}, 1e-15)
	})

	t.Run("row points", func(t *testing.T) {
		src := mat.NewDense(4, 3, []float64{
			1, 0, 0,
			0, 1, 0,
			0, 0, 1,
			-1, 2, 0.5,
		})
		dst := mat.NewDense(4, 3, nil)
		require.NoError(t, RotatePointsDense(q, src, dst))

		for i := 0; i < 4; i++ {
			want := RotatePoint(q, Vec3{src.At(i, 0), src.At(i, 1), src.At(i, 2)})
			assertVecNear(t, want, Vec3{dst.At(i, 0), dst.At(i, 1), dst.At(i, 2)}, 1e-15)
		}
	})

	t.Run("bad src shape", func(t *testing.T) {
		err := RotatePointsDense(q, mat.NewDense(2, 2, nil), mat.NewDense(2, 2, nil))
		assert.ErrorIs(t, err, ErrMatrixSize)
	})

	t.Run("dst mismatch", func(t *testing.T) {
		err := RotatePointsDense(q, mat.NewDense(5, 3, nil), mat.NewDense(4, 3, nil))
		assert.ErrorIs(t, err, ErrMatrixSize)
	})
}

func TestAxisAngleMat3MatchesQuat(t *testing.T) {
	axes := []Vec3{{}, {0, 0, 1.2}, {0.3, -0.4, 2.1}, {-1, 2, 0.5}}
	for _, axis := range axes {
		want := AxisAngleMat3(axis)
		got := QuatToMat3(AxisAngleToQuat(axis))
		assert.InDeltaSlice(t, want[:], got[:], 1e-12, "axis=%v", axis)
	}
}

func TestEulerMat3ComposesAxes(t *testing.T) {
	x, y, z := 0.3, -0.8, 1.9
	want := Mat3Mul(Mat3Mul(AxisAngleMat3(Vec3{0, 0, z}), AxisAngleMat3(Vec3{0, y, 0})), AxisAngleMat3(Vec3{x, 0, 0}))
	got := EulerMat3(x, y, z)
	assert.InDeltaSlice(t, want[:], got[:], 1e-12)
	assert.True(t, got.IsRotation(1e-12))
}
