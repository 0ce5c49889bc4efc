package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/quat"
)

func TestMultiplyIdentity(t *testing.T) {
	for _, q := range randomQuats(20) {
		assertQuatNear(t, q, Multiply(q, Identity), tol)
		assertQuatNear(t, q, Multiply(Identity, q), tol)
	}
}

func TestMultiplyQuarterTurns(t *testing.T) {
	z90 := EulerToQuat(0, 0, math.Pi/2)
	got := Multiply(z90, z90)

	assert.InDelta(t, 0, got.W(), tol)
	assert.InDelta(t, 0, got.X(), tol)
	assert.InDelta(t, 0, got.Y(), tol)
	assert.InDelta(t, 1, got.Z(), tol)
}

func TestMultiplyMatchesMatrixProduct(t *testing.T) {
	qs := randomQuats(10)
	for i := 0; i+1 < len(qs); i++ {
		a, b := qs[i], qs[i+1]
		want := Mat3Mul(QuatToMat3(a), QuatToMat3(b))
		got := QuatToMat3(Multiply(a, b))
		assert.InDeltaSlice(t, want[:], got[:], 1e-12)
	}
}

func TestMultiplyMatchesGonum(t *testing.T) {
	qs := randomQuats(10)
	for i := 0; i+1 < len(qs); i++ {
		a, b := qs[i], qs[i+1]
		want := FromNumber(quat.Mul(ToNumber(a), ToNumber(b))).Normalized()
		assertQuatNear(t, want, Multiply(a, b), 1e-12)
	}
}

func TestMultiplyRenormalizes(t *testing.T) {
	a := Quat{2, 0, 0, 0}
	b := Quat{0, 0, 3, 0}
	got := Multiply(a, b)

	assertUnit(t, got)
	assertQuatNear(t, Quat{0, 0, 1, 0}, got, tol)

	// long chains stay on the unit sphere
	step := AxisAngleToQuat(Vec3{0.013, -0.021, 0.034})
	acc := Identity
	for i := 0; i < 10000; i++ {
		acc = Multiply(acc, step)
	}
	assertUnit(t, acc)
}

func TestConjugateInverts(t *testing.T) {
	for _, q := range randomQuats(10) {
		assertQuatNear(t, Identity, Multiply(q, q.Conjugate()), tol)
	}
}

func TestRenormalize(t *testing.T) {
	t.Run("zero", func(t *testing.T) {
		_, err := Renormalize(Quat{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrZeroQuaternion)
	})

	t.Run("scaled", func(t *testing.T) {
		got, err := Renormalize(Quat{0, 3, 0, 4})
		require.NoError(t, err)
		assertQuatNear(t, Quat{0, 0.6, 0, 0.8}, got, 1e-15)
	})

	t.Run("normalized zero is identity", func(t *testing.T) {
		assert.Equal(t, Identity, Quat{}.Normalized())
	})
}

func TestAngleAndApproxEqual(t *testing.T) {
	a := AxisAngleToQuat(Vec3{0, 0, 0.5})
	b := AxisAngleToQuat(Vec3{0, 0, 1.25})

	assert.InDelta(t, 0.75, Angle(a, b), 1e-12)
	assert.InDelta(t, 0, Angle(a, a.Neg()), 1e-6)
	assert.True(t, ApproxEqual(a, a.Neg(), tol))
	assert.False(t, ApproxEqual(a, b, tol))
}

func TestInteropRoundTrip(t *testing.T) {
	q := Quat{0.5, -0.5, 0.5, 0.5}

	assert.Equal(t, q, FromNumber(ToNumber(q)))
	assert.Equal(t, q, FromMgl(ToMgl(q)))
	assert.Equal(t, q.W(), ToNumber(q).Real)
	assert.Equal(t, q.Vec(), Vec3(ToMgl(q).V))
}

func TestCameraTiltIsRotation(t *testing.T) {
	assertUnit(t, CameraTilt)
	assert.True(t, QuatToMat3(CameraTilt).IsRotation(1e-12))
}
