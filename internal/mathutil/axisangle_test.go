package mathutil

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestAxisAngleZeroIsIdentity(t *testing.T) {
	assert.Equal(t, Identity, AxisAngleToQuat(Vec3{}))
	assert.Equal(t, Identity, AxisAngleToQuat(Vec3{1e-31, 0, 0}))
	assert.Equal(t, Vec3{}, QuatToAxisAngle(Identity))
}

func TestAxisAngleRoundTrip(t *testing.T) {
	cases := []Vec3{
		{0.1, 0, 0},
		{0, 0, math.Pi / 2},
		{0, 0, 3},
		{1, 2, 2},
		{-0.3, 0.4, -1.2},
		{2, -2, 1},
	}
	for _, axis := range cases {
		q := AxisAngleToQuat(axis)
		assertUnit(t, q)
		assertVecNear(t, axis, QuatToAxisAngle(q), 1e-9)
	}
}

func TestAxisAngleMatchesMgl(t *testing.T) {
	axis := Vec3{0.2, -0.9, 0.4}
	want := mgl64.QuatRotate(axis.Len(), mgl64.Vec3(axis.Normalize()))
	assertQuatNear(t, FromMgl(want), AxisAngleToQuat(axis), 1e-12)
}

func TestQuatToAxisAngleDegenerate(t *testing.T) {
	// w drifted past 1: acos would be NaN without clamping
	assert.Equal(t, Vec3{}, QuatToAxisAngle(Quat{1 + 1e-12, 0, 0, 0}))

	// non-unit input with no imaginary part
	assert.Equal(t, Vec3{}, QuatToAxisAngle(Quat{0.5, 0, 0, 0}))
}
