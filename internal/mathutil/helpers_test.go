package mathutil

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1e-9

func assertQuatNear(t *testing.T, want, got Quat, delta float64) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], delta, "want %v, got %v", want, got)
}

func assertVecNear(t *testing.T, want, got Vec3, delta float64) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], delta, "want %v, got %v", want, got)
}

func assertUnit(t *testing.T, q Quat) {
	t.Helper()
	assert.InDelta(t, 1.0, Dot(q, q), tol, "norm² of %v", q)
}

// randomQuats returns n unit quaternions from a fixed seed.
func randomQuats(n int) []Quat {
	r := rand.New(rand.NewSource(7))
	qs := make([]Quat, n)
	for i := range qs {
		axis := Vec3{r.Float64()*2 - 1, r.Float64()*2 - 1, r.Float64()*2 - 1}.Normalize()
		qs[i] = AxisAngleToQuat(axis.Scale(0.1 + r.Float64()*3))
	}
	return qs
}
