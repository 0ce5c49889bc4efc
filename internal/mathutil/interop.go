package mathutil

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/num/quat"
)

// ToNumber converts q to a gonum quaternion (Real=w, Imag=x, Jmag=y, Kmag=z).
func ToNumber(q Quat) quat.Number {
	return quat.Number{Real: q[0], Imag: q[1], Jmag: q[2], Kmag: q[3]}
}

// FromNumber converts a gonum quaternion. The value is not renormalized.
func FromNumber(n quat.Number) Quat {
	return Quat{n.Real, n.Imag, n.Jmag, n.Kmag}
}

// ToMgl converts q to a mathgl quaternion.
func ToMgl(q Quat) mgl64.Quat {
	return mgl64.Quat{W: q[0], V: mgl64.Vec3{q[1], q[2], q[3]}}
}

// FromMgl converts a mathgl quaternion. The value is not renormalized.
func FromMgl(m mgl64.Quat) Quat {
	return Quat{m.W, m.V[0], m.V[1], m.V[2]}
}
