package mathutil

import (
	"fmt"
	"math"
)

// Quat is a rotation quaternion stored (w, x, y, z).
// Value type; every constructor that yields a rotation returns unit norm.
type Quat [4]float64

// Identity is the quaternion of no rotation.
var Identity = Quat{1, 0, 0, 0}

func (q Quat) W() float64 { return q[0] }
func (q Quat) X() float64 { return q[1] }
func (q Quat) Y() float64 { return q[2] }
func (q Quat) Z() float64 { return q[3] }

// Vec returns the imaginary part (x, y, z).
func (q Quat) Vec() Vec3 {
	return Vec3{q[1], q[2], q[3]}
}

func (q Quat) Norm() float64 {
	return math.Sqrt(Dot(q, q))
}

// Conjugate returns (w, -x, -y, -z), the inverse rotation of a unit quaternion.
func (q Quat) Conjugate() Quat {
	return Quat{q[0], -q[1], -q[2], -q[3]}
}

// Neg returns -q, which encodes the same rotation as q.
func (q Quat) Neg() Quat {
	return Quat{-q[0], -q[1], -q[2], -q[3]}
}

// Normalized rescales q to unit norm. The zero quaternion has no
// direction and maps to Identity.
func (q Quat) Normalized() Quat {
	n2 := Dot(q, q)
	if n2 == 0 {
		return Identity
	}
	return scale(q, 1/math.Sqrt(n2))
}

// Renormalize rescales q to unit norm and rejects the zero quaternion.
func Renormalize(q Quat) (Quat, error) {
	if Dot(q, q) == 0 {
		return Quat{}, fmt.Errorf("mathutil: renormalize: %w", ErrZeroQuaternion)
	}
	return q.Normalized(), nil
}

// Multiply returns the Hamilton product q1·q2 (apply q2, then q1).
// The product is always renormalized to bound drift across long chains.
func Multiply(q1, q2 Quat) Quat {
	w1, x1, y1, z1 := q1[0], q1[1], q1[2], q1[3]
	w2, x2, y2, z2 := q2[0], q2[1], q2[2], q2[3]

	q := Quat{
		w1*w2 - x1*x2 - y1*y2 - z1*z2,
		w1*x2 + x1*w2 + y1*z2 - z1*y2,
		w1*y2 - x1*z2 + y1*w2 + z1*x2,
		w1*z2 + x1*y2 - y1*x2 + z1*w2,
	}
	return q.Normalized()
}

// Angle returns the rotation angle in radians (0..π) taking qa to qb.
func Angle(qa, qb Quat) float64 {
	d := math.Abs(Dot(qa, qb))
	return 2 * math.Acos(clampUnit(d))
}

// ApproxEqual reports whether a and b encode the same rotation within tol,
// treating q and -q as equal.
func ApproxEqual(a, b Quat, tol float64) bool {
	same, flip := true, true
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			same = false
		}
		if math.Abs(a[i]+b[i]) > tol {
			flip = false
		}
	}
	return same || flip
}

func (q Quat) String() string {
	return fmt.Sprintf("(w=%.6f x=%.6f y=%.6f z=%.6f)", q[0], q[1], q[2], q[3])
}
