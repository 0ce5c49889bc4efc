package mathutil

import "math"

// AxisAngleToQuat converts an axis-angle vector to a unit quaternion. The
// direction of axis is the rotation axis and its length the angle in radians.
// Angles below ThetaEps return exactly Identity.
func AxisAngleToQuat(axis Vec3) Quat {
	theta := axis.Len()
	if theta < ThetaEps {
		return Identity
	}

	half := theta * 0.5
	s := math.Sin(half) / theta
	q := Quat{math.Cos(half), axis[0] * s, axis[1] * s, axis[2] * s}
	return q.Normalized()
}

// QuatToAxisAngle converts q to an axis-angle vector of length
// θ = 2·acos(w). A rotation below ThetaEps yields the zero vector.
func QuatToAxisAngle(q Quat) Vec3 {
	theta := 2 * math.Acos(clampUnit(q[0]))
	if theta < ThetaEps {
		return Vec3{}
	}

	norm := math.Sqrt(q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
	if norm == 0 {
		// w<1 with no imaginary part only happens for non-unit input
		return Vec3{}
	}
	s := theta / norm
	return Vec3{q[1] * s, q[2] * s, q[3] * s}
}
