package mathutil

import "math"

// Matrix-side constructions of the same rotations the quaternion functions
// build. They share no code with the quaternion path, so each one checks
// the other.

// EulerMat3 builds Rz(z)·Ry(y)·Rx(x) in closed form, the matrix of EulerToQuat.
func EulerMat3(x, y, z float64) Mat3 {
	sx, cx := math.Sincos(x)
	sy, cy := math.Sincos(y)
	sz, cz := math.Sincos(z)

	return Mat3{
		cz * cy, cz*sy*sx - sz*cx, cz*sy*cx + sz*sx,
		sz * cy, sz*sy*sx + cz*cx, sz*sy*cx - cz*sx,
		-sy, cy * sx, cy * cx,
	}
}

// AxisAngleMat3 builds the rotation of an axis-angle vector with Rodrigues'
// formula. Angles below ThetaEps give the identity, as in AxisAngleToQuat.
func AxisAngleMat3(axis Vec3) Mat3 {
	theta := axis.Len()
	if theta < ThetaEps {
		return Mat3Identity()
	}

	n := axis.Scale(1 / theta)
	s, c := math.Sincos(theta)
	k := 1 - c
	x, y, z := n[0], n[1], n[2]

	return Mat3{
		c + x*x*k, x*y*k - z*s, x*z*k + y*s,
		y*x*k + z*s, c + y*y*k, y*z*k - x*s,
		z*x*k - y*s, z*y*k + x*s, c + z*z*k,
	}
}
