package mathutil

import "math"

// EulerToQuat converts Euler angles (radians) to a quaternion.
// The result equals Rz(z)·Ry(y)·Rx(x); see EulerMat3.
// No renormalization: the formula is unit-norm for any real input.
func EulerToQuat(x, y, z float64) Quat {
	sx, cx := math.Sincos(x * 0.5)
	sy, cy := math.Sincos(y * 0.5)
	sz, cz := math.Sincos(z * 0.5)

	cycz, sysz := cy*cz, sy*sz
	cysz, sycz := cy*sz, sy*cz

	return Quat{
		cx*cycz + sx*sysz, // w
		sx*cycz - cx*sysz, // x
		cx*sycz + sx*cysz, // y
		cx*cysz - sx*sycz, // z
	}
}

// QuatToEuler converts q back to Euler angles (radians).
// y lies in [-π/2, π/2]; the asin argument is clamped so drift past ±1
// near gimbal lock yields ±π/2 instead of NaN.
func QuatToEuler(q Quat) (x, y, z float64) {
	w, qx, qy, qz := q[0], q[1], q[2], q[3]

	x = math.Atan2(2*(w*qx+qy*qz), 1-2*(qx*qx+qy*qy))
	y = math.Asin(clampUnit(2 * (w*qy - qz*qx)))
	z = math.Atan2(2*(w*qz+qx*qy), 1-2*(qy*qy+qz*qz))
	return x, y, z
}
