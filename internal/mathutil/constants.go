package mathutil

import "math"

// ThetaEps is the rotation angle (radians) below which an axis-angle
// vector is treated as no rotation at all.
const ThetaEps = 1.0e-30

// slerpLinearEps is the |sin(θ/2)| threshold under which SLERP falls back
// to a linear blend because the interpolation axis is undefined.
const slerpLinearEps = 1.0e-4

// CameraTilt is the fixed viewing rotation applied after the model pose:
// 35° about Y composed with -25° about X, so three cube faces are visible.
var CameraTilt = Multiply(
	AxisAngleToQuat(Vec3{Deg2Rad(-25), 0, 0}),
	AxisAngleToQuat(Vec3{0, Deg2Rad(35), 0}),
)

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return r * 180 / math.Pi
}

// clampUnit pins v to [-1, 1] so asin/acos never see rounding overshoot.
func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
