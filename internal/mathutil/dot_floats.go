//go:build !purego

package mathutil

import "gonum.org/v1/gonum/floats"

// Quaternion-wide primitives backed by gonum/floats, which dispatches to
// assembly kernels on amd64 and arm64. Build with -tags purego for the
// plain-Go equivalents in dot_purego.go.

// Dot returns the 4D dot product a·b.
func Dot(a, b Quat) float64 {
	return floats.Dot(a[:], b[:])
}

func scale(q Quat, s float64) Quat {
	floats.Scale(s, q[:])
	return q
}

// weightedSum returns wa·a + wb·b.
func weightedSum(a, b Quat, wa, wb float64) Quat {
	var dst Quat
	floats.ScaleTo(dst[:], wa, a[:])
	floats.AddScaled(dst[:], wb, b[:])
	return dst
}
