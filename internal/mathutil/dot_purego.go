//go:build purego

package mathutil

// Dot returns the 4D dot product a·b.
func Dot(a, b Quat) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

func scale(q Quat, s float64) Quat {
	return Quat{q[0] * s, q[1] * s, q[2] * s, q[3] * s}
}

// weightedSum returns wa·a + wb·b.
func weightedSum(a, b Quat, wa, wb float64) Quat {
	return Quat{
		wa*a[0] + wb*b[0],
		wa*a[1] + wb*b[1],
		wa*a[2] + wb*b[2],
		wa*a[3] + wb*b[3],
	}
}
