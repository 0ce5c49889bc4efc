package mathutil

import "math"

// Slerp interpolates from qa (t=0) to qb (t=1) at constant angular velocity.
// t is not clamped; values outside [0,1] extrapolate.
//
// Coincident or antipodal inputs (|qa·qb| >= 1) return qa unchanged. When
// the inputs are nearly 180° apart the arc is undefined and the result is
// the renormalized linear blend (1-t)·qa + t·qb.
func Slerp(qa, qb Quat, t float64) Quat {
	cosHalfTheta := Dot(qa, qb)
	if math.Abs(cosHalfTheta) >= 1 {
		return qa
	}

	halfTheta := math.Acos(cosHalfTheta)
	sinHalfTheta := math.Sqrt(1 - cosHalfTheta*cosHalfTheta)

	var qm Quat
	if math.Abs(sinHalfTheta) < slerpLinearEps {
		qm = weightedSum(qa, qb, 1-t, t)
	} else {
		ratioA := math.Sin((1-t)*halfTheta) / sinHalfTheta
		ratioB := math.Sin(t*halfTheta) / sinHalfTheta
		qm = weightedSum(qa, qb, ratioA, ratioB)
	}
	return qm.Normalized()
}
