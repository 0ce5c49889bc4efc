package mathutil

import "errors"

var (
	// ErrMatrixSize is returned when caller-supplied matrix storage has the wrong shape.
	ErrMatrixSize = errors.New("matrix size mismatch")

	// ErrLengthMismatch is returned when a point-set destination does not match its source length.
	ErrLengthMismatch = errors.New("point count mismatch")

	// ErrZeroQuaternion is returned when renormalizing the zero quaternion.
	ErrZeroQuaternion = errors.New("zero quaternion")
)
