package mathutil

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// QuatToMat3 converts q to the equivalent row-major rotation matrix.
// The diagonal uses the w²±x²±y²±z² form so the matrix of a non-unit q
// scales by |q|² uniformly.
func QuatToMat3(q Quat) Mat3 {
	w, x, y, z := q[0], q[1], q[2], q[3]
	ww, xx, yy, zz := w*w, x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat3{
		ww + xx - yy - zz, 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), ww - xx + yy - zz, 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), ww - xx - yy + zz,
	}
}

// QuatToDense writes the rotation matrix of q into dst, which must be 3×3.
func QuatToDense(q Quat, dst *mat.Dense) error {
	if dst == nil {
		return fmt.Errorf("mathutil: rotation matrix: nil destination: %w", ErrMatrixSize)
	}
	if r, c := dst.Dims(); r != 3 || c != 3 {
		return fmt.Errorf("mathutil: rotation matrix is %dx%d, want 3x3: %w", r, c, ErrMatrixSize)
	}

	m := QuatToMat3(q)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			dst.Set(r, c, m[r*3+c])
		}
	}
	return nil
}

// RotatePoint applies q to v without building a matrix (expanded q·v·q⁻¹).
func RotatePoint(q Quat, v Vec3) Vec3 {
	w, x, y, z := q[0], q[1], q[2], q[3]
	t2 := w * x
	t3 := w * y
	t4 := w * z
	t5 := -x * x
	t6 := x * y
	t7 := x * z
	t8 := -y * y
	t9 := y * z
	t10 := -z * z

	return Vec3{
		2*((t8+t10)*v[0]+(t6-t4)*v[1]+(t3+t7)*v[2]) + v[0],
		2*((t4+t6)*v[0]+(t5+t10)*v[1]+(t9-t2)*v[2]) + v[1],
		2*((t7-t3)*v[0]+(t2+t9)*v[1]+(t5+t8)*v[2]) + v[2],
	}
}

// RotatePoints rotates every point of src into dst, which must have the same length.
// src and dst may be the same slice.
func RotatePoints(q Quat, src, dst []Vec3) error {
	if len(dst) != len(src) {
		return fmt.Errorf("mathutil: rotate points: dst has %d, src has %d: %w", len(dst), len(src), ErrLengthMismatch)
	}
	for i, v := range src {
		dst[i] = RotatePoint(q, v)
	}
	return nil
}

// RotatePointsDense rotates points stored in a gonum matrix: either one
// 3×1 column point or N×3 with one point per row. dst must match src.
func RotatePointsDense(q Quat, src, dst *mat.Dense) error {
	if src == nil || dst == nil {
		return fmt.Errorf("mathutil: rotate points: nil matrix: %w", ErrMatrixSize)
	}
	rows, cols := src.Dims()
	column := rows == 3 && cols == 1
	if !column && cols != 3 {
		return fmt.Errorf("mathutil: rotate points: src is %dx%d, want 3x1 or Nx3: %w", rows, cols, ErrMatrixSize)
	}
	if dr, dc := dst.Dims(); dr != rows || dc != cols {
		return fmt.Errorf("mathutil: rotate points: dst is %dx%d, src is %dx%d: %w", dr, dc, rows, cols, ErrMatrixSize)
	}

	if column {
		v := RotatePoint(q, Vec3{src.At(0, 0), src.At(1, 0), src.At(2, 0)})
		for k := 0; k < 3; k++ {
			dst.Set(k, 0, v[k])
		}
		return nil
	}

	for i := 0; i < rows; i++ {
		v := RotatePoint(q, Vec3{src.At(i, 0), src.At(i, 1), src.At(i, 2)})
		for k := 0; k < 3; k++ {
			dst.Set(i, k, v[k])
		}
	}
	return nil
}
