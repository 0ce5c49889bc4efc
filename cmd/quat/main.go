// Command quat converts a rotation between quaternion, Euler angle,
// axis-angle and matrix form, and optionally applies it.
//
//	quat -euler 0,0,90 -point 1,0,0
//	quat -axis 0,0,1.5708 -compose 0.7071,0,0,0.7071
//	quat -quat 1,0,0,0 -slerp 0,0,0,1 -t 0.25
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"quat-renderer/internal/mathutil"
)

func main() {
	euler := flag.String("euler", "", "Euler angles x,y,z in degrees")
	axis := flag.String("axis", "", "Axis-angle vector x,y,z in radians (length is the angle)")
	quat := flag.String("quat", "", "Quaternion w,x,y,z (renormalized)")
	point := flag.String("point", "", "Point x,y,z to rotate")
	compose := flag.String("compose", "", "Quaternion w,x,y,z to multiply on the right")
	slerpTo := flag.String("slerp", "", "Target quaternion w,x,y,z to interpolate towards")
	t := flag.Float64("t", 0.5, "SLERP parameter")

	flag.Parse()

	q, err := parseRotation(*euler, *axis, *quat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *compose != "" {
		r, err := parseQuat(*compose)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: -compose: %v\n", err)
			os.Exit(1)
		}
		q = mathutil.Multiply(q, r)
		fmt.Printf("Composed with %v\n", r)
	}
	if *slerpTo != "" {
		qb, err := parseQuat(*slerpTo)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: -slerp: %v\n", err)
			os.Exit(1)
		}
		q = mathutil.Slerp(q, qb, *t)
		fmt.Printf("SLERP towards %v at t=%g\n", qb, *t)
	}

	printRotation(q)

	if *point != "" {
		v, err := parseVec3(*point)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: -point: %v\n", err)
			os.Exit(1)
		}
		r := mathutil.RotatePoint(q, v)
		fmt.Printf("Point:       (%.6f, %.6f, %.6f) -> (%.6f, %.6f, %.6f)\n", v[0], v[1], v[2], r[0], r[1], r[2])
	}
}

func printRotation(q mathutil.Quat) {
	x, y, z := mathutil.QuatToEuler(q)
	aa := mathutil.QuatToAxisAngle(q)
	m := mathutil.QuatToMat3(q)

	fmt.Printf("Quaternion:  %v\n", q)
	fmt.Printf("Euler (deg): x=%.4f y=%.4f z=%.4f\n", mathutil.Rad2Deg(x), mathutil.Rad2Deg(y), mathutil.Rad2Deg(z))
	fmt.Printf("Axis-angle:  (%.6f, %.6f, %.6f) |θ|=%.4f°\n", aa[0], aa[1], aa[2], mathutil.Rad2Deg(aa.Len()))
	fmt.Println("Matrix:")
	for r := 0; r < 3; r++ {
		fmt.Printf("  [% .6f % .6f % .6f]\n", m.At(r, 0), m.At(r, 1), m.At(r, 2))
	}
}

// parseRotation builds the input rotation from whichever flag is set.
func parseRotation(euler, axis, quat string) (mathutil.Quat, error) {
	set := 0
	for _, s := range []string{euler, axis, quat} {
		if s != "" {
			set++
		}
	}
	if set > 1 {
		return mathutil.Quat{}, fmt.Errorf("use only one of -euler, -axis, -quat")
	}

	switch {
	case euler != "":
		v, err := parseVec3(euler)
		if err != nil {
			return mathutil.Quat{}, fmt.Errorf("-euler: %w", err)
		}
		return mathutil.EulerToQuat(mathutil.Deg2Rad(v[0]), mathutil.Deg2Rad(v[1]), mathutil.Deg2Rad(v[2])), nil
	case axis != "":
		v, err := parseVec3(axis)
		if err != nil {
			return mathutil.Quat{}, fmt.Errorf("-axis: %w", err)
		}
		return mathutil.AxisAngleToQuat(v), nil
	case quat != "":
		q, err := parseQuat(quat)
		if err != nil {
			return mathutil.Quat{}, fmt.Errorf("-quat: %w", err)
		}
		return q, nil
	}
	return mathutil.Identity, nil
}

func parseQuat(s string) (mathutil.Quat, error) {
	f, err := parseFloats(s, 4)
	if err != nil {
		return mathutil.Quat{}, err
	}
	return mathutil.Renormalize(mathutil.Quat{f[0], f[1], f[2], f[3]})
}

func parseVec3(s string) (mathutil.Vec3, error) {
	f, err := parseFloats(s, 3)
	if err != nil {
		return mathutil.Vec3{}, err
	}
	return mathutil.Vec3{f[0], f[1], f[2]}, nil
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated numbers, got %q", n, s)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", p)
		}
		out[i] = v
	}
	return out, nil
}
