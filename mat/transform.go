package mat

import (
	"errors"
	"math"
)

var ErrZeroAxis = errors.New("rotation axis has zero length")

func Translate(x, y, z float64) Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

func Scale(x, y, z float64) Matrix4 {
	return Matrix4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

func sincosDeg(deg float64) (float64, float64) {
	return math.Sincos(deg * math.Pi / 180)
}

// RotateX returns the rotation around the X axis by deg degrees.
func RotateX(deg float64) Matrix4 {
	s, c := sincosDeg(deg)
	return Matrix4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns the rotation around the Y axis by deg degrees.
func RotateY(deg float64) Matrix4 {
	s, c := sincosDeg(deg)
	return Matrix4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ returns the rotation around the Z axis by deg degrees.
func RotateZ(deg float64) Matrix4 {
	s, c := sincosDeg(deg)
	return Matrix4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// RotateAxis returns the rotation around axis by deg degrees.
// For the unit axes it matches RotateX, RotateY and RotateZ.
func RotateAxis(axis Vector3, deg float64) (Matrix4, error) {
	n := math.Sqrt(axis.x*axis.x + axis.y*axis.y + axis.z*axis.z)
	if n == 0 {
		return Matrix4{}, ErrZeroAxis
	}
	x, y, z := axis.x/n, axis.y/n, axis.z/n
	s, c := sincosDeg(deg)
	t := 1 - c

	return Matrix4{
		c + x*x*t, x*y*t + z*s, x*z*t - y*s, 0,
		y*x*t - z*s, c + y*y*t, y*z*t + x*s, 0,
		z*x*t + y*s, z*y*t - x*s, c + z*z*t, 0,
		0, 0, 0, 1,
	}, nil
}

// BaseTranslate moves m by v measured along m's own axes:
// row 3 becomes x*row0 + y*row1 + z*row2 + row3.
// The matrix pointed to by m is updated in place and its new value is
// returned.
func BaseTranslate(v [3]float64, m *Matrix4) Matrix4 {
	x, y, z := v[0], v[1], v[2]
	for c := 0; c < 4; c++ {
		m[12+c] = m[0+c]*x + m[4+c]*y + m[8+c]*z + m[12+c]
	}
	return *m
}

// Translated is BaseTranslate without the side effect.
func (m Matrix4) Translated(x, y, z float64) Matrix4 {
	return BaseTranslate([3]float64{x, y, z}, &m)
}
