package mat

import (
	"fmt"
)

// mul3 returns the product in which each row of b is expressed in the
// basis given by the rows of a.
func mul3(a, b *Matrix3) Matrix3 {
	var out Matrix3
	for r := 0; r < 3; r++ {
		b0, b1, b2 := b[3*r+0], b[3*r+1], b[3*r+2]
		for c := 0; c < 3; c++ {
			out[3*r+c] = b0*a[3*0+c] + b1*a[3*1+c] + b2*a[3*2+c]
		}
	}
	return out
}

// mul4 is the 4x4 version of mul3.
func mul4(a, b *Matrix4) Matrix4 {
	var out Matrix4
	for r := 0; r < 4; r++ {
		// Only the current row of b is cached.
		b0, b1, b2, b3 := b[4*r+0], b[4*r+1], b[4*r+2], b[4*r+3]
		for c := 0; c < 4; c++ {
			out[4*r+c] = b0*a[4*0+c] + b1*a[4*1+c] + b2*a[4*2+c] + b3*a[4*3+c]
		}
	}
	return out
}

// Mul returns b expressed in the frame of m. It equals Multiply(m, b).
func (m Matrix3) Mul(b Matrix3) Matrix3 {
	return mul3(&m, &b)
}

// Mul returns b expressed in the frame of m. It equals Multiply(m, b).
// To apply T first and then R to a row vector, use R.Mul(T).
func (m Matrix4) Mul(b Matrix4) Matrix4 {
	return mul4(&m, &b)
}

// Multiply composes two matrices of the same dimension.
// a supplies the basis and b supplies the rows being transformed.
func Multiply(a, b Matrix) (Matrix, error) {
	if a.Dimension() != b.Dimension() {
		return nil, fmt.Errorf("%w: %d and %d",
			ErrDimensionMismatch, a.Dimension(), b.Dimension())
	}
	switch a.Dimension() {
	case 3:
		ma, err := asMatrix3(a)
		if err != nil {
			return nil, err
		}
		mb, err := asMatrix3(b)
		if err != nil {
			return nil, err
		}
		return mul3(&ma, &mb), nil
	case 4:
		ma, err := asMatrix4(a)
		if err != nil {
			return nil, err
		}
		mb, err := asMatrix4(b)
		if err != nil {
			return nil, err
		}
		return mul4(&ma, &mb), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedDimension, a.Dimension())
	}
}

func asMatrix3(m Matrix) (Matrix3, error) {
	switch v := m.(type) {
	case Matrix3:
		return v, nil
	case *Matrix3:
		return *v, nil
	}
	return NewMatrix3(elements(m))
}

func asMatrix4(m Matrix) (Matrix4, error) {
	switch v := m.(type) {
	case Matrix4:
		return v, nil
	case *Matrix4:
		return *v, nil
	}
	return NewMatrix4(elements(m))
}

// elements never returns nil so that a foreign Matrix without storage
// is reported as a size mismatch instead of becoming the identity.
func elements(m Matrix) []float64 {
	if e := m.Elements(); e != nil {
		return e
	}
	return []float64{}
}
