package mat

import (
	"errors"
	"fmt"
)

var (
	ErrSizeMismatch         = errors.New("matrix size mismatch")
	ErrDimensionMismatch    = errors.New("matrix dimension mismatch")
	ErrUnsupportedDimension = errors.New("unsupported matrix dimension")
)

// Matrix is a square matrix stored as a flat row-major array.
type Matrix interface {
	Dimension() int
	// Elements returns a copy of the dimension*dimension entries.
	Elements() []float64
}

// Matrix3 is a 3x3 matrix in row-major order.
type Matrix3 [9]float64

// Matrix4 is a 4x4 matrix in row-major order.
// Rows 0-2 hold the X, Y and Z axes of the transformed frame and
// row 3 holds the translation followed by 1:
//
//	| Xx Xy Xz 0 |
//	| Yx Yy Yz 0 |
//	| Zx Zy Zz 0 |
//	| Tx Ty Tz 1 |
//
// Vectors are multiplied as rows from the left.
type Matrix4 [16]float64

func Identity3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// NewMatrix3 builds a Matrix3 from a row-major slice.
// A nil slice gives the identity. Entries beyond the ninth are ignored.
func NewMatrix3(m []float64) (Matrix3, error) {
	if m == nil {
		return Identity3(), nil
	}
	var out Matrix3
	if err := fill(out[:], m, 3); err != nil {
		return Matrix3{}, err
	}
	return out, nil
}

// NewMatrix4 builds a Matrix4 from a row-major slice.
// A nil slice gives the identity. Entries beyond the sixteenth are ignored.
func NewMatrix4(m []float64) (Matrix4, error) {
	if m == nil {
		return Identity4(), nil
	}
	var out Matrix4
	if err := fill(out[:], m, 4); err != nil {
		return Matrix4{}, err
	}
	return out, nil
}

func fill(dst, src []float64, dim int) error {
	if len(src) < dim*dim {
		return fmt.Errorf("%w: %dx%d matrix needs %d elements, got %d",
			ErrSizeMismatch, dim, dim, dim*dim, len(src))
	}
	copy(dst, src)
	return nil
}

func (m Matrix3) Dimension() int { return 3 }

func (m Matrix3) Elements() []float64 {
	out := make([]float64, len(m))
	copy(out, m[:])
	return out
}

func (m Matrix3) At(row, col int) float64 {
	return m[3*row+col]
}

func (m Matrix3) Transpose() Matrix3 {
	var out Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[3*j+i] = m[3*i+j]
		}
	}
	return out
}

func (m Matrix4) Dimension() int { return 4 }

func (m Matrix4) Elements() []float64 {
	out := make([]float64, len(m))
	copy(out, m[:])
	return out
}

func (m Matrix4) At(row, col int) float64 {
	return m[4*row+col]
}

func (m Matrix4) Transpose() Matrix4 {
	var out Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[4*j+i] = m[4*i+j]
		}
	}
	return out
}

// Transform multiplies v as a row vector by m.
// Points pick up the translation row, directions do not.
func (m Matrix4) Transform(v Vector) Vector3 {
	a := v.Array()
	var out [4]float64
	for c := 0; c < 4; c++ {
		out[c] = a[0]*m[4*0+c] + a[1]*m[4*1+c] + a[2]*m[4*2+c] + a[3]*m[4*3+c]
	}
	return NewVector3W(out[0], out[1], out[2], out[3])
}
