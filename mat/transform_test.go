package mat

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTranslate(t *testing.T) {
	m := Translate(5, 0, 0)
	if m[12] != 5 {
		t.Errorf("m[12] expected to be 5, got %f", m[12])
	}
	m[12] = 0
	if m != Identity4() {
		t.Errorf("entries other than the offset must match identity, got %v", m)
	}

	expected := Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		1, 2, 3, 1,
	}
	if diff := cmp.Diff(expected, Translate(1, 2, 3)); diff != "" {
		t.Errorf("Translate() mismatch (-want +got):\n%s", diff)
	}
}

func TestScale(t *testing.T) {
	expected := Matrix4{
		2, 0, 0, 0,
		0, 3, 0, 0,
		0, 0, 4, 0,
		0, 0, 0, 1,
	}
	if diff := cmp.Diff(expected, Scale(2, 3, 4)); diff != "" {
		t.Errorf("Scale() mismatch (-want +got):\n%s", diff)
	}
}

func TestRotate(t *testing.T) {
	s, c := math.Sin(math.Pi/6), math.Cos(math.Pi/6)

	testCases := map[string]struct {
		m        Matrix4
		expected Matrix4
	}{
		"Z90": {
			m: RotateZ(90),
			expected: Matrix4{
				0, 1, 0, 0,
				-1, 0, 0, 0,
				0, 0, 1, 0,
				0, 0, 0, 1,
			},
		},
		"X30": {
			m: RotateX(30),
			expected: Matrix4{
				1, 0, 0, 0,
				0, c, s, 0,
				0, -s, c, 0,
				0, 0, 0, 1,
			},
		},
		"Y30": {
			m: RotateY(30),
			expected: Matrix4{
				c, 0, -s, 0,
				0, 1, 0, 0,
				s, 0, c, 0,
				0, 0, 0, 1,
			},
		},
		"Z30": {
			m: RotateZ(30),
			expected: Matrix4{
				c, s, 0, 0,
				-s, c, 0, 0,
				0, 0, 1, 0,
				0, 0, 0, 1,
			},
		},
		"X0": {
			m:        RotateX(0),
			expected: Identity4(),
		},
		"Y360": {
			m:        RotateY(360),
			expected: Identity4(),
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, tt.m, approx); diff != "" {
				t.Errorf("rotation mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRotateAxis(t *testing.T) {
	testCases := map[string]struct {
		axis     Vector3
		expected func(float64) Matrix4
	}{
		"X":         {NewVector3(1, 0, 0), RotateX},
		"Y":         {NewVector3(0, 1, 0), RotateY},
		"Z":         {NewVector3(0, 0, 1), RotateZ},
		"Unnormed":  {NewVector3(0, 0, 5), RotateZ},
		"Direction": {NewVector3W(0, 2, 0, 0), RotateY},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			for _, deg := range []float64{-120, -15, 0, 45, 90, 200} {
				m, err := RotateAxis(tt.axis, deg)
				if err != nil {
					t.Fatal(err)
				}
				if diff := cmp.Diff(tt.expected(deg), m, approx); diff != "" {
					t.Errorf("RotateAxis(%v, %0.1f) mismatch (-want +got):\n%s", tt.axis, deg, diff)
				}
			}
		})
	}

	if _, err := RotateAxis(NewVector3(0, 0, 0), 10); !errors.Is(err, ErrZeroAxis) {
		t.Errorf("expected %v, got %v", ErrZeroAxis, err)
	}
}

func TestRotateAxis_Orthonormal(t *testing.T) {
	m, err := RotateAxis(NewVector3(1, 2, 3), 37)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Identity4(), m.Mul(m.Transpose()), approx); diff != "" {
		t.Errorf("R R^T != I (-want +got):\n%s", diff)
	}
}

func TestBaseTranslate(t *testing.T) {
	m := Identity4()
	out := BaseTranslate([3]float64{0, 0, -6}, &m)

	if diff := cmp.Diff([]float64{0, 0, -6, 1}, out[12:16]); diff != "" {
		t.Errorf("translation row mismatch (-want +got):\n%s", diff)
	}
	if m != out {
		t.Error("BaseTranslate must update the matrix passed in")
	}

	out[12] = 100
	if m[12] == 100 {
		t.Error("returned matrix must not alias the input")
	}
}

func TestBaseTranslate_LocalAxes(t *testing.T) {
	// Frame rotated by 90 degrees around Z and placed at (1, 2, 3):
	// its local X axis points along world Y.
	m := Translate(1, 2, 3).Mul(RotateZ(90))
	BaseTranslate([3]float64{2, 0, 0}, &m)

	got := [4]float64{m[12], m[13], m[14], m[15]}
	if diff := cmp.Diff([4]float64{1, 4, 3, 1}, got, approx); diff != "" {
		t.Errorf("translation row mismatch (-want +got):\n%s", diff)
	}
}

func TestTranslated(t *testing.T) {
	m := Scale(2, 2, 2)
	got := m.Translated(1, 2, 3)

	if m != Scale(2, 2, 2) {
		t.Error("Translated must not modify the receiver")
	}
	expected := Matrix4{
		2, 0, 0, 0,
		0, 2, 0, 0,
		0, 0, 2, 0,
		2, 4, 6, 1,
	}
	if diff := cmp.Diff(expected, got, approx); diff != "" {
		t.Errorf("Translated() mismatch (-want +got):\n%s", diff)
	}

	in := Identity4()
	if diff := cmp.Diff(BaseTranslate([3]float64{1, 2, 3}, &in), Identity4().Translated(1, 2, 3)); diff != "" {
		t.Errorf("Translated() must match BaseTranslate (-base +translated):\n%s", diff)
	}
}
