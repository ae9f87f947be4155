package mat

import (
	pcmat "github.com/seqsense/pcgol/mat"
	"golang.org/x/image/math/f32"
)

func (m Matrix3) F32() f32.Mat3 {
	var out f32.Mat3
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}

func (m Matrix4) F32() f32.Mat4 {
	var out f32.Mat4
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}

func (v Vector2) F32() f32.Vec2 {
	return f32.Vec2{float32(v.x), float32(v.y)}
}

func (v Vector3) F32() f32.Vec3 {
	return f32.Vec3{float32(v.x), float32(v.y), float32(v.z)}
}

// Homogeneous returns all four components of v.
func Homogeneous(v Vector) f32.Vec4 {
	a := v.Array()
	return f32.Vec4{float32(a[0]), float32(a[1]), float32(a[2]), float32(a[3])}
}

// Uniform returns m in the form passed to UniformMatrix4fv with
// transpose disabled. The flat order is kept as is: a row-major matrix
// applied to row vectors has the same layout as the column-major matrix
// GLSL applies to column vectors.
func (m Matrix4) Uniform() pcmat.Mat4 {
	var out pcmat.Mat4
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}

// FromMat4 converts a pcgol matrix. pcgol's a.Mul(b) corresponds to
// Multiply(a, b).
func FromMat4(m pcmat.Mat4) Matrix4 {
	var out Matrix4
	for i, v := range m {
		out[i] = float64(v)
	}
	return out
}

func (v Vector3) Vec3() pcmat.Vec3 {
	return pcmat.Vec3{float32(v.x), float32(v.y), float32(v.z)}
}
