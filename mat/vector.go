package mat

// Vector is a homogeneous coordinate (x, y, z, w).
// w == 1 denotes a point and w == 0 denotes a direction.
type Vector interface {
	X() float64
	Y() float64
	Z() float64
	W() float64
	Array() [4]float64
}

// Vector2 is a vector on the z = 0 plane.
type Vector2 struct {
	x, y, w float64
}

// NewVector2 returns the point (x, y).
func NewVector2(x, y float64) Vector2 {
	return Vector2{x: x, y: y, w: 1}
}

func NewVector2W(x, y, w float64) Vector2 {
	return Vector2{x: x, y: y, w: w}
}

func (v Vector2) X() float64 { return v.x }
func (v Vector2) Y() float64 { return v.y }
func (v Vector2) Z() float64 { return 0 }
func (v Vector2) W() float64 { return v.w }

func (v Vector2) Array() [4]float64 {
	return [4]float64{v.x, v.y, 0, v.w}
}

func (v Vector2) IsPoint() bool {
	return v.w == 1
}

// Vector3 is a vector in 3D space.
type Vector3 struct {
	x, y, z, w float64
}

// NewVector3 returns the point (x, y, z).
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{x: x, y: y, z: z, w: 1}
}

func NewVector3W(x, y, z, w float64) Vector3 {
	return Vector3{x: x, y: y, z: z, w: w}
}

func (v Vector3) X() float64 { return v.x }
func (v Vector3) Y() float64 { return v.y }
func (v Vector3) Z() float64 { return v.z }
func (v Vector3) W() float64 { return v.w }

func (v Vector3) Array() [4]float64 {
	return [4]float64{v.x, v.y, v.z, v.w}
}

func (v Vector3) IsPoint() bool {
	return v.w == 1
}
