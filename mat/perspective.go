package mat

import (
	"math"
)

// Perspective returns the projection for a vertical field of view fov
// in radians.
func Perspective(fov, aspect, near, far float64) Matrix4 {
	f := math.Tan(math.Pi*0.5 - 0.5*fov)
	rangeInv := 1 / math.Abs(near-far)
	return Matrix4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (near + far) * rangeInv, -1,
		0, 0, near * far * rangeInv * 2, 0,
	}
}
