package mat

// Orthographic maps a width x height x depth box with its origin at the
// top-left corner of the viewport into clip space. Y points down.
func Orthographic(width, height, depth float64) Matrix4 {
	return Matrix4{
		2 / width, 0, 0, 0,
		0, -2 / height, 0, 0,
		0, 0, 2 / depth, 0,
		-1, 1, 0, 1,
	}
}

func OrthographicBounds(left, right, top, bottom, far, near float64) Matrix4 {
	return Matrix4{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, 2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
