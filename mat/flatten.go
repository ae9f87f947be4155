package mat

// FlatArray2D lays out the vectors as x0, y0, x1, y1, ...
func FlatArray2D(vs []Vector2) []float64 {
	out := make([]float64, 0, 2*len(vs))
	for _, v := range vs {
		out = append(out, v.x, v.y)
	}
	return out
}

// FlatArray3D lays out the vectors as x0, y0, z0, x1, y1, z1, ...
func FlatArray3D(vs []Vector3) []float64 {
	out := make([]float64, 0, 3*len(vs))
	for _, v := range vs {
		out = append(out, v.x, v.y, v.z)
	}
	return out
}

func Float32s(a []float64) []float32 {
	out := make([]float32, len(a))
	for i, v := range a {
		out[i] = float32(v)
	}
	return out
}
