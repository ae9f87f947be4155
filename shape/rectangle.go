// Package shape provides simple geometry ready to be flattened into
// vertex buffers.
package shape

import (
	"errors"
	"fmt"

	"github.com/Magicianred/BubbleEngine/mat"
)

var ErrSize = errors.New("shape size must be >0")

// Color is an RGBA color with 0-255 color channels and 0-1 alpha.
type Color [4]float64

var White = Color{255, 255, 255, 1}

// Normalized returns the color with every channel in 0-1.
func (c Color) Normalized() [4]float64 {
	return [4]float64{c[0] / 255, c[1] / 255, c[2] / 255, c[3]}
}

// Rectangle is an axis aligned rectangle centered at the origin of the
// z = 0 plane, drawn as a triangle strip.
type Rectangle struct {
	Width, Height float64
	Color         Color
}

func NewRectangle(width, height float64, c Color) (*Rectangle, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %gx%g", ErrSize, width, height)
	}
	return &Rectangle{Width: width, Height: height, Color: c}, nil
}

func (r *Rectangle) VertexCount() int {
	return 4
}

// Vertices returns the corners in triangle strip order.
func (r *Rectangle) Vertices() []mat.Vector2 {
	w, h := r.Width/2, r.Height/2
	return []mat.Vector2{
		mat.NewVector2(w, h),
		mat.NewVector2(-w, h),
		mat.NewVector2(w, -h),
		mat.NewVector2(-w, -h),
	}
}

// Colors returns the normalized color repeated for every vertex.
func (r *Rectangle) Colors() []float64 {
	c := r.Color.Normalized()
	out := make([]float64, 0, 4*r.VertexCount())
	for i := 0; i < r.VertexCount(); i++ {
		out = append(out, c[:]...)
	}
	return out
}
