// Package scene builds the matrices and vertex buffers of a frame from a
// YAML scene description.
package scene

import (
	"bytes"
	"io"
	"math"

	"golang.org/x/image/math/f32"

	"github.com/Magicianred/BubbleEngine/camera"
	"github.com/Magicianred/BubbleEngine/mat"
	"github.com/Magicianred/BubbleEngine/shape"
)

type Scene struct {
	Camera    *camera.Camera
	Rectangle *shape.Rectangle
	Model     ModelConfig
}

// Number of float32 components per vertex in Frame.Positions and
// Frame.Colors.
const (
	PositionSize = 2
	ColorSize    = 4
)

// Frame holds everything uploaded to draw the scene once.
type Frame struct {
	Projection  mat.Matrix4
	ModelView   mat.Matrix4
	Positions   []float32
	Colors      []float32
	VertexCount int
}

func New(cfg Config) (*Scene, error) {
	cam, err := camera.New(cfg.Camera.camera())
	if err != nil {
		return nil, err
	}
	rect, err := shape.NewRectangle(cfg.Rectangle.Width, cfg.Rectangle.Height, cfg.Rectangle.Color)
	if err != nil {
		return nil, err
	}
	return &Scene{
		Camera:    cam,
		Rectangle: rect,
		Model:     cfg.Model,
	}, nil
}

func Load(r io.Reader) (*Scene, error) {
	cfg, err := DecodeConfig(r)
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

func Parse(b []byte) (*Scene, error) {
	return Load(bytes.NewReader(b))
}

// Config returns the description the scene can be rebuilt from.
func (s *Scene) Config() Config {
	c := s.Camera
	return Config{
		Camera: CameraConfig{
			Projection: c.Projection,
			Width:      c.Width,
			Height:     c.Height,
			FOV:        c.FOV * 180 / math.Pi,
			Near:       c.ZNear,
			Far:        c.ZFar,
		},
		Rectangle: RectangleConfig{
			Width:  s.Rectangle.Width,
			Height: s.Rectangle.Height,
			Color:  s.Rectangle.Color,
		},
		Model: s.Model,
	}
}

// ModelView places the rectangle: scale, rotations around X, Y and Z,
// then spin, then the offset.
func (s *Scene) ModelView(spin mat.Matrix4) mat.Matrix4 {
	local := mat.Scale(s.Model.Scale[0], s.Model.Scale[1], s.Model.Scale[2])
	local = mat.RotateX(s.Model.Rotate[0]).Mul(local)
	local = mat.RotateY(s.Model.Rotate[1]).Mul(local)
	local = mat.RotateZ(s.Model.Rotate[2]).Mul(local)
	local = spin.Mul(local)

	m := mat.Identity4()
	mat.BaseTranslate(s.Model.Offset, &m)
	return m.Mul(local)
}

func (s *Scene) Frame(spin mat.Matrix4) Frame {
	return Frame{
		Projection:  s.Camera.ProjectionMatrix(),
		ModelView:   s.ModelView(spin),
		Positions:   mat.Float32s(mat.FlatArray2D(s.Rectangle.Vertices())),
		Colors:      mat.Float32s(s.Rectangle.Colors()),
		VertexCount: s.Rectangle.VertexCount(),
	}
}

// MVP maps model coordinates to clip space.
func (f *Frame) MVP() mat.Matrix4 {
	return f.Projection.Mul(f.ModelView)
}

// Clip returns each vertex of Positions in clip space.
func (f *Frame) Clip() []f32.Vec4 {
	mvp := f.MVP()
	out := make([]f32.Vec4, 0, f.VertexCount)
	for i := 0; i+PositionSize <= len(f.Positions); i += PositionSize {
		v := mat.NewVector2(float64(f.Positions[i]), float64(f.Positions[i+1]))
		out = append(out, mat.Homogeneous(mvp.Transform(v)))
	}
	return out
}

// NDC divides a clip space position by its w.
func NDC(p f32.Vec4) f32.Vec3 {
	return f32.Vec3{p[0] / p[3], p[1] / p[3], p[2] / p[3]}
}
