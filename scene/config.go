package scene

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/Magicianred/BubbleEngine/camera"
	"github.com/Magicianred/BubbleEngine/shape"
)

type Config struct {
	Camera    CameraConfig    `yaml:"camera"`
	Rectangle RectangleConfig `yaml:"rectangle"`
	Model     ModelConfig     `yaml:"model"`
}

type CameraConfig struct {
	Projection camera.ProjectionType `yaml:"projection"`
	Width      float64               `yaml:"width"`
	Height     float64               `yaml:"height"`
	// FOV is the vertical field of view in degrees.
	FOV  float64 `yaml:"fov"`
	Near float64 `yaml:"near"`
	Far  float64 `yaml:"far"`
}

type RectangleConfig struct {
	Width  float64     `yaml:"width"`
	Height float64     `yaml:"height"`
	Color  shape.Color `yaml:"color,flow"`
}

type ModelConfig struct {
	Offset [3]float64 `yaml:"offset,flow"`
	// Rotate holds the angles around X, Y and Z in degrees.
	Rotate [3]float64 `yaml:"rotate,flow"`
	Scale  [3]float64 `yaml:"scale,flow"`
}

func DefaultConfig() Config {
	c := camera.Default()
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
			Width:  8,
			Height: 2,
			Color:  shape.Color{255, 125, 255, 1},
		},
		Model: ModelConfig{
			Offset: [3]float64{0, 0, -6},
			Scale:  [3]float64{1, 1, 1},
		},
	}
}

// DecodeConfig reads a YAML scene description on top of DefaultConfig.
// Unknown keys are rejected.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding scene: %w", err)
	}
	return cfg, nil
}

func (c CameraConfig) camera() camera.Camera {
	return camera.Camera{
		Projection: c.Projection,
		Width:      c.Width,
		Height:     c.Height,
		FOV:        c.FOV * math.Pi / 180,
		ZNear:      c.Near,
		ZFar:       c.Far,
	}
}
