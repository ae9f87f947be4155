// Package camera describes how the scene is projected onto the viewport.
package camera

import (
	"errors"
	"fmt"
	"math"

	"github.com/Magicianred/BubbleEngine/mat"
)

var (
	ErrProjectionType = errors.New("unknown projection type")
	ErrClipRange      = errors.New("far plane is nearer than near plane")
	ErrViewport       = errors.New("viewport size must be >0")
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultFOV    = 45 * math.Pi / 180
	DefaultZNear  = 0.1
	DefaultZFar   = 100
)

type Camera struct {
	Projection    ProjectionType
	Width, Height float64
	// FOV is the vertical field of view in radians.
	FOV         float64
	ZNear, ZFar float64
}

func Default() Camera {
	return Camera{
		Projection: Perspective,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		FOV:        DefaultFOV,
		ZNear:      DefaultZNear,
		ZFar:       DefaultZFar,
	}
}

// New returns a copy of c after validating it.
func New(c Camera) (*Camera, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Camera) Validate() error {
	switch c.Projection {
	case Perspective:
		if c.ZFar < c.ZNear {
			return fmt.Errorf("%w: near %g, far %g", ErrClipRange, c.ZNear, c.ZFar)
		}
	case Orthographic:
	default:
		return fmt.Errorf("%w: %d", ErrProjectionType, int(c.Projection))
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrViewport, c.Width, c.Height)
	}
	return nil
}

func (c *Camera) Aspect() float64 {
	return c.Width / c.Height
}

// ProjectionMatrix returns the projection matrix of the camera.
// It panics on a projection type rejected by Validate.
func (c *Camera) ProjectionMatrix() mat.Matrix4 {
	switch c.Projection {
	case Perspective:
		return mat.Perspective(c.FOV, c.Aspect(), c.ZNear, c.ZFar)
	case Orthographic:
		return mat.Orthographic(c.Width, c.Height, c.ZFar-c.ZNear)
	default:
		panic(fmt.Sprintf("camera: %v", ErrProjectionType))
	}
}

// Resize updates the viewport, keeping the other parameters.
func (c *Camera) Resize(width, height float64) error {
	next := *c
	next.Width, next.Height = width, height
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}
