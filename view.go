package main

import (
	"github.com/Magicianred/BubbleEngine/mat"
)

const (
	yDeadband = 20
	zoomMin   = 0.1
	zoomMax   = 10
)

type dragEvent struct {
	x, y   int
	button int
}

// view is the orbit applied to the model on top of the scene transform.
// Angles are in degrees.
type view struct {
	yaw, pitch float64
	x, y       float64
	zoom       float64

	yaw0, pitch0, x0, y0 float64
	drag0                *dragEvent
}

func newView() *view {
	return &view{zoom: 1}
}

func (v *view) reset() {
	*v = view{zoom: 1}
}

func (v *view) wheel(deltaY float64) {
	v.zoom -= deltaY * v.zoom * 0.001
	if v.zoom < zoomMin {
		v.zoom = zoomMin
	} else if v.zoom > zoomMax {
		v.zoom = zoomMax
	}
}

func (v *view) dragStart(e dragEvent) {
	v.drag0 = &e
	v.yaw0 = v.yaw
	v.pitch0 = v.pitch
	v.x0 = v.x
	v.y0 = v.y
}

func (v *view) dragEnd(e dragEvent) {
	if v.drag0 == nil {
		return
	}
	v.drag(e)
	v.drag0 = nil
}

func (v *view) drag(e dragEvent) {
	if v.drag0 == nil {
		return
	}
	xDiff := float64(e.x - v.drag0.x)
	yDiff := float64(e.y - v.drag0.y)
	switch v.drag0.button {
	case 0:
		v.yaw = v.yaw0 + 0.5*xDiff
		if yDiff < -yDeadband {
			yDiff += yDeadband
		} else if yDiff > yDeadband {
			yDiff -= yDeadband
		} else {
			yDiff = 0
		}
		v.pitch = v.pitch0 + 0.5*yDiff
		if v.pitch < -90 {
			v.pitch = -90
		} else if v.pitch > 90 {
			v.pitch = 90
		}
	case 1:
		// Screen Y points down.
		v.x = v.x0 + 0.01*xDiff
		v.y = v.y0 - 0.01*yDiff
	}
}

// matrix returns zoom, yaw, pitch and pan composed in that order.
func (v *view) matrix() mat.Matrix4 {
	m := mat.Scale(v.zoom, v.zoom, v.zoom)
	m = mat.RotateY(v.yaw).Mul(m)
	m = mat.RotateX(v.pitch).Mul(m)
	return mat.Translate(v.x, v.y, 0).Mul(m)
}
