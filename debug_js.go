package main

import (
	webgl "github.com/seqsense/webgl-go"
)

// contextLimits logs the depth buffer precision and returns the largest
// viewport the context accepts. Zero means unknown.
func contextLimits(gl *webgl.WebGL) (maxWidth, maxHeight int) {
	defer func() {
		if r := recover(); r != nil {
			println("Failed to get context limits")
			maxWidth, maxHeight = 0, 0
		}
	}()

	dims := gl.GetParameter(gl.JS().Get("MAX_VIEWPORT_DIMS").Int())
	maxWidth, maxHeight = dims.Index(0).Int(), dims.Index(1).Int()
	println("Depth bits:", gl.GetParameter(gl.JS().Get("DEPTH_BITS").Int()).Int())
	println("Max viewport:", maxWidth, "x", maxHeight)
	return maxWidth, maxHeight
}
