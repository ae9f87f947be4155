package main

// fitViewport shrinks a canvas size to the context limits keeping the
// aspect ratio. Non-positive limits are ignored.
func fitViewport(width, height, maxWidth, maxHeight int) (int, int) {
	if maxWidth > 0 && width > maxWidth {
		height = height * maxWidth / width
		width = maxWidth
	}
	if maxHeight > 0 && height > maxHeight {
		width = width * maxHeight / height
		height = maxHeight
	}
	return width, height
}
