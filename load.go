package main

import (
	"fmt"
	"os"

	"github.com/Magicianred/BubbleEngine/scene"
)

// loadScene reads the scene at path, or builtin when path is empty.
// Errors name the source they came from.
func loadScene(path string, builtin []byte) (*scene.Scene, error) {
	name, b := "built-in scene", builtin
	if path != "" {
		name = path
		var err error
		if b, err = os.ReadFile(path); err != nil {
			return nil, err
		}
	}
	s, err := scene.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}
