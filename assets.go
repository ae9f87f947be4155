package main

import (
	_ "embed"
)

//go:embed scene.yaml
var defaultScene []byte
