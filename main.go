//go:build !js

package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/Magicianred/BubbleEngine/mat"
	"github.com/Magicianred/BubbleEngine/scene"
)

func main() {
	scenePath := flag.String("scene", "", "scene description (YAML); built-in scene if empty")
	commands := flag.String("c", "", "console commands separated by ';' to run before printing")
	flag.Parse()

	log.SetFlags(0)

	s, err := loadScene(*scenePath, defaultScene)
	if err != nil {
		log.Fatal(err)
	}

	con := newConsole(s, newView())
	for _, line := range strings.Split(*commands, ";") {
		res, err := con.Run(line)
		if err != nil {
			log.Fatalf("%q: %v", strings.TrimSpace(line), err)
		}
		if res != "" {
			fmt.Println(res)
		}
	}

	for _, name := range []string{"projection", "modelview", "mvp"} {
		res, err := con.Run(name)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s:\n%s\n", name, res)
	}

	f := s.Frame(con.view.matrix())
	fmt.Printf("positions: %v\n", f.Positions)
	fmt.Printf("colors: %v\n", f.Colors)

	vertices := s.Rectangle.Vertices()
	for i, p := range f.Clip() {
		fmt.Printf("vertex %d: %v -> clip %v ndc %v\n", i, mat.Homogeneous(vertices[i]), p, scene.NDC(p))
	}
}
