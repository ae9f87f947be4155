package main

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/Magicianred/BubbleEngine/camera"
	"github.com/Magicianred/BubbleEngine/mat"
	"github.com/Magicianred/BubbleEngine/scene"
)

type console struct {
	scene   *scene.Scene
	view    *view
	initial scene.Config
}

var errArgumentNumber = errors.New("invalid number of arguments")
var errInvalidCommand = errors.New("invalid command")

func newConsole(s *scene.Scene, v *view) *console {
	return &console{
		scene:   s,
		view:    v,
		initial: s.Config(),
	}
}

func vec3Command(get func(*console) *[3]float64) func(*console, []float64) ([][]float64, error) {
	return func(c *console, args []float64) ([][]float64, error) {
		p := get(c)
		switch len(args) {
		case 0:
		case 3:
			copy(p[:], args)
		default:
			return nil, errArgumentNumber
		}
		return [][]float64{p[:]}, nil
	}
}

func projectionCommand(p camera.ProjectionType) func(*console, []float64) ([][]float64, error) {
	return func(c *console, args []float64) ([][]float64, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		return c.updateCamera(func(cam *camera.Camera) { cam.Projection = p })
	}
}

func matrixRows(m mat.Matrix4) [][]float64 {
	return [][]float64{m[0:4], m[4:8], m[8:12], m[12:16]}
}

var consoleCommands = map[string]func(c *console, args []float64) ([][]float64, error){
	"translate":   vec3Command(func(c *console) *[3]float64 { return &c.scene.Model.Offset }),
	"rotate":      vec3Command(func(c *console) *[3]float64 { return &c.scene.Model.Rotate }),
	"scale":       vec3Command(func(c *console) *[3]float64 { return &c.scene.Model.Scale }),
	"perspective": projectionCommand(camera.Perspective),
	"ortho":       projectionCommand(camera.Orthographic),
	"fov": func(c *console, args []float64) ([][]float64, error) {
		switch len(args) {
		case 0:
			return [][]float64{{c.scene.Camera.FOV * 180 / math.Pi}}, nil
		case 1:
			if _, err := c.updateCamera(func(cam *camera.Camera) { cam.FOV = args[0] * math.Pi / 180 }); err != nil {
				return nil, err
			}
			return [][]float64{{args[0]}}, nil
		default:
			return nil, errArgumentNumber
		}
	},
	"clip": func(c *console, args []float64) ([][]float64, error) {
		switch len(args) {
		case 0:
		case 2:
			if _, err := c.updateCamera(func(cam *camera.Camera) { cam.ZNear, cam.ZFar = args[0], args[1] }); err != nil {
				return nil, err
			}
		default:
			return nil, errArgumentNumber
		}
		return [][]float64{{c.scene.Camera.ZNear, c.scene.Camera.ZFar}}, nil
	},
	"viewport": func(c *console, args []float64) ([][]float64, error) {
		switch len(args) {
		case 0:
		case 2:
			if err := c.scene.Camera.Resize(args[0], args[1]); err != nil {
				return nil, err
			}
		default:
			return nil, errArgumentNumber
		}
		return [][]float64{{c.scene.Camera.Width, c.scene.Camera.Height}}, nil
	},
	"projection": func(c *console, args []float64) ([][]float64, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		return matrixRows(c.scene.Camera.ProjectionMatrix()), nil
	},
	"modelview": func(c *console, args []float64) ([][]float64, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		return matrixRows(c.scene.ModelView(c.view.matrix())), nil
	},
	"mvp": func(c *console, args []float64) ([][]float64, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		f := c.scene.Frame(c.view.matrix())
		return matrixRows(f.MVP()), nil
	},
	"reset": func(c *console, args []float64) ([][]float64, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		s, err := scene.New(c.initial)
		if err != nil {
			return nil, err
		}
		*c.scene = *s
		c.view.reset()
		return nil, nil
	},
}

// updateCamera applies fn to a copy of the camera and keeps the result
// only if it is still valid.
func (c *console) updateCamera(fn func(*camera.Camera)) ([][]float64, error) {
	next := *c.scene.Camera
	fn(&next)
	cam, err := camera.New(next)
	if err != nil {
		return nil, err
	}
	c.scene.Camera = cam
	return nil, nil
}

func (c *console) Run(line string) (string, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", nil
	}
	fn, ok := consoleCommands[args[0]]
	if !ok {
		return "", errInvalidCommand
	}
	var argsFloat []float64
	for i := 1; i < len(args); i++ {
		f, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return "", err
		}
		argsFloat = append(argsFloat, f)
	}
	res, err := fn(c, argsFloat)
	if err != nil {
		return "", err
	}
	var resStr []string
	for _, vv := range res {
		var resLine []string
		for _, v := range vv {
			if v == 0 {
				// Print -0 as 0.
				v = 0
			}
			resLine = append(resLine, strconv.FormatFloat(v, 'f', 3, 64))
		}
		resStr = append(resStr, strings.Join(resLine, " "))
	}
	return strings.Join(resStr, "\n"), nil
}
