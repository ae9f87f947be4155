package camera

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type ProjectionType int

const (
	Perspective ProjectionType = iota
	Orthographic
)

func (p ProjectionType) String() string {
	switch p {
	case Perspective:
		return "perspective"
	case Orthographic:
		return "orthographic"
	default:
		return fmt.Sprintf("ProjectionType(%d)", int(p))
	}
}

func ParseProjectionType(s string) (ProjectionType, error) {
	switch strings.ToLower(s) {
	case "perspective", "persp":
		return Perspective, nil
	case "orthographic", "ortho":
		return Orthographic, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrProjectionType, s)
	}
}

func (p ProjectionType) MarshalYAML() (interface{}, error) {
	switch p {
	case Perspective, Orthographic:
		return p.String(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrProjectionType, int(p))
	}
}

func (p *ProjectionType) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := ParseProjectionType(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*p = v
	return nil
}
