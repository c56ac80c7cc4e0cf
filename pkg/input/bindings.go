package input

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Bindings maps application action and axis identifiers to the buttons and
// motion sources that drive them. An action is down when every button of at
// least one of its chords is held.
type Bindings[ActionID comparable, AxisID comparable] struct {
	Actions map[ActionID][][]Button
	Axes    map[AxisID][]Axis
}

// bindingsFile is the on-disk YAML shape of string-keyed bindings.
type bindingsFile struct {
	Actions map[string][][]string `yaml:"actions"`
	Axes    map[string][]axisSpec `yaml:"axes"`
}

// axisSpec is one axis source in a binding file.
type axisSpec struct {
	Kind   string  `yaml:"kind"`
	Axis   string  `yaml:"axis,omitempty"`
	Limit  bool    `yaml:"limit,omitempty"`
	Radius float32 `yaml:"radius,omitempty"`
	Pos    string  `yaml:"pos,omitempty"`
	Neg    string  `yaml:"neg,omitempty"`
}

// LoadBindings reads string-keyed bindings from a YAML file. A missing file
// is not an error and yields empty bindings.
func LoadBindings(path string) (Bindings[string, string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Bindings[string, string]{}, nil
		}
		return Bindings[string, string]{}, fmt.Errorf("failed to read bindings: %w", err)
	}
	return ParseBindings(data)
}

// ParseBindings parses string-keyed bindings from YAML data.
func ParseBindings(data []byte) (Bindings[string, string], error) {
	var file bindingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Bindings[string, string]{}, fmt.Errorf("failed to parse bindings: %w", err)
	}

	out := Bindings[string, string]{}

	if len(file.Actions) > 0 {
		out.Actions = make(map[string][][]Button, len(file.Actions))
		for action, chords := range file.Actions {
			parsed := make([][]Button, 0, len(chords))
			for _, chord := range chords {
				buttons := make([]Button, 0, len(chord))
				for _, ref := range chord {
					button, err := ParseButton(ref)
					if err != nil {
						return Bindings[string, string]{}, fmt.Errorf("action %q: %w", action, err)
					}
					buttons = append(buttons, button)
				}
				parsed = append(parsed, buttons)
			}
			out.Actions[action] = parsed
		}
	}

	if len(file.Axes) > 0 {
		out.Axes = make(map[string][]Axis, len(file.Axes))
		for id, specs := range file.Axes {
			axes := make([]Axis, 0, len(specs))
			for _, spec := range specs {
				axis, err := spec.build()
				if err != nil {
					return Bindings[string, string]{}, fmt.Errorf("axis %q: %w", id, err)
				}
				axes = append(axes, axis)
			}
			out.Axes[id] = axes
		}
	}

	return out, nil
}

// build converts a file axis spec into its Axis value.
func (s axisSpec) build() (Axis, error) {
	switch s.Kind {
	case "emulated":
		pos, err := ParseButton(s.Pos)
		if err != nil {
			return nil, err
		}
		neg, err := ParseButton(s.Neg)
		if err != nil {
			return nil, err
		}
		return EmulatedAxis{Pos: pos, Neg: neg}, nil
	case "mouse_motion":
		axis, err := parseMouseAxis(s.Axis)
		if err != nil {
			return nil, err
		}
		return MouseMotionAxis{Axis: axis, Limit: s.Limit, Radius: defaultRadius(s.Radius)}, nil
	case "relative_motion":
		axis, err := parseMouseAxis(s.Axis)
		if err != nil {
			return nil, err
		}
		return RelativeMotionAxis{Axis: axis, Limit: s.Limit, Radius: defaultRadius(s.Radius)}, nil
	case "wheel":
		axis, err := parseMouseAxis(s.Axis)
		if err != nil {
			return nil, err
		}
		return WheelAxis{Axis: axis}, nil
	default:
		return nil, fmt.Errorf("unknown axis kind %q", s.Kind)
	}
}

func parseMouseAxis(s string) (MouseAxis, error) {
	switch s {
	case "horizontal":
		return MouseAxisHorizontal, nil
	case "vertical":
		return MouseAxisVertical, nil
	default:
		return 0, fmt.Errorf("unknown mouse axis %q", s)
	}
}

func defaultRadius(r float32) float32 {
	if r == 0 {
		return 1
	}
	return r
}
