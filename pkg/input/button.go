package input

import (
	"fmt"
	"strconv"
	"strings"
)

// Button is a single physical input a binding can reference: a virtual key,
// a raw scan code or a mouse button. The set of implementations is closed.
type Button interface {
	isButton()
}

// KeyButton binds a virtual key code.
type KeyButton Key

// ScanCodeButton binds a raw hardware scan code.
type ScanCodeButton uint32

// MouseBindingButton binds a pointer button.
type MouseBindingButton MouseButton

func (KeyButton) isButton()          {}
func (ScanCodeButton) isButton()     {}
func (MouseBindingButton) isButton() {}

// mouseButtonNames maps binding-file mouse button names to codes.
var mouseButtonNames = map[string]MouseButton{
	"left":    ButtonLeft,
	"right":   ButtonRight,
	"middle":  ButtonMiddle,
	"back":    ButtonBack,
	"forward": ButtonForward,
}

// ParseButton parses a binding-file button reference of the form
// "key:space", "scan:57" or "mouse:left".
func ParseButton(s string) (Button, error) {
	source, name, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf("invalid button %q: missing source prefix", s)
	}
	switch source {
	case "key":
		k, ok := KeyByName(name)
		if !ok {
			return nil, fmt.Errorf("invalid button %q: unknown key %q", s, name)
		}
		return KeyButton(k), nil
	case "scan":
		code, err := strconv.ParseUint(name, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid button %q: %w", s, err)
		}
		return ScanCodeButton(code), nil
	case "mouse":
		b, ok := mouseButtonNames[name]
		if !ok {
			return nil, fmt.Errorf("invalid button %q: unknown mouse button %q", s, name)
		}
		return MouseBindingButton(b), nil
	default:
		return nil, fmt.Errorf("invalid button %q: unknown source %q", s, source)
	}
}
