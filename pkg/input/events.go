package input

import "golang.org/x/image/math/f32"

// Event is a normalized input event produced by the platform layer.
// The set of implementations is closed.
type Event interface {
	isInputEvent()
}

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
	ButtonBack
	ButtonForward
)

func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	case ButtonBack:
		return "back"
	case ButtonForward:
		return "forward"
	default:
		return "unknown"
	}
}

// Modifiers is a bitset of the currently held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// Has reports whether all of the given modifiers are held.
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod == mod
}

// ButtonEvent reports a pointer button press or release.
type ButtonEvent struct {
	Button  MouseButton
	Pressed bool
}

// PointerMoveEvent reports the new pointer position in screen coordinates.
type PointerMoveEvent struct {
	Position f32.Vec2
}

// ModifiersEvent replaces the active modifier set.
type ModifiersEvent struct {
	Modifiers Modifiers
}

// ScrollEvent reports scroll-wheel movement. Delta components are the sign
// of the motion on each axis.
type ScrollEvent struct {
	Delta f32.Vec2
}

// KeyEvent reports a keyboard key press or release.
type KeyEvent struct {
	Key      Key
	ScanCode uint32
	Pressed  bool
}

// WindowFocusEvent reports the OS window gaining or losing focus.
// Losing focus releases all held buttons tracked by a Handler.
type WindowFocusEvent struct {
	Focused bool
}

// ResizeEvent reports a new viewport size.
type ResizeEvent struct {
	Size f32.Vec2
}

func (ButtonEvent) isInputEvent()      {}
func (PointerMoveEvent) isInputEvent() {}
func (ModifiersEvent) isInputEvent()   {}
func (ScrollEvent) isInputEvent()      {}
func (KeyEvent) isInputEvent()         {}
func (WindowFocusEvent) isInputEvent() {}
func (ResizeEvent) isInputEvent()      {}
