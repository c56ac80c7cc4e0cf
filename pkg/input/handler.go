package input

import "golang.org/x/image/math/f32"

// Handler tracks which buttons are held and evaluates action and axis
// bindings against that state. It consumes the same normalized events as
// the UI router; call Update for every event and EndFrame once per frame so
// per-frame deltas reset.
type Handler[ActionID comparable, AxisID comparable] struct {
	bindings Bindings[ActionID, AxisID]

	// The set of keys that are currently pressed down by virtual key code.
	keys map[Key]struct{}
	// The set of keys that are currently pressed down by scan code.
	scanCodes map[uint32]struct{}
	// The set of mouse buttons that are currently pressed down.
	mouseButtons map[MouseButton]struct{}

	mousePos     f32.Vec2
	lastMousePos f32.Vec2
	hasMousePos  bool

	// Relative motion accumulated this frame.
	mouseDelta f32.Vec2
	// Scroll wheel state this frame.
	wheel f32.Vec2
}

// NewHandler creates a Handler with the given bindings.
func NewHandler[ActionID comparable, AxisID comparable](bindings Bindings[ActionID, AxisID]) *Handler[ActionID, AxisID] {
	return &Handler[ActionID, AxisID]{
		bindings:     bindings,
		keys:         make(map[Key]struct{}),
		scanCodes:    make(map[uint32]struct{}),
		mouseButtons: make(map[MouseButton]struct{}),
	}
}

// Update feeds one normalized event into the handler.
func (h *Handler[ActionID, AxisID]) Update(ev Event) {
	switch e := ev.(type) {
	case KeyEvent:
		if e.Pressed {
			h.keys[e.Key] = struct{}{}
			h.scanCodes[e.ScanCode] = struct{}{}
		} else {
			delete(h.keys, e.Key)
			delete(h.scanCodes, e.ScanCode)
		}
	case ButtonEvent:
		if e.Pressed {
			h.mouseButtons[e.Button] = struct{}{}
		} else {
			delete(h.mouseButtons, e.Button)
		}
	case PointerMoveEvent:
		if h.hasMousePos {
			h.mouseDelta[0] += e.Position[0] - h.mousePos[0]
			h.mouseDelta[1] += e.Position[1] - h.mousePos[1]
		}
		h.mousePos = e.Position
		h.hasMousePos = true
	case ScrollEvent:
		if e.Delta[0] != 0 {
			h.wheel[0] = sign(e.Delta[0])
		}
		if e.Delta[1] != 0 {
			h.wheel[1] = sign(e.Delta[1])
		}
	case WindowFocusEvent:
		if !e.Focused {
			clear(h.keys)
			clear(h.scanCodes)
			clear(h.mouseButtons)
		}
	}
}

// EndFrame rolls per-frame state over; call once after all events of a
// frame have been applied.
func (h *Handler[ActionID, AxisID]) EndFrame() {
	h.lastMousePos = h.mousePos
	h.mouseDelta = f32.Vec2{}
	h.wheel = f32.Vec2{}
}

// IsKeyDown reports whether the virtual key is held.
func (h *Handler[ActionID, AxisID]) IsKeyDown(key Key) bool {
	_, ok := h.keys[key]
	return ok
}

// IsScanCodeDown reports whether the hardware scan code is held.
func (h *Handler[ActionID, AxisID]) IsScanCodeDown(code uint32) bool {
	_, ok := h.scanCodes[code]
	return ok
}

// IsMouseButtonDown reports whether the mouse button is held.
func (h *Handler[ActionID, AxisID]) IsMouseButtonDown(button MouseButton) bool {
	_, ok := h.mouseButtons[button]
	return ok
}

// IsButtonDown reports whether the bound button is held, whatever its source.
func (h *Handler[ActionID, AxisID]) IsButtonDown(button Button) bool {
	switch b := button.(type) {
	case KeyButton:
		return h.IsKeyDown(Key(b))
	case ScanCodeButton:
		return h.IsScanCodeDown(uint32(b))
	case MouseBindingButton:
		return h.IsMouseButtonDown(MouseButton(b))
	default:
		return false
	}
}

// IsActionDown looks up the bindings for the action and reports whether any
// chord has all of its buttons held.
func (h *Handler[ActionID, AxisID]) IsActionDown(action ActionID) bool {
	chords, ok := h.bindings.Actions[action]
	if !ok {
		return false
	}
	for _, chord := range chords {
		if len(chord) == 0 {
			continue
		}
		all := true
		for _, button := range chord {
			if !h.IsButtonDown(button) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

// AxisValue evaluates all sources bound to the axis and returns the one
// with the largest magnitude, or 0 when the axis is unbound.
func (h *Handler[ActionID, AxisID]) AxisValue(id AxisID) float32 {
	axes, ok := h.bindings.Axes[id]
	if !ok {
		return 0
	}
	var value float32
	for _, axis := range axes {
		v := h.axisSourceValue(axis)
		if abs(v) > abs(value) {
			value = v
		}
	}
	return value
}

// axisSourceValue evaluates one axis source against the current state.
func (h *Handler[ActionID, AxisID]) axisSourceValue(axis Axis) float32 {
	switch a := axis.(type) {
	case EmulatedAxis:
		pos, neg := h.IsButtonDown(a.Pos), h.IsButtonDown(a.Neg)
		switch {
		case pos && !neg:
			return 1
		case neg && !pos:
			return -1
		default:
			return 0
		}
	case MouseMotionAxis:
		if !h.hasMousePos {
			return 0
		}
		var delta float32
		switch a.Axis {
		case MouseAxisHorizontal:
			delta = h.lastMousePos[0] - h.mousePos[0]
		case MouseAxisVertical:
			delta = h.lastMousePos[1] - h.mousePos[1]
		}
		return limit(delta/a.Radius, a.Limit)
	case RelativeMotionAxis:
		var delta float32
		switch a.Axis {
		case MouseAxisHorizontal:
			delta = h.mouseDelta[0]
		case MouseAxisVertical:
			delta = h.mouseDelta[1]
		}
		return limit(delta/a.Radius, a.Limit)
	case WheelAxis:
		return h.WheelValue(a.Axis)
	default:
		return 0
	}
}

// MousePosition returns the last reported pointer position.
func (h *Handler[ActionID, AxisID]) MousePosition() (f32.Vec2, bool) {
	return h.mousePos, h.hasMousePos
}

// WheelValue returns the scroll-wheel state for this frame on the given axis.
func (h *Handler[ActionID, AxisID]) WheelValue(axis MouseAxis) float32 {
	if axis == MouseAxisHorizontal {
		return h.wheel[0]
	}
	return h.wheel[1]
}

func limit(v float32, clamp bool) float32 {
	if !clamp {
		return v
	}
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

func sign(v float32) float32 {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
