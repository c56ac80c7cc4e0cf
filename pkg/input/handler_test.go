package input

import (
	"testing"

	"golang.org/x/image/math/f32"
)

func keyDown(h *Handler[string, string], key Key) {
	h.Update(KeyEvent{Key: key, Pressed: true})
}

func keyUp(h *Handler[string, string], key Key) {
	h.Update(KeyEvent{Key: key, Pressed: false})
}

func TestHandlerButtonState(t *testing.T) {
	h := NewHandler[string, string](Bindings[string, string]{})

	keyDown(h, KeySpace)
	h.Update(ButtonEvent{Button: ButtonLeft, Pressed: true})
	h.Update(KeyEvent{Key: Key('W'), ScanCode: 17, Pressed: true})

	if !h.IsKeyDown(KeySpace) {
		t.Error("space should be down")
	}
	if !h.IsMouseButtonDown(ButtonLeft) {
		t.Error("left mouse button should be down")
	}
	if !h.IsScanCodeDown(17) {
		t.Error("scan code 17 should be down")
	}

	keyUp(h, KeySpace)
	h.Update(ButtonEvent{Button: ButtonLeft, Pressed: false})

	if h.IsKeyDown(KeySpace) {
		t.Error("space should be released")
	}
	if h.IsMouseButtonDown(ButtonLeft) {
		t.Error("left mouse button should be released")
	}
	// The key release above did not name a scan code, so 17 stays down.
	if !h.IsScanCodeDown(17) {
		t.Error("scan code 17 should still be down")
	}
}

func TestHandlerActionChords(t *testing.T) {
	bindings := Bindings[string, string]{
		Actions: map[string][][]Button{
			"jump": {{KeyButton(KeySpace)}},
			"save": {
				{KeyButton(KeyLeftCtrl), KeyButton(Key('S'))},
				{MouseBindingButton(ButtonMiddle)},
			},
		},
	}
	h := NewHandler[string, string](bindings)

	if h.IsActionDown("jump") {
		t.Error("jump should be up with nothing held")
	}

	keyDown(h, KeySpace)
	if !h.IsActionDown("jump") {
		t.Error("jump should be down while space is held")
	}

	// A chord needs every button.
	keyDown(h, KeyLeftCtrl)
	if h.IsActionDown("save") {
		t.Error("half a chord must not trigger the action")
	}
	keyDown(h, Key('S'))
	if !h.IsActionDown("save") {
		t.Error("the full chord should trigger the action")
	}

	// Any one chord suffices.
	keyUp(h, KeyLeftCtrl)
	keyUp(h, Key('S'))
	h.Update(ButtonEvent{Button: ButtonMiddle, Pressed: true})
	if !h.IsActionDown("save") {
		t.Error("the alternate chord should trigger the action")
	}

	if h.IsActionDown("unbound") {
		t.Error("an unbound action is never down")
	}
}

func TestHandlerEmulatedAxis(t *testing.T) {
	bindings := Bindings[string, string]{
		Axes: map[string][]Axis{
			"walk": {EmulatedAxis{Pos: KeyButton(Key('D')), Neg: KeyButton(Key('A'))}},
		},
	}
	h := NewHandler[string, string](bindings)

	if got := h.AxisValue("walk"); got != 0 {
		t.Errorf("idle axis = %v, want 0", got)
	}

	keyDown(h, Key('D'))
	if got := h.AxisValue("walk"); got != 1 {
		t.Errorf("positive axis = %v, want 1", got)
	}

	keyDown(h, Key('A'))
	if got := h.AxisValue("walk"); got != 0 {
		t.Errorf("both directions held = %v, want 0", got)
	}

	keyUp(h, Key('D'))
	if got := h.AxisValue("walk"); got != -1 {
		t.Errorf("negative axis = %v, want -1", got)
	}
}

func TestHandlerRelativeMotionAxis(t *testing.T) {
	bindings := Bindings[string, string]{
		Axes: map[string][]Axis{
			"look": {RelativeMotionAxis{Axis: MouseAxisHorizontal, Radius: 10}},
		},
	}
	h := NewHandler[string, string](bindings)

	h.Update(PointerMoveEvent{Position: f32.Vec2{100, 100}})
	if got := h.AxisValue("look"); got != 0 {
		t.Errorf("first position report = %v, want 0 delta", got)
	}

	h.Update(PointerMoveEvent{Position: f32.Vec2{105, 100}})
	h.Update(PointerMoveEvent{Position: f32.Vec2{120, 100}})
	if got := h.AxisValue("look"); got != 2 {
		t.Errorf("accumulated delta = %v, want 2 (20 over radius 10)", got)
	}

	h.EndFrame()
	if got := h.AxisValue("look"); got != 0 {
		t.Errorf("axis after EndFrame = %v, want 0", got)
	}
}

func TestHandlerAxisLimitClamps(t *testing.T) {
	bindings := Bindings[string, string]{
		Axes: map[string][]Axis{
			"look": {RelativeMotionAxis{Axis: MouseAxisVertical, Limit: true, Radius: 1}},
		},
	}
	h := NewHandler[string, string](bindings)

	h.Update(PointerMoveEvent{Position: f32.Vec2{0, 0}})
	h.Update(PointerMoveEvent{Position: f32.Vec2{0, 50}})
	if got := h.AxisValue("look"); got != 1 {
		t.Errorf("limited axis = %v, want 1", got)
	}
}

func TestHandlerLargestMagnitudeWins(t *testing.T) {
	bindings := Bindings[string, string]{
		Axes: map[string][]Axis{
			"move": {
				EmulatedAxis{Pos: KeyButton(Key('D')), Neg: KeyButton(Key('A'))},
				RelativeMotionAxis{Axis: MouseAxisHorizontal, Radius: 10},
			},
		},
	}
	h := NewHandler[string, string](bindings)

	keyDown(h, Key('A'))
	h.Update(PointerMoveEvent{Position: f32.Vec2{0, 0}})
	h.Update(PointerMoveEvent{Position: f32.Vec2{25, 0}})

	// Emulated reads -1, relative motion reads +2.5; the bigger magnitude wins.
	if got := h.AxisValue("move"); got != 2.5 {
		t.Errorf("AxisValue = %v, want 2.5", got)
	}
}

func TestHandlerWheel(t *testing.T) {
	bindings := Bindings[string, string]{
		Axes: map[string][]Axis{
			"zoom": {WheelAxis{Axis: MouseAxisVertical}},
		},
	}
	h := NewHandler[string, string](bindings)

	h.Update(ScrollEvent{Delta: f32.Vec2{0, -3}})
	if got := h.AxisValue("zoom"); got != -1 {
		t.Errorf("wheel axis = %v, want -1 regardless of scroll amount", got)
	}
	if got := h.WheelValue(MouseAxisHorizontal); got != 0 {
		t.Errorf("untouched wheel axis = %v, want 0", got)
	}

	h.EndFrame()
	if got := h.AxisValue("zoom"); got != 0 {
		t.Errorf("wheel after EndFrame = %v, want 0", got)
	}
}

func TestHandlerWindowFocusLossClearsHeldButtons(t *testing.T) {
	h := NewHandler[string, string](Bindings[string, string]{})

	keyDown(h, KeySpace)
	h.Update(ButtonEvent{Button: ButtonLeft, Pressed: true})
	h.Update(WindowFocusEvent{Focused: false})

	if h.IsKeyDown(KeySpace) || h.IsMouseButtonDown(ButtonLeft) {
		t.Error("losing window focus must release everything held")
	}

	h.Update(WindowFocusEvent{Focused: true})
	if h.IsKeyDown(KeySpace) {
		t.Error("regaining focus must not resurrect stale state")
	}
}

func TestHandlerMousePosition(t *testing.T) {
	h := NewHandler[string, string](Bindings[string, string]{})

	if _, ok := h.MousePosition(); ok {
		t.Error("position should be unknown before the first pointer event")
	}

	h.Update(PointerMoveEvent{Position: f32.Vec2{42, 7}})
	pos, ok := h.MousePosition()
	if !ok || pos != (f32.Vec2{42, 7}) {
		t.Errorf("MousePosition = %v, %t; want (42, 7), true", pos, ok)
	}
}
