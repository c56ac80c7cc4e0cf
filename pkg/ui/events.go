package ui

import (
	"golang.org/x/image/math/f32"

	"github.com/go-gale/gale/pkg/errors"
	"github.com/go-gale/gale/pkg/graphics"
	"github.com/go-gale/gale/pkg/input"
)

// HandleEvent routes one normalized input event through the widget graph
// and returns the application messages emitted by user callbacks along the
// way. Queued structural commands are applied before it returns.
func (u *UI[Message, Data]) HandleEvent(ev input.Event, data *Data) []Message {
	var msgs []Message

	switch e := ev.(type) {
	case input.ButtonEvent:
		u.processButton(e, data, &msgs)
	case input.PointerMoveEvent:
		u.processPointerMove(e, data, &msgs)
	case input.ModifiersEvent:
		u.modifiers = e.Modifiers
	case input.KeyEvent:
		u.processKey(e, data, &msgs)
	case input.ScrollEvent:
		u.processScroll(e, &msgs)
	case input.ResizeEvent:
		u.viewport = graphics.NewRect(u.viewport.X, u.viewport.Y, e.Size[0], e.Size[1])
	case input.WindowFocusEvent:
		if !e.Focused {
			u.modifiers = 0
		}
	}

	u.drainCommands(data, &msgs)
	return msgs
}

// processButton records the button and click origin, then runs the press
// or release machinery.
func (u *UI[Message, Data]) processButton(ev input.ButtonEvent, data *Data, msgs *[]Message) {
	u.button = ev.Button
	u.clickPos = u.mousePos

	if ev.Pressed {
		u.mousePress(data, msgs)
	} else {
		u.mouseRelease(data, msgs)
	}
}

// mousePress hit tests the z-order top-down and hands the press to the
// first clickable widget under the pointer. Widgets below the match see
// nothing.
func (u *UI[Message, Data]) mousePress(data *Data, msgs *[]Message) {
	for i := len(u.zlist) - 1; i >= 0; i-- {
		h := u.zlist[i]
		w := u.store.Get(h)

		if w.Actions.Has(FlagClickAble) && w.Control.ContainsPoint(u.clickPos) {
			if w.Actions.Has(FlagMoveAble) {
				w.Actions.Clear(FlagMoving)
			}
			u.mousePressEvent(h, data, msgs)
			return
		}

		if w.Actions.Has(FlagMoveAble) && w.Control.ContainsPoint(u.clickPos) {
			w.Actions.Clear(FlagMoving)
		}
	}
}

// mousePressEvent decides whether the hit widget may act on the press. A
// focusable widget takes focus itself; a non-focusable one needs an
// ancestor to grant permission.
func (u *UI[Message, Data]) mousePressEvent(h Handle, data *Data, msgs *[]Message) {
	w := u.store.Get(h)

	if w.Actions.Has(FlagCanFocus) {
		if u.focused != h {
			u.setFocus(h, data, msgs)
		} else {
			u.setClicked(h, data, msgs)
		}
		return
	}

	granted, consumed := u.parentPermission(h, data, msgs)
	if granted && !consumed {
		u.setClicked(h, data, msgs)
	}
}

// parentPermission walks the ancestor chain of a non-focusable widget. An
// AlwaysUseable widget or ancestor grants permission outright; otherwise
// the first focusable ancestor grants it, and if that ancestor carries
// FocusClick it takes the click itself (consumed=true). No grant means the
// press is ignored.
func (u *UI[Message, Data]) parentPermission(h Handle, data *Data, msgs *[]Message) (granted, consumed bool) {
	w := u.store.Get(h)
	if w.Actions.Has(FlagAlwaysUseable) {
		return true, false
	}

	for parent := w.Parent; !parent.IsNil(); {
		p := u.store.Get(parent)

		if p.Actions.Has(FlagAlwaysUseable) {
			return true, false
		}
		if p.Actions.Has(FlagCanFocus) {
			if p.Actions.Has(FlagFocusClick) {
				u.setClicked(parent, data, msgs)
				return true, true
			}
			return true, false
		}

		parent = p.Parent
	}

	return false, false
}

// setFocus moves focus to the widget: raise it, tell the old holder it
// lost focus, tell the new one it gained it, then run the click.
func (u *UI[Message, Data]) setFocus(h Handle, data *Data, msgs *[]Message) {
	u.RaiseToTop(h)

	if !u.focused.IsNil() {
		u.widgetFocusChanged(u.focused, false, data, msgs)
	}
	u.widgetFocusChanged(h, true, data, msgs)

	u.setClicked(h, data, msgs)
}

// manualFocus moves focus without a press, used by FocusCommand. The
// target must be focusable; anything else is ignored.
func (u *UI[Message, Data]) manualFocus(h Handle, data *Data, msgs *[]Message) {
	w := u.store.Get(h)
	if !w.Actions.Has(FlagCanFocus) || u.focused == h {
		return
	}

	u.RaiseToTop(h)
	if !u.focused.IsNil() {
		u.widgetFocusChanged(u.focused, false, data, msgs)
	}
	u.widgetFocusChanged(h, true, data, msgs)
}

// widgetFocusChanged flips the focus flag and router state, then fires the
// focus-change callbacks, internal tier first.
func (u *UI[Message, Data]) widgetFocusChanged(h Handle, focused bool, data *Data, msgs *[]Message) {
	w := u.store.Get(h)
	if focused {
		w.Actions.Set(FlagIsFocused)
		u.focused = h
	} else {
		w.Actions.Clear(FlagIsFocused)
		if u.focused == h {
			u.focused = Handle{}
		}
	}

	key := w.CallbackKey(EventFocusChange)
	if cb, ok := u.callbacks[key].(FocusChangeFunc[Message]); ok {
		cb(w, focused)
	}
	if cb, ok := u.userCallbacks[key].(UserFocusChangeFunc[Message, Data]); ok {
		*msgs = append(*msgs, cb(w, focused, &u.queue, data)...)
	}
}

// setClicked starts window or widget drags as the widget's flags allow and
// dispatches the press. A CanClickBehind widget hands the whole click to
// its parent; its own press callback never fires.
func (u *UI[Message, Data]) setClicked(h Handle, data *Data, msgs *[]Message) {
	w := u.store.Get(h)

	if w.Actions.Has(FlagCanClickBehind) {
		if w.Parent.IsNil() {
			return
		}
		p := u.store.Get(w.Parent)
		if p.Actions.Has(FlagCanMoveWindow) && p.Control.ContainsPoint(u.clickPos) {
			u.moving = true
		}
		u.clicked = w.Parent
		p.Actions.Set(FlagClicked)
		u.widgetMousePress(w.Parent, true, data, msgs)
		return
	}

	inBounds := w.Control.ContainsPoint(u.clickPos)
	if w.Actions.Has(FlagCanMoveWindow) && inBounds {
		u.moving = true
	}
	if w.Actions.Has(FlagMoveAble) && inBounds {
		w.Actions.Set(FlagMoving)
	}

	u.clicked = h
	w.Actions.Set(FlagClicked)
	u.widgetMousePress(h, true, data, msgs)
}

// widgetMousePress dispatches the press/release callbacks for the widget,
// internal tier first, then the user tier.
func (u *UI[Message, Data]) widgetMousePress(h Handle, pressed bool, data *Data, msgs *[]Message) {
	w := u.store.Get(h)
	key := w.CallbackKey(EventMousePress)

	if cb, ok := u.callbacks[key].(MousePressFunc[Message]); ok {
		cb(w, u.button, pressed, u.modifiers)
	}
	if cb, ok := u.userCallbacks[key].(UserMousePressFunc[Message, Data]); ok {
		*msgs = append(*msgs, cb(w, u.button, pressed, u.modifiers, &u.queue, data)...)
	}
}

// mouseRelease ends widget drags, then hands the release to the topmost
// clickable widget under the pointer.
func (u *UI[Message, Data]) mouseRelease(data *Data, msgs *[]Message) {
	if !u.focused.IsNil() {
		f := u.store.Get(u.focused)
		if f.Actions.Has(FlagMoving) {
			f.Actions.Clear(FlagMoving)
		}
	}

	// The clicked widget may carry Moving without holding focus, when the
	// press reached it through an ancestor grant.
	if !u.clicked.IsNil() {
		u.store.Get(u.clicked).Actions.Clear(FlagClicked | FlagMoving)
		u.clicked = Handle{}
	}

	// A release always ends a window drag, whether or not it lands on the
	// widget that started it.
	u.moving = false

	for i := len(u.zlist) - 1; i >= 0; i-- {
		h := u.zlist[i]
		w := u.store.Get(h)

		if w.Actions.Has(FlagClickAble) && w.Control.ContainsPoint(u.clickPos) {
			u.widgetMousePress(h, false, data, msgs)
			return
		}
	}
}

// processPointerMove advances whichever drag is active, or recomputes the
// hover state. The last pointer position updates whatever branch ran.
func (u *UI[Message, Data]) processPointerMove(ev input.PointerMoveEvent, data *Data, msgs *[]Message) {
	u.newMousePos = ev.Position

	if u.moving {
		delta := graphics.Sub(ev.Position, u.clickPos)
		if u.window != nil {
			if err := u.window.SetWindowPosition(delta); err != nil {
				// Provisionally a soft failure; see the platform error notes.
				errors.Report(&errors.GaleError{
					Op:   "ui.PointerMove",
					Kind: errors.KindPlatform,
					Err:  err,
				})
			}
		}
	} else {
		if !u.focused.IsNil() {
			u.dragFocused(ev.Position)
		}
		u.mouseOverEvent(data, msgs)
	}

	u.mousePos = ev.Position
}

// dragFocused moves the focused widget by the pointer delta if its Moving
// flag is set. The move is all-or-nothing: if any edge of the moved bounds
// would leave the containing bounds, the whole move is rejected.
func (u *UI[Message, Data]) dragFocused(pos f32.Vec2) {
	w := u.store.Get(u.focused)
	if !w.Actions.Has(FlagMoving) {
		return
	}

	container := u.viewport
	if !w.Parent.IsNil() {
		container = u.store.Get(w.Parent).Control.Bounds()
	}

	delta := graphics.Sub(pos, u.mousePos)
	moved := w.Control.Bounds().Translate(delta)
	if !container.ContainsRect(moved) {
		return
	}

	p := w.Control.Position()
	w.Control.SetPosition(f32.Vec3{p[0] + delta[0], p[1] + delta[1], p[2]})
	u.widgetPositionUpdate(u.focused)
}

// widgetPositionUpdate runs the position-change propagation: the widget's
// own internal callback first, then every descendant exactly once in
// pre-order.
func (u *UI[Message, Data]) widgetPositionUpdate(h Handle) {
	w := u.store.Get(h)

	if cb, ok := u.callbacks[w.CallbackKey(EventPositionChange)].(PositionChangeFunc[Message]); ok {
		cb(w)
	}

	for _, child := range w.Children {
		c := u.store.Get(child)
		if len(c.Children) > 0 {
			u.widgetPositionUpdate(child)
		} else if cb, ok := u.callbacks[c.CallbackKey(EventPositionChange)].(PositionChangeFunc[Message]); ok {
			cb(c)
		}
	}
}

// mouseOverEvent recomputes which widget the pointer is over, firing leave
// and enter callbacks on the widgets whose status changed.
func (u *UI[Message, Data]) mouseOverEvent(data *Data, msgs *[]Message) {
	var target Handle
	for i := len(u.zlist) - 1; i >= 0; i-- {
		h := u.zlist[i]
		w := u.store.Get(h)
		if w.Actions.Has(FlagClickAble) && w.Control.ContainsPoint(u.newMousePos) {
			target = h
			break
		}
	}

	if target == u.over {
		return
	}

	if !u.over.IsNil() {
		w := u.store.Get(u.over)
		w.Actions.Clear(FlagMouseOver)
		key := w.CallbackKey(EventMouseLeave)
		if cb, ok := u.callbacks[key].(MouseOverFunc[Message]); ok {
			cb(w, false)
		}
		if cb, ok := u.userCallbacks[key].(UserMouseOverFunc[Message, Data]); ok {
			*msgs = append(*msgs, cb(w, false, &u.queue, data)...)
		}
	}

	u.over = target

	if !target.IsNil() {
		w := u.store.Get(target)
		w.Actions.Set(FlagMouseOver)
		key := w.CallbackKey(EventMouseOver)
		if cb, ok := u.callbacks[key].(MouseOverFunc[Message]); ok {
			cb(w, true)
		}
		if cb, ok := u.userCallbacks[key].(UserMouseOverFunc[Message, Data]); ok {
			*msgs = append(*msgs, cb(w, true, &u.queue, data)...)
		}
	}
}

// processKey routes key events to the focused widget: its raw-event
// capability first, then the user key-press callback.
func (u *UI[Message, Data]) processKey(ev input.KeyEvent, data *Data, msgs *[]Message) {
	if u.focused.IsNil() {
		return
	}
	w := u.store.Get(u.focused)

	*msgs = append(*msgs, w.Control.RawEvent(w.Actions, ev)...)

	if cb, ok := u.userCallbacks[w.CallbackKey(EventKeyPress)].(UserKeyPressFunc[Message, Data]); ok {
		*msgs = append(*msgs, cb(w, ev, u.modifiers, &u.queue, data)...)
	}
}

// processScroll forwards scroll events to the widget under the pointer,
// falling back to the focused widget.
func (u *UI[Message, Data]) processScroll(ev input.ScrollEvent, msgs *[]Message) {
	target := u.over
	if target.IsNil() {
		target = u.focused
	}
	if target.IsNil() {
		return
	}
	w := u.store.Get(target)
	*msgs = append(*msgs, w.Control.RawEvent(w.Actions, ev)...)
}
