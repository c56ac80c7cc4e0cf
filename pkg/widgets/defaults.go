package widgets

import (
	"github.com/go-gale/gale/pkg/input"
	"github.com/go-gale/gale/pkg/ui"
)

// RegisterDefaults installs the internal-tier callbacks for the built-in
// widget kinds: press, hover and focus visuals, the checkbox toggle, and
// the frame's position-change cache refresh. Call it once per UI instance
// before inserting widgets.
func RegisterDefaults[Message any, Data any](u *ui.UI[Message, Data]) {
	u.RegisterInternal(ui.CallbackKey{Kind: KindButton, Event: ui.EventMousePress},
		ui.MousePressFunc[Message](func(w *ui.Widget[Message], button input.MouseButton, pressed bool, mods input.Modifiers) {
			if b, ok := w.Control.(*Button[Message]); ok {
				b.pressed = pressed
			}
		}))
	u.RegisterInternal(ui.CallbackKey{Kind: KindButton, Event: ui.EventFocusChange},
		ui.FocusChangeFunc[Message](func(w *ui.Widget[Message], focused bool) {
			if b, ok := w.Control.(*Button[Message]); ok {
				b.focused = focused
			}
		}))
	u.RegisterInternal(ui.CallbackKey{Kind: KindButton, Event: ui.EventMouseOver},
		ui.MouseOverFunc[Message](func(w *ui.Widget[Message], entered bool) {
			if b, ok := w.Control.(*Button[Message]); ok {
				b.hover = entered
			}
		}))
	u.RegisterInternal(ui.CallbackKey{Kind: KindButton, Event: ui.EventMouseLeave},
		ui.MouseOverFunc[Message](func(w *ui.Widget[Message], entered bool) {
			if b, ok := w.Control.(*Button[Message]); ok {
				b.hover = entered
			}
		}))

	u.RegisterInternal(ui.CallbackKey{Kind: KindCheckbox, Event: ui.EventMousePress},
		ui.MousePressFunc[Message](func(w *ui.Widget[Message], button input.MouseButton, pressed bool, mods input.Modifiers) {
			if pressed {
				return
			}
			w.Actions.Toggle(ui.FlagChecked)
			if c, ok := w.Control.(*Checkbox[Message]); ok {
				c.checked = w.Actions.Has(ui.FlagChecked)
			}
		}))
	u.RegisterInternal(ui.CallbackKey{Kind: KindCheckbox, Event: ui.EventFocusChange},
		ui.FocusChangeFunc[Message](func(w *ui.Widget[Message], focused bool) {
			if c, ok := w.Control.(*Checkbox[Message]); ok {
				c.focused = focused
			}
		}))

	u.RegisterInternal(ui.CallbackKey{Kind: KindFrame, Event: ui.EventFocusChange},
		ui.FocusChangeFunc[Message](func(w *ui.Widget[Message], focused bool) {
			if f, ok := w.Control.(*Frame[Message]); ok {
				f.focused = focused
			}
		}))
	u.RegisterInternal(ui.CallbackKey{Kind: KindFrame, Event: ui.EventPositionChange},
		ui.PositionChangeFunc[Message](func(w *ui.Widget[Message]) {
			if f, ok := w.Control.(*Frame[Message]); ok {
				f.refreshLayout()
			}
		}))
}
