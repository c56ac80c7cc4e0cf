// Package widgets provides the built-in widget kinds: Frame, Button,
// Checkbox and Label. Each implements ui.Control and carries its own draw
// state; RegisterDefaults installs the internal-tier callbacks that keep
// that state in sync with router events.
//
// Applications register user-tier callbacks per kind and assert the
// Control back to its concrete type where needed:
//
//	u.RegisterUser(ui.CallbackKey{Kind: widgets.KindButton, Event: ui.EventMousePress},
//	    ui.UserMousePressFunc[Msg, State](func(w *ui.Widget[Msg], b input.MouseButton, pressed bool,
//	        mods input.Modifiers, cmds *ui.CommandQueue, s *State) []Msg {
//	        if pressed {
//	            return nil
//	        }
//	        return []Msg{w.Control.(*widgets.Button[Msg]).Press}
//	    }))
package widgets
