package ui

import "github.com/go-gale/gale/pkg/input"

// Event enumerates the callback event kinds the router dispatches.
type Event int

const (
	// EventMousePress fires on press (pressed=true) and release (pressed=false).
	EventMousePress Event = iota
	// EventFocusChange fires when a widget gains or loses focus.
	EventFocusChange
	// EventPositionChange fires after a widget's position changed, before
	// its descendants are notified.
	EventPositionChange
	// EventMouseOver fires when the pointer enters a widget.
	EventMouseOver
	// EventMouseLeave fires when the pointer leaves a widget.
	EventMouseLeave
	// EventKeyPress fires on a key event routed to the focused widget.
	EventKeyPress
)

func (e Event) String() string {
	switch e {
	case EventMousePress:
		return "mouse-press"
	case EventFocusChange:
		return "focus-change"
	case EventPositionChange:
		return "position-change"
	case EventMouseOver:
		return "mouse-over"
	case EventMouseLeave:
		return "mouse-leave"
	case EventKeyPress:
		return "key-press"
	default:
		return "unknown"
	}
}

// CallbackKey keys both callback tables: one entry per widget kind and
// event kind.
type CallbackKey struct {
	Kind  string
	Event Event
}

// InternalCallback is one entry of the framework-tier callback table. The
// set of implementations is closed; each wraps the function signature of
// the event kind it is registered under.
type InternalCallback[Message any] interface {
	isInternalCallback()
}

// FocusChangeFunc handles EventFocusChange in the internal tier.
type FocusChangeFunc[Message any] func(w *Widget[Message], focused bool)

// MousePressFunc handles EventMousePress in the internal tier.
type MousePressFunc[Message any] func(w *Widget[Message], button input.MouseButton, pressed bool, mods input.Modifiers)

// PositionChangeFunc handles EventPositionChange in the internal tier.
type PositionChangeFunc[Message any] func(w *Widget[Message])

// MouseOverFunc handles EventMouseOver and EventMouseLeave in the internal
// tier; entered distinguishes the two.
type MouseOverFunc[Message any] func(w *Widget[Message], entered bool)

func (FocusChangeFunc[Message]) isInternalCallback()    {}
func (MousePressFunc[Message]) isInternalCallback()     {}
func (PositionChangeFunc[Message]) isInternalCallback() {}
func (MouseOverFunc[Message]) isInternalCallback()      {}

// UserCallback is one entry of the application-tier callback table. User
// callbacks run after the internal tier for the same event, receive the
// application context and the command queue, and return messages to the
// HandleEvent caller.
type UserCallback[Message any, Data any] interface {
	isUserCallback()
}

// UserMousePressFunc handles EventMousePress in the user tier.
type UserMousePressFunc[Message any, Data any] func(w *Widget[Message], button input.MouseButton, pressed bool, mods input.Modifiers, cmds *CommandQueue, data *Data) []Message

// UserFocusChangeFunc handles EventFocusChange in the user tier.
type UserFocusChangeFunc[Message any, Data any] func(w *Widget[Message], focused bool, cmds *CommandQueue, data *Data) []Message

// UserMouseOverFunc handles EventMouseOver and EventMouseLeave in the user tier.
type UserMouseOverFunc[Message any, Data any] func(w *Widget[Message], entered bool, cmds *CommandQueue, data *Data) []Message

// UserKeyPressFunc handles EventKeyPress in the user tier.
type UserKeyPressFunc[Message any, Data any] func(w *Widget[Message], ev input.KeyEvent, mods input.Modifiers, cmds *CommandQueue, data *Data) []Message

func (UserMousePressFunc[Message, Data]) isUserCallback()  {}
func (UserFocusChangeFunc[Message, Data]) isUserCallback() {}
func (UserMouseOverFunc[Message, Data]) isUserCallback()   {}
func (UserKeyPressFunc[Message, Data]) isUserCallback()    {}

// RegisterInternal installs a framework-tier callback. Registering a second
// callback for the same key replaces the first.
func (u *UI[Message, Data]) RegisterInternal(key CallbackKey, cb InternalCallback[Message]) {
	u.callbacks[key] = cb
}

// RegisterUser installs an application-tier callback. Registering a second
// callback for the same key replaces the first.
func (u *UI[Message, Data]) RegisterUser(key CallbackKey, cb UserCallback[Message, Data]) {
	u.userCallbacks[key] = cb
}
