package ui

import (
	"golang.org/x/image/math/f32"

	"github.com/go-gale/gale/pkg/graphics"
	"github.com/go-gale/gale/pkg/input"
)

// Control is the capability set every concrete widget kind implements. The
// router selects behavior through this interface only; applications that
// need a concrete kind assert Widget.Control back to it.
type Control[Message any] interface {
	// ID returns the widget's name and user-chosen numeric id.
	ID() Identity

	// Kind names the widget kind ("button", "frame", ...) used to key the
	// callback tables.
	Kind() string

	// ContainsPoint reports whether the point hits the widget.
	ContainsPoint(p f32.Vec2) bool

	// Bounds returns the widget's screen-space rectangle.
	Bounds() graphics.Rect

	// Position returns the widget origin; Z carries the layer scalar.
	Position() f32.Vec3

	// SetPosition moves the widget origin.
	SetPosition(pos f32.Vec3)

	// Update advances per-frame widget state.
	Update(frame graphics.FrameTime)

	// Draw renders the widget through the backend's draw surface.
	Draw(ctx DrawContext, frame graphics.FrameTime) error

	// RawEvent lets the widget react to events the router does not consume
	// itself, such as key presses while focused. The widget receives its
	// current flag state and may emit application messages.
	RawEvent(actions Flags, ev input.Event) []Message

	// DefaultFlags returns the flag set a fresh widget of this kind starts with.
	DefaultFlags() Flags
}

// Widget is one node of the graph: the Control payload plus the relations
// and state the router maintains for it.
//
// If a widget lists another as a child, that child's Parent field refers
// back to it, and the graph is acyclic. The router keeps this consistent;
// callbacks must go through the CommandQueue for structural changes.
type Widget[Message any] struct {
	// Handle is the widget's own handle in the store.
	Handle Handle
	// Parent is the owning widget, or the nil Handle for top-level widgets.
	Parent Handle
	// Children is the ordered child sequence; later entries stack above
	// earlier ones among siblings.
	Children []Handle
	// Actions is the widget's flag set.
	Actions Flags
	// Control is the kind-specific payload.
	Control Control[Message]
}

// CallbackKey returns the callback-table key for this widget and event.
func (w *Widget[Message]) CallbackKey(event Event) CallbackKey {
	return CallbackKey{Kind: w.Control.Kind(), Event: event}
}

// ID returns the payload's Identity.
func (w *Widget[Message]) ID() Identity {
	return w.Control.ID()
}

// DrawContext is the narrow surface the rendering backend exposes to
// widget Draw calls.
type DrawContext interface {
	FillRect(r graphics.Rect, c graphics.Color)
	StrokeRect(r graphics.Rect, c graphics.Color, width float32)
	DrawText(pos f32.Vec2, text string, c graphics.Color)
}

// WindowHost is the window-system collaborator used for whole-window drags.
type WindowHost interface {
	// SetWindowPosition moves the OS window by the given delta.
	SetWindowPosition(delta f32.Vec2) error
}
