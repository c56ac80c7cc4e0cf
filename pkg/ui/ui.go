package ui

import (
	"fmt"
	"slices"

	"golang.org/x/image/math/f32"

	"github.com/go-gale/gale/pkg/errors"
	"github.com/go-gale/gale/pkg/graphics"
	"github.com/go-gale/gale/pkg/input"
)

// UI is one widget graph plus the router state that drives it. It is
// single-threaded: one input event is processed at a time, and all state
// mutation and callback dispatch for an event complete before the next
// event starts.
type UI[Message any, Data any] struct {
	// Callback mapper. Keys must be distinct per (kind, event).
	callbacks     map[CallbackKey]InternalCallback[Message]
	userCallbacks map[CallbackKey]UserCallback[Message, Data]
	names         map[Identity]Handle

	store Store[Message]

	// zlist holds every visible widget in draw order; the end of the list
	// is the top of the visual stack and wins hit testing.
	zlist []Handle
	// visible holds the visible top-level widgets.
	visible []Handle
	// hidden holds the loaded but hidden top-level widgets.
	hidden []Handle

	focused Handle
	over    Handle
	clicked Handle

	// clickPos is the pointer position at the most recent press or release.
	clickPos f32.Vec2
	// mousePos is the last fully processed pointer position.
	mousePos f32.Vec2
	// newMousePos is the position of the pointer-move event in flight.
	newMousePos f32.Vec2

	// moving is true while a whole-window drag is in progress.
	moving    bool
	button    input.MouseButton
	modifiers input.Modifiers

	viewport graphics.Rect
	window   WindowHost

	queue CommandQueue
}

// New creates an empty UI covering the given viewport.
func New[Message any, Data any](viewport graphics.Rect) *UI[Message, Data] {
	return &UI[Message, Data]{
		callbacks:     make(map[CallbackKey]InternalCallback[Message]),
		userCallbacks: make(map[CallbackKey]UserCallback[Message, Data]),
		names:         make(map[Identity]Handle),
		viewport:      viewport,
	}
}

// SetWindowHost wires the window-system collaborator used for window drags.
// Without one, window drags are silent no-ops.
func (u *UI[Message, Data]) SetWindowHost(host WindowHost) {
	u.window = host
}

// Viewport returns the current viewport rectangle.
func (u *UI[Message, Data]) Viewport() graphics.Rect {
	return u.viewport
}

// SetViewport replaces the viewport rectangle.
func (u *UI[Message, Data]) SetViewport(viewport graphics.Rect) {
	u.viewport = viewport
}

// InsertWidget adds a widget to the graph as a visible top-level widget and
// returns its handle. Flags start from the control's DefaultFlags.
func (u *UI[Message, Data]) InsertWidget(control Control[Message]) Handle {
	w := &Widget[Message]{
		Actions: control.DefaultFlags(),
		Control: control,
	}
	h := u.store.Insert(w)
	u.names[control.ID()] = h
	u.zlist = append(u.zlist, h)
	u.visible = append(u.visible, h)
	return h
}

// Widget resolves a handle. It panics on a dead handle, like Store.Get.
func (u *UI[Message, Data]) Widget(h Handle) *Widget[Message] {
	return u.store.Get(h)
}

// WidgetByID looks a widget up by its Identity.
func (u *UI[Message, Data]) WidgetByID(id Identity) (Handle, bool) {
	h, ok := u.names[id]
	return h, ok
}

// Focused returns the handle of the focused widget, or the nil handle.
func (u *UI[Message, Data]) Focused() Handle {
	return u.focused
}

// Clicked returns the handle of the widget holding the pointer press, or
// the nil handle.
func (u *UI[Message, Data]) Clicked() Handle {
	return u.clicked
}

// Over returns the handle of the widget under the pointer, or the nil handle.
func (u *UI[Message, Data]) Over() Handle {
	return u.over
}

// MovingWindow reports whether a whole-window drag is in progress.
func (u *UI[Message, Data]) MovingWindow() bool {
	return u.moving
}

// Len returns the number of live widgets.
func (u *UI[Message, Data]) Len() int {
	return u.store.Len()
}

// SetParent makes child a child of parent, unlinking it from any previous
// parent first. A nil parent handle makes the child top-level again.
// Creating a cycle is an invariant violation and panics.
func (u *UI[Message, Data]) SetParent(child, parent Handle) {
	w := u.store.Get(child)

	if !parent.IsNil() {
		for a := parent; !a.IsNil(); a = u.store.Get(a).Parent {
			if a == child {
				panic(fmt.Sprintf("ui: reparenting %v under its own descendant %v", child, parent))
			}
		}
	}

	if !w.Parent.IsNil() {
		old := u.store.Get(w.Parent)
		if i := slices.Index(old.Children, child); i >= 0 {
			old.Children = slices.Delete(old.Children, i, i+1)
		}
	} else if !parent.IsNil() {
		// Leaving the top level.
		if i := slices.Index(u.visible, child); i >= 0 {
			u.visible = slices.Delete(u.visible, i, i+1)
		}
		if i := slices.Index(u.hidden, child); i >= 0 {
			u.hidden = slices.Delete(u.hidden, i, i+1)
		}
	}

	w.Parent = parent
	if parent.IsNil() {
		if !slices.Contains(u.visible, child) && !slices.Contains(u.hidden, child) {
			u.visible = append(u.visible, child)
		}
		return
	}

	p := u.store.Get(parent)
	p.Children = append(p.Children, child)

	// A new child stacks above its parent.
	if i := slices.Index(u.zlist, child); i >= 0 {
		u.zlist = slices.Delete(u.zlist, i, i+1)
		u.zlist = append(u.zlist, child)
	}
}

// RemoveWidget removes the widget and its whole subtree, unlinking it from
// its parent and purging it from the z-order and any focus, hover or click
// state.
func (u *UI[Message, Data]) RemoveWidget(h Handle) {
	w := u.store.Get(h)

	for _, child := range slices.Clone(w.Children) {
		u.RemoveWidget(child)
	}

	if !w.Parent.IsNil() {
		p := u.store.Get(w.Parent)
		if i := slices.Index(p.Children, h); i >= 0 {
			p.Children = slices.Delete(p.Children, i, i+1)
		}
	}

	u.dropHandle(h)
	if u.names[w.ID()] == h {
		delete(u.names, w.ID())
	}
	u.store.Remove(h)
}

// dropHandle purges a handle from the ordered lists and router state.
func (u *UI[Message, Data]) dropHandle(h Handle) {
	if i := slices.Index(u.zlist, h); i >= 0 {
		u.zlist = slices.Delete(u.zlist, i, i+1)
	}
	if i := slices.Index(u.visible, h); i >= 0 {
		u.visible = slices.Delete(u.visible, i, i+1)
	}
	if i := slices.Index(u.hidden, h); i >= 0 {
		u.hidden = slices.Delete(u.hidden, i, i+1)
	}
	if u.focused == h {
		u.focused = Handle{}
	}
	if u.over == h {
		u.over = Handle{}
	}
	if u.clicked == h {
		u.clicked = Handle{}
	}
}

// ShowWidget makes a hidden widget visible again, restoring it and its
// subtree to the z-order on top of the stack.
func (u *UI[Message, Data]) ShowWidget(h Handle) {
	w := u.store.Get(h)
	if w.Parent.IsNil() {
		if i := slices.Index(u.hidden, h); i >= 0 {
			u.hidden = slices.Delete(u.hidden, i, i+1)
		}
		if !slices.Contains(u.visible, h) {
			u.visible = append(u.visible, h)
		}
	}
	u.showSubtree(h)
}

func (u *UI[Message, Data]) showSubtree(h Handle) {
	if !slices.Contains(u.zlist, h) {
		u.zlist = append(u.zlist, h)
	}
	for _, child := range u.store.Get(h).Children {
		u.showSubtree(child)
	}
}

// HideWidget removes the widget and its subtree from the z-order without
// removing them from the graph. Focus, hover and click state pointing into
// the subtree is invalidated.
func (u *UI[Message, Data]) HideWidget(h Handle) {
	w := u.store.Get(h)
	if w.Parent.IsNil() {
		if i := slices.Index(u.visible, h); i >= 0 {
			u.visible = slices.Delete(u.visible, i, i+1)
		}
		if !slices.Contains(u.hidden, h) {
			u.hidden = append(u.hidden, h)
		}
	}
	u.hideSubtree(h)
}

func (u *UI[Message, Data]) hideSubtree(h Handle) {
	if i := slices.Index(u.zlist, h); i >= 0 {
		u.zlist = slices.Delete(u.zlist, i, i+1)
	}
	if u.focused == h {
		u.focused = Handle{}
	}
	if u.over == h {
		u.over = Handle{}
	}
	if u.clicked == h {
		u.clicked = Handle{}
	}
	for _, child := range u.store.Get(h).Children {
		u.hideSubtree(child)
	}
}

// RaiseToTop moves the widget to the top of the global z-order and to the
// end of its parent's child sequence, keeping global and sibling stacking
// consistent. Raising an already-topmost widget changes nothing.
func (u *UI[Message, Data]) RaiseToTop(h Handle) {
	if i := slices.Index(u.zlist, h); i >= 0 && i != len(u.zlist)-1 {
		u.zlist = slices.Delete(u.zlist, i, i+1)
		u.zlist = append(u.zlist, h)
	}

	w := u.store.Get(h)
	if !w.Parent.IsNil() {
		p := u.store.Get(w.Parent)
		if i := slices.Index(p.Children, h); i >= 0 && i != len(p.Children)-1 {
			p.Children = slices.Delete(p.Children, i, i+1)
			p.Children = append(p.Children, h)
		}
	}
}

// ZOrder returns the visible widgets in draw order; the last handle is the
// top of the stack. The returned slice is a copy.
func (u *UI[Message, Data]) ZOrder() []Handle {
	return slices.Clone(u.zlist)
}

// ClearWidgets removes every widget and resets all router state. Callback
// registrations survive.
func (u *UI[Message, Data]) ClearWidgets() {
	u.zlist = nil
	u.visible = nil
	u.hidden = nil
	clear(u.names)
	u.focused = Handle{}
	u.over = Handle{}
	u.clicked = Handle{}
	u.moving = false
	u.store.Clear()
}

// UpdateFrame ticks every visible widget's per-frame update.
func (u *UI[Message, Data]) UpdateFrame(frame graphics.FrameTime) {
	for _, h := range slices.Clone(u.zlist) {
		u.store.Get(h).Control.Update(frame)
	}
}

// DrawFrame draws every visible widget in z-order, bottom first. A widget
// draw failure aborts the frame with a render error; the caller may skip
// the frame and continue.
func (u *UI[Message, Data]) DrawFrame(ctx DrawContext, frame graphics.FrameTime) error {
	for _, h := range u.zlist {
		w := u.store.Get(h)
		if err := w.Control.Draw(ctx, frame); err != nil {
			return &errors.GaleError{
				Op:     "ui.DrawFrame",
				Kind:   errors.KindRender,
				Err:    err,
				Widget: w.ID().Name,
			}
		}
	}
	return nil
}

// drainCommands applies queued structural changes. Applying a command can
// fire callbacks that queue further commands; the loop runs until the
// queue stays empty.
func (u *UI[Message, Data]) drainCommands(data *Data, msgs *[]Message) {
	for u.queue.Len() > 0 {
		for _, cmd := range u.queue.take() {
			switch c := cmd.(type) {
			case SetParentCommand:
				u.SetParent(c.Child, c.Parent)
			case RemoveCommand:
				u.RemoveWidget(c.Target)
			case FocusCommand:
				u.manualFocus(c.Target, data, msgs)
			case ShowCommand:
				u.ShowWidget(c.Target)
			case HideCommand:
				u.HideWidget(c.Target)
			}
		}
	}
}
