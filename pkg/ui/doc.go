// Package ui implements a retained-mode widget graph and input-event router.
//
// A UI owns an arena of widgets (the Store), the parent/child relations
// between them, and a z-order list that doubles as draw order and hit-test
// priority. The platform layer feeds normalized input events in; the UI hit
// tests, maintains focus, click, hover and drag state, and dispatches two
// tiers of callbacks: an internal tier owned by the framework (focus
// highlighting, position-change cache refresh) and a user tier supplied by
// the application, which may emit application messages.
//
// # Handles
//
// Widgets are referenced by Handle, a generational index into the Store.
// The zero Handle is the "no widget" sentinel and never resolves to a live
// node. Looking up a handle after its widget has been removed is a
// programmer error and panics.
//
// # Messages and user data
//
// UI is parameterized over an application message type and a mutable
// application context. User callbacks receive the context and return
// messages; HandleEvent collects everything emitted while processing one
// event:
//
//	u := ui.New[AppMsg, AppState](viewport)
//	msgs := u.HandleEvent(input.ButtonEvent{Button: input.ButtonLeft, Pressed: true}, &state)
//
// # Reentrancy
//
// Callbacks must not restructure the graph directly. They append requests
// to the CommandQueue they are handed; the UI drains the queue after
// dispatch for the current event completes.
package ui
