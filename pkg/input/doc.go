// Package input defines the normalized input primitives consumed by the UI
// router and a stateful input handler with configurable action and axis
// bindings.
//
// The platform layer translates OS events into the Event types in this
// package (ButtonEvent, PointerMoveEvent, ModifiersEvent, KeyEvent and so
// on) and feeds them either to ui.UI.HandleEvent for widget routing, or to a
// Handler for game-style polling of actions and axes.
//
// # Bindings
//
// A Handler is parameterized over application-defined action and axis
// identifiers. Bindings map an action to one or more button chords (all
// buttons of a chord must be held) and an axis to emulated button pairs,
// pointer motion or the scroll wheel:
//
//	bindings := input.Bindings[string, string]{
//	    Actions: map[string][][]input.Button{
//	        "jump": {{input.KeyButton(input.KeySpace)}},
//	    },
//	    Axes: map[string][]input.Axis{
//	        "look_x": {input.MouseMotionAxis{Axis: input.MouseAxisHorizontal, Limit: true, Radius: 20}},
//	    },
//	}
//	handler := input.NewHandler(bindings)
//
// String-keyed bindings can also be loaded from a YAML file with
// LoadBindings.
package input
