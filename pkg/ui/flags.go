package ui

import "strings"

// Flags is a fixed-width bitset of per-widget capability and state booleans.
// The router and application callbacks both mutate it.
type Flags uint16

const (
	// FlagIsFocused marks the widget currently holding focus.
	FlagIsFocused Flags = 1 << iota
	// FlagCanFocus marks a widget that may receive focus.
	FlagCanFocus
	// FlagMouseOver marks the widget currently under the pointer.
	FlagMouseOver
	// FlagMoveAble marks a widget that may be dragged within its parent.
	FlagMoveAble
	// FlagMoving marks a widget drag in progress.
	FlagMoving
	// FlagCanClickBehind delegates clicks on the widget to its parent.
	FlagCanClickBehind
	// FlagAlwaysUseable grants click permission regardless of focus.
	FlagAlwaysUseable
	// FlagMinimized marks a minimized widget.
	FlagMinimized
	// FlagChecked carries toggle state for check-style widgets.
	FlagChecked
	// FlagFocusClick makes a focus-granting ancestor receive the click itself.
	FlagFocusClick
	// FlagIsPassword masks the widget's text content.
	FlagIsPassword
	// FlagCanMoveWindow lets a press on the widget start an OS window drag.
	FlagCanMoveWindow
	// FlagClicked marks the widget currently held by the pointer.
	FlagClicked
	// FlagClickAble marks a widget that participates in hit testing.
	FlagClickAble
	// FlagAllowChildren marks a widget that accepts child widgets.
	FlagAllowChildren
	// FlagInnerScroll marks a widget with internal scrolling content.
	FlagInnerScroll
)

// flagNames lists flag display names in bit order.
var flagNames = [...]string{
	"IsFocused",
	"CanFocus",
	"MouseOver",
	"MoveAble",
	"Moving",
	"CanClickBehind",
	"AlwaysUseable",
	"Minimized",
	"Checked",
	"FocusClick",
	"IsPassword",
	"CanMoveWindow",
	"Clicked",
	"ClickAble",
	"AllowChildren",
	"InnerScroll",
}

// Has reports whether all of the given flags are set.
func (f Flags) Has(flags Flags) bool {
	return f&flags == flags
}

// With returns a copy with the given flags set.
func (f Flags) With(flags Flags) Flags {
	return f | flags
}

// Set sets the given flags in place.
func (f *Flags) Set(flags Flags) {
	*f |= flags
}

// Clear clears the given flags in place.
func (f *Flags) Clear(flags Flags) {
	*f &^= flags
}

// Toggle flips the given flags in place.
func (f *Flags) Toggle(flags Flags) {
	*f ^= flags
}

func (f Flags) String() string {
	if f == 0 {
		return "Flags()"
	}
	var names []string
	for i, name := range flagNames {
		if f&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return "Flags(" + strings.Join(names, "|") + ")"
}
