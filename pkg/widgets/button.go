package widgets

import (
	"golang.org/x/image/math/f32"

	"github.com/go-gale/gale/pkg/graphics"
	"github.com/go-gale/gale/pkg/input"
	"github.com/go-gale/gale/pkg/ui"
)

// Button is a clickable, focusable push button. Press carries the
// application message a user-tier callback emits when the button
// activates; a focused button also activates from Enter or Space.
type Button[Message any] struct {
	base

	Label string
	Press Message

	Background graphics.Color
	HoverTint  graphics.Color
	PressTint  graphics.Color
	TextColor  graphics.Color

	pressed bool
	hover   bool
	focused bool
}

// NewButton creates a button with default colors.
func NewButton[Message any](id ui.Identity, bounds graphics.Rect, z float32, label string, press Message) *Button[Message] {
	return &Button[Message]{
		base:       base{id: id, bounds: bounds, z: z},
		Label:      label,
		Press:      press,
		Background: graphics.ColorGray,
		HoverTint:  graphics.RGB(0xA0, 0xA0, 0xA0),
		PressTint:  graphics.RGB(0x60, 0x60, 0x60),
		TextColor:  graphics.ColorBlack,
	}
}

func (b *Button[Message]) Kind() string {
	return KindButton
}

func (b *Button[Message]) DefaultFlags() ui.Flags {
	return ui.FlagClickAble | ui.FlagCanFocus
}

func (b *Button[Message]) Draw(ctx ui.DrawContext, frame graphics.FrameTime) error {
	fill := b.Background
	switch {
	case b.pressed:
		fill = b.PressTint
	case b.hover:
		fill = b.HoverTint
	}
	ctx.FillRect(b.bounds, fill)
	if b.focused {
		ctx.StrokeRect(b.bounds, graphics.ColorWhite, 1)
	}
	if b.Label != "" {
		center := b.bounds.Center()
		ctx.DrawText(f32.Vec2{center[0], center[1]}, b.Label, b.TextColor)
	}
	return nil
}

func (b *Button[Message]) RawEvent(actions ui.Flags, ev input.Event) []Message {
	key, ok := ev.(input.KeyEvent)
	if !ok || !key.Pressed || !actions.Has(ui.FlagIsFocused) {
		return nil
	}
	if key.Key == input.KeyEnter || key.Key == input.KeySpace {
		return []Message{b.Press}
	}
	return nil
}

// Pressed reports the visual press state.
func (b *Button[Message]) Pressed() bool {
	return b.pressed
}

// Hovered reports the visual hover state.
func (b *Button[Message]) Hovered() bool {
	return b.hover
}
