package widgets

import (
	"golang.org/x/image/math/f32"

	"github.com/go-gale/gale/pkg/graphics"
	"github.com/go-gale/gale/pkg/input"
	"github.com/go-gale/gale/pkg/ui"
)

// Checkbox is a two-state toggle. The toggle itself happens in the
// internal tier on release; the widget mirrors the Checked flag into its
// draw state.
type Checkbox[Message any] struct {
	base

	Label string

	BoxColor   graphics.Color
	CheckColor graphics.Color
	TextColor  graphics.Color

	checked bool
	focused bool
}

// NewCheckbox creates a checkbox; checked sets the initial state mirrored
// by DefaultFlags.
func NewCheckbox[Message any](id ui.Identity, bounds graphics.Rect, z float32, label string, checked bool) *Checkbox[Message] {
	return &Checkbox[Message]{
		base:       base{id: id, bounds: bounds, z: z},
		Label:      label,
		BoxColor:   graphics.ColorWhite,
		CheckColor: graphics.ColorBlack,
		TextColor:  graphics.ColorWhite,
		checked:    checked,
	}
}

func (c *Checkbox[Message]) Kind() string {
	return KindCheckbox
}

func (c *Checkbox[Message]) DefaultFlags() ui.Flags {
	flags := ui.FlagClickAble | ui.FlagCanFocus
	if c.checked {
		flags |= ui.FlagChecked
	}
	return flags
}

func (c *Checkbox[Message]) Draw(ctx ui.DrawContext, frame graphics.FrameTime) error {
	box := graphics.NewRect(c.bounds.X, c.bounds.Y, c.bounds.Height, c.bounds.Height)
	ctx.FillRect(box, c.BoxColor)
	if c.checked {
		inset := c.bounds.Height * 0.25
		mark := graphics.NewRect(box.X+inset, box.Y+inset, box.Width-2*inset, box.Height-2*inset)
		ctx.FillRect(mark, c.CheckColor)
	}
	if c.focused {
		ctx.StrokeRect(box, graphics.ColorWhite, 1)
	}
	if c.Label != "" {
		ctx.DrawText(f32.Vec2{box.Right() + 4, c.bounds.Y}, c.Label, c.TextColor)
	}
	return nil
}

func (c *Checkbox[Message]) RawEvent(actions ui.Flags, ev input.Event) []Message {
	return nil
}

// Checked reports the mirrored toggle state.
func (c *Checkbox[Message]) Checked() bool {
	return c.checked
}
