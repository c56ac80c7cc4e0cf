package widgets

import (
	"github.com/go-gale/gale/pkg/graphics"
	"github.com/go-gale/gale/pkg/input"
	"github.com/go-gale/gale/pkg/ui"
)

// Label is static text. It participates in hit testing but delegates any
// click to its parent.
type Label[Message any] struct {
	base

	Text      string
	TextColor graphics.Color
}

// NewLabel creates a label.
func NewLabel[Message any](id ui.Identity, bounds graphics.Rect, z float32, text string) *Label[Message] {
	return &Label[Message]{
		base:      base{id: id, bounds: bounds, z: z},
		Text:      text,
		TextColor: graphics.ColorWhite,
	}
}

func (l *Label[Message]) Kind() string {
	return KindLabel
}

func (l *Label[Message]) DefaultFlags() ui.Flags {
	return ui.FlagClickAble | ui.FlagCanClickBehind
}

func (l *Label[Message]) Draw(ctx ui.DrawContext, frame graphics.FrameTime) error {
	ctx.DrawText(l.bounds.Origin(), l.Text, l.TextColor)
	return nil
}

func (l *Label[Message]) RawEvent(actions ui.Flags, ev input.Event) []Message {
	return nil
}
