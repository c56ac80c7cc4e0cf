package widgets

import (
	"github.com/go-gale/gale/pkg/graphics"
	"github.com/go-gale/gale/pkg/input"
	"github.com/go-gale/gale/pkg/ui"
)

// titleBarHeight is the height of a frame's drag strip.
const titleBarHeight float32 = 24

// Frame is a window-style container panel. It can be dragged within its
// parent (or the viewport) and may optionally drag the OS window itself.
type Frame[Message any] struct {
	base

	Title      string
	Background graphics.Color
	Border     graphics.Color
	TitleColor graphics.Color

	// Movable enables widget-level dragging.
	Movable bool
	// WindowDrag makes a press on the frame start an OS window drag.
	WindowDrag bool

	focused bool

	// titleBar is cached screen-space geometry, refreshed on position change.
	titleBar graphics.Rect
}

// NewFrame creates a frame with default chrome colors.
func NewFrame[Message any](id ui.Identity, bounds graphics.Rect, z float32) *Frame[Message] {
	f := &Frame[Message]{
		base:       base{id: id, bounds: bounds, z: z},
		Background: graphics.ColorDarkGray,
		Border:     graphics.ColorGray,
		TitleColor: graphics.ColorWhite,
	}
	f.refreshLayout()
	return f
}

func (f *Frame[Message]) Kind() string {
	return KindFrame
}

func (f *Frame[Message]) DefaultFlags() ui.Flags {
	flags := ui.FlagClickAble | ui.FlagCanFocus | ui.FlagAllowChildren
	if f.Movable {
		flags |= ui.FlagMoveAble
	}
	if f.WindowDrag {
		flags |= ui.FlagCanMoveWindow
	}
	return flags
}

func (f *Frame[Message]) Draw(ctx ui.DrawContext, frame graphics.FrameTime) error {
	ctx.FillRect(f.bounds, f.Background)
	ctx.FillRect(f.titleBar, f.Border)
	if f.Title != "" {
		ctx.DrawText(f.titleBar.Origin(), f.Title, f.TitleColor)
	}
	width := float32(1)
	if f.focused {
		width = 2
	}
	ctx.StrokeRect(f.bounds, f.Border, width)
	return nil
}

func (f *Frame[Message]) RawEvent(actions ui.Flags, ev input.Event) []Message {
	return nil
}

// refreshLayout recomputes the cached title-bar rectangle.
func (f *Frame[Message]) refreshLayout() {
	f.titleBar = graphics.NewRect(f.bounds.X, f.bounds.Y, f.bounds.Width, titleBarHeight)
}

// TitleBar returns the cached drag-strip rectangle.
func (f *Frame[Message]) TitleBar() graphics.Rect {
	return f.titleBar
}
