package ui

import (
	"golang.org/x/image/math/f32"

	"github.com/go-gale/gale/pkg/graphics"
	"github.com/go-gale/gale/pkg/input"
)

// testMsg is the application message type used throughout the tests.
type testMsg string

// testData is the mutable application context handed to user callbacks.
type testData struct {
	log []string
}

// testControl is a minimal Control implementation with rectangular bounds.
type testControl struct {
	id      Identity
	kind    string
	bounds  graphics.Rect
	z       float32
	flags   Flags
	drawErr error
	updates int
	rawFn   func(actions Flags, ev input.Event) []testMsg
}

func (c *testControl) ID() Identity                   { return c.id }
func (c *testControl) Kind() string                   { return c.kind }
func (c *testControl) ContainsPoint(p f32.Vec2) bool  { return c.bounds.Contains(p) }
func (c *testControl) Bounds() graphics.Rect          { return c.bounds }
func (c *testControl) Position() f32.Vec3             { return f32.Vec3{c.bounds.X, c.bounds.Y, c.z} }
func (c *testControl) Update(graphics.FrameTime)      { c.updates++ }
func (c *testControl) DefaultFlags() Flags            { return c.flags }

func (c *testControl) SetPosition(pos f32.Vec3) {
	c.bounds.X, c.bounds.Y, c.z = pos[0], pos[1], pos[2]
}

func (c *testControl) Draw(DrawContext, graphics.FrameTime) error { return c.drawErr }

func (c *testControl) RawEvent(actions Flags, ev input.Event) []testMsg {
	if c.rawFn != nil {
		return c.rawFn(actions, ev)
	}
	return nil
}

// nopDrawContext satisfies DrawContext for DrawFrame tests.
type nopDrawContext struct{}

func (nopDrawContext) FillRect(graphics.Rect, graphics.Color)            {}
func (nopDrawContext) StrokeRect(graphics.Rect, graphics.Color, float32) {}
func (nopDrawContext) DrawText(f32.Vec2, string, graphics.Color)         {}

// recordingHost records window-move deltas and can fail on demand.
type recordingHost struct {
	deltas []f32.Vec2
	err    error
}

func (h *recordingHost) SetWindowPosition(delta f32.Vec2) error {
	if h.err != nil {
		return h.err
	}
	h.deltas = append(h.deltas, delta)
	return nil
}

func newTestUI() *UI[testMsg, testData] {
	return New[testMsg, testData](graphics.NewRect(0, 0, 800, 600))
}

// moveTo feeds a pointer-move event.
func moveTo(u *UI[testMsg, testData], d *testData, x, y float32) []testMsg {
	return u.HandleEvent(input.PointerMoveEvent{Position: f32.Vec2{x, y}}, d)
}

// pressAt moves the pointer to the point and presses the left button.
func pressAt(u *UI[testMsg, testData], d *testData, x, y float32) []testMsg {
	moveTo(u, d, x, y)
	return u.HandleEvent(input.ButtonEvent{Button: input.ButtonLeft, Pressed: true}, d)
}

// releaseAt moves the pointer to the point and releases the left button.
func releaseAt(u *UI[testMsg, testData], d *testData, x, y float32) []testMsg {
	moveTo(u, d, x, y)
	return u.HandleEvent(input.ButtonEvent{Button: input.ButtonLeft, Pressed: false}, d)
}
