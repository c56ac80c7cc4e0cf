package widgets

import (
	"golang.org/x/image/math/f32"

	"github.com/go-gale/gale/pkg/graphics"
	"github.com/go-gale/gale/pkg/ui"
)

// Widget kind names, used to key the callback tables.
const (
	KindFrame    = "frame"
	KindButton   = "button"
	KindCheckbox = "checkbox"
	KindLabel    = "label"
)

// base carries the identity and rectangular geometry shared by the
// built-in widget kinds.
type base struct {
	id     ui.Identity
	bounds graphics.Rect
	z      float32
}

func (b *base) ID() ui.Identity {
	return b.id
}

func (b *base) Bounds() graphics.Rect {
	return b.bounds
}

func (b *base) ContainsPoint(p f32.Vec2) bool {
	return b.bounds.Contains(p)
}

func (b *base) Position() f32.Vec3 {
	return f32.Vec3{b.bounds.X, b.bounds.Y, b.z}
}

func (b *base) SetPosition(pos f32.Vec3) {
	b.bounds.X, b.bounds.Y, b.z = pos[0], pos[1], pos[2]
}

func (b *base) Update(frame graphics.FrameTime) {}

// Resize changes the widget's size in place.
func (b *base) Resize(width, height float32) {
	b.bounds.Width, b.bounds.Height = width, height
}
