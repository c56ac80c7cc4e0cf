package graphics

import "golang.org/x/image/math/f32"

// Rect represents an axis-aligned rectangle described by its origin and size
// in screen coordinates.
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// NewRect constructs a Rect from origin, width and height values.
func NewRect(x, y, width, height float32) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float32 {
	return r.X + r.Width
}

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float32 {
	return r.Y + r.Height
}

// Origin returns the top-left corner of the rectangle.
func (r Rect) Origin() f32.Vec2 {
	return f32.Vec2{r.X, r.Y}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() f32.Vec2 {
	return f32.Vec2{r.X + r.Width*0.5, r.Y + r.Height*0.5}
}

// Contains reports whether the point lies within the rectangle.
// Points on the right and bottom edges are outside.
func (r Rect) Contains(p f32.Vec2) bool {
	return p[0] >= r.X && p[0] < r.Right() && p[1] >= r.Y && p[1] < r.Bottom()
}

// ContainsRect reports whether other lies entirely within r.
// Edges may touch.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Translate returns a copy of the rectangle shifted by the given delta.
func (r Rect) Translate(delta f32.Vec2) Rect {
	return Rect{X: r.X + delta[0], Y: r.Y + delta[1], Width: r.Width, Height: r.Height}
}

// Intersect returns the intersection of two rectangles.
// Returns empty rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := maxf(r.X, other.X)
	top := maxf(r.Y, other.Y)
	right := minf(r.Right(), other.Right())
	bottom := minf(r.Bottom(), other.Bottom())
	if left >= right || top >= bottom {
		return Rect{}
	}
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Add returns the component-wise sum of two vectors.
func Add(a, b f32.Vec2) f32.Vec2 {
	return f32.Vec2{a[0] + b[0], a[1] + b[1]}
}

// Sub returns the component-wise difference of two vectors.
func Sub(a, b f32.Vec2) f32.Vec2 {
	return f32.Vec2{a[0] - b[0], a[1] - b[1]}
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
