package input

// MouseAxis selects the horizontal or vertical component of pointer motion
// or the scroll wheel.
type MouseAxis int

const (
	MouseAxisHorizontal MouseAxis = iota
	MouseAxisVertical
)

// Axis is one source of an analog value in [-1, 1] (or unbounded when Limit
// is off). The set of implementations is closed.
type Axis interface {
	isAxis()
}

// EmulatedAxis produces +1 while Pos is held, -1 while Neg is held and 0
// otherwise (or when both are held).
type EmulatedAxis struct {
	Pos Button
	Neg Button
}

// MouseMotionAxis derives a value from the pointer position delta between
// the current and the previous frame, scaled by Radius.
type MouseMotionAxis struct {
	Axis   MouseAxis
	Limit  bool
	Radius float32
}

// RelativeMotionAxis derives a value from raw relative pointer motion
// accumulated during the frame, scaled by Radius.
type RelativeMotionAxis struct {
	Axis   MouseAxis
	Limit  bool
	Radius float32
}

// WheelAxis reports the sign of scroll-wheel movement this frame.
type WheelAxis struct {
	Axis MouseAxis
}

func (EmulatedAxis) isAxis()       {}
func (MouseMotionAxis) isAxis()    {}
func (RelativeMotionAxis) isAxis() {}
func (WheelAxis) isAxis()          {}
