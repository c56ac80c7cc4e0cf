package graphics

import "time"

// FrameTime carries per-frame timing handed to widget Update and Draw calls.
type FrameTime struct {
	// Delta is the time elapsed since the previous frame.
	Delta time.Duration
	// Total is the time elapsed since the UI instance started.
	Total time.Duration
}

// DeltaSeconds returns the frame delta in seconds.
func (t FrameTime) DeltaSeconds() float32 {
	return float32(t.Delta.Seconds())
}

// TotalSeconds returns the total running time in seconds.
func (t FrameTime) TotalSeconds() float32 {
	return float32(t.Total.Seconds())
}
