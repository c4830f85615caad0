package entity

// Frame is a cell on a sprite sheet
type Frame struct {
	X, Y int
}

// Animation steps through a fixed frame sequence at a constant rate.
type Animation struct {
	Frames    []Frame
	FrameTime float64 // seconds per frame

	elapsed float64
	index   int
}

// NewAnimation creates an animation over frames
func NewAnimation(frameTime float64, frames ...Frame) *Animation {
	return &Animation{Frames: frames, FrameTime: frameTime}
}

// Update advances the animation by dt seconds, looping at the end.
func (a *Animation) Update(dt float64) {
	if len(a.Frames) == 0 || a.FrameTime <= 0 {
		return
	}
	a.elapsed += dt
	for a.elapsed >= a.FrameTime {
		a.elapsed -= a.FrameTime
		a.index = (a.index + 1) % len(a.Frames)
	}
}

// Current returns the active frame
func (a *Animation) Current() Frame {
	if len(a.Frames) == 0 {
		return Frame{}
	}
	return a.Frames[a.index]
}

// Reset rewinds to the first frame
func (a *Animation) Reset() {
	a.elapsed = 0
	a.index = 0
}
