package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// Point is a world-space position
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned world-space rectangle
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x of the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether r and o share interior area. Touching edges do
// not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// StepReport carries the signals one resolver step produces for the rest of
// the tick.
type StepReport struct {
	CameraX float64 // centre of the visual transform
	CameraY float64
	Landed  bool // an Up face clamped the body this step
	Died    bool // the body crossed the level's death barrier
}
