package entity

// Phase is the coarse movement state of a body
type Phase int

const (
	PhaseGrounded Phase = iota
	PhaseAirborne
)

func (p Phase) String() string {
	if p == PhaseAirborne {
		return "airborne"
	}
	return "grounded"
}

// Transform is the visual rectangle of a body. Its centre is the camera
// target for the player.
type Transform struct {
	X, Y          float64
	Width, Height float64
}

// Centre returns the centre of the transform
func (t Transform) Centre() Point {
	return Point{X: t.X + t.Width/2, Y: t.Y + t.Height/2}
}

// Hitbox is a rectangle relative to the transform's top-left corner.
// Collision uses the hitbox, never the visual size.
type Hitbox struct {
	X, Y          float64
	Width, Height float64
}

// World places the hitbox at t
func (h Hitbox) World(t Transform) Rect {
	return Rect{X: t.X + h.X, Y: t.Y + h.Y, W: h.Width, H: h.Height}
}

// MotionState is the per-body kinematic and jump state. The resolver
// writes it once per tick; nothing else mutates it mid-step.
type MotionState struct {
	VelocityX float64
	VelocityY float64

	// Displacement committed by the last resolve, after clamping.
	PendingDX float64
	PendingDY float64

	Air       bool
	WallLeft  bool // touching a wall on the left side
	WallRight bool

	JumpLock      bool    // jump must be released before it can fire again
	JumpTimer     float64 // remaining jump sustain
	WallJumpTimer float64 // remaining wall-jump commit; input ignored while > 0

	FacingRight bool
	Walking     bool
}

// Phase returns Airborne while the body has no floor under it
func (m *MotionState) Phase() Phase {
	if m.Air {
		return PhaseAirborne
	}
	return PhaseGrounded
}

// WallSliding reports whether the body is airborne against a wall
func (m *MotionState) WallSliding() bool {
	return m.Air && (m.WallLeft || m.WallRight)
}

// Body is anything the collision resolver moves
type Body struct {
	Transform Transform
	Hitbox    Hitbox
	Motion    MotionState
}

// NewBody creates an airborne body at (x, y)
func NewBody(x, y float64, size Transform, hitbox Hitbox) *Body {
	return &Body{
		Transform: Transform{X: x, Y: y, Width: size.Width, Height: size.Height},
		Hitbox:    hitbox,
		Motion:    MotionState{Air: true, FacingRight: true},
	}
}

// Bounds returns the hitbox in world space
func (b *Body) Bounds() Rect {
	return b.Hitbox.World(b.Transform)
}

// Teleport moves the body to (x, y) and clears all motion
func (b *Body) Teleport(x, y float64) {
	b.Transform.X = x
	b.Transform.Y = y
	facing := b.Motion.FacingRight
	b.Motion = MotionState{Air: true, FacingRight: facing}
}

// Player sprite sheet cells
var (
	FrameIdle     = Frame{X: 0, Y: 0}
	FrameAir      = Frame{X: 1, Y: 1}
	FrameWallHold = Frame{X: 2, Y: 1}
)

// Player represents the player entity
type Player struct {
	Body
	CollectBox Hitbox // pickup overlap area, larger than the hitbox

	Run   *Animation
	Frame Frame

	// Controllable is false while a death or clear transition plays.
	Controllable bool
}

// NewPlayer creates a controllable player at (x, y)
func NewPlayer(x, y float64, size Transform, hitbox, collect Hitbox, run *Animation) *Player {
	return &Player{
		Body:         *NewBody(x, y, size, hitbox),
		CollectBox:   collect,
		Run:          run,
		Frame:        FrameIdle,
		Controllable: true,
	}
}

// CollectBounds returns the collect box in world space
func (p *Player) CollectBounds() Rect {
	return p.CollectBox.World(p.Transform)
}

// SelectFrame picks the sprite cell for the current motion state.
func (p *Player) SelectFrame(dt float64) Frame {
	m := &p.Motion
	switch {
	case m.Air && (m.WallLeft || m.WallRight):
		p.Frame = FrameWallHold
	case m.Air:
		p.Frame = FrameAir
	case m.Walking && p.Run != nil:
		p.Run.Update(dt)
		p.Frame = p.Run.Current()
	default:
		if p.Run != nil {
			p.Run.Reset()
		}
		p.Frame = FrameIdle
	}
	return p.Frame
}
