package system

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/spark/internal/domain/entity"
	"github.com/younwookim/spark/internal/infrastructure/config"
)

// InputSystem turns intents into velocity changes: walking, jumping and
// wall jumping.
type InputSystem struct {
	config *config.PhysicsConfig
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.PhysicsConfig) *InputSystem {
	return &InputSystem{config: cfg}
}

// SetConfig swaps the tuning
func (s *InputSystem) SetConfig(cfg *config.PhysicsConfig) {
	s.config = cfg
}

// GetInput reads the current key state
func (s *InputSystem) GetInput() Intent {
	return Intent{
		MoveLeft:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		MoveRight: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		JumpHeld: ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeySpace) ||
			ebiten.IsKeyPressed(ebiten.KeyArrowUp),
	}
}

// UpdatePlayer applies one tick of intent to the player's velocity.
// A player that is not controllable behaves as if nothing is held.
func (s *InputSystem) UpdatePlayer(player *entity.Player, intent Intent, dt float64) {
	if !player.Controllable {
		intent = Intent{}
	}
	m := &player.Motion

	s.updateWallJumpTimer(m, intent, dt)

	// Horizontal input is ignored while a wall jump is committed
	if m.WallJumpTimer <= 0 {
		s.handleMovement(m, intent, dt)
	}

	s.handleJump(m, intent, dt)
}

// updateWallJumpTimer counts the wall-jump commit down. Releasing jump ends
// it early.
func (s *InputSystem) updateWallJumpTimer(m *entity.MotionState, intent Intent, dt float64) {
	if m.WallJumpTimer <= 0 {
		return
	}
	m.WallJumpTimer -= dt
	if m.WallJumpTimer < 0 || !intent.JumpHeld {
		m.WallJumpTimer = 0
	}
}

// handleMovement accelerates toward the walking speed or brakes to a stop.
// Speeds above the walking speed (after a wall jump) bleed off at the stop rate.
func (s *InputSystem) handleMovement(m *entity.MotionState, intent Intent, dt float64) {
	mv := s.config.Movement
	accel, stop := mv.WalkAccel, mv.StopAccel
	if m.Air {
		accel, stop = mv.AirAccel, mv.AirStopAccel
	}

	dir := float64(intent.Direction())
	m.Walking = dir != 0
	if dir != 0 {
		m.FacingRight = dir > 0
	}

	switch {
	case dir == 0:
		m.VelocityX = approach(m.VelocityX, 0, stop*dt)
	case m.VelocityX*dir > mv.MaxSpeed:
		m.VelocityX = approach(m.VelocityX, dir*mv.MaxSpeed, stop*dt)
	default:
		a := accel
		if m.VelocityX*dir < 0 {
			// turning around brakes and accelerates at once
			a += stop
		}
		m.VelocityX = approach(m.VelocityX, dir*mv.MaxSpeed, a*dt)
	}
}

// handleJump runs the jump sequence: sustain while the timer lasts, then
// wait for release, then launch from the ground or off a wall.
func (s *InputSystem) handleJump(m *entity.MotionState, intent Intent, dt float64) {
	jump := s.config.Jump

	switch {
	case m.JumpTimer > 0:
		m.JumpTimer -= dt
		m.VelocityY = -jump.Velocity
		if m.JumpTimer < 0 || !intent.JumpHeld {
			m.JumpTimer = 0
		}

	case m.JumpLock:
		m.JumpLock = intent.JumpHeld

	case intent.JumpHeld && m.Air:
		if m.WallLeft || m.WallRight {
			s.wallJump(m)
		}

	case intent.JumpHeld:
		m.VelocityY = -jump.Velocity
		m.JumpTimer = jump.SustainTime
		m.JumpLock = true
	}
}

// wallJump launches the body away from the wall it is holding
func (s *InputSystem) wallJump(m *entity.MotionState) {
	wall := s.config.Wall
	away := 1.0
	if m.WallRight {
		away = -1
	}

	m.VelocityX = away * s.config.Movement.MaxSpeed * wall.SpeedMultiplier
	m.VelocityY = -s.config.Jump.Velocity * wall.LiftMultiplier
	m.WallJumpTimer = wall.CommitTime
	m.JumpLock = true
	m.FacingRight = away > 0
	m.WallLeft = false
	m.WallRight = false
}

// approach moves v toward target by at most step
func approach(v, target, step float64) float64 {
	if v < target {
		return min(v+step, target)
	}
	return max(v-step, target)
}
