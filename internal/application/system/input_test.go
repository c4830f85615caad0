package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/spark/internal/domain/entity"
)

func createTestPlayer(air bool) *entity.Player {
	p := entity.NewPlayer(0, 0,
		entity.Transform{Width: 32, Height: 32},
		entity.Hitbox{Width: 32, Height: 32},
		entity.Hitbox{Width: 32, Height: 32},
		nil,
	)
	p.Motion.Air = air
	return p
}

func TestInputSystem_Movement(t *testing.T) {
	tests := []struct {
		name   string
		air    bool
		vx     float64
		intent Intent
		want   float64
	}{
		{"walk from rest", false, 0, Intent{MoveRight: true}, 1024 * testDT},
		{"walk left from rest", false, 0, Intent{MoveLeft: true}, -1024 * testDT},
		{"air control", true, 0, Intent{MoveRight: true}, 512 * testDT},
		{"capped at max speed", false, 190, Intent{MoveRight: true}, 192},
		{"stop on ground", false, 100, Intent{}, 100 - 1024*testDT},
		{"stop in air", true, 100, Intent{}, 100 - 128*testDT},
		{"stop never overshoots", false, 5, Intent{}, 0},
		{"turnaround brakes and accelerates", false, 100, Intent{MoveLeft: true}, 100 - (1024+1024)*testDT},
		{"over speed bleeds at stop rate", true, 400, Intent{MoveRight: true}, 400 - 128*testDT},
		{"over speed never drops below max", false, 195, Intent{MoveRight: true}, 192},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := NewInputSystem(createTestPhysicsConfig())
			p := createTestPlayer(tt.air)
			p.Motion.VelocityX = tt.vx

			sys.UpdatePlayer(p, tt.intent, testDT)

			assert.InDelta(t, tt.want, p.Motion.VelocityX, 1e-9)
		})
	}
}

func TestInputSystem_FacingAndWalking(t *testing.T) {
	sys := NewInputSystem(createTestPhysicsConfig())
	p := createTestPlayer(false)

	sys.UpdatePlayer(p, Intent{MoveLeft: true}, testDT)
	assert.False(t, p.Motion.FacingRight)
	assert.True(t, p.Motion.Walking)

	sys.UpdatePlayer(p, Intent{}, testDT)
	assert.False(t, p.Motion.FacingRight, "facing kept when released")
	assert.False(t, p.Motion.Walking)
}

func TestInputSystem_Jump(t *testing.T) {
	cfg := createTestPhysicsConfig()
	sys := NewInputSystem(cfg)
	p := createTestPlayer(false)
	held := Intent{JumpHeld: true}

	sys.UpdatePlayer(p, held, testDT)

	m := &p.Motion
	assert.Equal(t, -270.0, m.VelocityY)
	assert.Equal(t, 0.125, m.JumpTimer)
	assert.True(t, m.JumpLock)
	assert.False(t, m.Air, "the resolver decides when the body leaves the ground")

	t.Run("sustains while held", func(t *testing.T) {
		m.VelocityY = -200 // gravity ate some of it
		sys.UpdatePlayer(p, held, testDT)
		assert.Equal(t, -270.0, m.VelocityY)
		assert.InDelta(t, 0.125-testDT, m.JumpTimer, 1e-9)
	})

	t.Run("sustain runs out", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			sys.UpdatePlayer(p, held, testDT)
		}
		assert.Zero(t, m.JumpTimer)

		m.VelocityY = -100
		sys.UpdatePlayer(p, held, testDT)
		assert.Equal(t, -100.0, m.VelocityY, "no more sustain")
		assert.True(t, m.JumpLock, "locked while still held")
	})

	t.Run("release unlocks", func(t *testing.T) {
		sys.UpdatePlayer(p, Intent{}, testDT)
		assert.False(t, m.JumpLock)
	})
}

func TestInputSystem_JumpReleaseCutsSustain(t *testing.T) {
	sys := NewInputSystem(createTestPhysicsConfig())
	p := createTestPlayer(false)

	sys.UpdatePlayer(p, Intent{JumpHeld: true}, testDT)
	sys.UpdatePlayer(p, Intent{}, testDT)

	assert.Zero(t, p.Motion.JumpTimer)
}

func TestInputSystem_JumpHoldPastSustain(t *testing.T) {
	cfg := createTestPhysicsConfig()
	level := createTestLevel(t,
		"......",
		"......",
		"......",
		"......",
		"......",
		"......",
		"######",
	)

	// jump from the floor, hold for n ticks, then run to a fixed tick count
	jumpFor := func(hold int) *entity.Player {
		input := NewInputSystem(cfg)
		physics := NewPhysicsSystem(cfg, level)
		p := entity.NewPlayer(64, 160,
			entity.Transform{Width: 32, Height: 32},
			entity.Hitbox{Width: 32, Height: 32},
			entity.Hitbox{Width: 32, Height: 32},
			nil,
		)
		p.Motion.Air = false

		for i := 0; i < 20; i++ {
			input.UpdatePlayer(p, Intent{JumpHeld: i < hold}, testDT)
			physics.Resolve(&p.Body, testDT)
		}
		return p
	}

	sustainTicks := int(math.Ceil(cfg.Jump.SustainTime / testDT))
	exact := jumpFor(sustainTicks)
	require.True(t, exact.Motion.Air)
	assert.InDelta(t, -116.4, exact.Motion.VelocityY, 1e-9)

	for _, hold := range []int{sustainTicks + 1, 15, 20} {
		longer := jumpFor(hold)
		assert.InDelta(t, exact.Motion.VelocityY, longer.Motion.VelocityY, 1e-9, "hold %d ticks", hold)
		assert.InDelta(t, exact.Transform.Y, longer.Transform.Y, 1e-9, "hold %d ticks", hold)
	}

	short := jumpFor(3)
	assert.Greater(t, short.Motion.VelocityY, exact.Motion.VelocityY, "early release jumps lower")
}

func TestInputSystem_NoAirJump(t *testing.T) {
	sys := NewInputSystem(createTestPhysicsConfig())
	p := createTestPlayer(true)
	p.Motion.VelocityY = 50

	sys.UpdatePlayer(p, Intent{JumpHeld: true}, testDT)

	assert.Equal(t, 50.0, p.Motion.VelocityY)
	assert.False(t, p.Motion.JumpLock)
}

func TestInputSystem_WallJump(t *testing.T) {
	tests := []struct {
		name      string
		wallRight bool
		wantVX    float64
		wantFace  bool
	}{
		{"off a right wall", true, -192 * 2.25, false},
		{"off a left wall", false, 192 * 2.25, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := NewInputSystem(createTestPhysicsConfig())
			p := createTestPlayer(true)
			p.Motion.WallRight = tt.wallRight
			p.Motion.WallLeft = !tt.wallRight

			sys.UpdatePlayer(p, Intent{JumpHeld: true}, testDT)

			m := p.Motion
			assert.Equal(t, tt.wantVX, m.VelocityX)
			assert.Equal(t, -270*1.125, m.VelocityY)
			assert.Equal(t, 0.5, m.WallJumpTimer)
			assert.True(t, m.JumpLock)
			assert.Equal(t, tt.wantFace, m.FacingRight)
			assert.False(t, m.WallLeft)
			assert.False(t, m.WallRight)
		})
	}
}

func TestInputSystem_WallJumpNeedsRelease(t *testing.T) {
	sys := NewInputSystem(createTestPhysicsConfig())
	p := createTestPlayer(true)
	p.Motion.WallRight = true
	p.Motion.JumpLock = true

	sys.UpdatePlayer(p, Intent{JumpHeld: true}, testDT)

	assert.Zero(t, p.Motion.VelocityX)
	assert.Zero(t, p.Motion.WallJumpTimer)
}

func TestInputSystem_WallJumpCommit(t *testing.T) {
	sys := NewInputSystem(createTestPhysicsConfig())
	p := createTestPlayer(true)
	p.Motion.WallRight = true

	sys.UpdatePlayer(p, Intent{JumpHeld: true}, testDT)
	launch := p.Motion.VelocityX
	require.Less(t, launch, 0.0)

	// Steering back toward the wall is ignored while committed
	sys.UpdatePlayer(p, Intent{JumpHeld: true, MoveRight: true}, testDT)
	assert.Equal(t, launch, p.Motion.VelocityX)
	assert.InDelta(t, 0.5-testDT, p.Motion.WallJumpTimer, 1e-9)

	// Releasing jump ends the commit and hands control back
	sys.UpdatePlayer(p, Intent{MoveRight: true}, testDT)
	assert.Zero(t, p.Motion.WallJumpTimer)
	assert.Greater(t, p.Motion.VelocityX, launch)
}

func TestInputSystem_NotControllable(t *testing.T) {
	sys := NewInputSystem(createTestPhysicsConfig())
	p := createTestPlayer(false)
	p.Controllable = false

	sys.UpdatePlayer(p, Intent{MoveRight: true, JumpHeld: true}, testDT)

	assert.Zero(t, p.Motion.VelocityX)
	assert.Zero(t, p.Motion.VelocityY)
	assert.False(t, p.Motion.Walking)
}

func TestInputSystem_SetConfig(t *testing.T) {
	sys := NewInputSystem(createTestPhysicsConfig())
	cfg := createTestPhysicsConfig()
	cfg.Movement.WalkAccel = 60
	sys.SetConfig(cfg)

	p := createTestPlayer(false)
	sys.UpdatePlayer(p, Intent{MoveRight: true}, testDT)

	assert.InDelta(t, 1.0, p.Motion.VelocityX, 1e-9)
}

func TestApproach(t *testing.T) {
	assert.Equal(t, 5.0, approach(0, 10, 5))
	assert.Equal(t, 10.0, approach(8, 10, 5))
	assert.Equal(t, -5.0, approach(0, -10, 5))
	assert.Equal(t, 3.0, approach(3, 3, 1))
}
