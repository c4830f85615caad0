package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/spark/internal/application/system"
	"github.com/younwookim/spark/internal/domain/entity"
	"github.com/younwookim/spark/internal/infrastructure/config"
	"github.com/younwookim/spark/internal/infrastructure/leveldata"
)

const testDT = 1.0 / 60

func createTestConfig() *config.GameConfig {
	return &config.GameConfig{
		Physics: &config.PhysicsConfig{
			Physics:  config.PhysicsSettings{Gravity: 768, MaxFallSpeed: 2000},
			Movement: config.MovementConfig{MaxSpeed: 192, WalkAccel: 1024, StopAccel: 1024, AirAccel: 512, AirStopAccel: 128},
			Jump:     config.JumpConfig{Velocity: 270, SustainTime: 0.125},
		},
		Entities: &config.EntitiesConfig{
			Player: config.PlayerConfig{
				Size:       config.SizeConfig{Width: 32, Height: 32},
				Hitbox:     config.Rect{Width: 32, Height: 32},
				CollectBox: config.Rect{Width: 32, Height: 32},
			},
			Pickup: config.PickupConfig{
				Size:   config.SizeConfig{Width: 32, Height: 32},
				Hitbox: config.Rect{Width: 32, Height: 32},
			},
		},
	}
}

// createTestLevels builds one section per row set. S is the start, F the
// finish, o a pickup and # ground.
func createTestLevels(t *testing.T, sections ...[]string) []*entity.Level {
	t.Helper()

	blocks, err := entity.NewBlockSet([]entity.Block{
		{Name: "ground", Solid: true, ColorCode: 0x505064},
		{Name: "start", Solid: true, ColorCode: 0x00ff00},
		{Name: "finish", Solid: true, ColorCode: 0xff0000},
		{Name: "battery", ColorCode: 0xffd700},
	})
	require.NoError(t, err)
	markers := entity.Markers{Start: 1, Finish: 2, Collectible: 3}
	mapping := map[string]string{"#": "ground", "S": "start", "F": "finish", "o": "battery"}

	levels := make([]*entity.Level, len(sections))
	for i, rows := range sections {
		grid, err := leveldata.FromRows(rows, mapping, blocks, entity.AccessEdge)
		require.NoError(t, err)
		levels[i], err = system.BuildLevel(system.LevelSpec{
			Name:        "test",
			Grid:        grid,
			Blocks:      blocks,
			Markers:     markers,
			TileSize:    32,
			DeathMargin: 1,
		})
		require.NoError(t, err)
	}
	return levels
}

var (
	firstRows = []string{
		"........",
		"........",
		".So...F.",
		"########",
	}
	secondRows = []string{
		"......",
		"......",
		".S..F.",
		"######",
	}
)

func createTestSession(t *testing.T, sections ...[]string) *Session {
	t.Helper()
	s, err := New(createTestConfig(), createTestLevels(t, sections...))
	require.NoError(t, err)
	return s
}

func TestNew_NoLevels(t *testing.T) {
	_, err := New(createTestConfig(), nil)
	assert.ErrorIs(t, err, ErrNoLevels)
}

func TestNew_SpawnsAtStart(t *testing.T) {
	s := createTestSession(t, firstRows)

	start := s.Level().Meta.Start
	player := s.Player()
	assert.Equal(t, entity.Point{X: 32, Y: 32}, start)
	assert.Equal(t, start.X, player.Transform.X)
	assert.Equal(t, start.Y, player.Transform.Y)
	assert.True(t, player.Controllable)

	assert.Equal(t, 0, s.Section())
	assert.Equal(t, 1, s.Sections())
	assert.Equal(t, 1, s.World().CountPickups())
	assert.Same(t, player, s.World().Player())
}

func TestSession_StepSettlesOnStart(t *testing.T) {
	s := createTestSession(t, firstRows)

	var ev Events
	for i := 0; i < 10; i++ {
		ev = s.Step(system.Intent{}, testDT)
	}

	m := s.Player().Motion
	assert.False(t, m.Air)
	assert.Equal(t, 32.0, s.Player().Transform.Y, "standing on the start block")
	assert.False(t, ev.Died)

	centre := s.Player().Transform.Centre()
	assert.Equal(t, centre.X, ev.Report.CameraX)
	assert.Equal(t, centre.Y, ev.Report.CameraY)
}

func TestSession_CollectsPickup(t *testing.T) {
	s := createTestSession(t, firstRows)

	// Pickup sits at (64, 64); step into it
	s.Player().Teleport(64, 64)
	ev := s.Step(system.Intent{}, testDT)

	require.Len(t, ev.Collected, 1)
	assert.Equal(t, 1, s.Collected())
	assert.Equal(t, 0, s.World().CountPickups())
	assert.False(t, s.World().Exists(ev.Collected[0]))
}

func TestSession_DeathRespawns(t *testing.T) {
	s := createTestSession(t, firstRows)
	start := s.Level().Meta.Start

	s.Player().Transform.Y = s.Level().DeathBarrier + 1
	s.Player().Motion.VelocityX = 50
	ev := s.Step(system.Intent{}, testDT)

	assert.True(t, ev.Died)
	assert.Equal(t, 1, s.Deaths())
	assert.Equal(t, start.X, s.Player().Transform.X)
	assert.Equal(t, start.Y, s.Player().Transform.Y)
	assert.Zero(t, s.Player().Motion.VelocityX)
}

func TestSession_FinishAdvancesSections(t *testing.T) {
	s := createTestSession(t, firstRows, secondRows)

	finish := s.Level().Meta.Finish
	s.Player().Teleport(finish.X, finish.Y)
	ev := s.Step(system.Intent{}, testDT)

	assert.True(t, ev.SectionCleared)
	assert.False(t, ev.StageCleared)
	assert.Equal(t, 1, s.Section())
	assert.Equal(t, 0, s.World().CountPickups(), "second section has no pickups")

	start := s.Level().Meta.Start
	assert.Equal(t, start.X, s.Player().Transform.X)

	finish = s.Level().Meta.Finish
	s.Player().Teleport(finish.X, finish.Y)
	ev = s.Step(system.Intent{}, testDT)

	assert.True(t, ev.StageCleared)
	assert.True(t, s.Cleared())

	// A cleared session no longer simulates
	before := s.Player().Transform
	ev = s.Step(system.Intent{MoveRight: true}, testDT)
	assert.True(t, ev.StageCleared)
	assert.Equal(t, before, s.Player().Transform)
}

func TestSession_ApplyPhysics(t *testing.T) {
	s := createTestSession(t, firstRows)

	cfg := *s.cfg.Physics
	cfg.Physics.Gravity = 0
	s.ApplyPhysics(&cfg)

	// Lift off the start block; without gravity the body keeps its height
	s.Player().Teleport(32, 0)
	s.Step(system.Intent{}, testDT)

	assert.Equal(t, 0.0, s.Player().Transform.Y)
	assert.Same(t, &cfg, s.cfg.Physics)
}

func TestSession_WalkRight(t *testing.T) {
	s := createTestSession(t, firstRows)
	x0 := s.Player().Transform.X

	for i := 0; i < 10; i++ {
		s.Step(system.Intent{MoveRight: true}, testDT)
	}

	assert.Greater(t, s.Player().Transform.X, x0)
	assert.True(t, s.Player().Motion.FacingRight)
	assert.True(t, s.Player().Motion.Walking)
}

func TestNewPlayer(t *testing.T) {
	cfg := config.PlayerConfig{
		Size:       config.SizeConfig{Width: 32, Height: 48},
		Hitbox:     config.Rect{OffsetX: 11, OffsetY: 16, Width: 10, Height: 32},
		CollectBox: config.Rect{OffsetX: 5, OffsetY: 16, Width: 23, Height: 32},
		Run:        config.AnimationConfig{FrameTime: 0.1, Frames: [][2]int{{1, 0}, {2, 0}}},
	}

	p := NewPlayer(cfg, 100, 200)

	assert.Equal(t, entity.Rect{X: 111, Y: 216, W: 10, H: 32}, p.Bounds())
	assert.Equal(t, entity.Rect{X: 105, Y: 216, W: 23, H: 32}, p.CollectBounds())
	assert.Equal(t, 48.0, p.Transform.Height)
	require.NotNil(t, p.Run)
	assert.Equal(t, entity.Frame{X: 1, Y: 0}, p.Run.Current())
}
