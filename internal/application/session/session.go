// Package session runs the simulation of one level: the player, its
// pickups and the sections played in order.
package session

import (
	"errors"
	"log"

	"github.com/younwookim/spark/internal/application/system"
	"github.com/younwookim/spark/internal/domain/entity"
	"github.com/younwookim/spark/internal/ecs"
	"github.com/younwookim/spark/internal/infrastructure/config"
)

var ErrNoLevels = errors.New("session needs at least one section")

// Events is what happened during one Step
type Events struct {
	Report         entity.StepReport // the player's resolver report
	Collected      []entity.EntityID
	Died           bool
	SectionCleared bool
	StageCleared   bool
}

// Session owns the world of the current section and the systems that
// advance it.
type Session struct {
	cfg     *config.GameConfig
	levels  []*entity.Level
	section int

	world   *ecs.World
	player  *entity.Player
	physics *system.PhysicsSystem
	input   *system.InputSystem
	pickups *system.PickupSystem

	collected int
	deaths    int
	cleared   bool
}

// New starts a session on the first section
func New(cfg *config.GameConfig, levels []*entity.Level) (*Session, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	s := &Session{
		cfg:     cfg,
		levels:  levels,
		physics: system.NewPhysicsSystem(cfg.Physics, levels[0]),
		input:   system.NewInputSystem(cfg.Physics),
	}
	s.enterSection(0)
	return s, nil
}

// Step advances the session by one tick
func (s *Session) Step(intent system.Intent, dt float64) Events {
	var ev Events
	if s.cleared {
		ev.StageCleared = true
		return ev
	}

	s.input.UpdatePlayer(s.player, intent, dt)
	reports := ecs.Step(s.world, s.physics, dt)
	s.player.SelectFrame(dt)
	ev.Report = reports[s.world.PlayerID]

	// pickups that fell out of the level are gone
	for id := range s.world.Pickups {
		if reports[id].Died {
			s.removePickup(id)
		}
	}

	res := s.pickups.Update(s.player.CollectBounds(), s.world.PickupBodies())
	for _, id := range res.Collected {
		s.world.DestroyEntity(id)
	}
	ev.Collected = res.Collected
	s.collected += len(res.Collected)

	switch {
	case ev.Report.Died:
		ev.Died = true
		s.deaths++
		s.Respawn()
	case res.Finished:
		ev.SectionCleared = true
		if s.section+1 < len(s.levels) {
			s.enterSection(s.section + 1)
		} else {
			s.cleared = true
			ev.StageCleared = true
		}
	}
	return ev
}

// Respawn puts the player back on the section start
func (s *Session) Respawn() {
	start := s.start()
	s.player.Teleport(start.X, start.Y)
}

// ApplyPhysics swaps the physics tuning, used by config hot reload
func (s *Session) ApplyPhysics(cfg *config.PhysicsConfig) {
	s.cfg.Physics = cfg
	s.physics.SetConfig(cfg)
	s.input.SetConfig(cfg)
}

func (s *Session) enterSection(i int) {
	s.section = i
	level := s.levels[i]
	s.physics.SetLevel(level)
	s.pickups = system.NewPickupSystem(level)

	start := s.start()
	if s.player == nil {
		s.player = NewPlayer(s.cfg.Entities.Player, start.X, start.Y)
	} else {
		s.player.Teleport(start.X, start.Y)
	}

	s.world = ecs.NewWorld()
	s.world.CreatePlayer(s.player)

	pc := s.cfg.Entities.Pickup
	for _, p := range level.Meta.Collectibles {
		id := s.world.CreatePickup(p.X, p.Y, size(pc.Size), hitbox(pc.Hitbox))
		s.pickups.Track(id, s.world.Bodies[id].Bounds())
	}

	log.Printf("section %d/%d: %s (%dx%d tiles, %d pickups)",
		i+1, len(s.levels), level.Name, level.Grid.Width, level.Grid.Height, len(level.Meta.Collectibles))
}

func (s *Session) removePickup(id entity.EntityID) {
	s.pickups.Remove(id)
	s.world.DestroyEntity(id)
}

func (s *Session) start() entity.Point {
	level := s.levels[s.section]
	if level.Meta.HasStart {
		return level.Meta.Start
	}
	return entity.Point{X: level.OriginX, Y: level.OriginY}
}

// Level returns the current section
func (s *Session) Level() *entity.Level { return s.levels[s.section] }

// Section returns the index of the current section
func (s *Session) Section() int { return s.section }

// Sections returns the number of sections
func (s *Session) Sections() int { return len(s.levels) }

// Player returns the player
func (s *Session) Player() *entity.Player { return s.player }

// World returns the world of the current section
func (s *Session) World() *ecs.World { return s.world }

// Collected returns the number of pickups collected so far
func (s *Session) Collected() int { return s.collected }

// Deaths returns how often the player died
func (s *Session) Deaths() int { return s.deaths }

// Cleared reports whether the last section is finished
func (s *Session) Cleared() bool { return s.cleared }
