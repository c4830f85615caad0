package system

import (
	"math"

	"github.com/younwookim/spark/internal/domain/entity"
	"github.com/younwookim/spark/internal/infrastructure/config"
)

// FloorGapTiles is the default clearance, in tiles, a body needs below it
// for wall contact to count. Wall contact right above a floor is dropped so
// walking into a step does not read as wall sliding.
const FloorGapTiles = 1.0

// PhysicsSystem resolves bodies against the wall flags of one level.
// It only reads the level, so one system can serve many goroutines as long
// as each resolves a different body.
type PhysicsSystem struct {
	config *config.PhysicsConfig
	level  *entity.Level
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig, level *entity.Level) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		level:  level,
	}
}

// Level returns the level bodies are resolved against
func (s *PhysicsSystem) Level() *entity.Level {
	return s.level
}

// SetLevel switches to another section. Not safe during a step.
func (s *PhysicsSystem) SetLevel(level *entity.Level) {
	s.level = level
}

// SetConfig swaps the tuning. Not safe during a step.
func (s *PhysicsSystem) SetConfig(cfg *config.PhysicsConfig) {
	s.config = cfg
}

// contact collects the clamps found by the narrow phase
type contact struct {
	clampX, clampY bool
	planeX, planeY float64 // tile plane the hitbox edge is snapped to
	landed         bool
	wallLeft       bool
	wallRight      bool
}

// Resolve advances body by one step of dt seconds: gravity, swept move
// against tile faces, commit, contact flags and death check.
func (s *PhysicsSystem) Resolve(body *entity.Body, dt float64) entity.StepReport {
	m := &body.Motion

	s.applyGravity(m, dt)

	dx := m.VelocityX * dt
	dy := m.VelocityY * dt

	c := s.sweep(body.Bounds(), dx, dy)
	if c.clampX {
		m.VelocityX = 0
	}
	if c.clampY {
		m.VelocityY = 0
	}

	s.commit(body, c, dx, dy)

	m.Air = !c.landed
	m.WallLeft = c.wallLeft
	m.WallRight = c.wallRight
	if (m.WallLeft || m.WallRight) && s.floorGap(body.Bounds()) <= s.floorGapLimit() {
		m.WallLeft = false
		m.WallRight = false
	}

	centre := body.Transform.Centre()
	return entity.StepReport{
		CameraX: centre.X,
		CameraY: centre.Y,
		Landed:  c.landed,
		Died:    body.Transform.Y > s.level.DeathBarrier,
	}
}

// applyGravity integrates vertical velocity. Against a wall in the air the
// fall is slowed and capped; rising bodies still decelerate with gravity.
func (s *PhysicsSystem) applyGravity(m *entity.MotionState, dt float64) {
	gravity := s.config.Physics.Gravity
	wall := s.config.Wall

	if m.WallSliding() {
		if m.VelocityY < 0 {
			m.VelocityY += (wall.SlideAccel + gravity) * dt
		} else {
			m.VelocityY += wall.SlideAccel * dt
			if m.VelocityY > wall.SlideSpeed {
				m.VelocityY = wall.SlideSpeed
			}
		}
	} else {
		m.VelocityY += gravity * dt
	}

	if limit := s.config.Physics.MaxFallSpeed; limit > 0 && m.VelocityY > limit {
		m.VelocityY = limit
	}
}

// sweep tests the displacement (dx, dy) of hitbox r against every tile in
// the swept window. Each tile contributes at most one face, tested in the
// order Up, Left, Down, Right. Per axis the nearest plane wins.
func (s *PhysicsSystem) sweep(r entity.Rect, dx, dy float64) contact {
	var c contact
	l := s.level
	size := l.TileSize

	minX := l.GridX(math.Min(r.X, r.X+dx))
	maxX := l.GridX(math.Max(r.Right(), r.Right()+dx))
	minY := l.GridY(math.Min(r.Y, r.Y+dy))
	maxY := l.GridY(math.Max(r.Bottom(), r.Bottom()+dy))
	// one extra tile in the direction of travel
	switch {
	case dx > 0:
		maxX++
	case dx < 0:
		minX--
	}
	switch {
	case dy > 0:
		maxY++
	case dy < 0:
		minY--
	}

	for j := minY; j <= maxY; j++ {
		for i := minX; i <= maxX; i++ {
			if !l.SolidAt(i, j) {
				continue
			}
			flags := l.FlagsAt(i, j)
			if flags == 0 {
				continue
			}

			left, top := l.TileLeft(i), l.TileTop(j)
			right, bottom := left+size, top+size
			// A body that starts beside the tile keeps its start span. One
			// that starts off both spans, diagonal to the tile, is tested
			// with the span it sweeps through.
			startH := r.X < right && r.Right() > left
			startV := r.Y < bottom && r.Bottom() > top
			sweptH := math.Min(r.X, r.X+dx) < right && math.Max(r.Right(), r.Right()+dx) > left
			sweptV := math.Min(r.Y, r.Y+dy) < bottom && math.Max(r.Bottom(), r.Bottom()+dy) > top
			overlapH := startH || (sweptH && !startV)
			overlapV := startV || (sweptV && !startH)

			switch {
			case flags.Has(entity.WallUp) && dy > 0 && overlapH &&
				r.Bottom() < bottom && r.Bottom()+dy > top:
				if !c.clampY || top < c.planeY {
					c.planeY = top
				}
				c.clampY = true
				c.landed = true

			case flags.Has(entity.WallLeft) && dx > 0 && overlapV &&
				r.Right() < right && r.Right()+dx > left:
				if !c.clampX || left < c.planeX {
					c.planeX = left
				}
				c.clampX = true
				c.wallRight = true

			case flags.Has(entity.WallDown) && dy < 0 && overlapH &&
				r.Y > top && r.Y+dy < bottom:
				if !c.clampY || bottom > c.planeY {
					c.planeY = bottom
				}
				c.clampY = true

			case flags.Has(entity.WallRight) && dx < 0 && overlapV &&
				r.X > left && r.X+dx < right:
				if !c.clampX || right > c.planeX {
					c.planeX = right
				}
				c.clampX = true
				c.wallLeft = true
			}
		}
	}
	return c
}

// commit applies the resolved displacement. A clamped axis is snapped so
// the hitbox edge lies exactly on the tile plane.
func (s *PhysicsSystem) commit(body *entity.Body, c contact, dx, dy float64) {
	t := &body.Transform
	hb := body.Hitbox
	startX, startY := t.X, t.Y

	switch {
	case c.clampX && dx > 0:
		t.X = c.planeX - hb.X - hb.Width
	case c.clampX:
		t.X = c.planeX - hb.X
	default:
		t.X += dx
	}

	switch {
	case c.clampY && dy > 0:
		t.Y = c.planeY - hb.Y - hb.Height
	case c.clampY:
		t.Y = c.planeY - hb.Y
	default:
		t.Y += dy
	}

	body.Motion.PendingDX = t.X - startX
	body.Motion.PendingDY = t.Y - startY
}

// floorGap returns the distance from the bottom of r down to the nearest Up
// face under it, or +Inf when none lies within the probe depth.
func (s *PhysicsSystem) floorGap(r entity.Rect) float64 {
	l := s.level
	gap := math.Inf(1)

	minX := l.GridX(r.X)
	maxX := l.GridX(r.Right())
	minY := l.GridY(r.Bottom())
	maxY := l.GridY(r.Bottom()+s.floorGapLimit()) + 1

	for j := minY; j <= maxY; j++ {
		top := l.TileTop(j)
		d := top - r.Bottom()
		if d < 0 || d >= gap {
			continue
		}
		for i := minX; i <= maxX; i++ {
			left := l.TileLeft(i)
			if r.X >= left+l.TileSize || r.Right() <= left {
				continue
			}
			if l.SolidAt(i, j) && l.FlagsAt(i, j).Has(entity.WallUp) {
				gap = d
				break
			}
		}
	}
	return gap
}

func (s *PhysicsSystem) floorGapLimit() float64 {
	tiles := s.config.Collision.FloorGapTiles
	if tiles <= 0 {
		tiles = FloorGapTiles
	}
	return tiles * s.level.TileSize
}
