package ecs

import (
	"slices"

	"github.com/younwookim/spark/internal/domain/entity"
)

// World holds the component maps and the next entity ID
type World struct {
	nextID entity.EntityID

	// Components
	Bodies  map[entity.EntityID]*entity.Body
	Pickups map[entity.EntityID]Pickup

	// Tags
	IsPlayer map[entity.EntityID]struct{}

	// Singleton references
	PlayerID entity.EntityID
	player   *entity.Player
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:   1, // 0 is "nil"
		Bodies:   make(map[entity.EntityID]*entity.Body),
		Pickups:  make(map[entity.EntityID]Pickup),
		IsPlayer: make(map[entity.EntityID]struct{}),
	}
}

// NewEntity returns a new unique entity ID (never recycled)
func (w *World) NewEntity() entity.EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id entity.EntityID) {
	delete(w.Bodies, id)
	delete(w.Pickups, id)
	delete(w.IsPlayer, id)
	if id == w.PlayerID {
		w.PlayerID = 0
		w.player = nil
	}
}

// Exists checks if an entity has a body
func (w *World) Exists(id entity.EntityID) bool {
	_, ok := w.Bodies[id]
	return ok
}

// CreatePlayer registers p as the player entity. The world stores the
// player's embedded body, so resolving it moves p.
func (w *World) CreatePlayer(p *entity.Player) entity.EntityID {
	id := w.NewEntity()

	w.Bodies[id] = &p.Body
	w.IsPlayer[id] = struct{}{}

	w.PlayerID = id
	w.player = p
	return id
}

// CreatePickup creates a collectible body at (x, y)
func (w *World) CreatePickup(x, y float64, size entity.Transform, hitbox entity.Hitbox) entity.EntityID {
	id := w.NewEntity()

	w.Bodies[id] = entity.NewBody(x, y, size, hitbox)
	w.Pickups[id] = Pickup{Spawn: entity.Point{X: x, Y: y}}

	return id
}

// Player returns the player, or nil before CreatePlayer
func (w *World) Player() *entity.Player {
	return w.player
}

// IDs returns every entity with a body in ascending order
func (w *World) IDs() []entity.EntityID {
	ids := make([]entity.EntityID, 0, len(w.Bodies))
	for id := range w.Bodies {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// PickupBodies returns the bodies of all pickups
func (w *World) PickupBodies() map[entity.EntityID]*entity.Body {
	out := make(map[entity.EntityID]*entity.Body, len(w.Pickups))
	for id := range w.Pickups {
		if b, ok := w.Bodies[id]; ok {
			out[id] = b
		}
	}
	return out
}

// CountPickups returns the number of pickups left
func (w *World) CountPickups() int {
	return len(w.Pickups)
}
