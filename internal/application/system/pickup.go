package system

import (
	"math"
	"slices"

	"github.com/solarlune/resolv"

	"github.com/younwookim/spark/internal/domain/entity"
)

const (
	tagCollector = "collector"
	tagPickup    = "pickup"
	tagFinish    = "finish"
)

// PickupResult reports what the collector touched this tick
type PickupResult struct {
	Collected []entity.EntityID // ascending
	Finished  bool
}

// PickupSystem tracks pickups and the finish tile in a resolv space and
// reports which ones the player's collect box overlaps.
type PickupSystem struct {
	level     *entity.Level
	space     *resolv.Space
	collector *resolv.Object
	finish    *resolv.Object
	objects   map[entity.EntityID]*resolv.Object
	owners    map[*resolv.Object]entity.EntityID
}

// NewPickupSystem creates a space covering level. The finish tile is added
// when the level has one.
func NewPickupSystem(level *entity.Level) *PickupSystem {
	cell := int(math.Max(1, level.TileSize))
	space := resolv.NewSpace(
		int(math.Ceil(level.Width())), int(math.Ceil(level.Height())),
		cell, cell,
	)

	s := &PickupSystem{
		level:     level,
		space:     space,
		collector: resolv.NewObject(0, 0, 1, 1, tagCollector),
		objects:   make(map[entity.EntityID]*resolv.Object),
		owners:    make(map[*resolv.Object]entity.EntityID),
	}
	space.Add(s.collector)

	if level.Meta.HasFinish {
		f := level.Meta.Finish
		s.finish = resolv.NewObject(f.X-level.OriginX, f.Y-level.OriginY, level.TileSize, level.TileSize, tagFinish)
		space.Add(s.finish)
	}
	return s
}

// Track adds a pickup with its current bounds
func (s *PickupSystem) Track(id entity.EntityID, bounds entity.Rect) {
	if _, ok := s.objects[id]; ok {
		return
	}
	x, y := s.local(bounds)
	obj := resolv.NewObject(x, y, bounds.W, bounds.H, tagPickup)
	s.space.Add(obj)
	s.objects[id] = obj
	s.owners[obj] = id
}

// Remove stops tracking a pickup
func (s *PickupSystem) Remove(id entity.EntityID) {
	obj, ok := s.objects[id]
	if !ok {
		return
	}
	s.space.Remove(obj)
	delete(s.objects, id)
	delete(s.owners, obj)
}

// Len returns the number of tracked pickups
func (s *PickupSystem) Len() int {
	return len(s.objects)
}

// Update syncs pickup positions from bodies and checks them against the
// collect box. Collected pickups are removed from the space.
func (s *PickupSystem) Update(collect entity.Rect, bodies map[entity.EntityID]*entity.Body) PickupResult {
	var result PickupResult

	for id, obj := range s.objects {
		body, ok := bodies[id]
		if !ok {
			continue
		}
		s.place(obj, body.Bounds())
	}
	s.place(s.collector, collect)

	check := s.collector.Check(0, 0, tagPickup, tagFinish)
	if check == nil {
		return result
	}

	// Check is cell based; confirm with the exact rectangles
	for _, obj := range check.ObjectsByTags(tagPickup) {
		id, ok := s.owners[obj]
		if !ok || !s.rect(obj).Overlaps(collect) {
			continue
		}
		result.Collected = append(result.Collected, id)
	}
	for _, obj := range check.ObjectsByTags(tagFinish) {
		if s.rect(obj).Overlaps(collect) {
			result.Finished = true
		}
	}

	slices.Sort(result.Collected)
	for _, id := range result.Collected {
		s.Remove(id)
	}
	return result
}

func (s *PickupSystem) place(obj *resolv.Object, r entity.Rect) {
	obj.X, obj.Y = s.local(r)
	obj.W, obj.H = r.W, r.H
	obj.Update()
}

// local converts world coordinates to space coordinates
func (s *PickupSystem) local(r entity.Rect) (float64, float64) {
	return r.X - s.level.OriginX, r.Y - s.level.OriginY
}

func (s *PickupSystem) rect(obj *resolv.Object) entity.Rect {
	return entity.Rect{X: obj.X + s.level.OriginX, Y: obj.Y + s.level.OriginY, W: obj.W, H: obj.H}
}
