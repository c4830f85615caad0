package ecs

import "github.com/younwookim/spark/internal/domain/entity"

// Pickup marks a collectible body
type Pickup struct {
	Spawn entity.Point // where the pickup was placed
}
