package collision

import (
	"math"

	"redgrid/internal/mathutil"
)

// TileChecker interface for checking if tiles block movement
type TileChecker interface {
	IsTileBlocking(tileX, tileY int) bool
	GetWorldBounds() (width, height int)
}

// CollisionSystem tracks entity boxes against a tile map. Entities are kept in
// registration order so pair queries are deterministic.
type CollisionSystem struct {
	tileChecker TileChecker
	entities    map[string]*Entity
	order       []string
	tileSize    float64
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(tileChecker TileChecker, tileSize float64) *CollisionSystem {
	return &CollisionSystem{
		tileChecker: tileChecker,
		entities:    make(map[string]*Entity),
		tileSize:    tileSize,
	}
}

// RegisterEntity adds an entity to the collision system
func (cs *CollisionSystem) RegisterEntity(entity *Entity) {
	if _, exists := cs.entities[entity.ID]; !exists {
		cs.order = append(cs.order, entity.ID)
	}
	cs.entities[entity.ID] = entity
}

// UnregisterEntity removes an entity from the collision system
func (cs *CollisionSystem) UnregisterEntity(id string) {
	if _, exists := cs.entities[id]; !exists {
		return
	}
	delete(cs.entities, id)
	for i, oid := range cs.order {
		if oid == id {
			cs.order = append(cs.order[:i], cs.order[i+1:]...)
			break
		}
	}
}

// UpdateEntity updates an entity's position in the collision system
func (cs *CollisionSystem) UpdateEntity(id string, center mathutil.Vec2) {
	if entity, exists := cs.entities[id]; exists {
		entity.BoundingBox.MoveTo(center)
	}
}

// GetEntityByID returns the entity with the given ID, or nil if not found
func (cs *CollisionSystem) GetEntityByID(id string) *Entity {
	if entity, ok := cs.entities[id]; ok {
		return entity
	}
	return nil
}

// GetAllEntities returns every entity in registration order
func (cs *CollisionSystem) GetAllEntities() []*Entity {
	entities := make([]*Entity, 0, len(cs.order))
	for _, id := range cs.order {
		entities = append(entities, cs.entities[id])
	}
	return entities
}

// TileAt returns the tile containing a world position.
func (cs *CollisionSystem) TileAt(p mathutil.Vec2) (tileX, tileY int) {
	return int(math.Floor(p.X / cs.tileSize)), int(math.Floor(p.Y / cs.tileSize))
}

// InteriorBlocked reports whether the tile under p blocks movement or lies on
// or beyond the outer ring of the map.
func (cs *CollisionSystem) InteriorBlocked(p mathutil.Vec2) bool {
	width, height := cs.tileChecker.GetWorldBounds()
	tileX, tileY := cs.TileAt(p)
	if tileX < 1 || tileY < 1 || tileX >= width-1 || tileY >= height-1 {
		return true
	}
	return cs.tileChecker.IsTileBlocking(tileX, tileY)
}

// AnyWithin reports whether an entity of the given type, other than exclude,
// has its center closer than radius to p.
func (cs *CollisionSystem) AnyWithin(p mathutil.Vec2, radius float64, collisionType CollisionType, exclude string) bool {
	for _, id := range cs.order {
		if id == exclude {
			continue
		}
		entity := cs.entities[id]
		if entity.CollisionType != collisionType {
			continue
		}
		if entity.BoundingBox.DistanceToPoint(p) < radius {
			return true
		}
	}
	return false
}

// PairsWithin returns every pair of entities of the given type whose centers are
// closer than distance, ordered by registration (i < j).
func (cs *CollisionSystem) PairsWithin(collisionType CollisionType, distance float64) []CollisionPair {
	var pairs []CollisionPair
	for i := 0; i < len(cs.order); i++ {
		a := cs.entities[cs.order[i]]
		if a.CollisionType != collisionType {
			continue
		}
		for j := i + 1; j < len(cs.order); j++ {
			b := cs.entities[cs.order[j]]
			if b.CollisionType != collisionType {
				continue
			}
			if a.BoundingBox.Distance(b.BoundingBox) < distance {
				pairs = append(pairs, CollisionPair{Entity1: a, Entity2: b})
			}
		}
	}
	return pairs
}

// CollisionPair represents a collision between two entities
type CollisionPair struct {
	Entity1 *Entity
	Entity2 *Entity
}

// Key identifies the pair independently of the order of its entities.
func (cp *CollisionPair) Key() string {
	if cp.Entity1.ID < cp.Entity2.ID {
		return cp.Entity1.ID + "|" + cp.Entity2.ID
	}
	return cp.Entity2.ID + "|" + cp.Entity1.ID
}
