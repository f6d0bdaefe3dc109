package mover

import (
	"redgrid/internal/collision"
	"redgrid/internal/config"
	"redgrid/internal/logger"
	"redgrid/internal/mathutil"
	"redgrid/internal/world"

	"github.com/sirupsen/logrus"
)

// PushTarget is the body movers shove around, normally the player.
type PushTarget interface {
	Position() mathutil.Vec2
	// Push displaces the body by delta and sends it on to target, the
	// center of the cell it is being pushed into.
	Push(delta, target mathutil.Vec2)
}

// PlayerID names the push target inside the collision system.
const PlayerID = "player"

// Field steps every mover of a level.
type Field struct {
	movers    []*Mover
	metrics   world.Metrics
	threshold float64 // center distance that counts as contact
	extent    float64 // edge length of a mover body
	system    *collision.CollisionSystem
	contacts  map[string]bool
	held      map[*Mover]bool
	log       *logrus.Entry
}

// NewField registers movers with a collision system over grid.
func NewField(grid *world.Grid, movers []*Mover, cellSize, threshold, extent float64) *Field {
	f := &Field{
		movers:    movers,
		metrics:   world.Metrics{CellSize: cellSize},
		threshold: threshold,
		extent:    extent,
		system:    collision.NewCollisionSystem(grid, cellSize),
		contacts:  make(map[string]bool),
		held:      make(map[*Mover]bool),
		log:       logger.For("mover"),
	}
	for _, m := range movers {
		f.system.RegisterEntity(collision.NewEntity(m.ID, m.Pos, extent, extent, collision.CollisionTypeMover))
	}
	return f
}

// NewFieldFromConfig places the configured movers on grid.
func NewFieldFromConfig(grid *world.Grid, cfg *config.Config) *Field {
	movers := Place(grid, cfg)
	f := NewField(grid, movers, cfg.GetCellSize(), cfg.GetMoverThreshold(), cfg.GetMoverExtent())
	f.log.WithField("count", len(movers)).Info("Movers placed")
	return f
}

// Collisions returns the system the movers are registered with. The level
// shares it for the monster and projectiles.
func (f *Field) Collisions() *collision.CollisionSystem {
	return f.system
}

// Movers returns the movers in placement order.
func (f *Field) Movers() []*Mover {
	return f.movers
}

// Step advances all movers by dt seconds. The pair pass runs before the
// world/player pass. onCrush fires once per mover that would crush target.
// target may be nil.
func (f *Field) Step(dt float64, target PushTarget, onCrush func()) {
	f.trackTarget(target)
	f.pairPass()
	for _, m := range f.movers {
		if f.held[m] {
			continue
		}
		f.advance(m, dt, target, onCrush)
	}
}

// pairPass reverses both movers of every pair in contact. A pair reverses on
// its first frame of contact and afterwards only while it is still closing,
// and a reversed mover does not move this frame.
func (f *Field) pairPass() {
	clear(f.held)
	byID := make(map[string]*Mover, len(f.movers))
	for _, m := range f.movers {
		byID[m.ID] = m
	}

	current := make(map[string]bool)
	for _, pair := range f.system.PairsWithin(collision.CollisionTypeMover, f.threshold) {
		a := byID[pair.Entity1.ID]
		b := byID[pair.Entity2.ID]
		key := pair.Key()
		current[key] = true

		offset := b.Pos.Sub(a.Pos)
		closing := b.Velocity().Sub(a.Velocity()).Dot(offset) < 0
		if f.contacts[key] && !closing {
			continue
		}

		a.Reverse()
		b.Reverse()
		f.held[a] = true
		f.held[b] = true
		f.log.WithFields(logrus.Fields{"a": a.ID, "b": b.ID}).Debug("Movers collided")
	}
	f.contacts = current
}

// trackTarget mirrors target into the collision system. A nil target leaves
// no player entity behind.
func (f *Field) trackTarget(target PushTarget) {
	if target == nil {
		f.system.UnregisterEntity(PlayerID)
		return
	}
	if f.system.GetEntityByID(PlayerID) == nil {
		f.system.RegisterEntity(collision.NewEntity(PlayerID, target.Position(), f.extent, f.extent, collision.CollisionTypePlayer))
		return
	}
	f.system.UpdateEntity(PlayerID, target.Position())
}

// advance runs the world and player checks for one mover.
func (f *Field) advance(m *Mover, dt float64, target PushTarget, onCrush func()) {
	heading := m.Heading()
	delta := heading.Scale(m.Speed * dt)
	candidate := m.Pos.Add(delta)

	box := collision.NewBoundingBox(candidate, f.extent, f.extent)
	if f.system.InteriorBlocked(candidate) || f.system.InteriorBlocked(box.LeadingPoint(heading)) {
		m.Reverse()
		return
	}

	if f.system.AnyWithin(candidate, f.threshold, collision.CollisionTypePlayer, "") {
		pushed := target.Position().Add(delta)
		into := pushed.Add(heading.Scale(f.metrics.CellSize / 2))
		if f.system.InteriorBlocked(pushed) || f.system.InteriorBlocked(into) ||
			f.system.AnyWithin(pushed, f.threshold, collision.CollisionTypeMover, m.ID) {
			f.log.WithFields(logrus.Fields{"mover": m.ID, "x": pushed.X, "y": pushed.Y}).Debug("Player crushed")
			if onCrush != nil {
				onCrush()
			}
			m.Reverse()
			return
		}
		target.Push(delta, f.metrics.CellToWorld(f.metrics.WorldToCell(into)))
		f.system.UpdateEntity(PlayerID, target.Position())
	}

	m.Pos = candidate
	f.system.UpdateEntity(m.ID, m.Pos)
}
