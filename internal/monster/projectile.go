package monster

import (
	"redgrid/internal/collision"
	"redgrid/internal/mathutil"
	"redgrid/internal/world"

	"github.com/google/uuid"
)

// Projectile is a ball fired by the monster. It travels at constant velocity
// and never interacts with movers or other projectiles.
type Projectile struct {
	ID     string
	Pos    mathutil.Vec2
	Vel    mathutil.Vec2
	Radius float64 // drawn size only
}

func NewProjectile(pos, vel mathutil.Vec2, radius float64) *Projectile {
	return &Projectile{
		ID:     uuid.NewString(),
		Pos:    pos,
		Vel:    vel,
		Radius: radius,
	}
}

// Position satisfies the level body contract.
func (p *Projectile) Position() mathutil.Vec2 {
	return p.Pos
}

// Entity returns the collision entity of the projectile.
func (p *Projectile) Entity() *collision.Entity {
	return collision.NewEntity(p.ID, p.Pos, 2*p.Radius, 2*p.Radius, collision.CollisionTypeProjectile)
}

// UpdateProjectiles moves every projectile by dt and returns the survivors in
// their original order. A projectile closer than hitRadius to the player calls
// onHit and is removed; the player check comes before the wall check. A
// projectile that enters a solid cell is removed. Removed projectiles are
// unregistered from cs before onHit runs.
func UpdateProjectiles(projectiles []*Projectile, dt float64, grid *world.Grid, cs *collision.CollisionSystem,
	playerPos mathutil.Vec2, hitRadius float64, onHit func()) []*Projectile {
	live := projectiles[:0]
	for _, p := range projectiles {
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		cs.UpdateEntity(p.ID, p.Pos)

		if p.Pos.Dist(playerPos) < hitRadius {
			cs.UnregisterEntity(p.ID)
			if onHit != nil {
				onHit()
			}
			continue
		}

		if grid.IsSolid(cs.TileAt(p.Pos)) {
			cs.UnregisterEntity(p.ID)
			continue
		}
		live = append(live, p)
	}
	for i := len(live); i < len(projectiles); i++ {
		projectiles[i] = nil
	}
	return live
}
