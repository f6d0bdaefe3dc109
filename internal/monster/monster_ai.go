package monster

import (
	"redgrid/internal/mathutil"
	"redgrid/internal/world"

	"github.com/sirupsen/logrus"
)

// Update runs the patrol and shooting timers. The two are independent; either
// may fire on a given frame. The returned projectile is nil unless a shot was
// fired.
func (m *Monster) Update(now float64, grid *world.Grid, playerPos mathutil.Vec2) *Projectile {
	if now >= m.NextMove {
		m.NextMove = now + mathutil.RandRange(m.rng, m.tuning.MoveIntervalMin, m.tuning.MoveIntervalMax)
		m.updatePatrolling(grid)
	}

	if now >= m.NextShot {
		m.NextShot = now + mathutil.RandRange(m.rng, m.tuning.ShotIntervalMin, m.tuning.ShotIntervalMax)
		return m.tryShoot(playerPos)
	}
	return nil
}

// updatePatrolling jumps straight to the patrol target when one is accepted.
func (m *Monster) updatePatrolling(grid *world.Grid) {
	target, ok := m.pickPatrolTarget(grid)
	if !ok {
		return
	}
	m.Pos = m.metrics.CellToWorld(target)
	m.log.WithFields(logrus.Fields{"x": target.X, "y": target.Y}).Debug("Monster patrolled")
}

// pickPatrolTarget draws a direction and a step count from the current cell.
// The target is rejected when it leaves the patrol radius or is solid.
func (m *Monster) pickPatrolTarget(grid *world.Grid) (world.Cell, bool) {
	steps := mathutil.RandIntRange(m.rng, m.tuning.StepsMin, m.tuning.StepsMax)
	dir := randomDirection(m.rng)
	target := m.Cell().Offset(dir, steps)

	if !m.IsWithinPatrolRadius(target) {
		return world.Cell{}, false
	}
	if grid.IsSolid(target.X, target.Y) {
		return world.Cell{}, false
	}
	return target, true
}

// tryShoot fires one projectile along the dominant axis towards the player when
// the player's cell is within shooting range.
func (m *Monster) tryShoot(playerPos mathutil.Vec2) *Projectile {
	mc := m.Cell()
	pc := m.metrics.WorldToCell(playerPos)
	if mc.DistanceTo(pc) > m.ShootRange {
		return nil
	}

	dir := ShotDirection(pc.X-mc.X, pc.Y-mc.Y)
	p := NewProjectile(m.Pos, dir.Vector().Scale(m.shotSpeed), m.tuning.ProjectileRadius*m.metrics.CellSize)
	m.log.WithFields(logrus.Fields{"direction": dir.String(), "projectile": p.ID}).Debug("Monster fired")
	return p
}
