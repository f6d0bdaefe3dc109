package monster

import (
	"math/rand"

	"redgrid/internal/collision"
	"redgrid/internal/config"
	"redgrid/internal/logger"
	"redgrid/internal/mathutil"
	"redgrid/internal/world"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Monster is the level's adversary. It patrols around Home on one timer and
// shoots at the player on another.
type Monster struct {
	ID   string
	Kind string
	Pos  mathutil.Vec2

	// Tethering: accepted patrol moves stay within PatrolRadius cells of Home
	Home         world.Cell
	PatrolRadius float64
	ShootRange   float64 // cells

	NextMove float64
	NextShot float64

	tuning    config.MonsterConfig
	metrics   world.Metrics
	shotSpeed float64 // world units per second
	rng       *rand.Rand
	log       *logrus.Entry
}

// New creates a monster resting on home. Both timers are armed relative to now.
func New(home world.Cell, cfg *config.Config, rng *rand.Rand, now float64) *Monster {
	tuning := cfg.Monster
	metrics := world.Metrics{CellSize: cfg.GetCellSize()}
	m := &Monster{
		ID:           "monster_" + uuid.NewString(),
		Kind:         tuning.Kind,
		Pos:          metrics.CellToWorld(home),
		Home:         home,
		PatrolRadius: tuning.PatrolRadius,
		ShootRange:   tuning.ShootRange,
		NextMove:     now + mathutil.RandRange(rng, tuning.FirstMoveMin, tuning.FirstMoveMax),
		NextShot:     now + mathutil.RandRange(rng, tuning.FirstShotMin, tuning.FirstShotMax),
		tuning:       tuning,
		metrics:      metrics,
		shotSpeed:    cfg.GetProjectileSpeed(),
		rng:          rng,
	}
	m.log = logger.For("monster").WithField("monster", m.ID)
	return m
}

// Spawn places the monster at the empty cell nearest the far corner of grid.
func Spawn(grid *world.Grid, cfg *config.Config, rng *rand.Rand, now float64) *Monster {
	pref := world.Cell{
		X: grid.Width() - cfg.Monster.SpawnInsetX,
		Y: grid.Height() - cfg.Monster.SpawnInsetY,
	}
	home := grid.FindNearestEmptyCell(pref, cfg.Player.SpawnSearchRadius)
	m := New(home, cfg, rng, now)
	m.log.WithFields(logrus.Fields{"kind": m.Kind, "x": home.X, "y": home.Y}).Info("Monster spawned")
	return m
}

// Position satisfies the level body contract.
func (m *Monster) Position() mathutil.Vec2 {
	return m.Pos
}

// Entity returns the collision entity of the monster, one cell across.
func (m *Monster) Entity() *collision.Entity {
	return collision.NewEntity(m.ID, m.Pos, m.metrics.CellSize, m.metrics.CellSize, collision.CollisionTypeMonster)
}

// Cell returns the cell the monster occupies.
func (m *Monster) Cell() world.Cell {
	return m.metrics.WorldToCell(m.Pos)
}

// GetDistanceFromHome returns the distance from Home in cells
func (m *Monster) GetDistanceFromHome() float64 {
	return m.Home.DistanceTo(m.Cell())
}

// IsWithinPatrolRadius reports whether c is an acceptable patrol destination
// as far as tethering goes.
func (m *Monster) IsWithinPatrolRadius(c world.Cell) bool {
	return m.Home.DistanceTo(c) <= m.PatrolRadius
}
