package level

import (
	"math/rand"
	"testing"

	"redgrid/internal/collision"
	"redgrid/internal/config"
	"redgrid/internal/input"
	"redgrid/internal/mathutil"
	"redgrid/internal/monster"
	"redgrid/internal/mover"
	"redgrid/internal/world"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 60

func newLevel(t *testing.T, seed int64) *Level {
	t.Helper()
	return New(config.Default(), rand.New(rand.NewSource(seed)))
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, 0, len(events))
	for _, e := range events {
		out = append(out, e.Kind)
	}
	return out
}

// hostileIDs lists the monster and projectile entities still registered for
// collisions, in registration order.
func hostileIDs(l *Level) []string {
	var ids []string
	for _, e := range l.collisions.GetAllEntities() {
		if e.CollisionType == collision.CollisionTypeMonster || e.CollisionType == collision.CollisionTypeProjectile {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// withMovers replaces the level's movers with ms.
func withMovers(l *Level, ms ...*mover.Mover) {
	cfg := l.Config()
	l.movers = mover.NewField(l.grid, ms, cfg.GetCellSize(), cfg.GetMoverThreshold(), cfg.GetMoverExtent())
	l.collisions = l.movers.Collisions()
	l.collisions.RegisterEntity(l.monster.Entity())
}

func TestNewLevel(t *testing.T) {
	l := newLevel(t, 1)

	assert.Equal(t, world.Cell{X: 2, Y: 2}, l.Player().Cell())
	require.NotNil(t, l.Monster())
	assert.Equal(t, world.Cell{X: 97, Y: 27}, l.Monster().Home)
	assert.Len(t, l.Movers(), 32)
	assert.Equal(t, 3, l.Health().Lives)
	assert.False(t, l.Won())
	assert.False(t, l.Over())

	counts := make(map[BodyKind]int)
	for _, b := range l.Bodies() {
		counts[b.Kind()]++
	}
	assert.Equal(t, 1, counts[BodyPlayer])
	assert.Equal(t, 32, counts[BodyMover])
	assert.Equal(t, 1, counts[BodyMonster])
	assert.Equal(t, 0, counts[BodyProjectile])
}

func TestProjectileHitCostsOneLife(t *testing.T) {
	l := newLevel(t, 2)
	pos := l.Player().Pos
	l.projectiles = append(l.projectiles,
		monster.NewProjectile(pos.Add(mathutil.V(10, 0)), mathutil.Vec2{}, 10),
		monster.NewProjectile(pos.Add(mathutil.V(-10, 0)), mathutil.Vec2{}, 10),
	)

	l.Update(frame, frame, input.None{})

	assert.Equal(t, []EventKind{EventHurt}, kinds(l.Events()))
	assert.Equal(t, 2, l.Health().Lives)
	assert.Empty(t, l.Projectiles())
	assert.True(t, l.Health().Invulnerable(frame))
}

func TestLastLifeFreezesLevel(t *testing.T) {
	l := newLevel(t, 3)
	l.Health().Lives = 1
	pos := l.Player().Pos
	l.projectiles = append(l.projectiles,
		monster.NewProjectile(pos.Add(mathutil.V(10, 0)), mathutil.Vec2{}, 10),
		monster.NewProjectile(mathutil.V(600, 600), mathutil.V(1, 0), 10),
	)

	l.Update(frame, frame, input.None{})

	assert.Equal(t, []EventKind{EventHurt, EventGameOver}, kinds(l.Events()))
	assert.Equal(t, 0, l.Health().Lives)
	assert.True(t, l.Over())
	assert.Nil(t, l.Monster())
	assert.Empty(t, l.Projectiles())
	assert.Empty(t, hostileIDs(l))
	assert.False(t, l.Won(), "a lost level has no monster but is not won")

	moverPos := l.Movers()[0].Pos
	playerPos := l.Player().Pos
	now := frame
	for i := 0; i < 120; i++ {
		now += frame
		l.Update(now, frame, input.NewSnapshot().Press(world.DirDown))
		assert.Empty(t, l.Events())
	}
	assert.Equal(t, playerPos, l.Player().Pos)
	assert.Equal(t, moverPos, l.Movers()[0].Pos)
	assert.Nil(t, l.Monster())
	assert.True(t, l.Health().CanDismiss(now))
}

func TestReachingMonsterWins(t *testing.T) {
	l := newLevel(t, 4)
	l.Monster().Pos = l.Player().Pos.Add(mathutil.V(100, 0))
	l.projectiles = append(l.projectiles, monster.NewProjectile(mathutil.V(600, 300), mathutil.V(1, 0), 10))

	l.Update(frame, frame, input.None{})

	assert.Equal(t, []EventKind{EventWon}, kinds(l.Events()))
	assert.True(t, l.Won())
	assert.Nil(t, l.Monster())
	assert.Empty(t, l.Projectiles())

	// The player keeps control after a win.
	start := l.Player().Pos
	l.Update(2*frame, frame, input.NewSnapshot().Press(world.DirDown))
	assert.True(t, l.Player().Moving)
	assert.NotEqual(t, start, l.Player().Pos)

	// Damage no longer applies.
	l.damage(3*frame, EventHurt)
	assert.Equal(t, 3, l.Health().Lives)
}

func TestMonsterShotIsTracked(t *testing.T) {
	l := newLevel(t, 5)
	m := l.Monster()
	m.Pos = l.Metrics().CellToWorld(world.Cell{X: 12, Y: 2})
	m.NextMove = 1e9
	m.NextShot = 0

	l.Update(frame, frame, input.None{})

	assert.Equal(t, []EventKind{EventShot}, kinds(l.Events()))
	require.Len(t, l.Projectiles(), 1)
	assert.Less(t, l.Projectiles()[0].Vel.X, 0.0)
}

func TestHostilesTrackedInCollisions(t *testing.T) {
	l := newLevel(t, 5)
	m := l.Monster()
	assert.Equal(t, []string{m.ID}, hostileIDs(l))

	m.Pos = l.Metrics().CellToWorld(world.Cell{X: 12, Y: 2})
	m.NextMove = 1e9
	m.NextShot = 0
	l.Update(frame, frame, input.None{})

	require.Len(t, l.Projectiles(), 1)
	shot := l.Projectiles()[0]
	assert.Equal(t, []string{m.ID, shot.ID}, hostileIDs(l))
	assert.Equal(t, m.Pos, l.collisions.GetEntityByID(m.ID).BoundingBox.Center)
	assert.Equal(t, shot.Pos, l.collisions.GetEntityByID(shot.ID).BoundingBox.Center)
	assert.Equal(t, l.Player().Pos, l.collisions.GetEntityByID(mover.PlayerID).BoundingBox.Center)

	m.Pos = l.Player().Pos
	l.Update(2*frame, frame, input.None{})

	assert.Equal(t, []EventKind{EventWon}, kinds(l.Events()))
	assert.True(t, l.Won())
	assert.Empty(t, hostileIDs(l))
	assert.NotNil(t, l.collisions.GetEntityByID(mover.PlayerID))
}

func TestMoverPinningPlayerCrushesOnce(t *testing.T) {
	l := newLevel(t, 6)
	metrics := l.Metrics()
	l.Player().Pos = metrics.CellToWorld(world.Cell{X: 1, Y: 1})
	m := mover.NewMover(metrics.CellToWorld(world.Cell{X: 3, Y: 1}), world.AxisX, 2.2*metrics.CellSize, [3]int{})
	m.Dir = -1
	withMovers(l, m)
	start := l.Player().Pos

	// The mover reaches the player after about half a second. Pointing it back
	// at the player every frame keeps it pressing against the wall side.
	var crushed []float64
	var pinned mathutil.Vec2
	now := 0.0
	for i := 0; i < 80; i++ {
		now += frame
		l.Update(now, frame, input.None{})
		for _, e := range l.Events() {
			if e.Kind == EventCrushed {
				crushed = append(crushed, e.Time)
				pinned = m.Pos
			}
		}
		m.Dir = -1
	}

	require.Len(t, crushed, 1)
	assert.Greater(t, now-crushed[0], 10*frame, "contact lasted several frames")
	assert.Equal(t, pinned, m.Pos, "a pinned mover does not advance")
	assert.Equal(t, 2, l.Health().Lives)
	assert.Equal(t, start, l.Player().Pos)
	assert.False(t, l.Player().Moving)
}

func TestLongRunInvariants(t *testing.T) {
	for seed := int64(1); seed <= 3; seed++ {
		l := newLevel(t, seed)
		grid := l.Grid()
		metrics := l.Metrics()
		rng := rand.New(rand.NewSource(seed * 101))
		lives := l.Health().Lives
		now := 0.0

		for tick := 0; tick < 6000; tick++ {
			in := input.NewSnapshot()
			if rng.Intn(8) == 0 {
				in.Press(world.HoldOrder[rng.Intn(4)])
			}
			if rng.Intn(3) > 0 {
				in.Hold(world.HoldOrder[rng.Intn(4)])
			}
			now += frame
			l.Update(now, frame, in)

			p := l.Player()
			pc := p.Cell()
			require.False(t, grid.IsSolid(pc.X, pc.Y), "seed %d tick %d: player in solid cell %v", seed, tick, pc)
			if !p.Moving {
				require.True(t, metrics.IsCellCenter(p.Pos, 1e-6), "seed %d tick %d: idle player off center", seed, tick)
			}
			for _, m := range l.Movers() {
				c := metrics.WorldToCell(m.Pos)
				require.False(t, grid.IsSolid(c.X, c.Y), "seed %d tick %d: mover in solid cell %v", seed, tick, c)
			}
			if m := l.Monster(); m != nil {
				require.LessOrEqual(t, m.GetDistanceFromHome(), m.PatrolRadius)
				c := m.Cell()
				require.False(t, grid.IsSolid(c.X, c.Y))
			}
			for _, pr := range l.Projectiles() {
				c := metrics.WorldToCell(pr.Pos)
				require.False(t, grid.IsSolid(c.X, c.Y))
			}
			require.LessOrEqual(t, l.Health().Lives, lives)
			lives = l.Health().Lives
			if l.Over() {
				require.Nil(t, l.Monster())
				require.Empty(t, l.Projectiles())
			}
		}
	}
}
