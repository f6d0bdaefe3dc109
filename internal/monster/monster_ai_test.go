package monster

import (
	"math/rand"
	"testing"

	"redgrid/internal/config"
	"redgrid/internal/mathutil"
	"redgrid/internal/world"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnArmsTimers(t *testing.T) {
	cfg := config.Default()
	grid := world.NewGrid(cfg.Level.Width, cfg.Level.Height)
	m := Spawn(grid, cfg, rand.New(rand.NewSource(1)), 10)

	assert.Equal(t, world.Cell{X: 97, Y: 27}, m.Home)
	assert.Equal(t, m.Home, m.Cell())
	assert.Equal(t, "red", m.Kind)
	assert.GreaterOrEqual(t, m.NextMove, 12.0)
	assert.Less(t, m.NextMove, 14.0)
	assert.GreaterOrEqual(t, m.NextShot, 10.5)
	assert.Less(t, m.NextShot, 11.0)
}

func TestPatrolStaysWithinRadius(t *testing.T) {
	cfg := config.Default()
	grid := world.NewGrid(cfg.Level.Width, cfg.Level.Height)
	metrics := world.Metrics{CellSize: cfg.GetCellSize()}

	for seed := int64(1); seed <= 5; seed++ {
		m := Spawn(grid, cfg, rand.New(rand.NewSource(seed)), 0)
		m.NextShot = 1e12
		moves := 0
		for i := 0; i < 2000; i++ {
			before := m.Cell()
			shot := m.Update(m.NextMove, grid, mathutil.V(0, 0))
			require.Nil(t, shot)

			c := m.Cell()
			require.LessOrEqual(t, m.GetDistanceFromHome(), m.PatrolRadius)
			require.False(t, grid.IsSolid(c.X, c.Y))
			require.True(t, metrics.IsCellCenter(m.Pos, 1e-9))
			if c != before {
				moves++
				steps := mathutil.IntAbs(c.X-before.X) + mathutil.IntAbs(c.Y-before.Y)
				require.GreaterOrEqual(t, steps, 2)
				require.LessOrEqual(t, steps, 4)
				require.True(t, c.X == before.X || c.Y == before.Y, "patrol must be cardinal")
			}
		}
		assert.Greater(t, moves, 100, "seed %d", seed)
	}
}

func TestPatrolTimerCadence(t *testing.T) {
	cfg := config.Default()
	m := New(world.Cell{X: 10, Y: 10}, cfg, rand.New(rand.NewSource(7)), 0)
	grid := world.NewGrid(cfg.Level.Width, cfg.Level.Height)
	m.NextShot = 1e12

	due := m.NextMove
	m.Update(due-0.01, grid, mathutil.V(0, 0))
	assert.Equal(t, due, m.NextMove, "timer must not fire early")

	m.Update(due, grid, mathutil.V(0, 0))
	assert.GreaterOrEqual(t, m.NextMove, due+2.5)
	assert.Less(t, m.NextMove, due+4.5)
}

func TestShotAlongDominantAxis(t *testing.T) {
	cfg := config.Default()
	grid := world.NewGrid(cfg.Level.Width, cfg.Level.Height)
	metrics := world.Metrics{CellSize: cfg.GetCellSize()}
	speed := cfg.GetProjectileSpeed()
	home := world.Cell{X: 50, Y: 15}

	tests := []struct {
		name   string
		player world.Cell
		want   mathutil.Vec2
	}{
		{"ten cells left", world.Cell{X: 40, Y: 15}, mathutil.V(-speed, 0)},
		{"mostly up", world.Cell{X: 53, Y: 8}, mathutil.V(0, -speed)},
		{"diagonal tie goes horizontal", world.Cell{X: 45, Y: 20}, mathutil.V(-speed, 0)},
		{"mostly down", world.Cell{X: 49, Y: 25}, mathutil.V(0, speed)},
		{"same cell fires right", home, mathutil.V(speed, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(home, cfg, rand.New(rand.NewSource(3)), 0)
			m.NextMove = 1e12
			m.NextShot = 5

			p := m.Update(5, grid, metrics.CellToWorld(tt.player))
			require.NotNil(t, p)
			assert.Equal(t, tt.want, p.Vel)
			assert.Equal(t, m.Pos, p.Pos)
			assert.GreaterOrEqual(t, m.NextShot, 6.5)
			assert.Less(t, m.NextShot, 7.5)

			assert.Nil(t, m.Update(5.1, grid, metrics.CellToWorld(tt.player)), "one shot per timer expiry")
		})
	}
}

func TestNoShotOutOfRange(t *testing.T) {
	cfg := config.Default()
	grid := world.NewGrid(cfg.Level.Width, cfg.Level.Height)
	metrics := world.Metrics{CellSize: cfg.GetCellSize()}
	m := New(world.Cell{X: 50, Y: 15}, cfg, rand.New(rand.NewSource(3)), 0)
	m.NextMove = 1e12
	m.NextShot = 1

	assert.Nil(t, m.Update(1, grid, metrics.CellToWorld(world.Cell{X: 29, Y: 15})))
	assert.Greater(t, m.NextShot, 1.0, "timer re-arms even without a shot")

	// Exactly on the range boundary still fires.
	m.NextShot = 1
	assert.NotNil(t, m.Update(1, grid, metrics.CellToWorld(world.Cell{X: 30, Y: 15})))
}

func TestShotDirection(t *testing.T) {
	tests := []struct {
		dx, dy int
		want   world.Direction
	}{
		{5, 1, world.DirRight},
		{-5, 1, world.DirLeft},
		{1, 5, world.DirDown},
		{1, -5, world.DirUp},
		{3, 3, world.DirRight},
		{-3, -3, world.DirLeft},
		{0, 0, world.DirRight},
		{0, -1, world.DirUp},
	}
	for _, tt := range tests {
		if got := ShotDirection(tt.dx, tt.dy); got != tt.want {
			t.Errorf("ShotDirection(%d, %d) = %v, want %v", tt.dx, tt.dy, got, tt.want)
		}
	}
}
