package mover

import (
	"testing"

	"redgrid/internal/collision"
	"redgrid/internal/config"
	"redgrid/internal/mathutil"
	"redgrid/internal/world"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	cell      = 96.0
	threshold = 0.9 * cell
	extent    = 0.9 * cell
)

var metrics = world.Metrics{CellSize: cell}

// fakeTarget records pushes instead of running a player controller.
type fakeTarget struct {
	pos    mathutil.Vec2
	pushes int
	last   mathutil.Vec2
}

func (f *fakeTarget) Position() mathutil.Vec2 { return f.pos }

func (f *fakeTarget) Push(delta, target mathutil.Vec2) {
	f.pos = f.pos.Add(delta)
	f.last = target
	f.pushes++
}

func openRoom() *world.Grid {
	return world.MustParseGrid(`
############
#..........#
#..........#
#..........#
#..........#
#..........#
#..........#
############
`)
}

func at(cx, cy int) mathutil.Vec2 {
	return metrics.CellToWorld(world.Cell{X: cx, Y: cy})
}

func TestPlaceDefaultLevel(t *testing.T) {
	cfg := config.Default()
	grid := world.NewGrid(cfg.Level.Width, cfg.Level.Height)
	movers := Place(grid, cfg)

	require.Len(t, movers, 32)
	assert.Equal(t, at(5, 3), movers[0].Pos)
	assert.Equal(t, world.AxisX, movers[0].Axis)
	assert.Equal(t, at(8, 4), movers[20].Pos)
	assert.Equal(t, world.AxisY, movers[20].Axis)

	ids := make(map[string]bool)
	for _, m := range movers {
		c := metrics.WorldToCell(m.Pos)
		assert.False(t, grid.IsSolid(c.X, c.Y), "mover placed in solid cell %v", c)
		assert.Equal(t, 1.0, m.Dir)
		ids[m.ID] = true
	}
	assert.Len(t, ids, len(movers))
}

func TestPairReversesWithoutMoving(t *testing.T) {
	a := NewMover(at(4, 3), world.AxisX, 2.2*cell, [3]int{})
	b := NewMover(at(4, 3).Add(mathutil.V(cell/2, 0)), world.AxisX, 2.2*cell, [3]int{})
	f := NewField(openRoom(), []*Mover{a, b}, cell, threshold, extent)
	aPos, bPos := a.Pos, b.Pos

	f.Step(1.0/60, nil, nil)

	assert.Equal(t, -1.0, a.Dir)
	assert.Equal(t, -1.0, b.Dir)
	assert.Equal(t, aPos, a.Pos)
	assert.Equal(t, bPos, b.Pos)

	// Still touching but no longer closing: both slide left together.
	f.Step(1.0/60, nil, nil)
	assert.Equal(t, -1.0, a.Dir)
	assert.Equal(t, -1.0, b.Dir)
	assert.Less(t, a.Pos.X, aPos.X)
	assert.Less(t, b.Pos.X, bPos.X)
}

func TestHeadOnPairSeparates(t *testing.T) {
	a := NewMover(at(3, 3), world.AxisX, 2.2*cell, [3]int{})
	b := NewMover(at(6, 3), world.AxisX, 2.2*cell, [3]int{})
	b.Dir = -1
	f := NewField(openRoom(), []*Mover{a, b}, cell, threshold, extent)

	reversed := false
	for i := 0; i < 120; i++ {
		f.Step(1.0/60, nil, nil)
		if a.Dir < 0 {
			reversed = true
			break
		}
	}
	require.True(t, reversed)
	assert.Equal(t, 1.0, b.Dir)

	gap := b.Pos.X - a.Pos.X
	f.Step(1.0/60, nil, nil)
	assert.Greater(t, b.Pos.X-a.Pos.X, gap)
}

func TestWallBounce(t *testing.T) {
	grid := openRoom()
	m := NewMover(at(8, 2), world.AxisX, 2.8*cell, [3]int{})
	f := NewField(grid, []*Mover{m}, cell, threshold, extent)

	flips := 0
	prevDir := m.Dir
	for i := 0; i < 600; i++ {
		before := m.Pos
		f.Step(1.0/60, nil, nil)
		if m.Dir != prevDir {
			flips++
			assert.Equal(t, before, m.Pos, "reversal frame must not move")
		}
		prevDir = m.Dir

		c := metrics.WorldToCell(m.Pos)
		require.False(t, grid.IsSolid(c.X, c.Y))
		lead := m.Pos.Add(m.Heading().Scale(extent / 2))
		lc := metrics.WorldToCell(lead)
		require.False(t, grid.IsSolid(lc.X, lc.Y), "edge entered a wall at %v", m.Pos)
	}
	assert.GreaterOrEqual(t, flips, 2)
}

func TestPushMovesPlayerTowardNextCell(t *testing.T) {
	m := NewMover(at(2, 3), world.AxisX, 2.2*cell, [3]int{})
	f := NewField(openRoom(), []*Mover{m}, cell, threshold, extent)
	target := &fakeTarget{pos: at(3, 3)}

	for i := 0; i < 60 && target.pushes == 0; i++ {
		f.Step(1.0/60, target, func() { t.Fatal("unexpected crush") })
	}
	require.Equal(t, 1, target.pushes)
	assert.Equal(t, at(4, 3), target.last)
	assert.Greater(t, target.pos.X, at(3, 3).X)
	assert.Equal(t, 1.0, m.Dir)
}

func TestTargetMirroredInCollisions(t *testing.T) {
	m := NewMover(at(2, 3), world.AxisX, 2.2*cell, [3]int{})
	f := NewField(openRoom(), []*Mover{m}, cell, threshold, extent)
	target := &fakeTarget{pos: at(3, 3)}

	f.Step(1.0/60, target, nil)
	e := f.Collisions().GetEntityByID(PlayerID)
	require.NotNil(t, e)
	assert.Equal(t, collision.CollisionTypePlayer, e.CollisionType)
	assert.Len(t, f.Collisions().GetAllEntities(), 2)

	for i := 0; i < 60 && target.pushes == 0; i++ {
		f.Step(1.0/60, target, nil)
	}
	require.Equal(t, 1, target.pushes)
	assert.Equal(t, target.pos, e.BoundingBox.Center, "the pushed position is tracked at once")

	f.Step(1.0/60, nil, nil)
	assert.Nil(t, f.Collisions().GetEntityByID(PlayerID))
}

func TestCrushAgainstWall(t *testing.T) {
	m := NewMover(at(8, 1), world.AxisX, 2.2*cell, [3]int{})
	f := NewField(openRoom(), []*Mover{m}, cell, threshold, extent)
	start := at(10, 1)
	target := &fakeTarget{pos: start}

	// Contact comes after about 30 frames; the mover is then heading away.
	crushes := 0
	var crushPos mathutil.Vec2
	for i := 0; i < 60; i++ {
		before := m.Pos
		f.Step(1.0/60, target, func() { crushes++ })
		if crushes == 1 && crushPos == (mathutil.Vec2{}) {
			crushPos = m.Pos
			assert.Equal(t, before, m.Pos)
		}
	}
	assert.Equal(t, 1, crushes)
	assert.Equal(t, 0, target.pushes)
	assert.Equal(t, start, target.pos)
	assert.Equal(t, -1.0, m.Dir)
}

func TestCrushBetweenMovers(t *testing.T) {
	player := at(5, 3)
	a := NewMover(player.Sub(mathutil.V(90, 0)), world.AxisX, 2.8*cell, [3]int{})
	b := NewMover(player.Add(mathutil.V(80, 0)), world.AxisX, 2.8*cell, [3]int{})
	f := NewField(openRoom(), []*Mover{a, b}, cell, threshold, extent)
	target := &fakeTarget{pos: player}
	aPos := a.Pos

	crushes := 0
	f.Step(1.0/30, target, func() { crushes++ })

	assert.Equal(t, 1, crushes)
	assert.Equal(t, 0, target.pushes)
	assert.Equal(t, player, target.pos)
	assert.Equal(t, aPos, a.Pos)
	assert.Equal(t, -1.0, a.Dir)
	assert.Equal(t, 1.0, b.Dir)
}

func TestMoversStayOutOfWalls(t *testing.T) {
	cfg := config.Default()
	grid := world.NewGrid(cfg.Level.Width, cfg.Level.Height)
	f := NewFieldFromConfig(grid, cfg)
	require.NotEmpty(t, f.Movers())

	for i := 0; i < 3000; i++ {
		f.Step(1.0/60, nil, nil)
		for _, m := range f.Movers() {
			c := metrics.WorldToCell(m.Pos)
			require.False(t, grid.IsSolid(c.X, c.Y), "tick %d: mover %s in solid cell %v", i, m.ID, c)
		}
	}
}
