package mover

import (
	"redgrid/internal/config"
	"redgrid/internal/mathutil"
	"redgrid/internal/world"

	"github.com/google/uuid"
)

// Mover is an obstacle sliding back and forth along one axis.
type Mover struct {
	ID    string
	Pos   mathutil.Vec2
	Axis  world.Axis
	Dir   float64 // +1 or -1 along Axis
	Speed float64 // world units per second
	Color [3]int
}

// NewMover creates a mover heading in the positive direction of axis.
func NewMover(pos mathutil.Vec2, axis world.Axis, speed float64, color [3]int) *Mover {
	return &Mover{
		ID:    uuid.NewString(),
		Pos:   pos,
		Axis:  axis,
		Dir:   1,
		Speed: speed,
		Color: color,
	}
}

// Position satisfies the level body contract.
func (m *Mover) Position() mathutil.Vec2 {
	return m.Pos
}

// Heading returns the unit vector of travel.
func (m *Mover) Heading() mathutil.Vec2 {
	if m.Axis == world.AxisY {
		return mathutil.V(0, m.Dir)
	}
	return mathutil.V(m.Dir, 0)
}

// Velocity returns the signed velocity in world units per second.
func (m *Mover) Velocity() mathutil.Vec2 {
	return m.Heading().Scale(m.Speed)
}

// Reverse flips the direction of travel.
func (m *Mover) Reverse() {
	m.Dir = -m.Dir
}

// Place lays out both mover families on their lattices, skipping solid cells.
// Horizontal movers come first, then vertical ones, each in row-major lane order.
func Place(grid *world.Grid, cfg *config.Config) []*Mover {
	metrics := world.Metrics{CellSize: cfg.GetCellSize()}
	var movers []*Mover

	h := cfg.Movers.Horizontal
	for y := h.StartY; y < grid.Height()-h.MarginY; y += h.StepY {
		for x := h.StartX; x < grid.Width()-h.MarginX; x += h.StepX {
			if grid.IsSolid(x, y) {
				continue
			}
			pos := metrics.CellToWorld(world.Cell{X: x, Y: y})
			movers = append(movers, NewMover(pos, world.AxisX, h.SpeedCells*metrics.CellSize, h.Color))
		}
	}

	v := cfg.Movers.Vertical
	for x := v.StartX; x < grid.Width()-v.MarginX; x += v.StepX {
		for y := v.StartY; y < grid.Height()-v.MarginY; y += v.StepY {
			if grid.IsSolid(x, y) {
				continue
			}
			pos := metrics.CellToWorld(world.Cell{X: x, Y: y})
			movers = append(movers, NewMover(pos, world.AxisY, v.SpeedCells*metrics.CellSize, v.Color))
		}
	}

	return movers
}
