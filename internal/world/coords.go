package world

import (
	"math"

	"redgrid/internal/mathutil"
)

// Metrics converts between world units and cells.
type Metrics struct {
	CellSize float64
}

// CellToWorld returns the world position of the center of c.
func (m Metrics) CellToWorld(c Cell) mathutil.Vec2 {
	return mathutil.V((float64(c.X)+0.5)*m.CellSize, (float64(c.Y)+0.5)*m.CellSize)
}

// WorldToCell returns the cell containing p.
func (m Metrics) WorldToCell(p mathutil.Vec2) Cell {
	return Cell{
		X: int(math.Floor(p.X / m.CellSize)),
		Y: int(math.Floor(p.Y / m.CellSize)),
	}
}

// SnapToCellCenter rounds each axis of p to the nearest cell center.
func (m Metrics) SnapToCellCenter(p mathutil.Vec2) mathutil.Vec2 {
	half := m.CellSize / 2
	return mathutil.V(
		math.Round((p.X-half)/m.CellSize)*m.CellSize+half,
		math.Round((p.Y-half)/m.CellSize)*m.CellSize+half,
	)
}

// NearestCell is WorldToCell of the snapped position.
func (m Metrics) NearestCell(p mathutil.Vec2) Cell {
	return m.WorldToCell(m.SnapToCellCenter(p))
}

// IsCellCenter reports whether p sits on a cell center within eps.
func (m Metrics) IsCellCenter(p mathutil.Vec2, eps float64) bool {
	return m.SnapToCellCenter(p).ApproxEqual(p, eps)
}
