package world

import "math"

// CellKind is the solidity class of a single cell.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellWall
)

// Cell addresses a grid square by integer coordinates.
type Cell struct {
	X, Y int
}

// Offset returns the cell n steps away in direction d.
func (c Cell) Offset(d Direction, n int) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx*n, Y: c.Y + dy*n}
}

// DistanceTo returns the Euclidean distance between two cells, in cells.
func (c Cell) DistanceTo(o Cell) float64 {
	dx := float64(o.X - c.X)
	dy := float64(o.Y - c.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Grid is the immutable tile map of a level. Anything outside it is solid.
type Grid struct {
	width  int
	height int
	cells  []CellKind
}

// NewGrid generates the level map: a solid border, vertical pillars on every
// 12th column (x%12 == 6) for 5 <= y <= h-6, and horizontal bars on every 7th
// row (y%7 == 3) for 15 <= x <= w-16.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]CellKind, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[y*width+x] = generatedKind(x, y, width, height)
		}
	}
	return g
}

func generatedKind(x, y, width, height int) CellKind {
	if x == 0 || y == 0 || x == width-1 || y == height-1 {
		return CellWall
	}
	if x%12 == 6 && y >= 5 && y <= height-6 {
		return CellWall
	}
	if y%7 == 3 && x >= 15 && x <= width-16 {
		return CellWall
	}
	return CellEmpty
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (cx, cy) addresses a cell of the grid.
func (g *Grid) InBounds(cx, cy int) bool {
	return cx >= 0 && cy >= 0 && cx < g.width && cy < g.height
}

// Kind returns the cell kind; out of bounds is CellWall.
func (g *Grid) Kind(cx, cy int) CellKind {
	if !g.InBounds(cx, cy) {
		return CellWall
	}
	return g.cells[cy*g.width+cx]
}

// IsSolid reports whether the cell blocks movement. Out of bounds is solid.
func (g *Grid) IsSolid(cx, cy int) bool {
	return g.Kind(cx, cy) == CellWall
}

// InInterior reports whether the cell lies strictly inside the border ring.
func (g *Grid) InInterior(cx, cy int) bool {
	return cx >= 1 && cy >= 1 && cx < g.width-1 && cy < g.height-1
}

// IsTileBlocking satisfies collision.TileChecker.
func (g *Grid) IsTileBlocking(tileX, tileY int) bool {
	return g.IsSolid(tileX, tileY)
}

// GetWorldBounds satisfies collision.TileChecker.
func (g *Grid) GetWorldBounds() (width, height int) {
	return g.width, g.height
}

// FindNearestEmptyCell looks for an empty cell close to pref: pref itself,
// then Chebyshev rings of radius 1..maxRadius (rows top to bottom, columns
// left to right within a ring), then the whole interior in reading order.
// (1,1) is returned when the map has no empty cell at all.
func (g *Grid) FindNearestEmptyCell(pref Cell, maxRadius int) Cell {
	if !g.IsSolid(pref.X, pref.Y) {
		return pref
	}
	for r := 1; r <= maxRadius; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				cx, cy := pref.X+dx, pref.Y+dy
				if !g.InBounds(cx, cy) {
					continue
				}
				if !g.IsSolid(cx, cy) {
					return Cell{X: cx, Y: cy}
				}
			}
		}
	}
	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			if !g.IsSolid(x, y) {
				return Cell{X: x, Y: y}
			}
		}
	}
	return Cell{X: 1, Y: 1}
}
