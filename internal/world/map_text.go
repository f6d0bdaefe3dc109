package world

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
)

// Map legend glyphs.
const (
	GlyphWall  = '#'
	GlyphEmpty = '.'
)

// ErrOpenBorder is returned by ParseGrid when the outer ring has an empty cell.
var ErrOpenBorder = errors.New("map border must be solid")

// String renders the grid one row per line using the map legend.
func (g *Grid) String() string {
	return g.Render(nil)
}

// Render is String with some cells replaced by marker runes.
func (g *Grid) Render(markers map[Cell]rune) string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if r, ok := markers[Cell{X: x, Y: y}]; ok {
				b.WriteRune(r)
				continue
			}
			if g.IsSolid(x, y) {
				b.WriteByte(GlyphWall)
			} else {
				b.WriteByte(GlyphEmpty)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseGrid reads a grid written with the map legend. Blank lines and lines
// starting with "//" are skipped; every row must have the same width and the
// outer ring must be all walls.
func ParseGrid(text string) (*Grid, error) {
	var rows []string
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "//") {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading map text: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("map text contains no rows")
	}

	width := len(rows[0])
	g := &Grid{
		width:  width,
		height: len(rows),
		cells:  make([]CellKind, width*len(rows)),
	}
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has width %d, want %d", y, len(row), width)
		}
		for x := 0; x < width; x++ {
			switch row[x] {
			case GlyphWall:
				g.cells[y*width+x] = CellWall
			case GlyphEmpty:
				if x == 0 || y == 0 || x == width-1 || y == len(rows)-1 {
					return nil, fmt.Errorf("empty cell at (%d, %d): %w", x, y, ErrOpenBorder)
				}
				g.cells[y*width+x] = CellEmpty
			default:
				return nil, fmt.Errorf("unknown map glyph %q at (%d, %d)", row[x], x, y)
			}
		}
	}
	return g, nil
}

// MustParseGrid is ParseGrid that panics on error; meant for fixtures.
func MustParseGrid(text string) *Grid {
	g, err := ParseGrid(text)
	if err != nil {
		panic("Failed to parse grid: " + err.Error())
	}
	return g
}
