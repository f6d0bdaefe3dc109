package terminal

import (
	"fmt"
	"strings"

	"redgrid/internal/level"
	"redgrid/internal/world"

	"github.com/gdamore/tcell/v2"
)

// Overlay and menu strings.
const (
	NoticeNotReady  = "Level not ready"
	MessageWon      = "You reached the Red Monster!"
	MessageGameOver = "Game Over"
)

const (
	glyphWall       = '#'
	glyphFloor      = '.'
	glyphPlayer     = '@'
	glyphMover      = 'o'
	glyphProjectile = '*'
)

var (
	styleWall   = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorDarkSlateGray)
	styleFloor  = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	styleStatus = tcell.StyleDefault.Reverse(true)
)

func rgbStyle(c [3]int) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c[0]), int32(c[1]), int32(c[2]))).Bold(true)
}

// glyphFor picks the character and style of a body.
func (h *Host) glyphFor(kind level.BodyKind) (rune, tcell.Style) {
	switch kind {
	case level.BodyPlayer:
		return glyphPlayer, tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	case level.BodyMover:
		return glyphMover, tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case level.BodyMonster:
		if def, err := h.defs.GetMonsterByKey(h.cfg.Monster.Kind); err == nil && def.Letter != "" {
			return []rune(def.Letter)[0], rgbStyle(def.Color)
		}
		return 'M', tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case level.BodyProjectile:
		return glyphProjectile, tcell.StyleDefault.Foreground(tcell.ColorRed)
	}
	return '?', tcell.StyleDefault
}

// viewOrigin returns the grid cell drawn at the top-left of the map area: the
// player centred, clamped to the grid.
func viewOrigin(player world.Cell, gridW, gridH, viewW, viewH int) world.Cell {
	clamp := func(v, size, view int) int {
		return max(0, min(v-view/2, size-view))
	}
	return world.Cell{X: clamp(player.X, gridW, viewW), Y: clamp(player.Y, gridH, viewH)}
}

// Draw renders the current scene and shows it.
func (h *Host) Draw() {
	h.screen.Clear()
	switch h.scene {
	case sceneMenu:
		h.drawMenu()
	case sceneLevel:
		h.drawLevel()
	}
	h.screen.Show()
}

func (h *Host) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		h.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (h *Host) drawCentered(y int, s string, style tcell.Style) {
	w, _ := h.screen.Size()
	h.drawText(max(0, (w-len([]rune(s)))/2), y, s, style)
}

func (h *Host) drawMenu() {
	h.drawCentered(1, "RED GRID - choose a monster", tcell.StyleDefault.Bold(true))
	for i, key := range h.menuKeys {
		def, err := h.defs.GetMonsterByKey(key)
		if err != nil {
			continue
		}
		marker := "  "
		if i == h.selected {
			marker = "> "
		}
		label := marker + def.Letter + " " + def.Name
		if !def.Ready {
			label += " (locked)"
		}
		h.drawText(4, 3+i, label, rgbStyle(def.Color))
	}
	y := 4 + len(h.menuKeys)
	h.drawText(4, y, "Up/Down select  Enter start  q quit", tcell.StyleDefault)
	if h.notice != "" {
		h.drawText(4, y+2, h.notice, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}
}

func (h *Host) drawLevel() {
	w, screenH := h.screen.Size()
	viewH := screenH - 1 // status line
	grid := h.lvl.Grid()
	metrics := h.lvl.Metrics()
	origin := viewOrigin(h.lvl.Player().Cell(), grid.Width(), grid.Height(), w, viewH)

	for y := 0; y < viewH; y++ {
		for x := 0; x < w; x++ {
			cx, cy := origin.X+x, origin.Y+y
			switch {
			case !grid.InBounds(cx, cy):
				continue
			case grid.IsSolid(cx, cy):
				h.screen.SetContent(x, y, glyphWall, nil, styleWall)
			default:
				h.screen.SetContent(x, y, glyphFloor, nil, styleFloor)
			}
		}
	}

	put := func(c world.Cell, r rune, style tcell.Style) {
		x, y := c.X-origin.X, c.Y-origin.Y
		if x >= 0 && x < w && y >= 0 && y < viewH {
			h.screen.SetContent(x, y, r, nil, style)
		}
	}

	var playerCell world.Cell
	for _, b := range h.lvl.Bodies() {
		cell := metrics.WorldToCell(b.Position())
		r, style := h.glyphFor(b.Kind())
		switch b.Kind() {
		case level.BodyPlayer:
			playerCell = cell
			continue
		case level.BodyMonster:
			// The monster spans several cells; fill its footprint.
			half := int(h.cfg.Monster.SizeCells) / 2
			for dy := -half; dy <= half; dy++ {
				for dx := -half; dx <= half; dx++ {
					put(world.Cell{X: cell.X + dx, Y: cell.Y + dy}, r, style)
				}
			}
			continue
		}
		put(cell, r, style)
	}
	if h.lvl.Health().Visible(h.now) {
		r, style := h.glyphFor(level.BodyPlayer)
		put(playerCell, r, style)
	}

	h.drawStatus(screenH-1, w)
	if msg := h.endMessage(); msg != "" {
		h.drawCentered(viewH/2, " "+msg+" ", styleStatus.Bold(true))
		if h.canDismiss() {
			h.drawCentered(viewH/2+1, " Press any key ", styleStatus)
		}
	}
}

// statusLine is the bottom row of the level view.
func (h *Host) statusLine() string {
	lives := h.lvl.Health().Lives
	return fmt.Sprintf(" Lives %s%s  Time %5.1fs  Esc menu",
		strings.Repeat("♥", lives), strings.Repeat("·", max(0, h.cfg.Health.Lives-lives)), h.now)
}

func (h *Host) drawStatus(y, w int) {
	line := []rune(h.statusLine())
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(line) {
			r = line[x]
		}
		h.screen.SetContent(x, y, r, nil, styleStatus)
	}
}

func (h *Host) endMessage() string {
	switch {
	case h.lvl == nil:
		return ""
	case h.lvl.Won():
		return MessageWon
	case h.lvl.Over():
		return MessageGameOver
	}
	return ""
}
