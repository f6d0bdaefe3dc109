package game

import (
	"fmt"
	"image/color"

	"redgrid/internal/monster"

	"github.com/hajimehoshi/ebiten/v2"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// NoticeNotReady is shown when a kind without a level is chosen.
const NoticeNotReady = "Level not ready"

// Menu lists the monster kinds in menu order.
type Menu struct {
	defs     *monster.MonsterYAMLConfig
	keys     []string
	selected int
	notice   string
}

func NewMenu(defs *monster.MonsterYAMLConfig) *Menu {
	return &Menu{defs: defs, keys: defs.GetMenuKeys()}
}

// Move shifts the selection, wrapping at both ends.
func (m *Menu) Move(delta int) {
	if len(m.keys) == 0 {
		return
	}
	m.selected = ((m.selected+delta)%len(m.keys) + len(m.keys)) % len(m.keys)
	m.notice = ""
}

// Selected returns the highlighted kind key.
func (m *Menu) Selected() string {
	if len(m.keys) == 0 {
		return ""
	}
	return m.keys[m.selected]
}

// Choose confirms the selection. Only ready kinds start a level.
func (m *Menu) Choose() (string, bool) {
	key := m.Selected()
	if !m.defs.IsReady(key) {
		m.notice = NoticeNotReady
		return key, false
	}
	m.notice = ""
	return key, true
}

func (m *Menu) Notice() string { return m.notice }

func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{16, 16, 24, 255})
	face := basicfont.Face7x13
	w := screen.Bounds().Dx()

	title := "RED GRID - choose a monster"
	ebitext.Draw(screen, title, face, (w-len(title)*7)/2, 80, color.White)

	for i, key := range m.keys {
		def, err := m.defs.GetMonsterByKey(key)
		if err != nil {
			continue
		}
		y := 130 + i*28
		c := rgb(def.Color)
		if i == m.selected {
			vector.DrawFilledRect(screen, float32(w/2-120), float32(y-16), 240, 24, color.RGBA{60, 60, 80, 255}, false)
		}
		vector.DrawFilledRect(screen, float32(w/2-110), float32(y-12), 14, 14, c, false)
		label := def.Name
		if !def.Ready {
			label = fmt.Sprintf("%s (locked)", def.Name)
		}
		ebitext.Draw(screen, label, face, w/2-88, y, color.White)
	}

	help := "Up/Down select   Enter start   Esc quit"
	y := 130 + len(m.keys)*28 + 24
	ebitext.Draw(screen, help, face, (w-len(help)*7)/2, y, color.RGBA{160, 160, 160, 255})
	if m.notice != "" {
		ebitext.Draw(screen, m.notice, face, (w-len(m.notice)*7)/2, y+28, color.RGBA{240, 200, 80, 255})
	}
}

func rgb(c [3]int) color.RGBA {
	return color.RGBA{uint8(c[0]), uint8(c[1]), uint8(c[2]), 255}
}
