package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// End overlay messages.
const (
	MessageWon      = "You reached the Red Monster!"
	MessageGameOver = "Game Over"
	MessageContinue = "Press any key to return to the menu"
)

var (
	hudBackground = color.RGBA{0, 0, 0, 140}
	hudHeart      = color.RGBA{220, 50, 60, 255}
	hudHeartLost  = color.RGBA{70, 40, 40, 255}
)

// hudLine is the status text shown next to the lives.
func hudLine(now float64, fps float64) string {
	return fmt.Sprintf("Time %5.1fs   FPS %3.0f", now, fps)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	face := basicfont.Face7x13
	vector.DrawFilledRect(screen, 8, 8, 300, 26, hudBackground, false)

	h := g.level.Health()
	for i := 0; i < g.cfg.Health.Lives; i++ {
		c := hudHeart
		if i >= h.Lives {
			c = hudHeartLost
		}
		vector.DrawFilledCircle(screen, float32(22+i*18), 21, 6, c, true)
	}

	x := 22 + g.cfg.Health.Lives*18
	ebitext.Draw(screen, hudLine(g.now, g.monitor.GetCurrentMetrics().FramesPerSecond), face, x, 25, color.White)
}

// endMessage returns the overlay title, or "" while the level is running.
func (g *Game) endMessage() string {
	switch {
	case g.level == nil:
		return ""
	case g.level.Won():
		return MessageWon
	case g.level.Over():
		return MessageGameOver
	}
	return ""
}

func (g *Game) drawEndOverlay(screen *ebiten.Image) {
	face := basicfont.Face7x13
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, 150}, false)

	msg := g.endMessage()
	ebitext.Draw(screen, msg, face, (w-len(msg)*7)/2, h/2, color.White)
	if g.canDismiss() {
		ebitext.Draw(screen, MessageContinue, face, (w-len(MessageContinue)*7)/2, h/2+28, color.RGBA{180, 180, 180, 255})
	}
}
