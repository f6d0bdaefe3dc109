package game

import (
	"redgrid/internal/level"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

// alertEvery is how many frames pass between performance alert checks.
const alertEvery = 300

// Update handles all game logic updates for one frame
func (g *Game) Update() error {
	frameTimer := g.monitor.StartFrame()
	defer frameTimer.EndFrame()

	switch g.scene {
	case sceneMenu:
		return g.updateMenu()
	case sceneLevel:
		g.updateLevel(1 / float64(ebiten.TPS()))
	}
	return nil
}

func (g *Game) updateMenu() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ErrExit
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp), inpututil.IsKeyJustPressed(ebiten.KeyW):
		g.menu.Move(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.menu.Move(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if kind, ok := g.menu.Choose(); ok {
			g.startLevel(kind)
		} else {
			g.log.WithField("kind", kind).Info("Level not ready")
		}
	}
	return nil
}

func (g *Game) updateLevel(dt float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.returnToMenu()
		return
	}
	if g.canDismiss() && len(inpututil.AppendJustPressedKeys(nil)) > 0 {
		g.returnToMenu()
		return
	}

	g.keys.Poll()
	g.now += dt
	g.monitor.ProfiledFunction("update", func() {
		g.level.Update(g.now, dt, g.keys)
	})
	g.handleEvents(g.level.Events())

	grid := g.level.Grid()
	cs := g.cfg.GetCellSize()
	g.camera.Follow(g.level.Player().Pos, float64(grid.Width())*cs, float64(grid.Height())*cs)

	g.updatePerformanceMetrics()
}

// handleEvents plays sounds and records when the level ended.
func (g *Game) handleEvents(events []level.Event) {
	for _, ev := range events {
		g.sound.Play(ev.Kind)
		switch ev.Kind {
		case level.EventWon, level.EventGameOver:
			g.endAt = ev.Time
			g.log.WithFields(logrus.Fields{"event": ev.Kind.String(), "time": ev.Time}).Info("Level ended")
		case level.EventHurt, level.EventCrushed:
			g.log.WithFields(logrus.Fields{
				"event": ev.Kind.String(),
				"lives": g.level.Health().Lives,
			}).Info("Player damaged")
		}
	}
}

func (g *Game) updatePerformanceMetrics() {
	g.monitor.UpdateGameMetrics(int32(len(g.level.Movers())), int32(len(g.level.Projectiles())), uint64(len(g.level.Events())))
	if g.monitor.GetCurrentMetrics().Frames%alertEvery != 0 {
		return
	}
	for _, alert := range g.monitor.CheckPerformanceAlerts() {
		g.log.WithFields(logrus.Fields{
			"type":      alert.Type,
			"value":     alert.Value,
			"threshold": alert.Threshold,
		}).Warn(alert.Message)
	}
}

// Draw handles all rendering for one frame
func (g *Game) Draw(screen *ebiten.Image) {
	g.monitor.ProfiledFunction("draw", func() {
		switch g.scene {
		case sceneMenu:
			g.menu.Draw(screen)
		case sceneLevel:
			g.renderer.DrawLevel(screen, g.level, g.now)
			g.drawHUD(screen)
			if g.ended() {
				g.drawEndOverlay(screen)
			}
		}
	})
}

// Layout follows the window size so the camera sees more of the level when resized.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.cfg.GetScreenWidth(), g.cfg.GetScreenHeight()
	}
	g.camera.SetViewport(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}
