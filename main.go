package main

import (
	"errors"

	"redgrid/internal/config"
	"redgrid/internal/game"
	"redgrid/internal/logger"
	"redgrid/internal/monster"
	"redgrid/internal/sound"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)

	// Load monster configuration
	defs := monster.MustLoadMonsterConfig("assets/monsters.yaml")

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	snd := sound.New(cfg.Audio)
	defer snd.Close()

	g := game.NewGame(cfg, defs, snd, "assets")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, game.ErrExit) {
		logger.For("main").WithError(err).Fatal("Game exited with error")
	}
}
