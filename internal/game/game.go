package game

import (
	"errors"
	"image/color"
	"math/rand"
	"time"

	"redgrid/internal/config"
	"redgrid/internal/game/keytracker"
	"redgrid/internal/graphics"
	"redgrid/internal/level"
	"redgrid/internal/logger"
	"redgrid/internal/monitoring"
	"redgrid/internal/monster"
	"redgrid/internal/sound"

	"github.com/sirupsen/logrus"
)

// ErrExit is returned from the game loop to request a clean exit
var ErrExit = errors.New("exit game")

type scene int

const (
	sceneMenu scene = iota
	sceneLevel
)

// Game is the ebiten host: a menu, one level at a time, and the end overlays.
type Game struct {
	cfg      *config.Config
	defs     *monster.MonsterYAMLConfig
	scene    scene
	menu     *Menu
	level    *level.Level
	kind     string
	keys     *keytracker.DirectionTracker
	camera   *Camera
	renderer *Renderer
	sound    sound.Player
	monitor  *monitoring.PerformanceMonitor

	now   float64 // seconds since level start
	endAt float64 // time of the win or game over
	log   *logrus.Entry
}

// NewGame creates the host on the menu scene. Sprites are looked up under assetsDir.
func NewGame(cfg *config.Config, defs *monster.MonsterYAMLConfig, snd sound.Player, assetsDir string) *Game {
	camera := NewCamera(float64(cfg.GetScreenWidth()), float64(cfg.GetScreenHeight()), cfg.Camera)
	sprites := graphics.NewSpriteManager(assetsDir)
	for _, name := range []string{"char-front", "char-back", "char-right"} {
		sprites.SetPlaceholderColor(name, color.RGBA{40, 90, 200, 255})
	}
	for _, key := range defs.GetMenuKeys() {
		if def, err := defs.GetMonsterByKey(key); err == nil {
			sprites.SetPlaceholderColor(def.Sprite, rgb(def.Color))
		}
	}
	monitor := monitoring.NewPerformanceMonitor()
	// The running average only feeds the debug summary logged on level close.
	monitor.EnableDetailedLogging(logger.Log.IsLevelEnabled(logrus.DebugLevel))
	return &Game{
		cfg:      cfg,
		defs:     defs,
		menu:     NewMenu(defs),
		keys:     keytracker.NewDirectionTracker(),
		camera:   camera,
		renderer: NewRenderer(cfg, sprites, camera),
		sound:    snd,
		monitor:  monitor,
		log:      logger.For("game"),
	}
}

func (g *Game) startLevel(kind string) {
	seed := g.cfg.Level.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.kind = kind
	g.level = level.New(g.cfg, rand.New(rand.NewSource(seed)))
	g.now = 0
	g.endAt = 0
	g.scene = sceneLevel
	g.monitor.Reset()

	grid := g.level.Grid()
	cs := g.cfg.GetCellSize()
	g.camera.Center(g.level.Player().Pos, float64(grid.Width())*cs, float64(grid.Height())*cs)
	g.log.WithFields(logrus.Fields{"kind": kind, "seed": seed}).Info("Level started")
}

func (g *Game) returnToMenu() {
	if g.level != nil {
		g.log.WithFields(logrus.Fields(g.monitor.GetDetailedStats())).Debug("Level closed")
	}
	g.level = nil
	g.scene = sceneMenu
}

// ended reports whether the level shows an end overlay.
func (g *Game) ended() bool {
	return g.level != nil && (g.level.Won() || g.level.Over())
}

// canDismiss reports whether the end overlay accepts a key yet.
func (g *Game) canDismiss() bool {
	if !g.ended() {
		return false
	}
	if g.level.Over() {
		return g.level.Health().CanDismiss(g.now)
	}
	return g.now >= g.endAt+g.cfg.Health.GameOverGrace
}
