// Package terminal runs the level in a tcell screen, one character per cell.
package terminal

import (
	"math/rand"
	"time"

	"redgrid/internal/config"
	"redgrid/internal/level"
	"redgrid/internal/logger"
	"redgrid/internal/monster"
	"redgrid/internal/sound"
	"redgrid/internal/world"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

type scene int

const (
	sceneMenu scene = iota
	sceneLevel
)

// Host owns the screen and at most one running level.
type Host struct {
	screen tcell.Screen
	cfg    *config.Config
	defs   *monster.MonsterYAMLConfig
	sound  sound.Player

	scene    scene
	menuKeys []string
	selected int
	notice   string

	lvl   *level.Level
	keys  *KeyState
	now   float64
	endAt float64
	log   *logrus.Entry
}

// New creates a host on the menu. The screen must already be initialised.
func New(screen tcell.Screen, cfg *config.Config, defs *monster.MonsterYAMLConfig, snd sound.Player) *Host {
	return &Host{
		screen:   screen,
		cfg:      cfg,
		defs:     defs,
		sound:    snd,
		menuKeys: defs.GetMenuKeys(),
		keys:     NewKeyState(cfg.Terminal.RepeatDelay, cfg.Terminal.HoldWindow),
		log:      logger.For("terminal"),
	}
}

// Run pumps screen events into the host and ticks the level until the player quits.
func (h *Host) Run() {
	tick := time.Duration(h.cfg.Terminal.TickMillis) * time.Millisecond
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	last := time.Now()
	h.Draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !h.HandleEvent(ev) {
				return
			}
		case t := <-ticker.C:
			dt := t.Sub(last).Seconds()
			last = t
			// Cap dt after a stall.
			h.Tick(min(dt, 3*tick.Seconds()))
			h.Draw()
		}
	}
}

// HandleEvent applies one screen event. It returns false when the host should exit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

func (h *Host) handleKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyCtrlC {
		return false
	}
	if h.scene == sceneMenu {
		return h.handleMenuKey(key, r)
	}

	if key == tcell.KeyEscape {
		h.returnToMenu()
		return true
	}
	if h.ended() {
		if h.canDismiss() {
			h.returnToMenu()
		}
		return true
	}
	h.keys.Observe(DirectionForKey(key, r), h.now)
	return true
}

func (h *Host) handleMenuKey(key tcell.Key, r rune) bool {
	switch {
	case key == tcell.KeyEscape, key == tcell.KeyRune && (r == 'q' || r == 'Q'):
		return false
	case key == tcell.KeyEnter, key == tcell.KeyRune && r == ' ':
		h.choose()
	default:
		switch DirectionForKey(key, r) {
		case world.DirUp:
			h.moveSelection(-1)
		case world.DirDown:
			h.moveSelection(1)
		}
	}
	return true
}

func (h *Host) moveSelection(delta int) {
	n := len(h.menuKeys)
	if n == 0 {
		return
	}
	h.selected = ((h.selected+delta)%n + n) % n
	h.notice = ""
}

func (h *Host) choose() {
	if len(h.menuKeys) == 0 {
		return
	}
	kind := h.menuKeys[h.selected]
	if !h.defs.IsReady(kind) {
		h.notice = NoticeNotReady
		h.log.WithField("kind", kind).Info("Level not ready")
		return
	}
	h.startLevel(kind)
}

func (h *Host) startLevel(kind string) {
	seed := h.cfg.Level.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	h.lvl = level.New(h.cfg, rand.New(rand.NewSource(seed)))
	h.keys.Reset()
	h.now, h.endAt = 0, 0
	h.notice = ""
	h.scene = sceneLevel
	h.log.WithFields(logrus.Fields{"kind": kind, "seed": seed}).Info("Level started")
}

func (h *Host) returnToMenu() {
	h.lvl = nil
	h.scene = sceneMenu
}

// Tick advances the running level by dt seconds.
func (h *Host) Tick(dt float64) {
	if h.scene != sceneLevel || h.lvl == nil {
		return
	}
	h.now += dt
	h.keys.Frame(h.now)
	h.lvl.Update(h.now, dt, h.keys)
	for _, ev := range h.lvl.Events() {
		h.sound.Play(ev.Kind)
		if ev.Kind == level.EventWon || ev.Kind == level.EventGameOver {
			h.endAt = ev.Time
		}
		h.log.WithFields(logrus.Fields{"event": ev.Kind.String(), "time": ev.Time}).Debug("Level event")
	}
}

func (h *Host) ended() bool {
	return h.lvl != nil && (h.lvl.Won() || h.lvl.Over())
}

func (h *Host) canDismiss() bool {
	if !h.ended() {
		return false
	}
	if h.lvl.Over() {
		return h.lvl.Health().CanDismiss(h.now)
	}
	return h.now >= h.endAt+h.cfg.Health.GameOverGrace
}
