package level

import (
	"math/rand"

	"redgrid/internal/collision"
	"redgrid/internal/config"
	"redgrid/internal/health"
	"redgrid/internal/input"
	"redgrid/internal/logger"
	"redgrid/internal/monster"
	"redgrid/internal/mover"
	"redgrid/internal/player"
	"redgrid/internal/world"

	"github.com/sirupsen/logrus"
)

// Level owns every entity of one play session. Time is measured in seconds
// from level start.
type Level struct {
	cfg         *config.Config
	grid        *world.Grid
	metrics     world.Metrics
	player      *player.Player
	movers      *mover.Field
	monster     *monster.Monster
	projectiles []*monster.Projectile
	collisions  *collision.CollisionSystem
	health      *health.Manager
	events      []Event
	log         *logrus.Entry
}

// New builds the map, spawns the player near (2,2), the monster near the far
// corner, and the movers on their lanes.
func New(cfg *config.Config, rng *rand.Rand) *Level {
	grid := world.NewGrid(cfg.Level.Width, cfg.Level.Height)
	l := &Level{
		cfg:     cfg,
		grid:    grid,
		metrics: world.Metrics{CellSize: cfg.GetCellSize()},
		player:  player.NewFromConfig(grid, cfg),
		movers:  mover.NewFieldFromConfig(grid, cfg),
		monster: monster.Spawn(grid, cfg, rng, 0),
		health:  health.NewManager(cfg.Health),
		log:     logger.For("level"),
	}
	l.collisions = l.movers.Collisions()
	l.collisions.RegisterEntity(l.monster.Entity())
	spawn := l.player.Cell()
	l.log.WithFields(logrus.Fields{
		"width":   grid.Width(),
		"height":  grid.Height(),
		"spawn_x": spawn.X,
		"spawn_y": spawn.Y,
		"movers":  len(l.movers.Movers()),
	}).Info("Level built")
	return l
}

// Update advances the level by one frame. Passes run in a fixed order: player,
// movers, monster, projectiles, win check. Nothing moves after game over; after
// a win the monster is gone and the rest keeps running.
func (l *Level) Update(now, dt float64, in input.Source) {
	l.events = l.events[:0]
	if l.health.GameOver {
		return
	}

	l.player.Update(now, dt, in)
	l.movers.Step(dt, l.player, func() { l.damage(now, EventCrushed) })
	if l.health.GameOver {
		return
	}

	if l.monster != nil {
		shot := l.monster.Update(now, l.grid, l.player.Pos)
		l.collisions.UpdateEntity(l.monster.ID, l.monster.Pos)
		if shot != nil {
			l.projectiles = append(l.projectiles, shot)
			l.collisions.RegisterEntity(shot.Entity())
			l.emit(EventShot, now)
		}
	}

	live := monster.UpdateProjectiles(l.projectiles, dt, l.grid, l.collisions, l.player.Pos,
		l.cfg.GetProjectileHitRadius(), func() { l.damage(now, EventHurt) })
	if l.health.GameOver {
		return
	}
	l.projectiles = live

	if l.collisions.AnyWithin(l.player.Pos, l.cfg.GetWinDistance(), collision.CollisionTypeMonster, "") {
		l.win(now)
	}
}

// damage is the single route from movers and projectiles into the health manager.
// Nothing hurts the player once the level is won.
func (l *Level) damage(now float64, kind EventKind) {
	if l.Won() {
		return
	}
	switch l.health.Damage(now) {
	case health.Hurt:
		l.emit(kind, now)
	case health.Died:
		l.emit(kind, now)
		l.emit(EventGameOver, now)
		l.clearHostiles()
		l.log.WithField("cause", kind.String()).Info("Game over")
	}
}

func (l *Level) win(now float64) {
	l.clearHostiles()
	l.emit(EventWon, now)
	l.log.WithField("time", now).Info("Player reached the monster")
}

// clearHostiles removes the monster and every projectile, from the level and
// from the collision system. It is safe to call while projectiles are being
// stepped.
func (l *Level) clearHostiles() {
	for _, e := range l.collisions.GetAllEntities() {
		if e.CollisionType == collision.CollisionTypeMonster || e.CollisionType == collision.CollisionTypeProjectile {
			l.collisions.UnregisterEntity(e.ID)
		}
	}
	l.monster = nil
	l.projectiles = nil
}

func (l *Level) emit(kind EventKind, now float64) {
	l.events = append(l.events, Event{Kind: kind, Time: now})
}

// Events returns what happened during the last Update. The slice is reused.
func (l *Level) Events() []Event {
	return l.events
}

// Bodies returns every live entity: player, movers, monster, projectiles.
func (l *Level) Bodies() []Body {
	movers := l.movers.Movers()
	bodies := make([]Body, 0, 2+len(movers)+len(l.projectiles))
	bodies = append(bodies, playerBody{l.player})
	for _, m := range movers {
		bodies = append(bodies, moverBody{m})
	}
	if l.monster != nil {
		bodies = append(bodies, monsterBody{l.monster})
	}
	for _, p := range l.projectiles {
		bodies = append(bodies, projectileBody{p})
	}
	return bodies
}

// Won reports whether the player reached the monster. The monster's absence
// is the signal; game over removes it too.
func (l *Level) Won() bool  { return l.monster == nil && !l.health.GameOver }
func (l *Level) Over() bool { return l.health.GameOver }

// Monster returns the monster, or nil once the level is won or lost.
func (l *Level) Monster() *monster.Monster { return l.monster }

func (l *Level) Player() *player.Player             { return l.player }
func (l *Level) Movers() []*mover.Mover             { return l.movers.Movers() }
func (l *Level) Projectiles() []*monster.Projectile { return l.projectiles }
func (l *Level) Health() *health.Manager            { return l.health }
func (l *Level) Grid() *world.Grid                  { return l.grid }
func (l *Level) Metrics() world.Metrics             { return l.metrics }
func (l *Level) Config() *config.Config             { return l.cfg }
