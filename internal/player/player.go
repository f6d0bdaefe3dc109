package player

import (
	"redgrid/internal/config"
	"redgrid/internal/input"
	"redgrid/internal/logger"
	"redgrid/internal/mathutil"
	"redgrid/internal/world"

	"github.com/sirupsen/logrus"
)

// Pose selects the player sprite.
type Pose int

const (
	PoseFront Pose = iota
	PoseBack
	PoseRight
	PoseLeft // right sprite, mirrored
)

func (p Pose) String() string {
	switch p {
	case PoseBack:
		return "back"
	case PoseRight:
		return "right"
	case PoseLeft:
		return "left"
	}
	return "front"
}

// poseFor maps a facing direction to its sprite pose.
func poseFor(d world.Direction) Pose {
	switch d {
	case world.DirUp:
		return PoseBack
	case world.DirRight:
		return PoseRight
	case world.DirLeft:
		return PoseLeft
	}
	return PoseFront
}

// Player is the grid-stepping avatar. While Moving is false the position is a
// cell center; while it is true the player travels in a straight line to Target.
type Player struct {
	Pos        mathutil.Vec2
	Target     mathutil.Vec2
	Moving     bool
	Facing     world.Direction
	Queued     world.Direction
	Pose       Pose
	LastActive float64

	grid        *world.Grid
	metrics     world.Metrics
	speed       float64 // world units per second
	idleTimeout float64
	log         *logrus.Entry
}

// New places a player at the center of spawn.
func New(grid *world.Grid, metrics world.Metrics, spawn world.Cell, speed, idleTimeout float64) *Player {
	return &Player{
		Pos:         metrics.CellToWorld(spawn),
		Facing:      world.DirDown,
		Pose:        PoseFront,
		grid:        grid,
		metrics:     metrics,
		speed:       speed,
		idleTimeout: idleTimeout,
		log:         logger.For("player"),
	}
}

// NewFromConfig spawns the player at the empty cell nearest the configured spawn.
func NewFromConfig(grid *world.Grid, cfg *config.Config) *Player {
	spawn := grid.FindNearestEmptyCell(
		world.Cell{X: cfg.Player.SpawnX, Y: cfg.Player.SpawnY},
		cfg.Player.SpawnSearchRadius,
	)
	metrics := world.Metrics{CellSize: cfg.GetCellSize()}
	return New(grid, metrics, spawn, cfg.GetPlayerSpeed(), cfg.Player.IdleTimeout)
}

// Position satisfies the level body contract.
func (p *Player) Position() mathutil.Vec2 {
	return p.Pos
}

// Cell returns the cell the player is standing in.
func (p *Player) Cell() world.Cell {
	return p.metrics.WorldToCell(p.Pos)
}

// AttemptMove starts a transition to the neighbour in dir. A solid neighbour
// rejects the move but the player still turns to face it. Returns whether a
// transition started.
func (p *Player) AttemptMove(dir world.Direction, now float64) bool {
	if dir == world.DirNone || p.Moving {
		return false
	}

	from := p.metrics.SnapToCellCenter(p.Pos)
	next := p.metrics.WorldToCell(from).Offset(dir, 1)
	p.Facing = dir
	p.Pose = poseFor(dir)

	if p.grid.IsSolid(next.X, next.Y) {
		return false
	}

	p.Pos = from
	p.Target = p.metrics.CellToWorld(next)
	p.Moving = true
	p.LastActive = now
	return true
}

// Update advances the controller by one frame: fresh presses first, then
// integration towards Target, then input resolution when idle.
func (p *Player) Update(now, dt float64, in input.Source) {
	for _, d := range world.HoldOrder {
		if !in.JustPressed(d) {
			continue
		}
		p.LastActive = now
		if p.Moving {
			p.Queued = d
		} else {
			p.AttemptMove(d, now)
		}
	}

	anyHeld := input.AnyHeld(in)
	if p.Moving {
		p.LastActive = now
		p.integrate(now, dt, in)
	} else {
		if anyHeld {
			p.LastActive = now
		}
		p.resolve(now, in)
	}

	if !p.Moving && !anyHeld && now-p.LastActive >= p.idleTimeout {
		p.Pose = PoseFront
	}
}

func (p *Player) integrate(now, dt float64, in input.Source) {
	remaining := p.Target.Sub(p.Pos)
	dist := remaining.Len()
	step := p.speed * dt
	if dist <= step {
		p.Pos = p.Target
		p.Moving = false
		p.resolve(now, in)
		return
	}
	p.Pos = p.Pos.Add(remaining.Scale(step / dist))
}

// resolve picks the next direction: queued press, then held facing, then the
// first held key in hold order.
func (p *Player) resolve(now float64, in input.Source) {
	dir := world.DirNone
	switch {
	case p.Queued != world.DirNone:
		dir = p.Queued
	case p.Facing != world.DirNone && in.IsHeld(p.Facing):
		dir = p.Facing
	default:
		for _, d := range world.HoldOrder {
			if in.IsHeld(d) {
				dir = d
				break
			}
		}
	}
	p.Queued = world.DirNone
	if dir != world.DirNone {
		p.AttemptMove(dir, now)
	}
}

// Push displaces the player by delta and turns the displacement into a
// transition towards target, a cell center, so the player comes to rest on it.
func (p *Player) Push(delta, target mathutil.Vec2) {
	p.Pos = p.Pos.Add(delta)
	p.Target = target
	p.Moving = true
	p.log.WithFields(logrus.Fields{
		"x":        p.Pos.X,
		"y":        p.Pos.Y,
		"target_x": target.X,
		"target_y": target.Y,
	}).Debug("Player pushed")
}
