package level

import (
	"redgrid/internal/mathutil"
	"redgrid/internal/monster"
	"redgrid/internal/mover"
	"redgrid/internal/player"
)

// BodyKind tags the entity behind a Body.
type BodyKind int

const (
	BodyPlayer BodyKind = iota
	BodyMover
	BodyMonster
	BodyProjectile
)

func (k BodyKind) String() string {
	switch k {
	case BodyPlayer:
		return "player"
	case BodyMover:
		return "mover"
	case BodyMonster:
		return "monster"
	case BodyProjectile:
		return "projectile"
	}
	return "unknown"
}

// Body is the capability every level entity shares: a position and a kind.
type Body interface {
	Position() mathutil.Vec2
	Kind() BodyKind
}

type playerBody struct{ *player.Player }

func (playerBody) Kind() BodyKind { return BodyPlayer }

type moverBody struct{ *mover.Mover }

func (moverBody) Kind() BodyKind { return BodyMover }

type monsterBody struct{ *monster.Monster }

func (monsterBody) Kind() BodyKind { return BodyMonster }

type projectileBody struct{ *monster.Projectile }

func (projectileBody) Kind() BodyKind { return BodyProjectile }
