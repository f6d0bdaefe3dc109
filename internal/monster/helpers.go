package monster

import (
	"math/rand"

	"redgrid/internal/mathutil"
	"redgrid/internal/world"
)

// patrolDirections is indexed by a uniform draw.
var patrolDirections = [4]world.Direction{world.DirLeft, world.DirRight, world.DirUp, world.DirDown}

func randomDirection(rng *rand.Rand) world.Direction {
	return patrolDirections[rng.Intn(len(patrolDirections))]
}

// ShotDirection picks the axis with the larger offset component. Ties go
// horizontal, and a zero offset fires right.
func ShotDirection(dx, dy int) world.Direction {
	if mathutil.IntAbs(dx) >= mathutil.IntAbs(dy) {
		if dx < 0 {
			return world.DirLeft
		}
		return world.DirRight
	}
	if dy < 0 {
		return world.DirUp
	}
	return world.DirDown
}
