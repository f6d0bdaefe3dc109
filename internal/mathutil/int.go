package mathutil

import "math/rand"

// IntAbs returns the absolute value of an int (search: int-math).
func IntAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RandRange returns a uniform float in [min, max) drawn from rng.
func RandRange(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// RandIntRange returns a uniform int in [min, max] drawn from rng.
func RandIntRange(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}
