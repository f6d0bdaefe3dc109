package world

import "redgrid/internal/mathutil"

// Direction is one of the four cardinal directions, or DirNone.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// HoldOrder is the scan order used when several movement keys are held.
var HoldOrder = [4]Direction{DirUp, DirRight, DirDown, DirLeft}

// Axis names the coordinate a direction moves along.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

// Delta returns the unit cell offset of d (y grows downwards).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Vector returns the unit world-space vector of d.
func (d Direction) Vector() mathutil.Vec2 {
	dx, dy := d.Delta()
	return mathutil.V(float64(dx), float64(dy))
}

func (d Direction) Axis() Axis {
	if d == DirUp || d == DirDown {
		return AxisY
	}
	return AxisX
}

// DirectionFromDelta maps an axis-aligned offset back to a direction. The
// horizontal component wins when both are set.
func DirectionFromDelta(dx, dy float64) Direction {
	switch {
	case dx > 0:
		return DirRight
	case dx < 0:
		return DirLeft
	case dy > 0:
		return DirDown
	case dy < 0:
		return DirUp
	}
	return DirNone
}
