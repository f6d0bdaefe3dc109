package terminal

import (
	"math"

	"redgrid/internal/world"

	"github.com/gdamore/tcell/v2"
)

// KeyState turns terminal key events into held and just-pressed state. After
// a fresh press a direction stays held for the repeat delay, long enough for
// the terminal's auto-repeat to start. Once repeats arrive it stays held for
// the shorter hold window after the latest one.
type KeyState struct {
	delay     float64
	window    float64
	last      map[world.Direction]float64
	repeating map[world.Direction]bool
	pending   map[world.Direction]bool
	held      map[world.Direction]bool
	pressed   map[world.Direction]bool
}

func NewKeyState(delay, window float64) *KeyState {
	k := &KeyState{
		delay:     delay,
		window:    window,
		last:      make(map[world.Direction]float64),
		repeating: make(map[world.Direction]bool),
		pending:   make(map[world.Direction]bool),
		held:      make(map[world.Direction]bool),
		pressed:   make(map[world.Direction]bool),
	}
	k.Reset()
	return k
}

// Reset forgets every key.
func (k *KeyState) Reset() {
	for _, d := range world.HoldOrder {
		k.last[d] = math.Inf(-1)
		k.repeating[d] = false
		k.pending[d] = false
		k.held[d] = false
		k.pressed[d] = false
	}
}

// Observe records a key event for d. It counts as a fresh press only when d
// was not already held.
func (k *KeyState) Observe(d world.Direction, now float64) {
	if d == world.DirNone {
		return
	}
	if k.expired(d, now) {
		k.pending[d] = true
		k.repeating[d] = false
	} else {
		k.repeating[d] = true
	}
	k.last[d] = now
}

func (k *KeyState) expired(d world.Direction, now float64) bool {
	window := k.delay
	if k.repeating[d] {
		window = k.window
	}
	return now-k.last[d] > window
}

// Frame latches the state seen by the level for the update at now.
func (k *KeyState) Frame(now float64) {
	for _, d := range world.HoldOrder {
		k.held[d] = !k.expired(d, now)
		k.pressed[d] = k.pending[d]
		k.pending[d] = false
	}
}

func (k *KeyState) IsHeld(d world.Direction) bool      { return k.held[d] }
func (k *KeyState) JustPressed(d world.Direction) bool { return k.pressed[d] }

// DirectionForKey maps arrows and WASD (either case) to a direction.
func DirectionForKey(key tcell.Key, r rune) world.Direction {
	switch key {
	case tcell.KeyUp:
		return world.DirUp
	case tcell.KeyDown:
		return world.DirDown
	case tcell.KeyLeft:
		return world.DirLeft
	case tcell.KeyRight:
		return world.DirRight
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return world.DirUp
		case 's', 'S':
			return world.DirDown
		case 'a', 'A':
			return world.DirLeft
		case 'd', 'D':
			return world.DirRight
		}
	}
	return world.DirNone
}
