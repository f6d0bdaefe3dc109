// Package keytracker adapts Ebiten key state to input.Source.
package keytracker

import (
	"redgrid/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

// KeyStateTracker tracks the previous state of a key.
type KeyStateTracker struct {
	prevPressed bool
}

func (k *KeyStateTracker) observe(pressed bool) bool {
	justPressed := pressed && !k.prevPressed
	k.prevPressed = pressed
	return justPressed
}

// Bindings maps each direction to its keys: arrows and WASD.
var Bindings = map[world.Direction][]ebiten.Key{
	world.DirUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	world.DirDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	world.DirLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	world.DirRight: {ebiten.KeyArrowRight, ebiten.KeyD},
}

// DirectionTracker samples the movement keys once per frame. Call Poll at the
// start of Update, then hand the tracker to the level.
type DirectionTracker struct {
	isPressed func(ebiten.Key) bool
	keys      map[world.Direction]*KeyStateTracker
	held      map[world.Direction]bool
	pressed   map[world.Direction]bool
}

func NewDirectionTracker() *DirectionTracker {
	return newDirectionTracker(ebiten.IsKeyPressed)
}

func newDirectionTracker(isPressed func(ebiten.Key) bool) *DirectionTracker {
	t := &DirectionTracker{
		isPressed: isPressed,
		keys:      make(map[world.Direction]*KeyStateTracker),
		held:      make(map[world.Direction]bool),
		pressed:   make(map[world.Direction]bool),
	}
	for _, d := range world.HoldOrder {
		t.keys[d] = &KeyStateTracker{}
	}
	return t
}

// Poll refreshes held and just-pressed state for every direction.
func (t *DirectionTracker) Poll() {
	for _, d := range world.HoldOrder {
		down := false
		for _, key := range Bindings[d] {
			if t.isPressed(key) {
				down = true
				break
			}
		}
		t.held[d] = down
		t.pressed[d] = t.keys[d].observe(down)
	}
}

func (t *DirectionTracker) IsHeld(d world.Direction) bool      { return t.held[d] }
func (t *DirectionTracker) JustPressed(d world.Direction) bool { return t.pressed[d] }
